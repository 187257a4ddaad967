package cmd

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
)

func runRoot(t *testing.T, args ...string) error {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func TestCheckRejectsUnknownDumpMode(t *testing.T) {
	err := runRoot(t, "check", "--dump", "everything", ".")
	if err == nil || !strings.Contains(err.Error(), "unknown dump mode") {
		t.Errorf("expected dump mode error, got %v", err)
	}
}

func TestCheckRejectsMissingPath(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.arc")
	err := runRoot(t, "check", "--dump", "chain", missing)
	if err == nil || !strings.Contains(err.Error(), "no such file or directory") {
		t.Errorf("expected missing path error, got %v", err)
	}
}

func TestCheckRejectsBadBucketCount(t *testing.T) {
	tests := []string{"--buckets=-1", "--buckets=0"}

	for _, flag := range tests {
		t.Run(flag, func(t *testing.T) {
			err := runRoot(t, "check", "--dump", "none", flag, t.TempDir())
			if err == nil || !strings.Contains(err.Error(), "invalid bucket count") {
				t.Errorf("expected bucket count error, got %v", err)
			}
		})
	}
}
