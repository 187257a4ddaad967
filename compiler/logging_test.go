package compiler

import (
	"strings"
	"testing"
)

func TestLoggerFiltersByLevel(t *testing.T) {
	var out strings.Builder
	logger := NewLogger("[test]", &out, LogLevelWarning)

	logger.Debug("scope %d", 2)
	logger.Info("checking")
	logger.Warning("root exit")
	logger.Error("dump failed: %s", "disk full")

	expected := "[test] [WARN] root exit\n[test] [ERROR] dump failed: disk full\n"
	if out.String() != expected {
		t.Errorf("expected %q, got %q", expected, out.String())
	}
	if !logger.HasErrors() || logger.ErrorCount() != 1 || logger.WarningCount() != 1 {
		t.Errorf("unexpected counters: errors=%d warnings=%d", logger.ErrorCount(), logger.WarningCount())
	}

	logger.Reset()
	if logger.HasErrors() {
		t.Error("counters not reset")
	}
}

func TestLoggerSummary(t *testing.T) {
	var out strings.Builder
	logger := NewLogger("[test]", &out, LogLevelError)

	logger.PrintSummary()
	if out.Len() != 0 {
		t.Errorf("summary printed without messages: %q", out.String())
	}

	logger.Warning("w")
	logger.PrintSummary()
	if !strings.Contains(out.String(), "Warnings: 1") {
		t.Errorf("summary missing warning count: %q", out.String())
	}
}
