package compiler

import (
	"os"
	"path/filepath"
	"testing"
)

func TestGetSourceFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.arc", "a.arc", "notes.txt", "c.lang"} {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "sub.arc"), 0755); err != nil {
		t.Fatal(err)
	}

	files, err := NewImporter().GetSourceFiles(dir)
	if err != nil {
		t.Fatal(err)
	}

	expected := []string{"a.arc", "b.arc", "c.lang"}
	if len(files) != len(expected) {
		t.Fatalf("expected %v, got %v", expected, files)
	}
	for i, name := range expected {
		if files[i] != filepath.Join(dir, name) {
			t.Errorf("file %d: expected %s, got %s", i, name, files[i])
		}
	}
}

func TestGetSourceFilesEmpty(t *testing.T) {
	if _, err := NewImporter().GetSourceFiles(t.TempDir()); err == nil {
		t.Error("expected an error for a directory without sources")
	}
}
