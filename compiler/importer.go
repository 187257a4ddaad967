package compiler

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Importer locates the source files making up a package
type Importer struct {
	extensions []string
}

// NewImporter creates an importer accepting .arc and .lang files
func NewImporter() *Importer {
	return &Importer{extensions: []string{".arc", ".lang"}}
}

func (imp *Importer) isSource(name string) bool {
	for _, ext := range imp.extensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

// GetSourceFiles returns all source files in a directory, sorted by name
func (imp *Importer) GetSourceFiles(dirPath string) ([]string, error) {
	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, entry := range entries {
		if !entry.IsDir() && imp.isSource(entry.Name()) {
			files = append(files, filepath.Join(dirPath, entry.Name()))
		}
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("no source files found in %s", dirPath)
	}
	return files, nil
}
