package diagnostics

import (
	"fmt"
	"io"
	"sort"
)

// Severity levels for diagnostics
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
	SeverityInfo
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "ERROR"
	case SeverityWarning:
		return "WARNING"
	case SeverityInfo:
		return "INFO"
	}
	return "UNKNOWN"
}

// Diagnostic represents a semantic diagnostic message
type Diagnostic struct {
	Severity Severity
	Message  string
	Line     int
	Column   int
	File     string
}

func (d Diagnostic) String() string {
	if d.File != "" {
		return fmt.Sprintf("%s:%d:%d: %s: %s", d.File, d.Line, d.Column, d.Severity, d.Message)
	}
	return fmt.Sprintf("%s: %s", d.Severity, d.Message)
}

// DiagnosticEngine collects and reports diagnostics
type DiagnosticEngine struct {
	diagnostics []Diagnostic
	errorCount  int
	warnCount   int
}

// NewDiagnosticEngine creates a new diagnostic engine
func NewDiagnosticEngine() *DiagnosticEngine {
	return &DiagnosticEngine{
		diagnostics: make([]Diagnostic, 0),
	}
}

func (d *DiagnosticEngine) report(diag Diagnostic) {
	d.diagnostics = append(d.diagnostics, diag)
	switch diag.Severity {
	case SeverityError:
		d.errorCount++
	case SeverityWarning:
		d.warnCount++
	}
}

// ErrorAt reports an error at a specific location
func (d *DiagnosticEngine) ErrorAt(file string, line, column int, message string) {
	d.report(Diagnostic{
		Severity: SeverityError,
		Message:  message,
		File:     file,
		Line:     line,
		Column:   column,
	})
}

// WarningAt reports a warning at a specific location
func (d *DiagnosticEngine) WarningAt(file string, line, column int, message string) {
	d.report(Diagnostic{
		Severity: SeverityWarning,
		Message:  message,
		File:     file,
		Line:     line,
		Column:   column,
	})
}

// InfoAt reports a note at a specific location
func (d *DiagnosticEngine) InfoAt(file string, line, column int, message string) {
	d.report(Diagnostic{
		Severity: SeverityInfo,
		Message:  message,
		File:     file,
		Line:     line,
		Column:   column,
	})
}

// HasErrors returns true if any errors were reported
func (d *DiagnosticEngine) HasErrors() bool {
	return d.errorCount > 0
}

// ErrorCount returns the number of errors
func (d *DiagnosticEngine) ErrorCount() int {
	return d.errorCount
}

// WarningCount returns the number of warnings
func (d *DiagnosticEngine) WarningCount() int {
	return d.warnCount
}

// Diagnostics returns the collected diagnostics in report order
func (d *DiagnosticEngine) Diagnostics() []Diagnostic {
	return d.diagnostics
}

// Reset drops every collected diagnostic
func (d *DiagnosticEngine) Reset() {
	d.diagnostics = d.diagnostics[:0]
	d.errorCount = 0
	d.warnCount = 0
}

// Print writes all diagnostics to w ordered by file and position
func (d *DiagnosticEngine) Print(w io.Writer) error {
	sorted := make([]Diagnostic, len(d.diagnostics))
	copy(sorted, d.diagnostics)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.File != b.File {
			return a.File < b.File
		}
		if a.Line != b.Line {
			return a.Line < b.Line
		}
		return a.Column < b.Column
	})

	for _, diag := range sorted {
		if _, err := fmt.Fprintln(w, diag.String()); err != nil {
			return err
		}
	}
	return nil
}
