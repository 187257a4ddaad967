// Package compiler drives the symbol table over Arc source files.
package compiler

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// LogLevel represents the severity of a log message
type LogLevel int

const (
	LogLevelDebug LogLevel = iota
	LogLevelInfo
	LogLevelWarning
	LogLevelError
)

func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "DEBUG"
	case LogLevelInfo:
		return "INFO"
	case LogLevelWarning:
		return "WARN"
	case LogLevelError:
		return "ERROR"
	}
	return "UNKNOWN"
}

// Logger provides levelled logging for the checker
type Logger struct {
	mu         sync.Mutex
	prefix     string
	out        io.Writer
	minLevel   LogLevel
	errorCount int
	warnCount  int
	infoCount  int
	debugCount int
}

// NewLogger creates a logger writing messages at or above minLevel to out.
// A nil out writes to stderr.
func NewLogger(prefix string, out io.Writer, minLevel LogLevel) *Logger {
	if out == nil {
		out = os.Stderr
	}
	return &Logger{prefix: prefix, out: out, minLevel: minLevel}
}

// Debug logs a debug message
func (l *Logger) Debug(format string, args ...interface{}) {
	l.log(LogLevelDebug, format, args...)
}

// Info logs an informational message
func (l *Logger) Info(format string, args ...interface{}) {
	l.log(LogLevelInfo, format, args...)
}

// Warning logs a warning message
func (l *Logger) Warning(format string, args ...interface{}) {
	l.log(LogLevelWarning, format, args...)
}

// Error logs an error message
func (l *Logger) Error(format string, args ...interface{}) {
	l.log(LogLevelError, format, args...)
}

func (l *Logger) log(level LogLevel, format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	switch level {
	case LogLevelDebug:
		l.debugCount++
	case LogLevelInfo:
		l.infoCount++
	case LogLevelWarning:
		l.warnCount++
	case LogLevelError:
		l.errorCount++
	}

	if level < l.minLevel {
		return
	}

	message := fmt.Sprintf(format, args...)
	fmt.Fprintf(l.out, "%s [%s] %s\n", l.prefix, level, message)
}

// HasErrors returns true if any errors were logged
func (l *Logger) HasErrors() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.errorCount > 0
}

// ErrorCount returns the number of errors logged
func (l *Logger) ErrorCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.errorCount
}

// WarningCount returns the number of warnings logged
func (l *Logger) WarningCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.warnCount
}

// Reset resets all counters
func (l *Logger) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.errorCount = 0
	l.warnCount = 0
	l.infoCount = 0
	l.debugCount = 0
}

// PrintSummary prints a summary of logged messages
func (l *Logger) PrintSummary() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.errorCount > 0 || l.warnCount > 0 {
		fmt.Fprintf(l.out, "\n%s Summary:\n", l.prefix)
		if l.errorCount > 0 {
			fmt.Fprintf(l.out, "  Errors: %d\n", l.errorCount)
		}
		if l.warnCount > 0 {
			fmt.Fprintf(l.out, "  Warnings: %d\n", l.warnCount)
		}
	}
}
