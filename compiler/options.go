package compiler

import (
	"fmt"
	"io"
)

// DefaultBuckets is the bucket count of the CLI and of DefaultOptions
const DefaultBuckets = 7

// DumpMode selects what is written to the dump sink when a scope closes
type DumpMode int

const (
	DumpNone DumpMode = iota
	DumpScope
	DumpChain
)

func (m DumpMode) String() string {
	switch m {
	case DumpScope:
		return "scope"
	case DumpChain:
		return "chain"
	}
	return "none"
}

// ParseDumpMode converts a flag value into a DumpMode
func ParseDumpMode(s string) (DumpMode, error) {
	switch s {
	case "none", "":
		return DumpNone, nil
	case "scope":
		return DumpScope, nil
	case "chain":
		return DumpChain, nil
	}
	return DumpNone, fmt.Errorf("unknown dump mode %q (want none, scope or chain)", s)
}

// Options configures a Checker
type Options struct {
	// Buckets is the bucket count of every scope table, at least 1
	Buckets int
	Dump    DumpMode

	// Sink receives scope dumps. nil disables dumping regardless of Dump.
	Sink io.Writer

	// LogOutput receives log messages, stderr when nil
	LogOutput io.Writer
	Verbose   bool
}

// DefaultOptions returns options with DefaultBuckets buckets and no dumping
func DefaultOptions() Options {
	return Options{Buckets: DefaultBuckets}
}

func (o Options) withDefaults() Options {
	if o.Sink == nil {
		o.Dump = DumpNone
	}
	return o
}
