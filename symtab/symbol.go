// Package symtab provides the scoped symbol table used by the Arc front end.
package symtab

import (
	"fmt"
	"slices"
	"strings"
)

// Category classifies a declared name
type Category int

const (
	Variable Category = iota
	Array
	Function
)

func (c Category) String() string {
	switch c {
	case Variable:
		return "variable"
	case Array:
		return "array"
	case Function:
		return "function"
	}
	return "unknown"
}

const (
	// DeclID is the declaration tag the grammar assigns to identifiers
	DeclID = "ID"

	// NoArraySize marks a symbol that is not an array
	NoArraySize = -1
)

// Symbol represents one declared identifier.
// ArraySize is only meaningful for arrays and ParamTypes only for functions.
type Symbol struct {
	Name       string
	Category   Category
	DeclType   string
	DataType   string
	ArraySize  int
	ParamTypes []string

	// Erroneous marks a symbol recorded despite a semantic error
	Erroneous bool
}

// NewVariable creates a variable symbol
func NewVariable(name, declType, dataType string) *Symbol {
	return &Symbol{
		Name:      name,
		Category:  Variable,
		DeclType:  declType,
		DataType:  dataType,
		ArraySize: NoArraySize,
	}
}

// NewArray creates an array symbol of the given element type and size
func NewArray(name, declType, dataType string, size int) *Symbol {
	return &Symbol{
		Name:      name,
		Category:  Array,
		DeclType:  declType,
		DataType:  dataType,
		ArraySize: size,
	}
}

// NewFunction creates a function symbol. DataType holds the return type.
func NewFunction(name, declType, returnType string, params []string) *Symbol {
	return &Symbol{
		Name:       name,
		Category:   Function,
		DeclType:   declType,
		DataType:   returnType,
		ArraySize:  NoArraySize,
		ParamTypes: slices.Clone(params),
	}
}

// SameSignature reports whether both symbols are functions with the same
// return type and parameter types.
func (s *Symbol) SameSignature(other *Symbol) bool {
	if s.Category != Function || other.Category != Function {
		return false
	}
	return s.DataType == other.DataType && slices.Equal(s.ParamTypes, other.ParamTypes)
}

// String renders the symbol the way scope dumps print it
func (s *Symbol) String() string {
	switch s.Category {
	case Array:
		return fmt.Sprintf("<%s, %s, %s[%d]>", s.Name, s.DeclType, s.DataType, s.ArraySize)
	case Function:
		return fmt.Sprintf("<%s, %s, %s, {%s}>", s.Name, s.DeclType, s.DataType, strings.Join(s.ParamTypes, ", "))
	default:
		return fmt.Sprintf("<%s, %s>", s.Name, s.DeclType)
	}
}
