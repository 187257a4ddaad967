package symtab

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"fortio.org/safecast"
)

var ErrInvalidBucketCount = errors.New("invalid bucket count")

// ChainDelimiter brackets a full chain dump
const ChainDelimiter = "################################"

// SymbolTable manages the chain of nested scopes. It owns the innermost scope
// and, through the parent links, every scope enclosing it.
type SymbolTable struct {
	current     *Scope
	bucketCount int
	nextID      int
}

// New creates a symbol table whose root scope has id 1
func New(bucketCount int) (*SymbolTable, error) {
	n, err := safecast.Conv[uint32](bucketCount)
	if err != nil || n == 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBucketCount, bucketCount)
	}

	t := &SymbolTable{bucketCount: int(n)}
	t.current = t.newScope(nil)
	return t, nil
}

func (t *SymbolTable) newScope(parent *Scope) *Scope {
	t.nextID++
	return NewScope(t.nextID, t.bucketCount, parent)
}

// Current returns the innermost scope
func (t *SymbolTable) Current() *Scope {
	return t.current
}

// Depth returns the number of scopes in the chain, 1 at the root
func (t *SymbolTable) Depth() int {
	depth := 0
	for s := t.current; s != nil; s = s.parent {
		depth++
	}
	return depth
}

// EnterScope opens a nested scope and makes it current
func (t *SymbolTable) EnterScope() {
	t.current = t.newScope(t.current)
}

// ExitScope discards the current scope and returns to its parent.
// The root scope is never exited; false is returned instead.
func (t *SymbolTable) ExitScope() bool {
	parent := t.current.parent
	if parent == nil {
		return false
	}
	t.current.release()
	t.current = parent
	return true
}

// Close releases every scope in the chain and leaves a fresh root scope.
// Scope ids keep counting from where they were.
func (t *SymbolTable) Close() {
	for s := t.current; s != nil; {
		parent := s.parent
		s.release()
		s = parent
	}
	t.current = t.newScope(nil)
}

// Insert adds a symbol to the current scope
func (t *SymbolTable) Insert(sym *Symbol) bool {
	return t.current.Insert(sym)
}

// InsertVariable declares a variable in the current scope
func (t *SymbolTable) InsertVariable(name, declType, dataType string) bool {
	if _, ok := t.current.Lookup(name); ok {
		return false
	}
	return t.current.Insert(NewVariable(name, declType, dataType))
}

// InsertArray declares an array in the current scope
func (t *SymbolTable) InsertArray(name, declType, dataType string, size int) bool {
	if _, ok := t.current.Lookup(name); ok {
		return false
	}
	return t.current.Insert(NewArray(name, declType, dataType, size))
}

// InsertFunction declares a function in the current scope. A previous
// declaration of the name is rejected whether or not its signature matches.
func (t *SymbolTable) InsertFunction(name, declType, returnType string, params []string) bool {
	if _, ok := t.current.Lookup(name); ok {
		return false
	}
	return t.current.Insert(NewFunction(name, declType, returnType, params))
}

// Lookup searches the current scope and then each enclosing scope
func (t *SymbolTable) Lookup(name string) (*Symbol, bool) {
	for s := t.current; s != nil; s = s.parent {
		if sym, ok := s.Lookup(name); ok {
			return sym, true
		}
	}
	return nil, false
}

// LookupCurrent searches only the current scope
func (t *SymbolTable) LookupCurrent(name string) (*Symbol, bool) {
	return t.current.Lookup(name)
}

// Delete removes a symbol from the current scope
func (t *SymbolTable) Delete(name string) bool {
	return t.current.Delete(name)
}

// PrintCurrent writes the current scope to w
func (t *SymbolTable) PrintCurrent(w io.Writer) error {
	return t.current.Print(w)
}

// PrintAll writes every scope from the innermost out to the root,
// bracketed by delimiter lines.
func (t *SymbolTable) PrintAll(w io.Writer) error {
	var sb strings.Builder
	sb.WriteString(ChainDelimiter + "\n\n")
	for s := t.current; s != nil; s = s.parent {
		s.writeTo(&sb)
	}
	sb.WriteString(ChainDelimiter + "\n\n")

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("failed to print scope chain: %w", err)
	}
	return nil
}
