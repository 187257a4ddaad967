package symtab

import (
	"fmt"
	"io"
	"slices"
	"strings"
)

// Scope is one lexical scope: a fixed-size hash table of symbols chained by
// bucket, plus a link to the enclosing scope.
type Scope struct {
	id      int
	parent  *Scope
	buckets [][]*Symbol
}

// NewScope creates a scope with the given bucket count, at least one
func NewScope(id, bucketCount int, parent *Scope) *Scope {
	if bucketCount < 1 {
		bucketCount = 1
	}
	return &Scope{
		id:      id,
		parent:  parent,
		buckets: make([][]*Symbol, bucketCount),
	}
}

// ID returns the scope's unique id
func (s *Scope) ID() int {
	return s.id
}

// Parent returns the enclosing scope, nil for the root
func (s *Scope) Parent() *Scope {
	return s.parent
}

// hash is djb2 reduced to a bucket index
func (s *Scope) hash(name string) int {
	var h uint64 = 5381
	for i := 0; i < len(name); i++ {
		h = h*33 + uint64(name[i])
	}
	return int(h % uint64(len(s.buckets)))
}

// Insert adds a symbol to this scope. It returns false if the name is
// already declared here; outer scopes are not consulted.
func (s *Scope) Insert(sym *Symbol) bool {
	if _, ok := s.Lookup(sym.Name); ok {
		return false
	}
	idx := s.hash(sym.Name)
	s.buckets[idx] = slices.Insert(s.buckets[idx], 0, sym)
	return true
}

// Lookup searches this scope only
func (s *Scope) Lookup(name string) (*Symbol, bool) {
	for _, sym := range s.buckets[s.hash(name)] {
		if sym.Name == name {
			return sym, true
		}
	}
	return nil, false
}

// Delete removes a symbol from this scope
func (s *Scope) Delete(name string) bool {
	idx := s.hash(name)
	bucket := s.buckets[idx]
	for i, sym := range bucket {
		if sym.Name == name {
			bucket[i] = nil
			s.buckets[idx] = slices.Delete(bucket, i, i+1)
			return true
		}
	}
	return false
}

// Len returns the number of symbols in this scope
func (s *Scope) Len() int {
	n := 0
	for _, bucket := range s.buckets {
		n += len(bucket)
	}
	return n
}

// Names lists the declared names in dump order
func (s *Scope) Names() []string {
	names := make([]string, 0, s.Len())
	for _, bucket := range s.buckets {
		for _, sym := range bucket {
			names = append(names, sym.Name)
		}
	}
	return names
}

// release drops every symbol and the parent link
func (s *Scope) release() {
	for i := range s.buckets {
		clear(s.buckets[i])
		s.buckets[i] = nil
	}
	s.parent = nil
}

func (s *Scope) writeTo(sb *strings.Builder) {
	fmt.Fprintf(sb, "ScopeTable # %d\n", s.id)
	for i, bucket := range s.buckets {
		if len(bucket) == 0 {
			continue
		}
		fmt.Fprintf(sb, "Bucket %d --> ", i)
		for _, sym := range bucket {
			sb.WriteString(sym.String())
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
}

// Print writes the scope dump to w
func (s *Scope) Print(w io.Writer) error {
	var sb strings.Builder
	s.writeTo(&sb)
	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("failed to print scope %d: %w", s.id, err)
	}
	return nil
}
