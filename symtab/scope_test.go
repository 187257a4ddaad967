package symtab

import (
	"strings"
	"testing"
)

func TestScopeHashIsStable(t *testing.T) {
	s := NewScope(1, 7, nil)

	tests := []struct {
		name   string
		bucket int
	}{
		{"x", 5},
		{"arr", 3},
		{"foo", 5},
		{"y", 6},
		{"main", 0},
		{"sum", 1},
	}

	for _, tt := range tests {
		for i := 0; i < 3; i++ {
			if got := s.hash(tt.name); got != tt.bucket {
				t.Fatalf("hash(%q) = %d, expected %d", tt.name, got, tt.bucket)
			}
		}
	}
}

func TestScopeInsertLookup(t *testing.T) {
	s := NewScope(1, 7, nil)

	for _, name := range []string{"a", "b", "c", "x", "foo"} {
		if !s.Insert(NewVariable(name, DeclID, "int")) {
			t.Fatalf("insert of %q failed", name)
		}
		sym, ok := s.Lookup(name)
		if !ok {
			t.Fatalf("lookup of %q failed right after insert", name)
		}
		if sym.Name != name || sym.Category != Variable {
			t.Errorf("lookup of %q returned %+v", name, sym)
		}
	}

	if _, ok := s.Lookup("missing"); ok {
		t.Errorf("lookup of undeclared name succeeded")
	}
	if s.Len() != 5 {
		t.Errorf("expected 5 symbols, got %d", s.Len())
	}
}

func TestScopeRejectsRedeclaration(t *testing.T) {
	s := NewScope(1, 7, nil)
	first := NewVariable("x", DeclID, "int")

	if !s.Insert(first) {
		t.Fatal("first insert failed")
	}
	if s.Insert(NewFunction("x", DeclID, "void", nil)) {
		t.Fatal("second insert of the same name succeeded")
	}

	sym, ok := s.Lookup("x")
	if !ok || sym != first {
		t.Errorf("first record was not kept: %+v", sym)
	}
	if s.Len() != 1 {
		t.Errorf("expected 1 symbol, got %d", s.Len())
	}
}

func TestScopeDelete(t *testing.T) {
	s := NewScope(1, 7, nil)
	s.Insert(NewVariable("x", DeclID, "int"))
	s.Insert(NewVariable("foo", DeclID, "int"))

	if s.Delete("missing") {
		t.Error("delete of absent name succeeded")
	}
	if s.Len() != 2 {
		t.Errorf("failed delete changed the scope")
	}

	if !s.Delete("x") {
		t.Fatal("delete of x failed")
	}
	if _, ok := s.Lookup("x"); ok {
		t.Error("x still found after delete")
	}
	if _, ok := s.Lookup("foo"); !ok {
		t.Error("foo lost after deleting x from the same bucket")
	}
	if s.Delete("x") {
		t.Error("second delete of x succeeded")
	}
}

func TestScopePrint(t *testing.T) {
	s := NewScope(3, 7, nil)
	s.Insert(NewVariable("x", DeclID, "int"))
	s.Insert(NewArray("arr", DeclID, "int", 10))
	s.Insert(NewFunction("foo", DeclID, "float", []string{"int", "int"}))
	s.Insert(NewVariable("main", DeclID, "int"))

	expected := "ScopeTable # 3\n" +
		"Bucket 0 --> <main, ID> \n" +
		"Bucket 3 --> <arr, ID, int[10]> \n" +
		"Bucket 5 --> <foo, ID, float, {int, int}> <x, ID> \n"

	var sb strings.Builder
	if err := s.Print(&sb); err != nil {
		t.Fatal(err)
	}
	if sb.String() != expected {
		t.Errorf("expected:\n%q\ngot:\n%q", expected, sb.String())
	}

	expectedNames := []string{"main", "arr", "foo", "x"}
	names := s.Names()
	if strings.Join(names, ",") != strings.Join(expectedNames, ",") {
		t.Errorf("expected names %v, got %v", expectedNames, names)
	}
}

func TestScopePrintEmpty(t *testing.T) {
	var sb strings.Builder
	if err := NewScope(1, 7, nil).Print(&sb); err != nil {
		t.Fatal(err)
	}
	if sb.String() != "ScopeTable # 1\n" {
		t.Errorf("unexpected dump %q", sb.String())
	}
}

func TestScopeSingleBucket(t *testing.T) {
	s := NewScope(1, 1, nil)
	for _, name := range []string{"a", "b", "c"} {
		s.Insert(NewVariable(name, DeclID, "int"))
	}

	var sb strings.Builder
	s.Print(&sb)
	expected := "ScopeTable # 1\nBucket 0 --> <c, ID> <b, ID> <a, ID> \n"
	if sb.String() != expected {
		t.Errorf("expected %q, got %q", expected, sb.String())
	}
}
