package symtab

import (
	"github.com/arc-language/core-builder/types"
)

// Compatibility is the outcome of comparing two declared types
type Compatibility int

const (
	Incompatible Compatibility = iota
	Exact
	// Conversion means both types are numeric but differ, so an implicit
	// conversion takes place
	Conversion
)

func (c Compatibility) String() string {
	switch c {
	case Exact:
		return "exact"
	case Conversion:
		return "conversion"
	}
	return "incompatible"
}

// TypeRegistry resolves type names used in declarations
type TypeRegistry struct {
	named map[string]types.Type
}

// NewTypeRegistry creates a registry holding the builtin types
func NewTypeRegistry() *TypeRegistry {
	r := &TypeRegistry{named: make(map[string]types.Type)}
	r.registerBuiltinTypes()
	return r
}

func (r *TypeRegistry) registerBuiltinTypes() {
	r.named["i8"] = types.I8
	r.named["i16"] = types.I16
	r.named["i32"] = types.I32
	r.named["i64"] = types.I64
	r.named["u8"] = types.U8
	r.named["u16"] = types.U16
	r.named["u32"] = types.U32
	r.named["u64"] = types.U64
	r.named["f32"] = types.F32
	r.named["f64"] = types.F64

	r.named["int8"] = types.I8
	r.named["int16"] = types.I16
	r.named["int32"] = types.I32
	r.named["int64"] = types.I64
	r.named["int"] = types.I64

	r.named["uint8"] = types.U8
	r.named["uint16"] = types.U16
	r.named["uint32"] = types.U32
	r.named["uint64"] = types.U64
	r.named["uint"] = types.U64
	r.named["byte"] = types.U8
	r.named["char"] = types.I8
	r.named["rune"] = types.I32

	r.named["float32"] = types.F32
	r.named["float64"] = types.F64
	r.named["float"] = types.F64
	r.named["double"] = types.F64

	r.named["void"] = types.Void
	r.named["bool"] = types.I1
}

// Resolve returns the type registered under name
func (r *TypeRegistry) Resolve(name string) (types.Type, bool) {
	t, ok := r.named[name]
	return t, ok
}

// Register adds or replaces a named type
func (r *TypeRegistry) Register(name string, typ types.Type) {
	r.named[name] = typ
}

// IsNumeric reports whether name resolves to an integer or float type.
// bool is an i1 but does not count.
func (r *TypeRegistry) IsNumeric(name string) bool {
	t, ok := r.named[name]
	if !ok {
		return false
	}
	return isNumeric(t)
}

// IsFloat reports whether name resolves to a floating point type
func (r *TypeRegistry) IsFloat(name string) bool {
	t, ok := r.named[name]
	return ok && types.IsFloat(t)
}

func isNumeric(t types.Type) bool {
	if types.IsFloat(t) {
		return true
	}
	return types.IsInteger(t) && !t.Equal(types.I1)
}

// Compatible compares the declared types a and b
func (r *TypeRegistry) Compatible(a, b string) Compatibility {
	ta, ok := r.named[a]
	if !ok {
		return Incompatible
	}
	tb, ok := r.named[b]
	if !ok {
		return Incompatible
	}
	if ta.Kind() == types.VoidKind || tb.Kind() == types.VoidKind {
		return Incompatible
	}
	if ta.Equal(tb) {
		return Exact
	}
	if isNumeric(ta) && isNumeric(tb) {
		return Conversion
	}
	return Incompatible
}
