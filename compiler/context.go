package compiler

import (
	"fmt"

	"github.com/arc-language/core-builder/types"

	"github.com/arc-language/core-symtab/diagnostics"
	"github.com/arc-language/core-symtab/symtab"
)

// Pos is a 1-based source position
type Pos struct {
	Line   int
	Column int
}

// Param is one declared function parameter
type Param struct {
	Name string
	Type string
	Pos  Pos
}

// Context holds the state of a semantic pass over one package
type Context struct {
	Symbols     *symtab.SymbolTable
	Types       *symtab.TypeRegistry
	Diagnostics *diagnostics.DiagnosticEngine
	Logger      *Logger

	opts        Options
	currentFile string
	sinkErr     error
}

// NewContext creates a context whose symbol table uses opts.Buckets buckets.
// A bucket count below 1 is rejected.
func NewContext(opts Options, logger *Logger) (*Context, error) {
	opts = opts.withDefaults()

	table, err := symtab.New(opts.Buckets)
	if err != nil {
		return nil, err
	}

	return &Context{
		Symbols:     table,
		Types:       symtab.NewTypeRegistry(),
		Diagnostics: diagnostics.NewDiagnosticEngine(),
		Logger:      logger,
		opts:        opts,
	}, nil
}

// Reset drops the diagnostics, registered types and log counters of a
// previous check so the context can check another unit from scratch.
func (c *Context) Reset() {
	c.Diagnostics.Reset()
	c.Types = symtab.NewTypeRegistry()
	c.Logger.Reset()
	c.sinkErr = nil
}

// SetFile sets the file diagnostics are attributed to
func (c *Context) SetFile(name string) {
	c.currentFile = name
}

func (c *Context) errorAt(pos Pos, format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)
	c.Logger.Debug("%s:%d:%d: %s", c.currentFile, pos.Line, pos.Column, message)
	c.Diagnostics.ErrorAt(c.currentFile, pos.Line, pos.Column, message)
}

func (c *Context) noteAt(pos Pos, format string, args ...interface{}) {
	c.Diagnostics.InfoAt(c.currentFile, pos.Line, pos.Column, fmt.Sprintf(format, args...))
}

func (c *Context) warningAt(pos Pos, format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)
	c.Logger.Debug("%s:%d:%d: %s", c.currentFile, pos.Line, pos.Column, message)
	c.Diagnostics.WarningAt(c.currentFile, pos.Line, pos.Column, message)
}

// knownType reports whether a type annotation can be resolved
func (c *Context) knownType(name string) bool {
	if name == AutoType {
		return true
	}
	_, ok := c.Types.Resolve(name)
	return ok
}

// PushScope opens a nested scope
func (c *Context) PushScope() {
	c.Symbols.EnterScope()
	c.Logger.Debug("Entered scope %d", c.Symbols.Current().ID())
}

// PopScope dumps the current scope according to the dump mode and closes it
func (c *Context) PopScope() {
	switch c.opts.Dump {
	case DumpScope:
		c.recordSinkErr(c.Symbols.PrintCurrent(c.opts.Sink))
	case DumpChain:
		c.recordSinkErr(c.Symbols.PrintAll(c.opts.Sink))
	}

	id := c.Symbols.Current().ID()
	if c.Symbols.ExitScope() {
		c.Logger.Debug("Exited scope %d", id)
	} else {
		c.Logger.Warning("Attempted to exit the root scope")
	}
}

// Finish writes the final scope chain when dumping is enabled and releases
// every scope. The first dump failure, if any, is returned.
func (c *Context) Finish() error {
	if c.opts.Dump != DumpNone {
		c.recordSinkErr(c.Symbols.PrintAll(c.opts.Sink))
	}
	c.Symbols.Close()

	err := c.sinkErr
	c.sinkErr = nil
	return err
}

func (c *Context) recordSinkErr(err error) {
	if err == nil {
		return
	}
	c.Logger.Error("Failed to write scope dump: %v", err)
	if c.sinkErr == nil {
		c.sinkErr = err
	}
}

// DeclareType registers a struct or class name so declarations may use it
func (c *Context) DeclareType(name string, pos Pos) bool {
	if _, exists := c.Types.Resolve(name); exists {
		c.errorAt(pos, "redefinition of type '%s'", name)
		return false
	}
	c.Types.Register(name, types.NewStruct(name, nil, false))
	c.Logger.Debug("Registered type %s", name)
	return true
}

// DeclareVariable records a variable or array declaration in the current
// scope. typeText is the annotation as written, empty when absent. The
// inserted symbol is returned, nil on redeclaration.
func (c *Context) DeclareVariable(name, typeText string, pos Pos) *symtab.Symbol {
	if _, exists := c.Symbols.LookupCurrent(name); exists {
		c.errorAt(pos, "redeclaration of '%s'", name)
		return nil
	}

	dt := parseDeclType(typeText)
	var sym *symtab.Symbol
	if dt.IsArray {
		sym = symtab.NewArray(name, symtab.DeclID, dt.Base, dt.Size)
	} else {
		sym = symtab.NewVariable(name, symtab.DeclID, dt.Base)
	}

	if !c.knownType(dt.Base) {
		c.errorAt(pos, "unknown type '%s' for '%s'", dt.Base, name)
		sym.Erroneous = true
	}
	if dt.IsArray && dt.Size == 0 {
		c.errorAt(pos, "array '%s' has zero size", name)
		sym.Erroneous = true
	}

	c.Symbols.Insert(sym)
	c.Logger.Debug("Declared %s %s in scope %d", sym.Category, sym, c.Symbols.Current().ID())
	return sym
}

// DeclareFunction records a function in the current scope. A second
// declaration is reported as a redefinition when the signatures match and as
// a conflicting declaration otherwise.
func (c *Context) DeclareFunction(name, returnType string, params []Param, pos Pos) *symtab.Symbol {
	if returnType == "" {
		returnType = VoidType
	}

	paramTypes := make([]string, 0, len(params))
	for _, p := range params {
		paramTypes = append(paramTypes, p.Type)
	}
	sym := symtab.NewFunction(name, symtab.DeclID, returnType, paramTypes)

	if existing, exists := c.Symbols.LookupCurrent(name); exists {
		if existing.SameSignature(sym) {
			c.errorAt(pos, "redefinition of function '%s'", name)
		} else {
			c.errorAt(pos, "conflicting declaration of '%s'", name)
		}
		c.noteAt(pos, "previous declaration of '%s' is %s %s", name, existing.Category, existing)
		return nil
	}

	if !c.knownType(returnType) {
		c.errorAt(pos, "unknown return type '%s' for function '%s'", returnType, name)
		sym.Erroneous = true
	}
	// unknown parameter types are reported once, by EnterFunction
	for _, p := range params {
		if !c.knownType(parseDeclType(p.Type).Base) {
			sym.Erroneous = true
		}
	}

	c.Symbols.Insert(sym)
	c.Logger.Debug("Declared function %s in scope %d", sym, c.Symbols.Current().ID())
	return sym
}

// EnterFunction opens the function's scope and declares its parameters
func (c *Context) EnterFunction(name string, params []Param) {
	c.PushScope()
	for _, p := range params {
		if _, exists := c.Symbols.LookupCurrent(p.Name); exists {
			c.errorAt(p.Pos, "duplicate parameter '%s' in function '%s'", p.Name, name)
			continue
		}
		c.DeclareVariable(p.Name, p.Type, p.Pos)
	}
}

// ExitFunction closes the function's scope
func (c *Context) ExitFunction() {
	c.PopScope()
}

// Reference resolves a use of name, reporting undeclared identifiers.
// Type names are accepted without a symbol.
func (c *Context) Reference(name string, pos Pos) (*symtab.Symbol, bool) {
	if sym, ok := c.Symbols.Lookup(name); ok {
		return sym, true
	}
	if _, isType := c.Types.Resolve(name); isType {
		return nil, false
	}
	c.errorAt(pos, "undeclared identifier '%s'", name)
	return nil, false
}

// initSource is the type of a simple initializer, resolved before the
// declared name enters its scope
type initSource struct {
	typ  string
	kind initKind
}

func (c *Context) resolveInitializer(initText string) (initSource, bool) {
	kind := classifyInit(initText)
	var typ string
	switch kind {
	case initInt:
		typ = "int"
	case initFloat:
		typ = "float"
	case initBool:
		typ = "bool"
	case initIdent:
		other, ok := c.Symbols.Lookup(initText)
		if !ok || other.Erroneous || other.Category != symtab.Variable {
			return initSource{}, false
		}
		typ = other.DataType
	default:
		return initSource{}, false
	}
	if _, ok := c.Types.Resolve(typ); !ok {
		return initSource{}, false
	}
	return initSource{typ: typ, kind: kind}, true
}

// DeclareInitialized declares a variable with a simple initializer (literal
// or identifier) and compares the declared type with the initializer's.
// The initializer is resolved first, so `let x: float = x` in a nested scope
// sees the outer x. Incompatible types are errors, implicit numeric
// conversions are warnings.
func (c *Context) DeclareInitialized(name, typeText, initText string, pos Pos) (*symtab.Symbol, symtab.Compatibility) {
	src, resolved := c.resolveInitializer(initText)

	sym := c.DeclareVariable(name, typeText, pos)
	if sym == nil || !resolved {
		return sym, symtab.Exact
	}
	return sym, c.checkInitializer(sym, src, pos)
}

func (c *Context) checkInitializer(sym *symtab.Symbol, src initSource, pos Pos) symtab.Compatibility {
	if sym.Erroneous || sym.Category != symtab.Variable {
		return symtab.Exact
	}
	target := sym.DataType
	if _, ok := c.Types.Resolve(target); !ok {
		return symtab.Exact
	}

	result := c.Types.Compatible(target, src.typ)
	switch result {
	case symtab.Incompatible:
		c.errorAt(pos, "cannot initialize '%s' of type '%s' with a value of type '%s'", sym.Name, target, src.typ)
	case symtab.Conversion:
		// untyped integer literals and float literals into float types are not conversions
		if src.kind == initInt {
			return symtab.Exact
		}
		if src.kind == initFloat && c.Types.IsFloat(target) {
			return symtab.Exact
		}
		c.warningAt(pos, "implicit conversion from '%s' to '%s' in initialization of '%s'", src.typ, target, sym.Name)
	}
	return result
}
