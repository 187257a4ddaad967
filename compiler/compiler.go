package compiler

import (
	"fmt"
	"path/filepath"

	"github.com/antlr4-go/antlr/v4"
	"github.com/arc-language/core-parser"

	"github.com/arc-language/core-symtab/diagnostics"
	"github.com/arc-language/core-symtab/symtab"
)

// Checker runs the declaration pass over Arc sources
type Checker struct {
	context  *Context
	logger   *Logger
	importer *Importer
}

// NewChecker creates a checker for the named module
func NewChecker(moduleName string, opts Options) (*Checker, error) {
	level := LogLevelWarning
	if opts.Verbose {
		level = LogLevelDebug
	}
	logger := NewLogger(fmt.Sprintf("[Checker:%s]", moduleName), opts.LogOutput, level)

	ctx, err := NewContext(opts, logger)
	if err != nil {
		return nil, err
	}

	logger.Info("Created checker for module '%s' (%d buckets, dump %s)", moduleName, ctx.opts.Buckets, ctx.opts.Dump)
	return &Checker{
		context:  ctx,
		logger:   logger,
		importer: NewImporter(),
	}, nil
}

// CheckFile checks a single Arc source file
func (c *Checker) CheckFile(filename string) error {
	c.context.Reset()
	c.logger.Info("Checking file: %s", filename)

	absPath, err := filepath.Abs(filename)
	if err != nil {
		return fmt.Errorf("failed to resolve path: %w", err)
	}

	input, err := antlr.NewFileStream(absPath)
	if err != nil {
		c.logger.Error("Failed to open file '%s': %v", filename, err)
		return fmt.Errorf("failed to open file: %w", err)
	}

	c.walk(input, filename)
	return c.finish(filename)
}

// CheckString checks Arc source held in memory
func (c *Checker) CheckString(source string) error {
	c.context.Reset()
	c.logger.Info("Checking source string (%d bytes)", len(source))

	c.walk(antlr.NewInputStream(source), "<string>")
	return c.finish("<string>")
}

// CheckPackage checks every source file of a directory. The files share one
// root scope, as declarations in a package are visible across its files.
func (c *Checker) CheckPackage(dirPath string) error {
	c.context.Reset()
	files, err := c.importer.GetSourceFiles(dirPath)
	if err != nil {
		c.logger.Error("Failed to find source files in '%s': %v", dirPath, err)
		return err
	}

	c.logger.Info("Checking package at '%s' with %d file(s)", dirPath, len(files))
	for i, file := range files {
		c.logger.Debug("Checking file %d/%d: %s", i+1, len(files), file)
		input, err := antlr.NewFileStream(file)
		if err != nil {
			c.context.Symbols.Close()
			return fmt.Errorf("failed to open file: %w", err)
		}
		c.walk(input, file)
	}

	return c.finish(dirPath)
}

func (c *Checker) walk(input antlr.CharStream, filename string) {
	c.context.SetFile(filename)

	errListener := &syntaxErrorListener{
		DefaultErrorListener: antlr.NewDefaultErrorListener(),
		ctx:                  c.context,
	}

	c.logger.Debug("Lexing file: %s", filename)
	lexer := parser.NewArcLexer(input)
	lexer.RemoveErrorListeners()
	lexer.AddErrorListener(errListener)
	stream := antlr.NewCommonTokenStream(lexer, antlr.TokenDefaultChannel)

	c.logger.Debug("Parsing file: %s", filename)
	p := parser.NewArcParser(stream)
	p.RemoveErrorListeners()
	p.AddErrorListener(errListener)
	tree := p.CompilationUnit()

	c.logger.Debug("Walking declarations in: %s", filename)
	antlr.ParseTreeWalkerDefault.Walk(newDeclListener(c.context), tree)
}

func (c *Checker) finish(what string) error {
	if err := c.context.Finish(); err != nil {
		return fmt.Errorf("failed to write scope dump: %w", err)
	}

	diags := c.context.Diagnostics
	if diags.HasErrors() {
		return fmt.Errorf("semantic check failed with %d error(s) in %s", diags.ErrorCount(), what)
	}

	c.logger.Info("Successfully checked %s (%d warning(s))", what, diags.WarningCount())
	return nil
}

// Diagnostics returns the diagnostics collected so far
func (c *Checker) Diagnostics() *diagnostics.DiagnosticEngine {
	return c.context.Diagnostics
}

// Symbols returns the checker's symbol table
func (c *Checker) Symbols() *symtab.SymbolTable {
	return c.context.Symbols
}

// PrintSummary writes the logger's error and warning counts of the last check
func (c *Checker) PrintSummary() {
	c.logger.PrintSummary()
}
