package compiler

import (
	"github.com/antlr4-go/antlr/v4"
	"github.com/arc-language/core-parser"
)

// declListener walks an Arc parse tree and drives the symbol table:
// functions and blocks open scopes, declarations insert symbols and
// identifiers in expressions are looked up.
type declListener struct {
	*antlr.BaseParseTreeListener
	ctx *Context
}

func newDeclListener(ctx *Context) *declListener {
	return &declListener{
		BaseParseTreeListener: &antlr.BaseParseTreeListener{},
		ctx:                   ctx,
	}
}

func posOf(tok antlr.Token) Pos {
	return Pos{Line: tok.GetLine(), Column: tok.GetColumn() + 1}
}

func (l *declListener) EnterEveryRule(rule antlr.ParserRuleContext) {
	switch n := rule.(type) {
	case *parser.FunctionDeclContext:
		l.enterFunction(n)
	case *parser.BlockContext:
		if !isFunctionBody(n) {
			l.ctx.PushScope()
		}
	case *parser.StructDeclContext:
		if n.IDENTIFIER() != nil {
			l.ctx.DeclareType(n.IDENTIFIER().GetText(), posOf(n.IDENTIFIER().GetSymbol()))
		}
	case *parser.ClassDeclContext:
		if n.IDENTIFIER() != nil {
			l.ctx.DeclareType(n.IDENTIFIER().GetText(), posOf(n.IDENTIFIER().GetSymbol()))
		}
	case *parser.PrimaryExpressionContext:
		if n.IDENTIFIER() != nil {
			l.ctx.Reference(n.IDENTIFIER().GetText(), posOf(n.IDENTIFIER().GetSymbol()))
		}
	}
}

func (l *declListener) ExitEveryRule(rule antlr.ParserRuleContext) {
	switch n := rule.(type) {
	case *parser.FunctionDeclContext:
		l.ctx.ExitFunction()
	case *parser.BlockContext:
		if !isFunctionBody(n) {
			l.ctx.PopScope()
		}
	case *parser.VariableDeclContext:
		l.exitVariable(n)
	case *parser.ConstDeclContext:
		l.exitConst(n)
	}
}

// The body of a function shares the scope holding its parameters
func isFunctionBody(block *parser.BlockContext) bool {
	_, ok := block.GetParent().(*parser.FunctionDeclContext)
	return ok
}

// functionName prefixes methods with their class or struct name
func functionName(ctx *parser.FunctionDeclContext) string {
	name := ctx.IDENTIFIER().GetText()
	if parent := ctx.GetParent(); parent != nil {
		if classMember, ok := parent.(*parser.ClassMemberContext); ok {
			if classDecl, ok := classMember.GetParent().(*parser.ClassDeclContext); ok && classDecl.IDENTIFIER() != nil {
				return classDecl.IDENTIFIER().GetText() + "_" + name
			}
		} else if structMember, ok := parent.(*parser.StructMemberContext); ok {
			if structDecl, ok := structMember.GetParent().(*parser.StructDeclContext); ok && structDecl.IDENTIFIER() != nil {
				return structDecl.IDENTIFIER().GetText() + "_" + name
			}
		}
	}
	return name
}

// Rules recovered from a syntax error may lack tokens. A nameless function
// still opens a scope so that ExitFunction stays balanced.
func (l *declListener) enterFunction(ctx *parser.FunctionDeclContext) {
	if ctx.IDENTIFIER() == nil {
		l.ctx.PushScope()
		return
	}
	name := functionName(ctx)

	returnType := VoidType
	if ctx.Type_() != nil {
		returnType = ctx.Type_().GetText()
	}

	params := make([]Param, 0)
	if ctx.ParameterList() != nil {
		for _, param := range ctx.ParameterList().AllParameter() {
			if param.IDENTIFIER() == nil || param.Type_() == nil {
				continue
			}
			params = append(params, Param{
				Name: param.IDENTIFIER().GetText(),
				Type: param.Type_().GetText(),
				Pos:  posOf(param.IDENTIFIER().GetSymbol()),
			})
		}
	}

	l.ctx.DeclareFunction(name, returnType, params, posOf(ctx.IDENTIFIER().GetSymbol()))
	l.ctx.EnterFunction(name, params)
}

func (l *declListener) exitVariable(ctx *parser.VariableDeclContext) {
	if ctx.IDENTIFIER() == nil {
		return
	}
	name := ctx.IDENTIFIER().GetText()
	pos := posOf(ctx.IDENTIFIER().GetSymbol())

	typeText := ""
	if ctx.Type_() != nil {
		typeText = ctx.Type_().GetText()
	}

	if ctx.Expression() != nil && typeText != "" {
		l.ctx.DeclareInitialized(name, typeText, ctx.Expression().GetText(), pos)
		return
	}
	l.ctx.DeclareVariable(name, typeText, pos)
}

func (l *declListener) exitConst(ctx *parser.ConstDeclContext) {
	if ctx.IDENTIFIER() == nil {
		return
	}
	l.ctx.DeclareVariable(ctx.IDENTIFIER().GetText(), "", posOf(ctx.IDENTIFIER().GetSymbol()))
}

// syntaxErrorListener reports parse errors as diagnostics
type syntaxErrorListener struct {
	*antlr.DefaultErrorListener
	ctx *Context
}

func (s *syntaxErrorListener) SyntaxError(_ antlr.Recognizer, _ interface{}, line, column int, msg string, _ antlr.RecognitionException) {
	s.ctx.errorAt(Pos{Line: line, Column: column + 1}, "syntax error: %s", msg)
}
