package parser

import (
	"github.com/akashmaji946/mix/internal/ast"
	"github.com/akashmaji946/mix/internal/lexer"
)

// declaration := classDecl | fnDecl | varDecl | statement
//
// A parse error inside a declaration still returns the partially built
// node; the caller (declarationList) sees the error flag, synchronizes, and
// drops that node.
func (p *Parser) declaration() ast.Statement {
	var decl ast.Statement
	switch {
	case p.match(lexer.Class):
		decl = p.classDecl()
	case p.match(lexer.Fn):
		decl = p.fnDecl()
	case p.match(lexer.Let):
		decl = p.varDecl()
	default:
		decl = p.statement()
	}
	return decl
}

// classDecl := 'class' IDENT '{' (('virtual'|'override')? fnDecl | anyToken)* '}'
//
// Inside the braces, only `fn` introductions contribute methods; any other
// token is silently skipped one at a time. This is deliberate: Mix classes
// are method-only (spec.md §4.2). `virtual`/`override` are accepted as
// no-op modifiers ahead of a method's `fn` (reserved for a future dispatch
// feature — spec.md §9 Open Questions; they carry no evaluation semantics
// today).
func (p *Parser) classDecl() ast.Statement {
	name := p.consume(lexer.Identifier, "class name")
	p.consume(lexer.LeftBrace, "before class body")

	var methods []*ast.FunctionStmt
	for !p.check(lexer.RightBrace) && !p.check(lexer.EOF) {
		p.match(lexer.Virtual, lexer.Override)
		if p.match(lexer.Fn) {
			if m, ok := p.fnDecl().(*ast.FunctionStmt); ok {
				methods = append(methods, m)
			}
			continue
		}
		p.advance()
	}
	p.consume(lexer.RightBrace, "after class body")

	return &ast.ClassStmt{Name: name, Methods: methods}
}

// fnDecl := 'fn' IDENT '(' params? ')' block
func (p *Parser) fnDecl() ast.Statement {
	name := p.consume(lexer.Identifier, "function name")
	p.consume(lexer.LeftParen, "after function name")

	var params []lexer.Token
	if !p.check(lexer.RightParen) {
		for {
			params = append(params, p.consume(lexer.Identifier, "parameter name"))
			if !p.match(lexer.Comma) {
				break
			}
		}
	}
	p.consume(lexer.RightParen, "after parameters")
	p.consume(lexer.LeftBrace, "before function body")
	body := p.blockBody()

	return &ast.FunctionStmt{Name: name, Params: params, Body: body}
}

// varDecl := 'let' IDENT ('=' expression)? ';'
func (p *Parser) varDecl() ast.Statement {
	name := p.consume(lexer.Identifier, "variable name")

	var init ast.Expression
	if p.match(lexer.Assign) {
		init = p.expression()
	}
	p.consume(lexer.Semicolon, "after variable declaration")
	return &ast.VarStmt{Name: name, Initializer: init}
}

// ---- statements ------------------------------------------------------------

// statement := ifStmt | whileStmt | printStmt | block | exprStmt
func (p *Parser) statement() ast.Statement {
	switch {
	case p.match(lexer.If):
		return p.ifStmt()
	case p.match(lexer.While):
		return p.whileStmt()
	case p.match(lexer.Print):
		return p.printStmt()
	case p.match(lexer.LeftBrace):
		return &ast.BlockStmt{Statements: p.blockBody()}
	default:
		return p.exprStmt()
	}
}

// ifStmt := 'if' '(' expression ')' statement ('else' statement)?
func (p *Parser) ifStmt() ast.Statement {
	p.consume(lexer.LeftParen, "after 'if'")
	cond := p.expression()
	p.consume(lexer.RightParen, "after if condition")

	then := p.statement()
	var elseBranch ast.Statement
	if p.match(lexer.Else) {
		elseBranch = p.statement()
	}
	return &ast.IfStmt{Condition: cond, Then: then, Else: elseBranch}
}

// whileStmt := 'while' '(' expression ')' statement
func (p *Parser) whileStmt() ast.Statement {
	p.consume(lexer.LeftParen, "after 'while'")
	cond := p.expression()
	p.consume(lexer.RightParen, "after while condition")
	body := p.statement()
	return &ast.WhileStmt{Condition: cond, Body: body}
}

// printStmt := 'print' expression ';'
func (p *Parser) printStmt() ast.Statement {
	expr := p.expression()
	p.consume(lexer.Semicolon, "after print statement")
	return &ast.PrintStmt{Expr: expr}
}

// exprStmt := expression ';'
func (p *Parser) exprStmt() ast.Statement {
	expr := p.expression()
	p.consume(lexer.Semicolon, "after expression statement")
	return &ast.ExprStmt{Expr: expr}
}

// blockBody := declaration* '}' — the leading '{' is already consumed by
// the caller.
func (p *Parser) blockBody() []ast.Statement {
	stmts := p.declarationList(lexer.RightBrace)
	p.consume(lexer.RightBrace, "to close block")
	return stmts
}
