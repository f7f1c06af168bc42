package parser

import (
	"github.com/akashmaji946/mix/internal/ast"
	"github.com/akashmaji946/mix/internal/diag"
	"github.com/akashmaji946/mix/internal/lexer"
)

// expression := assignment
func (p *Parser) expression() ast.Expression {
	return p.assignment()
}

// assignment := equality ('=' assignment)?    ; right-associative, LHS must
// be a Variable. If it isn't, the parser reports InvalidAssignmentTarget
// but keeps the already-parsed left side rather than crashing.
func (p *Parser) assignment() ast.Expression {
	left := p.equality()

	equals := p.current
	if p.match(lexer.Assign) {
		value := p.assignment()

		if v, ok := left.(*ast.Variable); ok {
			return &ast.Assign{Name: v.Name, Value: value}
		}
		p.errorf(diag.InvalidAssignmentTarget, equals.Line, "invalid assignment target")
		return left
	}
	return left
}

// equality := comparison ; operators are parsed here but evaluation of
// comparison/equality is currently a documented no-op (spec.md §4.4, §9).
func (p *Parser) equality() ast.Expression {
	left := p.comparison()
	for p.check(lexer.Equal) || p.check(lexer.NotEqual) {
		op := p.advance()
		right := p.comparison()
		left = &ast.Binary{Left: left, Op: op, Right: right}
	}
	return left
}

// comparison := term
func (p *Parser) comparison() ast.Expression {
	left := p.term()
	for p.check(lexer.Less) || p.check(lexer.LessEqual) || p.check(lexer.Greater) || p.check(lexer.GreaterEqual) {
		op := p.advance()
		right := p.term()
		left = &ast.Binary{Left: left, Op: op, Right: right}
	}
	return left
}

// term := factor (('+'|'-') factor)*
func (p *Parser) term() ast.Expression {
	left := p.factor()
	for p.check(lexer.Plus) || p.check(lexer.Minus) {
		op := p.advance()
		right := p.factor()
		left = &ast.Binary{Left: left, Op: op, Right: right}
	}
	return left
}

// factor := unary (('*'|'/') unary)*
func (p *Parser) factor() ast.Expression {
	left := p.unary()
	for p.check(lexer.Star) || p.check(lexer.Slash) {
		op := p.advance()
		right := p.unary()
		left = &ast.Binary{Left: left, Op: op, Right: right}
	}
	return left
}

// unary := call  ; spec.md's grammar has no unary operators today — this
// production exists as the named extension point between factor and call.
func (p *Parser) unary() ast.Expression {
	return p.call()
}

// call := primary ('(' arguments? ')')*
func (p *Parser) call() ast.Expression {
	expr := p.primary()
	for p.check(lexer.LeftParen) {
		paren := p.advance()
		args := p.arguments()
		p.consume(lexer.RightParen, "after call arguments")
		expr = &ast.Call{Callee: expr, Paren: paren, Args: args}
	}
	return expr
}

// arguments := expression (',' expression)*
func (p *Parser) arguments() []ast.Expression {
	var args []ast.Expression
	if p.check(lexer.RightParen) {
		return args
	}
	for {
		args = append(args, p.expression())
		if !p.match(lexer.Comma) {
			break
		}
	}
	return args
}

// primary := NUMBER | STRING | IDENT | '(' expression ')'
func (p *Parser) primary() ast.Expression {
	switch {
	case p.check(lexer.Number), p.check(lexer.String):
		tok := p.advance()
		return &ast.Literal{Token: tok}
	case p.check(lexer.Identifier):
		tok := p.advance()
		return &ast.Variable{Name: tok}
	case p.match(lexer.LeftParen):
		expr := p.expression()
		p.consume(lexer.RightParen, "after grouped expression")
		return expr
	}

	// An Unknown-kind token was already reported by nextToken as a lex
	// error (UnterminatedString/UnknownCharacter); reporting
	// ExpectedExpression on top of it would double-report the same
	// problem, so only report here when the token is otherwise
	// well-formed but out of place.
	if p.current.Kind != lexer.Unknown {
		p.errorf(diag.ExpectedExpression, p.current.Line, "expected an expression, found %q", p.current.Lexeme)
	} else {
		p.hadError = true
	}
	// Return a harmless placeholder so callers never have to nil-check an
	// Expression; the reported error is what makes this a failed parse.
	bad := p.current
	if bad.Kind != lexer.EOF {
		p.advance()
	}
	return &ast.Literal{Token: lexer.Token{Kind: lexer.Unknown, Lexeme: bad.Lexeme, Line: bad.Line}}
}
