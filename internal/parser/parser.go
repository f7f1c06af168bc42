// Package parser implements a recursive-descent parser with one token of
// look-ahead for Mix. It converts a lexer.Lexer's token stream into an
// ast.Program, reporting syntax errors through a diag.Reporter and
// recovering via panic-mode synchronization rather than aborting.
package parser

import (
	"strings"

	"github.com/akashmaji946/mix/internal/ast"
	"github.com/akashmaji946/mix/internal/diag"
	"github.com/akashmaji946/mix/internal/lexer"
)

// Parser holds the look-ahead token and the diagnostic sink. On
// construction it pulls the first token, so current is always valid.
type Parser struct {
	lex      *lexer.Lexer
	current  lexer.Token
	reporter diag.Reporter
	hadError bool // set by errorf, cleared and checked around each declaration
}

// New creates a Parser reading from src and reporting through reporter.
func New(src string, reporter diag.Reporter) *Parser {
	p := &Parser{lex: lexer.New(src), reporter: reporter}
	p.current = p.nextToken()
	return p
}

// nextToken pulls the next token from the lexer, reporting a lex-phase
// diagnostic immediately if it's Unknown (spec.md §7: "Lex errors surface
// only as token kinds; the parser reports them when it encounters them").
func (p *Parser) nextToken() lexer.Token {
	tok := p.lex.NextToken()
	if tok.Kind == lexer.Unknown {
		if strings.HasPrefix(tok.Lexeme, `"`) {
			p.errorf(diag.UnterminatedString, tok.Line, "unterminated string starting %s", tok.Lexeme)
		} else {
			p.errorf(diag.UnknownCharacter, tok.Line, "unexpected character %q", tok.Lexeme)
		}
	}
	return tok
}

// Parse runs the program production and always returns a Program, even if
// some declarations in it were dropped because of a parse error.
func (p *Parser) Parse() *ast.Program {
	return &ast.Program{Declarations: p.declarationList(lexer.EOF)}
}

// declarationList parses declaration* up to (not including) a token of
// stop, synchronizing after any declaration that reported an error so one
// malformed statement never prevents its neighbors from parsing. Used for
// both the top-level program and the body of a block.
func (p *Parser) declarationList(stop lexer.Kind) []ast.Statement {
	var stmts []ast.Statement
	for !p.check(stop) && !p.check(lexer.EOF) {
		p.hadError = false
		decl := p.declaration()
		if p.hadError {
			p.synchronize()
			continue
		}
		if decl != nil {
			stmts = append(stmts, decl)
		}
	}
	return stmts
}

// ---- token helpers --------------------------------------------------------

func (p *Parser) advance() lexer.Token {
	prev := p.current
	if prev.Kind != lexer.EOF {
		p.current = p.nextToken()
	}
	return prev
}

func (p *Parser) check(kind lexer.Kind) bool {
	return p.current.Kind == kind
}

func (p *Parser) match(kinds ...lexer.Kind) bool {
	for _, k := range kinds {
		if p.check(k) {
			p.advance()
			return true
		}
	}
	return false
}

// consume advances past the expected kind or reports UnexpectedToken and
// returns the current token unconsumed so the caller can still attempt to
// build a partial node before synchronizing.
func (p *Parser) consume(kind lexer.Kind, context string) lexer.Token {
	if p.check(kind) {
		return p.advance()
	}
	p.errorf(diag.UnexpectedToken, p.current.Line,
		"expected %s %s, found %q", kind, context, p.current.Lexeme)
	return p.current
}

func (p *Parser) errorf(kind diag.Kind, line int, format string, args ...interface{}) {
	p.hadError = true
	if p.reporter != nil {
		p.reporter.Report(kind, diag.Sprint(format, args...), line)
	}
}

// synchronize discards tokens after a parse error until it consumes a `;`
// or sees a token that can start a new declaration, so one malformed
// statement never prevents the rest of the file from parsing.
func (p *Parser) synchronize() {
	for !p.check(lexer.EOF) {
		if p.current.Kind == lexer.Semicolon {
			p.advance()
			return
		}
		switch p.current.Kind {
		case lexer.Class, lexer.Fn, lexer.Let, lexer.If, lexer.While, lexer.Print:
			return
		}
		p.advance()
	}
}
