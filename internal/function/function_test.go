package function

import (
	"testing"

	"github.com/akashmaji946/mix/internal/ast"
	"github.com/akashmaji946/mix/internal/environ"
	"github.com/akashmaji946/mix/internal/lexer"
	"github.com/stretchr/testify/assert"
)

func decl(name string, params ...string) *ast.FunctionStmt {
	paramTokens := make([]lexer.Token, len(params))
	for i, p := range params {
		paramTokens[i] = lexer.Token{Kind: lexer.Identifier, Lexeme: p}
	}
	return &ast.FunctionStmt{Name: lexer.Token{Kind: lexer.Identifier, Lexeme: name}, Params: paramTokens}
}

func TestFunction_NameAndArity(t *testing.T) {
	f := New(decl("add", "a", "b"), environ.New(nil))
	assert.Equal(t, "add", f.Name())
	assert.Equal(t, 2, f.Arity())
}

func TestFunction_ZeroArity(t *testing.T) {
	f := New(decl("noop"), environ.New(nil))
	assert.Equal(t, 0, f.Arity())
}

func TestFunction_StringIsCanonical(t *testing.T) {
	f := New(decl("add", "a", "b"), environ.New(nil))
	assert.Equal(t, "<fn add>", f.String())
}

func TestFunction_Signature(t *testing.T) {
	f := New(decl("add", "a", "b"), environ.New(nil))
	assert.Equal(t, "add(a, b)", f.Signature())
}

func TestFunction_ClosureIsSharedNotCopied(t *testing.T) {
	closure := environ.New(nil)
	closure.Define("x", nil)
	f := New(decl("readX"), closure)

	closure.Assign("x", nil)
	assert.Same(t, closure, f.Closure)
}
