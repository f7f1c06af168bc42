// Package function implements Mix's function runtime value: a reference to
// the declaring FunctionStmt plus the environment active at the point of
// declaration, its closure.
package function

import (
	"fmt"
	"strings"

	"github.com/akashmaji946/mix/internal/ast"
	"github.com/akashmaji946/mix/internal/environ"
)

// Function is a first-class function value. Closure is captured by
// reference, never copied (see internal/environ and DESIGN.md): every call
// creates a new environment enclosed by Closure, so later mutations of
// captured variables are visible the next time the function runs.
type Function struct {
	Decl    *ast.FunctionStmt
	Closure *environ.Environment
}

// New wraps decl with the environment active at its declaration site.
func New(decl *ast.FunctionStmt, closure *environ.Environment) *Function {
	return &Function{Decl: decl, Closure: closure}
}

// Name is the function's declared name, used in error messages and by
// String.
func (f *Function) Name() string { return f.Decl.Name.Lexeme }

// Arity is the function's declared parameter count.
func (f *Function) Arity() int { return len(f.Decl.Params) }

func (f *Function) Type() string { return "function" }

// String renders "<fn NAME>", Mix's canonical stringification for
// functions (spec.md §4.4).
func (f *Function) String() string {
	return fmt.Sprintf("<fn %s>", f.Name())
}

// Signature is a debugging aid: "add(a, b)".
func (f *Function) Signature() string {
	names := make([]string, len(f.Decl.Params))
	for i, p := range f.Decl.Params {
		names[i] = p.Lexeme
	}
	return fmt.Sprintf("%s(%s)", f.Name(), strings.Join(names, ", "))
}
