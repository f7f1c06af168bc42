package parser

import (
	"testing"

	"github.com/akashmaji946/mix/internal/ast"
	"github.com/akashmaji946/mix/internal/diag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingReporter is a diag.Reporter test double that just tallies how
// many diagnostics were sent, without printing anything.
type countingReporter struct {
	count int
}

func (r *countingReporter) Report(kind diag.Kind, message string, line int) { r.count++ }

func parse(t *testing.T, src string) (*ast.Program, int) {
	t.Helper()
	rep := &countingReporter{}
	p := New(src, rep)
	prog := p.Parse()
	require.NotNil(t, prog)
	return prog, rep.count
}

func TestParse_ArithmeticPrecedence(t *testing.T) {
	prog, errs := parse(t, "print 1 + 2 * 3;")
	require.Equal(t, 0, errs)
	require.Len(t, prog.Declarations, 1)
	printStmt, ok := prog.Declarations[0].(*ast.PrintStmt)
	require.True(t, ok)
	bin, ok := printStmt.Expr.(*ast.Binary)
	require.True(t, ok)
	assert.Equal(t, "+", bin.Op.Lexeme)
	rhs, ok := bin.Right.(*ast.Binary)
	require.True(t, ok)
	assert.Equal(t, "*", rhs.Op.Lexeme)
}

func TestParse_LeftAssociativity(t *testing.T) {
	// 1 - 2 - 3 must parse as (1 - 2) - 3, not 1 - (2 - 3).
	prog, errs := parse(t, "print 1 - 2 - 3;")
	require.Equal(t, 0, errs)
	printStmt := prog.Declarations[0].(*ast.PrintStmt)
	outer := printStmt.Expr.(*ast.Binary)
	left, ok := outer.Left.(*ast.Binary)
	require.True(t, ok, "left operand of the outer minus must itself be a Binary")
	assert.Equal(t, "-", left.Op.Lexeme)
}

func TestParse_AssignmentIsRightAssociative(t *testing.T) {
	prog, errs := parse(t, "let a = 0; let b = 0; a = b = 1;")
	require.Equal(t, 0, errs)
	exprStmt := prog.Declarations[2].(*ast.ExprStmt)
	assign, ok := exprStmt.Expr.(*ast.Assign)
	require.True(t, ok)
	assert.Equal(t, "a", assign.Name.Lexeme)
	inner, ok := assign.Value.(*ast.Assign)
	require.True(t, ok)
	assert.Equal(t, "b", inner.Name.Lexeme)
}

func TestParse_InvalidAssignmentTargetReportsButDoesNotCrash(t *testing.T) {
	_, errs := parse(t, "1 + 2 = 3;")
	assert.Equal(t, 1, errs)
}

func TestParse_ClassBodyIsMethodOnly(t *testing.T) {
	prog, errs := parse(t, `class C { let ignored = 1; fn init() {} }`)
	require.Equal(t, 0, errs)
	class, ok := prog.Declarations[0].(*ast.ClassStmt)
	require.True(t, ok)
	require.Len(t, class.Methods, 1)
	assert.Equal(t, "init", class.Methods[0].Name.Lexeme)
}

func TestParse_VirtualAndOverrideAreAcceptedNoOpModifiers(t *testing.T) {
	prog, errs := parse(t, `class Shape { virtual fn area() {} } class Circle { override fn area() {} }`)
	require.Equal(t, 0, errs)
	shape := prog.Declarations[0].(*ast.ClassStmt)
	require.Len(t, shape.Methods, 1)
	assert.Equal(t, "area", shape.Methods[0].Name.Lexeme)
	circle := prog.Declarations[1].(*ast.ClassStmt)
	require.Len(t, circle.Methods, 1)
	assert.Equal(t, "area", circle.Methods[0].Name.Lexeme)
}

func TestParse_FunctionParams(t *testing.T) {
	prog, errs := parse(t, "fn add(a, b) { print a + b; }")
	require.Equal(t, 0, errs)
	fn := prog.Declarations[0].(*ast.FunctionStmt)
	require.Len(t, fn.Params, 2)
	assert.Equal(t, "a", fn.Params[0].Lexeme)
	assert.Equal(t, "b", fn.Params[1].Lexeme)
}

func TestParse_ErrorRecoveryLocality(t *testing.T) {
	// A malformed statement (missing semicolon) must not swallow the
	// well-formed statement that follows it (spec.md §8, property 8).
	prog, errs := parse(t, "let a = 1 let b = 2;")
	assert.Greater(t, errs, 0)
	var sawB bool
	for _, d := range prog.Declarations {
		if v, ok := d.(*ast.VarStmt); ok && v.Name.Lexeme == "b" {
			sawB = true
		}
	}
	assert.True(t, sawB, "parser should recover and still parse 'let b = 2;'")
}

func TestParse_AlwaysReturnsProgram(t *testing.T) {
	inputs := []string{"", ";;;", "fn", "class", "let", "{{{", "1 2 3"}
	for _, in := range inputs {
		prog, _ := parse(t, in)
		assert.NotNil(t, prog)
	}
}

func TestParse_IfElse(t *testing.T) {
	prog, errs := parse(t, `if (x) { print "yes"; } else { print "no"; }`)
	require.Equal(t, 0, errs)
	ifStmt := prog.Declarations[0].(*ast.IfStmt)
	assert.NotNil(t, ifStmt.Then)
	assert.NotNil(t, ifStmt.Else)
}

// recordingReporter records every diagnostic Kind reported, for tests that
// need to assert which specific kind fired.
type recordingReporter struct {
	kinds []diag.Kind
}

func (r *recordingReporter) Report(kind diag.Kind, message string, line int) {
	r.kinds = append(r.kinds, kind)
}

func TestParse_UnterminatedStringIsReportedAsLexError(t *testing.T) {
	rep := &recordingReporter{}
	New(`print "unterminated;`, rep).Parse()
	assert.Contains(t, rep.kinds, diag.UnterminatedString)
}

func TestParse_UnknownCharacterIsReportedAsLexError(t *testing.T) {
	rep := &recordingReporter{}
	New(`let a = @;`, rep).Parse()
	assert.Contains(t, rep.kinds, diag.UnknownCharacter)
}

func TestParse_CallChaining(t *testing.T) {
	prog, errs := parse(t, "make()();")
	require.Equal(t, 0, errs)
	exprStmt := prog.Declarations[0].(*ast.ExprStmt)
	outer, ok := exprStmt.Expr.(*ast.Call)
	require.True(t, ok)
	_, ok = outer.Callee.(*ast.Call)
	assert.True(t, ok, "make()() should parse as Call(Call(make))")
}
