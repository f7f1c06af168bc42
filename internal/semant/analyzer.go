package semant

import (
	"github.com/akashmaji946/mix/internal/ast"
	"github.com/akashmaji946/mix/internal/diag"
)

// Analyzer is a tree Visitor that walks the program once, maintaining a
// current-scope pointer. It is read-only: nothing about the tree changes
// because of this pass, only diagnostics are produced.
type Analyzer struct {
	scope    *SymbolTable
	reporter diag.Reporter
}

// NewAnalyzer creates an Analyzer reporting through reporter, rooted at a
// fresh global scope.
func NewAnalyzer(reporter diag.Reporter) *Analyzer {
	return &Analyzer{scope: NewSymbolTable(nil), reporter: reporter}
}

// Analyze runs the full scope-correctness walk over prog.
func (a *Analyzer) Analyze(prog *ast.Program) {
	prog.Accept(a)
}

func (a *Analyzer) report(kind diag.Kind, line int, format string, args ...interface{}) {
	a.reporter.Report(kind, diag.Sprint(format, args...), line)
}

func (a *Analyzer) beginScope() {
	a.scope = NewSymbolTable(a.scope)
}

func (a *Analyzer) endScope() {
	a.scope = a.scope.Enclosing
}

// ---- Visitor implementation ----------------------------------------------

func (a *Analyzer) VisitProgram(n *ast.Program) {
	for _, decl := range n.Declarations {
		decl.Accept(a)
	}
}

func (a *Analyzer) VisitLiteral(n *ast.Literal) {}

func (a *Analyzer) VisitVariable(n *ast.Variable) {
	if _, ok := a.scope.Resolve(n.Name.Lexeme); !ok {
		a.report(diag.UndefinedName, n.Name.Line, "undefined name %q", n.Name.Lexeme)
	}
}

func (a *Analyzer) VisitAssign(n *ast.Assign) {
	sym, ok := a.scope.Resolve(n.Name.Lexeme)
	if !ok {
		a.report(diag.UndefinedName, n.Name.Line, "undefined name %q", n.Name.Lexeme)
	} else if sym.IsConst {
		a.report(diag.AssignToConst, n.Name.Line, "cannot assign to %q: declared as a %s", n.Name.Lexeme, sym.Type)
	}
	n.Value.Accept(a)
}

func (a *Analyzer) VisitBinary(n *ast.Binary) {
	n.Left.Accept(a)
	n.Right.Accept(a)
}

func (a *Analyzer) VisitCall(n *ast.Call) {
	n.Callee.Accept(a)
	for _, arg := range n.Args {
		arg.Accept(a)
	}
}

func (a *Analyzer) VisitExprStmt(n *ast.ExprStmt) {
	n.Expr.Accept(a)
}

func (a *Analyzer) VisitPrintStmt(n *ast.PrintStmt) {
	n.Expr.Accept(a)
}

func (a *Analyzer) VisitVarStmt(n *ast.VarStmt) {
	if n.Initializer != nil {
		n.Initializer.Accept(a)
	}
	if a.scope.Declare(Symbol{Name: n.Name.Lexeme}) {
		a.report(diag.DuplicateDefinition, n.Name.Line, "%q is already defined in this scope", n.Name.Lexeme)
	}
}

func (a *Analyzer) VisitBlockStmt(n *ast.BlockStmt) {
	a.beginScope()
	for _, s := range n.Statements {
		s.Accept(a)
	}
	a.endScope()
}

func (a *Analyzer) VisitIfStmt(n *ast.IfStmt) {
	n.Condition.Accept(a)
	n.Then.Accept(a)
	if n.Else != nil {
		n.Else.Accept(a)
	}
}

func (a *Analyzer) VisitWhileStmt(n *ast.WhileStmt) {
	n.Condition.Accept(a)
	n.Body.Accept(a)
}

func (a *Analyzer) VisitFunctionStmt(n *ast.FunctionStmt) {
	if a.scope.Declare(Symbol{Name: n.Name.Lexeme, Type: "function", IsConst: true}) {
		a.report(diag.DuplicateDefinition, n.Name.Line, "%q is already defined in this scope", n.Name.Lexeme)
	}
	a.analyzeFunctionBody(n)
}

// analyzeFunctionBody visits params and body inside a fresh child scope,
// shared by both top-level functions and class methods.
func (a *Analyzer) analyzeFunctionBody(n *ast.FunctionStmt) {
	a.beginScope()
	for _, param := range n.Params {
		if a.scope.Declare(Symbol{Name: param.Lexeme}) {
			a.report(diag.DuplicateDefinition, param.Line, "parameter %q is already defined", param.Lexeme)
		}
	}
	for _, stmt := range n.Body {
		stmt.Accept(a)
	}
	a.endScope()
}

func (a *Analyzer) VisitClassStmt(n *ast.ClassStmt) {
	if a.scope.Declare(Symbol{Name: n.Name.Lexeme, Type: "class", IsConst: true}) {
		a.report(diag.DuplicateDefinition, n.Name.Line, "%q is already defined in this scope", n.Name.Lexeme)
	}
	// Methods are visited inside a fresh scope rooted at the enclosing
	// scope (spec.md §4.3), not nested inside one another.
	enclosing := a.scope
	for _, method := range n.Methods {
		a.scope = enclosing
		a.analyzeFunctionBody(method)
	}
	a.scope = enclosing
}
