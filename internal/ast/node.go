// Package ast defines the tree the parser builds: a Program owning an
// ordered list of declarations, made of Expression and Statement variants.
// Each node exclusively owns its children; the tree is immutable once the
// parser returns it, and no later pass mutates it.
package ast

import "github.com/akashmaji946/mix/internal/lexer"

// Node is the common capability of every tree node: it can accept a
// Visitor.
type Node interface {
	Accept(v Visitor)
}

// Expression is a node that produces a value when evaluated.
type Expression interface {
	Node
	expressionNode()
}

// Statement is a node that is executed for effect.
type Statement interface {
	Node
	statementNode()
}

// Program is the root of the tree: an ordered list of top-level
// declarations. Destroying a Program destroys the whole tree, since Go's
// garbage collector reclaims anything no longer reachable from it.
type Program struct {
	Declarations []Statement
}

func (p *Program) Accept(v Visitor) { v.VisitProgram(p) }

// Visitor is implemented by passes that walk the tree without replacing it:
// the semantic analyzer and the debug S-expression printer. The evaluator
// deliberately does NOT implement Visitor — it recurses directly and
// returns values, rather than stashing a "last produced value" in visitor
// state (see DESIGN.md).
type Visitor interface {
	VisitProgram(p *Program)

	VisitLiteral(e *Literal)
	VisitVariable(e *Variable)
	VisitAssign(e *Assign)
	VisitBinary(e *Binary)
	VisitCall(e *Call)

	VisitExprStmt(s *ExprStmt)
	VisitPrintStmt(s *PrintStmt)
	VisitVarStmt(s *VarStmt)
	VisitBlockStmt(s *BlockStmt)
	VisitIfStmt(s *IfStmt)
	VisitWhileStmt(s *WhileStmt)
	VisitFunctionStmt(s *FunctionStmt)
	VisitClassStmt(s *ClassStmt)
}

// ---- Expression variants -------------------------------------------------

// Literal is a number, string, or other literal token. Evaluation of its
// value is the evaluator's job (see internal/eval); the node itself just
// carries the token.
type Literal struct {
	Token lexer.Token
}

func (*Literal) expressionNode()    {}
func (e *Literal) Accept(v Visitor) { v.VisitLiteral(e) }

// Variable is a bare name reference, e.g. `x`.
type Variable struct {
	Name lexer.Token
}

func (*Variable) expressionNode()    {}
func (e *Variable) Accept(v Visitor) { v.VisitVariable(e) }

// Assign is `name = value`. The parser only ever constructs this with a
// Variable on the left; there is no general lvalue expression.
type Assign struct {
	Name  lexer.Token
	Value Expression
}

func (*Assign) expressionNode()    {}
func (e *Assign) Accept(v Visitor) { v.VisitAssign(e) }

// Binary is a left-associative two-operand expression: arithmetic
// (+ - * /) or a comparison/equality operator (parsed, currently
// evaluating to nil — see spec.md §4.4 and §9).
type Binary struct {
	Left  Expression
	Op    lexer.Token
	Right Expression
}

func (*Binary) expressionNode()    {}
func (e *Binary) Accept(v Visitor) { v.VisitBinary(e) }

// Call is `callee(arg, arg, ...)`.
type Call struct {
	Callee Expression
	Paren  lexer.Token // the '(' token, kept for error line reporting
	Args   []Expression
}

func (*Call) expressionNode()    {}
func (e *Call) Accept(v Visitor) { v.VisitCall(e) }

// ---- Statement variants --------------------------------------------------

// ExprStmt evaluates an expression and discards the result.
type ExprStmt struct {
	Expr Expression
}

func (*ExprStmt) statementNode()    {}
func (s *ExprStmt) Accept(v Visitor) { v.VisitExprStmt(s) }

// PrintStmt evaluates its expression and prints its canonical
// stringification followed by a newline.
type PrintStmt struct {
	Expr Expression
}

func (*PrintStmt) statementNode()    {}
func (s *PrintStmt) Accept(v Visitor) { v.VisitPrintStmt(s) }

// VarStmt is `let name = initializer;` or `let name;` (Initializer nil,
// defaults to nil at evaluation).
type VarStmt struct {
	Name        lexer.Token
	Initializer Expression // may be nil
}

func (*VarStmt) statementNode()    {}
func (s *VarStmt) Accept(v Visitor) { v.VisitVarStmt(s) }

// BlockStmt is `{ declaration* }`. It introduces a fresh lexical scope in
// both the semantic pass and the evaluator.
type BlockStmt struct {
	Statements []Statement
}

func (*BlockStmt) statementNode()    {}
func (s *BlockStmt) Accept(v Visitor) { v.VisitBlockStmt(s) }

// IfStmt is `if (cond) then [else elseBranch]`. Else may be nil.
type IfStmt struct {
	Condition Expression
	Then      Statement
	Else      Statement // may be nil
}

func (*IfStmt) statementNode()    {}
func (s *IfStmt) Accept(v Visitor) { v.VisitIfStmt(s) }

// WhileStmt is `while (cond) body`.
type WhileStmt struct {
	Condition Expression
	Body      Statement
}

func (*WhileStmt) statementNode()    {}
func (s *WhileStmt) Accept(v Visitor) { v.VisitWhileStmt(s) }

// FunctionStmt is `fn name(params) { body }`, and doubles as a method body
// inside a ClassStmt (a method is just a FunctionStmt that never gets its
// own top-level Define — ClassStmt installs it into the class's method
// map instead).
type FunctionStmt struct {
	Name   lexer.Token
	Params []lexer.Token
	Body   []Statement
}

func (*FunctionStmt) statementNode()    {}
func (s *FunctionStmt) Accept(v Visitor) { v.VisitFunctionStmt(s) }

// ClassStmt is `class Name { method* }`. Only `fn` introductions inside the
// braces contribute a method; the parser silently skips any other token
// there (method-only classes, see spec.md §4.2).
type ClassStmt struct {
	Name    lexer.Token
	Methods []*FunctionStmt
}

func (*ClassStmt) statementNode()    {}
func (s *ClassStmt) Accept(v Visitor) { v.VisitClassStmt(s) }
