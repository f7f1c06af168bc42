// Package eval implements the tree-walking evaluator. It deliberately does
// not implement ast.Visitor: expression evaluation returns a value
// directly, rather than stashing a "last produced value" in visitor state
// (spec.md §4.4, §9 "Visitor last-value slot is a source-level kludge").
package eval

import (
	"fmt"
	"io"
	"strconv"

	"github.com/akashmaji946/mix/internal/ast"
	"github.com/akashmaji946/mix/internal/class"
	"github.com/akashmaji946/mix/internal/diag"
	"github.com/akashmaji946/mix/internal/environ"
	"github.com/akashmaji946/mix/internal/function"
	"github.com/akashmaji946/mix/internal/lexer"
	"github.com/akashmaji946/mix/internal/objects"
)

// RuntimeError is a raised runtime error, returned (never panicked) from
// every evaluation method. Evaluation unwinds by returning early whenever
// one of these is produced.
type RuntimeError struct {
	Kind    diag.Kind
	Message string
	Line    int
}

func (e *RuntimeError) Error() string { return e.Message }

func newError(kind diag.Kind, line int, format string, args ...interface{}) *RuntimeError {
	return &RuntimeError{Kind: kind, Message: diag.Sprint(format, args...), Line: line}
}

// Evaluator walks the tree directly, executing statements for effect and
// evaluating expressions to objects.Value. Global holds the outermost
// environment; Current is whichever environment is active at the point of
// the call into the evaluator.
type Evaluator struct {
	Global   *environ.Environment
	Current  *environ.Environment
	reporter diag.Reporter
	Writer   io.Writer // output sink for print, as passed to New (the CLI passes os.Stdout)
}

// New creates an Evaluator writing print output to w and reporting runtime
// errors through reporter.
func New(reporter diag.Reporter, w io.Writer) *Evaluator {
	global := environ.New(nil)
	return &Evaluator{Global: global, Current: global, reporter: reporter, Writer: w}
}

// Run executes every top-level declaration in prog. Per spec.md §7's
// reference behavior, a runtime error is caught at the top, reported once,
// and evaluation of the program stops; declarations already executed keep
// their effects.
func (ev *Evaluator) Run(prog *ast.Program) {
	for _, decl := range prog.Declarations {
		if err := ev.execStatement(decl); err != nil {
			ev.reporter.Report(err.Kind, err.Message, err.Line)
			return
		}
	}
}

// ---- Statement execution --------------------------------------------------

func (ev *Evaluator) execStatement(s ast.Statement) *RuntimeError {
	switch s := s.(type) {
	case *ast.ExprStmt:
		_, err := ev.evalExpr(s.Expr)
		return err

	case *ast.PrintStmt:
		v, err := ev.evalExpr(s.Expr)
		if err != nil {
			return err
		}
		fmt.Fprintln(ev.Writer, objects.Stringify(v))
		return nil

	case *ast.VarStmt:
		var value objects.Value = objects.NilValue
		if s.Initializer != nil {
			v, err := ev.evalExpr(s.Initializer)
			if err != nil {
				return err
			}
			value = v
		}
		ev.Current.Define(s.Name.Lexeme, value)
		return nil

	case *ast.BlockStmt:
		return ev.execBlock(s.Statements, environ.New(ev.Current))

	case *ast.IfStmt:
		cond, err := ev.evalExpr(s.Condition)
		if err != nil {
			return err
		}
		if objects.Truthy(cond) {
			return ev.execStatement(s.Then)
		}
		if s.Else != nil {
			return ev.execStatement(s.Else)
		}
		return nil

	case *ast.WhileStmt:
		for {
			cond, err := ev.evalExpr(s.Condition)
			if err != nil {
				return err
			}
			if !objects.Truthy(cond) {
				return nil
			}
			if err := ev.execStatement(s.Body); err != nil {
				return err
			}
		}

	case *ast.FunctionStmt:
		fn := function.New(s, ev.Current)
		ev.Current.Define(s.Name.Lexeme, fn)
		return nil

	case *ast.ClassStmt:
		// Forward declaration: the name resolves to nil while methods are
		// built, so a method body referencing the class by name still
		// compiles against a defined binding; it is reassigned below once
		// the Class value exists (spec.md §4.4, §9).
		ev.Current.Define(s.Name.Lexeme, objects.NilValue)
		methods := make(map[string]*function.Function, len(s.Methods))
		for _, m := range s.Methods {
			methods[m.Name.Lexeme] = function.New(m, ev.Current)
		}
		cls := class.New(s.Name.Lexeme, methods)
		ev.Current.Assign(s.Name.Lexeme, cls)
		return nil

	default:
		panic(fmt.Sprintf("eval: unhandled statement type %T", s))
	}
}

// execBlock runs statements inside env, restoring the evaluator's previous
// current environment on the way out regardless of how execution ends
// (normal completion or a raised runtime error) — spec.md §4.4's "restore
// the previous environment, including on exception".
func (ev *Evaluator) execBlock(statements []ast.Statement, env *environ.Environment) *RuntimeError {
	previous := ev.Current
	ev.Current = env
	defer func() { ev.Current = previous }()

	for _, s := range statements {
		if err := ev.execStatement(s); err != nil {
			return err
		}
	}
	return nil
}

// ---- Expression evaluation -------------------------------------------------

func (ev *Evaluator) evalExpr(e ast.Expression) (objects.Value, *RuntimeError) {
	switch e := e.(type) {
	case *ast.Literal:
		return ev.evalLiteral(e)

	case *ast.Variable:
		v, ok := ev.Current.Get(e.Name.Lexeme)
		if !ok {
			return nil, newError(diag.UndefinedVariable, e.Name.Line, "undefined variable %q", e.Name.Lexeme)
		}
		return v, nil

	case *ast.Assign:
		value, err := ev.evalExpr(e.Value)
		if err != nil {
			return nil, err
		}
		if !ev.Current.Assign(e.Name.Lexeme, value) {
			return nil, newError(diag.UndefinedVariable, e.Name.Line, "undefined variable %q", e.Name.Lexeme)
		}
		return value, nil

	case *ast.Binary:
		return ev.evalBinary(e)

	case *ast.Call:
		return ev.evalCall(e)

	default:
		panic(fmt.Sprintf("eval: unhandled expression type %T", e))
	}
}

func (ev *Evaluator) evalLiteral(e *ast.Literal) (objects.Value, *RuntimeError) {
	switch e.Token.Kind {
	case lexer.Number:
		f, err := strconv.ParseFloat(e.Token.Lexeme, 64)
		if err != nil {
			return nil, newError(diag.TypeMismatch, e.Token.Line, "malformed number literal %q", e.Token.Lexeme)
		}
		return objects.Number{Value: f}, nil
	case lexer.String:
		return objects.String{Value: e.Token.Lexeme}, nil
	default:
		// Any other literal token, including the parser's error placeholder,
		// yields nil (spec.md §4.4).
		return objects.NilValue, nil
	}
}

func (ev *Evaluator) evalBinary(e *ast.Binary) (objects.Value, *RuntimeError) {
	left, err := ev.evalExpr(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := ev.evalExpr(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Op.Kind {
	case lexer.Plus:
		if ln, lok := left.(objects.Number); lok {
			if rn, rok := right.(objects.Number); rok {
				return objects.Number{Value: ln.Value + rn.Value}, nil
			}
		}
		if ls, lok := left.(objects.String); lok {
			if rs, rok := right.(objects.String); rok {
				return objects.String{Value: ls.Value + rs.Value}, nil
			}
		}
		return nil, newError(diag.TypeMismatch, e.Op.Line, "operands of '+' must both be numbers or both be strings, got %s and %s", left.Type(), right.Type())

	case lexer.Minus, lexer.Star, lexer.Slash:
		ln, lok := left.(objects.Number)
		rn, rok := right.(objects.Number)
		if !lok || !rok {
			return nil, newError(diag.TypeMismatch, e.Op.Line, "operands of %q must both be numbers, got %s and %s", e.Op.Lexeme, left.Type(), right.Type())
		}
		switch e.Op.Kind {
		case lexer.Minus:
			return objects.Number{Value: ln.Value - rn.Value}, nil
		case lexer.Star:
			return objects.Number{Value: ln.Value * rn.Value}, nil
		case lexer.Slash:
			if rn.Value == 0.0 {
				return nil, newError(diag.DivisionByZero, e.Op.Line, "division by zero")
			}
			return objects.Number{Value: ln.Value / rn.Value}, nil
		}
	}

	// Comparison/equality operators are parsed but not evaluated: a
	// documented extension point, not an omission (spec.md §4.4, §9).
	return objects.NilValue, nil
}

func (ev *Evaluator) evalCall(e *ast.Call) (objects.Value, *RuntimeError) {
	callee, err := ev.evalExpr(e.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]objects.Value, len(e.Args))
	for i, a := range e.Args {
		v, err := ev.evalExpr(a)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	switch callee := callee.(type) {
	case *function.Function:
		if len(args) != callee.Arity() {
			return nil, newError(diag.ArityMismatch, e.Paren.Line, "%s expects %d argument(s), got %d", callee.Name(), callee.Arity(), len(args))
		}
		return ev.callFunction(callee, args)

	case *class.Class:
		if len(args) != callee.Arity() {
			return nil, newError(diag.ArityMismatch, e.Paren.Line, "%s expects %d argument(s), got %d", callee.Name, callee.Arity(), len(args))
		}
		return ev.instantiate(callee, args)

	default:
		return nil, newError(diag.NotCallable, e.Paren.Line, "value of type %s is not callable", callee.Type())
	}
}

// callFunction runs fn's body in a fresh environment enclosed by its
// closure, with parameters bound positionally. Calls never return a value
// explicitly (spec.md §4.4: "no explicit return is modeled"); the call
// expression's result is always nil.
func (ev *Evaluator) callFunction(fn *function.Function, args []objects.Value) (objects.Value, *RuntimeError) {
	callEnv := environ.New(fn.Closure)
	for i, param := range fn.Decl.Params {
		callEnv.Define(param.Lexeme, args[i])
	}
	if err := ev.execBlock(fn.Decl.Body, callEnv); err != nil {
		return nil, err
	}
	return objects.NilValue, nil
}

// instantiate builds a fresh Instance of cls and, if it declares an init
// method, runs it for its side effects.
func (ev *Evaluator) instantiate(cls *class.Class, args []objects.Value) (objects.Value, *RuntimeError) {
	inst := class.NewInstance(cls)
	if init, ok := cls.Method("init"); ok {
		if _, err := ev.callFunction(init, args); err != nil {
			return nil, err
		}
	}
	return inst, nil
}
