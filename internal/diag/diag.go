// Package diag implements the diagnostic sink shared by every phase of the
// interpreter pipeline. A diagnostic is a single free-form line tagged with
// the phase that produced it and, when known, the source line it refers to.
package diag

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// Kind identifies the taxonomy of a diagnostic. It names the detected
// problem, not a Go type.
type Kind string

const (
	// Lex phase
	UnterminatedString Kind = "UnterminatedString"
	UnknownCharacter   Kind = "UnknownCharacter"

	// Parse phase
	UnexpectedToken         Kind = "UnexpectedToken"
	InvalidAssignmentTarget Kind = "InvalidAssignmentTarget"
	ExpectedExpression      Kind = "ExpectedExpression"

	// Semantic phase
	UndefinedName       Kind = "UndefinedName"
	DuplicateDefinition Kind = "DuplicateDefinition"
	AssignToConst       Kind = "AssignToConst"

	// Runtime phase
	UndefinedVariable Kind = "UndefinedVariable"
	TypeMismatch      Kind = "TypeMismatch"
	DivisionByZero    Kind = "DivisionByZero"
	ArityMismatch     Kind = "ArityMismatch"
	NotCallable       Kind = "NotCallable"
)

// Reporter is the capability every pipeline stage needs: a place to send a
// diagnostic. Stages never inspect whether anything was reported; they keep
// working and let the caller decide what reported diagnostics mean.
type Reporter interface {
	Report(kind Kind, message string, line int)
}

// ConsoleReporter writes diagnostics to an io.Writer (stderr by default),
// colorized by phase the way the original go-mix CLI colors its own
// error/result output.
type ConsoleReporter struct {
	Out     io.Writer
	Count   int
	errColor  *color.Color
	warnColor *color.Color
}

// NewConsoleReporter returns a Reporter that writes to os.Stderr.
func NewConsoleReporter() *ConsoleReporter {
	return NewConsoleReporterWithWriter(os.Stderr)
}

// NewConsoleReporterWithWriter returns a Reporter writing to w, for callers
// that choose where diagnostics go (the CLI's run passes its errOut writer).
func NewConsoleReporterWithWriter(w io.Writer) *ConsoleReporter {
	return &ConsoleReporter{
		Out:       w,
		errColor:  color.New(color.FgRed),
		warnColor: color.New(color.FgYellow),
	}
}

// Report renders one diagnostic line: "Error: [line N] message (Kind)".
func (r *ConsoleReporter) Report(kind Kind, message string, line int) {
	r.Count++
	c := r.errColor
	if isRuntimeKind(kind) {
		c = r.warnColor
	}
	if line > 0 {
		c.Fprintf(r.Out, "Error: [line %d] %s (%s)\n", line, message, kind)
		return
	}
	c.Fprintf(r.Out, "Error: %s (%s)\n", message, kind)
}

// HasErrors reports whether any diagnostic has been sent through so far.
func (r *ConsoleReporter) HasErrors() bool {
	return r.Count > 0
}

func isRuntimeKind(kind Kind) bool {
	switch kind {
	case UndefinedVariable, TypeMismatch, DivisionByZero, ArityMismatch, NotCallable:
		return true
	default:
		return false
	}
}

// Sprint is a small helper mirroring fmt.Sprintf, used by callers building
// diagnostic messages from formatted values.
func Sprint(format string, args ...interface{}) string {
	return fmt.Sprintf(format, args...)
}
