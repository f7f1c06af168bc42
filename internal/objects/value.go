// Package objects defines Mix's runtime value types: the tagged sum the
// evaluator produces and environments store. Every concrete type implements
// Value; type switches in the evaluator dispatch on the concrete type
// rather than on a GetType() tag, since Go's type system already gives us
// that for free.
package objects

import (
	"fmt"
	"strconv"
	"strings"
)

// Value is implemented by every Mix runtime value.
type Value interface {
	// Type names the value's kind for error messages ("number", "string",
	// "function", and so on).
	Type() string
	// String renders the value the way `print` does: see Stringify.
	String() string
}

// Nil is Mix's null value. There is exactly one: use the NilValue constant.
type Nil struct{}

func (Nil) Type() string   { return "nil" }
func (Nil) String() string { return "nil" }

// NilValue is the singleton Nil instance; use it instead of allocating.
var NilValue = Nil{}

// Boolean wraps a Go bool.
type Boolean struct{ Value bool }

func (Boolean) Type() string { return "boolean" }
func (b Boolean) String() string {
	if b.Value {
		return "true"
	}
	return "false"
}

// Number wraps a 64-bit float, Mix's only numeric type.
type Number struct{ Value float64 }

func (Number) Type() string { return "number" }

// String renders a number in canonical form: trailing zeros after a decimal
// point are trimmed, and a trailing bare "." is trimmed too, so 3.0 -> "3"
// and 3.5 -> "3.5".
func (n Number) String() string {
	s := strconv.FormatFloat(n.Value, 'f', -1, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimRight(s, ".")
	}
	return s
}

// String wraps a Go string.
type String struct{ Value string }

func (String) Type() string     { return "string" }
func (s String) String() string { return s.Value }

// Truthy implements Mix's truthiness rule: nil and false are falsy,
// everything else — including 0 and "" — is truthy.
func Truthy(v Value) bool {
	switch v := v.(type) {
	case Nil:
		return false
	case Boolean:
		return v.Value
	default:
		return true
	}
}

// Stringify is the canonical stringifier used by `print`. It is equivalent
// to v.String() but named to match the spec's vocabulary and to give call
// sites documenting that they're producing print output a clear anchor.
func Stringify(v Value) string {
	return v.String()
}

// FormatUnsupported is a small helper for error messages that need to name
// an operand's runtime type, e.g. "operand of type %s".
func FormatUnsupported(op string, v Value) string {
	return fmt.Sprintf("unsupported operand type for %s: %s", op, v.Type())
}
