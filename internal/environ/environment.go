// Package environ implements the chained lexical environments the evaluator
// runs against: a name-to-value mapping plus an optional link to an
// enclosing environment.
package environ

import (
	"fmt"

	"github.com/akashmaji946/mix/internal/objects"
)

// Environment is one scope's runtime bindings. Environments form a chain
// via Enclosing; the chain is shared (never copied) so that every Function
// value capturing a given Environment observes the same mutations as every
// other capturer of it — the mechanism first-class functions use to share
// free variables.
type Environment struct {
	values    map[string]objects.Value
	Enclosing *Environment
}

// New creates an environment enclosed by parent. Pass nil for the global
// environment.
func New(parent *Environment) *Environment {
	return &Environment{
		values:    make(map[string]objects.Value),
		Enclosing: parent,
	}
}

// Define inserts or overwrites a binding in this environment only. It never
// touches an enclosing environment, even if the name is already bound
// there — that is how inner blocks shadow outer ones.
func (e *Environment) Define(name string, value objects.Value) {
	e.values[name] = value
}

// Get resolves name by walking from this environment outward. Absence
// anywhere on the chain is reported via the second return value; callers
// turn that into a runtime UndefinedVariable error.
func (e *Environment) Get(name string) (objects.Value, bool) {
	if v, ok := e.values[name]; ok {
		return v, true
	}
	if e.Enclosing != nil {
		return e.Enclosing.Get(name)
	}
	return nil, false
}

// Assign updates the innermost existing binding for name, walking outward
// to find it. It does NOT create a new binding: assigning to a name with
// no prior Define anywhere on the chain fails.
func (e *Environment) Assign(name string, value objects.Value) bool {
	if _, ok := e.values[name]; ok {
		e.values[name] = value
		return true
	}
	if e.Enclosing != nil {
		return e.Enclosing.Assign(name, value)
	}
	return false
}

// String is a debugging aid, not used on any evaluation path.
func (e *Environment) String() string {
	return fmt.Sprintf("Environment(%d names)", len(e.values))
}
