package environ

import (
	"testing"

	"github.com/akashmaji946/mix/internal/objects"
	"github.com/stretchr/testify/assert"
)

func TestEnvironment_DefineAndGet(t *testing.T) {
	e := New(nil)
	e.Define("x", objects.Number{Value: 1})

	v, ok := e.Get("x")
	assert.True(t, ok)
	assert.Equal(t, objects.Number{Value: 1}, v)
}

func TestEnvironment_GetMissingFails(t *testing.T) {
	e := New(nil)
	_, ok := e.Get("missing")
	assert.False(t, ok)
}

func TestEnvironment_GetWalksEnclosingChain(t *testing.T) {
	outer := New(nil)
	outer.Define("x", objects.Number{Value: 1})
	inner := New(outer)

	v, ok := inner.Get("x")
	assert.True(t, ok)
	assert.Equal(t, objects.Number{Value: 1}, v)
}

func TestEnvironment_DefineShadowsWithoutTouchingOuter(t *testing.T) {
	outer := New(nil)
	outer.Define("x", objects.Number{Value: 1})
	inner := New(outer)
	inner.Define("x", objects.Number{Value: 2})

	innerVal, _ := inner.Get("x")
	outerVal, _ := outer.Get("x")
	assert.Equal(t, objects.Number{Value: 2}, innerVal)
	assert.Equal(t, objects.Number{Value: 1}, outerVal)
}

func TestEnvironment_AssignUpdatesInnermostExistingBinding(t *testing.T) {
	outer := New(nil)
	outer.Define("x", objects.Number{Value: 1})
	inner := New(outer)

	ok := inner.Assign("x", objects.Number{Value: 99})
	assert.True(t, ok)

	outerVal, _ := outer.Get("x")
	assert.Equal(t, objects.Number{Value: 99}, outerVal)
}

func TestEnvironment_AssignNeverCreatesABinding(t *testing.T) {
	e := New(nil)
	ok := e.Assign("never-defined", objects.Number{Value: 1})
	assert.False(t, ok)

	_, exists := e.Get("never-defined")
	assert.False(t, exists)
}

func TestEnvironment_SharedChainObservesMutationThroughEitherReference(t *testing.T) {
	// Two environments retaining the same enclosing pointer must observe
	// each other's assignments — the mechanism closures rely on (spec.md
	// §5).
	outer := New(nil)
	outer.Define("counter", objects.Number{Value: 0})
	a := New(outer)
	b := New(outer)

	a.Assign("counter", objects.Number{Value: 1})
	v, _ := b.Get("counter")
	assert.Equal(t, objects.Number{Value: 1}, v)
}
