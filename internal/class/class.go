// Package class implements Mix's class and instance runtime values.
package class

import (
	"fmt"

	"github.com/akashmaji946/mix/internal/function"
	"github.com/akashmaji946/mix/internal/objects"
)

// Class is a first-class class value: a name and its method table. Arity
// mirrors the arity of its init method if one is declared, else 0.
type Class struct {
	Name    string
	Methods map[string]*function.Function
}

// New creates a Class with the given method table.
func New(name string, methods map[string]*function.Function) *Class {
	return &Class{Name: name, Methods: methods}
}

// Method looks up a method by name.
func (c *Class) Method(name string) (*function.Function, bool) {
	m, ok := c.Methods[name]
	return m, ok
}

// Arity is the constructor's parameter count: the init method's arity if
// present, else 0 (spec.md §3).
func (c *Class) Arity() int {
	if init, ok := c.Methods["init"]; ok {
		return init.Arity()
	}
	return 0
}

func (c *Class) Type() string { return "class" }

// String renders "<class NAME>" (spec.md §4.4).
func (c *Class) String() string {
	return fmt.Sprintf("<class %s>", c.Name)
}

// Instance is an instance of a Class: the class it was constructed from
// plus a mutable field table.
type Instance struct {
	Class  *Class
	Fields map[string]objects.Value
}

// NewInstance creates a zero-field instance of c.
func NewInstance(c *Class) *Instance {
	return &Instance{Class: c, Fields: make(map[string]objects.Value)}
}

// Get reads a field, reporting whether it exists.
func (i *Instance) Get(name string) (objects.Value, bool) {
	v, ok := i.Fields[name]
	return v, ok
}

// Set writes a field, creating it if absent.
func (i *Instance) Set(name string, value objects.Value) {
	i.Fields[name] = value
}

func (i *Instance) Type() string { return "instance" }

// String renders "<instance of <class NAME>>" (spec.md §4.4).
func (i *Instance) String() string {
	return fmt.Sprintf("<instance of %s>", i.Class.String())
}
