// Package semant implements the semantic analyzer: a scope-correctness walk
// over the tree that reports undeclared names, duplicate definitions, and
// assignment to const-marked symbols. It never mutates the tree and never
// aborts — every diagnostic is reported and the walk continues to
// completion, per spec.md §4.3 and §7.
package semant

// Symbol is a name bound in some SymbolTable. Type is an advisory tag
// ("function", "class", or empty); only Name and IsConst carry semantic
// weight.
type Symbol struct {
	Name    string
	Type    string
	IsConst bool
}

// SymbolTable is one lexical scope: a name-to-Symbol mapping plus a link to
// the enclosing scope (nil for the global scope). A scope's lifetime is
// bounded by the visit of whatever construct introduced it — a function
// body, a block, or a class body.
type SymbolTable struct {
	symbols   map[string]Symbol
	Enclosing *SymbolTable
}

// NewSymbolTable creates a scope enclosed by parent (nil for global).
func NewSymbolTable(parent *SymbolTable) *SymbolTable {
	return &SymbolTable{symbols: make(map[string]Symbol), Enclosing: parent}
}

// Declare adds sym to this scope only. It reports whether a symbol with the
// same name already existed in THIS scope (not any enclosing one) — that
// is a DuplicateDefinition, which the caller decides whether to report.
func (s *SymbolTable) Declare(sym Symbol) (existed bool) {
	_, existed = s.symbols[sym.Name]
	s.symbols[sym.Name] = sym
	return existed
}

// Resolve walks outward from this scope looking for name, the same
// traversal order variable and assignment resolution both use.
func (s *SymbolTable) Resolve(name string) (Symbol, bool) {
	if sym, ok := s.symbols[name]; ok {
		return sym, true
	}
	if s.Enclosing != nil {
		return s.Enclosing.Resolve(name)
	}
	return Symbol{}, false
}
