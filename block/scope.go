package block

import "fmt"

// Scope is a lexical environment frame with a parent link. Lookups walk
// parent-ward; Define binds in the current frame, shadowing any outer
// binding, while Set updates the nearest existing binding and refuses to
// define implicitly.
//
// Blocks capture the scope of their defining site (see [Bind]); their
// bodies run in a fresh child frame holding the bound parameters, so
// enclosing variables are reachable only by explicit name.
type Scope struct {
	parent *Scope
	table  map[string]any
}

// NewScope creates a lexical frame with the given parent (which may be nil).
func NewScope(parent *Scope) *Scope {
	return &Scope{parent: parent, table: make(map[string]any)}
}

// Define binds name to v in the current frame, shadowing any outer binding.
func (s *Scope) Define(name string, v any) {
	s.table[name] = v
}

// Set updates the nearest existing binding of name to v. If no visible
// frame binds the name, Set returns ErrUndefinedVariable: it never defines.
func (s *Scope) Set(name string, v any) error {
	for f := s; f != nil; f = f.parent {
		if _, ok := f.table[name]; ok {
			f.table[name] = v
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrUndefinedVariable, name)
}

// Get retrieves the nearest visible binding for name.
func (s *Scope) Get(name string) (any, error) {
	for f := s; f != nil; f = f.parent {
		if v, ok := f.table[name]; ok {
			return v, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrUndefinedVariable, name)
}

// Has reports whether name is bound in any visible frame.
func (s *Scope) Has(name string) bool {
	_, err := s.Get(name)
	return err == nil
}
