package evaluator

import "sort"

// Scope holds the name bindings for one document recompute. A fresh scope
// starts with a copy of the builtin table; assignments shadow builtins for
// the rest of the pass ("10 == pi" makes pi mean 10 below that line).
// There is no nesting: a document is one flat namespace.
type Scope struct {
	store    map[string]Object
	assigned map[string]bool // names written by ==, as opposed to seeded
}

// NewScope creates a scope seeded with the builtin constants and functions.
func NewScope() *Scope {
	s := &Scope{
		store:    make(map[string]Object, len(builtins)+8),
		assigned: make(map[string]bool),
	}
	for name, obj := range builtins {
		s.store[name] = obj
	}
	return s
}

// Get resolves a name.
func (s *Scope) Get(name string) (Object, bool) {
	obj, ok := s.store[name]
	return obj, ok
}

// Set binds a name, shadowing any builtin of the same name.
func (s *Scope) Set(name string, val Object) Object {
	s.store[name] = val
	s.assigned[name] = true
	return val
}

// Names returns every resolvable name, sorted. Used for "did you mean"
// hints and REPL completion.
func (s *Scope) Names() []string {
	names := make([]string, 0, len(s.store))
	for name := range s.store {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Variables returns only the names bound by assignment, sorted, with their
// current values. Builtins that were never shadowed are excluded.
func (s *Scope) Variables() map[string]Object {
	vars := make(map[string]Object, len(s.assigned))
	for name := range s.assigned {
		vars[name] = s.store[name]
	}
	return vars
}

// VariableNames returns the assigned names, sorted.
func (s *Scope) VariableNames() []string {
	names := make([]string, 0, len(s.assigned))
	for name := range s.assigned {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
