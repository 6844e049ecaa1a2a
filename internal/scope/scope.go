// Package scope implements the Language's lexical scope chain (spec.md
// section 3.2, section 4.3). Grounded on the teacher's
// internal/interp/runtime/environment.go: a parent-linked symbol table
// with Get/Set/Define, generalized here to the declare-vs-assign
// distinction spec.md requires (Environment.Set there always writes
// to the defining node; the Language needs both that behavior, for plain
// assignment, and an unconditional current-node write, for declaration).
package scope

import (
	"fmt"

	"github.com/badrhassa/exo/internal/value"
)

// Scope is one node in the lexical scope chain.
type Scope struct {
	name   string
	parent *Scope
	vars   map[string]value.Value
}

// New creates a root scope with no parent (the global scope).
func New(name string) *Scope {
	return &Scope{name: name, vars: make(map[string]value.Value)}
}

// NewChild creates a scope enclosed by s. Implements value.Environment so
// a *Procedure's captured Scope can spawn call scopes without value
// importing this package.
func (s *Scope) NewChild() value.Environment {
	return s.NewChildScope("")
}

// NewChildScope is the concrete-typed equivalent of NewChild, used inside
// this module where a *Scope (rather than the value.Environment
// interface) is wanted.
func (s *Scope) NewChildScope(name string) *Scope {
	return &Scope{name: name, parent: s, vars: make(map[string]value.Value)}
}

// Get walks this -> parent* until a binding is found (spec.md section 4.3).
func (s *Scope) Get(name string) (value.Value, bool) {
	for sc := s; sc != nil; sc = sc.parent {
		if v, ok := sc.vars[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// Has reports whether name resolves anywhere in the chain.
func (s *Scope) Has(name string) bool {
	_, ok := s.Get(name)
	return ok
}

// Declare unconditionally writes into the current node (spec.md section
// 3.2: "a declare ... unconditionally writes into the current node"). A
// declaration in an inner scope shadows, rather than overwrites, an outer
// binding of the same name.
func (s *Scope) Declare(name string, v value.Value) {
	s.vars[name] = v
}

// Assign requires name to already resolve somewhere in the chain and
// writes to the node where it is defined — the "nearest definition wins"
// shadowing rule (spec.md section 3.2, section 4.3).
func (s *Scope) Assign(name string, v value.Value) error {
	for sc := s; sc != nil; sc = sc.parent {
		if _, ok := sc.vars[name]; ok {
			sc.vars[name] = v
			return nil
		}
	}
	return fmt.Errorf("%s is not declared — use a declaration keyword first", name)
}

// Root walks to the outermost (global) scope.
func (s *Scope) Root() *Scope {
	sc := s
	for sc.parent != nil {
		sc = sc.parent
	}
	return sc
}

// Name returns the scope's diagnostic display name.
func (s *Scope) Name() string { return s.name }

// Bindings returns a snapshot of this scope's own bindings (not including
// parents), for debug tooling such as the CLI's --dump-scope flag.
func (s *Scope) Bindings() map[string]value.Value {
	out := make(map[string]value.Value, len(s.vars))
	for k, v := range s.vars {
		out[k] = v
	}
	return out
}
