package value

import "strings"

// Environment is the minimal surface internal/scope.Scope exposes to the
// value package. A procedure record only needs to hold a reference to its
// definition-time scope and later ask for a child of it — it never walks
// the chain itself. Declaring the interface here (rather than importing
// internal/scope) keeps value free of a dependency on scope, which itself
// depends on value for its bindings map.
type Environment interface {
	Get(name string) (Value, bool)
	Declare(name string, v Value)
	Assign(name string, v Value) error
	NewChild() Environment
}

// Procedure is a user-defined procedure record (spec.md section 3.3). The
// Scope field is captured by alias at definition time — every call creates
// a fresh child of it, never a child of the caller's scope — which is what
// makes closures observe later mutations of their enclosing scope (spec.md
// section 8.1).
type Procedure struct {
	Name   string
	Params []string
	Body   []Line
	Scope  Environment
}

func (p *Procedure) Type() string { return "procedure" }

func (p *Procedure) String() string {
	return "<func " + p.Name + "(" + strings.Join(p.Params, ", ") + ")>"
}
