// Package value defines the runtime value model for the Language: a small
// tagged union of nine variants (spec.md section 3.1). Composite variants
// (List, Map, Procedure) are reference types — copying a Value interface
// copies the pointer, not the underlying data, so aliasing and mutation
// observability (spec.md section 4.1) fall out of normal Go semantics.
package value

import (
	"fmt"
	"strconv"
)

// Value is the interface every runtime value implements.
type Value interface {
	// Type returns the textual type tag used by the type() builtin:
	// int|float|str|list|map|bool|null|procedure.
	Type() string
	// String returns the display form used by print() and string coercion.
	String() string
}

// Null is the sole null value. There is exactly one meaningful instance;
// Null is a zero-size struct so comparisons by value also work.
type Null struct{}

func (Null) Type() string   { return "null" }
func (Null) String() string { return "null" }

// Bool wraps a boolean.
type Bool struct{ Value bool }

func (b Bool) Type() string { return "bool" }
func (b Bool) String() string {
	if b.Value {
		return "true"
	}
	return "false"
}

// Int wraps a signed 64-bit integer. Produced by integer literals without
// a '.', and by arithmetic that spec.md section 3.1 keeps in the integer
// domain (Int+Int, Int-Int, Int*Int).
type Int struct{ Value int64 }

func (i Int) Type() string   { return "int" }
func (i Int) String() string { return strconv.FormatInt(i.Value, 10) }

// Float wraps an IEEE-754 double. Produced by literals containing '.', by
// any operation mixing Int and Float, and always by division.
type Float struct{ Value float64 }

func (f Float) Type() string { return "float" }
func (f Float) String() string {
	return strconv.FormatFloat(f.Value, 'g', -1, 64)
}

// Str wraps a UTF-8 string.
type Str struct{ Value string }

func (s Str) Type() string   { return "str" }
func (s Str) String() string { return s.Value }

// Builtin refers to an entry in the built-in dispatcher by its canonical
// (English) name tag.
type Builtin struct{ Name string }

func (b Builtin) Type() string   { return "procedure" }
func (b Builtin) String() string { return fmt.Sprintf("<builtin %s>", b.Name) }
