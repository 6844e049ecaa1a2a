package value

import "strings"

// List is an ordered, mutable, index-addressable sequence of Values.
// It is always held behind a pointer (*List implements Value) so that
// two bindings to the same list observe each other's mutations — the
// aliasing behavior spec.md section 8.7 tests (push through one binding
// is visible through another).
type List struct {
	Elements []Value
}

// NewList returns a *List wrapping the given elements (no copy).
func NewList(elements []Value) *List {
	if elements == nil {
		elements = []Value{}
	}
	return &List{Elements: elements}
}

func (l *List) Type() string { return "list" }

func (l *List) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, el := range l.Elements {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(quoteIfStr(el))
	}
	sb.WriteByte(']')
	return sb.String()
}

// quoteIfStr renders strings with surrounding quotes when nested inside a
// list/map display, matching the common scripting-language convention
// that print(xs) and print(x) format strings differently at top level vs
// nested.
func quoteIfStr(v Value) string {
	if s, ok := v.(Str); ok {
		return "'" + s.Value + "'"
	}
	return v.String()
}
