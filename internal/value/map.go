package value

import (
	"fmt"
	"strconv"
	"strings"
)

// Map is an insertion-ordered mapping from Value to Value (spec.md section
// 3.1). Keys are typically strings but any primitive is admitted; keys are
// canonicalized to a string form for storage (see KeyString) while the
// original key Value is retained for keys()/iteration so print(keys(m))
// reflects the key's real type, not its canonical form.
type Map struct {
	order []string
	keys  map[string]Value
	vals  map[string]Value
}

// NewMap returns an empty, ready-to-use *Map.
func NewMap() *Map {
	return &Map{
		keys: make(map[string]Value),
		vals: make(map[string]Value),
	}
}

func (m *Map) Type() string { return "map" }

func (m *Map) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, k := range m.order {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(quoteIfStr(m.keys[k]))
		sb.WriteString(": ")
		sb.WriteString(quoteIfStr(m.vals[k]))
	}
	sb.WriteByte('}')
	return sb.String()
}

// KeyString canonicalizes a primitive Value into the string used as the
// Map's internal storage key. Composite keys (List, Map, Procedure,
// Builtin) are rejected — the teacher's runtime has no precedent for
// hashing composite values, and spec.md does not describe one either
// (see DESIGN.md, Open Question decisions).
func KeyString(key Value) (string, error) {
	switch k := key.(type) {
	case Str:
		return "s:" + k.Value, nil
	case Int:
		return "i:" + strconv.FormatInt(k.Value, 10), nil
	case Float:
		return "f:" + strconv.FormatFloat(k.Value, 'g', -1, 64), nil
	case Bool:
		return "b:" + strconv.FormatBool(k.Value), nil
	case Null:
		return "n:", nil
	default:
		return "", fmt.Errorf("unhashable key of type %s", key.Type())
	}
}

// Get returns the value bound to key, if present.
func (m *Map) Get(key Value) (Value, bool) {
	ks, err := KeyString(key)
	if err != nil {
		return nil, false
	}
	v, ok := m.vals[ks]
	return v, ok
}

// GetStr is a convenience for the common case of a string key (property
// access, dotted paths).
func (m *Map) GetStr(name string) (Value, bool) {
	return m.Get(Str{Value: name})
}

// Set inserts or overwrites key -> val. Insertion order is preserved on
// first insert; overwriting an existing key does not move it.
func (m *Map) Set(key, val Value) error {
	ks, err := KeyString(key)
	if err != nil {
		return err
	}
	if _, exists := m.vals[ks]; !exists {
		m.order = append(m.order, ks)
	}
	m.keys[ks] = key
	m.vals[ks] = val
	return nil
}

// SetStr is a convenience for the common case of a string key.
func (m *Map) SetStr(name string, val Value) {
	_ = m.Set(Str{Value: name}, val)
}

// Keys returns the original key Values in insertion order.
func (m *Map) Keys() []Value {
	out := make([]Value, len(m.order))
	for i, k := range m.order {
		out[i] = m.keys[k]
	}
	return out
}

// Values returns the values in insertion order (matching Keys()).
func (m *Map) Values() []Value {
	out := make([]Value, len(m.order))
	for i, k := range m.order {
		out[i] = m.vals[k]
	}
	return out
}

// Len returns the number of entries.
func (m *Map) Len() int { return len(m.order) }
