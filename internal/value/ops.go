package value

// Truthy implements the Language's truthiness rule, used by if/while
// conditions and the short-circuit operators: Null and false are falsey,
// zero int/float and empty str/list/map are falsey, everything else
// (including procedures and builtins) is truthy.
func Truthy(v Value) bool {
	switch x := v.(type) {
	case nil:
		return false
	case Null:
		return false
	case Bool:
		return x.Value
	case Int:
		return x.Value != 0
	case Float:
		return x.Value != 0
	case Str:
		return x.Value != ""
	case *List:
		return len(x.Elements) > 0
	case *Map:
		return x.Len() > 0
	default:
		return true
	}
}

// Equal implements structural equality (spec.md section 4.1): primitives
// compare by value, composites compare element-by-element / entry-by-entry.
func Equal(a, b Value) bool {
	switch x := a.(type) {
	case Null:
		_, ok := b.(Null)
		return ok
	case Bool:
		y, ok := b.(Bool)
		return ok && x.Value == y.Value
	case Int:
		switch y := b.(type) {
		case Int:
			return x.Value == y.Value
		case Float:
			return float64(x.Value) == y.Value
		}
		return false
	case Float:
		switch y := b.(type) {
		case Int:
			return x.Value == float64(y.Value)
		case Float:
			return x.Value == y.Value
		}
		return false
	case Str:
		y, ok := b.(Str)
		return ok && x.Value == y.Value
	case *List:
		y, ok := b.(*List)
		if !ok || len(x.Elements) != len(y.Elements) {
			return false
		}
		for i := range x.Elements {
			if !Equal(x.Elements[i], y.Elements[i]) {
				return false
			}
		}
		return true
	case *Map:
		y, ok := b.(*Map)
		if !ok || x.Len() != y.Len() {
			return false
		}
		for _, k := range x.order {
			yv, ok := y.vals[k]
			if !ok || !Equal(x.vals[k], yv) {
				return false
			}
		}
		return true
	case *Procedure:
		y, ok := b.(*Procedure)
		return ok && x == y
	case Builtin:
		y, ok := b.(Builtin)
		return ok && x.Name == y.Name
	default:
		return false
	}
}

// TypeTag returns the textual tag the type() builtin reports.
func TypeTag(v Value) string {
	if v == nil {
		return "null"
	}
	return v.Type()
}
