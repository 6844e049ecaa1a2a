package eval

import (
	"math"
	"strings"

	"github.com/badrhassa/exo/internal/ierrors"
	"github.com/badrhassa/exo/internal/value"
)

func asFloat(v value.Value) (float64, bool) {
	switch n := v.(type) {
	case value.Int:
		return float64(n.Value), true
	case value.Float:
		return n.Value, true
	}
	return 0, false
}

func bothInt(a, b value.Value) (int64, int64, bool) {
	ai, ok1 := a.(value.Int)
	bi, ok2 := b.(value.Int)
	if ok1 && ok2 {
		return ai.Value, bi.Value, true
	}
	return 0, 0, false
}

// applyAdd implements spec.md section 4.2's additive tier: numeric
// promotion to Float on any Float operand, Str concatenation, and *List
// concatenation (a new list, so neither operand is mutated).
func applyAdd(a, b value.Value) (value.Value, *ierrors.Error) {
	if ai, bi, ok := bothInt(a, b); ok {
		return value.Int{Value: ai + bi}, nil
	}
	if af, ok1 := asFloat(a); ok1 {
		if bf, ok2 := asFloat(b); ok2 {
			return value.Float{Value: af + bf}, nil
		}
	}
	if as, ok1 := a.(value.Str); ok1 {
		if bs, ok2 := b.(value.Str); ok2 {
			return value.Str{Value: as.Value + bs.Value}, nil
		}
	}
	if al, ok1 := a.(*value.List); ok1 {
		if bl, ok2 := b.(*value.List); ok2 {
			out := make([]value.Value, 0, len(al.Elements)+len(bl.Elements))
			out = append(out, al.Elements...)
			out = append(out, bl.Elements...)
			return value.NewList(out), nil
		}
	}
	return nil, ierrors.New(ierrors.TypeError, "cannot add %s and %s", a.Type(), b.Type())
}

func applySub(a, b value.Value) (value.Value, *ierrors.Error) {
	if ai, bi, ok := bothInt(a, b); ok {
		return value.Int{Value: ai - bi}, nil
	}
	if af, ok1 := asFloat(a); ok1 {
		if bf, ok2 := asFloat(b); ok2 {
			return value.Float{Value: af - bf}, nil
		}
	}
	return nil, ierrors.New(ierrors.TypeError, "cannot subtract %s and %s", a.Type(), b.Type())
}

func applyMul(a, b value.Value) (value.Value, *ierrors.Error) {
	if ai, bi, ok := bothInt(a, b); ok {
		return value.Int{Value: ai * bi}, nil
	}
	if af, ok1 := asFloat(a); ok1 {
		if bf, ok2 := asFloat(b); ok2 {
			return value.Float{Value: af * bf}, nil
		}
	}
	return nil, ierrors.New(ierrors.TypeError, "cannot multiply %s and %s", a.Type(), b.Type())
}

// applyDiv always promotes to Float (spec.md section 4.2: "/ on two Int
// returns Float"), and raises ArithmeticError on division by zero rather
// than producing +Inf/NaN.
func applyDiv(a, b value.Value) (value.Value, *ierrors.Error) {
	af, ok1 := asFloat(a)
	bf, ok2 := asFloat(b)
	if !ok1 || !ok2 {
		return nil, ierrors.New(ierrors.TypeError, "cannot divide %s and %s", a.Type(), b.Type())
	}
	if bf == 0 {
		return nil, ierrors.New(ierrors.ArithmeticError, "division by zero")
	}
	return value.Float{Value: af / bf}, nil
}

func applyMod(a, b value.Value) (value.Value, *ierrors.Error) {
	if ai, bi, ok := bothInt(a, b); ok {
		if bi == 0 {
			return nil, ierrors.New(ierrors.ArithmeticError, "division by zero")
		}
		return value.Int{Value: ai % bi}, nil
	}
	af, ok1 := asFloat(a)
	bf, ok2 := asFloat(b)
	if !ok1 || !ok2 {
		return nil, ierrors.New(ierrors.TypeError, "cannot take remainder of %s and %s", a.Type(), b.Type())
	}
	if bf == 0 {
		return nil, ierrors.New(ierrors.ArithmeticError, "division by zero")
	}
	return value.Float{Value: math.Mod(af, bf)}, nil
}

// applyPow implements the exponent tier. A non-negative integer exponent
// on integer operands stays an Int (so 2^3^2 is the Int 512, with
// type() "int"); anything else promotes to Float via math.Pow.
func applyPow(a, b value.Value) (value.Value, *ierrors.Error) {
	if ai, bi, ok := bothInt(a, b); ok && bi >= 0 {
		result := int64(1)
		for i := int64(0); i < bi; i++ {
			result *= ai
		}
		return value.Int{Value: result}, nil
	}
	af, ok1 := asFloat(a)
	bf, ok2 := asFloat(b)
	if !ok1 || !ok2 {
		return nil, ierrors.New(ierrors.TypeError, "cannot raise %s to %s", a.Type(), b.Type())
	}
	return value.Float{Value: math.Pow(af, bf)}, nil
}

// applyCompare implements the equality/relational tier. == and != defer
// to value.Equal (structural equality across every Value kind); the
// ordering operators accept numeric operands (with Int/Float promotion)
// or Str (lexicographic), and otherwise raise TypeError.
func applyCompare(op string, a, b value.Value) (value.Value, *ierrors.Error) {
	switch op {
	case "==":
		return value.Bool{Value: value.Equal(a, b)}, nil
	case "!=":
		return value.Bool{Value: !value.Equal(a, b)}, nil
	}

	if as, ok1 := a.(value.Str); ok1 {
		if bs, ok2 := b.(value.Str); ok2 {
			return value.Bool{Value: compareStrs(op, as.Value, bs.Value)}, nil
		}
	}
	af, ok1 := asFloat(a)
	bf, ok2 := asFloat(b)
	if !ok1 || !ok2 {
		return nil, ierrors.New(ierrors.TypeError, "cannot compare %s and %s", a.Type(), b.Type())
	}
	switch op {
	case "<":
		return value.Bool{Value: af < bf}, nil
	case ">":
		return value.Bool{Value: af > bf}, nil
	case "<=":
		return value.Bool{Value: af <= bf}, nil
	case ">=":
		return value.Bool{Value: af >= bf}, nil
	}
	return nil, ierrors.New(ierrors.SyntaxError, "unknown comparison operator %q", op)
}

func compareStrs(op, a, b string) bool {
	c := strings.Compare(a, b)
	switch op {
	case "<":
		return c < 0
	case ">":
		return c > 0
	case "<=":
		return c <= 0
	case ">=":
		return c >= 0
	}
	return false
}
