package builtins

import (
	"math"

	"github.com/badrhassa/exo/internal/ierrors"
	"github.com/badrhassa/exo/internal/value"
)

func asFloat(v value.Value) (float64, bool) {
	switch n := v.(type) {
	case value.Int:
		return float64(n.Value), true
	case value.Float:
		return n.Value, true
	default:
		return 0, false
	}
}

func unaryMath(name string, f func(float64) float64) builtinFunc {
	return func(ctx *Ctx, args []value.Value, line int) (value.Value, *ierrors.Error) {
		if len(args) != 1 {
			return nil, arityError(name, "1", len(args))
		}
		n, ok := asFloat(args[0])
		if !ok {
			return nil, typeError(name, args[0])
		}
		return value.Float{Value: f(n)}, nil
	}
}

func biSqrt(ctx *Ctx, args []value.Value, line int) (value.Value, *ierrors.Error) {
	return unaryMath("sqrt", math.Sqrt)(ctx, args, line)
}

func biRound(ctx *Ctx, args []value.Value, line int) (value.Value, *ierrors.Error) {
	if len(args) != 1 {
		return nil, arityError("round", "1", len(args))
	}
	n, ok := asFloat(args[0])
	if !ok {
		return nil, typeError("round", args[0])
	}
	return value.Int{Value: int64(math.Round(n))}, nil
}

func biFloor(ctx *Ctx, args []value.Value, line int) (value.Value, *ierrors.Error) {
	if len(args) != 1 {
		return nil, arityError("floor", "1", len(args))
	}
	n, ok := asFloat(args[0])
	if !ok {
		return nil, typeError("floor", args[0])
	}
	return value.Int{Value: int64(math.Floor(n))}, nil
}

func biCeil(ctx *Ctx, args []value.Value, line int) (value.Value, *ierrors.Error) {
	if len(args) != 1 {
		return nil, arityError("ceil", "1", len(args))
	}
	n, ok := asFloat(args[0])
	if !ok {
		return nil, typeError("ceil", args[0])
	}
	return value.Int{Value: int64(math.Ceil(n))}, nil
}

func biAbs(ctx *Ctx, args []value.Value, line int) (value.Value, *ierrors.Error) {
	if len(args) != 1 {
		return nil, arityError("abs", "1", len(args))
	}
	switch n := args[0].(type) {
	case value.Int:
		if n.Value < 0 {
			return value.Int{Value: -n.Value}, nil
		}
		return n, nil
	case value.Float:
		return value.Float{Value: math.Abs(n.Value)}, nil
	default:
		return nil, typeError("abs", args[0])
	}
}

func biPow(ctx *Ctx, args []value.Value, line int) (value.Value, *ierrors.Error) {
	if len(args) != 2 {
		return nil, arityError("pow", "2", len(args))
	}
	base, ok1 := asFloat(args[0])
	exp, ok2 := asFloat(args[1])
	if !ok1 || !ok2 {
		return nil, typeError("pow", args[0])
	}
	return value.Float{Value: math.Pow(base, exp)}, nil
}

// biMax and biMin both require at least one argument: a single list
// argument is reduced elementwise, otherwise every argument is compared
// directly (spec.md section 4.5's variadic math builtins).
func extremum(name string, less func(a, b float64) bool) builtinFunc {
	return func(ctx *Ctx, args []value.Value, line int) (value.Value, *ierrors.Error) {
		vals := args
		if len(args) == 1 {
			if lst, ok := args[0].(*value.List); ok {
				vals = lst.Elements
			}
		}
		if len(vals) == 0 {
			return nil, arityError(name, "at least 1", 0)
		}
		best := vals[0]
		bestF, ok := asFloat(best)
		if !ok {
			return nil, typeError(name, best)
		}
		for _, v := range vals[1:] {
			f, ok := asFloat(v)
			if !ok {
				return nil, typeError(name, v)
			}
			if less(f, bestF) {
				bestF = f
				best = v
			}
		}
		return best, nil
	}
}

func biMax(ctx *Ctx, args []value.Value, line int) (value.Value, *ierrors.Error) {
	return extremum("max", func(a, b float64) bool { return a > b })(ctx, args, line)
}

func biMin(ctx *Ctx, args []value.Value, line int) (value.Value, *ierrors.Error) {
	return extremum("min", func(a, b float64) bool { return a < b })(ctx, args, line)
}

func biSum(ctx *Ctx, args []value.Value, line int) (value.Value, *ierrors.Error) {
	vals := args
	if len(args) == 1 {
		if lst, ok := args[0].(*value.List); ok {
			vals = lst.Elements
		}
	}
	intSum := int64(0)
	floatSum := 0.0
	isFloat := false
	for _, v := range vals {
		switch n := v.(type) {
		case value.Int:
			intSum += n.Value
			floatSum += float64(n.Value)
		case value.Float:
			isFloat = true
			floatSum += n.Value
		default:
			return nil, typeError("sum", v)
		}
	}
	if isFloat {
		return value.Float{Value: floatSum}, nil
	}
	return value.Int{Value: intSum}, nil
}

// biRandom with no arguments returns a uniform float in [0, 1); with two
// integer arguments [lo, hi] it returns a uniform integer drawn inclusive
// of both ends (spec.md section 4.5).
func biRandom(ctx *Ctx, args []value.Value, line int) (value.Value, *ierrors.Error) {
	switch len(args) {
	case 0:
		return value.Float{Value: ctx.Rand.Float64()}, nil
	case 2:
		lo, ok1 := args[0].(value.Int)
		hi, ok2 := args[1].(value.Int)
		if !ok1 || !ok2 {
			return nil, typeError("random", args[0])
		}
		if hi.Value < lo.Value {
			return nil, ierrors.New(ierrors.ArithmeticError, "random: upper bound below lower bound")
		}
		span := hi.Value - lo.Value + 1
		return value.Int{Value: lo.Value + ctx.Rand.Int63n(span)}, nil
	default:
		return nil, arityError("random", "0 or 2", len(args))
	}
}

// biRange supports 1, 2, or 3 integer arguments: range(stop),
// range(start, stop), range(start, stop, step).
func biRange(ctx *Ctx, args []value.Value, line int) (value.Value, *ierrors.Error) {
	toInt := func(v value.Value) (int64, bool) {
		n, ok := v.(value.Int)
		return n.Value, ok
	}
	var start, stop, step int64 = 0, 0, 1
	switch len(args) {
	case 1:
		n, ok := toInt(args[0])
		if !ok {
			return nil, typeError("range", args[0])
		}
		stop = n
	case 2:
		a, ok1 := toInt(args[0])
		b, ok2 := toInt(args[1])
		if !ok1 || !ok2 {
			return nil, typeError("range", args[0])
		}
		start, stop = a, b
	case 3:
		a, ok1 := toInt(args[0])
		b, ok2 := toInt(args[1])
		c, ok3 := toInt(args[2])
		if !ok1 || !ok2 || !ok3 {
			return nil, typeError("range", args[0])
		}
		start, stop, step = a, b, c
	default:
		return nil, arityError("range", "1, 2, or 3", len(args))
	}
	if step == 0 {
		return nil, ierrors.New(ierrors.ArithmeticError, "range: step cannot be zero")
	}
	var elems []value.Value
	if step > 0 {
		for i := start; i < stop; i += step {
			elems = append(elems, value.Int{Value: i})
		}
	} else {
		for i := start; i > stop; i += step {
			elems = append(elems, value.Int{Value: i})
		}
	}
	return value.NewList(elems), nil
}
