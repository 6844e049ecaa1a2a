package builtins

import (
	"strconv"

	"github.com/badrhassa/exo/internal/ierrors"
	"github.com/badrhassa/exo/internal/value"
)

func biLen(ctx *Ctx, args []value.Value, line int) (value.Value, *ierrors.Error) {
	if len(args) != 1 {
		return nil, arityError("len", "1", len(args))
	}
	switch v := args[0].(type) {
	case value.Str:
		return value.Int{Value: int64(len([]rune(v.Value)))}, nil
	case *value.List:
		return value.Int{Value: int64(len(v.Elements))}, nil
	case *value.Map:
		return value.Int{Value: int64(v.Len())}, nil
	default:
		return nil, typeError("len", args[0])
	}
}

func biType(ctx *Ctx, args []value.Value, line int) (value.Value, *ierrors.Error) {
	if len(args) != 1 {
		return nil, arityError("type", "1", len(args))
	}
	return value.Str{Value: args[0].Type()}, nil
}

func biStr(ctx *Ctx, args []value.Value, line int) (value.Value, *ierrors.Error) {
	if len(args) != 1 {
		return nil, arityError("str", "1", len(args))
	}
	return value.Str{Value: args[0].String()}, nil
}

func biInt(ctx *Ctx, args []value.Value, line int) (value.Value, *ierrors.Error) {
	if len(args) != 1 {
		return nil, arityError("int", "1", len(args))
	}
	switch v := args[0].(type) {
	case value.Int:
		return v, nil
	case value.Float:
		return value.Int{Value: int64(v.Value)}, nil
	case value.Bool:
		if v.Value {
			return value.Int{Value: 1}, nil
		}
		return value.Int{Value: 0}, nil
	case value.Str:
		n, err := strconv.ParseInt(v.Value, 10, 64)
		if err != nil {
			f, ferr := strconv.ParseFloat(v.Value, 64)
			if ferr != nil {
				return nil, ierrors.New(ierrors.TypeError, "int: cannot convert %q", v.Value)
			}
			return value.Int{Value: int64(f)}, nil
		}
		return value.Int{Value: n}, nil
	default:
		return nil, typeError("int", args[0])
	}
}

func biFloat(ctx *Ctx, args []value.Value, line int) (value.Value, *ierrors.Error) {
	if len(args) != 1 {
		return nil, arityError("float", "1", len(args))
	}
	switch v := args[0].(type) {
	case value.Float:
		return v, nil
	case value.Int:
		return value.Float{Value: float64(v.Value)}, nil
	case value.Str:
		f, err := strconv.ParseFloat(v.Value, 64)
		if err != nil {
			return nil, ierrors.New(ierrors.TypeError, "float: cannot convert %q", v.Value)
		}
		return value.Float{Value: f}, nil
	default:
		return nil, typeError("float", args[0])
	}
}
