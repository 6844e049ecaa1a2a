package builtins

import (
	"strings"

	"github.com/badrhassa/exo/internal/ierrors"
	"github.com/badrhassa/exo/internal/value"
)

func biPush(ctx *Ctx, args []value.Value, line int) (value.Value, *ierrors.Error) {
	if len(args) != 2 {
		return nil, arityError("push", "2", len(args))
	}
	lst, ok := args[0].(*value.List)
	if !ok {
		return nil, typeError("push", args[0])
	}
	lst.Elements = append(lst.Elements, args[1])
	return lst, nil
}

func biPop(ctx *Ctx, args []value.Value, line int) (value.Value, *ierrors.Error) {
	if len(args) != 1 {
		return nil, arityError("pop", "1", len(args))
	}
	lst, ok := args[0].(*value.List)
	if !ok {
		return nil, typeError("pop", args[0])
	}
	n := len(lst.Elements)
	if n == 0 {
		return nil, ierrors.New(ierrors.TypeError, "pop: list is empty")
	}
	last := lst.Elements[n-1]
	lst.Elements = lst.Elements[:n-1]
	return last, nil
}

func biKeys(ctx *Ctx, args []value.Value, line int) (value.Value, *ierrors.Error) {
	if len(args) != 1 {
		return nil, arityError("keys", "1", len(args))
	}
	m, ok := args[0].(*value.Map)
	if !ok {
		return nil, typeError("keys", args[0])
	}
	return value.NewList(m.Keys()), nil
}

func biValues(ctx *Ctx, args []value.Value, line int) (value.Value, *ierrors.Error) {
	if len(args) != 1 {
		return nil, arityError("values", "1", len(args))
	}
	m, ok := args[0].(*value.Map)
	if !ok {
		return nil, typeError("values", args[0])
	}
	return value.NewList(m.Values()), nil
}

func biJoin(ctx *Ctx, args []value.Value, line int) (value.Value, *ierrors.Error) {
	if len(args) != 2 {
		return nil, arityError("join", "2", len(args))
	}
	sep, ok := args[0].(value.Str)
	if !ok {
		return nil, typeError("join", args[0])
	}
	lst, ok := args[1].(*value.List)
	if !ok {
		return nil, typeError("join", args[1])
	}
	parts := make([]string, len(lst.Elements))
	for i, el := range lst.Elements {
		parts[i] = el.String()
	}
	return value.Str{Value: strings.Join(parts, sep.Value)}, nil
}

// biSplit defaults to a single space separator when none is given.
func biSplit(ctx *Ctx, args []value.Value, line int) (value.Value, *ierrors.Error) {
	if len(args) != 1 && len(args) != 2 {
		return nil, arityError("split", "1 or 2", len(args))
	}
	s, ok := args[0].(value.Str)
	if !ok {
		return nil, typeError("split", args[0])
	}
	sepStr := " "
	if len(args) == 2 {
		sep, ok := args[1].(value.Str)
		if !ok {
			return nil, typeError("split", args[1])
		}
		sepStr = sep.Value
	}
	parts := strings.Split(s.Value, sepStr)
	elems := make([]value.Value, len(parts))
	for i, p := range parts {
		elems[i] = value.Str{Value: p}
	}
	return value.NewList(elems), nil
}
