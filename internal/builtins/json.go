package builtins

import (
	"strconv"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/badrhassa/exo/internal/ierrors"
	"github.com/badrhassa/exo/internal/value"
)

// biJSON serializes a value into a JSON string. Promoted from the
// teacher's indirect gjson/sjson dependency (pulled in transitively but
// never exercised directly there) into the Language's json/parseJson
// built-ins, built directly on sjson's path-set API instead of
// round-tripping through encoding/json and a throwaway struct tree.
func biJSON(ctx *Ctx, args []value.Value, line int) (value.Value, *ierrors.Error) {
	if len(args) != 1 {
		return nil, arityError("json", "1", len(args))
	}
	out, err := toJSON(args[0])
	if err != nil {
		return nil, ierrors.New(ierrors.TypeError, "json: %v", err)
	}
	return value.Str{Value: out}, nil
}

// scalarRaw wraps a Go scalar in a throwaway {"v":...} document via sjson
// and pulls the encoded value back out with gjson — sjson has no
// top-level-scalar Set, so wrapping and unwrapping is the straight line
// to a standalone JSON literal.
func scalarRaw(goVal any) (string, error) {
	wrapped, err := sjson.Set("", "v", goVal)
	if err != nil {
		return "", err
	}
	return gjson.Get(wrapped, "v").Raw, nil
}

func toJSON(v value.Value) (string, error) {
	switch x := v.(type) {
	case value.Null:
		return "null", nil
	case value.Bool:
		return scalarRaw(x.Value)
	case value.Int:
		return scalarRaw(x.Value)
	case value.Float:
		return scalarRaw(x.Value)
	case value.Str:
		return scalarRaw(x.Value)
	case *value.List:
		out := "[]"
		var err error
		for i, el := range x.Elements {
			raw, rerr := toJSON(el)
			if rerr != nil {
				return "", rerr
			}
			out, err = sjson.SetRaw(out, strconv.Itoa(i), raw)
			if err != nil {
				return "", err
			}
		}
		return out, nil
	case *value.Map:
		out := "{}"
		var err error
		for _, k := range x.Keys() {
			val, _ := x.Get(k)
			raw, rerr := toJSON(val)
			if rerr != nil {
				return "", rerr
			}
			out, err = sjson.SetRaw(out, k.String(), raw)
			if err != nil {
				return "", err
			}
		}
		return out, nil
	default:
		return "", sjsonUnsupported(v)
	}
}

type unsupportedJSONError struct{ tag string }

func (e unsupportedJSONError) Error() string { return "unsupported value of type " + e.tag }

func sjsonUnsupported(v value.Value) error {
	return unsupportedJSONError{tag: v.Type()}
}

// biParseJSON decodes a JSON string into Language values using gjson,
// which hands back a self-describing Result tree without committing to
// a Go struct shape up front — a natural fit for a dynamically typed
// runtime.
func biParseJSON(ctx *Ctx, args []value.Value, line int) (value.Value, *ierrors.Error) {
	if len(args) != 1 {
		return nil, arityError("parseJson", "1", len(args))
	}
	s, ok := args[0].(value.Str)
	if !ok {
		return nil, typeError("parseJson", args[0])
	}
	if !gjson.Valid(s.Value) {
		return nil, ierrors.New(ierrors.IOError, "parseJson: invalid JSON")
	}
	return fromGJSON(gjson.Parse(s.Value)), nil
}

func fromGJSON(r gjson.Result) value.Value {
	switch r.Type {
	case gjson.Null:
		return value.Null{}
	case gjson.False:
		return value.Bool{Value: false}
	case gjson.True:
		return value.Bool{Value: true}
	case gjson.Number:
		if r.Num == float64(int64(r.Num)) && !isFloatLiteral(r.Raw) {
			return value.Int{Value: int64(r.Num)}
		}
		return value.Float{Value: r.Num}
	case gjson.String:
		return value.Str{Value: r.Str}
	case gjson.JSON:
		if r.IsArray() {
			var elems []value.Value
			r.ForEach(func(_, v gjson.Result) bool {
				elems = append(elems, fromGJSON(v))
				return true
			})
			return value.NewList(elems)
		}
		m := value.NewMap()
		r.ForEach(func(k, v gjson.Result) bool {
			m.SetStr(k.String(), fromGJSON(v))
			return true
		})
		return m
	default:
		return value.Null{}
	}
}

func isFloatLiteral(raw string) bool {
	for _, r := range raw {
		if r == '.' || r == 'e' || r == 'E' {
			return true
		}
	}
	return false
}
