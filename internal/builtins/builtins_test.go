package builtins

import (
	"bytes"
	"strings"
	"testing"

	"github.com/badrhassa/exo/internal/ierrors"
	"github.com/badrhassa/exo/internal/value"
)

func newTestCtx() (*Ctx, *bytes.Buffer) {
	var out bytes.Buffer
	ctx := NewCtx(&out, strings.NewReader(""))
	return ctx, &out
}

func TestArityErrors(t *testing.T) {
	ctx, _ := newTestCtx()
	tests := []struct {
		name string
		args []value.Value
	}{
		{"len", nil},
		{"len", []value.Value{value.Int{Value: 1}, value.Int{Value: 2}}},
		{"sqrt", nil},
		{"push", []value.Value{value.NewList(nil)}},
		{"json", nil},
	}
	for _, tt := range tests {
		_, err := Call(ctx, tt.name, tt.args, 1)
		if err == nil {
			t.Errorf("%s(%d args): expected an ArityError", tt.name, len(tt.args))
			continue
		}
		if err.Kind != ierrors.ArityError {
			t.Errorf("%s: got kind %s, want ArityError", tt.name, err.Kind)
		}
	}
}

func TestTypeErrors(t *testing.T) {
	ctx, _ := newTestCtx()
	tests := []struct {
		name string
		args []value.Value
	}{
		{"sqrt", []value.Value{value.Str{Value: "nope"}}},
		{"split", []value.Value{value.Int{Value: 1}}},
		{"keys", []value.Value{value.Int{Value: 1}}},
	}
	for _, tt := range tests {
		_, err := Call(ctx, tt.name, tt.args, 1)
		if err == nil {
			t.Errorf("%s: expected a TypeError", tt.name)
			continue
		}
		if err.Kind != ierrors.TypeError {
			t.Errorf("%s: got kind %s, want TypeError", tt.name, err.Kind)
		}
	}
}

func TestLen(t *testing.T) {
	ctx, _ := newTestCtx()
	v, err := Call(ctx, "len", []value.Value{value.Str{Value: "hello"}}, 1)
	if err != nil {
		t.Fatalf("unexpected error: %s", err.Format())
	}
	if i, ok := v.(value.Int); !ok || i.Value != 5 {
		t.Errorf("got %v, want 5", v)
	}
}

func TestTypeBuiltin(t *testing.T) {
	tests := []struct {
		v    value.Value
		want string
	}{
		{value.Int{Value: 1}, "int"},
		{value.Float{Value: 1.5}, "float"},
		{value.Str{Value: "x"}, "str"},
		{value.Bool{Value: true}, "bool"},
		{value.Null{}, "null"},
		{value.NewList(nil), "list"},
		{value.NewMap(), "map"},
	}
	ctx, _ := newTestCtx()
	for _, tt := range tests {
		v, err := Call(ctx, "type", []value.Value{tt.v}, 1)
		if err != nil {
			t.Fatalf("unexpected error: %s", err.Format())
		}
		if s, ok := v.(value.Str); !ok || s.Value != tt.want {
			t.Errorf("type(%v) = %v, want %s", tt.v, v, tt.want)
		}
	}
}

func TestMathBuiltins(t *testing.T) {
	ctx, _ := newTestCtx()

	v, err := Call(ctx, "sqrt", []value.Value{value.Int{Value: 16}}, 1)
	if err != nil {
		t.Fatalf("sqrt: %s", err.Format())
	}
	if f, ok := v.(value.Float); !ok || f.Value != 4 {
		t.Errorf("sqrt(16) = %v, want 4", v)
	}

	v, err = Call(ctx, "abs", []value.Value{value.Int{Value: -5}}, 1)
	if err != nil {
		t.Fatalf("abs: %s", err.Format())
	}
	if i, ok := v.(value.Int); !ok || i.Value != 5 {
		t.Errorf("abs(-5) = %v, want 5", v)
	}

	v, err = Call(ctx, "max", []value.Value{value.NewList([]value.Value{
		value.Int{Value: 3}, value.Int{Value: 9}, value.Int{Value: 1},
	})}, 1)
	if err != nil {
		t.Fatalf("max: %s", err.Format())
	}
	if i, ok := v.(value.Int); !ok || i.Value != 9 {
		t.Errorf("max([3,9,1]) = %v, want 9", v)
	}

	v, err = Call(ctx, "sum", []value.Value{value.NewList([]value.Value{
		value.Int{Value: 1}, value.Float{Value: 2.5},
	})}, 1)
	if err != nil {
		t.Fatalf("sum: %s", err.Format())
	}
	if f, ok := v.(value.Float); !ok || f.Value != 3.5 {
		t.Errorf("sum([1, 2.5]) = %v, want 3.5 (float-promoted)", v)
	}
}

func TestRandomInclusiveRange(t *testing.T) {
	ctx, _ := newTestCtx()
	for i := 0; i < 50; i++ {
		v, err := Call(ctx, "random", []value.Value{value.Int{Value: 1}, value.Int{Value: 3}}, 1)
		if err != nil {
			t.Fatalf("random: %s", err.Format())
		}
		n, ok := v.(value.Int)
		if !ok || n.Value < 1 || n.Value > 3 {
			t.Fatalf("random(1, 3) produced out-of-range value %v", v)
		}
	}
}

func TestSplitDefaultSeparatorIsLiteralSpace(t *testing.T) {
	ctx, _ := newTestCtx()
	v, err := Call(ctx, "split", []value.Value{value.Str{Value: "a  b"}}, 1)
	if err != nil {
		t.Fatalf("split: %s", err.Format())
	}
	list, ok := v.(*value.List)
	if !ok {
		t.Fatalf("got %T, want *value.List", v)
	}
	// A literal single-space default preserves the empty field between
	// two adjacent spaces, unlike whitespace-run collapsing.
	if len(list.Elements) != 3 {
		t.Errorf("split(\"a  b\") produced %d elements, want 3 (a, \"\", b)", len(list.Elements))
	}
}

func TestPushPop(t *testing.T) {
	ctx, _ := newTestCtx()
	list := value.NewList([]value.Value{value.Int{Value: 1}})

	if _, err := Call(ctx, "push", []value.Value{list, value.Int{Value: 2}}, 1); err != nil {
		t.Fatalf("push: %s", err.Format())
	}
	if len(list.Elements) != 2 {
		t.Fatalf("after push, got %d elements, want 2", len(list.Elements))
	}

	v, err := Call(ctx, "pop", []value.Value{list}, 1)
	if err != nil {
		t.Fatalf("pop: %s", err.Format())
	}
	if i, ok := v.(value.Int); !ok || i.Value != 2 {
		t.Errorf("pop() = %v, want 2", v)
	}
	if len(list.Elements) != 1 {
		t.Errorf("after pop, got %d elements, want 1", len(list.Elements))
	}
}

func TestPopEmptyListIsTypeError(t *testing.T) {
	ctx, _ := newTestCtx()
	_, err := Call(ctx, "pop", []value.Value{value.NewList(nil)}, 1)
	if err == nil || err.Kind != ierrors.TypeError {
		t.Fatalf("pop([]): expected a TypeError, got %v", err)
	}
}

func TestJSONRoundTrip(t *testing.T) {
	ctx, _ := newTestCtx()
	m := value.NewMap()
	m.SetStr("a", value.Int{Value: 1})
	m.SetStr("b", value.Bool{Value: true})

	encoded, err := Call(ctx, "json", []value.Value{m}, 1)
	if err != nil {
		t.Fatalf("json: %s", err.Format())
	}
	s, ok := encoded.(value.Str)
	if !ok {
		t.Fatalf("json() did not return a Str: %T", encoded)
	}

	decoded, err := Call(ctx, "parseJson", []value.Value{s}, 1)
	if err != nil {
		t.Fatalf("parseJson: %s", err.Format())
	}
	dm, ok := decoded.(*value.Map)
	if !ok {
		t.Fatalf("parseJson() did not return a Map: %T", decoded)
	}
	a, ok := dm.GetStr("a")
	if !ok || a.(value.Int).Value != 1 {
		t.Errorf("decoded.a = %v, want 1", a)
	}
}

func TestParseJSONInvalidInputIsIOError(t *testing.T) {
	ctx, _ := newTestCtx()
	_, err := Call(ctx, "parseJson", []value.Value{value.Str{Value: "{not json"}}, 1)
	if err == nil {
		t.Fatal("expected an error parsing malformed JSON")
	}
	if err.Kind != ierrors.IOError {
		t.Errorf("got kind %s, want IOError", err.Kind)
	}
}

func TestPrintWritesToCtxOut(t *testing.T) {
	ctx, out := newTestCtx()
	if _, err := Call(ctx, "print", []value.Value{value.Str{Value: "hi"}}, 1); err != nil {
		t.Fatalf("print: %s", err.Format())
	}
	if strings.TrimSpace(out.String()) != "hi" {
		t.Errorf("got output %q, want %q", out.String(), "hi")
	}
}

func TestUnknownBuiltinIsNameError(t *testing.T) {
	ctx, _ := newTestCtx()
	_, err := Call(ctx, "does_not_exist", nil, 1)
	if err == nil || err.Kind != ierrors.NameError {
		t.Fatalf("expected a NameError, got %v", err)
	}
}
