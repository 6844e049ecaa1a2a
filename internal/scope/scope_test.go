package scope

import (
	"testing"

	"github.com/badrhassa/exo/internal/value"
)

func TestDeclareShadowsOuterBinding(t *testing.T) {
	outer := New("global")
	outer.Declare("x", value.Int{Value: 1})

	inner := outer.NewChildScope("inner")
	inner.Declare("x", value.Int{Value: 2})

	v, ok := inner.Get("x")
	if !ok || v.(value.Int).Value != 2 {
		t.Errorf("inner.Get(x) = %v, want shadowed 2", v)
	}
	v, ok = outer.Get("x")
	if !ok || v.(value.Int).Value != 1 {
		t.Errorf("outer.Get(x) = %v, want unshadowed 1", v)
	}
}

func TestAssignWritesToDefiningNode(t *testing.T) {
	outer := New("global")
	outer.Declare("x", value.Int{Value: 1})
	inner := outer.NewChildScope("inner")

	if err := inner.Assign("x", value.Int{Value: 99}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	v, _ := outer.Get("x")
	if v.(value.Int).Value != 99 {
		t.Errorf("outer.Get(x) after inner.Assign = %v, want 99", v)
	}
	if _, ok := inner.vars["x"]; ok {
		t.Error("Assign should not have created a local binding in inner")
	}
}

func TestAssignUndeclaredNameIsError(t *testing.T) {
	s := New("global")
	if err := s.Assign("never_declared", value.Int{Value: 1}); err == nil {
		t.Fatal("expected an error assigning to an undeclared name")
	}
}

func TestGetWalksParentChain(t *testing.T) {
	a := New("a")
	a.Declare("shared", value.Str{Value: "from a"})
	b := a.NewChildScope("b")
	c := b.NewChildScope("c")

	v, ok := c.Get("shared")
	if !ok || v.(value.Str).Value != "from a" {
		t.Errorf("c.Get(shared) = %v, want value declared three levels up", v)
	}
}

func TestHas(t *testing.T) {
	s := New("global")
	if s.Has("x") {
		t.Error("Has(x) should be false before declaration")
	}
	s.Declare("x", value.Null{})
	if !s.Has("x") {
		t.Error("Has(x) should be true after declaration")
	}
}

func TestBindingsDoesNotIncludeParent(t *testing.T) {
	outer := New("global")
	outer.Declare("a", value.Int{Value: 1})
	inner := outer.NewChildScope("inner")
	inner.Declare("b", value.Int{Value: 2})

	bindings := inner.Bindings()
	if _, ok := bindings["a"]; ok {
		t.Error("Bindings() should not include the parent's own variables")
	}
	if _, ok := bindings["b"]; !ok {
		t.Error("Bindings() should include this scope's own variables")
	}
}
