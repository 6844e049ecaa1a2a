package route

import (
	"testing"

	"github.com/badrhassa/exo/internal/value"
)

func line(n int, text string) value.Line {
	return value.Line{Number: n, Text: text}
}

func TestRegisterAndLookup(t *testing.T) {
	r := New()
	body := []value.Line{line(2, `print("hi")`)}
	r.Register("/hello", body)

	got, ok := r.Lookup("/hello")
	if !ok {
		t.Fatal("expected /hello to be registered")
	}
	if len(got) != 1 || got[0].Text != `print("hi")` {
		t.Errorf("got body %v", got)
	}

	if _, ok := r.Lookup("/missing"); ok {
		t.Error("expected /missing to be unregistered")
	}
}

func TestRegisterOverwritesLastWins(t *testing.T) {
	r := New()
	r.Register("/a", []value.Line{line(1, "first")})
	r.Register("/a", []value.Line{line(2, "second")})

	got, ok := r.Lookup("/a")
	if !ok || len(got) != 1 || got[0].Text != "second" {
		t.Errorf("expected last registration to win, got %v", got)
	}
}

func TestPathsSortedAndDeduped(t *testing.T) {
	r := New()
	r.Register("/z", nil)
	r.Register("/a", nil)
	r.Register("/m", nil)
	r.Register("/a", nil) // re-register, should not duplicate in order

	paths := r.Paths()
	want := []string{"/a", "/m", "/z"}
	if len(paths) != len(want) {
		t.Fatalf("got %v, want %v", paths, want)
	}
	for i := range want {
		if paths[i] != want[i] {
			t.Errorf("paths[%d] = %s, want %s", i, paths[i], want[i])
		}
	}
}
