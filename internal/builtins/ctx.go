// Package builtins implements spec.md component F: the single table
// mapping built-in names to host-provided procedures (spec.md section
// 4.5). Every entry enforces its own arity and argument types, raising
// the matching structured error (ArityError, TypeError, IOError, ...) on
// mismatch rather than panicking.
package builtins

import (
	"bufio"
	"io"
	"math/rand"

	"github.com/badrhassa/exo/internal/ierrors"
	"github.com/badrhassa/exo/internal/value"
)

// Ctx bundles everything a built-in needs beyond its arguments: the I/O
// streams print/input use, a source of randomness for random(), the
// currently-executing file (for readFile-style relative paths and
// import resolution), the active module's exports map (written by
// export()), and a callback into the module loader so builtins stays
// free of a dependency on internal/exec or internal/module.
type Ctx struct {
	Out         io.Writer
	In          *bufio.Reader
	Rand        *rand.Rand
	CurrentFile string
	Exports     *value.Map
	Import      func(fromFile, path string) (*value.Map, *ierrors.Error)
}

type builtinFunc func(ctx *Ctx, args []value.Value, line int) (value.Value, *ierrors.Error)

// Has reports whether name is a recognized built-in.
func Has(name string) bool {
	_, ok := table[name]
	return ok
}

// Call dispatches to name's built-in implementation.
func Call(ctx *Ctx, name string, args []value.Value, line int) (value.Value, *ierrors.Error) {
	fn, ok := table[name]
	if !ok {
		return nil, ierrors.New(ierrors.NameError, "%s is not a built-in", name).AtLine(line)
	}
	v, err := fn(ctx, args, line)
	if err != nil && err.Line == 0 {
		err = err.AtLine(line)
	}
	return v, err
}

func arityError(name string, want string, got int) *ierrors.Error {
	return ierrors.New(ierrors.ArityError, "%s expects %s argument(s), got %d", name, want, got)
}

func typeError(name string, got value.Value) *ierrors.Error {
	return ierrors.New(ierrors.TypeError, "%s: unexpected argument of type %s", name, got.Type())
}

// NewCtx returns a Ctx wired to stdout/stdin-style defaults; callers
// (the CLI driver, the HTTP adapter) override Out/In/CurrentFile per
// invocation.
func NewCtx(out io.Writer, in io.Reader) *Ctx {
	return &Ctx{
		Out:  out,
		In:   bufio.NewReader(in),
		Rand: rand.New(rand.NewSource(1)),
	}
}
