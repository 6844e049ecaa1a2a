// Package interpreter bundles the pieces a running script needs into
// one value every entry point shares (spec.md section 9's "bundle into
// a single Interpreter context" design note, grounded on the teacher's
// internal/interp/interpreter.go top-level struct): the global scope,
// the built-in dispatcher context, the module loader, and the route
// registry all live inside exec.Runner; Interpreter is the thin façade
// the CLI driver, the REPL, and the HTTP adapter actually hold.
package interpreter

import (
	"io"
	"os"

	"github.com/badrhassa/exo/internal/builtins"
	"github.com/badrhassa/exo/internal/exec"
	"github.com/badrhassa/exo/internal/ierrors"
	"github.com/badrhassa/exo/internal/route"
	"github.com/badrhassa/exo/internal/source"
	"github.com/badrhassa/exo/internal/value"
)

// Interpreter is a single running instance of the Language: one global
// scope, one module cache, one route registry, one call stack.
type Interpreter struct {
	Runner *exec.Runner
}

// New returns an Interpreter wired to out/in for print/input and the
// other I/O built-ins, with the default recursion cap.
func New(out io.Writer, in io.Reader) *Interpreter {
	return NewWithCap(out, in, 0)
}

// NewWithCap is New with an explicit recursion-depth cap (0 uses the
// default), for config.Config's maxRecursion override.
func NewWithCap(out io.Writer, in io.Reader, recursionCap int) *Interpreter {
	ctx := builtins.NewCtx(out, in)
	return &Interpreter{Runner: exec.New(ctx, recursionCap)}
}

// RunFile reads path, splits it into lines, and runs it at top level.
func (ip *Interpreter) RunFile(path string) (value.Value, *ierrors.Error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, ierrors.New(ierrors.IOError, "%v", err)
	}
	return ip.RunSource(string(data), path)
}

// RunSource splits src into lines and runs it at top level, tagging
// errors and readFile/writeFile-relative paths with file.
func (ip *Interpreter) RunSource(src, file string) (value.Value, *ierrors.Error) {
	ip.Runner.Builtins.CurrentFile = file
	lines := source.Split(src)
	return ip.Runner.RunTopLevel(lines, file)
}

// Routes exposes the route registry for the HTTP adapter.
func (ip *Interpreter) Routes() *route.Registry { return ip.Runner.Routes }

// ScopeBindings returns the global scope's own bindings, for the CLI's
// --dump-scope debug flag.
func (ip *Interpreter) ScopeBindings() map[string]value.Value {
	return ip.Runner.Global.Bindings()
}
