package exec

import (
	"github.com/badrhassa/exo/internal/builtins"
	"github.com/badrhassa/exo/internal/ierrors"
	"github.com/badrhassa/exo/internal/module"
	"github.com/badrhassa/exo/internal/route"
	"github.com/badrhassa/exo/internal/scope"
	"github.com/badrhassa/exo/internal/value"
)

// Runner bundles everything a running script needs that outlives any
// single expression: the call stack (for recursion-depth enforcement and
// error snapshots), the built-in dispatcher context, the module loader,
// and the route registry. It implements eval.Host so the evaluator can
// call back into user procedures and built-ins without importing this
// package (spec.md section 4.6).
type Runner struct {
	Global   *scope.Scope
	Builtins *builtins.Ctx
	Modules  *module.Loader
	Routes   *route.Registry
	Stack    *ierrors.CallStack

	file string // the file currently executing, for error context
}

// New wires a Runner together: a fresh global scope, a builtins context,
// and a module loader whose Exec callback is this Runner's RunModule
// method — the one place the module/exec acyclic-dependency split is
// bridged. recursionCap of 0 uses ierrors.MaxRecursionDepth.
func New(ctx *builtins.Ctx, recursionCap int) *Runner {
	global := scope.New("global")
	r := &Runner{
		Global:   global,
		Builtins: ctx,
		Routes:   route.New(),
		Stack:    ierrors.NewCallStackWithCap(recursionCap),
	}
	r.Modules = module.New(global)
	r.Modules.Exec = r.RunModule
	ctx.Import = r.Modules.Load
	return r
}

func (r *Runner) currentFile() string { return r.file }

// IsBuiltin implements eval.Host.
func (r *Runner) IsBuiltin(name string) bool { return builtins.Has(name) }

// CallBuiltin implements eval.Host.
func (r *Runner) CallBuiltin(name string, args []value.Value, line int) (value.Value, *ierrors.Error) {
	return builtins.Call(r.Builtins, name, args, line)
}

// CallProcedure implements eval.Host: pushes a call-stack frame, binds
// parameters in a fresh scope parented to the procedure's captured
// definition scope, runs the body, and unwinds (spec.md section 4.6).
func (r *Runner) CallProcedure(proc *value.Procedure, args []value.Value, line int) (value.Value, *ierrors.Error) {
	if r.Stack.WillOverflow() {
		return nil, ierrors.New(ierrors.RecursionError, "recursion depth exceeded").AtLine(line).WithStack(r.Stack.Snapshot())
	}
	frameArgs := make([]string, len(args))
	for i, a := range args {
		frameArgs[i] = ierrors.Truncate(a.String(), 20)
	}
	r.Stack.Push(proc.Name, frameArgs)
	defer r.Stack.Pop()

	child := proc.Scope.NewChild()
	for i, p := range proc.Params {
		if i < len(args) {
			child.Declare(p, args[i])
		} else {
			child.Declare(p, value.Null{})
		}
	}

	// RunLines already resolves the implicit-return value to the last
	// bare-expression result (or Null) when no explicit return fires, so
	// SigReturn and SigNone carry the same val here either way.
	_, val, err := RunLines(proc.Body, child, r)
	if err != nil {
		// Keep the deepest snapshot: an enclosing call must not replace
		// the stack recorded where the failure actually happened.
		if err.Stack == nil {
			err = err.WithStack(r.Stack.Snapshot())
		}
		return nil, err
	}
	return val, nil
}

// RunTopLevel executes a script's lines against the global scope. A
// bare `return` at top level terminates the run with its value (spec.md
// section 4.4), matching the same signal a procedure body uses.
func (r *Runner) RunTopLevel(lines []value.Line, file string) (value.Value, *ierrors.Error) {
	prev := r.file
	r.file = file
	defer func() { r.file = prev }()

	_, val, err := RunLines(lines, r.Global, r)
	return val, err
}

// RunModule is wired as module.Loader.Exec: it runs a module's body in
// its own scope, with its own exports map and current-file context, then
// restores the Runner's previous builtins state (spec.md section 4.7).
func (r *Runner) RunModule(body []value.Line, env value.Environment, exports *value.Map, file string) *ierrors.Error {
	prevFile, prevExports := r.file, r.Builtins.Exports
	r.file = file
	r.Builtins.Exports = exports
	r.Builtins.CurrentFile = file
	defer func() {
		r.file = prevFile
		r.Builtins.Exports = prevExports
		r.Builtins.CurrentFile = prevFile
	}()

	_, _, err := RunLines(body, env, r)
	return err
}
