package builtins

import (
	"github.com/badrhassa/exo/internal/ierrors"
	"github.com/badrhassa/exo/internal/value"
)

// biImport loads another module's exports map by delegating to the
// loader callback wired in at Ctx construction (internal/module.Loader,
// via internal/exec.Runner) — builtins itself never touches the
// filesystem path resolution or the module cache.
func biImport(ctx *Ctx, args []value.Value, line int) (value.Value, *ierrors.Error) {
	if len(args) != 1 {
		return nil, arityError("import", "1", len(args))
	}
	path, ok := args[0].(value.Str)
	if !ok {
		return nil, typeError("import", args[0])
	}
	if ctx.Import == nil {
		return nil, ierrors.New(ierrors.ImportError, "import: no module loader configured")
	}
	exports, err := ctx.Import(ctx.CurrentFile, path.Value)
	if err != nil {
		return nil, err
	}
	return exports, nil
}

// biExport writes name into the currently-executing module's exports
// map. Ctx.Exports is set only while the module loader runs a module
// body; exporting with no active module (the top-level script) raises
// an ImportError.
func biExport(ctx *Ctx, args []value.Value, line int) (value.Value, *ierrors.Error) {
	if len(args) != 2 {
		return nil, arityError("export", "2", len(args))
	}
	name, ok := args[0].(value.Str)
	if !ok {
		return nil, typeError("export", args[0])
	}
	if ctx.Exports == nil {
		return nil, ierrors.New(ierrors.ImportError, "export: not inside a module")
	}
	ctx.Exports.SetStr(name.Value, args[1])
	return value.Null{}, nil
}
