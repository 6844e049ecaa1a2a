package builtins

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/badrhassa/exo/internal/ierrors"
	"github.com/badrhassa/exo/internal/value"
)

func biPrint(ctx *Ctx, args []value.Value, line int) (value.Value, *ierrors.Error) {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = a.String()
	}
	fmt.Fprintln(ctx.Out, strings.Join(parts, " "))
	return value.Null{}, nil
}

// biInput prints an optional prompt, reads one line, and attempts to
// parse it as an integer, then a float, else returns it as a string
// (spec.md section 4.5).
func biInput(ctx *Ctx, args []value.Value, line int) (value.Value, *ierrors.Error) {
	if len(args) > 1 {
		return nil, arityError("input", "0 or 1", len(args))
	}
	if len(args) == 1 {
		fmt.Fprint(ctx.Out, args[0].String())
	}
	text, err := ctx.In.ReadString('\n')
	if err != nil && text == "" {
		return value.Str{Value: ""}, nil
	}
	text = strings.TrimRight(text, "\r\n")
	if n, perr := strconv.ParseInt(text, 10, 64); perr == nil {
		return value.Int{Value: n}, nil
	}
	if f, perr := strconv.ParseFloat(text, 64); perr == nil {
		return value.Float{Value: f}, nil
	}
	return value.Str{Value: text}, nil
}

// resolveHostPath resolves path relative to the directory of the
// currently-executing file, so readFile/writeFile in an imported module
// behave the same way module resolution itself does.
func resolveHostPath(ctx *Ctx, path string) string {
	if filepath.IsAbs(path) || ctx.CurrentFile == "" {
		return path
	}
	return filepath.Join(filepath.Dir(ctx.CurrentFile), path)
}

func biReadFile(ctx *Ctx, args []value.Value, line int) (value.Value, *ierrors.Error) {
	if len(args) != 1 {
		return nil, arityError("readFile", "1", len(args))
	}
	path, ok := args[0].(value.Str)
	if !ok {
		return nil, typeError("readFile", args[0])
	}
	data, err := os.ReadFile(resolveHostPath(ctx, path.Value))
	if err != nil {
		return nil, ierrors.New(ierrors.IOError, "readFile: %v", err)
	}
	return value.Str{Value: string(data)}, nil
}

func biWriteFile(ctx *Ctx, args []value.Value, line int) (value.Value, *ierrors.Error) {
	if len(args) != 2 {
		return nil, arityError("writeFile", "2", len(args))
	}
	path, ok := args[0].(value.Str)
	if !ok {
		return nil, typeError("writeFile", args[0])
	}
	content, ok := args[1].(value.Str)
	if !ok {
		return nil, typeError("writeFile", args[1])
	}
	if err := os.WriteFile(resolveHostPath(ctx, path.Value), []byte(content.Value), 0o644); err != nil {
		return nil, ierrors.New(ierrors.IOError, "writeFile: %v", err)
	}
	return value.Null{}, nil
}

func biFileExists(ctx *Ctx, args []value.Value, line int) (value.Value, *ierrors.Error) {
	if len(args) != 1 {
		return nil, arityError("fileExists", "1", len(args))
	}
	path, ok := args[0].(value.Str)
	if !ok {
		return nil, typeError("fileExists", args[0])
	}
	_, err := os.Stat(resolveHostPath(ctx, path.Value))
	return value.Bool{Value: err == nil}, nil
}

func biDeleteFile(ctx *Ctx, args []value.Value, line int) (value.Value, *ierrors.Error) {
	if len(args) != 1 {
		return nil, arityError("deleteFile", "1", len(args))
	}
	path, ok := args[0].(value.Str)
	if !ok {
		return nil, typeError("deleteFile", args[0])
	}
	if err := os.Remove(resolveHostPath(ctx, path.Value)); err != nil {
		return nil, ierrors.New(ierrors.IOError, "deleteFile: %v", err)
	}
	return value.Null{}, nil
}

func biSleep(ctx *Ctx, args []value.Value, line int) (value.Value, *ierrors.Error) {
	if len(args) != 1 {
		return nil, arityError("sleep", "1", len(args))
	}
	secs, ok := asFloat(args[0])
	if !ok {
		return nil, typeError("sleep", args[0])
	}
	time.Sleep(time.Duration(secs * float64(time.Second)))
	return value.Null{}, nil
}

// biHTML is the identity function — the Language treats HTML-escaping as
// the route handler's own responsibility (spec.md section 4.5).
func biHTML(ctx *Ctx, args []value.Value, line int) (value.Value, *ierrors.Error) {
	if len(args) != 1 {
		return nil, arityError("html", "1", len(args))
	}
	return args[0], nil
}
