package module

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/badrhassa/exo/internal/ierrors"
	"github.com/badrhassa/exo/internal/scope"
	"github.com/badrhassa/exo/internal/value"
)

// stubExec returns an Exec that counts how many times it ran, to verify a
// module's body executes at most once even when imported from two
// different call sites (Load's own caching).
func stubExec(calls *int, setExports func(*value.Map)) Exec {
	return func(body []value.Line, env value.Environment, exports *value.Map, file string) *ierrors.Error {
		*calls++
		if setExports != nil {
			setExports(exports)
		}
		return nil
	}
}

func writeModule(t *testing.T, dir, name, contents string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestLoadExecutesBodyOnce(t *testing.T) {
	dir := t.TempDir()
	writeModule(t, dir, "greet.exo", `let name = "world"`)

	calls := 0
	l := New(scope.New("global"))
	l.Exec = stubExec(&calls, func(exports *value.Map) {
		exports.SetStr("name", value.Str{Value: "world"})
	})

	main := filepath.Join(dir, "main.exo")
	exports1, err := l.Load(main, "greet")
	if err != nil {
		t.Fatalf("unexpected error: %s", err.Format())
	}
	exports2, err := l.Load(main, "greet")
	if err != nil {
		t.Fatalf("unexpected error: %s", err.Format())
	}
	if calls != 1 {
		t.Errorf("body executed %d times, want 1", calls)
	}
	if exports1 != exports2 {
		t.Error("expected the same cached exports map on the second load")
	}
	v, ok := exports1.GetStr("name")
	if !ok || v.(value.Str).Value != "world" {
		t.Errorf("got exports %v", exports1)
	}
}

func TestLoadAppendsExoSuffix(t *testing.T) {
	dir := t.TempDir()
	writeModule(t, dir, "util.exo", `let x = 1`)

	calls := 0
	l := New(scope.New("global"))
	l.Exec = stubExec(&calls, nil)

	main := filepath.Join(dir, "main.exo")
	if _, err := l.Load(main, "util"); err != nil {
		t.Fatalf("unexpected error: %s", err.Format())
	}
	if calls != 1 {
		t.Errorf("expected a single load, got %d calls", calls)
	}
}

func TestLoadFallsBackToSearchPaths(t *testing.T) {
	mainDir := t.TempDir()
	libDir := t.TempDir()
	writeModule(t, libDir, "shared.exo", `let shared = 1`)

	calls := 0
	l := New(scope.New("global"))
	l.Exec = stubExec(&calls, nil)
	l.SearchPaths = []string{libDir}

	main := filepath.Join(mainDir, "main.exo")
	if _, err := l.Load(main, "shared"); err != nil {
		t.Fatalf("expected search-path fallback to find shared.exo: %s", err.Format())
	}
	if calls != 1 {
		t.Errorf("expected a single load, got %d calls", calls)
	}
}

func TestLoadPrefersFileRelativeOverSearchPaths(t *testing.T) {
	mainDir := t.TempDir()
	libDir := t.TempDir()
	writeModule(t, mainDir, "shared.exo", `let shared = "local"`)
	writeModule(t, libDir, "shared.exo", `let shared = "from search path"`)

	var resolvedDir string
	l := New(scope.New("global"))
	l.Exec = func(body []value.Line, env value.Environment, exports *value.Map, file string) *ierrors.Error {
		resolvedDir = filepath.Dir(file)
		return nil
	}
	l.SearchPaths = []string{libDir}

	main := filepath.Join(mainDir, "main.exo")
	if _, err := l.Load(main, "shared"); err != nil {
		t.Fatalf("unexpected error: %s", err.Format())
	}
	if resolvedDir != mainDir {
		t.Errorf("resolved from %s, want the importing file's own directory %s", resolvedDir, mainDir)
	}
}

func TestLoadMissingFileIsImportError(t *testing.T) {
	dir := t.TempDir()
	l := New(scope.New("global"))
	l.Exec = stubExec(new(int), nil)

	main := filepath.Join(dir, "main.exo")
	_, err := l.Load(main, "does-not-exist")
	if err == nil {
		t.Fatal("expected an ImportError")
	}
	if err.Kind != ierrors.ImportError {
		t.Errorf("got kind %s, want ImportError", err.Kind)
	}
}

func TestCircularImportSeesPartialExports(t *testing.T) {
	// a.exo imports b.exo; b.exo imports a.exo back. The loader registers
	// a's (empty, still-being-populated) exports map in the cache before
	// running a's body, so b's import of a sees that same map instance
	// rather than recursing forever.
	dir := t.TempDir()
	writeModule(t, dir, "a.exo", `import("b")`)
	writeModule(t, dir, "b.exo", `import("a")`)

	var l *Loader
	var seenDuringCycle *value.Map
	l = New(scope.New("global"))
	l.Exec = func(body []value.Line, env value.Environment, exports *value.Map, file string) *ierrors.Error {
		if filepath.Base(file) == "a.exo" {
			sub, err := l.Load(file, "b")
			if err != nil {
				return err
			}
			_ = sub
		}
		if filepath.Base(file) == "b.exo" {
			sub, err := l.Load(file, "a")
			if err != nil {
				return err
			}
			seenDuringCycle = sub
		}
		return nil
	}

	aExports, err := l.Load(filepath.Join(dir, "main.exo"), "a")
	if err != nil {
		t.Fatalf("unexpected error: %s", err.Format())
	}
	if seenDuringCycle != aExports {
		t.Error("expected b's import of a to see a's own (partially populated) exports map")
	}
}
