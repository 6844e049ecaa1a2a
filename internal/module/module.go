// Package module implements spec.md component H: the module loader.
// Loading is register-before-execute — the exports map is created and
// cached under the module's resolved path before its body runs, so a
// circular import sees the partially-populated map instead of recursing
// forever (spec.md section 4.7; the partial visibility is explicitly
// flagged as intentional-but-subtle in section 9).
package module

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/badrhassa/exo/internal/ierrors"
	"github.com/badrhassa/exo/internal/scope"
	"github.com/badrhassa/exo/internal/source"
	"github.com/badrhassa/exo/internal/value"
)

// Exec runs body (already split into lines) against env, threading
// export-builtin calls into the given exports map and reporting file for
// any nested import resolution and error context. Set by the
// interpreter driver to internal/exec's module-execution entry point;
// module itself has no dependency on exec, avoiding an import cycle.
type Exec func(body []value.Line, env value.Environment, exports *value.Map, file string) *ierrors.Error

// Loader resolves and caches module exports by absolute path.
type Loader struct {
	mu     sync.Mutex
	cache  map[string]*value.Map
	global *scope.Scope
	Exec   Exec

	// SearchPaths are extra directories (config.Config's modulePaths)
	// tried, in order, when an import does not resolve relative to the
	// importing file. Set directly by the CLI driver after New.
	SearchPaths []string
}

// New returns a Loader whose module scopes are children of global.
func New(global *scope.Scope) *Loader {
	return &Loader{cache: make(map[string]*value.Map), global: global}
}

// Load resolves path relative to fromFile's directory (or the process
// working directory, if fromFile is empty — the top-level script), and
// returns its exports map, executing the module body at most once.
func (l *Loader) Load(fromFile, path string) (*value.Map, *ierrors.Error) {
	resolved, ioErr := l.resolvePath(fromFile, path)
	if ioErr != nil {
		return nil, ierrors.New(ierrors.ImportError, "cannot resolve module %q: %v", path, ioErr)
	}

	l.mu.Lock()
	if exports, ok := l.cache[resolved]; ok {
		l.mu.Unlock()
		return exports, nil
	}
	exports := value.NewMap()
	l.cache[resolved] = exports
	l.mu.Unlock()

	data, err := os.ReadFile(resolved)
	if err != nil {
		return nil, ierrors.New(ierrors.ImportError, "cannot load module %q: %v", path, err)
	}
	lines := source.Split(string(data))
	modScope := l.global.NewChildScope(resolved)

	if runErr := l.Exec(lines, modScope, exports, resolved); runErr != nil {
		return nil, runErr
	}
	return exports, nil
}

// resolvePath resolves path relative to fromFile's directory first (or
// the process working directory for the top-level script); if that
// candidate doesn't exist on disk, it falls back to l.SearchPaths, in
// order, before giving up. An absolute path is used as-is.
func (l *Loader) resolvePath(fromFile, path string) (string, error) {
	if !strings.HasSuffix(path, ".exo") {
		path += ".exo"
	}
	if filepath.IsAbs(path) {
		return filepath.Clean(path), nil
	}

	var base string
	if fromFile != "" {
		base = filepath.Dir(fromFile)
	} else {
		wd, err := os.Getwd()
		if err != nil {
			return "", err
		}
		base = wd
	}
	candidate := filepath.Clean(filepath.Join(base, path))
	if _, err := os.Stat(candidate); err == nil {
		return candidate, nil
	}

	for _, dir := range l.SearchPaths {
		alt := filepath.Clean(filepath.Join(dir, path))
		if _, err := os.Stat(alt); err == nil {
			return alt, nil
		}
	}
	return candidate, nil
}
