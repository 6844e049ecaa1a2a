// Package httpadapter implements the Language's external HTTP surface
// (spec.md section 6.4). The dispatcher is single-threaded by
// specification (section 5): every request body runs while holding a
// single mutex around the whole interpreter, the simpler of the two
// options section 5 allows. New relative to the teacher, which has no
// HTTP surface at all; written in the teacher's small-file style and
// grounded on the net/http idiom the rest of the example pack's
// services use (a ServeMux plus a handler closure per concern).
package httpadapter

import (
	"fmt"
	"net/http"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/badrhassa/exo/internal/exec"
	"github.com/badrhassa/exo/internal/ierrors"
	"github.com/badrhassa/exo/internal/interpreter"
	"github.com/badrhassa/exo/internal/value"
)

// Adapter serves registered routes over HTTP, serializing every request
// against the single interpreter instance (spec.md section 5: "the HTTP
// adapter reads routes but must hold the evaluator lock before
// dispatching a body").
type Adapter struct {
	Interp *interpreter.Interpreter
	mu     sync.Mutex
}

// New returns an Adapter backed by interp.
func New(interp *interpreter.Interpreter) *Adapter {
	return &Adapter{Interp: interp}
}

// ListenAndServe binds 0.0.0.0:port and serves until an unrecoverable
// listener error.
func (a *Adapter) ListenAndServe(port int) error {
	addr := fmt.Sprintf("0.0.0.0:%d", port)
	return http.ListenAndServe(addr, a)
}

func (a *Adapter) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	requestID := uuid.NewString()
	w.Header().Set("X-Request-Id", requestID)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	if req.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		fmt.Fprintf(w, "<h1>405 Method Not Allowed</h1><p>%s is GET-only.</p>", req.URL.Path)
		return
	}

	body, ok := a.Interp.Routes().Lookup(req.URL.Path)
	if !ok {
		a.writeNotFound(w, req.URL.Path)
		return
	}

	result, err := a.dispatch(body, req)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprintf(w, "<h1>500 Internal Server Error</h1><pre>%s</pre>", escapeHTML(err.Format()))
		return
	}
	fmt.Fprint(w, renderResponseBody(result))
}

// dispatch runs a route body against a fresh scope parented to the
// global scope, with a request record bound as `request` (spec.md
// section 4.8): a Map with path/method/query keys.
func (a *Adapter) dispatch(body []value.Line, req *http.Request) (value.Value, *ierrors.Error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	r := a.Interp.Runner
	reqScope := r.Global.NewChild()
	reqScope.Declare("request", requestRecord(req))

	_, val, err := exec.RunLines(body, reqScope, r)
	if err != nil {
		return nil, err
	}
	return val, nil
}

func requestRecord(req *http.Request) *value.Map {
	m := value.NewMap()
	m.SetStr("path", value.Str{Value: req.URL.Path})
	m.SetStr("method", value.Str{Value: req.Method})
	query := value.NewMap()
	for k, vs := range req.URL.Query() {
		if len(vs) > 0 {
			query.SetStr(k, value.Str{Value: vs[0]})
		}
	}
	m.SetStr("query", query)
	return m
}

// renderResponseBody substitutes a default placeholder when the route
// body produced Null (spec.md section 4.8).
func renderResponseBody(v value.Value) string {
	if v == nil {
		return defaultPlaceholder
	}
	if _, ok := v.(value.Null); ok {
		return defaultPlaceholder
	}
	return v.String()
}

const defaultPlaceholder = "<html><body><p>(no content)</p></body></html>"

func (a *Adapter) writeNotFound(w http.ResponseWriter, path string) {
	w.WriteHeader(http.StatusNotFound)
	paths := a.Interp.Routes().Paths()
	var sb strings.Builder
	sb.WriteString("<h1>404 Not Found</h1>")
	fmt.Fprintf(&sb, "<p>No route registered for %s.</p>", escapeHTML(path))
	if len(paths) > 0 {
		sort.Strings(paths)
		sb.WriteString("<p>Known routes:</p><ul>")
		for _, p := range paths {
			fmt.Fprintf(&sb, "<li>%s</li>", escapeHTML(p))
		}
		sb.WriteString("</ul>")
	}
	fmt.Fprint(w, sb.String())
}

func escapeHTML(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	return r.Replace(s)
}
