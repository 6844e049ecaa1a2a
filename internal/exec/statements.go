// Package exec implements spec.md component E, the statement runner,
// plus the procedure-call mechanics of component G and the glue that
// lets route and module bodies run against the evaluator and the
// built-in dispatcher.
package exec

import (
	"strings"

	"github.com/badrhassa/exo/internal/eval"
	"github.com/badrhassa/exo/internal/ierrors"
	"github.com/badrhassa/exo/internal/lang"
	"github.com/badrhassa/exo/internal/value"
)

// RunLines executes an ordered statement list against env, returning the
// control signal that interrupted it (SigNone on falling off the end),
// the value carried by that signal — the return expression's value for
// SigReturn, or the value of the last bare-expression-shaped statement
// executed for SigNone (spec.md section 4.4: "returned if produced by
// the last line inside a procedure body that lacks an explicit
// return") — and any error.
func RunLines(lines []value.Line, env value.Environment, r *Runner) (Signal, value.Value, *ierrors.Error) {
	var last value.Value = value.Null{}
	for i := 0; i < len(lines); {
		sig, val, isExpr, consumed, err := runStatement(lines, i, env, r)
		if err != nil {
			return SigNone, nil, err.InFile(r.currentFile()).AtLine(lines[i].Number)
		}
		if sig != SigNone {
			return sig, val, nil
		}
		if isExpr {
			last = val
		}
		i += consumed
	}
	return SigNone, last, nil
}

// runStatement dispatches the statement starting at lines[i], returning
// how many lines it consumed (1 for a simple statement, more for a
// block). isExpr marks a result that should feed the implicit-return
// chain: bare expressions, and any compound statement whose executed
// body itself ended on one.
func runStatement(lines []value.Line, i int, env value.Environment, r *Runner) (sig Signal, val value.Value, isExpr bool, consumed int, err *ierrors.Error) {
	text := lines[i].Text
	lineNo := lines[i].Number

	if rest, ok := lang.Declare.Match(text); ok {
		v, e := runDeclare(rest, env, r, lineNo)
		return SigNone, v, false, 1, e
	}
	if rest, ok := lang.Return.Match(text); ok {
		if strings.TrimSpace(rest) == "" {
			return SigReturn, value.Null{}, false, 1, nil
		}
		v, e := eval.Eval(rest, env, r, lineNo)
		if e != nil {
			return SigNone, nil, false, 1, e
		}
		return SigReturn, v, false, 1, nil
	}
	if lang.Break.Is(text) {
		return SigBreak, value.Null{}, false, 1, nil
	}
	if lang.Continue.Is(text) {
		return SigContinue, value.Null{}, false, 1, nil
	}
	if rest, ok := lang.Func.Match(text); ok {
		end, e := findBlockEnd(lines, i)
		if e != nil {
			return SigNone, nil, false, 1, e
		}
		if e := runFuncDef(rest, lines[i+1:end], env, lineNo); e != nil {
			return SigNone, nil, false, end - i + 1, e
		}
		return SigNone, value.Null{}, false, end - i + 1, nil
	}
	if rest, ok := lang.Route.Match(text); ok {
		end, e := findBlockEnd(lines, i)
		if e != nil {
			return SigNone, nil, false, 1, e
		}
		if e := runRouteDef(rest, lines[i+1:end], r, lineNo); e != nil {
			return SigNone, nil, false, end - i + 1, e
		}
		return SigNone, value.Null{}, false, end - i + 1, nil
	}
	if _, ok := lang.If.Match(text); ok {
		branches, end, e := collectIfChain(lines, i)
		if e != nil {
			return SigNone, nil, false, 1, e
		}
		s, v, e := runIfChain(branches, lines, env, r)
		return s, v, e == nil && s == SigNone, end - i + 1, e
	}
	if rest, ok := lang.While.Match(text); ok {
		end, e := findBlockEnd(lines, i)
		if e != nil {
			return SigNone, nil, false, 1, e
		}
		s, v, e := runWhile(rest, lines[i+1:end], env, r)
		return s, v, e == nil && s == SigNone, end - i + 1, e
	}
	if rest, ok := lang.For.Match(text); ok {
		end, e := findBlockEnd(lines, i)
		if e != nil {
			return SigNone, nil, false, 1, e
		}
		s, v, e := runFor(rest, lines[i+1:end], env, r, lineNo)
		return s, v, e == nil && s == SigNone, end - i + 1, e
	}

	v, e := runExprOrAssign(text, env, r, lineNo)
	_, _, isAssign := eval.SplitAssign(text)
	return SigNone, v, e == nil && !isAssign, 1, e
}

// runDeclare handles "let name = expr" and the special "name[idx] = expr"
// form, which assigns into an existing container without declaring a new
// binding (spec.md section 4.4).
func runDeclare(rest string, env value.Environment, r *Runner, line int) (value.Value, *ierrors.Error) {
	target, expr, ok := eval.SplitAssign(rest)
	if !ok {
		return nil, ierrors.New(ierrors.SyntaxError, "malformed declaration").AtLine(line).WithContext(rest)
	}
	v, err := eval.Eval(expr, env, r, line)
	if err != nil {
		return nil, err
	}
	if name, idxExpr, ok := eval.SplitIndexTarget(target); ok {
		base, ok := env.Get(name)
		if !ok {
			return nil, ierrors.New(ierrors.NameError, "%s is not defined", name).AtLine(line)
		}
		idx, err := eval.Eval(idxExpr, env, r, line)
		if err != nil {
			return nil, err
		}
		if err := eval.IndexAssign(base, idx, v); err != nil {
			return nil, err.AtLine(line)
		}
		return v, nil
	}
	env.Declare(target, v)
	return v, nil
}

// runExprOrAssign handles a line that is either a bare expression or one
// of the three assignment sub-forms (spec.md section 4.4): plain name,
// indexed, or dotted path.
func runExprOrAssign(text string, env value.Environment, r *Runner, line int) (value.Value, *ierrors.Error) {
	target, expr, ok := eval.SplitAssign(text)
	if !ok {
		return eval.Eval(text, env, r, line)
	}

	v, err := eval.Eval(expr, env, r, line)
	if err != nil {
		return nil, err
	}

	if eval.IsIdentifier(target) {
		if aerr := env.Assign(target, v); aerr != nil {
			return nil, ierrors.New(ierrors.NameError, "%s", aerr.Error()).AtLine(line)
		}
		return v, nil
	}
	if name, idxExpr, ok := eval.SplitIndexTarget(target); ok {
		base, ok := env.Get(name)
		if !ok {
			return nil, ierrors.New(ierrors.NameError, "%s is not defined", name).AtLine(line)
		}
		idx, err := eval.Eval(idxExpr, env, r, line)
		if err != nil {
			return nil, err
		}
		if err := eval.IndexAssign(base, idx, v); err != nil {
			return nil, err.AtLine(line)
		}
		return v, nil
	}
	if base, path, ok := eval.SplitPropertyTarget(target); ok {
		root, ok := env.Get(base)
		if !ok {
			return nil, ierrors.New(ierrors.NameError, "%s is not defined", base).AtLine(line)
		}
		cur := root
		for _, seg := range path[:len(path)-1] {
			m, ok := cur.(*value.Map)
			if !ok {
				return nil, ierrors.New(ierrors.TypeError, "%s is not a map", seg).AtLine(line)
			}
			next, ok := m.GetStr(seg)
			if !ok {
				return nil, ierrors.New(ierrors.NameError, "key not found: %s", seg).AtLine(line)
			}
			cur = next
		}
		m, ok := cur.(*value.Map)
		if !ok {
			return nil, ierrors.New(ierrors.TypeError, "%s is not a map", path[len(path)-1]).AtLine(line)
		}
		m.SetStr(path[len(path)-1], v)
		return v, nil
	}
	return nil, ierrors.New(ierrors.SyntaxError, "invalid assignment target").AtLine(line).WithContext(target)
}

// runFuncDef collects a procedure's parameter list and body and declares
// it in env. The captured scope is env itself (by alias, not a copy) so
// later mutations of the enclosing scope are visible to the closure
// (spec.md section 8.1).
func runFuncDef(header string, body []value.Line, env value.Environment, line int) *ierrors.Error {
	name, rest, ok := splitFuncHeader(header)
	if !ok {
		return ierrors.New(ierrors.SyntaxError, "malformed function definition").AtLine(line).WithContext(header)
	}
	params := splitParams(rest)
	proc := &value.Procedure{Name: name, Params: params, Body: body, Scope: env}
	env.Declare(name, proc)
	return nil
}

// splitFuncHeader recognizes "name(p0, p1, ...)".
func splitFuncHeader(header string) (name, paramList string, ok bool) {
	open := strings.IndexByte(header, '(')
	if open < 0 || !strings.HasSuffix(header, ")") {
		return "", "", false
	}
	return strings.TrimSpace(header[:open]), header[open+1 : len(header)-1], true
}

func splitParams(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	raw := strings.Split(s, ",")
	out := make([]string, len(raw))
	for i, p := range raw {
		out[i] = strings.TrimSpace(p)
	}
	return out
}

// runIfChain evaluates each branch's condition in order and executes the
// first true one's body, or the else branch if present — in the SAME
// scope as the enclosing statement (spec.md section 4.4: "no new scope is
// introduced").
func runIfChain(branches []ifBranch, lines []value.Line, env value.Environment, r *Runner) (Signal, value.Value, *ierrors.Error) {
	for _, b := range branches {
		run := b.isElse
		if !run {
			cond, err := eval.Eval(b.cond, env, r, lines[b.bodyStart-1].Number)
			if err != nil {
				return SigNone, nil, err
			}
			run = value.Truthy(cond)
		}
		if run {
			return RunLines(lines[b.bodyStart:b.bodyEnd], env, r)
		}
	}
	return SigNone, value.Null{}, nil
}

// runWhile re-evaluates cond before each iteration; break stops the loop
// (consumed here, not propagated further), continue ends the current
// iteration, return propagates to the caller.
func runWhile(cond string, body []value.Line, env value.Environment, r *Runner) (Signal, value.Value, *ierrors.Error) {
	last := value.Value(value.Null{})
	for {
		v, err := eval.Eval(cond, env, r, bodyLine(body))
		if err != nil {
			return SigNone, nil, err
		}
		if !value.Truthy(v) {
			return SigNone, last, nil
		}
		sig, val, err := RunLines(body, env, r)
		if err != nil {
			return SigNone, nil, err
		}
		switch sig {
		case SigReturn:
			return SigReturn, val, nil
		case SigBreak:
			return SigNone, last, nil
		case SigContinue:
			continue
		default:
			last = val
		}
	}
}

// runFor evaluates expr once to an iterable and binds name to each
// element in turn in env (spec.md section 4.4): List yields elements, Map
// yields keys, Str yields one-character substrings.
func runFor(header string, body []value.Line, env value.Environment, r *Runner, line int) (Signal, value.Value, *ierrors.Error) {
	name, iterExpr, ok := splitForHeader(header)
	if !ok {
		return SigNone, nil, ierrors.New(ierrors.SyntaxError, "malformed for header").AtLine(line).WithContext(header)
	}
	iterable, err := eval.Eval(iterExpr, env, r, line)
	if err != nil {
		return SigNone, nil, err
	}
	items, err := forItems(iterable, line)
	if err != nil {
		return SigNone, nil, err
	}

	last := value.Value(value.Null{})
	for _, item := range items {
		env.Declare(name, item)
		sig, val, rerr := RunLines(body, env, r)
		if rerr != nil {
			return SigNone, nil, rerr
		}
		switch sig {
		case SigReturn:
			return SigReturn, val, nil
		case SigBreak:
			return SigNone, last, nil
		case SigContinue:
			continue
		default:
			last = val
		}
	}
	return SigNone, last, nil
}

func forItems(v value.Value, line int) ([]value.Value, *ierrors.Error) {
	switch it := v.(type) {
	case *value.List:
		return it.Elements, nil
	case *value.Map:
		return it.Keys(), nil
	case value.Str:
		runes := []rune(it.Value)
		out := make([]value.Value, len(runes))
		for i, c := range runes {
			out[i] = value.Str{Value: string(c)}
		}
		return out, nil
	default:
		return nil, ierrors.New(ierrors.TypeError, "%s is not iterable", v.Type()).AtLine(line)
	}
}

// splitForHeader recognizes "name in expr" / "name في expr" by finding
// the earliest space-padded occurrence of either keyword — both are
// space-padded literals, so the search is always rune-boundary-safe.
func splitForHeader(header string) (name, expr string, ok bool) {
	best := -1
	bestLen := 0
	for _, kw := range []string{" in ", " في "} {
		if idx := strings.Index(header, kw); idx >= 0 && (best == -1 || idx < best) {
			best, bestLen = idx, len(kw)
		}
	}
	if best < 0 {
		return "", "", false
	}
	return strings.TrimSpace(header[:best]), strings.TrimSpace(header[best+bestLen:]), true
}

// runRouteDef registers a route body verbatim without executing it
// (spec.md section 4.8).
func runRouteDef(header string, body []value.Line, r *Runner, line int) *ierrors.Error {
	path := strings.TrimSpace(header)
	if path == "" || !strings.HasPrefix(path, "/") {
		return ierrors.New(ierrors.SyntaxError, "route path must start with /").AtLine(line).WithContext(header)
	}
	r.Routes.Register(path, body)
	return nil
}

func bodyLine(body []value.Line) int {
	if len(body) == 0 {
		return 0
	}
	return body[0].Number
}
