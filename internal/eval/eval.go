// Package eval implements spec.md component C: the recursive,
// precedence-climbing expression evaluator that runs directly over a
// trimmed line substring instead of a token stream (spec.md section 4.2).
// There is deliberately no lexer and no AST node type here — each
// recursive call re-scans the string it was handed, which is the
// tokenizer-free design spec.md calls out as the Language's defining
// architectural trait.
package eval

import (
	"strings"

	"github.com/badrhassa/exo/internal/ierrors"
	"github.com/badrhassa/exo/internal/lang"
	"github.com/badrhassa/exo/internal/value"
)

// Host is everything the evaluator needs from its caller to resolve a
// function call: whether a name is a built-in, and how to invoke either
// kind of callable. internal/exec.Runner implements this; eval itself
// never imports exec, so the two packages stay acyclic even though a
// call expression and the statement that contains it are mutually
// recursive at runtime.
type Host interface {
	IsBuiltin(name string) bool
	CallBuiltin(name string, args []value.Value, line int) (value.Value, *ierrors.Error)
	CallProcedure(proc *value.Procedure, args []value.Value, line int) (value.Value, *ierrors.Error)
}

type evaluator struct {
	env  value.Environment
	host Host
	line int
}

// Eval evaluates expr against env, dispatching any call expression
// through host. line is the source line number, attached to any error
// raised while evaluating expr, including a RecursionError from a
// procedure call made from this expression.
func Eval(expr string, env value.Environment, host Host, line int) (value.Value, *ierrors.Error) {
	e := &evaluator{env: env, host: host, line: line}
	v, err := e.eval(expr)
	if err != nil && err.Line == 0 {
		err = err.AtLine(line)
	}
	return v, err
}

var equalityOps = []string{"==", "!=", ">=", "<=", ">", "<"}
var additiveOps = []string{"+", "-"}
var multiplicativeOps = []string{"*", "/", "%"}
var exponentOps = []string{"^"}

// eval recursively evaluates expr through the precedence tiers below.
// Any error it returns carries expr (trimmed) as its offending-expression
// context (spec.md section 3.6) via WithContext's first-write-wins rule:
// the deepest tier that actually raised the error sets it, and every
// enclosing recursive call that rewraps the same error on its way back up
// leaves it alone.
func (e *evaluator) eval(raw string) (value.Value, *ierrors.Error) {
	v, err := e.evalTiers(raw)
	if err != nil {
		err = err.WithContext(strings.TrimSpace(raw))
	}
	return v, err
}

func (e *evaluator) evalTiers(raw string) (value.Value, *ierrors.Error) {
	expr := strings.TrimSpace(raw)
	if expr == "" {
		return nil, ierrors.New(ierrors.SyntaxError, "empty expression")
	}
	expr = stripOuterParens(expr)

	// Tier 1: or (short-circuit, left to right, chains across any number
	// of operands). No unary-prefix ambiguity at this tier, so the plain
	// depth/string mask is enough — word-boundary safety for "or"/"او"
	// comes from matchOpAt itself.
	if _, operands, matches := findAllTopLevelPlain(expr, lang.Or); len(matches) > 0 {
		return e.evalOrChain(operands)
	}

	// Tier 2: and.
	if _, operands, matches := findAllTopLevelPlain(expr, lang.And); len(matches) > 0 {
		return e.evalAndChain(operands)
	}

	// Tier 3: not (prefix).
	if rest, ok := stripNotPrefix(expr); ok {
		v, err := e.eval(rest)
		if err != nil {
			return nil, err
		}
		return value.Bool{Value: !value.Truthy(v)}, nil
	}

	// Tier 4: equality/relational — non-chaining, exactly two operands.
	if left, op, right, ok := findFirstTopLevelPlain(expr, equalityOps); ok {
		lv, err := e.eval(left)
		if err != nil {
			return nil, err
		}
		rv, err := e.eval(right)
		if err != nil {
			return nil, err
		}
		return applyCompare(op, lv, rv)
	}

	// Tier 5: additive — left-associative, folds all operands in order.
	// This is the one tier where a leading or post-operator '+'/'-' is
	// unary rather than a split point, so it uses the expectOperand-aware
	// mask instead of the plain one.
	if _, operands, matches := findAllTopLevel(expr, additiveOps); len(matches) > 0 {
		return e.foldArith(operands, matches, applyAdd, applySub)
	}

	// Tier 6: multiplicative.
	if _, operands, matches := findAllTopLevelPlain(expr, multiplicativeOps); len(matches) > 0 {
		return e.foldArithTernary(operands, matches)
	}

	// Tier 7: exponent — right-associative: split at the first '^' and
	// recurse into the whole remainder, so "a^b^c" becomes a^(b^c).
	if left, _, right, ok := findFirstTopLevelPlain(expr, exponentOps); ok {
		lv, err := e.eval(left)
		if err != nil {
			return nil, err
		}
		rv, err := e.eval(right)
		if err != nil {
			return nil, err
		}
		return applyPow(lv, rv)
	}

	return e.evalBase(expr)
}

func (e *evaluator) evalOrChain(operands []string) (value.Value, *ierrors.Error) {
	for _, op := range operands {
		v, err := e.eval(op)
		if err != nil {
			return nil, err
		}
		if value.Truthy(v) {
			return value.Bool{Value: true}, nil
		}
	}
	return value.Bool{Value: false}, nil
}

func (e *evaluator) evalAndChain(operands []string) (value.Value, *ierrors.Error) {
	for _, op := range operands {
		v, err := e.eval(op)
		if err != nil {
			return nil, err
		}
		if !value.Truthy(v) {
			return value.Bool{Value: false}, nil
		}
	}
	return value.Bool{Value: true}, nil
}

// foldArith folds a left-associative +/- chain: operands has one more
// element than matches, e.g. ["a","b","c"] with ops ["+","-"] means
// (a+b)-c.
func (e *evaluator) foldArith(operands []string, matches []opMatch, add, sub func(a, b value.Value) (value.Value, *ierrors.Error)) (value.Value, *ierrors.Error) {
	acc, err := e.eval(operands[0])
	if err != nil {
		return nil, err
	}
	for i, m := range matches {
		rhs, err := e.eval(operands[i+1])
		if err != nil {
			return nil, err
		}
		if m.op == "+" {
			acc, err = add(acc, rhs)
		} else {
			acc, err = sub(acc, rhs)
		}
		if err != nil {
			return nil, err
		}
	}
	return acc, nil
}

func (e *evaluator) foldArithTernary(operands []string, matches []opMatch) (value.Value, *ierrors.Error) {
	acc, err := e.eval(operands[0])
	if err != nil {
		return nil, err
	}
	for i, m := range matches {
		rhs, err := e.eval(operands[i+1])
		if err != nil {
			return nil, err
		}
		switch m.op {
		case "*":
			acc, err = applyMul(acc, rhs)
		case "/":
			acc, err = applyDiv(acc, rhs)
		case "%":
			acc, err = applyMod(acc, rhs)
		}
		if err != nil {
			return nil, err
		}
	}
	return acc, nil
}

// stripNotPrefix recognizes a leading logical-not: "!" needs no trailing
// space, while the word forms "not"/"ليس" must be followed by whitespace
// so they never consume part of an identifier like "nothing".
func stripNotPrefix(expr string) (string, bool) {
	for _, alias := range lang.Not {
		if alias == "!" {
			if strings.HasPrefix(expr, "!") {
				return expr[1:], true
			}
			continue
		}
		if !strings.HasPrefix(expr, alias) {
			continue
		}
		rest := expr[len(alias):]
		if rest == "" || rest[0] != ' ' {
			continue
		}
		return strings.TrimSpace(rest), true
	}
	return "", false
}

// stripOuterParens removes one or more layers of a fully-wrapping
// "(...)" — but only while the wrapping is genuine (the opening paren's
// matching close is the expression's very last character), so "(a)+(b)"
// is left alone.
func stripOuterParens(expr string) string {
	for wrapsWhole(expr, '(', ')') {
		expr = strings.TrimSpace(expr[1 : len(expr)-1])
	}
	return expr
}

// evalBase resolves the base-value forms in the order spec.md section
// 4.2 item 4 lists them: boolean/null literal, string literal, list
// literal, map literal, call, indexing, property access, identifier
// lookup, numeric literal.
func (e *evaluator) evalBase(expr string) (value.Value, *ierrors.Error) {
	if lang.True.Is(expr) {
		return value.Bool{Value: true}, nil
	}
	if lang.False.Is(expr) {
		return value.Bool{Value: false}, nil
	}
	if lang.Null.Is(expr) {
		return value.Null{}, nil
	}

	if s, ok := parseStringLiteral(expr); ok {
		return value.Str{Value: s}, nil
	}

	if v, err := e.parseListLiteral(expr); v != nil || err != nil {
		return v, err
	}
	if v, err := e.parseMapLiteral(expr); v != nil || err != nil {
		return v, err
	}

	if v, err, handled := e.evalCall(expr); handled {
		return v, err
	}
	if v, err, handled := e.evalIndex(expr); handled {
		return v, err
	}
	if v, err, handled := e.evalProperty(expr); handled {
		return v, err
	}

	if isIdentifier(expr) {
		if v, ok := e.env.Get(expr); ok {
			return v, nil
		}
		if e.host != nil && e.host.IsBuiltin(expr) {
			return value.Builtin{Name: expr}, nil
		}
		return nil, ierrors.New(ierrors.NameError, "%s is not defined", expr)
	}

	// Unary +/- falls through every binary tier above (no valid split
	// point exists at position 0) and lands here.
	if len(expr) > 1 && (expr[0] == '-' || expr[0] == '+') {
		v, err := e.eval(expr[1:])
		if err != nil {
			return nil, err
		}
		if expr[0] == '+' {
			return v, nil
		}
		return negate(v)
	}

	if v, ok := parseNumericLiteral(expr); ok {
		return v, nil
	}

	return nil, ierrors.New(ierrors.SyntaxError, "cannot evaluate %q", expr)
}

func negate(v value.Value) (value.Value, *ierrors.Error) {
	switch n := v.(type) {
	case value.Int:
		return value.Int{Value: -n.Value}, nil
	case value.Float:
		return value.Float{Value: -n.Value}, nil
	}
	return nil, ierrors.New(ierrors.TypeError, "cannot negate %s", v.Type())
}

// evalCall recognizes "name(args...)" and dispatches to the host,
// resolving builtins before user procedures (the reverse of a bare
// identifier in evalBase, which checks the scope chain first).
func (e *evaluator) evalCall(expr string) (value.Value, *ierrors.Error, bool) {
	name, rest, ok := matchIdentPrefix(expr)
	if !ok || !wrapsWhole(rest, '(', ')') {
		return nil, nil, false
	}
	argsStr := rest[1 : len(rest)-1]
	argExprs := splitTopLevelCommas(argsStr)
	args := make([]value.Value, 0, len(argExprs))
	for _, a := range argExprs {
		v, err := e.eval(strings.TrimSpace(a))
		if err != nil {
			return nil, err, true
		}
		args = append(args, v)
	}

	if e.host != nil && e.host.IsBuiltin(name) {
		v, err := e.host.CallBuiltin(name, args, e.line)
		return v, err, true
	}
	if v, ok := e.env.Get(name); ok {
		if proc, ok := v.(*value.Procedure); ok {
			rv, err := e.host.CallProcedure(proc, args, e.line)
			return rv, err, true
		}
		return nil, ierrors.New(ierrors.TypeError, "%s is not callable", name), true
	}
	return nil, ierrors.New(ierrors.NameError, "%s is not defined", name), true
}

// evalIndex recognizes "name[index]". Nested indexing (a[i][j]) is not
// supported: the base must be a simple identifier (spec.md section 4.2).
func (e *evaluator) evalIndex(expr string) (value.Value, *ierrors.Error, bool) {
	name, rest, ok := matchIdentPrefix(expr)
	if !ok || !wrapsWhole(rest, '[', ']') {
		return nil, nil, false
	}
	base, ok := e.env.Get(name)
	if !ok {
		return nil, ierrors.New(ierrors.NameError, "%s is not defined", name), true
	}
	idxExpr := rest[1 : len(rest)-1]
	idx, err := e.eval(idxExpr)
	if err != nil {
		return nil, err, true
	}
	v, err := indexInto(base, idx)
	return v, err, true
}

func indexInto(base, idx value.Value) (value.Value, *ierrors.Error) {
	switch b := base.(type) {
	case *value.List:
		i, ok := idx.(value.Int)
		if !ok {
			return nil, ierrors.New(ierrors.TypeError, "list index must be an integer")
		}
		n := int64(len(b.Elements))
		pos := i.Value
		if pos < 0 {
			pos += n
		}
		if pos < 0 || pos >= n {
			return nil, ierrors.New(ierrors.TypeError, "list index %d out of range", i.Value)
		}
		return b.Elements[pos], nil
	case *value.Map:
		v, ok := b.Get(idx)
		if !ok {
			return nil, ierrors.New(ierrors.TypeError, "key not found: %s", idx.String())
		}
		return v, nil
	case value.Str:
		i, ok := idx.(value.Int)
		if !ok {
			return nil, ierrors.New(ierrors.TypeError, "string index must be an integer")
		}
		runes := []rune(b.Value)
		n := int64(len(runes))
		pos := i.Value
		if pos < 0 {
			pos += n
		}
		if pos < 0 || pos >= n {
			return nil, ierrors.New(ierrors.TypeError, "string index %d out of range", i.Value)
		}
		return value.Str{Value: string(runes[pos])}, nil
	}
	return nil, ierrors.New(ierrors.TypeError, "%s is not indexable", base.Type())
}

// IndexAssign writes val into base at idx, for internal/exec's
// "name[idx] = expr" assignment form (spec.md section 4.4). Only List
// and Map support index-assignment; a Str is immutable here.
func IndexAssign(base, idx, val value.Value) *ierrors.Error {
	switch b := base.(type) {
	case *value.List:
		i, ok := idx.(value.Int)
		if !ok {
			return ierrors.New(ierrors.TypeError, "list index must be an integer")
		}
		n := int64(len(b.Elements))
		pos := i.Value
		if pos < 0 {
			pos += n
		}
		if pos < 0 || pos >= n {
			return ierrors.New(ierrors.TypeError, "list index %d out of range", i.Value)
		}
		b.Elements[pos] = val
		return nil
	case *value.Map:
		if err := b.Set(idx, val); err != nil {
			return ierrors.New(ierrors.TypeError, "%s", err.Error())
		}
		return nil
	}
	return ierrors.New(ierrors.TypeError, "%s does not support index assignment", base.Type())
}

// Index is the exported counterpart of indexInto, for internal/exec's
// dotted-path assignment walk.
func Index(base, idx value.Value) (value.Value, *ierrors.Error) {
	return indexInto(base, idx)
}

// evalProperty recognizes "a.b.c": a chain of dotted identifier segments
// where every segment after the first names a Map key rather than an
// expression to evaluate. It requires the first segment to itself be a
// valid identifier, which is what keeps a float literal like "3.14" from
// ever reaching this path (a leading digit is never an identifier start).
func (e *evaluator) evalProperty(expr string) (value.Value, *ierrors.Error, bool) {
	_, segments, matches := findAllTopLevelPlain(expr, []string{"."})
	if len(matches) == 0 {
		return nil, nil, false
	}
	for _, s := range segments {
		if !isIdentifier(strings.TrimSpace(s)) {
			return nil, nil, false
		}
	}
	cur, ok := e.env.Get(strings.TrimSpace(segments[0]))
	if !ok {
		return nil, ierrors.New(ierrors.NameError, "%s is not defined", segments[0]), true
	}
	for _, seg := range segments[1:] {
		m, ok := cur.(*value.Map)
		if !ok {
			return nil, ierrors.New(ierrors.TypeError, "%s is not a map", seg), true
		}
		v, ok := m.GetStr(strings.TrimSpace(seg))
		if !ok {
			return nil, ierrors.New(ierrors.NameError, "key not found: %s", seg), true
		}
		cur = v
	}
	return cur, nil, true
}
