package eval

import (
	"strconv"
	"strings"

	"github.com/badrhassa/exo/internal/ierrors"
	"github.com/badrhassa/exo/internal/value"
)

// parseStringLiteral parses a whole-expression string literal (spec.md
// section 4.2, item 4: double or single quoted, with \n \t \r \\ \" \'
// escapes). Returns ok=false if expr is not a string literal at all.
func parseStringLiteral(expr string) (string, bool) {
	if len(expr) < 2 {
		return "", false
	}
	quote := expr[0]
	if quote != '"' && quote != '\'' {
		return "", false
	}
	if !wrapsWhole(expr, rune(quote), rune(quote)) {
		return "", false
	}
	body := expr[1 : len(expr)-1]
	var b strings.Builder
	runes := []rune(body)
	for i := 0; i < len(runes); i++ {
		c := runes[i]
		if c == '\\' && i+1 < len(runes) {
			i++
			switch runes[i] {
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			case 'r':
				b.WriteByte('\r')
			case '\\':
				b.WriteByte('\\')
			case '"':
				b.WriteByte('"')
			case '\'':
				b.WriteByte('\'')
			default:
				b.WriteRune('\\')
				b.WriteRune(runes[i])
			}
			continue
		}
		b.WriteRune(c)
	}
	return b.String(), true
}

// parseNumericLiteral recognizes an optionally-signed int or float
// literal. Attempted last among the base-value forms (spec.md section
// 4.2, item 4 lists it after property access), which is what lets "3.14"
// fall through property-access detection: a leading digit is never a
// valid identifier start, so that path never claims it first.
func parseNumericLiteral(expr string) (value.Value, bool) {
	if expr == "" {
		return nil, false
	}
	if i, err := strconv.ParseInt(expr, 10, 64); err == nil {
		return value.Int{Value: i}, true
	}
	if f, err := strconv.ParseFloat(expr, 64); err == nil {
		return value.Float{Value: f}, true
	}
	return nil, false
}

func (e *evaluator) parseListLiteral(expr string) (value.Value, *ierrors.Error) {
	if !wrapsWhole(expr, '[', ']') {
		return nil, nil
	}
	body := expr[1 : len(expr)-1]
	parts := splitTopLevelCommas(body)
	elems := make([]value.Value, 0, len(parts))
	for _, p := range parts {
		v, err := e.eval(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		elems = append(elems, v)
	}
	return value.NewList(elems), nil
}

// parseMapLiteral parses "{k: v, ...}". A pair with no top-level ':' is
// silently dropped rather than raising a SyntaxError — an intentional
// carry-over of an ambiguous source behavior, not something to "fix" by
// rejecting it.
func (e *evaluator) parseMapLiteral(expr string) (value.Value, *ierrors.Error) {
	if !wrapsWhole(expr, '{', '}') {
		return nil, nil
	}
	body := expr[1 : len(expr)-1]
	parts := splitTopLevelCommas(body)
	m := value.NewMap()
	for _, p := range parts {
		left, _, right, ok := findFirstTopLevelPlain(p, []string{":"})
		if !ok {
			continue
		}
		kv, err := e.eval(strings.TrimSpace(left))
		if err != nil {
			return nil, err
		}
		vv, err := e.eval(strings.TrimSpace(right))
		if err != nil {
			return nil, err
		}
		if err := m.Set(kv, vv); err != nil {
			return nil, ierrors.New(ierrors.TypeError, "%s", err.Error())
		}
	}
	return m, nil
}
