package eval

import "strings"

// SplitAssign splits a statement-level line on its first top-level lone
// '=' (not part of ==, !=, <=, >=), used by internal/exec to parse
// declaration and assignment statements (spec.md section 4.4) without
// duplicating the depth/string-literal scanning primitives that already
// live in this package.
func SplitAssign(s string) (target, expr string, ok bool) {
	runes, mask := topLevelMask(s)
	for i := 0; i < len(runes); i++ {
		if !mask[i] || runes[i] != '=' {
			continue
		}
		if i > 0 {
			switch runes[i-1] {
			case '=', '!', '<', '>':
				continue
			}
		}
		if i+1 < len(runes) && runes[i+1] == '=' {
			continue
		}
		return strings.TrimSpace(string(runes[:i])), strings.TrimSpace(string(runes[i+1:])), true
	}
	return "", "", false
}

// IsIdentifier exposes the identifier-syntax check to internal/exec,
// which needs it to tell a plain-name assignment target apart from an
// indexed or dotted one.
func IsIdentifier(s string) bool { return isIdentifier(s) }

// SplitIndexTarget recognizes "name[idx]" as an assignment target.
func SplitIndexTarget(s string) (name, idxExpr string, ok bool) {
	n, rest, ok := matchIdentPrefix(s)
	if !ok || !wrapsWhole(rest, '[', ']') {
		return "", "", false
	}
	return n, rest[1 : len(rest)-1], true
}

// SplitPropertyTarget recognizes "a.b.c" as an assignment target,
// returning the base identifier and the dotted field-name path.
func SplitPropertyTarget(s string) (base string, path []string, ok bool) {
	_, segments, matches := findAllTopLevelPlain(s, []string{"."})
	if len(matches) == 0 {
		return "", nil, false
	}
	for _, seg := range segments {
		if !isIdentifier(strings.TrimSpace(seg)) {
			return "", nil, false
		}
	}
	return strings.TrimSpace(segments[0]), segments[1:], true
}
