package exec

import (
	"strings"

	"github.com/badrhassa/exo/internal/ierrors"
	"github.com/badrhassa/exo/internal/lang"
	"github.com/badrhassa/exo/internal/value"
)

// firstToken returns the leading whitespace-delimited word of a line,
// used only to classify it as a block opener or closer for depth
// tracking. Slicing at the byte offset of a literal ASCII space is
// always a valid rune boundary, even when the rest of the line is
// Arabic — unlike a fixed-byte-count prefix slice (spec.md section 9).
func firstToken(s string) string {
	if i := strings.IndexByte(s, ' '); i >= 0 {
		return s[:i]
	}
	return s
}

// findBlockEnd returns the index (within lines) of the `end`/`نهاية`
// that closes the block opened at lines[open], per spec.md section 4.4:
// any block-opening keyword seen while scanning increments depth; `end`
// at depth zero terminates the block; the opener itself is not
// re-counted.
func findBlockEnd(lines []value.Line, open int) (int, *ierrors.Error) {
	depth := 0
	for j := open + 1; j < len(lines); j++ {
		tok := firstToken(lines[j].Text)
		if lang.IsBlockOpener(tok) {
			depth++
			continue
		}
		if lang.IsEnd(tok) {
			if depth == 0 {
				return j, nil
			}
			depth--
		}
	}
	return 0, ierrors.New(ierrors.SyntaxError, "missing closing end").AtLine(lines[open].Number)
}

// ifBranch is one arm of an if/else-if/else chain: cond is empty (and
// isElse true) for the terminal else.
type ifBranch struct {
	cond            string
	isElse          bool
	bodyStart, bodyEnd int
}

// collectIfChain splits the if-chain opened at lines[open] into its
// branches. else-if/else lines never open their own block (spec.md
// section 6.1's glossary), so they are recognized only at depth zero
// within the chain's own span.
func collectIfChain(lines []value.Line, open int) ([]ifBranch, int, *ierrors.Error) {
	end, err := findBlockEnd(lines, open)
	if err != nil {
		return nil, 0, err
	}

	cond0, _ := lang.If.Match(lines[open].Text)
	type marker struct {
		idx    int
		cond   string
		isElse bool
	}
	markers := []marker{{idx: open, cond: cond0}}

	depth := 0
	for j := open + 1; j < end; j++ {
		text := lines[j].Text
		if depth == 0 {
			if rest, ok := lang.ElseIf.Match(text); ok {
				markers = append(markers, marker{idx: j, cond: rest})
				continue
			}
			if _, ok := lang.Else.Match(text); ok {
				markers = append(markers, marker{idx: j, isElse: true})
				continue
			}
		}
		tok := firstToken(text)
		if lang.IsBlockOpener(tok) {
			depth++
		} else if depth > 0 && lang.IsEnd(tok) {
			depth--
		}
	}

	branches := make([]ifBranch, len(markers))
	for k, m := range markers {
		bodyEnd := end
		if k+1 < len(markers) {
			bodyEnd = markers[k+1].idx
		}
		branches[k] = ifBranch{cond: m.cond, isElse: m.isElse, bodyStart: m.idx + 1, bodyEnd: bodyEnd}
	}
	return branches, end, nil
}
