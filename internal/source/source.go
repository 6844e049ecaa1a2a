// Package source implements spec.md component B: splitting source text
// into physical lines and stripping trailing '#' comments. New relative to
// the teacher (DWScript tokenizes; the Language's evaluator works
// directly on line strings per spec.md section 4.2), written in the
// teacher's small-single-purpose-file style.
package source

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/badrhassa/exo/internal/value"
)

// Split breaks text into non-blank, comment-stripped, trimmed lines.
// Blank lines are dropped (spec.md section 6.1: "blank lines ignored"),
// but the original line numbering is preserved so error positions stay
// accurate.
//
// text is first NFC-normalized: Arabic source commonly carries combining
// diacritics, and spec.md section 9 flags byte-count keyword slicing as a
// bug class — normalizing up front means every later character-boundary
// slice (not just the keyword matcher) sees a canonical form instead of
// having to special-case denormalized input itself.
func Split(text string) []value.Line {
	text = norm.NFC.String(text)
	rawLines := strings.Split(text, "\n")
	out := make([]value.Line, 0, len(rawLines))
	for i, raw := range rawLines {
		stripped := StripComment(raw)
		trimmed := strings.TrimSpace(stripped)
		if trimmed == "" {
			continue
		}
		out = append(out, value.Line{Number: i + 1, Text: trimmed})
	}
	return out
}

// StripComment removes a trailing '#...' comment, respecting string
// literals so a '#' inside a quoted string is not mistaken for one
// (spec.md section 6.1).
func StripComment(line string) string {
	inStr := false
	var quote rune
	runes := []rune(line)
	for i := 0; i < len(runes); i++ {
		c := runes[i]
		if inStr {
			if c == '\\' {
				i++ // skip escaped character
				continue
			}
			if c == quote {
				inStr = false
			}
			continue
		}
		switch c {
		case '"', '\'':
			inStr = true
			quote = c
		case '#':
			return string(runes[:i])
		}
	}
	return line
}
