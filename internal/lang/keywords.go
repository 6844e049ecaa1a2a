// Package lang holds the Language's bilingual keyword matrix (spec.md
// section 6.2) as a single source of truth shared by internal/eval
// (logical operators and literals) and internal/exec (statement
// dispatch), so the English and Arabic alias lists never drift apart
// between the two.
package lang

import "strings"

// Word is a multi-alias keyword: English spellings plus the Arabic
// keyword. Matching is by exact token after whitespace-splitting, except
// where noted (e.g. "not "/"ليس " as expression-level prefixes, which
// match against a leading substring instead).
type Word []string

var (
	Declare  = Word{"let", "var", "const", "متغير"}
	Func     = Word{"func", "function", "دالة"}
	Return   = Word{"return", "ارجع"}
	If       = Word{"if", "اذا"}
	ElseIf   = Word{"else if", "والا اذا"}
	Else     = Word{"else", "والا"}
	While    = Word{"while", "بينما"}
	For      = Word{"for", "لكل"}
	In       = Word{"in", "في"}
	Break    = Word{"break", "اكسر"}
	Continue = Word{"continue", "استمر"}
	End      = Word{"end", "نهاية"}
	Route    = Word{"route", "مسار"}

	And = Word{"and", "و", "&&"}
	Or  = Word{"or", "او", "||"}
	Not = Word{"not", "ليس", "!"}

	True  = Word{"True", "true", "صح"}
	False = Word{"False", "false", "خطأ"}
	Null  = Word{"null", "None", "فارغ"}
)

// Is reports whether s equals one of w's aliases exactly.
func (w Word) Is(s string) bool {
	for _, alias := range w {
		if alias == s {
			return true
		}
	}
	return false
}

// Match reports whether text is headed by one of w's aliases as a
// whole statement keyword — either the alias alone, or the alias
// followed by a space — and returns the trimmed remainder. Used by
// internal/exec to recognize a leading statement keyword (including
// multi-word ones like "else if") without slicing by a fixed byte
// count, which spec.md section 9 flags as unsafe for the Arabic
// aliases.
func (w Word) Match(text string) (rest string, ok bool) {
	for _, alias := range w {
		if text == alias {
			return "", true
		}
		if strings.HasPrefix(text, alias+" ") {
			return strings.TrimSpace(text[len(alias)+1:]), true
		}
	}
	return "", false
}

// blockOpeners are the statement keywords that expect a matching End
// (spec.md section 6.1, "Block opener" in the glossary). else/elseif are
// deliberately excluded: they share the enclosing if-chain's End rather
// than opening one of their own.
var blockOpeners = []Word{Func, If, While, For, Route}

// IsBlockOpener reports whether tok is the leading keyword of a statement
// that expects a matching End.
func IsBlockOpener(tok string) bool {
	for _, w := range blockOpeners {
		if w.Is(tok) {
			return true
		}
	}
	return false
}

// IsEnd reports whether tok closes a block.
func IsEnd(tok string) bool {
	return End.Is(tok)
}
