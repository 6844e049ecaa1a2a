package source

import "testing"

func TestStripComment(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		expected string
	}{
		{"no comment", "let x = 1", "let x = 1"},
		{"trailing comment", "let x = 1 # set x", "let x = 1 "},
		{"hash inside string", `print("a # b")`, `print("a # b")`},
		{"hash inside single-quoted string", `print('a # b')`, `print('a # b')`},
		{"escaped quote then hash", `print("a\" ") # c`, `print("a\" ") `},
		{"only comment", "# full line comment", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StripComment(tt.line)
			if got != tt.expected {
				t.Errorf("StripComment(%q) = %q, want %q", tt.line, got, tt.expected)
			}
		})
	}
}

func TestSplit(t *testing.T) {
	text := "let x = 1\n\n# comment only\nprint(x) # inline\n"
	lines := Split(text)

	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %+v", len(lines), lines)
	}
	if lines[0].Number != 1 || lines[0].Text != "let x = 1" {
		t.Errorf("line 0 = %+v", lines[0])
	}
	if lines[1].Number != 4 || lines[1].Text != "print(x)" {
		t.Errorf("line 1 = %+v", lines[1])
	}
}

func TestSplitNormalizesCombiningMarks(t *testing.T) {
	// Alef followed by a combining madda above (U+0627 U+0653) should
	// split into a single line holding the precomposed alef-with-madda
	// (U+0622) once NFC-normalized.
	decomposed := "آ"
	lines := Split(decomposed)
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	if lines[0].Text != "آ" {
		t.Errorf("got %q, want the NFC-composed %q", lines[0].Text, "آ")
	}
}
