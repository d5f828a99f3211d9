// ABOUTME: Tests for word/sentence/grapheme counting and prompt normalization
// ABOUTME: Covers ASCII fast path, Unicode segmentation, and space folding

package textstat

import "testing"

func TestWords(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"empty", "", 0},
		{"single", "hello", 1},
		{"simple sentence", "create a login page", 4},
		{"punctuation only", "... !!!", 0},
		{"mixed punctuation", "fix it, now!", 3},
		{"newlines", "one\ntwo\nthree", 3},
		{"unicode words", "café résumé", 2},
		{"em dash separated", "fast — deep", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Words(tt.input); got != tt.want {
				t.Errorf("Words(%q) = %d; want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestSentences(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"empty", "", 0},
		{"single no period", "create a login page", 1},
		{"two sentences", "Build the API. Then add tests.", 2},
		{"question and statement", "What is this? Explain it.", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Sentences(tt.input); got != tt.want {
				t.Errorf("Sentences(%q) = %d; want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestGraphemes(t *testing.T) {
	t.Parallel()

	if got := Graphemes("abc"); got != 3 {
		t.Errorf("Graphemes(abc) = %d; want 3", got)
	}
	// A combining sequence counts as one user-perceived character.
	if got := Graphemes("é"); got != 1 {
		t.Errorf("Graphemes(e+combining acute) = %d; want 1", got)
	}
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"plain", "build it", "build it"},
		{"crlf", "a\r\nb", "a\nb"},
		{"curly quotes", "“hello” and ‘hi’", `"hello" and 'hi'`},
		{"nbsp", "a b", "a b"},
		{"narrow nbsp", "a b", "a b"},
		{"trailing whitespace", "done  \n\t", "done"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Normalize(tt.input); got != tt.want {
				t.Errorf("Normalize(%q) = %q; want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalize_Stable(t *testing.T) {
	t.Parallel()

	in := "“Fix” the bug\r\nquickly "
	once := Normalize(in)
	twice := Normalize(once)
	if once != twice {
		t.Errorf("Normalize not stable: %q vs %q", once, twice)
	}
}
