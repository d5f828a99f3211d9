// ABOUTME: Unicode normalization for prompt text before analysis
// ABOUTME: Handles NFC, curly quotes, narrow no-break spaces, CRLF line endings

package textstat

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Normalize prepares raw prompt text for analysis: NFC composition, Unicode
// spaces to ASCII space, curly quotes to straight quotes, CRLF to LF, and
// trailing whitespace trimmed. It never changes the meaning of the text, only
// its byte representation, so repeated calls are stable.
func Normalize(s string) string {
	if s == "" {
		return ""
	}
	s = norm.NFC.String(s)
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "‘", "'")
	s = strings.ReplaceAll(s, "’", "'")
	s = strings.ReplaceAll(s, "“", `"`)
	s = strings.ReplaceAll(s, "”", `"`)
	s = NormalizeSpaces(s)
	return strings.TrimRight(s, " \t\n")
}

// NormalizeSpaces replaces Unicode space characters with ASCII space (U+0020).
// Covered codepoints: U+00A0, U+2000-U+200A, U+202F, U+205F, U+3000.
func NormalizeSpaces(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if isUnicodeSpace(r) {
			b.WriteByte(' ')
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// isUnicodeSpace reports whether r is a non-ASCII Unicode space character.
func isUnicodeSpace(r rune) bool {
	switch {
	case r == ' ': // no-break space
		return true
	case r >= ' ' && r <= ' ': // en/em/thin/hair/etc. spaces
		return true
	case r == ' ': // narrow no-break space
		return true
	case r == ' ': // medium mathematical space
		return true
	case r == '　': // ideographic space
		return true
	}
	return false
}
