// ABOUTME: Text statistics over grapheme/word/sentence segmentation via uniseg
// ABOUTME: Fast path for plain ASCII; used by the quality scorer and patterns

package textstat

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Words returns the number of words in s using Unicode word segmentation.
// Segments that contain no letters or digits (pure punctuation, spaces) are
// not counted.
func Words(s string) int {
	if s == "" {
		return 0
	}
	if isPlainASCII(s) {
		n := 0
		for _, f := range strings.Fields(s) {
			if hasLetterOrDigit(f) {
				n++
			}
		}
		return n
	}
	n := 0
	state := -1
	rest := s
	for len(rest) > 0 {
		var word string
		word, rest, state = uniseg.FirstWordInString(rest, state)
		if hasLetterOrDigit(word) {
			n++
		}
	}
	return n
}

// Sentences returns the number of sentences in s using Unicode sentence
// segmentation. Whitespace-only segments are not counted.
func Sentences(s string) int {
	n := 0
	state := -1
	rest := s
	for len(rest) > 0 {
		var sentence string
		sentence, rest, state = uniseg.FirstSentenceInString(rest, state)
		if strings.TrimSpace(sentence) != "" {
			n++
		}
	}
	return n
}

// Graphemes returns the number of user-perceived characters in s.
func Graphemes(s string) int {
	if s == "" {
		return 0
	}
	if isPlainASCII(s) {
		return len(s)
	}
	return uniseg.GraphemeClusterCount(s)
}

// isPlainASCII returns true if s contains only printable ASCII and common
// ASCII whitespace.
func isPlainASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		b := s[i]
		if b >= 0x20 && b <= 0x7E {
			continue
		}
		if b == '\n' || b == '\t' || b == '\r' {
			continue
		}
		return false
	}
	return true
}

// hasLetterOrDigit reports whether the segment contains at least one
// letter or digit rune.
func hasLetterOrDigit(s string) bool {
	for _, r := range s {
		if isLetterOrDigit(r) {
			return true
		}
	}
	return false
}

func isLetterOrDigit(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	case r > 0x7F:
		// Non-ASCII runes are treated as word content; uniseg already
		// separated punctuation and spaces into their own segments.
		return !isNonASCIISpaceOrPunct(r)
	}
	return false
}

func isNonASCIISpaceOrPunct(r rune) bool {
	switch r {
	case ' ', ' ', ' ', '　',
		'–', '—', '‘', '’', '“', '”', '…':
		return true
	}
	return r >= ' ' && r <= ' '
}
