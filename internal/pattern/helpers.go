// ABOUTME: Shared helpers for catalog patterns appending markdown sections
// ABOUTME: Keeps section separators uniform across enrichments

package pattern

import "strings"

// appendSection appends a markdown section to text with exactly one blank
// line between the existing content and the new section.
func appendSection(text, section string) string {
	trimmed := strings.TrimRight(text, " \t\n")
	if trimmed == "" {
		return strings.TrimRight(section, "\n")
	}
	return trimmed + "\n\n" + strings.TrimRight(section, "\n")
}

// bulletList renders items as a markdown bullet list.
func bulletList(items []string) string {
	var b strings.Builder
	for _, item := range items {
		b.WriteString("- ")
		b.WriteString(item)
		b.WriteString("\n")
	}
	return b.String()
}
