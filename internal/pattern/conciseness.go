// ABOUTME: Conciseness filter: strips pleasantries, filler, and redundant phrases
// ABOUTME: Threshold-gated; below min changes the prompt passes through untouched

package pattern

import (
	"regexp"
	"strings"

	"github.com/mauromedda/promptiq-go/internal/intent"
	"github.com/mauromedda/promptiq-go/internal/quality"
)

// substitution is one rewrite rule of the filter.
type substitution struct {
	re          *regexp.Regexp
	replacement string
}

// substitutions is the canonical rewrite table. Pleasantries and filler are
// removed outright; redundant phrases collapse to their short form.
var substitutions = []substitution{
	{regexp.MustCompile(`(?i)\b(please|kindly)\b ?`), ""},
	{regexp.MustCompile(`(?i)\b(can|could|would) you (please )?`), ""},
	{regexp.MustCompile(`(?i)\bi('d| would) like (you )?to\b ?`), ""},
	{regexp.MustCompile(`(?i)\bwould you mind\b ?`), ""},
	{regexp.MustCompile(`(?i)\b(just|really|very|basically|actually|simply|quite)\b ?`), ""},
	{regexp.MustCompile(`(?i)\bit (would be|is) (great|nice|good) if\b ?`), ""},
	{regexp.MustCompile(`(?i)\bin order to\b`), "to"},
	{regexp.MustCompile(`(?i)\bdue to the fact that\b`), "because"},
	{regexp.MustCompile(`(?i)\bat this point in time\b`), "now"},
	{regexp.MustCompile(`(?i)\bfor the purpose of\b`), "for"},
	{regexp.MustCompile(`(?i)\ba large number of\b`), "many"},
	{regexp.MustCompile(`(?i)\bin the event that\b`), "if"},
	{regexp.MustCompile(`(?i)\bit is important to note that\b ?`), ""},
	{regexp.MustCompile(`(?i)\bthanks( in advance)?[.!]?\b ?`), ""},
}

var (
	multiSpaceRe   = regexp.MustCompile(`[ \t]{2,}`)
	multiNewlineRe = regexp.MustCompile(`\n{3,}`)
	spacePunctRe   = regexp.MustCompile(` ([,.;:!?])`)
)

// Conciseness strips filler from the evolved prompt after enrichment. The
// minimum-changes threshold keeps the filter from committing cosmetic edits:
// below it, the input is returned byte-identical even though substitutions
// were technically possible.
type Conciseness struct {
	MinChanges int
}

func (c Conciseness) Meta() Meta {
	return Meta{
		ID:          "conciseness",
		Name:        "Conciseness Filter",
		Description: "Strips pleasantries, filler words, and redundant phrases",
		Intents:     intent.All(),
		Mode:        FilterBoth,
		Priority:    3,
		Phases:      []Phase{PhasePolish},
	}
}

func (c Conciseness) Apply(promptText string, ctx Context) Result {
	out := promptText
	changes := 0
	for _, s := range substitutions {
		matches := s.re.FindAllStringIndex(out, -1)
		if len(matches) == 0 {
			continue
		}
		changes += len(matches)
		out = s.re.ReplaceAllString(out, s.replacement)
	}

	if changes < c.MinChanges {
		return Unapplied(promptText)
	}

	out = multiSpaceRe.ReplaceAllString(out, " ")
	out = multiNewlineRe.ReplaceAllString(out, "\n\n")
	out = spacePunctRe.ReplaceAllString(out, "$1")
	out = strings.TrimSpace(out)

	impact := ImpactLow
	if changes >= 5 {
		impact = ImpactMedium
	}
	return Result{
		EnhancedPrompt: out,
		Improvement: Improvement{
			Dimension:   quality.DimEfficiency,
			Description: "Removed filler and redundant phrasing",
			Impact:      impact,
		},
		Applied: true,
	}
}
