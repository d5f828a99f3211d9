// ABOUTME: Technical-context pattern: appends a constraints block when the prompt
// ABOUTME: names no language, framework, or version markers

package pattern

import (
	"regexp"

	"github.com/mauromedda/promptiq-go/internal/intent"
	"github.com/mauromedda/promptiq-go/internal/quality"
)

// techMarkerRe detects existing technical-context markers: language or
// framework names, versions, or an explicit context section.
var techMarkerRe = regexp.MustCompile(`(?i)\b(golang|python|typescript|javascript|rust|java|kotlin|swift|ruby|react|vue|angular|django|rails|spring|node)\b` +
	`|\b\d+(\.\d+)+\b|\bv\d+\b` +
	`|(?i)\b(technical context|tech stack|stack:)`)

// TechContext appends a technical-context block asking for the language,
// framework, and platform constraints the downstream system will need.
type TechContext struct{}

func (TechContext) Meta() Meta {
	return Meta{
		ID:          "technical-context",
		Name:        "Technical Context",
		Description: "Adds a constraints block when no language, framework, or version is named",
		Intents: []intent.Intent{
			intent.CodeGeneration, intent.Refinement, intent.Debugging,
			intent.Testing, intent.Migration, intent.SecurityReview,
		},
		Mode:     FilterBoth,
		Priority: 7,
		Phases:   []Phase{PhaseEnrich},
		RunAfter: "output-format",
	}
}

func (TechContext) Apply(promptText string, ctx Context) Result {
	if techMarkerRe.MatchString(promptText) {
		return Unapplied(promptText)
	}

	section := "## Technical Context\nSpecify before starting:\n" + bulletList([]string{
		"Language and version",
		"Framework(s) and key libraries",
		"Runtime or platform constraints",
		"Existing code or APIs this must integrate with",
	})
	return Result{
		EnhancedPrompt: appendSection(promptText, section),
		Improvement: Improvement{
			Dimension:   quality.DimSpecificity,
			Description: "Added a technical context block for missing stack details",
			Impact:      ImpactHigh,
		},
		Applied: true,
	}
}
