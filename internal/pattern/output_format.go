// ABOUTME: Output-format pattern: appends an expected-output section when absent
// ABOUTME: Suggestions are keyed by the classified intent

package pattern

import (
	"regexp"

	"github.com/mauromedda/promptiq-go/internal/intent"
	"github.com/mauromedda/promptiq-go/internal/quality"
)

// outputFormatRe detects an existing output-format declaration. When it
// matches the input, the pattern must not apply.
var outputFormatRe = regexp.MustCompile(`(?i)\b(output format|expected output|response format|return format|output:|format:)`)

// OutputFormat appends an "Expected Output Format" section with
// intent-appropriate suggestions when the prompt does not declare one.
type OutputFormat struct{}

func (OutputFormat) Meta() Meta {
	return Meta{
		ID:          "output-format",
		Name:        "Output Format Suggestion",
		Description: "Adds an expected-output section when the prompt does not declare one",
		Intents: []intent.Intent{
			intent.CodeGeneration, intent.Refinement, intent.Debugging,
			intent.Documentation, intent.Testing, intent.Migration, intent.Learning,
		},
		Mode:     FilterBoth,
		Priority: 8,
		Phases:   []Phase{PhaseEnrich},
		RunAfter: "task-structure",
	}
}

func (OutputFormat) Apply(promptText string, ctx Context) Result {
	if outputFormatRe.MatchString(promptText) {
		return Unapplied(promptText)
	}

	section := "## Expected Output Format\n" + bulletList(outputSuggestions(ctx.Intent.PrimaryIntent))
	return Result{
		EnhancedPrompt: appendSection(promptText, section),
		Improvement: Improvement{
			Dimension:   quality.DimCompleteness,
			Description: "Added an expected output format section",
			Impact:      ImpactMedium,
		},
		Applied: true,
	}
}

// outputSuggestions returns the suggestion list for the intent. Unlisted
// intents share the generic default.
func outputSuggestions(i intent.Intent) []string {
	switch i {
	case intent.CodeGeneration:
		return []string{
			"Complete, runnable code including imports",
			"File path for each snippet",
			"Brief notes on non-obvious decisions",
		}
	case intent.Debugging:
		return []string{
			"Root cause diagnosis",
			"Minimal fix with the changed lines highlighted",
			"How to verify the fix",
		}
	case intent.Documentation:
		return []string{
			"Markdown with a heading per topic",
			"Short code examples where behavior is non-obvious",
			"A quick-start section first",
		}
	case intent.Testing:
		return []string{
			"Table-driven test cases with names",
			"Edge cases and failure paths covered",
			"Commands to run the suite",
		}
	case intent.Migration:
		return []string{
			"Step-by-step migration order",
			"Rollback procedure",
			"Compatibility notes for the transition window",
		}
	case intent.Learning:
		return []string{
			"Plain-language explanation first",
			"One concrete worked example",
			"Common pitfalls",
		}
	default:
		return []string{
			"State the desired format (prose, list, table, code, JSON)",
			"Note any length limits",
			"Name the audience for the result",
		}
	}
}
