// ABOUTME: Task-structure pattern: wraps unstructured prose in a task scaffold
// ABOUTME: Gated on the needs-structure characteristic; never re-scaffolds

package pattern

import (
	"regexp"

	"github.com/mauromedda/promptiq-go/internal/intent"
	"github.com/mauromedda/promptiq-go/internal/quality"
)

// existingStructureRe detects prompts that already carry structure.
var existingStructureRe = regexp.MustCompile(`(?m)^#{1,6}\s|^\s*[-*]\s|^\s*\d+\.\s`)

// TaskStructure wraps a long unbroken prompt in a minimal task scaffold so
// later enrichments attach to named sections. Once it has applied, the
// output always contains the scaffold headings, so a re-run sees existing
// structure and reports not-applied.
type TaskStructure struct{}

func (TaskStructure) Meta() Meta {
	return Meta{
		ID:          "task-structure",
		Name:        "Task Structure",
		Description: "Wraps unstructured prose in a task/requirements scaffold",
		Intents:     intent.All(),
		Mode:        FilterBoth,
		Priority:    9,
		Phases:      []Phase{PhaseEnrich},
	}
}

func (TaskStructure) Apply(promptText string, ctx Context) Result {
	if !ctx.Intent.Characteristics.NeedsStructure {
		return Unapplied(promptText)
	}
	if existingStructureRe.MatchString(promptText) {
		return Unapplied(promptText)
	}

	scaffolded := "## Task\n\n" + promptText + "\n\n## Requirements\n" + bulletList([]string{
		"Break the task above into concrete, checkable requirements",
	})
	return Result{
		EnhancedPrompt: scaffolded,
		Improvement: Improvement{
			Dimension:   quality.DimStructure,
			Description: "Wrapped the prompt in a task/requirements scaffold",
			Impact:      ImpactMedium,
		},
		Applied: true,
	}
}
