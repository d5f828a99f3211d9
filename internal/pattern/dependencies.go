// ABOUTME: Dependency-mapping pattern: appends a categorized dependency list
// ABOUTME: Technical vs external categories inferred from keyword hits

package pattern

import (
	"regexp"

	"github.com/mauromedda/promptiq-go/internal/intent"
	"github.com/mauromedda/promptiq-go/internal/quality"
)

// dependencySectionRe detects an existing dependency section.
var dependencySectionRe = regexp.MustCompile(`(?im)\bdependenc(y|ies)\b\s*:?|^#{1,6}\s*depend`)

// depHint maps a keyword detector to a dependency entry and its category.
type depHint struct {
	re       *regexp.Regexp
	entry    string
	external bool
}

var depHints = []depHint{
	{regexp.MustCompile(`(?i)\b(database|storage|persist)\b`), "Database schema and migration path", false},
	{regexp.MustCompile(`(?i)\b(auth|login|session|account)\b`), "Authentication and session infrastructure", false},
	{regexp.MustCompile(`(?i)\b(api|endpoint|service)\b`), "Internal service APIs this consumes or extends", false},
	{regexp.MustCompile(`(?i)\b(deploy|infrastructure|hosting|ci)\b`), "Build and deployment pipeline changes", false},
	{regexp.MustCompile(`(?i)\b(payment|billing|invoice)\b`), "Payment provider integration", true},
	{regexp.MustCompile(`(?i)\b(email|notification|sms)\b`), "Messaging or notification service", true},
	{regexp.MustCompile(`(?i)\b(analytics|tracking|metrics)\b`), "Analytics vendor instrumentation", true},
	{regexp.MustCompile(`(?i)\b(third-party|vendor|partner|external)\b`), "Third-party vendor agreements", true},
}

// defaultDeps is the scaffold when no keyword hits.
var defaultDeps = struct {
	technical []string
	external  []string
}{
	technical: []string{"List internal systems this work builds on"},
	external:  []string{"List third-party services or teams this depends on"},
}

// Dependencies appends a categorized dependency list to planning and PRD
// prompts that lack one.
type Dependencies struct{}

func (Dependencies) Meta() Meta {
	return Meta{
		ID:          "dependency-mapping",
		Name:        "Dependency Mapping",
		Description: "Adds a categorized technical/external dependency list when absent",
		Intents:     []intent.Intent{intent.PRDGeneration, intent.Planning},
		Mode:        FilterDeep,
		Priority:    5,
		Phases:      []Phase{PhaseEnrich},
		RunAfter:    "success-metrics",
	}
}

func (Dependencies) Apply(promptText string, ctx Context) Result {
	if dependencySectionRe.MatchString(promptText) {
		return Unapplied(promptText)
	}

	var technical, external []string
	for _, h := range depHints {
		if h.re.MatchString(promptText) {
			if h.external {
				external = append(external, h.entry)
			} else {
				technical = append(technical, h.entry)
			}
		}
	}
	if len(technical) == 0 {
		technical = defaultDeps.technical
	}
	if len(external) == 0 {
		external = defaultDeps.external
	}

	section := "## Dependencies\n### Technical\n" + bulletList(technical) +
		"### External\n" + bulletList(external)
	return Result{
		EnhancedPrompt: appendSection(promptText, section),
		Improvement: Improvement{
			Dimension:   quality.DimCompleteness,
			Description: "Added a categorized dependency list",
			Impact:      ImpactMedium,
		},
		Applied: true,
	}
}
