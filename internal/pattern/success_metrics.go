// ABOUTME: Success-metrics pattern: infers a KPI list for PRD-like prompts
// ABOUTME: Domain signals match in a fixed priority order; first match wins

package pattern

import (
	"regexp"

	"github.com/mauromedda/promptiq-go/internal/intent"
	"github.com/mauromedda/promptiq-go/internal/quality"
)

// measurableRe detects existing measurable criteria. When present, the
// pattern must not apply.
var measurableRe = regexp.MustCompile(`(?i)\b(success criteria|success metrics|acceptance criteria|kpi|measured by|target:)`)

// kpiDomain pairs a domain signal detector with its inferred KPI list.
// The slice order is the match priority; the first matching domain wins and
// the rest are not consulted.
type kpiDomain struct {
	name string
	re   *regexp.Regexp
	kpis []string
}

var kpiDomains = []kpiDomain{
	{
		name: "performance",
		re:   regexp.MustCompile(`(?i)\b(performance|latency|speed|throughput|load|slow|fast)\b`),
		kpis: []string{
			"p95 latency under a stated budget",
			"Throughput at expected peak load",
			"Resource usage within the stated ceiling",
		},
	},
	{
		name: "engagement",
		re:   regexp.MustCompile(`(?i)\b(engagement|retention|adoption|onboarding|daily active|dau|mau)\b`),
		kpis: []string{
			"Day-7 retention improvement against baseline",
			"Feature adoption rate within 30 days",
			"Session frequency for returning users",
		},
	},
	{
		name: "conversion",
		re:   regexp.MustCompile(`(?i)\b(conversion|signup|sign-up|checkout|revenue|funnel|purchase)\b`),
		kpis: []string{
			"Funnel conversion rate uplift",
			"Drop-off reduction at the critical step",
			"Revenue per visitor against baseline",
		},
	},
	{
		name: "quality",
		re:   regexp.MustCompile(`(?i)\b(quality|bug|defect|reliability|uptime|error rate|stability)\b`),
		kpis: []string{
			"Defect escape rate per release",
			"Error rate below the stated threshold",
			"Uptime target over a rolling 30 days",
		},
	},
	{
		name: "integration",
		re:   regexp.MustCompile(`(?i)\b(integration|api|sync|webhook|partner|third-party)\b`),
		kpis: []string{
			"End-to-end sync success rate",
			"API error budget adherence",
			"Time to integrate for a new consumer",
		},
	},
}

// defaultKPIs is the scaffold when no domain signal matches.
var defaultKPIs = []string{
	"Define one primary metric this change must move",
	"State the baseline and the target value",
	"Name the measurement window",
}

// SuccessMetrics appends an inferred KPI list to PRD-like prompts that lack
// measurable criteria.
type SuccessMetrics struct{}

func (SuccessMetrics) Meta() Meta {
	return Meta{
		ID:          "success-metrics",
		Name:        "Success Metrics",
		Description: "Adds an inferred KPI list when PRD-like content lacks measurable criteria",
		Intents:     []intent.Intent{intent.PRDGeneration, intent.Planning},
		Mode:        FilterBoth,
		Priority:    6,
		Phases:      []Phase{PhaseEnrich},
	}
}

func (SuccessMetrics) Apply(promptText string, ctx Context) Result {
	if measurableRe.MatchString(promptText) {
		return Unapplied(promptText)
	}

	kpis := defaultKPIs
	for _, d := range kpiDomains {
		if d.re.MatchString(promptText) {
			kpis = d.kpis
			break
		}
	}

	section := "## Success Metrics\n" + bulletList(kpis)
	return Result{
		EnhancedPrompt: appendSection(promptText, section),
		Improvement: Improvement{
			Dimension:   quality.DimCompleteness,
			Description: "Added an inferred success metrics section",
			Impact:      ImpactHigh,
		},
		Applied: true,
	}
}
