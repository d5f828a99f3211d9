// ABOUTME: Escalation scoring: fixed additive rule table over quality and intent
// ABOUTME: Recommendation branches in strict priority order with a last-word override

package escalation

import (
	"github.com/mauromedda/promptiq-go/internal/intent"
	"github.com/mauromedda/promptiq-go/internal/quality"
)

// Recommendation is the processing depth the prompt warrants downstream.
type Recommendation string

const (
	RecommendFast Recommendation = "fast"
	RecommendDeep Recommendation = "deep"
	RecommendPRD  Recommendation = "prd"
)

// Result is the outcome of escalation scoring.
type Result struct {
	Score     int            `json:"score"` // 0-100
	Recommend Recommendation `json:"recommend"`
	Factors   []string       `json:"factors"`
}

// rule is one row of the additive table. Rules evaluate in declaration
// order; each either triggers (adding points and a factor string) or not.
type rule struct {
	points int
	factor string
	match  func(a intent.Analysis, m quality.Metrics) bool
}

var rules = []rule{
	{30, "overall quality below 50", func(a intent.Analysis, m quality.Metrics) bool {
		return m.Overall < 50
	}},
	{15, "overall quality in the 50-64 band", func(a intent.Analysis, m quality.Metrics) bool {
		return m.Overall >= 50 && m.Overall < 65
	}},
	{15, "clarity below 50", func(a intent.Analysis, m quality.Metrics) bool {
		return m.Clarity < 50
	}},
	{20, "completeness below 50", func(a intent.Analysis, m quality.Metrics) bool {
		return m.Completeness < 50
	}},
	{15, "actionability below 50", func(a intent.Analysis, m quality.Metrics) bool {
		return m.Actionability < 50
	}},
	{15, "planning intent", func(a intent.Analysis, m quality.Metrics) bool {
		return a.PrimaryIntent == intent.Planning
	}},
	{25, "prd-generation intent", func(a intent.Analysis, m quality.Metrics) bool {
		return a.PrimaryIntent == intent.PRDGeneration
	}},
	{10, "open-ended and unstructured", func(a intent.Analysis, m quality.Metrics) bool {
		return a.Characteristics.IsOpenEnded && a.Characteristics.NeedsStructure
	}},
	{10, "intent confidence below 70", func(a intent.Analysis, m quality.Metrics) bool {
		return a.Confidence < 70
	}},
}

// Score evaluates the rule table against the analysis and quality metrics.
// The running score caps at 100. Recommendation branches evaluate in strict
// priority order, and the prd override at the end has the last word: it is
// not another additive factor and must run after every other branch.
func Score(a intent.Analysis, m quality.Metrics) Result {
	r := Result{}
	for _, rl := range rules {
		if rl.match(a, m) {
			r.Score += rl.points
			r.Factors = append(r.Factors, rl.factor)
		}
	}
	if r.Score > 100 {
		r.Score = 100
	}

	switch {
	case a.PrimaryIntent == intent.PRDGeneration:
		r.Recommend = RecommendPRD
	case r.Score >= 60 || m.Overall < 50:
		r.Recommend = RecommendDeep
	case r.Score >= 35:
		r.Recommend = RecommendDeep
	default:
		r.Recommend = RecommendFast
	}

	// Last-word override for documentation-shaped work that scored high
	// enough to deserve a full requirements pass.
	if r.Score >= 50 {
		switch a.PrimaryIntent {
		case intent.Planning, intent.PRDGeneration, intent.Documentation:
			r.Recommend = RecommendPRD
		}
	}

	return r
}
