// ABOUTME: Intent taxonomy and analysis result types for prompt classification
// ABOUTME: Closed enum of task categories plus boolean characteristic flags

package intent

// Intent is the single best-guess task category a prompt belongs to.
type Intent string

// The closed set of intents. Declaration order matters: it is the tie-break
// order for classification (see All).
const (
	CodeGeneration Intent = "code-generation"
	Planning       Intent = "planning"
	Refinement     Intent = "refinement"
	Debugging      Intent = "debugging"
	Documentation  Intent = "documentation"
	PRDGeneration  Intent = "prd-generation"
	Testing        Intent = "testing"
	Migration      Intent = "migration"
	SecurityReview Intent = "security-review"
	Learning       Intent = "learning"
)

// All returns every intent in declaration order. When two intents accumulate
// the same vote total, the earlier one in this list wins; classification must
// never depend on map iteration order.
func All() []Intent {
	return []Intent{
		CodeGeneration,
		Planning,
		Refinement,
		Debugging,
		Documentation,
		PRDGeneration,
		Testing,
		Migration,
		SecurityReview,
		Learning,
	}
}

// Valid reports whether i is a member of the closed intent set.
func (i Intent) Valid() bool {
	for _, known := range All() {
		if i == known {
			return true
		}
	}
	return false
}

// Characteristics are independent boolean detectors over the prompt text.
// They are not mutually exclusive.
type Characteristics struct {
	HasCodeContext    bool `json:"hasCodeContext"`
	HasTechnicalTerms bool `json:"hasTechnicalTerms"`
	IsOpenEnded       bool `json:"isOpenEnded"`
	NeedsStructure    bool `json:"needsStructure"`
}

// Signal records one factor that contributed to the classification.
type Signal struct {
	Name   string  `json:"name"`
	Weight float64 `json:"weight"`
	Detail string  `json:"detail,omitempty"`
}

// Analysis is the immutable result of classifying one prompt.
type Analysis struct {
	PrimaryIntent   Intent          `json:"primaryIntent"`
	Confidence      int             `json:"confidence"` // 0-100
	Characteristics Characteristics `json:"characteristics"`
	SuggestedMode   string          `json:"suggestedMode,omitempty"` // "fast", "deep", or empty
	Signals         []Signal        `json:"signals,omitempty"`
}
