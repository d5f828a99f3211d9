// ABOUTME: End-to-end pipeline tests: determinism, degenerate input, isolation
// ABOUTME: Drives the default catalog plus hand-built registries for failures

package optimizer

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	"github.com/mauromedda/promptiq-go/internal/escalation"
	"github.com/mauromedda/promptiq-go/internal/intent"
	"github.com/mauromedda/promptiq-go/internal/pattern"
)

func mustOptimizer(t *testing.T) *Optimizer {
	t.Helper()
	o, err := New(pattern.DefaultSettings())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return o
}

// stubPattern is a hand-built pattern for failure and mode tests.
type stubPattern struct {
	meta  pattern.Meta
	apply func(string, pattern.Context) pattern.Result
}

func (s stubPattern) Meta() pattern.Meta { return s.meta }

func (s stubPattern) Apply(text string, ctx pattern.Context) pattern.Result {
	return s.apply(text, ctx)
}

func stubMeta(id string, mode pattern.ModeFilter) pattern.Meta {
	return pattern.Meta{
		ID:       id,
		Name:     id,
		Intents:  intent.All(),
		Mode:     mode,
		Priority: 5,
		Phases:   []pattern.Phase{pattern.PhaseEnrich},
	}
}

func TestOptimize_Deterministic(t *testing.T) {
	t.Parallel()

	o := mustOptimizer(t)
	prompt := "Please fix the bug in the login handler, it throws an error on submit"

	a := o.Optimize(prompt, pattern.ModeDeep)
	b := o.Optimize(prompt, pattern.ModeDeep)
	if !reflect.DeepEqual(a, b) {
		t.Errorf("two runs over identical input diverged:\n%+v\n%+v", a, b)
	}
}

func TestOptimize_LoginPage(t *testing.T) {
	t.Parallel()

	o := mustOptimizer(t)
	res := o.Optimize("Create a login page", pattern.ModeFast)

	if res.Intent.PrimaryIntent != intent.CodeGeneration {
		t.Errorf("PrimaryIntent = %q; want code-generation", res.Intent.PrimaryIntent)
	}
	if res.Intent.Confidence <= 0 {
		t.Errorf("Confidence = %d; want > 0", res.Intent.Confidence)
	}
	if res.Quality.Overall >= 65 {
		t.Errorf("baseline Overall = %d; want < 65 for a minimal prompt", res.Quality.Overall)
	}
	if !strings.Contains(res.Enhanced, "Expected Output Format") {
		t.Errorf("Enhanced missing output format section:\n%s", res.Enhanced)
	}
	if strings.Contains(res.Original, "Expected Output Format") {
		t.Error("Original must stay untouched")
	}
	if res.Escalation.Recommend != escalation.RecommendDeep {
		t.Errorf("Recommend = %q; want deep", res.Escalation.Recommend)
	}
	if len(res.AppliedPatterns) != len(res.Improvements) {
		t.Errorf("AppliedPatterns (%d) and Improvements (%d) out of sync",
			len(res.AppliedPatterns), len(res.Improvements))
	}
	// The appended sections carry headings and bullets the bare prompt lacks.
	if res.FinalQuality.Structure <= res.Quality.Structure {
		t.Errorf("FinalQuality.Structure = %d; want > baseline %d",
			res.FinalQuality.Structure, res.Quality.Structure)
	}
}

func TestOptimize_EmptyPrompt(t *testing.T) {
	t.Parallel()

	o := mustOptimizer(t)
	for _, prompt := range []string{"", "   ", "\n\t  \n"} {
		res := o.Optimize(prompt, pattern.ModeFast)

		if res.Quality.Overall != 0 {
			t.Errorf("Optimize(%q): Overall = %d; want 0", prompt, res.Quality.Overall)
		}
		if len(res.Quality.RemainingIssues) == 0 {
			t.Errorf("Optimize(%q): want fixed gap findings for empty input", prompt)
		}
		if len(res.AppliedPatterns) != 0 {
			t.Errorf("Optimize(%q): patterns ran on empty input: %v", prompt, res.AppliedPatterns)
		}
		if res.Intent.PrimaryIntent != intent.CodeGeneration {
			t.Errorf("Optimize(%q): PrimaryIntent = %q; want the default", prompt, res.Intent.PrimaryIntent)
		}
		if _, err := json.Marshal(res); err != nil {
			t.Errorf("Optimize(%q): result not serializable: %v", prompt, err)
		}
	}
}

func TestOptimize_UnknownModeFallsBackToFast(t *testing.T) {
	t.Parallel()

	deepOnly := stubPattern{
		meta: stubMeta("deep-only", pattern.FilterDeep),
		apply: func(text string, _ pattern.Context) pattern.Result {
			return pattern.Result{
				EnhancedPrompt: text + "\n\ndeep section",
				Improvement:    pattern.Improvement{Dimension: "structure", Description: "deep", Impact: pattern.ImpactLow},
				Applied:        true,
			}
		},
	}
	reg, err := pattern.NewRegistry(deepOnly)
	if err != nil {
		t.Fatalf("registry: %v", err)
	}

	res := NewWithRegistry(reg).Optimize("Refactor the session store", "turbo")
	if res.Mode != pattern.ModeFast {
		t.Errorf("Mode = %q; want fast fallback", res.Mode)
	}
	if len(res.AppliedPatterns) != 0 {
		t.Errorf("deep-only pattern ran under fast fallback: %v", res.AppliedPatterns)
	}
}

func TestOptimize_PatternFailureIsolated(t *testing.T) {
	t.Parallel()

	// The panicking pattern has the higher priority, so it runs first; the
	// appender after it must still apply and land in the aggregate.
	boom := stubPattern{
		meta: func() pattern.Meta {
			m := stubMeta("boom", pattern.FilterBoth)
			m.Priority = 9
			return m
		}(),
		apply: func(string, pattern.Context) pattern.Result {
			panic("exploded")
		},
	}
	ok := stubPattern{
		meta: stubMeta("survivor", pattern.FilterBoth),
		apply: func(text string, _ pattern.Context) pattern.Result {
			return pattern.Result{
				EnhancedPrompt: text + "\n\n## Survivor",
				Improvement:    pattern.Improvement{Dimension: "structure", Description: "survived", Impact: pattern.ImpactLow},
				Applied:        true,
			}
		},
	}
	reg, err := pattern.NewRegistry(boom, ok)
	if err != nil {
		t.Fatalf("registry: %v", err)
	}

	res := NewWithRegistry(reg).Optimize("Create a login page", pattern.ModeFast)
	if len(res.AppliedPatterns) != 1 || res.AppliedPatterns[0].ID != "survivor" {
		t.Fatalf("AppliedPatterns = %+v; want only survivor", res.AppliedPatterns)
	}
	if !strings.Contains(res.Enhanced, "## Survivor") {
		t.Errorf("survivor's change missing from Enhanced:\n%s", res.Enhanced)
	}
	if len(res.Skipped) != 1 || !strings.Contains(res.Skipped[0], "boom: skipped due to error") {
		t.Errorf("Skipped = %v; want one note for boom", res.Skipped)
	}
}

func TestOptimize_ExistingOutputFormatUntouched(t *testing.T) {
	t.Parallel()

	o := mustOptimizer(t)
	res := o.Optimize("Generate a user report.\n\nOutput Format: JSON", pattern.ModeDeep)
	for _, s := range res.AppliedPatterns {
		if s.ID == "output-format" {
			t.Errorf("output-format applied despite an existing declaration")
		}
	}
	if strings.Contains(res.Enhanced, "Expected Output Format") {
		t.Errorf("scaffold duplicated onto a prompt that already declares a format:\n%s", res.Enhanced)
	}
}

func TestOptimizeAssuming(t *testing.T) {
	t.Parallel()

	o := mustOptimizer(t)
	res := o.OptimizeAssuming("Create a login page", pattern.ModeDeep, intent.PRDGeneration)

	if res.Intent.PrimaryIntent != intent.PRDGeneration {
		t.Errorf("PrimaryIntent = %q; want forced prd-generation", res.Intent.PrimaryIntent)
	}
	if res.Intent.Confidence != 100 {
		t.Errorf("Confidence = %d; want 100 for a forced intent", res.Intent.Confidence)
	}
	if res.Escalation.Recommend != escalation.RecommendPRD {
		t.Errorf("Recommend = %q; want prd", res.Escalation.Recommend)
	}

	// Invalid forced intents fall back to plain classification.
	fallback := o.OptimizeAssuming("Create a login page", pattern.ModeFast, "bogus")
	if fallback.Intent.PrimaryIntent != intent.CodeGeneration {
		t.Errorf("fallback PrimaryIntent = %q", fallback.Intent.PrimaryIntent)
	}
}

func TestOptimize_ResultSerializesFlat(t *testing.T) {
	t.Parallel()

	o := mustOptimizer(t)
	res := o.Optimize("Plan the migration of the billing service to the new queue", pattern.ModeDeep)

	raw, err := json.Marshal(res)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var back Result
	if err := json.Unmarshal(raw, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back.Enhanced != res.Enhanced || back.Escalation.Score != res.Escalation.Score {
		t.Error("round-trip lost fields")
	}
}
