// ABOUTME: Orchestrator tests: filtering, deterministic ordering, fold threading
// ABOUTME: Panic isolation must skip the failing pattern and keep the run alive

package pattern

import (
	"strings"
	"testing"

	"github.com/mauromedda/promptiq-go/internal/intent"
)

func testCtx(i intent.Intent, mode Mode) Context {
	return Context{
		Intent:         intent.Analysis{PrimaryIntent: i, Confidence: 80},
		Mode:           mode,
		OriginalPrompt: "original",
	}
}

// appender returns a fake pattern that appends its tag to the prompt.
func appender(id string, priority int, runAfter string) fakePattern {
	m := validMeta(id)
	m.Priority = priority
	m.RunAfter = runAfter
	return fakePattern{
		meta: m,
		apply: func(s string, _ Context) Result {
			return Result{
				EnhancedPrompt: s + "|" + id,
				Improvement:    Improvement{Dimension: "structure", Description: id, Impact: ImpactLow},
				Applied:        true,
			}
		},
	}
}

func mustRegistry(t *testing.T, patterns ...Pattern) *Registry {
	t.Helper()
	reg, err := NewRegistry(patterns...)
	if err != nil {
		t.Fatalf("registry: %v", err)
	}
	return reg
}

func TestRun_PriorityOrdering(t *testing.T) {
	t.Parallel()

	// Lower-priority last: the higher-priority pattern's transformation must
	// be observable in the text before the lower one is applied.
	reg := mustRegistry(t,
		appender("low", 2, ""),
		appender("high", 9, ""),
	)
	out := Run("p", testCtx(intent.CodeGeneration, ModeFast), reg, PhaseEnrich)
	if out.FinalPrompt != "p|high|low" {
		t.Errorf("FinalPrompt = %q; want %q", out.FinalPrompt, "p|high|low")
	}
}

func TestRun_TieBreakByRunAfter(t *testing.T) {
	t.Parallel()

	// Equal priority; "second" declares it runs after "first" even though it
	// is registered earlier.
	reg := mustRegistry(t,
		appender("second", 5, "first"),
		appender("first", 5, ""),
	)
	out := Run("p", testCtx(intent.CodeGeneration, ModeFast), reg, PhaseEnrich)
	if out.FinalPrompt != "p|first|second" {
		t.Errorf("FinalPrompt = %q; want %q", out.FinalPrompt, "p|first|second")
	}
}

func TestRun_TieBreakByDeclarationOrder(t *testing.T) {
	t.Parallel()

	reg := mustRegistry(t,
		appender("alpha", 5, ""),
		appender("beta", 5, ""),
	)
	out := Run("p", testCtx(intent.CodeGeneration, ModeFast), reg, PhaseEnrich)
	if out.FinalPrompt != "p|alpha|beta" {
		t.Errorf("FinalPrompt = %q; want %q", out.FinalPrompt, "p|alpha|beta")
	}
}

func TestRun_RunAfterNeverOverridesPriority(t *testing.T) {
	t.Parallel()

	// "hint" asks to run after "low", but its higher priority wins anyway.
	reg := mustRegistry(t,
		appender("low", 2, ""),
		appender("hint", 8, "low"),
	)
	out := Run("p", testCtx(intent.CodeGeneration, ModeFast), reg, PhaseEnrich)
	if out.FinalPrompt != "p|hint|low" {
		t.Errorf("FinalPrompt = %q; want %q (hints must not override priority)", out.FinalPrompt, "p|hint|low")
	}
}

func TestRun_FiltersByModeIntentPhase(t *testing.T) {
	t.Parallel()

	deepOnly := appender("deep-only", 5, "")
	deepOnly.meta.Mode = FilterDeep

	wrongIntent := appender("planning-only", 5, "")
	wrongIntent.meta.Intents = []intent.Intent{intent.Planning}

	polish := appender("polish-only", 5, "")
	polish.meta.Phases = []Phase{PhasePolish}

	eligible := appender("eligible", 5, "")

	reg := mustRegistry(t, deepOnly, wrongIntent, polish, eligible)
	out := Run("p", testCtx(intent.CodeGeneration, ModeFast), reg, PhaseEnrich)
	if out.FinalPrompt != "p|eligible" {
		t.Errorf("FinalPrompt = %q; want only the eligible pattern applied", out.FinalPrompt)
	}
	if len(out.Applied) != 1 || out.Applied[0].ID != "eligible" {
		t.Errorf("Applied = %+v; want exactly [eligible]", out.Applied)
	}
}

func TestRun_BothFilterMatchesEitherMode(t *testing.T) {
	t.Parallel()

	reg := mustRegistry(t, appender("both", 5, ""))
	for _, mode := range []Mode{ModeFast, ModeDeep} {
		out := Run("p", testCtx(intent.CodeGeneration, mode), reg, PhaseEnrich)
		if out.FinalPrompt != "p|both" {
			t.Errorf("mode %s: FinalPrompt = %q; want applied", mode, out.FinalPrompt)
		}
	}
}

func TestRun_PanicIsolation(t *testing.T) {
	t.Parallel()

	bomb := fakePattern{
		meta: func() Meta { m := validMeta("bomb"); m.Priority = 9; return m }(),
		apply: func(string, Context) Result {
			panic("boom")
		},
	}
	reg := mustRegistry(t,
		bomb,
		appender("survivor", 5, ""),
	)

	out := Run("p", testCtx(intent.CodeGeneration, ModeFast), reg, PhaseEnrich)
	if out.FinalPrompt != "p|survivor" {
		t.Errorf("FinalPrompt = %q; survivor must still run after the panic", out.FinalPrompt)
	}
	if len(out.Skipped) != 1 || !strings.Contains(out.Skipped[0], "bomb: skipped due to error") {
		t.Errorf("Skipped = %v; want a synthetic note for the panicking pattern", out.Skipped)
	}
	if len(out.Improvements) != 1 {
		t.Errorf("Improvements = %v; want only the survivor's entry", out.Improvements)
	}
}

func TestRun_NotAppliedKeepsTextUnchanged(t *testing.T) {
	t.Parallel()

	// A pattern that reports Applied=false but sneaks in a modified prompt
	// must not affect the fold.
	liar := fakePattern{
		meta: validMeta("liar"),
		apply: func(s string, _ Context) Result {
			return Result{EnhancedPrompt: s + "|mutated", Applied: false}
		},
	}
	reg := mustRegistry(t, liar)
	out := Run("p", testCtx(intent.CodeGeneration, ModeFast), reg, PhaseEnrich)
	if out.FinalPrompt != "p" {
		t.Errorf("FinalPrompt = %q; want unchanged input", out.FinalPrompt)
	}
	if len(out.Applied) != 0 {
		t.Errorf("Applied = %+v; want empty", out.Applied)
	}
}

func TestRun_AppliedContainsOnlyAppliedPatterns(t *testing.T) {
	t.Parallel()

	skip := fakePattern{meta: validMeta("skip")}
	reg := mustRegistry(t, skip, appender("doer", 5, ""))
	out := Run("p", testCtx(intent.CodeGeneration, ModeFast), reg, PhaseEnrich)
	if len(out.Applied) != 1 || out.Applied[0].ID != "doer" {
		t.Errorf("Applied = %+v; want exactly [doer]", out.Applied)
	}
}
