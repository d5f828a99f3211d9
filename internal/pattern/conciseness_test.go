// ABOUTME: Conciseness filter tests: substitutions, threshold gate, whitespace
// ABOUTME: Below the threshold the input must come back byte-identical

package pattern

import (
	"strings"
	"testing"

	"github.com/mauromedda/promptiq-go/internal/intent"
)

func TestConciseness_StripsFiller(t *testing.T) {
	t.Parallel()

	c := Conciseness{MinChanges: 1}
	in := "Could you please just add a button in order to submit the form"
	res := c.Apply(in, testCtx(intent.CodeGeneration, ModeFast))
	if !res.Applied {
		t.Fatal("expected filter to apply")
	}
	for _, gone := range []string{"please", "just", "Could you", "in order to"} {
		if strings.Contains(res.EnhancedPrompt, gone) {
			t.Errorf("expected %q removed, got %q", gone, res.EnhancedPrompt)
		}
	}
	if !strings.Contains(res.EnhancedPrompt, "add a button to submit the form") {
		t.Errorf("task content lost: %q", res.EnhancedPrompt)
	}
	if res.Improvement.Dimension != "efficiency" {
		t.Errorf("Improvement.Dimension = %q; want efficiency", res.Improvement.Dimension)
	}
}

func TestConciseness_ThresholdGate(t *testing.T) {
	t.Parallel()

	// Two substitutions are possible, but the threshold demands three: the
	// prompt must come back byte-identical even though edits were available.
	c := Conciseness{MinChanges: 3}
	in := "please add a really big button"
	res := c.Apply(in, testCtx(intent.CodeGeneration, ModeFast))
	if res.Applied {
		t.Error("expected Applied=false below the change threshold")
	}
	if res.EnhancedPrompt != in {
		t.Errorf("EnhancedPrompt = %q; want the input unchanged", res.EnhancedPrompt)
	}
}

func TestConciseness_RedundantPhrases(t *testing.T) {
	t.Parallel()

	c := Conciseness{MinChanges: 1}
	tests := []struct {
		in   string
		want string
	}{
		{"retry due to the fact that the socket closed", "retry because the socket closed"},
		{"pause at this point in time", "pause now"},
		{"in the event that the cache misses, reload", "if the cache misses, reload"},
	}
	for _, tt := range tests {
		res := c.Apply(tt.in, testCtx(intent.CodeGeneration, ModeFast))
		if !res.Applied {
			t.Errorf("Apply(%q): expected applied", tt.in)
			continue
		}
		if res.EnhancedPrompt != tt.want {
			t.Errorf("Apply(%q) = %q; want %q", tt.in, res.EnhancedPrompt, tt.want)
		}
	}
}

func TestConciseness_CollapsesWhitespace(t *testing.T) {
	t.Parallel()

	c := Conciseness{MinChanges: 1}
	in := "please  just   fix the    bug"
	res := c.Apply(in, testCtx(intent.Debugging, ModeFast))
	if !res.Applied {
		t.Fatal("expected filter to apply")
	}
	if strings.Contains(res.EnhancedPrompt, "  ") {
		t.Errorf("double spaces remain: %q", res.EnhancedPrompt)
	}
}

func TestConciseness_CleanPromptUntouched(t *testing.T) {
	t.Parallel()

	c := Conciseness{MinChanges: 3}
	in := "## Task\nRename the exported helpers in parser.go"
	res := c.Apply(in, testCtx(intent.Refinement, ModeDeep))
	if res.Applied {
		t.Error("expected Applied=false for a prompt with no filler")
	}
	if res.EnhancedPrompt != in {
		t.Errorf("EnhancedPrompt = %q; want unchanged", res.EnhancedPrompt)
	}
}

func TestConciseness_ImpactScalesWithChanges(t *testing.T) {
	t.Parallel()

	c := Conciseness{MinChanges: 1}
	light := c.Apply("please fix the bug", testCtx(intent.Debugging, ModeFast))
	heavy := c.Apply("please kindly just really very basically simply fix the bug",
		testCtx(intent.Debugging, ModeFast))
	if light.Improvement.Impact != ImpactLow {
		t.Errorf("light impact = %q; want low", light.Improvement.Impact)
	}
	if heavy.Improvement.Impact != ImpactMedium {
		t.Errorf("heavy impact = %q; want medium", heavy.Improvement.Impact)
	}
}
