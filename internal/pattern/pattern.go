// ABOUTME: Pattern capability contract and validated registry
// ABOUTME: Patterns are pure text transforms with immutable static metadata

package pattern

import (
	"fmt"

	"github.com/mauromedda/promptiq-go/internal/intent"
)

// Mode is the processing mode of one optimization run.
type Mode string

const (
	ModeFast Mode = "fast"
	ModeDeep Mode = "deep"
)

// ValidMode reports whether m is a known processing mode.
func ValidMode(m Mode) bool {
	return m == ModeFast || m == ModeDeep
}

// ModeFilter declares which modes a pattern participates in.
type ModeFilter string

const (
	FilterFast ModeFilter = "fast"
	FilterDeep ModeFilter = "deep"
	FilterBoth ModeFilter = "both"
)

// Matches reports whether the filter admits the given run mode.
func (f ModeFilter) Matches(m Mode) bool {
	return f == FilterBoth || Mode(f) == m
}

// Phase is a lifecycle phase of the orchestration run. Enrichment patterns
// add missing scaffolding; polish patterns tighten the text afterwards.
type Phase string

const (
	PhaseEnrich Phase = "enrich"
	PhasePolish Phase = "polish"
)

// Impact levels for improvement records.
const (
	ImpactLow    = "low"
	ImpactMedium = "medium"
	ImpactHigh   = "high"
)

// Meta is a pattern's immutable static metadata. Two instances of the same
// pattern always report identical Meta; nothing here changes per call.
type Meta struct {
	ID          string
	Name        string
	Description string

	Intents  []intent.Intent
	Mode     ModeFilter
	Priority int // 1-10, higher runs first
	Phases   []Phase

	// RunAfter is a soft ordering hint naming another pattern's ID. It only
	// breaks priority ties; it never overrides priority.
	RunAfter string
}

// InPhase reports whether the pattern participates in phase.
func (m Meta) InPhase(phase Phase) bool {
	for _, p := range m.Phases {
		if p == phase {
			return true
		}
	}
	return false
}

// AppliesTo reports whether the pattern's applicability admits the intent.
func (m Meta) AppliesTo(i intent.Intent) bool {
	for _, candidate := range m.Intents {
		if candidate == i {
			return true
		}
	}
	return false
}

// Context is the immutable snapshot shared by every pattern invocation in a
// single run. The evolving prompt text is passed separately to Apply.
type Context struct {
	Intent         intent.Analysis
	Mode           Mode
	OriginalPrompt string
}

// Improvement records one applied change: which quality dimension it serves,
// what it did, and how much it should matter.
type Improvement struct {
	Dimension   string `json:"dimension"`
	Description string `json:"description"`
	Impact      string `json:"impact"`
}

// Result is the outcome of one pattern application. When Applied is false,
// EnhancedPrompt must equal the input unchanged.
type Result struct {
	EnhancedPrompt string
	Improvement    Improvement
	Applied        bool
}

// Unapplied returns the canonical not-applied result for promptText.
func Unapplied(promptText string) Result {
	return Result{EnhancedPrompt: promptText, Applied: false}
}

// Pattern is a self-contained enrichment strategy. Apply must be a pure text
// transform: it reads only promptText and ctx, and performs no I/O,
// randomness, or clock access. If the trigger condition already holds in the
// input, Apply must return Unapplied(promptText) rather than duplicate its
// scaffolding.
type Pattern interface {
	Meta() Meta
	Apply(promptText string, ctx Context) Result
}

// Registry is an ordered, read-only collection of patterns. It is built once
// at process start and shared across invocations; declaration order is the
// final ordering tie-break in the orchestrator.
type Registry struct {
	patterns []Pattern
}

// NewRegistry validates and assembles a registry. Validation failures are
// programmer errors surfaced at startup, never per-request: duplicate or
// empty IDs, priorities outside 1-10, unknown intents, empty phase lists,
// and RunAfter hints naming unregistered patterns all fail here.
func NewRegistry(patterns ...Pattern) (*Registry, error) {
	ids := make(map[string]bool, len(patterns))
	for _, p := range patterns {
		m := p.Meta()
		if m.ID == "" {
			return nil, fmt.Errorf("pattern %q: empty id", m.Name)
		}
		if ids[m.ID] {
			return nil, fmt.Errorf("pattern %q: duplicate id", m.ID)
		}
		ids[m.ID] = true

		if m.Priority < 1 || m.Priority > 10 {
			return nil, fmt.Errorf("pattern %q: priority %d out of range 1-10", m.ID, m.Priority)
		}
		if m.Mode != FilterFast && m.Mode != FilterDeep && m.Mode != FilterBoth {
			return nil, fmt.Errorf("pattern %q: invalid mode filter %q", m.ID, m.Mode)
		}
		if len(m.Intents) == 0 {
			return nil, fmt.Errorf("pattern %q: no applicable intents", m.ID)
		}
		for _, i := range m.Intents {
			if !i.Valid() {
				return nil, fmt.Errorf("pattern %q: unknown intent %q", m.ID, i)
			}
		}
		if len(m.Phases) == 0 {
			return nil, fmt.Errorf("pattern %q: no lifecycle phases", m.ID)
		}
		for _, ph := range m.Phases {
			if ph != PhaseEnrich && ph != PhasePolish {
				return nil, fmt.Errorf("pattern %q: unknown phase %q", m.ID, ph)
			}
		}
	}

	// RunAfter is a soft hint: it may name a pattern that is not registered
	// (e.g. disabled by settings), but a self-reference is always a bug.
	for _, p := range patterns {
		m := p.Meta()
		if m.RunAfter != "" && m.RunAfter == m.ID {
			return nil, fmt.Errorf("pattern %q: run-after references itself", m.ID)
		}
	}

	return &Registry{patterns: patterns}, nil
}

// Patterns returns the registered patterns in declaration order. The caller
// must not mutate the returned slice's contents.
func (r *Registry) Patterns() []Pattern {
	out := make([]Pattern, len(r.patterns))
	copy(out, r.patterns)
	return out
}

// Len returns the number of registered patterns.
func (r *Registry) Len() int {
	return len(r.patterns)
}
