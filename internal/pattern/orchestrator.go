// ABOUTME: Pattern orchestrator: filter, deterministic ordering, left fold
// ABOUTME: Isolates per-pattern failures so one bad enrichment never aborts a run

package pattern

import (
	"fmt"
	"sort"

	"github.com/mauromedda/promptiq-go/internal/log"
)

// Summary describes one applied pattern for the aggregate result.
type Summary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Impact      string `json:"impact"`
}

// RunOutcome is the result of folding one phase's patterns over the prompt.
type RunOutcome struct {
	FinalPrompt  string
	Improvements []Improvement
	Applied      []Summary
	Skipped      []string
}

// Run applies every eligible pattern in reg to promptText for one phase.
//
// Eligibility: the pattern's mode filter admits ctx.Mode, its applicable
// intents contain ctx.Intent.PrimaryIntent, and it participates in phase.
// Ordering: priority descending; ties broken first by run-after hints, then
// by registry declaration order. The fold threads the evolving text through
// each Apply, so later patterns see earlier patterns' output.
//
// A pattern that panics is skipped with a synthetic note and the run
// continues; a buggy enrichment never blocks the pipeline.
func Run(promptText string, ctx Context, reg *Registry, phase Phase) RunOutcome {
	eligible := filter(reg, ctx, phase)
	order(eligible)

	outcome := RunOutcome{FinalPrompt: promptText}
	for _, p := range eligible {
		m := p.Meta()
		res, err := applySafe(p, outcome.FinalPrompt, ctx)
		if err != nil {
			log.Warn("pattern %s: %v", m.ID, err)
			outcome.Skipped = append(outcome.Skipped,
				fmt.Sprintf("%s: skipped due to error: %v", m.ID, err))
			continue
		}
		if !res.Applied {
			continue
		}
		outcome.FinalPrompt = res.EnhancedPrompt
		outcome.Improvements = append(outcome.Improvements, res.Improvement)
		outcome.Applied = append(outcome.Applied, Summary{
			ID:          m.ID,
			Name:        m.Name,
			Description: m.Description,
			Impact:      res.Improvement.Impact,
		})
	}
	return outcome
}

// filter selects patterns eligible for this run.
func filter(reg *Registry, ctx Context, phase Phase) []Pattern {
	var out []Pattern
	for _, p := range reg.Patterns() {
		m := p.Meta()
		if !m.Mode.Matches(ctx.Mode) {
			continue
		}
		if !m.AppliesTo(ctx.Intent.PrimaryIntent) {
			continue
		}
		if !m.InPhase(phase) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// order sorts patterns by priority descending. Priority ties resolve by
// run-after hints (the hinted pattern goes first), then the stable sort
// preserves registry declaration order. Hints never override priority.
func order(patterns []Pattern) {
	sort.SliceStable(patterns, func(i, j int) bool {
		mi, mj := patterns[i].Meta(), patterns[j].Meta()
		if mi.Priority != mj.Priority {
			return mi.Priority > mj.Priority
		}
		if mj.RunAfter == mi.ID {
			return true
		}
		if mi.RunAfter == mj.ID {
			return false
		}
		return false
	})
}

// applySafe invokes Apply with panic isolation. The input text is never
// mutated on failure, and a not-applied result always carries the input
// unchanged regardless of what the pattern returned.
func applySafe(p Pattern, promptText string, ctx Context) (res Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			res = Unapplied(promptText)
			err = fmt.Errorf("apply panicked: %v", r)
		}
	}()
	res = p.Apply(promptText, ctx)
	if !res.Applied {
		res.EnhancedPrompt = promptText
	}
	return res, nil
}
