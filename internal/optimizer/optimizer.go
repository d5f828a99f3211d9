// ABOUTME: Composition root: classify, score, run pattern phases, escalate
// ABOUTME: Assembles the JSON-serializable aggregate result for callers

package optimizer

import (
	"strings"

	"github.com/mauromedda/promptiq-go/internal/escalation"
	"github.com/mauromedda/promptiq-go/internal/intent"
	"github.com/mauromedda/promptiq-go/internal/log"
	"github.com/mauromedda/promptiq-go/internal/pattern"
	"github.com/mauromedda/promptiq-go/internal/quality"
	"github.com/mauromedda/promptiq-go/pkg/textstat"
)

// Result is the aggregate outcome of one optimization run. Every field is a
// primitive, slice, or plain struct so the whole record serializes to flat
// JSON for machine-readable output.
type Result struct {
	Original        string                `json:"original"`
	Enhanced        string                `json:"enhanced"`
	Mode            pattern.Mode          `json:"mode"`
	Intent          intent.Analysis       `json:"intent"`
	Quality         quality.Metrics       `json:"quality"`
	FinalQuality    quality.Metrics       `json:"finalQuality"`
	Improvements    []pattern.Improvement `json:"improvements"`
	AppliedPatterns []pattern.Summary     `json:"appliedPatterns"`
	Skipped         []string              `json:"skipped,omitempty"`
	Escalation      escalation.Result     `json:"escalation"`
}

// Optimizer runs the prompt pipeline against a fixed pattern registry. The
// registry is built once and read-only afterwards, so a single Optimizer is
// safe for concurrent use.
type Optimizer struct {
	reg *pattern.Registry
}

// New builds an Optimizer over the default pattern catalog with the given
// settings. Settings or catalog violations surface here, at startup, never
// per-request.
func New(s pattern.Settings) (*Optimizer, error) {
	reg, err := pattern.DefaultRegistry(s)
	if err != nil {
		return nil, err
	}
	return &Optimizer{reg: reg}, nil
}

// NewWithRegistry builds an Optimizer over a caller-assembled registry.
func NewWithRegistry(reg *pattern.Registry) *Optimizer {
	return &Optimizer{reg: reg}
}

// Optimize runs the full pipeline: normalize, classify, score the baseline,
// fold the enrich then polish pattern phases over the text, score the final
// text, and derive the escalation recommendation from the baseline metrics.
//
// It never fails. An empty or whitespace-only prompt resolves to a
// degenerate result: default intent at floor confidence, zero quality with
// the fixed gap findings, and no pattern applications. An unknown mode is
// treated as fast.
func (o *Optimizer) Optimize(promptText string, mode pattern.Mode) Result {
	return o.run(promptText, mode, "")
}

// OptimizeAssuming runs the pipeline with the classifier overridden: the
// forced intent replaces the classified one at full confidence, while the
// characteristic flags still come from the text. An invalid forced intent
// is ignored.
func (o *Optimizer) OptimizeAssuming(promptText string, mode pattern.Mode, forced intent.Intent) Result {
	if !forced.Valid() {
		log.Debug("ignoring invalid forced intent %q", forced)
		forced = ""
	}
	return o.run(promptText, mode, forced)
}

func (o *Optimizer) run(promptText string, mode pattern.Mode, forced intent.Intent) Result {
	if !pattern.ValidMode(mode) {
		log.Debug("unknown mode %q, falling back to fast", mode)
		mode = pattern.ModeFast
	}

	normalized := textstat.Normalize(promptText)
	analysis := intent.Classify(normalized)
	if forced != "" {
		analysis.PrimaryIntent = forced
		analysis.Confidence = 100
		analysis.Signals = append(analysis.Signals,
			intent.Signal{Name: "forced", Weight: 1, Detail: string(forced)})
	}
	baseline := quality.Score(normalized)

	res := Result{
		Original:     promptText,
		Enhanced:     normalized,
		Mode:         mode,
		Intent:       analysis,
		Quality:      baseline,
		FinalQuality: baseline,
		Escalation:   escalation.Score(analysis, baseline),
	}

	if strings.TrimSpace(normalized) == "" {
		return res
	}

	ctx := pattern.Context{
		Intent:         analysis,
		Mode:           mode,
		OriginalPrompt: normalized,
	}

	text := normalized
	for _, phase := range []pattern.Phase{pattern.PhaseEnrich, pattern.PhasePolish} {
		out := pattern.Run(text, ctx, o.reg, phase)
		text = out.FinalPrompt
		res.Improvements = append(res.Improvements, out.Improvements...)
		res.AppliedPatterns = append(res.AppliedPatterns, out.Applied...)
		res.Skipped = append(res.Skipped, out.Skipped...)
	}

	res.Enhanced = text
	if text != normalized {
		res.FinalQuality = quality.Score(text)
	}
	return res
}
