// ABOUTME: Intent classifier: weighted keyword votes plus characteristic flags
// ABOUTME: Never fails; degenerate input yields the low-confidence default intent

package intent

// DefaultIntent is returned for empty input or when no detector votes.
const DefaultIntent = CodeGeneration

// Classify evaluates the ordered detector battery against promptText and
// returns the winning intent, a confidence in [0,100], and the independent
// characteristic flags. It never fails: empty or degenerate input returns
// the default intent with minimal confidence and all flags false.
//
// Ties between intents with equal vote totals are broken by detector
// declaration order (see All), never by map iteration order.
func Classify(promptText string) Analysis {
	votes, total := tally(promptText)

	if total == 0 {
		return Analysis{
			PrimaryIntent:   DefaultIntent,
			Confidence:      defaultConfidence,
			Characteristics: DetectCharacteristics(promptText),
		}
	}

	// votes is already in declaration order; a strictly-greater comparison
	// keeps the first-declared intent on ties.
	best := votes[0]
	for _, v := range votes[1:] {
		if v.score > best.score {
			best = v
		}
	}

	a := Analysis{
		PrimaryIntent:   best.intent,
		Confidence:      confidenceFor(best.score, total),
		Characteristics: DetectCharacteristics(promptText),
		Signals:         best.signals,
	}
	a.SuggestedMode = suggestedModeFor(a.PrimaryIntent)
	return a
}

// suggestedModeFor recommends a processing mode for intents that almost
// always warrant deeper elaboration. The escalation scorer has the final
// word; this is only a hint.
func suggestedModeFor(i Intent) string {
	switch i {
	case Planning, PRDGeneration, SecurityReview:
		return "deep"
	}
	return ""
}
