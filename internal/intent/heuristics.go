// ABOUTME: Weighted keyword voting over an ordered battery of per-intent detectors
// ABOUTME: Declaration order breaks vote ties; confidence from margin and magnitude

package intent

import (
	"regexp"
	"strings"
)

// keyword holds a compiled pattern and its vote weight.
type keyword struct {
	pattern *regexp.Regexp
	word    string
	weight  float64
}

// rawKeyword is an uncompiled keyword entry.
type rawKeyword struct {
	word   string
	weight float64
}

// detector pairs an intent with its weighted keywords. Detectors are
// evaluated in slice order, which doubles as the tie-break order.
type detector struct {
	intent   Intent
	keywords []keyword
}

var detectors []detector

func init() {
	detectors = []detector{
		{CodeGeneration, compileKeywords(codeGenerationKeywords)},
		{Planning, compileKeywords(planningKeywords)},
		{Refinement, compileKeywords(refinementKeywords)},
		{Debugging, compileKeywords(debuggingKeywords)},
		{Documentation, compileKeywords(documentationKeywords)},
		{PRDGeneration, compileKeywords(prdKeywords)},
		{Testing, compileKeywords(testingKeywords)},
		{Migration, compileKeywords(migrationKeywords)},
		{SecurityReview, compileKeywords(securityKeywords)},
		{Learning, compileKeywords(learningKeywords)},
	}
}

var codeGenerationKeywords = []rawKeyword{
	{"implement", 1.0},
	{"build", 0.9},
	{"create", 0.9},
	{"scaffold", 0.9},
	{"write", 0.8},
	{"generate", 0.8},
	{"develop", 0.8},
	{"code", 0.7},
	{"add", 0.7},
	{"set up", 0.7},
	{"make", 0.6},
}

var planningKeywords = []rawKeyword{
	{"plan", 1.0},
	{"architect", 1.0},
	{"roadmap", 1.0},
	{"design", 0.9},
	{"strategy", 0.9},
	{"milestone", 0.9},
	{"break down", 0.9},
	{"approach", 0.8},
	{"propose", 0.8},
	{"how should", 0.8},
	{"should we", 0.8},
	{"organize", 0.7},
	{"phase", 0.6},
}

var refinementKeywords = []rawKeyword{
	{"refactor", 1.0},
	{"improve", 0.9},
	{"optimize", 0.9},
	{"simplify", 0.9},
	{"clean up", 0.9},
	{"restructure", 0.9},
	{"streamline", 0.9},
	{"rewrite", 0.8},
	{"polish", 0.8},
	{"enhance", 0.8},
}

var debuggingKeywords = []rawKeyword{
	{"fix", 1.0},
	{"bug", 1.0},
	{"debug", 1.0},
	{"crash", 1.0},
	{"not working", 1.0},
	{"stack trace", 1.0},
	{"error", 0.9},
	{"broken", 0.9},
	{"failing", 0.9},
	{"diagnose", 0.9},
	{"exception", 0.9},
	{"wrong", 0.7},
	{"issue", 0.7},
}

var documentationKeywords = []rawKeyword{
	{"document", 1.0},
	{"documentation", 1.0},
	{"readme", 1.0},
	{"api reference", 1.0},
	{"docs", 0.9},
	{"changelog", 0.9},
	{"tutorial", 0.9},
	{"guide", 0.8},
	{"explain", 0.8},
	{"describe", 0.7},
	{"comment", 0.7},
}

var prdKeywords = []rawKeyword{
	{"prd", 1.0},
	{"product requirements", 1.0},
	{"user stories", 1.0},
	{"user story", 1.0},
	{"acceptance criteria", 1.0},
	{"specification", 0.9},
	{"stakeholder", 0.9},
	{"kpi", 0.9},
	{"requirements", 0.8},
	{"spec", 0.8},
	{"mvp", 0.8},
	{"feature", 0.6},
}

var testingKeywords = []rawKeyword{
	{"test", 1.0},
	{"unit test", 1.0},
	{"integration test", 1.0},
	{"test case", 1.0},
	{"coverage", 0.9},
	{"e2e", 0.9},
	{"tdd", 0.9},
	{"assert", 0.8},
	{"mock", 0.8},
	{"regression", 0.8},
}

var migrationKeywords = []rawKeyword{
	{"migrate", 1.0},
	{"migration", 1.0},
	{"upgrade", 0.9},
	{"move from", 0.9},
	{"convert", 0.8},
	{"transition", 0.8},
	{"legacy", 0.8},
	{"deprecate", 0.8},
	{"port", 0.7},
}

var securityKeywords = []rawKeyword{
	{"security", 1.0},
	{"vulnerability", 1.0},
	{"cve", 1.0},
	{"xss", 1.0},
	{"csrf", 1.0},
	{"audit", 0.9},
	{"exploit", 0.9},
	{"injection", 0.9},
	{"pen test", 0.9},
	{"harden", 0.9},
	{"sanitize", 0.8},
	{"authentication", 0.7},
	{"authorization", 0.7},
}

var learningKeywords = []rawKeyword{
	{"learn", 1.0},
	{"teach", 1.0},
	{"explain like", 1.0},
	{"understand", 0.9},
	{"what is", 0.9},
	{"how does", 0.9},
	{"difference between", 0.9},
	{"curious", 0.8},
	{"why", 0.7},
}

// compileKeywords turns raw keywords into compiled regex patterns with word
// boundaries. Multi-word phrases use exact boundaries; single words allow
// common suffixes (e.g., crash -> crashes, crashing).
func compileKeywords(raws []rawKeyword) []keyword {
	out := make([]keyword, len(raws))
	for i, rk := range raws {
		var pattern string
		if strings.Contains(rk.word, " ") {
			pattern = `(?i)\b` + regexp.QuoteMeta(rk.word) + `\b`
		} else {
			pattern = `(?i)\b` + regexp.QuoteMeta(rk.word) + `(?:es|s|ed|ing)?\b`
		}
		out[i] = keyword{
			pattern: regexp.MustCompile(pattern),
			word:    rk.word,
			weight:  rk.weight,
		}
	}
	return out
}

// voteResult is the tally for one intent.
type voteResult struct {
	intent  Intent
	score   float64
	signals []Signal
}

// tally runs every detector against the text and returns per-intent totals
// in detector declaration order, plus the grand total of all votes cast.
func tally(text string) ([]voteResult, float64) {
	results := make([]voteResult, 0, len(detectors))
	var total float64

	for _, d := range detectors {
		var score float64
		var signals []Signal
		for _, kw := range d.keywords {
			if kw.pattern.MatchString(text) {
				score += kw.weight
				signals = append(signals, Signal{
					Name:   "keyword_match",
					Weight: kw.weight,
					Detail: kw.word,
				})
			}
		}
		if score > 0 {
			results = append(results, voteResult{intent: d.intent, score: score, signals: signals})
			total += score
		}
	}
	return results, total
}

// Confidence bounds. Any cast vote yields at least minConfidence; the
// degenerate no-match default sits below the floor on purpose so callers can
// tell the two cases apart.
const (
	minConfidence     = 20
	defaultConfidence = 10
)

// confidenceFor maps the winning score and the total votes cast to [0,100].
// It multiplies the vote margin (win/total) with a diminishing-returns curve
// over the winning magnitude, so a lone weak keyword scores lower than a
// cluster of strong ones even when both win outright.
func confidenceFor(win, total float64) int {
	if total <= 0 || win <= 0 {
		return defaultConfidence
	}
	const k = 0.35
	margin := win / total
	magnitude := win / (win + k)
	c := int(margin*magnitude*100 + 0.5)
	if c < minConfidence {
		c = minConfidence
	}
	if c > 100 {
		c = 100
	}
	return c
}
