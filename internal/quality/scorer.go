// ABOUTME: Multi-dimensional prompt quality scoring with a versioned weight table
// ABOUTME: Pure heuristics; explanations derive from the same checks as the numbers

package quality

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/mauromedda/promptiq-go/pkg/textstat"
)

// Dimension names, shared with pattern improvement records and the JSON
// output contract.
const (
	DimClarity       = "clarity"
	DimEfficiency    = "efficiency"
	DimStructure     = "structure"
	DimCompleteness  = "completeness"
	DimActionability = "actionability"
	DimSpecificity   = "specificity"
)

// Dimensions returns the dimension names in scoring order.
func Dimensions() []string {
	return []string{
		DimClarity, DimEfficiency, DimStructure,
		DimCompleteness, DimActionability, DimSpecificity,
	}
}

// Metrics holds per-dimension scores in [0,100], the derived overall score,
// and the explanations tied to the heuristics that produced the numbers.
type Metrics struct {
	Clarity       int `json:"clarity"`
	Efficiency    int `json:"efficiency"`
	Structure     int `json:"structure"`
	Completeness  int `json:"completeness"`
	Actionability int `json:"actionability"`
	Specificity   int `json:"specificity"`
	Overall       int `json:"overall"`

	Strengths       []string `json:"strengths"`
	Improvements    []string `json:"improvements"`
	RemainingIssues []string `json:"remainingIssues"`
}

// Dimension returns the score for a named dimension, or -1 for unknown names.
func (m Metrics) Dimension(name string) int {
	switch name {
	case DimClarity:
		return m.Clarity
	case DimEfficiency:
		return m.Efficiency
	case DimStructure:
		return m.Structure
	case DimCompleteness:
		return m.Completeness
	case DimActionability:
		return m.Actionability
	case DimSpecificity:
		return m.Specificity
	}
	return -1
}

// weightsV1 is the versioned weight table for the overall score. The weights
// sum to 100; Overall is the weighted mean of the six dimensions. Changing
// any weight is a new table version, not an edit.
var weightsV1 = []struct {
	dim    string
	weight int
}{
	{DimClarity, 20},
	{DimCompleteness, 20},
	{DimActionability, 20},
	{DimSpecificity, 15},
	{DimStructure, 15},
	{DimEfficiency, 10},
}

// Score computes quality metrics for promptText. It is a pure function:
// deterministic, no side effects, no I/O. Empty or whitespace-only input
// yields near-zero metrics with a fixed set of gap findings.
func Score(promptText string) Metrics {
	text := strings.TrimSpace(promptText)
	if text == "" {
		return Metrics{
			Improvements: []string{
				"Prompt is empty; state the task, the desired output, and any constraints",
			},
			RemainingIssues: []string{
				"no task description",
				"no expected output",
			},
		}
	}

	var m Metrics
	// Dimension evaluation order is fixed; strengths/improvements/issues are
	// appended in this order so explanations stay stable across runs.
	results := []dimensionResult{
		scoreClarity(text),
		scoreEfficiency(text),
		scoreStructure(text),
		scoreCompleteness(text),
		scoreActionability(text),
		scoreSpecificity(text),
	}

	for _, r := range results {
		score := clamp(r.score)
		switch r.dim {
		case DimClarity:
			m.Clarity = score
		case DimEfficiency:
			m.Efficiency = score
		case DimStructure:
			m.Structure = score
		case DimCompleteness:
			m.Completeness = score
		case DimActionability:
			m.Actionability = score
		case DimSpecificity:
			m.Specificity = score
		}
		m.Strengths = append(m.Strengths, r.strengths...)
		m.Improvements = append(m.Improvements, r.improvements...)
		m.RemainingIssues = append(m.RemainingIssues, r.issues...)
	}

	m.Overall = overall(m)
	return m
}

// overall computes the weighted mean over weightsV1.
func overall(m Metrics) int {
	sum, weights := 0, 0
	for _, w := range weightsV1 {
		sum += m.Dimension(w.dim) * w.weight
		weights += w.weight
	}
	return clamp(sum / weights)
}

func clamp(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// dimensionResult carries one dimension's score and the explanations derived
// from the same checks.
type dimensionResult struct {
	dim          string
	score        int
	strengths    []string
	improvements []string
	issues       []string
}

var (
	vagueQuantifierRe = regexp.MustCompile(`(?i)\b(some|a few|several|many|various|stuff|things|etc)\b`)
	danglingRefRe     = regexp.MustCompile(`(?m)^\s*(It|This|That|They)\b`)
	fillerRe          = regexp.MustCompile(`(?i)\b(please|kindly|just|really|very|basically|actually|simply|quite|perhaps)\b|(?i)\b(i would like( you)? to|can you|could you|would you mind)\b`)
	headingRe         = regexp.MustCompile(`(?m)^#{1,6}\s`)
	bulletRe          = regexp.MustCompile(`(?m)^\s*([-*]|\d+\.)\s`)
	labeledSectionRe  = regexp.MustCompile(`(?m)^[A-Za-z][A-Za-z /_-]*:\s?`)
	outputCueRe       = regexp.MustCompile(`(?i)\b(output|format|return|respond with|response format|produce|deliverable)\b`)
	constraintCueRe   = regexp.MustCompile(`(?i)\b(constraint|must not|should not|only use|limit|within|no more than|avoid)\b`)
	successCueRe      = regexp.MustCompile(`(?i)\b(success criteria|acceptance criteria|done when|measured by|kpi|metric)\b`)
	contextCueRe      = regexp.MustCompile(`(?i)\b(context|background|currently|existing|codebase|so far|given that)\b`)
	exampleCueRe      = regexp.MustCompile(`(?i)\b(for example|e\.g\.|example:|such as|like this)\b`)
	imperativeVerbRe  = regexp.MustCompile(`(?i)^\s*(implement|create|build|write|add|fix|refactor|generate|design|document|migrate|test|audit|update|remove|explain|convert)\b`)
	concreteVerbRe    = regexp.MustCompile(`(?i)\b(implement|create|build|write|add|fix|refactor|generate|migrate|validate|parse|render|deploy|configure)\b`)
	versionNumberRe   = regexp.MustCompile(`\b\d+(\.\d+)+\b|\bv\d+\b`)
	numberRe          = regexp.MustCompile(`\b\d+\b`)
	quotedRe          = regexp.MustCompile(`"[^"\n]+"|'[^'\n]+'|` + "`[^`\n]+`")
	fileOrIdentRe     = regexp.MustCompile(`\b\w+\.\w{1,4}\b|\b[a-z]+[A-Z]\w*\b|\b\w+_\w+\b`)
	techNameRe        = regexp.MustCompile(`(?i)\b(golang|python|typescript|javascript|rust|java|react|vue|postgres|mysql|sqlite|redis|docker|kubernetes|http|grpc|rest|graphql|json|yaml|api|sql|css|html)\b`)
)

// scoreClarity penalizes vague quantifiers and unresolved leading pronouns,
// and rewards prompts that open with a direct instruction.
func scoreClarity(text string) dimensionResult {
	r := dimensionResult{dim: DimClarity, score: 70}

	vague := vagueQuantifierRe.FindAllString(text, -1)
	if n := len(vague); n > 0 {
		if n > 4 {
			n = 4
		}
		r.score -= 8 * n
		r.improvements = append(r.improvements,
			fmt.Sprintf("Replace vague quantifiers (%s) with concrete amounts or names", strings.ToLower(strings.Join(dedupe(vague), ", "))))
		r.issues = append(r.issues, "vague quantifiers present")
	}

	if danglingRefRe.MatchString(text) {
		r.score -= 12
		r.improvements = append(r.improvements,
			"Name the subject explicitly instead of starting with a pronoun reference")
	}

	if imperativeVerbRe.MatchString(text) {
		r.score += 15
		r.strengths = append(r.strengths, "Opens with a direct instruction")
	}

	return r
}

// scoreEfficiency penalizes filler density and repeated phrasing.
func scoreEfficiency(text string) dimensionResult {
	r := dimensionResult{dim: DimEfficiency, score: 85}

	words := textstat.Words(text)
	if words == 0 {
		r.score = 0
		return r
	}

	fillers := len(fillerRe.FindAllString(text, -1))
	if fillers > 0 {
		density := float64(fillers) / float64(words)
		penalty := int(density * 200)
		if penalty > 35 {
			penalty = 35
		}
		r.score -= penalty
		if density > 0.05 {
			r.improvements = append(r.improvements, "Cut filler words and pleasantries; keep only task content")
			r.issues = append(r.issues, "high filler density")
		}
	}

	if repeats := repeatedWordCount(text); repeats > 2 {
		r.score -= 10
		r.improvements = append(r.improvements, "Remove repeated phrasing; each requirement should appear once")
	}

	if r.score >= 80 {
		r.strengths = append(r.strengths, "Concise phrasing with little filler")
	}
	return r
}

// scoreStructure rewards recognizable section markers and paragraph breaks.
func scoreStructure(text string) dimensionResult {
	r := dimensionResult{dim: DimStructure, score: 40}

	found := false
	if headingRe.MatchString(text) {
		r.score += 25
		found = true
	}
	if bulletRe.MatchString(text) {
		r.score += 15
		found = true
	}
	if labeledSectionRe.MatchString(text) {
		r.score += 15
		found = true
	}
	if strings.Contains(text, "\n\n") {
		r.score += 10
	}

	if found {
		r.strengths = append(r.strengths, "Uses recognizable section markers")
	} else if textstat.Words(text) >= 30 {
		r.improvements = append(r.improvements, "Split the prompt into sections (goal, requirements, output)")
		r.issues = append(r.issues, "no section markers")
	}
	return r
}

// scoreCompleteness rewards the presence of output, constraint, success,
// context, and example cues.
func scoreCompleteness(text string) dimensionResult {
	r := dimensionResult{dim: DimCompleteness, score: 25}

	cues := []struct {
		re      *regexp.Regexp
		points  int
		label   string
		missing string
	}{
		{outputCueRe, 18, "expected output", "no expected output described"},
		{constraintCueRe, 15, "constraints", "no constraints stated"},
		{successCueRe, 18, "success criteria", "no success criteria"},
		{contextCueRe, 12, "context", ""},
		{exampleCueRe, 12, "examples", ""},
	}

	var present []string
	for _, c := range cues {
		if c.re.MatchString(text) {
			r.score += c.points
			present = append(present, c.label)
		} else if c.missing != "" {
			r.issues = append(r.issues, c.missing)
		}
	}

	if len(present) >= 2 {
		r.strengths = append(r.strengths, "Covers "+strings.Join(present, ", "))
	}
	if r.score < 50 {
		r.improvements = append(r.improvements,
			"Add the missing elements: expected output, constraints, and success criteria")
	}
	return r
}

// scoreActionability rewards imperative concrete verbs and explicit output
// descriptions.
func scoreActionability(text string) dimensionResult {
	r := dimensionResult{dim: DimActionability, score: 35}

	if concreteVerbRe.MatchString(text) {
		r.score += 30
		r.strengths = append(r.strengths, "Contains concrete action verbs")
	} else {
		r.improvements = append(r.improvements, "State the task with a concrete action verb")
		r.issues = append(r.issues, "no actionable verb")
	}

	if outputCueRe.MatchString(text) {
		r.score += 20
	} else {
		r.improvements = append(r.improvements, "Describe what the result should look like")
	}

	if imperativeVerbRe.MatchString(text) {
		r.score += 10
	}
	return r
}

// scoreSpecificity rewards versions, numbers, quoted literals, identifiers,
// and named technologies.
func scoreSpecificity(text string) dimensionResult {
	r := dimensionResult{dim: DimSpecificity, score: 30}

	var hits []string
	if versionNumberRe.MatchString(text) {
		r.score += 15
		hits = append(hits, "versions")
	} else if numberRe.MatchString(text) {
		r.score += 8
		hits = append(hits, "numbers")
	}
	if quotedRe.MatchString(text) {
		r.score += 15
		hits = append(hits, "literals")
	}
	if fileOrIdentRe.MatchString(text) {
		r.score += 15
		hits = append(hits, "identifiers")
	}
	if techNameRe.MatchString(text) {
		r.score += 20
		hits = append(hits, "technologies")
	}

	if len(hits) >= 2 {
		r.strengths = append(r.strengths, "Names "+strings.Join(hits, ", "))
	}
	if r.score < 50 {
		r.improvements = append(r.improvements, "Name the language, framework, files, or versions involved")
		r.issues = append(r.issues, "no technical anchors")
	}
	return r
}

// repeatedWordCount counts words of four or more letters that appear more
// than twice, a crude redundancy signal.
func repeatedWordCount(text string) int {
	counts := make(map[string]int)
	for _, w := range strings.Fields(strings.ToLower(text)) {
		w = strings.Trim(w, ".,;:!?\"'()")
		if len(w) >= 4 {
			counts[w]++
		}
	}
	n := 0
	for _, c := range counts {
		if c > 2 {
			n++
		}
	}
	return n
}

// dedupe returns the unique values of in, preserving first-seen order.
func dedupe(in []string) []string {
	seen := make(map[string]bool, len(in))
	var out []string
	for _, s := range in {
		key := strings.ToLower(s)
		if !seen[key] {
			seen[key] = true
			out = append(out, s)
		}
	}
	return out
}
