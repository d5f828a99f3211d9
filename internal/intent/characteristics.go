// ABOUTME: Independent boolean characteristic detectors over prompt text
// ABOUTME: Code context, technical jargon, open-endedness, and structure need

package intent

import (
	"regexp"
	"strings"

	"github.com/mauromedda/promptiq-go/pkg/textstat"
)

var (
	codeFenceRe  = regexp.MustCompile("```")
	backtickRe   = regexp.MustCompile("`[^`\n]+`")
	fileExtRe    = regexp.MustCompile(`\b\w+\.(go|ts|tsx|js|jsx|py|rb|rs|java|c|cpp|h|css|html|sql|sh|yaml|yml|json|toml|md)\b`)
	identifierRe = regexp.MustCompile(`\b[a-z]+[A-Z]\w*\b|\b\w+_\w+\b`)
	codeWordRe   = regexp.MustCompile(`(?i)\b(func|function|class|struct|interface|method|variable|const|import|package|module)\b`)

	sectionHeaderRe = regexp.MustCompile(`(?m)^(#{1,6}\s|\*\s|-\s|\d+\.\s|[A-Za-z][A-Za-z /]+:\s)`)
)

// technicalTerms is the domain jargon list for HasTechnicalTerms. Matching is
// case-insensitive on word boundaries.
var technicalTerms = []string{
	"api", "rest", "grpc", "http", "https", "graphql", "endpoint", "webhook",
	"database", "sql", "nosql", "postgres", "mysql", "sqlite", "redis", "mongodb",
	"docker", "kubernetes", "terraform", "ci/cd", "pipeline", "deployment",
	"react", "vue", "angular", "node", "django", "rails", "spring",
	"golang", "python", "javascript", "typescript", "rust", "java", "kotlin", "swift",
	"frontend", "backend", "fullstack", "microservice", "monolith", "serverless",
	"cache", "queue", "broker", "websocket", "oauth", "jwt", "token", "session",
	"schema", "migration", "index", "query", "orm", "sdk", "cli", "repository",
	"latency", "throughput", "scalability", "concurrency",
}

var technicalTermRes []*regexp.Regexp

// hedgeWords signal open-ended, underspecified asks.
var hedgeWords = []string{
	"maybe", "perhaps", "somehow", "possibly", "probably",
	"or something", "something like", "kind of", "sort of",
	"not sure", "no idea", "any ideas", "thoughts on",
	"could", "might", "should",
}

var hedgeRes []*regexp.Regexp

func init() {
	technicalTermRes = make([]*regexp.Regexp, len(technicalTerms))
	for i, term := range technicalTerms {
		technicalTermRes[i] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(term) + `\b`)
	}
	hedgeRes = make([]*regexp.Regexp, len(hedgeWords))
	for i, w := range hedgeWords {
		hedgeRes[i] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(w) + `\b`)
	}
}

// DetectCharacteristics evaluates every boolean detector against the text.
// The detectors are independent; any combination of flags can be set.
func DetectCharacteristics(text string) Characteristics {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return Characteristics{}
	}
	return Characteristics{
		HasCodeContext:    hasCodeContext(trimmed),
		HasTechnicalTerms: hasTechnicalTerms(trimmed),
		IsOpenEnded:       isOpenEnded(trimmed),
		NeedsStructure:    needsStructure(trimmed),
	}
}

// hasCodeContext looks for code fences, inline code, file names, identifiers
// in camelCase or snake_case, and language keywords.
func hasCodeContext(text string) bool {
	return codeFenceRe.MatchString(text) ||
		backtickRe.MatchString(text) ||
		fileExtRe.MatchString(text) ||
		identifierRe.MatchString(text) ||
		codeWordRe.MatchString(text)
}

// hasTechnicalTerms checks the domain jargon list.
func hasTechnicalTerms(text string) bool {
	for _, re := range technicalTermRes {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}

// isOpenEnded fires on modal hedge words, or on short trailing questions
// that leave the concrete subject unstated.
func isOpenEnded(text string) bool {
	for _, re := range hedgeRes {
		if re.MatchString(text) {
			return true
		}
	}
	if strings.HasSuffix(strings.TrimSpace(text), "?") && textstat.Words(text) < 8 {
		return true
	}
	return false
}

// needsStructure fires when the prompt is a long unbroken run of prose:
// enough words or sentences that sections would help, with no line breaks,
// headings, bullets, or labeled sections present.
func needsStructure(text string) bool {
	if sectionHeaderRe.MatchString(text) {
		return false
	}
	if strings.Contains(text, "\n\n") {
		return false
	}
	words := textstat.Words(text)
	if words >= 40 {
		return true
	}
	return textstat.Sentences(text) >= 4 && words >= 25
}
