// ABOUTME: Fuzzy name resolution over sahilm/fuzzy for CLI flag values
// ABOUTME: Resolves near-miss dimension and intent names to canonical entries

package fuzzy

import "github.com/sahilm/fuzzy"

// Match represents a single fuzzy match result.
type Match struct {
	Str            string
	Index          int
	MatchedIndexes []int
	Score          int
}

// Find performs fuzzy matching of pattern against the given items.
// Returns matches sorted by score (best first).
func Find(pattern string, items []string) []Match {
	results := fuzzy.Find(pattern, items)
	matches := make([]Match, len(results))
	for i, r := range results {
		matches[i] = Match{
			Str:            r.Str,
			Index:          r.Index,
			MatchedIndexes: r.MatchedIndexes,
			Score:          r.Score,
		}
	}
	return matches
}

// Best returns the single best match for pattern among items, or ok=false
// when nothing matches. Exact matches win without consulting the matcher.
func Best(pattern string, items []string) (string, bool) {
	for _, item := range items {
		if item == pattern {
			return item, true
		}
	}
	matches := Find(pattern, items)
	if len(matches) == 0 {
		return "", false
	}
	return matches[0].Str, true
}
