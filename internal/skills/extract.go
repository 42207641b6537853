package skills

import (
	"sort"

	"github.com/crediverse/resume-analyzer/internal/similarity"
)

// DefaultMinScore is the similarity ratio a fuzzy candidate must reach before
// it counts as a match. Resumes contain typos and formatting variants, but a
// lower bar produces false positives across unrelated short words, so the
// threshold trades recall for precision.
const DefaultMinScore = 90

// Extract returns the sorted set of canonical skills found in the token
// sequence. Each vocabulary entry matches either verbatim against the token
// set or via the best fuzzy candidate at or above minScore.
//
// Multi-word vocabulary entries ("computer vision", "adobe xd") can never
// match a single token verbatim; with token-only input they are only caught
// when fuzzy matching happens to clear the bar. Callers that need reliable
// multi-word detection must match against untokenized text instead.
func Extract(tokens []string, vocab Vocabulary, scorer similarity.Scorer, minScore float64) []string {
	set := make(map[string]struct{}, len(tokens))
	for _, tok := range tokens {
		set[tok] = struct{}{}
	}
	candidates := make([]string, 0, len(set))
	for tok := range set {
		candidates = append(candidates, tok)
	}
	sort.Strings(candidates)

	found := make([]string, 0, len(vocab))
	for _, skill := range vocab {
		if _, ok := set[skill]; ok {
			found = append(found, skill)
			continue
		}
		if _, score := similarity.BestMatch(skill, candidates, scorer); score >= minScore {
			found = append(found, skill)
		}
	}
	// vocab is sorted, so found already is too.
	return found
}
