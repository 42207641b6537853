// Package similarity abstracts fuzzy string matching behind a small interface
// so the matching strategy can be swapped without touching callers.
package similarity

import (
	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
)

// Scorer computes a normalized similarity ratio between two strings on a
// 0-100 scale, where 100 means identical.
type Scorer interface {
	Ratio(a, b string) float64
}

// Levenshtein scores strings by normalized edit distance, case-insensitively.
type Levenshtein struct {
	metric *metrics.Levenshtein
}

// NewLevenshtein returns the default Levenshtein-ratio scorer.
func NewLevenshtein() *Levenshtein {
	m := metrics.NewLevenshtein()
	m.CaseSensitive = false
	return &Levenshtein{metric: m}
}

// Ratio implements Scorer.
func (l *Levenshtein) Ratio(a, b string) float64 {
	return strutil.Similarity(a, b, l.metric) * 100
}

// BestMatch scans candidates and returns the one most similar to target along
// with its ratio. Candidates are scanned in slice order and the first of any
// tied candidates wins, so callers should pass a deterministically ordered
// slice. Returns ("", 0) when candidates is empty.
func BestMatch(target string, candidates []string, scorer Scorer) (string, float64) {
	best := ""
	bestScore := 0.0
	for _, c := range candidates {
		if s := scorer.Ratio(target, c); s > bestScore {
			best, bestScore = c, s
		}
	}
	return best, bestScore
}
