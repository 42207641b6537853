// Package ats approximates applicant-tracking-system keyword screening by
// computing keyword-set overlap between a resume and a job description.
package ats

import (
	"math"

	"github.com/crediverse/resume-analyzer/internal/similarity"
	"github.com/crediverse/resume-analyzer/internal/textproc"
	"github.com/crediverse/resume-analyzer/internal/types"
)

// Coverage tokenizes both texts and classifies every distinct job-description
// term as present or missing in the resume. A term counts as present when it
// appears verbatim in the resume token set, or when its best fuzzy match
// reaches minScore. The percentage is round(100 * present / terms), defined
// as 0 when the job description yields no terms. Present and missing lists
// come back sorted for deterministic output.
func Coverage(resumeText, jdText string, scorer similarity.Scorer, minScore float64) types.CoverageResult {
	resumeSet := textproc.TokenSet(resumeText)
	resumeTokens := textproc.SortedTokenSet(resumeText)
	jdTerms := textproc.SortedTokenSet(jdText)

	present := []string{}
	missing := []string{}
	for _, term := range jdTerms {
		if _, ok := resumeSet[term]; ok {
			present = append(present, term)
			continue
		}
		if _, score := similarity.BestMatch(term, resumeTokens, scorer); score >= minScore {
			present = append(present, term)
			continue
		}
		missing = append(missing, term)
	}

	pct := 0
	if len(jdTerms) > 0 {
		pct = int(math.Round(100 * float64(len(present)) / float64(len(jdTerms))))
	}
	return types.CoverageResult{Percent: pct, Present: present, Missing: missing}
}
