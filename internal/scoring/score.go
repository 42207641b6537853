// Package scoring applies the fixed resume rubric over detected sections.
package scoring

import "github.com/crediverse/resume-analyzer/internal/types"

// maxScore caps the total defensively; the rubric weights already sum to 100.
const maxScore = 100

// rubric is evaluated in order; the order is preserved in the result details
// for display purposes.
var rubric = []struct {
	criterion string
	weight    int
}{
	{types.SectionSummary, 15},
	{types.SectionExperience, 25},
	{types.SectionEducation, 15},
	{types.SectionSkills, 20},
	{types.SectionProjects, 15},
	{types.SectionAchievements, 10},
}

// Score evaluates each rubric criterion against the section map. A criterion
// is present when its section key maps to non-empty text. The total is the
// sum of present weights, capped at maxScore.
func Score(sections types.SectionMap) types.ScoreResult {
	details := make([]types.ScoreDetail, 0, len(rubric))
	total := 0
	for _, r := range rubric {
		present := sections.Has(r.criterion)
		if present {
			total += r.weight
		}
		details = append(details, types.ScoreDetail{
			Criterion: r.criterion,
			Present:   present,
			Weight:    r.weight,
		})
	}
	if total > maxScore {
		total = maxScore
	}
	return types.ScoreResult{Total: total, Details: details}
}
