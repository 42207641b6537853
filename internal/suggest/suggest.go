// Package suggest turns section-presence gaps and missing-keyword gaps into
// human-readable improvement messages.
package suggest

import (
	"fmt"
	"strings"

	"github.com/crediverse/resume-analyzer/internal/types"
)

// maxListedKeywords bounds the missing-keyword message length.
const maxListedKeywords = 15

// Suggest evaluates a fixed, ordered rule set and returns the messages whose
// trigger condition holds. An empty result means these rules found no
// actionable gaps.
func Suggest(sections types.SectionMap, skillsFound, missingKeywords []string) []string {
	msgs := []string{}
	if !sections.Has(types.SectionSummary) {
		msgs = append(msgs, "Add a brief Summary/Objective with your target role and 2-3 achievements.")
	}
	if !sections.Has(types.SectionProjects) {
		msgs = append(msgs, "Include 2-3 key projects with tech stack, your role, and measurable outcomes.")
	}
	if !sections.Has(types.SectionAchievements) {
		msgs = append(msgs, "List achievements with numbers (e.g., improved X by Y%).")
	}
	if len(missingKeywords) > 0 {
		listed := missingKeywords
		suffix := ""
		if len(listed) > maxListedKeywords {
			listed = listed[:maxListedKeywords]
			suffix = ", ..."
		}
		msgs = append(msgs, fmt.Sprintf("Missing ATS keywords from the job description: %s%s",
			strings.Join(listed, ", "), suffix))
	}
	if len(skillsFound) == 0 {
		msgs = append(msgs, "Populate the Skills section with tools/libraries you actually used.")
	}
	return msgs
}
