package textproc

import (
	"regexp"
	"strings"

	"github.com/crediverse/resume-analyzer/internal/types"
)

// sectionPatterns detect section headers, tested in priority order against
// each lowercased line. The skills/projects/achievements patterns use a
// leading word boundary so fragments like "workskills" do not match.
var sectionPatterns = []struct {
	key string
	re  *regexp.Regexp
}{
	{types.SectionSummary, regexp.MustCompile(`(summary|objective)\b`)},
	{types.SectionExperience, regexp.MustCompile(`(experience|work history)\b`)},
	{types.SectionEducation, regexp.MustCompile(`(education|academics)\b`)},
	{types.SectionSkills, regexp.MustCompile(`\bskills?\b`)},
	{types.SectionProjects, regexp.MustCompile(`\bprojects?\b`)},
	{types.SectionAchievements, regexp.MustCompile(`\bachievements?\b`)},
}

// Sectionize splits resume text into labeled sections by scanning for header
// lines. Every line lands in exactly one bucket: the most recently seen
// header's section, or "other" before any header appears. A header line
// starts a new buffer containing the header itself, and a section that recurs
// accumulates rather than overwrites. The full normalized text is stored
// under types.SectionFull. Empty buckets are never created, so callers can
// treat a missing key as "section not present".
func Sectionize(text string) types.SectionMap {
	text = Normalize(text)
	out := types.SectionMap{types.SectionFull: text}

	current := types.SectionOther
	var buf []string

	flush := func() {
		if len(buf) == 0 {
			return
		}
		merged := strings.TrimSpace(out[current] + "\n" + strings.Join(buf, "\n"))
		buf = nil
		if merged == "" {
			return
		}
		out[current] = merged
	}

	for _, line := range strings.Split(text, "\n") {
		low := strings.ToLower(strings.TrimSpace(line))
		if key, ok := matchHeader(low); ok {
			flush()
			current = key
			buf = []string{line}
			continue
		}
		buf = append(buf, line)
	}
	flush()

	return out
}

// matchHeader returns the section key of the first pattern matching the line.
func matchHeader(line string) (string, bool) {
	for _, p := range sectionPatterns {
		if p.re.MatchString(line) {
			return p.key, true
		}
	}
	return "", false
}
