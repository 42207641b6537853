// Package types defines the shared data structures exchanged between analysis stages.
package types

// Section keys used by the sectionizer. SectionFull holds the whole normalized
// document; SectionOther collects lines seen before any recognized header.
const (
	SectionSummary      = "summary"
	SectionExperience   = "experience"
	SectionEducation    = "education"
	SectionSkills       = "skills"
	SectionProjects     = "projects"
	SectionAchievements = "achievements"
	SectionOther        = "other"
	SectionFull         = "full"
)

// SectionMap maps a section key to the accumulated text of that section.
// A section that never appears in the document is absent from the map;
// callers treat absence as "not present".
type SectionMap map[string]string

// Has reports whether the section exists and is non-empty.
func (m SectionMap) Has(key string) bool {
	return m[key] != ""
}

// ScoreDetail records the outcome of a single rubric criterion.
type ScoreDetail struct {
	Criterion string `json:"criterion"`
	Present   bool   `json:"present"`
	Weight    int    `json:"weight"`
}

// ScoreResult holds the capped total score and the per-criterion breakdown
// in rubric order.
type ScoreResult struct {
	Total   int           `json:"total"`
	Details []ScoreDetail `json:"details"`
}

// CoverageResult reports keyword overlap between a resume and a job description.
type CoverageResult struct {
	Percent int      `json:"percent"`
	Present []string `json:"present"`
	Missing []string `json:"missing"`
}

// TrackScore is one entry of a track ranking: the track name, the number of
// detected skills overlapping its canonical list, and which ones matched.
type TrackScore struct {
	Track   string   `json:"track"`
	Score   int      `json:"score"`
	Matched []string `json:"matched"`
}

// Course is a recommended learning resource for a track.
type Course struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// Report is the complete output of one analysis run. Coverage is nil when no
// job description was supplied.
type Report struct {
	Score              ScoreResult     `json:"score"`
	Sections           SectionMap      `json:"sections"`
	Skills             []string        `json:"skills"`
	Tracks             []TrackScore    `json:"tracks"`
	PredictedTrack     string          `json:"predicted_track"`
	Coverage           *CoverageResult `json:"coverage,omitempty"`
	Suggestions        []string        `json:"suggestions"`
	RecommendedSkills  []string        `json:"recommended_skills,omitempty"`
	RecommendedCourses []Course        `json:"recommended_courses,omitempty"`
}
