package tracks

import "github.com/crediverse/resume-analyzer/internal/types"

// recommendation pairs a track label with the skills and courses suggested to
// candidates heading that way.
type recommendation struct {
	skills  []string
	courses []types.Course
}

var recommendations = map[string]recommendation{
	"Data Science / ML": {
		skills: []string{
			"data visualization", "predictive analysis", "statistical modeling",
			"scikit-learn", "tensorflow", "pytorch",
		},
		courses: []types.Course{
			{Title: "Intro to Machine Learning", URL: "https://www.coursera.org/learn/machine-learning"},
			{Title: "Deep Learning Specialization", URL: "https://www.coursera.org/specializations/deep-learning"},
			{Title: "Hands-on ML with Scikit-Learn", URL: "https://learning.oreilly.com/library/view/hands-on-machine-learning/9781492032632/"},
		},
	},
	"Web Development": {
		skills: []string{
			"react", "node", "django", "rest apis", "typescript", "next.js",
		},
		courses: []types.Course{
			{Title: "The Odin Project: Full-Stack JS", URL: "https://www.theodinproject.com/"},
			{Title: "Meta Front-End Developer", URL: "https://www.coursera.org/professional-certificates/meta-front-end-developer"},
			{Title: "Django for Everybody", URL: "https://www.coursera.org/specializations/django"},
		},
	},
	"Mobile": {
		skills: []string{
			"android", "kotlin", "flutter", "swift", "sqlite", "git",
		},
		courses: []types.Course{
			{Title: "Android Basics with Compose", URL: "https://developer.android.com/courses/android-basics-compose/course"},
			{Title: "Kotlin for Android Developers", URL: "https://kotlinlang.org/docs/android-overview.html"},
			{Title: "Stanford iOS CS193p", URL: "https://cs193p.sites.stanford.edu/"},
		},
	},
	"UI/UX": {
		skills: []string{
			"figma", "adobe xd", "prototyping", "wireframing", "user research",
			"usability testing",
		},
		courses: []types.Course{
			{Title: "Google UX Design", URL: "https://www.coursera.org/professional-certificates/google-ux-design"},
			{Title: "Figma for UX/UI", URL: "https://www.figma.com/resources/learn-design/"},
		},
	},
}

// aliases map the map-driven track names onto the recommendation table, which
// is keyed by the legacy labels.
var recommendationAliases = map[string]string{
	"Data Science": "Data Science / ML",
	"AI/ML":        "Data Science / ML",
}

// Recommend returns the suggested skills and courses for a track. Unknown
// tracks (including DefaultTrack) get no recommendations.
func Recommend(track string) ([]string, []types.Course) {
	if alias, ok := recommendationAliases[track]; ok {
		track = alias
	}
	rec, ok := recommendations[track]
	if !ok {
		return nil, nil
	}
	return rec.skills, rec.courses
}
