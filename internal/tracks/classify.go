package tracks

import (
	"sort"
	"strings"

	"github.com/crediverse/resume-analyzer/internal/types"
)

// DefaultTrack is returned when no strategy finds any evidence.
const DefaultTrack = "General Software"

// legacyGroups is the fixed priority list used by the single-best fallback:
// the first group with any detected skill wins.
var legacyGroups = []struct {
	track  string
	skills []string
}{
	{"Data Science / ML", []string{"tensorflow", "pytorch", "scikit-learn", "ml"}},
	{"Web Development", []string{"react", "django", "flask", "node"}},
	{"Mobile", []string{"android", "kotlin", "flutter", "swift"}},
	{"UI/UX", []string{"figma", "wireframing", "prototyping"}},
}

// RankTracks scores every track by the count of detected skills intersecting
// its canonical list (case-insensitive) and returns all tracks sorted by
// score descending. The sort is stable, so tied tracks keep definition order.
func RankTracks(detected []string, defs []Definition) []types.TrackScore {
	low := make(map[string]struct{}, len(detected))
	for _, s := range detected {
		low[strings.ToLower(s)] = struct{}{}
	}

	scored := make([]types.TrackScore, 0, len(defs))
	for _, def := range defs {
		var matched []string
		for _, canon := range def.Skills {
			if _, ok := low[strings.ToLower(canon)]; ok {
				matched = append(matched, strings.ToLower(canon))
			}
		}
		sort.Strings(matched)
		scored = append(scored, types.TrackScore{
			Track:   def.Name,
			Score:   len(matched),
			Matched: matched,
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	return scored
}

// TopTracks returns at most k entries of the ranking.
func TopTracks(detected []string, defs []Definition, k int) []types.TrackScore {
	ranked := RankTracks(detected, defs)
	if k >= 0 && k < len(ranked) {
		ranked = ranked[:k]
	}
	return ranked
}

// InferTrack is the legacy single-best classifier: it walks the fixed
// priority groups and returns the first with any match, else DefaultTrack.
// It can disagree with RankTracks; both strategies are kept deliberately.
func InferTrack(detected []string) string {
	low := make(map[string]struct{}, len(detected))
	for _, s := range detected {
		low[strings.ToLower(s)] = struct{}{}
	}
	for _, g := range legacyGroups {
		for _, s := range g.skills {
			if _, ok := low[s]; ok {
				return g.track
			}
		}
	}
	return DefaultTrack
}

// BestTrack applies the fallback policy: use the map-driven ranking, and only
// when its top score is zero fall back to the legacy inference.
func BestTrack(detected []string, defs []Definition) string {
	ranked := RankTracks(detected, defs)
	if len(ranked) > 0 && ranked[0].Score > 0 {
		return ranked[0].Track
	}
	return InferTrack(detected)
}
