// Package pipeline provides the high-level orchestration for one resume
// analysis: tokenization, sectionization, scoring, skill extraction, track
// classification, optional ATS coverage, and suggestions.
package pipeline

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/crediverse/resume-analyzer/internal/ats"
	"github.com/crediverse/resume-analyzer/internal/scoring"
	"github.com/crediverse/resume-analyzer/internal/similarity"
	"github.com/crediverse/resume-analyzer/internal/skills"
	"github.com/crediverse/resume-analyzer/internal/suggest"
	"github.com/crediverse/resume-analyzer/internal/textproc"
	"github.com/crediverse/resume-analyzer/internal/tracks"
	"github.com/crediverse/resume-analyzer/internal/types"
)

// defaultTopTracks bounds the track ranking in a report.
const defaultTopTracks = 3

// Request holds the inputs of one analysis. JobDescription is optional; when
// empty the report carries no coverage result.
type Request struct {
	ResumeText     string
	JobDescription string
	TopTracks      int
}

// Options carries the static, read-only configuration shared by all
// concurrent analyses. Build it once at startup.
type Options struct {
	Vocabulary skills.Vocabulary
	TrackMap   []tracks.Definition
	Scorer     similarity.Scorer
	MinScore   float64
}

// DefaultOptions returns Options backed by the built-in skill bank, the
// built-in track map, and the Levenshtein-ratio scorer.
func DefaultOptions() Options {
	return Options{
		Vocabulary: skills.DefaultVocabulary(),
		TrackMap:   tracks.DefaultMap(),
		Scorer:     similarity.NewLevenshtein(),
		MinScore:   skills.DefaultMinScore,
	}
}

// Analyze runs the full pipeline over the request. Every stage is a pure
// function over immutable inputs, so the section branch and the skills/ATS
// branch run concurrently. Analyze never fails: empty or adversarial text
// degrades to empty and zero-valued results.
func Analyze(ctx context.Context, req Request, opts Options) types.Report {
	topK := req.TopTracks
	if topK <= 0 {
		topK = defaultTopTracks
	}

	var (
		sections types.SectionMap
		score    types.ScoreResult

		found    []string
		ranking  []types.TrackScore
		best     string
		coverage *types.CoverageResult
	)

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		sections = textproc.Sectionize(req.ResumeText)
		score = scoring.Score(sections)
		return nil
	})
	g.Go(func() error {
		tokens := textproc.Tokenize(req.ResumeText)
		found = skills.Extract(tokens, opts.Vocabulary, opts.Scorer, opts.MinScore)
		ranking = tracks.TopTracks(found, opts.TrackMap, topK)
		best = tracks.BestTrack(found, opts.TrackMap)
		if req.JobDescription != "" {
			c := ats.Coverage(req.ResumeText, req.JobDescription, opts.Scorer, opts.MinScore)
			coverage = &c
		}
		return nil
	})
	// Neither branch returns an error; Wait only synchronizes them.
	_ = g.Wait()

	var missing []string
	if coverage != nil {
		missing = coverage.Missing
	}
	recSkills, recCourses := tracks.Recommend(best)

	return types.Report{
		Score:              score,
		Sections:           sections,
		Skills:             found,
		Tracks:             ranking,
		PredictedTrack:     best,
		Coverage:           coverage,
		Suggestions:        suggest.Suggest(sections, found, missing),
		RecommendedSkills:  recSkills,
		RecommendedCourses: recCourses,
	}
}
