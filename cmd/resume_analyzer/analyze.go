package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/crediverse/resume-analyzer/internal/config"
	"github.com/crediverse/resume-analyzer/internal/ingestion"
	"github.com/crediverse/resume-analyzer/internal/pipeline"
	"github.com/crediverse/resume-analyzer/internal/similarity"
	"github.com/crediverse/resume-analyzer/internal/skills"
	"github.com/crediverse/resume-analyzer/internal/tracks"
	"github.com/crediverse/resume-analyzer/internal/types"
)

var (
	analyzeJDPath     string
	analyzeJSON       bool
	analyzeConfigPath string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <resume.pdf|resume.docx>",
	Short: "Analyze a resume document",
	Long:  `Extract text from a resume document, score it, detect skills, rank career tracks, and optionally check ATS keyword coverage against a job description file.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeJDPath, "jd", "", "Path to a job description text file for ATS coverage")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Print the full report as JSON")
	analyzeCmd.Flags().StringVar(&analyzeConfigPath, "config", "", "Path to JSON config file")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(analyzeConfigPath)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	doc, err := ingestion.ExtractFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to extract resume: %w", err)
	}

	var jd string
	if analyzeJDPath != "" {
		jd, err = ingestion.ReadText(analyzeJDPath)
		if err != nil {
			return fmt.Errorf("failed to read job description: %w", err)
		}
	}

	report := pipeline.Analyze(context.Background(), pipeline.Request{
		ResumeText:     doc.Text,
		JobDescription: jd,
		TopTracks:      cfg.TopTracks,
	}, buildOptions(cfg))

	if analyzeJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	printReport(cmd, doc, &report)
	return nil
}

// buildOptions assembles the static pipeline configuration from app config.
func buildOptions(cfg config.Config) pipeline.Options {
	return pipeline.Options{
		Vocabulary: skills.DefaultVocabulary(),
		TrackMap:   tracks.LoadMap(cfg.TrackMapPath),
		Scorer:     similarity.NewLevenshtein(),
		MinScore:   cfg.MinFuzzyScore,
	}
}

func printReport(cmd *cobra.Command, doc *ingestion.Document, report *types.Report) {
	cmd.Printf("Pages: %d (%s)\n", doc.Pages, ingestion.CandidateLevel(doc.Pages))
	cmd.Printf("Score: %d/100\n", report.Score.Total)
	for _, d := range report.Score.Details {
		mark := "-"
		if d.Present {
			mark = "+"
		}
		cmd.Printf("  [%s] %-12s %d\n", mark, d.Criterion, d.Weight)
	}

	cmd.Printf("Skills: %s\n", strings.Join(report.Skills, ", "))
	cmd.Printf("Predicted track: %s\n", report.PredictedTrack)
	for _, t := range report.Tracks {
		cmd.Printf("  %-16s %d (%s)\n", t.Track, t.Score, strings.Join(t.Matched, ", "))
	}

	if report.Coverage != nil {
		cmd.Printf("ATS coverage: %d%%\n", report.Coverage.Percent)
		cmd.Printf("  present: %s\n", strings.Join(report.Coverage.Present, ", "))
		cmd.Printf("  missing: %s\n", strings.Join(report.Coverage.Missing, ", "))
	}

	if len(report.Suggestions) > 0 {
		cmd.Println("Suggestions:")
		for _, msg := range report.Suggestions {
			cmd.Printf("  - %s\n", msg)
		}
	}
	if len(report.RecommendedSkills) > 0 {
		cmd.Printf("Recommended skills: %s\n", strings.Join(report.RecommendedSkills, ", "))
	}
	for _, c := range report.RecommendedCourses {
		cmd.Printf("Course: %s <%s>\n", c.Title, c.URL)
	}
}
