package db

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// connectTestDB skips the test unless TEST_DATABASE_URL points at a database
// with the analyses table created.
func connectTestDB(t *testing.T) *DB {
	t.Helper()
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set; skipping database integration test")
	}
	database, err := Connect(context.Background(), url)
	require.NoError(t, err)
	t.Cleanup(database.Close)
	return database
}

func TestSaveAndGetAnalysis(t *testing.T) {
	database := connectTestDB(t)
	ctx := context.Background()

	rec := &AnalysisRecord{
		Name:               "Jane Doe",
		Email:              "jane@example.com",
		Score:              40,
		PageCount:          2,
		PredictedField:     "Web Development",
		Level:              "Intermediate",
		Skills:             []string{"python", "react"},
		RecommendedSkills:  []string{"node"},
		RecommendedCourses: []string{"Django for Everybody"},
	}

	id, err := database.SaveAnalysis(ctx, rec)
	require.NoError(t, err)

	got, err := database.GetAnalysis(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, got.ID)
	assert.Equal(t, "Jane Doe", got.Name)
	assert.Equal(t, 40, got.Score)
	assert.Equal(t, []string{"python", "react"}, got.Skills)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestListAnalyses(t *testing.T) {
	database := connectTestDB(t)
	ctx := context.Background()

	_, err := database.SaveAnalysis(ctx, &AnalysisRecord{
		Name: "List Test", Skills: []string{"sql"},
		RecommendedSkills: []string{}, RecommendedCourses: []string{},
	})
	require.NoError(t, err)

	records, err := database.ListAnalyses(ctx, 10)
	require.NoError(t, err)
	assert.NotEmpty(t, records)
	assert.LessOrEqual(t, len(records), 10)
}
