package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := Defaults()
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, 90.0, cfg.MinFuzzyScore)
	assert.Equal(t, 3, cfg.TopTracks)
	assert.Equal(t, 10, cfg.MaxUploadMB)
	assert.Empty(t, cfg.DatabaseURL)
}

func TestLoad_ValidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"port": 9000, "min_fuzzy_score": 85}`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, 85.0, cfg.MinFuzzyScore)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("/nonexistent/config.json")
	assert.Error(t, err)
}

func TestLoad_EmptyPath(t *testing.T) {
	_, err := Load("")
	assert.Error(t, err)
}

func TestLoad_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{port:}`), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestMergeWithDefaults_FillsZeroValues(t *testing.T) {
	cfg := Config{Port: 9000}
	merged := cfg.MergeWithDefaults(Defaults())

	assert.Equal(t, 9000, merged.Port)
	assert.Equal(t, 90.0, merged.MinFuzzyScore)
	assert.Equal(t, 10, merged.MaxUploadMB)
}

func TestMergeWithDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := Config{MinFuzzyScore: 75, DatabaseURL: "postgres://localhost/test"}
	merged := cfg.MergeWithDefaults(Defaults())

	assert.Equal(t, 75.0, merged.MinFuzzyScore)
	assert.Equal(t, "postgres://localhost/test", merged.DatabaseURL)
}

func TestValidate_Ranges(t *testing.T) {
	cfg := Defaults()
	require.NoError(t, cfg.Validate())

	bad := Defaults()
	bad.MinFuzzyScore = 150
	assert.Error(t, bad.Validate())

	bad = Defaults()
	bad.Port = -1
	assert.Error(t, bad.Validate())

	bad = Defaults()
	bad.TrackMapPath = "/nonexistent/tracks.json"
	assert.Error(t, bad.Validate())
}

func TestFromEnv(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/resumes")
	t.Setenv("PORT", "9999")
	t.Setenv("MIN_FUZZY_SCORE", "80")

	cfg := FromEnv()
	assert.Equal(t, "postgres://localhost/resumes", cfg.DatabaseURL)
	assert.Equal(t, 9999, cfg.Port)
	assert.Equal(t, 80.0, cfg.MinFuzzyScore)
}
