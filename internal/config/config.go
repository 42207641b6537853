// Package config provides configuration loading and validation for the CLI
// and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

// Config represents the analyzer configuration. It can be loaded from a JSON
// file; missing values fall back to environment variables and then defaults.
type Config struct {
	// Server
	Port        int    `json:"port,omitempty"`         // HTTP listen port
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL URL; empty disables persistence

	// Analysis
	TrackMapPath  string  `json:"track_map,omitempty"`       // Path to track-definition JSON; empty uses the built-in map
	MinFuzzyScore float64 `json:"min_fuzzy_score,omitempty"` // Fuzzy match acceptance threshold (0-100)
	TopTracks     int     `json:"top_tracks,omitempty"`      // Entries kept in the track ranking

	// Uploads
	MaxUploadMB int `json:"max_upload_mb,omitempty"` // Upload size limit for the HTTP API
}

// Defaults returns the baseline configuration.
func Defaults() Config {
	return Config{
		Port:          8080,
		MinFuzzyScore: 90,
		TopTracks:     3,
		MaxUploadMB:   10,
	}
}

// Load reads configuration from a JSON file.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}
	return &cfg, nil
}

// FromEnv builds a Config from environment variables. Unset variables leave
// zero values for MergeWithDefaults to fill.
func FromEnv() Config {
	cfg := Config{
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		TrackMapPath: os.Getenv("TRACK_MAP"),
	}
	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Port = port
		}
	}
	if v := os.Getenv("MAX_UPLOAD_MB"); v != "" {
		if mb, err := strconv.Atoi(v); err == nil {
			cfg.MaxUploadMB = mb
		}
	}
	if v := os.Getenv("MIN_FUZZY_SCORE"); v != "" {
		if score, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.MinFuzzyScore = score
		}
	}
	return cfg
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be in 0-65535")
	}
	if c.MinFuzzyScore < 0 || c.MinFuzzyScore > 100 {
		return fmt.Errorf("config error: 'min_fuzzy_score' must be in 0-100")
	}
	if c.TopTracks < 0 {
		return fmt.Errorf("config error: 'top_tracks' must be non-negative")
	}
	if c.MaxUploadMB < 0 {
		return fmt.Errorf("config error: 'max_upload_mb' must be non-negative")
	}
	if c.TrackMapPath != "" {
		if _, err := os.Stat(c.TrackMapPath); os.IsNotExist(err) {
			return fmt.Errorf("config error: track map file not found: %s", c.TrackMapPath)
		}
	}
	return nil
}

// MergeWithDefaults returns a new Config with zero-valued fields filled from
// defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.TrackMapPath == "" {
		result.TrackMapPath = defaults.TrackMapPath
	}
	if result.MinFuzzyScore == 0 {
		result.MinFuzzyScore = defaults.MinFuzzyScore
	}
	if result.TopTracks == 0 {
		result.TopTracks = defaults.TopTracks
	}
	if result.MaxUploadMB == 0 {
		result.MaxUploadMB = defaults.MaxUploadMB
	}
	return result
}
