package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/crediverse/resume-analyzer/internal/config"
	"github.com/crediverse/resume-analyzer/internal/server"
)

var (
	servePort       int
	serveConfigPath string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for analyzing uploaded resumes.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides config and PORT)")
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to JSON config file")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(serveConfigPath)
	if err != nil {
		return err
	}
	if servePort != 0 {
		cfg.Port = servePort
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	srv, err := server.New(cfg, buildOptions(cfg))
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}

// resolveConfig layers the config sources: file (when given) over environment
// over defaults.
func resolveConfig(path string) (config.Config, error) {
	env := config.FromEnv()
	merged := env.MergeWithDefaults(config.Defaults())

	if path == "" {
		return merged, nil
	}
	fileCfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}
	return fileCfg.MergeWithDefaults(merged), nil
}
