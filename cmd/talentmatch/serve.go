package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tmori/talentmatch/internal/config"
	"github.com/tmori/talentmatch/internal/server"
)

var (
	serveAddr       string
	serveConfigPath string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: `Start an HTTP server exposing extraction, matching, ranking and
resume-comparison endpoints. The database and Gemini API key are optional;
without them the persistence endpoints are disabled and matching runs on the
heuristic path.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (default \":8080\")")
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to JSON config file")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg := config.FromEnv()
	if serveConfigPath != "" {
		fileCfg, err := config.LoadConfig(serveConfigPath)
		if err != nil {
			return err
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
	} else {
		cfg = cfg.MergeWithDefaults(config.Config{})
	}
	if serveAddr != "" {
		cfg.ListenAddr = serveAddr
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	srv, err := server.New(server.Config{
		ListenAddr:      cfg.ListenAddr,
		DatabaseURL:     cfg.DatabaseURL,
		APIKey:          cfg.APIKey,
		GeminiModel:     cfg.GeminiModel,
		AnalyzerTimeout: cfg.AnalyzerTimeout(),
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
