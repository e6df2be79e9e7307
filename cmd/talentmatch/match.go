package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tmori/talentmatch/internal/analyzer"
	"github.com/tmori/talentmatch/internal/config"
)

var matchHeuristicOnly bool

var matchCmd = &cobra.Command{
	Use:   "match <resume.txt> <job.txt>",
	Short: "Score a resume against a job description",
	Long: `Score one resume against one job description and print the MatchResult as
JSON. With GEMINI_API_KEY set, the external analyzer is preferred and any
failure falls back to the deterministic heuristic matcher.`,
	Args: cobra.ExactArgs(2),
	RunE: runMatch,
}

func init() {
	matchCmd.Flags().BoolVar(&matchHeuristicOnly, "heuristic-only", false, "Skip the external analyzer even when an API key is configured")
	rootCmd.AddCommand(matchCmd)
}

func runMatch(cmd *cobra.Command, args []string) error {
	resumeText, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read resume file: %w", err)
	}
	jobText, err := os.ReadFile(args[1])
	if err != nil {
		return fmt.Errorf("failed to read job file: %w", err)
	}

	cfg := config.FromEnv()

	var client analyzer.Client
	if cfg.APIKey != "" && !matchHeuristicOnly {
		client, err = analyzer.NewGeminiClient(cmd.Context(), cfg.APIKey, cfg.GeminiModel)
		if err != nil {
			return fmt.Errorf("failed to create analyzer client: %w", err)
		}
	}

	adapter := analyzer.NewWithTimeout(client, cfg.AnalyzerTimeout())
	defer adapter.Close()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	result := adapter.Analyze(ctx, string(resumeText), string(jobText))
	if printer := verbosePrinter(); printer != nil {
		printer.PrintMatchResult(&result)
	}
	return printJSON(result)
}
