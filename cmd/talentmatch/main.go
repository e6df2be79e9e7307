// Package main provides the entry point for the talentmatch CLI and HTTP API
// server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/tmori/talentmatch/internal/observability"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "talentmatch",
	Short: "Candidate-to-job matching and resume-integrity engine",
	Long: `talentmatch extracts structured facts from resume text, scores candidate fit
against job descriptions, ranks candidates, and detects suspicious
discrepancies between resume versions.`,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print human-readable summaries to stderr alongside the JSON output")
}

// verbosePrinter returns a Printer when --verbose is set, nil otherwise.
// Summaries go to stderr so stdout stays pipeable JSON.
func verbosePrinter() *observability.Printer {
	if !verbose {
		return nil
	}
	return observability.NewPrinter(os.Stderr)
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
