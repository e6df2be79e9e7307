package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tmori/talentmatch/internal/comparison"
	"github.com/tmori/talentmatch/internal/types"
)

var compareCmd = &cobra.Command{
	Use:   "compare <previous.json> <current.json>",
	Short: "Diff two resume extraction snapshots",
	Long: `Compare two extraction JSON files (as produced by 'extract') for the same
candidate and print the discrepancy finding with its risk level.`,
	Args: cobra.ExactArgs(2),
	RunE: runCompare,
}

func init() {
	rootCmd.AddCommand(compareCmd)
}

func runCompare(_ *cobra.Command, args []string) error {
	previous, err := readExtraction(args[0])
	if err != nil {
		return err
	}
	current, err := readExtraction(args[1])
	if err != nil {
		return err
	}

	result := comparison.Compare(previous, current)
	if printer := verbosePrinter(); printer != nil {
		printer.PrintComparison(&result)
	}
	return printJSON(result)
}

// readExtraction loads a ResumeExtraction from a JSON file.
func readExtraction(path string) (types.ResumeExtraction, error) {
	var extraction types.ResumeExtraction
	data, err := os.ReadFile(path)
	if err != nil {
		return extraction, fmt.Errorf("failed to read extraction file %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &extraction); err != nil {
		return extraction, fmt.Errorf("failed to parse extraction file %s: %w", path, err)
	}
	return extraction, nil
}
