package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tmori/talentmatch/internal/recommend"
	"github.com/tmori/talentmatch/internal/types"
)

// rankInput is the JSON shape the rank command consumes: one job plus the
// candidate pool to order against it.
type rankInput struct {
	Job        types.JobRequirement     `json:"job"`
	Candidates []types.CandidateProfile `json:"candidates"`
}

var rankCmd = &cobra.Command{
	Use:   "rank <request.json>",
	Short: "Rank candidates against a job",
	Long: `Read a JSON file with a job and a candidate list and print the ordered
recommendations. Candidates below the ranking cutoff are excluded.`,
	Args: cobra.ExactArgs(1),
	RunE: runRank,
}

func init() {
	rootCmd.AddCommand(rankCmd)
}

func runRank(_ *cobra.Command, args []string) error {
	input, err := readRankInput(args[0])
	if err != nil {
		return err
	}

	recommendations := recommend.New().Rank(input.Job, input.Candidates)
	if printer := verbosePrinter(); printer != nil {
		printer.PrintRecommendations(recommendations)
	}
	return printJSON(recommendations)
}

// readRankInput loads and validates the rank request file.
func readRankInput(path string) (rankInput, error) {
	var input rankInput
	data, err := os.ReadFile(path)
	if err != nil {
		return input, fmt.Errorf("failed to read rank request %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &input); err != nil {
		return input, fmt.Errorf("failed to parse rank request %s: %w", path, err)
	}
	if err := input.Job.Validate(); err != nil {
		return input, fmt.Errorf("invalid job in %s: %w", path, err)
	}
	for i := range input.Candidates {
		if err := input.Candidates[i].Validate(); err != nil {
			return input, fmt.Errorf("invalid candidate at index %d in %s: %w", i, path, err)
		}
	}
	return input, nil
}
