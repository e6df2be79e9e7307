package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/tmori/talentmatch/internal/extraction"
)

var extractFileName string

var extractCmd = &cobra.Command{
	Use:   "extract <resume.txt>",
	Short: "Extract structured facts from a resume text file",
	Long: `Run pattern-based extraction over plain resume text and print the
structured result (employers, titles, dates, skills, education) as JSON.`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().StringVar(&extractFileName, "file-name", "", "Original file name to record (defaults to the input path's base name)")
	rootCmd.AddCommand(extractCmd)
}

func runExtract(_ *cobra.Command, args []string) error {
	text, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read resume file: %w", err)
	}

	fileName := extractFileName
	if fileName == "" {
		fileName = filepath.Base(args[0])
	}

	result := extraction.New().ExtractFile(string(text), fileName)
	if printer := verbosePrinter(); printer != nil {
		printer.PrintExtraction(&result)
	}
	return printJSON(result)
}

// printJSON writes indented JSON to stdout.
func printJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
