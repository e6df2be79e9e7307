package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadExtraction(t *testing.T) {
	path := writeTempFile(t, "extraction.json", `{
		"clientNames": ["Acme Corp"],
		"jobTitles": ["Software Developer"],
		"relevantDates": ["01/2019 - 06/2021"],
		"skills": ["java"],
		"education": [],
		"extractedText": "..."
	}`)

	extraction, err := readExtraction(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Acme Corp"}, extraction.ClientNames)
	assert.Equal(t, []string{"java"}, extraction.Skills)
}

func TestReadExtraction_Errors(t *testing.T) {
	_, err := readExtraction(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	bad := writeTempFile(t, "bad.json", `{"clientNames": `)
	_, err = readExtraction(bad)
	assert.Error(t, err)
}

func TestReadRankInput(t *testing.T) {
	path := writeTempFile(t, "rank.json", `{
		"job": {
			"title": "Senior Java Developer",
			"description": "java and sql work",
			"location": {"city": "Austin", "state": "TX", "jobType": "onsite"}
		},
		"candidates": [
			{
				"candidateId": "c9c1e2d6-5b54-4f3e-9d55-0c4a4dd1a001",
				"candidateName": "Priya Raman",
				"city": "Austin",
				"state": "TX",
				"extraction": {"skills": ["java", "sql"], "jobTitles": ["Java Developer"]}
			}
		]
	}`)

	input, err := readRankInput(path)
	require.NoError(t, err)
	assert.Equal(t, "Senior Java Developer", input.Job.Title)
	require.Len(t, input.Candidates, 1)
	assert.Equal(t, "Priya Raman", input.Candidates[0].Name)
}

func TestReadRankInput_InvalidJob(t *testing.T) {
	path := writeTempFile(t, "rank.json", `{"job": {"title": "Engineer"}, "candidates": []}`)
	_, err := readRankInput(path)
	assert.Error(t, err)
}
