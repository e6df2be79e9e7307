package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tmori/talentmatch/internal/analyzer"
	"github.com/tmori/talentmatch/internal/types"
)

const uploadResume = `Senior Java Developer
Client: Acme Corp
01/2019 - 06/2021
Built payment services using Java, Spring Boot, AWS and SQL.
Bachelor of Science in Computer Science`

const serverJobText = `We need a frontend-leaning engineer. Required: React, Node.js, AWS.
You will build and operate customer-facing services.`

const serverResumeText = `Full stack developer with 5 years experience with React and Node.js,
building single page applications and REST services for retail clients.`

func newTestServer(t *testing.T, client analyzer.Client) *httptest.Server {
	t.Helper()
	s := newServer(Config{}, nil, client)
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(payload))
	require.NoError(t, err)
	return resp
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t, nil)

	resp, err := http.Get(ts.URL + "/health")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody[map[string]string](t, resp)
	assert.Equal(t, "ok", body["status"])
}

func TestExtractEndpoint(t *testing.T) {
	ts := newTestServer(t, nil)

	resp := postJSON(t, ts.URL+"/extract", map[string]string{
		"text":     uploadResume,
		"fileName": "resume.pdf",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	extraction := decodeBody[types.ResumeExtraction](t, resp)
	assert.Contains(t, extraction.ClientNames, "Acme Corp")
	assert.Contains(t, extraction.Skills, "java")
	assert.Contains(t, extraction.JobTitles, "Senior Java Developer")
	assert.Equal(t, "resume.pdf", extraction.FileName)
}

func TestExtractEndpoint_MissingText(t *testing.T) {
	ts := newTestServer(t, nil)

	resp := postJSON(t, ts.URL+"/extract", map[string]string{"fileName": "resume.pdf"})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestExtractEndpoint_InvalidJSON(t *testing.T) {
	ts := newTestServer(t, nil)

	resp, err := http.Post(ts.URL+"/extract", "application/json", bytes.NewReader([]byte(`{"text": `)))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestExtractEndpoint_MethodNotAllowed(t *testing.T) {
	ts := newTestServer(t, nil)

	resp, err := http.Get(ts.URL + "/extract")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestMatchEndpoint_HeuristicPath(t *testing.T) {
	ts := newTestServer(t, nil)

	resp := postJSON(t, ts.URL+"/match", map[string]string{
		"resumeText": serverResumeText,
		"jobText":    serverJobText,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	result := decodeBody[types.MatchResult](t, resp)
	assert.GreaterOrEqual(t, result.Score, 80)
	assert.LessOrEqual(t, result.Score, 100)
	assert.Contains(t, result.MatchingSkills, "react")
	assert.Contains(t, result.MissingSkills, "aws")
}

type stubAnalyzerClient struct {
	response string
}

func (s *stubAnalyzerClient) AnalyzeJSON(_ context.Context, _ string) (string, error) {
	return s.response, nil
}

func (s *stubAnalyzerClient) Close() error { return nil }

func TestMatchEndpoint_ExternalAnalyzer(t *testing.T) {
	client := &stubAnalyzerClient{response: `{
		"score": 91,
		"strengths": ["Production React experience"],
		"weaknesses": [],
		"suggestions": [],
		"confidence": 95
	}`}
	ts := newTestServer(t, client)

	resp := postJSON(t, ts.URL+"/match", map[string]string{
		"resumeText": serverResumeText,
		"jobText":    serverJobText,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	result := decodeBody[types.MatchResult](t, resp)
	assert.Equal(t, 91, result.Score)
	assert.Equal(t, []string{"Production React experience"}, result.Strengths)
	assert.Equal(t, 95, result.Confidence)
}

func TestRankEndpoint(t *testing.T) {
	ts := newTestServer(t, nil)

	payload := map[string]any{
		"job": types.JobRequirement{
			Title:       "Senior Java Developer",
			Description: "Looking for a senior java developer with spring boot, aws and sql experience building payment systems.",
			ClientName:  "FIS Global",
			Location:    types.JobLocation{City: "Austin", State: "TX", JobType: types.JobTypeOnsite},
		},
		"candidates": []types.CandidateProfile{
			{
				ID: "c9c1e2d6-5b54-4f3e-9d55-0c4a4dd1a001", Name: "Priya Raman", City: "Austin", State: "TX",
				Extraction: types.ResumeExtraction{
					ClientNames: []string{"FIS"},
					JobTitles:   []string{"Senior Java Developer"},
					Skills:      []string{"java", "spring boot", "aws", "sql"},
				},
			},
			{
				ID: "c9c1e2d6-5b54-4f3e-9d55-0c4a4dd1a002", Name: "Jordan Lee", City: "Portland", State: "OR",
				Extraction: types.ResumeExtraction{
					JobTitles: []string{"Office Manager"},
					Skills:    []string{"scheduling"},
				},
			},
		},
	}

	resp := postJSON(t, ts.URL+"/rank", payload)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	recs := decodeBody[[]types.CandidateRecommendation](t, resp)
	require.Len(t, recs, 1, "weak candidate should fall below the cutoff")
	assert.Equal(t, "Priya Raman", recs[0].CandidateName)
	assert.GreaterOrEqual(t, recs[0].MatchScore, 90)
}

func TestRankEndpoint_InvalidJob(t *testing.T) {
	ts := newTestServer(t, nil)

	resp := postJSON(t, ts.URL+"/rank", map[string]any{
		"job":        map[string]string{"title": "Engineer"}, // missing description
		"candidates": []types.CandidateProfile{},
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCompareEndpoint(t *testing.T) {
	ts := newTestServer(t, nil)

	resp := postJSON(t, ts.URL+"/compare", map[string]any{
		"previous": types.ResumeExtraction{ClientNames: []string{"Acme Corp", "Globex"}},
		"current":  types.ResumeExtraction{ClientNames: []string{"Acme Corp", "Initech"}},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	result := decodeBody[types.ComparisonResult](t, resp)
	assert.True(t, result.HasChanges)
	assert.Equal(t, []string{"Initech"}, result.NewEmployers)
	assert.Equal(t, []string{"Globex"}, result.RemovedEmployers)
	assert.Equal(t, types.RiskHigh, result.OverallRisk)
}

func TestCandidateResume_NoStore(t *testing.T) {
	ts := newTestServer(t, nil)

	resp := postJSON(t, ts.URL+"/candidates/c9c1e2d6-5b54-4f3e-9d55-0c4a4dd1a001/resume",
		map[string]string{"text": uploadResume})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestFlaggedComparisons_NoStore(t *testing.T) {
	ts := newTestServer(t, nil)

	resp, err := http.Get(ts.URL + "/comparisons/flagged")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestCORSPreflight(t *testing.T) {
	ts := newTestServer(t, nil)

	req, err := http.NewRequest(http.MethodOptions, ts.URL+"/match", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}
