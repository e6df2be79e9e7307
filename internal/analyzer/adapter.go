// Package analyzer wraps an external language-model capability behind a hard
// two-tier policy: try the model with a fixed response schema, and on any
// failure degrade silently to the deterministic heuristic matcher. The adapter
// never returns an error to its caller.
package analyzer

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/xeipuuv/gojsonschema"

	"github.com/tmori/talentmatch/internal/matching"
	"github.com/tmori/talentmatch/internal/types"
)

//go:embed match_result.schema.json
var matchResultSchema string

// DefaultTimeout bounds one external call. The adapter never blocks longer
// than this before falling back.
const DefaultTimeout = 20 * time.Second

// externalConfidence is reported when the external path supplied the result
// but no confidence of its own.
const externalConfidence = 90

// Source identifies which branch produced an Outcome.
type Source string

// Outcome sources.
const (
	SourceExternal  Source = "external"
	SourceHeuristic Source = "heuristic"
)

// Outcome is the explicit two-branch analysis result: which path produced the
// MatchResult, and the error that abandoned the external path when the
// heuristic branch was taken on a configured client.
type Outcome struct {
	Result types.MatchResult
	Source Source
	// Err records why the external path failed. Nil on the external branch,
	// and nil on the heuristic branch when no client is configured.
	Err error
}

// Adapter scores a resume against a job, preferring the external analyzer and
// falling back to the heuristic matcher. Safe for concurrent use: the client
// is never mutated after construction.
type Adapter struct {
	client   Client
	fallback *matching.Matcher
	timeout  time.Duration
}

// New builds an Adapter. A nil client means heuristic-only operation.
func New(client Client) *Adapter {
	return NewWithTimeout(client, DefaultTimeout)
}

// NewWithTimeout builds an Adapter with an explicit external-call timeout.
// Non-positive timeouts fall back to DefaultTimeout.
func NewWithTimeout(client Client, timeout time.Duration) *Adapter {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Adapter{
		client:   client,
		fallback: matching.New(),
		timeout:  timeout,
	}
}

// Analyze returns the merged MatchResult. It never fails: every failure mode
// of the external path degrades to the heuristic result.
func (a *Adapter) Analyze(ctx context.Context, resumeText, jobText string) types.MatchResult {
	return a.AnalyzeOutcome(ctx, resumeText, jobText).Result
}

// AnalyzeOutcome exposes both branches of the analysis so callers and tests
// can observe which path produced the result.
func (a *Adapter) AnalyzeOutcome(ctx context.Context, resumeText, jobText string) Outcome {
	heuristic := a.fallback.Match(resumeText, jobText)

	if a.client == nil {
		return Outcome{Result: heuristic, Source: SourceHeuristic}
	}

	callCtx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	raw, err := a.client.AnalyzeJSON(callCtx, buildPrompt(resumeText, jobText))
	if err != nil {
		log.Printf("analyzer: external call failed, using heuristic result: %v", err)
		return Outcome{Result: heuristic, Source: SourceHeuristic, Err: err}
	}

	partial, err := decodeResponse(raw)
	if err != nil {
		log.Printf("analyzer: rejected external response, using heuristic result: %v", err)
		return Outcome{Result: heuristic, Source: SourceHeuristic, Err: err}
	}

	return Outcome{Result: merge(heuristic, partial), Source: SourceExternal}
}

// Close releases the underlying client, if any.
func (a *Adapter) Close() error {
	if a.client != nil {
		return a.client.Close()
	}
	return nil
}

// externalResponse is the partially-supplied external result. Pointer and nil
// slice fields distinguish "absent" from "empty" so the merge rule can take
// absent fields verbatim from the heuristic result.
type externalResponse struct {
	Score            *float64 `json:"score"`
	Strengths        []string `json:"strengths"`
	Weaknesses       []string `json:"weaknesses"`
	Suggestions      []string `json:"suggestions"`
	TechnicalGaps    []string `json:"technicalGaps"`
	MatchingSkills   []string `json:"matchingSkills"`
	MissingSkills    []string `json:"missingSkills"`
	ClientExperience *string  `json:"clientExperience"`
	Confidence       *float64 `json:"confidence"`
}

// decodeResponse gates the raw model output: it must be JSON and it must
// satisfy the response schema before any field is trusted.
func decodeResponse(raw string) (externalResponse, error) {
	var partial externalResponse

	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(matchResultSchema),
		gojsonschema.NewStringLoader(raw),
	)
	if err != nil {
		return partial, fmt.Errorf("response is not valid JSON: %w", err)
	}
	if !result.Valid() {
		return partial, fmt.Errorf("response violates schema: %s", firstSchemaError(result))
	}

	if err := json.Unmarshal([]byte(raw), &partial); err != nil {
		return partial, fmt.Errorf("failed to decode response: %w", err)
	}
	return partial, nil
}

func firstSchemaError(result *gojsonschema.Result) string {
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		return fmt.Sprintf("%s: %s", field, desc.Description())
	}
	return "unknown violation"
}

// merge applies the override-if-present rule: every field the external
// response supplies replaces the heuristic value, every absent field is taken
// verbatim from the heuristic result. Pure over its two inputs.
func merge(heuristic types.MatchResult, partial externalResponse) types.MatchResult {
	merged := heuristic

	if partial.Score != nil {
		merged.Score = int(math.Round(*partial.Score))
	}
	if partial.Strengths != nil {
		merged.Strengths = partial.Strengths
	}
	if partial.Weaknesses != nil {
		merged.Weaknesses = partial.Weaknesses
	}
	if partial.Suggestions != nil {
		merged.Suggestions = partial.Suggestions
	}
	if partial.TechnicalGaps != nil {
		merged.TechnicalGaps = partial.TechnicalGaps
	}
	if partial.MatchingSkills != nil {
		merged.MatchingSkills = partial.MatchingSkills
	}
	if partial.MissingSkills != nil {
		merged.MissingSkills = partial.MissingSkills
	}
	if partial.ClientExperience != nil {
		merged.ClientExperience = *partial.ClientExperience
	}
	if partial.Confidence != nil {
		merged.Confidence = int(math.Round(*partial.Confidence))
	} else {
		merged.Confidence = externalConfidence
	}

	merged.ClampScores()
	return merged
}

// buildPrompt instructs the model to reply with exactly the MatchResult
// fields as a single JSON object.
func buildPrompt(resumeText, jobText string) string {
	return fmt.Sprintf(`You are a technical recruiter evaluating a candidate's resume against a job description.

Respond with a single JSON object and nothing else, using exactly these fields:
- "score": integer 0-100 overall fit
- "strengths": array of strings
- "weaknesses": array of strings
- "suggestions": array of strings
- "technicalGaps": array of strings
- "matchingSkills": array of lowercase skill names present in both texts
- "missingSkills": array of lowercase skill names the job needs but the resume lacks
- "clientExperience": one sentence on relevant client or industry experience, or omit
- "confidence": integer 0-100

RESUME:
%s

JOB DESCRIPTION:
%s`, resumeText, jobText)
}
