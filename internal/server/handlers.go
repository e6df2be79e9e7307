package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sort"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/tmori/talentmatch/internal/comparison"
	"github.com/tmori/talentmatch/internal/store"
	"github.com/tmori/talentmatch/internal/types"
)

// rankConcurrency bounds the per-request fan-out when scoring candidates.
const rankConcurrency = 8

var validate = validator.New()

type extractRequest struct {
	Text     string `json:"text" validate:"required"`
	FileName string `json:"fileName"`
}

type matchRequest struct {
	ResumeText string `json:"resumeText" validate:"required"`
	JobText    string `json:"jobText" validate:"required"`
}

type rankRequest struct {
	Job        types.JobRequirement     `json:"job"`
	Candidates []types.CandidateProfile `json:"candidates"`
}

type compareRequest struct {
	Previous types.ResumeExtraction `json:"previous"`
	Current  types.ResumeExtraction `json:"current"`
}

type resumeUploadResponse struct {
	SnapshotID uuid.UUID               `json:"snapshotId"`
	Extraction types.ResumeExtraction  `json:"extraction"`
	Comparison *types.ComparisonResult `json:"comparison,omitempty"`
}

// decodeJSON decodes and, when the target carries validate tags, validates
// the request body.
func decodeJSON(r *http.Request, target any) error {
	if err := json.NewDecoder(r.Body).Decode(target); err != nil {
		return &ErrValidation{Field: "body", Message: "invalid JSON"}
	}
	if err := validate.Struct(target); err != nil {
		return &ErrValidation{Field: "body", Message: err.Error()}
	}
	return nil
}

// handleExtract runs structured fact extraction over raw resume text.
func (s *Server) handleExtract(w http.ResponseWriter, r *http.Request) {
	var req extractRequest
	if err := decodeJSON(r, &req); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, s.extractor.ExtractFile(req.Text, req.FileName))
}

// handleMatch scores a resume against a job description, preferring the
// external analyzer and degrading to the heuristic matcher.
func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	var req matchRequest
	if err := decodeJSON(r, &req); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, s.analyzer.Analyze(r.Context(), req.ResumeText, req.JobText))
}

// handleRank scores candidates against a job concurrently and returns the
// ordered recommendation list.
func (s *Server) handleRank(w http.ResponseWriter, r *http.Request) {
	var req rankRequest
	if err := decodeJSON(r, &req); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	if err := req.Job.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, fmt.Sprintf("invalid job: %v", err))
		return
	}
	for i := range req.Candidates {
		if err := req.Candidates[i].Validate(); err != nil {
			s.errorResponse(w, http.StatusBadRequest, fmt.Sprintf("invalid candidate at index %d: %v", i, err))
			return
		}
	}

	type scored struct {
		rec types.CandidateRecommendation
		ok  bool
	}
	results := make([]scored, len(req.Candidates))

	g, _ := errgroup.WithContext(r.Context())
	g.SetLimit(rankConcurrency)
	for i := range req.Candidates {
		g.Go(func() error {
			rec, ok := s.ranker.Score(req.Job, req.Candidates[i])
			results[i] = scored{rec: rec, ok: ok}
			return nil
		})
	}
	// Scoring is pure and never errors; Wait only joins the goroutines.
	_ = g.Wait()

	recommendations := make([]types.CandidateRecommendation, 0, len(results))
	for _, res := range results {
		if res.ok {
			recommendations = append(recommendations, res.rec)
		}
	}
	sort.SliceStable(recommendations, func(i, j int) bool {
		return recommendations[i].MatchScore > recommendations[j].MatchScore
	})

	s.jsonResponse(w, http.StatusOK, recommendations)
}

// handleCompare diffs two extraction snapshots.
func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	var req compareRequest
	if err := decodeJSON(r, &req); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, comparison.Compare(req.Previous, req.Current))
}

// handleCandidateResume ingests a new resume version for a candidate:
// extract, compare against the stored latest snapshot, persist, and report
// any discrepancy finding.
func (s *Server) handleCandidateResume(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		err := &ErrStoreDisabled{}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	candidateID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		idErr := &ErrInvalidCandidateID{ID: r.PathValue("id")}
		s.errorResponse(w, HTTPStatus(idErr), idErr.Error())
		return
	}

	var req extractRequest
	if err := decodeJSON(r, &req); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	extracted := s.extractor.ExtractFile(req.Text, req.FileName)

	previous, err := s.store.LatestExtraction(r.Context(), candidateID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to load previous snapshot")
		return
	}

	snapshotID, err := s.store.SaveExtraction(r.Context(), candidateID, extracted)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to save snapshot")
		return
	}

	resp := resumeUploadResponse{SnapshotID: snapshotID, Extraction: extracted}
	if previous != nil {
		result := comparison.Compare(previous.Extraction, extracted)
		resp.Comparison = &result
		if err := s.store.SaveComparison(r.Context(), candidateID, previous.ID, snapshotID, result); err != nil {
			// The caller still gets the finding; only the audit trail is lost.
			log.Printf("Failed to save comparison for candidate %s: %v", candidateID, err)
		}
	}

	s.jsonResponse(w, http.StatusCreated, resp)
}

// handleListSnapshots returns a candidate's stored snapshots, newest first.
func (s *Server) handleListSnapshots(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		err := &ErrStoreDisabled{}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	candidateID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		idErr := &ErrInvalidCandidateID{ID: r.PathValue("id")}
		s.errorResponse(w, HTTPStatus(idErr), idErr.Error())
		return
	}

	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		limit, _ = strconv.Atoi(v)
	}

	snapshots, err := s.store.ListSnapshots(r.Context(), candidateID, limit)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to list snapshots")
		return
	}
	if snapshots == nil {
		snapshots = []store.Snapshot{}
	}

	s.jsonResponse(w, http.StatusOK, snapshots)
}

// handleFlaggedComparisons returns stored findings at or above medium risk.
func (s *Server) handleFlaggedComparisons(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		err := &ErrStoreDisabled{}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		limit, _ = strconv.Atoi(v)
	}

	findings, err := s.store.ListFlaggedComparisons(r.Context(), limit)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to list comparisons")
		return
	}
	if findings == nil {
		findings = []store.FlaggedComparison{}
	}

	s.jsonResponse(w, http.StatusOK, findings)
}
