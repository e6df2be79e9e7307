// Package store provides PostgreSQL persistence for resume extraction
// snapshots and comparison findings. Extractions are append-only: each upload
// for a candidate becomes a new snapshot, and the latest snapshot is what
// resubmissions get compared against.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tmori/talentmatch/internal/types"
)

// Store wraps a PostgreSQL connection pool.
type Store struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database.
func Connect(ctx context.Context, databaseURL string) (*Store, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Store{pool: pool}, nil
}

// Close closes the connection pool.
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Snapshot is one stored extraction of a candidate's resume.
type Snapshot struct {
	ID          uuid.UUID              `json:"id"`
	CandidateID uuid.UUID              `json:"candidateId"`
	FileName    string                 `json:"fileName,omitempty"`
	Extraction  types.ResumeExtraction `json:"extraction"`
	CreatedAt   time.Time              `json:"createdAt"`
}

// SaveExtraction stores a new snapshot for a candidate and returns its ID.
func (s *Store) SaveExtraction(ctx context.Context, candidateID uuid.UUID, extraction types.ResumeExtraction) (uuid.UUID, error) {
	jsonBytes, err := json.Marshal(extraction)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal extraction: %w", err)
	}

	var id uuid.UUID
	err = s.pool.QueryRow(ctx,
		`INSERT INTO resume_snapshots (candidate_id, file_name, extraction)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		candidateID, extraction.FileName, jsonBytes,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save extraction: %w", err)
	}
	return id, nil
}

// LatestExtraction retrieves the most recent snapshot for a candidate.
// Returns nil without error when the candidate has no snapshots.
func (s *Store) LatestExtraction(ctx context.Context, candidateID uuid.UUID) (*Snapshot, error) {
	var snapshot Snapshot
	var extractionBytes []byte
	var fileName *string

	err := s.pool.QueryRow(ctx,
		`SELECT id, candidate_id, file_name, extraction, created_at
		 FROM resume_snapshots
		 WHERE candidate_id = $1
		 ORDER BY created_at DESC, id DESC
		 LIMIT 1`,
		candidateID,
	).Scan(&snapshot.ID, &snapshot.CandidateID, &fileName, &extractionBytes, &snapshot.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get latest extraction: %w", err)
	}

	if fileName != nil {
		snapshot.FileName = *fileName
	}
	if err := json.Unmarshal(extractionBytes, &snapshot.Extraction); err != nil {
		return nil, fmt.Errorf("failed to unmarshal extraction: %w", err)
	}
	return &snapshot, nil
}

// ListSnapshots retrieves a candidate's snapshots, newest first.
func (s *Store) ListSnapshots(ctx context.Context, candidateID uuid.UUID, limit int) ([]Snapshot, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.pool.Query(ctx,
		`SELECT id, candidate_id, file_name, extraction, created_at
		 FROM resume_snapshots
		 WHERE candidate_id = $1
		 ORDER BY created_at DESC, id DESC
		 LIMIT $2`,
		candidateID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list snapshots: %w", err)
	}
	defer rows.Close()

	var snapshots []Snapshot
	for rows.Next() {
		var snapshot Snapshot
		var extractionBytes []byte
		var fileName *string
		if err := rows.Scan(&snapshot.ID, &snapshot.CandidateID, &fileName, &extractionBytes, &snapshot.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan snapshot: %w", err)
		}
		if fileName != nil {
			snapshot.FileName = *fileName
		}
		if err := json.Unmarshal(extractionBytes, &snapshot.Extraction); err != nil {
			return nil, fmt.Errorf("failed to unmarshal extraction: %w", err)
		}
		snapshots = append(snapshots, snapshot)
	}
	return snapshots, nil
}

// SaveComparison records a discrepancy finding between two snapshots of the
// same candidate, keeping an audit trail of risk escalations.
func (s *Store) SaveComparison(ctx context.Context, candidateID, previousID, currentID uuid.UUID, result types.ComparisonResult) error {
	jsonBytes, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal comparison: %w", err)
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO resume_comparisons (candidate_id, previous_snapshot_id, current_snapshot_id, overall_risk, result)
		 VALUES ($1, $2, $3, $4, $5)`,
		candidateID, previousID, currentID, string(result.OverallRisk), jsonBytes,
	)
	if err != nil {
		return fmt.Errorf("failed to save comparison: %w", err)
	}
	return nil
}

// FlaggedComparison is one stored discrepancy finding.
type FlaggedComparison struct {
	ID          uuid.UUID              `json:"id"`
	CandidateID uuid.UUID              `json:"candidateId"`
	OverallRisk types.RiskLevel        `json:"overallRisk"`
	Result      types.ComparisonResult `json:"result"`
	CreatedAt   time.Time              `json:"createdAt"`
}

// ListFlaggedComparisons retrieves stored findings at or above medium risk,
// newest first.
func (s *Store) ListFlaggedComparisons(ctx context.Context, limit int) ([]FlaggedComparison, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := s.pool.Query(ctx,
		`SELECT id, candidate_id, overall_risk, result, created_at
		 FROM resume_comparisons
		 WHERE overall_risk IN ('medium', 'high')
		 ORDER BY created_at DESC
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list comparisons: %w", err)
	}
	defer rows.Close()

	var findings []FlaggedComparison
	for rows.Next() {
		var finding FlaggedComparison
		var risk string
		var resultBytes []byte
		if err := rows.Scan(&finding.ID, &finding.CandidateID, &risk, &resultBytes, &finding.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan comparison: %w", err)
		}
		finding.OverallRisk = types.RiskLevel(risk)
		if err := json.Unmarshal(resultBytes, &finding.Result); err != nil {
			return nil, fmt.Errorf("failed to unmarshal comparison: %w", err)
		}
		findings = append(findings, finding)
	}
	return findings, nil
}
