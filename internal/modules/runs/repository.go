// Package runs archives enhancement batches for later inspection.
package runs

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/moneypath/behavioral/internal/database"
)

// Run is one archived enhancement batch: the raw and adjusted outcome arrays
// plus the metrics returned to the caller.
type Run struct {
	ID               string
	Scenario         string // "emergency_fund" or "student_loan"
	Demographic      string
	Trials           int
	BaseOutcomes     []float64
	AdjustedOutcomes []float64
	Metrics          map[string]interface{}
	CreatedAt        time.Time
}

// Repository handles CRUD operations for archived runs.
//
// Outcome arrays are msgpack-encoded blobs (compact, order-preserving);
// metrics are stored as JSON so they stay queryable with SQLite's json
// functions.
type Repository struct {
	db  *sql.DB
	log zerolog.Logger
}

// NewRepository creates a new run repository.
func NewRepository(db *sql.DB, log zerolog.Logger) *Repository {
	return &Repository{
		db:  db,
		log: log.With().Str("repository", "runs").Logger(),
	}
}

// SaveRun archives one enhancement batch and returns its id. A zero-value ID
// is assigned a fresh uuid.
func (r *Repository) SaveRun(run Run) (string, error) {
	if run.ID == "" {
		run.ID = uuid.New().String()
	}
	if run.Trials == 0 {
		run.Trials = len(run.BaseOutcomes)
	}

	baseBlob, err := msgpack.Marshal(run.BaseOutcomes)
	if err != nil {
		return "", fmt.Errorf("failed to encode base outcomes: %w", err)
	}
	adjustedBlob, err := msgpack.Marshal(run.AdjustedOutcomes)
	if err != nil {
		return "", fmt.Errorf("failed to encode adjusted outcomes: %w", err)
	}
	metricsJSON, err := json.Marshal(run.Metrics)
	if err != nil {
		return "", fmt.Errorf("failed to encode metrics: %w", err)
	}

	createdAt := run.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	err = database.WithTransaction(r.db, func(tx *sql.Tx) error {
		_, err := tx.Exec(`
			INSERT INTO runs
			(id, scenario, demographic, trials, base_outcomes, adjusted_outcomes, metrics, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		`,
			run.ID,
			run.Scenario,
			run.Demographic,
			run.Trials,
			baseBlob,
			adjustedBlob,
			string(metricsJSON),
			createdAt,
		)
		return err
	})
	if err != nil {
		return "", fmt.Errorf("failed to insert run: %w", err)
	}

	r.log.Debug().Str("id", run.ID).Str("scenario", run.Scenario).Int("trials", run.Trials).Msg("run archived")

	return run.ID, nil
}

// GetRun loads one archived run by id.
func (r *Repository) GetRun(id string) (*Run, error) {
	row := r.db.QueryRow(`
		SELECT id, scenario, demographic, trials, base_outcomes, adjusted_outcomes, metrics, created_at
		FROM runs
		WHERE id = ?
	`, id)

	run, err := scanRun(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("run %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load run %s: %w", id, err)
	}

	return run, nil
}

// ListRecent returns up to n runs, newest first.
func (r *Repository) ListRecent(n int) ([]Run, error) {
	if n <= 0 {
		n = 20
	}

	rows, err := r.db.Query(`
		SELECT id, scenario, demographic, trials, base_outcomes, adjusted_outcomes, metrics, created_at
		FROM runs
		ORDER BY created_at DESC
		LIMIT ?
	`, n)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan run row: %w", err)
		}
		runs = append(runs, *run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate run rows: %w", err)
	}

	return runs, nil
}

// DeleteOlderThan removes runs archived before the cutoff and returns the
// number deleted.
func (r *Repository) DeleteOlderThan(cutoff time.Time) (int64, error) {
	result, err := r.db.Exec(`DELETE FROM runs WHERE created_at < ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to delete old runs: %w", err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count deleted runs: %w", err)
	}

	if deleted > 0 {
		r.log.Debug().Int64("deleted", deleted).Time("cutoff", cutoff).Msg("old runs pruned")
	}

	return deleted, nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanRun(s scanner) (*Run, error) {
	var run Run
	var baseBlob, adjustedBlob []byte
	var metricsJSON string

	if err := s.Scan(
		&run.ID,
		&run.Scenario,
		&run.Demographic,
		&run.Trials,
		&baseBlob,
		&adjustedBlob,
		&metricsJSON,
		&run.CreatedAt,
	); err != nil {
		return nil, err
	}

	if err := msgpack.Unmarshal(baseBlob, &run.BaseOutcomes); err != nil {
		return nil, fmt.Errorf("failed to decode base outcomes: %w", err)
	}
	if err := msgpack.Unmarshal(adjustedBlob, &run.AdjustedOutcomes); err != nil {
		return nil, fmt.Errorf("failed to decode adjusted outcomes: %w", err)
	}
	if err := json.Unmarshal([]byte(metricsJSON), &run.Metrics); err != nil {
		return nil, fmt.Errorf("failed to decode metrics: %w", err)
	}

	return &run, nil
}
