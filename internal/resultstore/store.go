// Package resultstore persists scoring runs to a SQL backend for
// trend tracking across configuration changes.
package resultstore

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/lumenkit/kbscore/schema"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// Store persists scoring results for historical tracking.
type Store struct {
	db      *sql.DB
	backend schema.DatabaseBackend
}

// NewStore creates a result store for the chosen backend. The
// NoneBackend returns a store whose operations are all no-ops.
func NewStore(backend schema.DatabaseBackend, connect string) (*Store, error) {
	if backend == schema.NoneBackend {
		return &Store{backend: backend}, nil
	}

	var db *sql.DB
	var err error

	switch backend {
	case schema.SQLiteBackend:
		db, err = sql.Open("sqlite", connect)
		if err == nil {
			// Serialize writers to avoid SQLITE_BUSY under concurrency.
			db.SetMaxOpenConns(1)
		}
	case schema.MySQLBackend:
		db, err = sql.Open("mysql", connect)
	case schema.PostgreSQLBackend:
		db, err = sql.Open("pgx", connect)
	default:
		return nil, fmt.Errorf("unsupported store backend: %s", backend)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s store: %w", backend, err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("connect to %s store: %w", backend, err)
	}

	s := &Store{db: db, backend: backend}
	if err := s.createTables(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Enabled reports whether the store is backed by a real database.
func (s *Store) Enabled() bool {
	return s.db != nil
}

// Backend returns the configured backend.
func (s *Store) Backend() schema.DatabaseBackend {
	return s.backend
}

func (s *Store) createTables() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS kbscore_runs (
			run_id BIGINT PRIMARY KEY,
			vertical VARCHAR(64) NOT NULL,
			total_score DOUBLE PRECISION NOT NULL,
			status VARCHAR(16) NOT NULL,
			generated_at TIMESTAMP NOT NULL,
			schema_version VARCHAR(16) NOT NULL,
			total_fields INTEGER NOT NULL,
			completed_fields INTEGER NOT NULL,
			critical_missing INTEGER NOT NULL,
			placeholder_fields INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS kbscore_field_scores (
			run_id BIGINT NOT NULL,
			field_key VARCHAR(64) NOT NULL,
			category VARCHAR(32) NOT NULL,
			status VARCHAR(16) NOT NULL,
			existence_score DOUBLE PRECISION NOT NULL,
			completeness_score DOUBLE PRECISION NOT NULL,
			quality_score DOUBLE PRECISION NOT NULL,
			weighted_score DOUBLE PRECISION NOT NULL,
			max_possible_score DOUBLE PRECISION NOT NULL,
			is_placeholder BOOLEAN NOT NULL,
			issue_count INTEGER NOT NULL,
			PRIMARY KEY (run_id, field_key)
		)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("create tables: %w", err)
		}
	}
	return nil
}

// placeholder returns the positional parameter marker for the backend.
func (s *Store) placeholder(n int) string {
	if s.backend == schema.PostgreSQLBackend {
		return fmt.Sprintf("$%d", n)
	}
	return "?"
}

func (s *Store) placeholders(count int) string {
	out := ""
	for i := 1; i <= count; i++ {
		if i > 1 {
			out += ", "
		}
		out += s.placeholder(i)
	}
	return out
}

// SaveResult persists a scoring result and its per-field rows in one
// transaction. It returns the assigned run ID.
func (s *Store) SaveResult(ctx context.Context, result *schema.ScoringResult) (int64, error) {
	if !s.Enabled() {
		return 0, nil
	}

	runID := time.Now().UnixNano()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin save: %w", err)
	}
	defer tx.Rollback()

	runInsert := fmt.Sprintf(`INSERT INTO kbscore_runs
		(run_id, vertical, total_score, status, generated_at, schema_version,
		 total_fields, completed_fields, critical_missing, placeholder_fields)
		VALUES (%s)`, s.placeholders(10))
	_, err = tx.ExecContext(ctx, runInsert,
		runID,
		string(result.Vertical),
		result.TotalScore,
		string(result.Status),
		result.GeneratedAt.UTC(),
		result.SchemaVersion,
		result.Summary.TotalFields,
		result.Summary.CompletedFields,
		result.Summary.CriticalMissing,
		result.Summary.PlaceholderFields,
	)
	if err != nil {
		return 0, fmt.Errorf("insert run: %w", err)
	}

	fieldInsert := fmt.Sprintf(`INSERT INTO kbscore_field_scores
		(run_id, field_key, category, status, existence_score, completeness_score,
		 quality_score, weighted_score, max_possible_score, is_placeholder, issue_count)
		VALUES (%s)`, s.placeholders(11))
	for i := range result.Fields {
		f := &result.Fields[i]
		_, err = tx.ExecContext(ctx, fieldInsert,
			runID,
			f.Key,
			string(f.Category),
			string(f.Status),
			f.ExistenceScore,
			f.CompletenessScore,
			f.QualityScore,
			f.WeightedScore,
			f.MaxPossibleScore,
			f.IsPlaceholder,
			len(f.Issues),
		)
		if err != nil {
			return 0, fmt.Errorf("insert field score %s: %w", f.Key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit save: %w", err)
	}
	return runID, nil
}

// GetAllRuns returns every stored run, newest first.
func (s *Store) GetAllRuns(ctx context.Context) ([]schema.RunRecord, error) {
	if !s.Enabled() {
		return nil, nil
	}

	rows, err := s.db.QueryContext(ctx, `SELECT run_id, vertical, total_score,
		status, generated_at, schema_version, total_fields, completed_fields,
		critical_missing, placeholder_fields
		FROM kbscore_runs ORDER BY run_id DESC`)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var records []schema.RunRecord
	for rows.Next() {
		var r schema.RunRecord
		err := rows.Scan(&r.RunID, &r.Vertical, &r.TotalScore, &r.Status,
			&r.GeneratedAt, &r.SchemaVersion, &r.TotalFields, &r.CompletedFields,
			&r.CriticalMissing, &r.PlaceholderFields)
		if err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// GetAllFieldScores returns every stored per-field row, newest run first.
func (s *Store) GetAllFieldScores(ctx context.Context) ([]schema.FieldScoreRecord, error) {
	if !s.Enabled() {
		return nil, nil
	}

	rows, err := s.db.QueryContext(ctx, `SELECT run_id, field_key, category,
		status, existence_score, completeness_score, quality_score,
		weighted_score, max_possible_score, is_placeholder, issue_count
		FROM kbscore_field_scores ORDER BY run_id DESC, field_key ASC`)
	if err != nil {
		return nil, fmt.Errorf("query field scores: %w", err)
	}
	defer rows.Close()

	var records []schema.FieldScoreRecord
	for rows.Next() {
		var r schema.FieldScoreRecord
		err := rows.Scan(&r.RunID, &r.FieldKey, &r.Category, &r.Status,
			&r.ExistenceScore, &r.CompletenessScore, &r.QualityScore,
			&r.WeightedScore, &r.MaxPossibleScore, &r.IsPlaceholder, &r.IssueCount)
		if err != nil {
			return nil, fmt.Errorf("scan field score: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// GetStatus summarizes the contents of the store.
func (s *Store) GetStatus(ctx context.Context) (*schema.StoreStatus, error) {
	status := &schema.StoreStatus{Backend: string(s.backend)}
	if !s.Enabled() {
		return status, nil
	}
	status.Connected = true

	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM kbscore_runs`).Scan(&status.TotalRuns)
	if err != nil {
		return nil, fmt.Errorf("count runs: %w", err)
	}
	err = s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM kbscore_field_scores`).Scan(&status.TotalFieldRows)
	if err != nil {
		return nil, fmt.Errorf("count field scores: %w", err)
	}

	if status.TotalRuns > 0 {
		// Direct column selects keep the declared column type visible to
		// the SQLite driver so timestamps scan as time.Time.
		err = s.db.QueryRowContext(ctx,
			`SELECT run_id, generated_at FROM kbscore_runs ORDER BY run_id DESC LIMIT 1`).
			Scan(&status.LastRunID, &status.LastRunTime)
		if err != nil {
			return nil, fmt.Errorf("latest run: %w", err)
		}
		err = s.db.QueryRowContext(ctx,
			`SELECT generated_at FROM kbscore_runs ORDER BY run_id ASC LIMIT 1`).
			Scan(&status.OldestRunTime)
		if err != nil {
			return nil, fmt.Errorf("oldest run: %w", err)
		}
	}
	return status, nil
}

// Clear removes all stored runs and field scores.
func (s *Store) Clear(ctx context.Context) error {
	if !s.Enabled() {
		return nil
	}
	if _, err := s.db.ExecContext(ctx, `DELETE FROM kbscore_field_scores`); err != nil {
		return fmt.Errorf("clear field scores: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, `DELETE FROM kbscore_runs`); err != nil {
		return fmt.Errorf("clear runs: %w", err)
	}
	return nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
