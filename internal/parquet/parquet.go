// Package parquet exports scoring data to Parquet files using
// github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/lumenkit/kbscore/schema"
	"github.com/parquet-go/parquet-go"
)

// ScoringRun represents one persisted scoring run with metadata.
// This struct maps to the kbscore_runs database table.
type ScoringRun struct {
	// RunID is the unique identifier for this scoring run
	RunID int64 `parquet:"run_id,snappy"`

	// Vertical is the business vertical the catalog was resolved for
	Vertical string `parquet:"vertical,snappy"`

	// TotalScore is the weighted total score (0-100)
	TotalScore float64 `parquet:"total_score,snappy"`

	// Status is the health label derived from the total score
	Status string `parquet:"status,snappy"`

	// GeneratedAt is when the run was computed
	GeneratedAt time.Time `parquet:"generated_at,snappy"`

	// SchemaVersion tags the result layout for downstream consumers
	SchemaVersion string `parquet:"schema_version,snappy"`

	// TotalFields is the number of catalog fields evaluated
	TotalFields int32 `parquet:"total_fields,snappy"`

	// CompletedFields is the number of fields with status complete
	CompletedFields int32 `parquet:"completed_fields,snappy"`

	// CriticalMissing counts essential fields with status missing
	CriticalMissing int32 `parquet:"critical_missing,snappy"`

	// PlaceholderFields counts fields flagged as placeholder content
	PlaceholderFields int32 `parquet:"placeholder_fields,snappy"`
}

// FieldScore represents one evaluated field in a scoring run.
// This struct maps to the kbscore_field_scores database table.
type FieldScore struct {
	// RunID references the parent scoring run (0 for unpersisted exports)
	RunID int64 `parquet:"run_id,snappy"`

	// FieldKey is the catalog key of the evaluated field
	FieldKey string `parquet:"field_key,snappy"`

	// Category is the field's category
	Category string `parquet:"category,snappy"`

	// Status is the evaluated field status
	Status string `parquet:"status,snappy"`

	// ExistenceScore is the 0-or-100 existence sub-score
	ExistenceScore float64 `parquet:"existence_score,snappy"`

	// CompletenessScore is the 0-100 completeness sub-score
	CompletenessScore float64 `parquet:"completeness_score,snappy"`

	// QualityScore is the 0-100 quality sub-score
	QualityScore float64 `parquet:"quality_score,snappy"`

	// WeightedScore is the points earned toward the category
	WeightedScore float64 `parquet:"weighted_score,snappy"`

	// MaxPossibleScore equals the resolved field weight
	MaxPossibleScore float64 `parquet:"max_possible_score,snappy"`

	// IsPlaceholder flags detected filler content
	IsPlaceholder bool `parquet:"is_placeholder,snappy"`

	// IssueCount is the number of quality issues attached to the field
	IssueCount int32 `parquet:"issue_count,snappy"`
}

// ConvertFieldResults flattens a scoring result into parquet field rows.
func ConvertFieldResults(result *schema.ScoringResult) []FieldScore {
	rows := make([]FieldScore, 0, len(result.Fields))
	for _, f := range result.Fields {
		rows = append(rows, FieldScore{
			FieldKey:          f.Key,
			Category:          string(f.Category),
			Status:            string(f.Status),
			ExistenceScore:    f.ExistenceScore,
			CompletenessScore: f.CompletenessScore,
			QualityScore:      f.QualityScore,
			WeightedScore:     f.WeightedScore,
			MaxPossibleScore:  f.MaxPossibleScore,
			IsPlaceholder:     f.IsPlaceholder,
			IssueCount:        int32(len(f.Issues)),
		})
	}
	return rows
}

// ConvertRunRecords converts stored run rows to parquet rows.
func ConvertRunRecords(records []schema.RunRecord) []ScoringRun {
	rows := make([]ScoringRun, 0, len(records))
	for _, r := range records {
		rows = append(rows, ScoringRun{
			RunID:             r.RunID,
			Vertical:          r.Vertical,
			TotalScore:        r.TotalScore,
			Status:            r.Status,
			GeneratedAt:       r.GeneratedAt,
			SchemaVersion:     r.SchemaVersion,
			TotalFields:       r.TotalFields,
			CompletedFields:   r.CompletedFields,
			CriticalMissing:   r.CriticalMissing,
			PlaceholderFields: r.PlaceholderFields,
		})
	}
	return rows
}

// ConvertFieldScoreRecords converts stored field score rows to parquet rows.
func ConvertFieldScoreRecords(records []schema.FieldScoreRecord) []FieldScore {
	rows := make([]FieldScore, 0, len(records))
	for _, r := range records {
		rows = append(rows, FieldScore{
			RunID:             r.RunID,
			FieldKey:          r.FieldKey,
			Category:          r.Category,
			Status:            r.Status,
			ExistenceScore:    r.ExistenceScore,
			CompletenessScore: r.CompletenessScore,
			QualityScore:      r.QualityScore,
			WeightedScore:     r.WeightedScore,
			MaxPossibleScore:  r.MaxPossibleScore,
			IsPlaceholder:     r.IsPlaceholder,
			IssueCount:        r.IssueCount,
		})
	}
	return rows
}

// WriteScoringRunsParquet writes scoring runs to a Parquet file.
func WriteScoringRunsParquet(runs []ScoringRun, filename string) error {
	return writeParquet(runs, filename, "scoring runs")
}

// WriteFieldScoresParquet writes field scores to a Parquet file.
func WriteFieldScoresParquet(rows []FieldScore, filename string) error {
	return writeParquet(rows, filename, "field scores")
}

// writeParquet handles the common open/write/close flow.
func writeParquet[T any](rows []T, filename, what string) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create %s file: %w", what, err)
	}

	writer := parquet.NewGenericWriter[T](f)
	if _, err := writer.Write(rows); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write %s: %w", what, err)
	}
	if err := writer.Close(); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to finalize %s file: %w", what, err)
	}
	return f.Close()
}
