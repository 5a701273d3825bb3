package schema

import "time"

// StoreStatus represents the status of the result store.
type StoreStatus struct {
	Backend        string    `json:"backend"`
	Connected      bool      `json:"connected"`
	TotalRuns      int       `json:"total_runs"`
	LastRunID      int64     `json:"last_run_id"`
	LastRunTime    time.Time `json:"last_run_time"`
	OldestRunTime  time.Time `json:"oldest_run_time"`
	TotalFieldRows int       `json:"total_field_rows"`
}

// RunRecord represents a row from the kbscore_runs table.
type RunRecord struct {
	RunID             int64
	Vertical          string
	TotalScore        float64
	Status            string
	GeneratedAt       time.Time
	SchemaVersion     string
	TotalFields       int32
	CompletedFields   int32
	CriticalMissing   int32
	PlaceholderFields int32
}

// FieldScoreRecord represents a row from the kbscore_field_scores table.
type FieldScoreRecord struct {
	RunID             int64
	FieldKey          string
	Category          string
	Status            string
	ExistenceScore    float64
	CompletenessScore float64
	QualityScore      float64
	WeightedScore     float64
	MaxPossibleScore  float64
	IsPlaceholder     bool
	IssueCount        int32
}
