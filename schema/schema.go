// Package schema has the data model, constants and statuses for all parts of kbscore.
package schema

import "time"

// QualityIssue is one detected problem on an evaluated field. Issues belong
// to exactly one FieldQualityResult and are never shared across fields.
type QualityIssue struct {
	Code       string        `json:"code"`
	Severity   IssueSeverity `json:"severity"`
	Message    string        `json:"message"`
	Suggestion string        `json:"suggestion,omitempty"`
}

// FieldQualityResult is the evaluated outcome for one catalog field.
// It is created fresh on every scoring run and never mutated afterwards.
type FieldQualityResult struct {
	Key               string         `json:"key"`
	Label             string         `json:"label"`
	Category          Category       `json:"category"`
	Priority          FieldPriority  `json:"priority"`
	Status            FieldStatus    `json:"status"`
	ExistenceScore    float64        `json:"existence_score"`
	CompletenessScore float64        `json:"completeness_score"`
	QualityScore      float64        `json:"quality_score"`
	Score             float64        `json:"score"`              // mean of the three sub-scores, 0-100
	WeightedScore     float64        `json:"weighted_score"`     // points earned toward the category
	MaxPossibleScore  float64        `json:"max_possible_score"` // equals the resolved field weight
	IsPlaceholder     bool           `json:"is_placeholder"`
	IsGeneric         bool           `json:"is_generic"`
	Issues            []QualityIssue `json:"issues,omitempty"`
	Suggestions       []string       `json:"suggestions,omitempty"`
}

// CategoryScore is the aggregated view of one category.
// MaxScore is the category's fixed percentage weight toward the total.
type CategoryScore struct {
	Category        Category       `json:"category"`
	Score           int            `json:"score"` // 0-100
	MaxScore        int            `json:"max_score"`
	EarnedPoints    float64        `json:"earned_points"`
	PossiblePoints  float64        `json:"possible_points"`
	FieldCount      int            `json:"field_count"`
	CompletedFields int            `json:"completed_fields"`
	Status          CategoryStatus `json:"status"`
}

// Recommendation is one prioritized improvement action derived from a
// non-complete field. EstimatedImpact is expressed in total-score points so
// impacts are directly comparable across categories.
type Recommendation struct {
	Priority        RecPriority `json:"priority"`
	FieldKey        string      `json:"field_key"`
	FieldLabel      string      `json:"field_label"`
	Category        Category    `json:"category"`
	Message         string      `json:"message"`
	Suggestion      string      `json:"suggestion,omitempty"`
	EstimatedImpact float64     `json:"estimated_impact"`
}

// ScoringSummary holds run-level counts for reporting.
type ScoringSummary struct {
	TotalFields       int `json:"total_fields"`
	CompletedFields   int `json:"completed_fields"`
	FieldsWithIssues  int `json:"fields_with_issues"`
	CriticalMissing   int `json:"critical_missing"`
	PlaceholderFields int `json:"placeholder_fields"`
}

// ScoringResult is the top-level output of a scoring run. Categories always
// contains one entry per category in AllCategories order, never a partial set.
type ScoringResult struct {
	TotalScore      float64              `json:"total_score"`
	Status          CategoryStatus       `json:"status"`
	Categories      []CategoryScore      `json:"categories"`
	Fields          []FieldQualityResult `json:"fields"`
	Summary         ScoringSummary       `json:"summary"`
	Recommendations []Recommendation     `json:"recommendations"`
	Vertical        Vertical             `json:"vertical"`
	GeneratedAt     time.Time            `json:"generated_at"`
	SchemaVersion   string               `json:"schema_version"`
}

// CategoryByName returns the aggregated score entry for one category.
// The second return is false when the category is unknown.
func (r *ScoringResult) CategoryByName(c Category) (CategoryScore, bool) {
	for _, cs := range r.Categories {
		if cs.Category == c {
			return cs, true
		}
	}
	return CategoryScore{}, false
}
