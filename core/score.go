// Package core has the field catalog, evaluator, aggregation and ranking
// logic for knowledge-base readiness scoring.
package core

import (
	"time"

	"github.com/lumenkit/kbscore/schema"
)

// ScoreKnowledgeBase computes the readiness score for a snapshot and
// vertical. It is a pure function of its inputs plus the supplied timestamp:
// the catalog is resolved for the vertical, every field is evaluated,
// categories are aggregated, and recommendations are ranked. The snapshot is
// never mutated and no I/O happens here.
func ScoreKnowledgeBase(snap *schema.Snapshot, vertical schema.Vertical, now time.Time) *schema.ScoringResult {
	resolved := GetFieldsForVertical(vertical)

	fields := make([]schema.FieldQualityResult, 0, len(resolved))
	for _, f := range resolved {
		fields = append(fields, evaluateField(f, snap))
	}

	categories := aggregateCategories(fields)
	total := totalScore(categories)

	return &schema.ScoringResult{
		TotalScore:      total,
		Status:          schema.ScoreToStatus(total),
		Categories:      categories,
		Fields:          fields,
		Summary:         summarize(fields),
		Recommendations: buildRecommendations(fields),
		Vertical:        vertical,
		GeneratedAt:     now,
		SchemaVersion:   schema.ResultSchemaVersion,
	}
}
