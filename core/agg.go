package core

import (
	"math"

	"github.com/lumenkit/kbscore/schema"
)

// aggregateCategories rolls per-field results into one CategoryScore per
// category, in schema.AllCategories order. A category with zero possible
// points for this vertical scores 100: it is vacuously satisfied, not a
// division-by-zero fault.
func aggregateCategories(fields []schema.FieldQualityResult) []schema.CategoryScore {
	byCategory := make(map[schema.Category][]schema.FieldQualityResult)
	for _, f := range fields {
		byCategory[f.Category] = append(byCategory[f.Category], f)
	}

	scores := make([]schema.CategoryScore, 0, len(schema.AllCategories))
	for _, cat := range schema.AllCategories {
		cs := schema.CategoryScore{
			Category: cat,
			MaxScore: schema.CategoryWeights[cat],
		}
		for _, f := range byCategory[cat] {
			cs.EarnedPoints += f.WeightedScore
			cs.PossiblePoints += f.MaxPossibleScore
			cs.FieldCount++
			if f.Status == schema.StatusComplete {
				cs.CompletedFields++
			}
		}
		if cs.PossiblePoints == 0 {
			cs.Score = 100
		} else {
			cs.Score = int(math.Round(100 * cs.EarnedPoints / cs.PossiblePoints))
		}
		cs.Status = schema.ScoreToStatus(float64(cs.Score))
		scores = append(scores, cs)
	}
	return scores
}

// totalScore combines category scores using the fixed percentage weights.
// The result is always in [0,100] because the weights sum to 100.
func totalScore(categories []schema.CategoryScore) float64 {
	var total float64
	for _, cs := range categories {
		total += float64(cs.Score) * float64(schema.CategoryWeights[cs.Category]) / 100
	}
	return total
}

// summarize computes the run-level statistics used for reporting.
func summarize(fields []schema.FieldQualityResult) schema.ScoringSummary {
	s := schema.ScoringSummary{TotalFields: len(fields)}
	for _, f := range fields {
		if f.Status == schema.StatusComplete {
			s.CompletedFields++
		}
		if len(f.Issues) > 0 {
			s.FieldsWithIssues++
		}
		if f.Status == schema.StatusMissing && f.Priority == schema.PriorityEssential {
			s.CriticalMissing++
		}
		if f.IsPlaceholder {
			s.PlaceholderFields++
		}
	}
	return s
}
