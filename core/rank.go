package core

import (
	"fmt"
	"sort"

	"github.com/lumenkit/kbscore/schema"
)

// recommendationPriority maps field priority and status to an action
// priority. Every non-complete status lands somewhere; optional fields never
// rise above low.
func recommendationPriority(priority schema.FieldPriority, status schema.FieldStatus) schema.RecPriority {
	switch priority {
	case schema.PriorityEssential:
		if status == schema.StatusMissing || status == schema.StatusDisabled {
			return schema.RecCritical
		}
		return schema.RecHigh
	case schema.PriorityRecommended:
		if status == schema.StatusMissing {
			return schema.RecHigh
		}
		return schema.RecMedium
	default:
		return schema.RecLow
	}
}

// recommendationMessage builds the human-readable action for a field status.
func recommendationMessage(f schema.FieldQualityResult) string {
	switch f.Status {
	case schema.StatusMissing:
		return fmt.Sprintf("Configure %s", f.Label)
	case schema.StatusDisabled:
		return fmt.Sprintf("Re-enable %s", f.Label)
	case schema.StatusPlaceholder:
		return fmt.Sprintf("Replace placeholder content in %s", f.Label)
	default:
		return fmt.Sprintf("Improve %s", f.Label)
	}
}

// buildRecommendations turns every non-complete field into a prioritized
// action. EstimatedImpact is the total-score point gain available from
// completing the field: the remaining field points scaled by the category's
// fixed weight, so impacts compare directly across categories.
func buildRecommendations(fields []schema.FieldQualityResult) []schema.Recommendation {
	var recs []schema.Recommendation
	for _, f := range fields {
		if f.Status == schema.StatusComplete {
			continue
		}
		impact := f.MaxPossibleScore * (100 - f.Score) / 100 *
			float64(schema.CategoryWeights[f.Category]) / 100

		var suggestion string
		if len(f.Suggestions) > 0 {
			suggestion = f.Suggestions[0]
		}

		recs = append(recs, schema.Recommendation{
			Priority:        recommendationPriority(f.Priority, f.Status),
			FieldKey:        f.Key,
			FieldLabel:      f.Label,
			Category:        f.Category,
			Message:         recommendationMessage(f),
			Suggestion:      suggestion,
			EstimatedImpact: impact,
		})
	}

	// Fully deterministic order: impact desc, priority rank, category fixed
	// weight desc, field key asc.
	sort.Slice(recs, func(i, j int) bool {
		a, b := recs[i], recs[j]
		if a.EstimatedImpact != b.EstimatedImpact {
			return a.EstimatedImpact > b.EstimatedImpact
		}
		if ra, rb := schema.RecPriorityRank(a.Priority), schema.RecPriorityRank(b.Priority); ra != rb {
			return ra < rb
		}
		if wa, wb := schema.CategoryWeights[a.Category], schema.CategoryWeights[b.Category]; wa != wb {
			return wa > wb
		}
		return a.FieldKey < b.FieldKey
	})
	return recs
}
