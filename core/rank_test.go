package core

import (
	"testing"

	"github.com/lumenkit/kbscore/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRecommendationPriority tests the priority mapping table.
func TestRecommendationPriority(t *testing.T) {
	tests := []struct {
		name     string
		priority schema.FieldPriority
		status   schema.FieldStatus
		expected schema.RecPriority
	}{
		{name: "essential missing", priority: schema.PriorityEssential, status: schema.StatusMissing, expected: schema.RecCritical},
		{name: "essential disabled", priority: schema.PriorityEssential, status: schema.StatusDisabled, expected: schema.RecCritical},
		{name: "essential partial", priority: schema.PriorityEssential, status: schema.StatusPartial, expected: schema.RecHigh},
		{name: "essential placeholder", priority: schema.PriorityEssential, status: schema.StatusPlaceholder, expected: schema.RecHigh},
		{name: "recommended missing", priority: schema.PriorityRecommended, status: schema.StatusMissing, expected: schema.RecHigh},
		{name: "recommended partial", priority: schema.PriorityRecommended, status: schema.StatusPartial, expected: schema.RecMedium},
		{name: "optional missing", priority: schema.PriorityOptional, status: schema.StatusMissing, expected: schema.RecLow},
		{name: "optional placeholder", priority: schema.PriorityOptional, status: schema.StatusPlaceholder, expected: schema.RecLow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, recommendationPriority(tt.priority, tt.status))
		})
	}
}

// TestBuildRecommendations tests recommendation construction and ordering.
func TestBuildRecommendations(t *testing.T) {
	fields := []schema.FieldQualityResult{
		{Key: "done", Label: "Done", Category: schema.CategoryCoreData, Priority: schema.PriorityEssential,
			Status: schema.StatusComplete, Score: 100, MaxPossibleScore: 10},
		{Key: "big_gap", Label: "Big gap", Category: schema.CategoryCoreData, Priority: schema.PriorityEssential,
			Status: schema.StatusMissing, Score: 0, MaxPossibleScore: 10,
			Suggestions: []string{"Configure Big gap to improve assistant readiness"}},
		{Key: "small_gap", Label: "Small gap", Category: schema.CategoryAdvanced, Priority: schema.PriorityOptional,
			Status: schema.StatusPartial, Score: 50, MaxPossibleScore: 4},
	}

	recs := buildRecommendations(fields)
	require.Len(t, recs, 2, "complete fields never produce recommendations")

	t.Run("impact ordering", func(t *testing.T) {
		// big_gap: 10 * 1.0 * 0.30 = 3.0; small_gap: 4 * 0.5 * 0.10 = 0.2
		assert.Equal(t, "big_gap", recs[0].FieldKey)
		assert.InDelta(t, 3.0, recs[0].EstimatedImpact, 0.001)
		assert.Equal(t, "small_gap", recs[1].FieldKey)
		assert.InDelta(t, 0.2, recs[1].EstimatedImpact, 0.001)
	})

	t.Run("messages and suggestions carry over", func(t *testing.T) {
		assert.Equal(t, "Configure Big gap", recs[0].Message)
		assert.Equal(t, "Configure Big gap to improve assistant readiness", recs[0].Suggestion)
		assert.Equal(t, "Improve Small gap", recs[1].Message)
		assert.Empty(t, recs[1].Suggestion)
	})

	t.Run("priorities assigned", func(t *testing.T) {
		assert.Equal(t, schema.RecCritical, recs[0].Priority)
		assert.Equal(t, schema.RecLow, recs[1].Priority)
	})
}

// TestBuildRecommendationsTieBreaks tests the deterministic sort chain.
func TestBuildRecommendationsTieBreaks(t *testing.T) {
	// Same impact, same priority rank, same category weight: key decides.
	fields := []schema.FieldQualityResult{
		{Key: "beta", Label: "Beta", Category: schema.CategoryKnowledge, Priority: schema.PriorityOptional,
			Status: schema.StatusMissing, Score: 0, MaxPossibleScore: 4},
		{Key: "alpha", Label: "Alpha", Category: schema.CategoryKnowledge, Priority: schema.PriorityOptional,
			Status: schema.StatusMissing, Score: 0, MaxPossibleScore: 4},
	}

	recs := buildRecommendations(fields)
	require.Len(t, recs, 2)
	assert.Equal(t, "alpha", recs[0].FieldKey)
	assert.Equal(t, "beta", recs[1].FieldKey)

	// Priority rank breaks ties before category weight.
	fields = []schema.FieldQualityResult{
		{Key: "opt", Label: "Opt", Category: schema.CategoryCoreData, Priority: schema.PriorityOptional,
			Status: schema.StatusMissing, Score: 0, MaxPossibleScore: 2},
		{Key: "ess", Label: "Ess", Category: schema.CategoryAdvanced, Priority: schema.PriorityEssential,
			Status: schema.StatusMissing, Score: 0, MaxPossibleScore: 6},
	}
	// opt impact: 2 * 1.0 * 0.30 = 0.6; ess impact: 6 * 1.0 * 0.10 = 0.6
	recs = buildRecommendations(fields)
	require.Len(t, recs, 2)
	assert.Equal(t, "ess", recs[0].FieldKey, "critical priority outranks equal impact")
}
