package core

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/lumenkit/kbscore/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func addRecord(snap *schema.Snapshot, collection schema.CollectionName, r schema.Record) {
	switch collection {
	case schema.CollectionInstructions:
		snap.Instructions = append(snap.Instructions, r)
	case schema.CollectionPolicies:
		snap.Policies = append(snap.Policies, r)
	case schema.CollectionArticles:
		snap.Articles = append(snap.Articles, r)
	case schema.CollectionTemplates:
		snap.Templates = append(snap.Templates, r)
	case schema.CollectionCompetitors:
		snap.Competitors = append(snap.Competitors, r)
	case schema.CollectionServices:
		snap.Services = append(snap.Services, r)
	case schema.CollectionBranches:
		snap.Branches = append(snap.Branches, r)
	case schema.CollectionStaff:
		snap.Staff = append(snap.Staff, r)
	}
}

// fullSnapshot builds a snapshot that satisfies every catalog requirement for
// the vertical: ideal-length content with all keywords for content fields,
// and the minimum number of active records for count fields.
func fullSnapshot(vertical schema.Vertical) *schema.Snapshot {
	snap := &schema.Snapshot{}
	for _, f := range GetFieldsForVertical(vertical) {
		if f.IsCountBased() {
			for i := range f.MinCount {
				addRecord(snap, f.Source.Collection, schema.Record{
					ID:       fmt.Sprintf("%s-%d", f.Key, i),
					Type:     f.Source.RecordType,
					Title:    f.Label,
					IsActive: true,
				})
			}
			continue
		}
		content := strings.Join(f.Keywords, " ") + " " + strings.Repeat("z", f.IdealLength)
		addRecord(snap, f.Source.Collection, schema.Record{
			ID:       f.Key,
			Type:     f.Source.RecordType,
			Title:    f.Label,
			Content:  content,
			IsActive: true,
		})
	}
	return snap
}

// TestScoreKnowledgeBaseEmptySnapshot tests the floor of the scoring range.
func TestScoreKnowledgeBaseEmptySnapshot(t *testing.T) {
	now := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	result := ScoreKnowledgeBase(&schema.Snapshot{}, schema.VerticalGeneric, now)

	assert.InDelta(t, 0.0, result.TotalScore, 0.001)
	assert.Equal(t, schema.StatusCritical, result.Status)
	assert.Equal(t, now, result.GeneratedAt)
	assert.Equal(t, schema.ResultSchemaVersion, result.SchemaVersion)
	assert.Equal(t, schema.VerticalGeneric, result.Vertical)

	for _, f := range result.Fields {
		assert.Equal(t, schema.StatusMissing, f.Status, "field %s", f.Key)
	}

	essential := 0
	for _, f := range GetFieldsForVertical(schema.VerticalGeneric) {
		if f.Priority == schema.PriorityEssential {
			essential++
		}
	}
	assert.Equal(t, essential, result.Summary.CriticalMissing)
	assert.Len(t, result.Recommendations, len(result.Fields), "every field needs attention")
}

// TestScoreKnowledgeBaseFullSnapshot tests the ceiling of the scoring range.
func TestScoreKnowledgeBaseFullSnapshot(t *testing.T) {
	for _, vertical := range []schema.Vertical{schema.VerticalGeneric, schema.VerticalRestaurant, schema.VerticalDentalClinic} {
		t.Run(string(vertical), func(t *testing.T) {
			result := ScoreKnowledgeBase(fullSnapshot(vertical), vertical, time.Now())

			assert.InDelta(t, 100.0, result.TotalScore, 0.001)
			assert.Equal(t, schema.StatusExcellent, result.Status)
			assert.Empty(t, result.Recommendations)

			for _, f := range result.Fields {
				assert.Equal(t, schema.StatusComplete, f.Status, "field %s", f.Key)
			}
			assert.Equal(t, result.Summary.TotalFields, result.Summary.CompletedFields)
		})
	}
}

// TestScoreKnowledgeBaseDeterminism tests that identical inputs produce
// identical results.
func TestScoreKnowledgeBaseDeterminism(t *testing.T) {
	snap := fullSnapshot(schema.VerticalGeneric)
	// Degrade one field so recommendations are non-empty.
	snap.Articles = nil

	now := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	first := ScoreKnowledgeBase(snap, schema.VerticalGeneric, now)
	second := ScoreKnowledgeBase(snap, schema.VerticalGeneric, now)

	assert.Equal(t, first, second)
	assert.NotEmpty(t, first.Recommendations)
}

// TestScoreKnowledgeBaseBounds tests the result range on partial snapshots.
func TestScoreKnowledgeBaseBounds(t *testing.T) {
	snap := fullSnapshot(schema.VerticalGeneric)
	snap.Policies = nil
	snap.Staff = nil

	result := ScoreKnowledgeBase(snap, schema.VerticalGeneric, time.Now())
	assert.Greater(t, result.TotalScore, 0.0)
	assert.Less(t, result.TotalScore, 100.0)

	// Only competitor_rules (weight 5 of 20) survives in policies.
	policies, ok := result.CategoryByName(schema.CategoryPolicies)
	require.True(t, ok)
	assert.Equal(t, 25, policies.Score)
}

// TestScoreKnowledgeBaseVerticalOverrides tests that overrides change the
// outcome for the same snapshot.
func TestScoreKnowledgeBaseVerticalOverrides(t *testing.T) {
	// Three services satisfy the generic catalog but not the restaurant
	// catalog, which demands ten menu items.
	snap := fullSnapshot(schema.VerticalGeneric)

	generic := ScoreKnowledgeBase(snap, schema.VerticalGeneric, time.Now())
	restaurant := ScoreKnowledgeBase(snap, schema.VerticalRestaurant, time.Now())

	assert.InDelta(t, 100.0, generic.TotalScore, 0.001)
	assert.Less(t, restaurant.TotalScore, 100.0)

	var menu *schema.FieldQualityResult
	for i := range restaurant.Fields {
		if restaurant.Fields[i].Key == "services_list" {
			menu = &restaurant.Fields[i]
		}
	}
	require.NotNil(t, menu)
	assert.Equal(t, "Menu items", menu.Label)
	assert.Equal(t, schema.StatusPartial, menu.Status)
}
