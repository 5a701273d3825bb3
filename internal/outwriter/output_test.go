package outwriter

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/lumenkit/kbscore/internal/contract"
	"github.com/lumenkit/kbscore/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResult() *schema.ScoringResult {
	return &schema.ScoringResult{
		TotalScore:    72.5,
		Status:        schema.StatusGood,
		Vertical:      schema.VerticalGeneric,
		GeneratedAt:   time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC),
		SchemaVersion: schema.ResultSchemaVersion,
		Categories: []schema.CategoryScore{
			{Category: schema.CategoryCoreData, Score: 80, MaxScore: 30, EarnedPoints: 22.4, PossiblePoints: 28, FieldCount: 4, CompletedFields: 3, Status: schema.StatusGood},
		},
		Fields: []schema.FieldQualityResult{
			{
				Key: "business_identity", Label: "Business identity", Category: schema.CategoryCoreData,
				Priority: schema.PriorityEssential, Status: schema.StatusComplete,
				ExistenceScore: 100, CompletenessScore: 100, QualityScore: 90,
				Score: 96.7, WeightedScore: 9.7, MaxPossibleScore: 10,
			},
			{
				Key: "welcome_message", Label: "Welcome message", Category: schema.CategoryPersonality,
				Priority: schema.PriorityEssential, Status: schema.StatusMissing,
				MaxPossibleScore: 6, IsGeneric: false,
				Issues: []schema.QualityIssue{{Code: "not_configured", Severity: schema.SeverityCritical}},
			},
		},
		Summary: schema.ScoringSummary{TotalFields: 2, CompletedFields: 1, FieldsWithIssues: 1, CriticalMissing: 1},
		Recommendations: []schema.Recommendation{
			{Priority: schema.RecCritical, FieldKey: "welcome_message", FieldLabel: "Welcome message",
				Category: schema.CategoryPersonality, Message: "Configure Welcome message", EstimatedImpact: 1.5},
		},
	}
}

func textConfig() *contract.Config {
	return &contract.Config{
		Vertical:    schema.VerticalGeneric,
		ResultLimit: 10,
		Precision:   1,
		Output:      schema.TextOut,
		Width:       120,
	}
}

func TestWriteResultCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeResultCSV(&buf, sampleResult(), createFloatFormatter(1)))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3, "header plus one row per field")

	assert.Equal(t, "key", rows[0][0])
	assert.Equal(t, "business_identity", rows[1][0])
	assert.Equal(t, "complete", rows[1][4])
	assert.Equal(t, "96.7", rows[1][8])
	assert.Equal(t, "welcome_message", rows[2][0])
	assert.Equal(t, "1", rows[2][13], "issue count lands in the last column")
}

func TestWriteResultTables(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeResultTables(&buf, sampleResult(), textConfig(), createFloatFormatter(1), 5*time.Millisecond))

	out := buf.String()
	assert.Contains(t, out, "Knowledge base readiness: 72.5/100")
	assert.Contains(t, out, "Core Data")
	assert.Contains(t, out, "Business identity")
	assert.Contains(t, out, "Top 1 recommendations:")
	assert.Contains(t, out, "Configure Welcome message")
	assert.Contains(t, out, "Schema version: 1.0")
}

func TestWriteResultJSONRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeJSON(&buf, sampleResult()))

	var decoded schema.ScoringResult
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.InDelta(t, 72.5, decoded.TotalScore, 0.001)
	assert.Len(t, decoded.Fields, 2)
}

func TestWriteCatalogCSV(t *testing.T) {
	fields := []schema.ScoreableField{
		{Key: "faq_articles", Label: "FAQ articles", Category: schema.CategoryKnowledge,
			Weight: 8, Priority: schema.PriorityEssential, MinCount: 5,
			Source: schema.DataSource{Collection: schema.CollectionArticles, RecordType: "faq"}},
	}

	var buf bytes.Buffer
	require.NoError(t, writeCatalogCSV(&buf, fields))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "faq_articles", rows[1][0])
	assert.Equal(t, "5", rows[1][7])
	assert.Equal(t, "articles", rows[1][8])
	assert.Equal(t, "faq", rows[1][9])
}

func TestRequirementText(t *testing.T) {
	assert.Equal(t, ">=5 entries", requirementText(schema.ScoreableField{MinCount: 5}))
	assert.Equal(t, ">=60 chars (ideal 300)", requirementText(schema.ScoreableField{MinLength: 60, IdealLength: 300}))
	assert.Equal(t, ">=20 chars", requirementText(schema.ScoreableField{MinLength: 20}))
}

func TestSourceText(t *testing.T) {
	assert.Equal(t, "articles[faq]", sourceText(schema.DataSource{Collection: schema.CollectionArticles, RecordType: "faq"}))
	assert.Equal(t, "services", sourceText(schema.DataSource{Collection: schema.CollectionServices}))
}

func TestCreateFloatFormatter(t *testing.T) {
	assert.Equal(t, "3.14", createFloatFormatter(2)(3.14159))
	assert.Equal(t, "72.5", createFloatFormatter(1)(72.5))
}

func TestGetMaxLabelWidth(t *testing.T) {
	tests := []struct {
		name     string
		width    int
		expected int
	}{
		{"wide terminal caps at default", 200, defaultLabelWidth},
		{"narrow terminal floors at minimum", 50, minLabelWidth},
		{"mid-size terminal subtracts fixed budget", 90, 30},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, getMaxLabelWidth(tt.width))
		})
	}
}

func TestWriteRecommendationTableHonorsLimit(t *testing.T) {
	fmtFloat := createFloatFormatter(1)
	recs := []schema.Recommendation{
		{Priority: schema.RecCritical, Message: "Configure A", EstimatedImpact: 3},
		{Priority: schema.RecHigh, Message: "Configure B", EstimatedImpact: 2},
		{Priority: schema.RecLow, Message: "Configure C", EstimatedImpact: 1},
	}
	cfg := textConfig()
	cfg.ResultLimit = 2

	var buf bytes.Buffer
	require.NoError(t, writeRecommendationTable(&buf, recs, cfg, fmtFloat))

	out := buf.String()
	assert.Contains(t, out, "Top 2 recommendations:")
	assert.Contains(t, out, "Configure A")
	assert.Contains(t, out, "Configure B")
	assert.False(t, strings.Contains(out, "Configure C"))
}
