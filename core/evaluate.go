package core

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/lumenkit/kbscore/schema"
)

// placeholderMarkers are case-insensitive substrings that mark filler or test
// content. Content matching any of them scores zero quality regardless of
// length.
var placeholderMarkers = []string{
	"lorem",
	"ipsum",
	"asdf",
	"qwerty",
	"placeholder",
	"sample text",
	"test test",
	"your text here",
	"fill in",
	"coming soon",
	"tbd",
	"todo",
	"xxx",
	"123456",
}

// isPlaceholderContent reports whether content matches a known filler marker.
func isPlaceholderContent(content string) bool {
	lower := strings.ToLower(content)
	for _, marker := range placeholderMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

// countKeywords returns how many required keywords appear in the content,
// case-insensitively.
func countKeywords(content string, keywords []string) int {
	lower := strings.ToLower(content)
	found := 0
	for _, kw := range keywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			found++
		}
	}
	return found
}

// clamp100 caps a score at 100. Sub-scores never go negative by construction.
func clamp100(v float64) float64 {
	if v > 100 {
		return 100
	}
	return v
}

// evaluateField scores one vertical-resolved field definition against the
// snapshot and returns its quality result. The snapshot is never mutated.
func evaluateField(field schema.ScoreableField, snap *schema.Snapshot) schema.FieldQualityResult {
	result := schema.FieldQualityResult{
		Key:              field.Key,
		Label:            field.Label,
		Category:         field.Category,
		Priority:         field.Priority,
		MaxPossibleScore: float64(field.Weight),
	}

	matches := matchRecords(snap, field.Source)

	if field.IsCountBased() {
		evaluateCountField(&result, field, matches)
	} else {
		evaluateContentField(&result, field, matches)
	}

	result.Score = (result.ExistenceScore + result.CompletenessScore + result.QualityScore) / 3
	result.WeightedScore = result.Score / 100 * float64(field.Weight)
	return result
}

// matchRecords selects the candidate records for a field's data source,
// preserving snapshot order. Record types compare case-insensitively.
func matchRecords(snap *schema.Snapshot, src schema.DataSource) []schema.Record {
	records := snap.Collection(src.Collection)
	if src.RecordType == "" {
		return records
	}
	var out []schema.Record
	for _, r := range records {
		if strings.EqualFold(r.Type, src.RecordType) {
			out = append(out, r)
		}
	}
	return out
}

// evaluateCountField scores a field on the number of active matching records.
// Quality mirrors completeness since there is no free-text content to assess.
func evaluateCountField(result *schema.FieldQualityResult, field schema.ScoreableField, matches []schema.Record) {
	active := 0
	for _, r := range matches {
		if r.IsActive {
			active++
		}
	}

	switch {
	case active == 0 && len(matches) == 0:
		result.Status = schema.StatusMissing
		addMissingIssue(result, field)
		return
	case active == 0:
		result.Status = schema.StatusDisabled
		addDisabledIssue(result, field)
		return
	}

	result.ExistenceScore = 100
	result.CompletenessScore = clamp100(100 * float64(active) / float64(field.MinCount))
	result.QualityScore = result.CompletenessScore

	if active < field.MinCount {
		result.Status = schema.StatusPartial
		addBelowMinimumIssue(result, field,
			fmt.Sprintf("%s has %d active entries; at least %d are needed", field.Label, active, field.MinCount),
			fmt.Sprintf("Add %d more entries to %s", field.MinCount-active, field.Label))
		return
	}
	result.Status = schema.StatusComplete
}

// evaluateContentField scores a field on the single matching active record.
// When several records match, the first by snapshot order wins; this is the
// documented deterministic tie-break.
func evaluateContentField(result *schema.FieldQualityResult, field schema.ScoreableField, matches []schema.Record) {
	var record *schema.Record
	for i := range matches {
		if matches[i].IsActive {
			record = &matches[i]
			break
		}
	}

	if record == nil {
		if len(matches) > 0 {
			result.Status = schema.StatusDisabled
			addDisabledIssue(result, field)
		} else {
			result.Status = schema.StatusMissing
			addMissingIssue(result, field)
		}
		return
	}

	content := strings.TrimSpace(record.Content)
	length := utf8.RuneCountInString(content)

	result.ExistenceScore = 100
	result.CompletenessScore = contentCompleteness(length, field.MinLength)
	result.IsPlaceholder = isPlaceholderContent(content)

	if result.IsPlaceholder {
		result.QualityScore = 0
		result.Status = schema.StatusPlaceholder
		result.Issues = append(result.Issues, schema.QualityIssue{
			Code:       "placeholder_content",
			Severity:   schema.SeverityCritical,
			Message:    fmt.Sprintf("%s looks like placeholder or test content", field.Label),
			Suggestion: fmt.Sprintf("Replace the filler text in %s with real configuration", field.Label),
		})
		result.Suggestions = append(result.Suggestions, fmt.Sprintf("Replace the filler text in %s with real configuration", field.Label))
		return
	}

	result.QualityScore = contentQuality(content, length, field)

	if len(field.Keywords) > 0 {
		found := countKeywords(content, field.Keywords)
		result.IsGeneric = found == 0
		for _, kw := range field.Keywords {
			if countKeywords(content, []string{kw}) == 0 {
				result.Issues = append(result.Issues, schema.QualityIssue{
					Code:       "missing_keyword",
					Severity:   schema.SeverityWarning,
					Message:    fmt.Sprintf("%s does not mention %q", field.Label, kw),
					Suggestion: fmt.Sprintf("Cover %q explicitly in %s", kw, field.Label),
				})
			}
		}
	}

	if length < field.MinLength {
		result.Status = schema.StatusPartial
		addBelowMinimumIssue(result, field,
			fmt.Sprintf("%s is %d characters; at least %d are needed", field.Label, length, field.MinLength),
			fmt.Sprintf("Expand %s with more detail", field.Label))
		return
	}
	result.Status = schema.StatusComplete
}

// contentCompleteness scores length against the minimum requirement.
func contentCompleteness(length, minLength int) float64 {
	if minLength <= 0 || length >= minLength {
		return 100
	}
	return 100 * float64(length) / float64(minLength)
}

// contentQuality combines a length curve against the ideal length with a
// keyword-presence credit. With keywords the split is 70% length, 30%
// keywords; without, length alone decides.
func contentQuality(content string, length int, field schema.ScoreableField) float64 {
	lengthQuality := 100.0
	if field.IdealLength > 0 {
		lengthQuality = clamp100(100 * float64(length) / float64(field.IdealLength))
	}

	if len(field.Keywords) == 0 {
		return lengthQuality
	}

	found := countKeywords(content, field.Keywords)
	keywordQuality := 100 * float64(found) / float64(len(field.Keywords))
	return 0.7*lengthQuality + 0.3*keywordQuality
}

// addMissingIssue records that no matching record exists at all.
func addMissingIssue(result *schema.FieldQualityResult, field schema.ScoreableField) {
	severity := schema.SeverityWarning
	if field.Priority == schema.PriorityEssential {
		severity = schema.SeverityCritical
	}
	suggestion := fmt.Sprintf("Configure %s to improve assistant readiness", field.Label)
	result.Issues = append(result.Issues, schema.QualityIssue{
		Code:       "not_configured",
		Severity:   severity,
		Message:    fmt.Sprintf("%s is not configured", field.Label),
		Suggestion: suggestion,
	})
	result.Suggestions = append(result.Suggestions, suggestion)
}

// addDisabledIssue records that matches exist but none are active.
func addDisabledIssue(result *schema.FieldQualityResult, field schema.ScoreableField) {
	suggestion := fmt.Sprintf("Re-enable %s or replace it with an active entry", field.Label)
	result.Issues = append(result.Issues, schema.QualityIssue{
		Code:       "disabled_record",
		Severity:   schema.SeverityInfo,
		Message:    fmt.Sprintf("%s exists but every matching entry is inactive", field.Label),
		Suggestion: suggestion,
	})
	result.Suggestions = append(result.Suggestions, suggestion)
}

// addBelowMinimumIssue records a partial field. Essential fields escalate to
// critical severity.
func addBelowMinimumIssue(result *schema.FieldQualityResult, field schema.ScoreableField, message, suggestion string) {
	severity := schema.SeverityWarning
	if field.Priority == schema.PriorityEssential {
		severity = schema.SeverityCritical
	}
	result.Issues = append(result.Issues, schema.QualityIssue{
		Code:       "below_minimum",
		Severity:   severity,
		Message:    message,
		Suggestion: suggestion,
	})
	result.Suggestions = append(result.Suggestions, suggestion)
}
