package contract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPlainLabel(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected string
	}{
		{
			name:     "smallest value possible",
			input:    0.0,
			expected: "Critical",
		},
		{
			name:     "just before needs work",
			input:    49.9,
			expected: "Critical",
		},
		{
			name:     "exactly needs work",
			input:    50.0,
			expected: "Needs Work",
		},
		{
			name:     "just before good",
			input:    69.9,
			expected: "Needs Work",
		},
		{
			name:     "exactly good",
			input:    70.0,
			expected: "Good",
		},
		{
			name:     "just before excellent",
			input:    89.9,
			expected: "Good",
		},
		{
			name:     "exactly excellent",
			input:    90.0,
			expected: "Excellent",
		},
		{
			name:     "largest value possible",
			input:    100.0,
			expected: "Excellent",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetPlainLabel(tt.input))
		})
	}
}

func TestGetColorLabel(t *testing.T) {
	// Colored output still carries the plain label text.
	tests := []struct {
		name  string
		score float64
		label string
	}{
		{"critical", 30, "Critical"},
		{"needs work", 55, "Needs Work"},
		{"good", 75, "Good"},
		{"excellent", 95, "Excellent"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, GetColorLabel(tt.score), tt.label)
		})
	}
}

func TestTruncateLabel(t *testing.T) {
	tests := []struct {
		name     string
		label    string
		maxWidth int
		expected string
	}{
		{"shorter than limit", "welcome", 20, "welcome"},
		{"exactly at limit", "welcome", 7, "welcome"},
		{"truncated with ellipsis", "cancellation_policy", 10, "cancell..."},
		{"width too small to truncate", "welcome_message", 3, "welcome_message"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TruncateLabel(tt.label, tt.maxWidth))
		})
	}
}

func TestParseBoolString(t *testing.T) {
	truthy := []string{"yes", "YES", "true", "True", "1"}
	for _, s := range truthy {
		v, err := ParseBoolString(s)
		require.NoError(t, err, s)
		assert.True(t, v, s)
	}

	falsy := []string{"no", "No", "false", "FALSE", "0"}
	for _, s := range falsy {
		v, err := ParseBoolString(s)
		require.NoError(t, err, s)
		assert.False(t, v, s)
	}

	_, err := ParseBoolString("maybe")
	assert.Error(t, err)
}

func TestGetResultsDBFilePath(t *testing.T) {
	path := GetResultsDBFilePath()
	assert.Contains(t, path, ".kbscore_results.db")
}
