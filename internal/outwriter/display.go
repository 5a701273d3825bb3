package outwriter

import (
	"github.com/fatih/color"
	"github.com/lumenkit/kbscore/schema"
)

// Display mappings are pure presentation concerns. Every function here is
// total: unrecognized values fall through to an explicit default so a new
// status can never panic the writer.

var (
	completeColor    = color.New(color.FgGreen)
	partialColor     = color.New(color.FgYellow)
	placeholderColor = color.New(color.FgMagenta)
	disabledColor    = color.New(color.FgHiBlack)
	missingColor     = color.New(color.FgRed)
)

// StatusIcon returns a single-character marker for a field status.
func StatusIcon(s schema.FieldStatus) string {
	switch s {
	case schema.StatusComplete:
		return "+"
	case schema.StatusPartial:
		return "~"
	case schema.StatusPlaceholder:
		return "!"
	case schema.StatusDisabled:
		return "o"
	case schema.StatusMissing:
		return "-"
	default:
		return "?"
	}
}

// StatusLabel returns a colored field status for table output, or the plain
// string when colors are disabled.
func StatusLabel(s schema.FieldStatus, useColors bool) string {
	text := string(s)
	if !useColors {
		return text
	}
	switch s {
	case schema.StatusComplete:
		return completeColor.Sprint(text)
	case schema.StatusPartial:
		return partialColor.Sprint(text)
	case schema.StatusPlaceholder:
		return placeholderColor.Sprint(text)
	case schema.StatusDisabled:
		return disabledColor.Sprint(text)
	case schema.StatusMissing:
		return missingColor.Sprint(text)
	default:
		return text
	}
}

// CategoryTitle returns the display name of a category.
func CategoryTitle(c schema.Category) string {
	switch c {
	case schema.CategoryCoreData:
		return "Core Data"
	case schema.CategoryPersonality:
		return "Personality"
	case schema.CategoryPolicies:
		return "Policies"
	case schema.CategoryKnowledge:
		return "Knowledge"
	case schema.CategoryAdvanced:
		return "Advanced"
	default:
		return string(c)
	}
}

// PriorityLabel returns a colored recommendation priority, or the plain
// string when colors are disabled.
func PriorityLabel(p schema.RecPriority, useColors bool) string {
	text := string(p)
	if !useColors {
		return text
	}
	switch p {
	case schema.RecCritical:
		return missingColor.Sprint(text)
	case schema.RecHigh:
		return placeholderColor.Sprint(text)
	case schema.RecMedium:
		return partialColor.Sprint(text)
	case schema.RecLow:
		return disabledColor.Sprint(text)
	default:
		return text
	}
}
