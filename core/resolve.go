package core

import "github.com/lumenkit/kbscore/schema"

// resolveField shallow-merges the override registered for the vertical on top
// of the base definition. Each overridden attribute is replaced wholesale; a
// nil pointer (or nil keyword slice) keeps the base value. The returned copy
// carries no override table, so it cannot be resolved twice. Safe to call
// repeatedly and concurrently: no shared state is written.
func resolveField(base schema.ScoreableField, vertical schema.Vertical) schema.ScoreableField {
	resolved := base
	resolved.Overrides = nil

	ov, ok := base.Overrides[vertical]
	if !ok {
		return resolved
	}

	if ov.Label != nil {
		resolved.Label = *ov.Label
	}
	if ov.Weight != nil {
		resolved.Weight = *ov.Weight
	}
	if ov.Priority != nil {
		resolved.Priority = *ov.Priority
	}
	if ov.MinLength != nil {
		resolved.MinLength = *ov.MinLength
	}
	if ov.IdealLength != nil {
		resolved.IdealLength = *ov.IdealLength
	}
	if ov.MinCount != nil {
		resolved.MinCount = *ov.MinCount
	}
	if ov.Keywords != nil {
		resolved.Keywords = ov.Keywords
	}
	return resolved
}
