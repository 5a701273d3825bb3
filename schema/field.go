package schema

// DataSource names the snapshot collection a field reads from, with an
// optional record-type filter. An empty RecordType matches every record in
// the collection.
type DataSource struct {
	Collection CollectionName `json:"collection"`
	RecordType string         `json:"record_type,omitempty"`
}

// FieldOverride is a partial patch over a ScoreableField, registered per
// vertical. Nil pointers leave the base attribute untouched; a non-nil value
// replaces it wholesale (shallow patch, never a deep merge). An override can
// never remove a field from the catalog.
type FieldOverride struct {
	Label       *string        `json:"label,omitempty"`
	Weight      *int           `json:"weight,omitempty"`
	Priority    *FieldPriority `json:"priority,omitempty"`
	MinLength   *int           `json:"min_length,omitempty"`
	IdealLength *int           `json:"ideal_length,omitempty"`
	MinCount    *int           `json:"min_count,omitempty"`
	Keywords    []string       `json:"keywords,omitempty"`
}

// ScoreableField is one static scoring rule from the field catalog.
// Weight is the field's points within its category and must be positive.
// Content fields use MinLength/IdealLength; count-based fields use MinCount.
type ScoreableField struct {
	Key         string                     `json:"key"`
	Label       string                     `json:"label"`
	Category    Category                   `json:"category"`
	Weight      int                        `json:"weight"`
	Priority    FieldPriority              `json:"priority"`
	MinLength   int                        `json:"min_length,omitempty"`
	IdealLength int                        `json:"ideal_length,omitempty"`
	MinCount    int                        `json:"min_count,omitempty"`
	Keywords    []string                   `json:"keywords,omitempty"`
	Source      DataSource                 `json:"source"`
	Overrides   map[Vertical]FieldOverride `json:"-"`
}

// IsCountBased reports whether the field scores on the number of active
// matching records instead of the content of a single record.
func (f *ScoreableField) IsCountBased() bool {
	return f.MinCount > 0
}
