package schema

// Record is a single knowledge-base entry inside a snapshot collection.
// Type carries the per-collection discriminator used for field matching
// (e.g. a policy of type "cancellation").
type Record struct {
	ID       string `json:"id"`
	Type     string `json:"type,omitempty"`
	Title    string `json:"title,omitempty"`
	Content  string `json:"content,omitempty"`
	IsActive bool   `json:"is_active"`
}

// Snapshot is the caller-assembled view of a business's knowledge base.
// It is read-only input: scoring never mutates it. Absent collections simply
// decode to nil slices and score as zero matching records.
type Snapshot struct {
	Instructions []Record `json:"instructions,omitempty"`
	Policies     []Record `json:"policies,omitempty"`
	Articles     []Record `json:"articles,omitempty"`
	Templates    []Record `json:"templates,omitempty"`
	Competitors  []Record `json:"competitors,omitempty"`
	Services     []Record `json:"services,omitempty"`
	Branches     []Record `json:"branches,omitempty"`
	Staff        []Record `json:"staff,omitempty"`
}

// Collection returns the records of the named collection in snapshot order.
// Unknown names return nil, which downstream scoring treats as "no records".
func (s *Snapshot) Collection(name CollectionName) []Record {
	if s == nil {
		return nil
	}
	switch name {
	case CollectionInstructions:
		return s.Instructions
	case CollectionPolicies:
		return s.Policies
	case CollectionArticles:
		return s.Articles
	case CollectionTemplates:
		return s.Templates
	case CollectionCompetitors:
		return s.Competitors
	case CollectionServices:
		return s.Services
	case CollectionBranches:
		return s.Branches
	case CollectionStaff:
		return s.Staff
	default:
		return nil
	}
}
