package core

import "github.com/lumenkit/kbscore/schema"

// ptr helpers keep the override table readable.
func strPtr(s string) *string                              { return &s }
func intPtr(i int) *int                                    { return &i }
func prioPtr(p schema.FieldPriority) *schema.FieldPriority { return &p }

// baseCatalog is the static table of scoreable fields. It is initialized once
// at process start and treated as read-only everywhere; lookups hand out
// resolved copies, never pointers into this slice.
var baseCatalog = []schema.ScoreableField{
	// --- core_data ---
	{
		Key:         "business_identity",
		Label:       "Business identity",
		Category:    schema.CategoryCoreData,
		Weight:      10,
		Priority:    schema.PriorityEssential,
		MinLength:   80,
		IdealLength: 400,
		Source:      schema.DataSource{Collection: schema.CollectionInstructions, RecordType: "identity"},
	},
	{
		Key:         "contact_hours",
		Label:       "Contact details and hours",
		Category:    schema.CategoryCoreData,
		Weight:      6,
		Priority:    schema.PriorityEssential,
		MinLength:   40,
		IdealLength: 200,
		Source:      schema.DataSource{Collection: schema.CollectionInstructions, RecordType: "hours"},
	},
	{
		Key:      "services_list",
		Label:    "Services list",
		Category: schema.CategoryCoreData,
		Weight:   8,
		Priority: schema.PriorityEssential,
		MinCount: 3,
		Source:   schema.DataSource{Collection: schema.CollectionServices},
		Overrides: map[schema.Vertical]schema.FieldOverride{
			schema.VerticalRestaurant: {Label: strPtr("Menu items"), MinCount: intPtr(10)},
			schema.VerticalRetail:     {Label: strPtr("Product catalog"), MinCount: intPtr(15)},
		},
	},
	{
		Key:      "branches_info",
		Label:    "Branch locations",
		Category: schema.CategoryCoreData,
		Weight:   4,
		Priority: schema.PriorityRecommended,
		MinCount: 1,
		Source:   schema.DataSource{Collection: schema.CollectionBranches},
		Overrides: map[schema.Vertical]schema.FieldOverride{
			schema.VerticalRestaurant: {Weight: intPtr(6)},
		},
	},

	// --- personality ---
	{
		Key:         "assistant_persona",
		Label:       "Assistant persona",
		Category:    schema.CategoryPersonality,
		Weight:      8,
		Priority:    schema.PriorityEssential,
		MinLength:   100,
		IdealLength: 500,
		Source:      schema.DataSource{Collection: schema.CollectionInstructions, RecordType: "persona"},
	},
	{
		Key:         "welcome_message",
		Label:       "Welcome message",
		Category:    schema.CategoryPersonality,
		Weight:      6,
		Priority:    schema.PriorityEssential,
		MinLength:   20,
		IdealLength: 120,
		Source:      schema.DataSource{Collection: schema.CollectionTemplates, RecordType: "welcome"},
	},
	{
		Key:         "fallback_message",
		Label:       "Fallback message",
		Category:    schema.CategoryPersonality,
		Weight:      5,
		Priority:    schema.PriorityRecommended,
		MinLength:   20,
		IdealLength: 120,
		Source:      schema.DataSource{Collection: schema.CollectionTemplates, RecordType: "fallback"},
	},
	{
		Key:         "tone_guidelines",
		Label:       "Tone guidelines",
		Category:    schema.CategoryPersonality,
		Weight:      6,
		Priority:    schema.PriorityRecommended,
		MinLength:   60,
		IdealLength: 300,
		Source:      schema.DataSource{Collection: schema.CollectionInstructions, RecordType: "tone"},
	},

	// --- policies ---
	{
		Key:         "cancellation_policy",
		Label:       "Cancellation policy",
		Category:    schema.CategoryPolicies,
		Weight:      6,
		Priority:    schema.PriorityEssential,
		MinLength:   60,
		IdealLength: 300,
		Keywords:    []string{"cancel"},
		Source:      schema.DataSource{Collection: schema.CollectionPolicies, RecordType: "cancellation"},
		Overrides: map[schema.Vertical]schema.FieldOverride{
			schema.VerticalDentalClinic: {MinLength: intPtr(100), Keywords: []string{"cancel", "appointment"}},
			schema.VerticalBeautySalon:  {Keywords: []string{"cancel", "appointment"}},
		},
	},
	{
		Key:         "payment_policy",
		Label:       "Payment policy",
		Category:    schema.CategoryPolicies,
		Weight:      5,
		Priority:    schema.PriorityRecommended,
		MinLength:   40,
		IdealLength: 250,
		Keywords:    []string{"payment"},
		Source:      schema.DataSource{Collection: schema.CollectionPolicies, RecordType: "payment"},
	},
	{
		Key:         "privacy_policy",
		Label:       "Privacy policy",
		Category:    schema.CategoryPolicies,
		Weight:      4,
		Priority:    schema.PriorityRecommended,
		MinLength:   80,
		IdealLength: 400,
		Keywords:    []string{"data"},
		Source:      schema.DataSource{Collection: schema.CollectionPolicies, RecordType: "privacy"},
	},
	{
		Key:      "competitor_rules",
		Label:    "Competitor handling rules",
		Category: schema.CategoryPolicies,
		Weight:   5,
		Priority: schema.PriorityOptional,
		MinCount: 1,
		Source:   schema.DataSource{Collection: schema.CollectionCompetitors},
	},

	// --- knowledge ---
	{
		Key:      "faq_articles",
		Label:    "FAQ articles",
		Category: schema.CategoryKnowledge,
		Weight:   8,
		Priority: schema.PriorityEssential,
		MinCount: 5,
		Source:   schema.DataSource{Collection: schema.CollectionArticles, RecordType: "faq"},
	},
	{
		Key:      "guide_articles",
		Label:    "How-to guides",
		Category: schema.CategoryKnowledge,
		Weight:   5,
		Priority: schema.PriorityRecommended,
		MinCount: 3,
		Source:   schema.DataSource{Collection: schema.CollectionArticles, RecordType: "guide"},
	},
	{
		Key:      "staff_profiles",
		Label:    "Staff profiles",
		Category: schema.CategoryKnowledge,
		Weight:   4,
		Priority: schema.PriorityOptional,
		MinCount: 2,
		Source:   schema.DataSource{Collection: schema.CollectionStaff},
		Overrides: map[schema.Vertical]schema.FieldOverride{
			schema.VerticalDentalClinic: {Priority: prioPtr(schema.PriorityRecommended), MinCount: intPtr(3)},
			schema.VerticalFitness:      {Priority: prioPtr(schema.PriorityRecommended)},
		},
	},

	// --- advanced ---
	{
		Key:      "message_templates",
		Label:    "Message templates",
		Category: schema.CategoryAdvanced,
		Weight:   5,
		Priority: schema.PriorityRecommended,
		MinCount: 3,
		Source:   schema.DataSource{Collection: schema.CollectionTemplates},
	},
	{
		Key:         "escalation_rules",
		Label:       "Escalation rules",
		Category:    schema.CategoryAdvanced,
		Weight:      4,
		Priority:    schema.PriorityOptional,
		MinLength:   40,
		IdealLength: 200,
		Source:      schema.DataSource{Collection: schema.CollectionInstructions, RecordType: "escalation"},
	},
}

// catalogIndex maps field keys to their position in baseCatalog.
var catalogIndex = func() map[string]int {
	idx := make(map[string]int, len(baseCatalog))
	for i, f := range baseCatalog {
		idx[f.Key] = i
	}
	return idx
}()

// GetFieldDefinition returns the field definition for key with any override
// for the vertical shallow-merged on top. The second return is false when the
// key is not in the catalog; that is not an error and callers must check.
func GetFieldDefinition(key string, vertical schema.Vertical) (schema.ScoreableField, bool) {
	i, ok := catalogIndex[key]
	if !ok {
		return schema.ScoreableField{}, false
	}
	return resolveField(baseCatalog[i], vertical), true
}

// GetFieldsForVertical returns the full catalog with overrides applied for
// the vertical. Fields without an override come back unchanged. The base
// catalog is never mutated; every call returns fresh copies.
func GetFieldsForVertical(vertical schema.Vertical) []schema.ScoreableField {
	fields := make([]schema.ScoreableField, 0, len(baseCatalog))
	for _, f := range baseCatalog {
		fields = append(fields, resolveField(f, vertical))
	}
	return fields
}

// GetCategoryTotalWeight sums the vertical-resolved weights of all catalog
// fields in the category.
func GetCategoryTotalWeight(category schema.Category, vertical schema.Vertical) int {
	total := 0
	for _, f := range baseCatalog {
		if f.Category != category {
			continue
		}
		total += resolveField(f, vertical).Weight
	}
	return total
}
