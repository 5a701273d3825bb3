package schema

// Custom string types for type safety.
type (
	// Category is one of the fixed groupings of scoreable fields.
	Category string

	// Vertical is a business category that can override default field rules.
	Vertical string

	// FieldStatus represents the evaluated state of a single field.
	FieldStatus string

	// CategoryStatus represents the health of a category (or the total score).
	CategoryStatus string

	// FieldPriority indicates how important a field is for assistant readiness.
	FieldPriority string

	// IssueSeverity classifies a detected quality issue.
	IssueSeverity string

	// RecPriority ranks a recommended action.
	RecPriority string

	// CollectionName names a snapshot collection a field reads from.
	CollectionName string

	// OutputMode represents the format of the output.
	OutputMode string

	// DatabaseBackend represents the database backend for result storage.
	DatabaseBackend string
)

// All categories supported. The percentage weights are part of the scoring
// contract and must not change between releases.
const (
	CategoryCoreData    Category = "core_data"
	CategoryPersonality Category = "personality"
	CategoryPolicies    Category = "policies"
	CategoryKnowledge   Category = "knowledge"
	CategoryAdvanced    Category = "advanced"
)

// AllCategories lists every category in display order.
var AllCategories = []Category{
	CategoryCoreData,
	CategoryPersonality,
	CategoryPolicies,
	CategoryKnowledge,
	CategoryAdvanced,
}

// CategoryWeights maps each category to its fixed percentage of the total
// score. The five values sum to exactly 100.
var CategoryWeights = map[Category]int{
	CategoryCoreData:    30,
	CategoryPersonality: 25,
	CategoryPolicies:    20,
	CategoryKnowledge:   15,
	CategoryAdvanced:    10,
}

// All field statuses supported.
const (
	StatusMissing     FieldStatus = "missing"
	StatusDisabled    FieldStatus = "disabled"
	StatusPlaceholder FieldStatus = "placeholder"
	StatusPartial     FieldStatus = "partial"
	StatusComplete    FieldStatus = "complete"
)

// All category statuses supported.
const (
	StatusExcellent CategoryStatus = "excellent"
	StatusGood      CategoryStatus = "good"
	StatusNeedsWork CategoryStatus = "needs_work"
	StatusCritical  CategoryStatus = "critical"
)

// All field priorities supported.
const (
	PriorityEssential   FieldPriority = "essential"
	PriorityRecommended FieldPriority = "recommended"
	PriorityOptional    FieldPriority = "optional"
)

// All issue severities supported.
const (
	SeverityCritical IssueSeverity = "critical"
	SeverityWarning  IssueSeverity = "warning"
	SeverityInfo     IssueSeverity = "info"
)

// All recommendation priorities supported.
const (
	RecCritical RecPriority = "critical"
	RecHigh     RecPriority = "high"
	RecMedium   RecPriority = "medium"
	RecLow      RecPriority = "low"
)

// All snapshot collections supported.
const (
	CollectionInstructions CollectionName = "instructions"
	CollectionPolicies     CollectionName = "policies"
	CollectionArticles     CollectionName = "articles"
	CollectionTemplates    CollectionName = "templates"
	CollectionCompetitors  CollectionName = "competitors"
	CollectionServices     CollectionName = "services"
	CollectionBranches     CollectionName = "branches"
	CollectionStaff        CollectionName = "staff"
)

// All verticals with registered catalog overrides. An unknown vertical is not
// an error; the base catalog applies unchanged.
const (
	VerticalGeneric      Vertical = "generic"
	VerticalDentalClinic Vertical = "dental_clinic"
	VerticalRestaurant   Vertical = "restaurant"
	VerticalBeautySalon  Vertical = "beauty_salon"
	VerticalFitness      Vertical = "fitness_studio"
	VerticalRetail       Vertical = "retail"
)

// All output modes supported.
const (
	TextOut    OutputMode = "text" // default
	JSONOut    OutputMode = "json"
	CSVOut     OutputMode = "csv"
	ParquetOut OutputMode = "parquet"
)

// All result store backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// ResultSchemaVersion tags every ScoringResult for downstream consumers.
const ResultSchemaVersion = "1.0"

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut:    {},
	JSONOut:    {},
	CSVOut:     {},
	ParquetOut: {},
}

// ValidStoreBackends lists all valid result store backends.
var ValidStoreBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}

// recPriorityRank orders recommendation priorities for tie-breaking.
var recPriorityRank = map[RecPriority]int{
	RecCritical: 0,
	RecHigh:     1,
	RecMedium:   2,
	RecLow:      3,
}

// RecPriorityRank returns the sort rank of a recommendation priority.
// Lower rank means more urgent. Unknown priorities sort last.
func RecPriorityRank(p RecPriority) int {
	if r, ok := recPriorityRank[p]; ok {
		return r
	}
	return len(recPriorityRank)
}
