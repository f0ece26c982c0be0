package model

// UnassignedAreaID is the sentinel area key for entities without an area
const UnassignedAreaID = "unassigned"

// Summary holds the headline counts of an analysis
type Summary struct {
	TotalEntities   int
	TotalDevices    int
	TotalAreas      int
	HiddenCount     int
	DisabledCount   int
	OrphanedCount   int
	UnusedCount     int
	UnassignedCount int
}

// GroupSection is one platform or domain group of an analysis
type GroupSection struct {
	Key      string
	Count    int
	Entities []string
}

// AreaSection is one area group of an analysis
type AreaSection struct {
	AreaID   string
	AreaName string
	Count    int
	Entities []string
}

// ProblemEntities lists entity IDs per problem flag
type ProblemEntities struct {
	Hidden   []string
	Disabled []string
	Orphaned []string
	Unused   []string
}

// Analysis is the result of classifying and aggregating the registries.
// Sections are sorted by count, descending.
type Analysis struct {
	Summary    Summary
	ByPlatform []GroupSection
	ByDomain   []GroupSection
	ByArea     []AreaSection
	Problems   ProblemEntities
}

// AreaSectionByID returns the area section with the given ID
func (a *Analysis) AreaSectionByID(areaID string) (AreaSection, bool) {
	for _, section := range a.ByArea {
		if section.AreaID == areaID {
			return section, true
		}
	}
	return AreaSection{}, false
}

// DuplicateMember describes one entity of a duplicate cluster
type DuplicateMember struct {
	EntityID string
	Platform *string
	DeviceID *string
	Disabled bool
}

// DuplicateCluster groups entities sharing a display name
type DuplicateCluster struct {
	Name     string
	Count    int
	Entities []DuplicateMember
}

// SuggestionKind identifies the rule that produced a suggestion
type SuggestionKind string

const (
	SuggestionHideDiagnostic SuggestionKind = "hide_diagnostic"
	SuggestionReviewPlatform SuggestionKind = "review_platform"
	SuggestionOrganizeAreas  SuggestionKind = "organize_areas"
)

// Impact is the priority tier of a suggestion
type Impact string

const (
	ImpactLow    Impact = "low"
	ImpactMedium Impact = "medium"
	ImpactHigh   Impact = "high"
)

// Rank orders impact tiers; unknown tiers rank lowest
func (i Impact) Rank() int {
	switch i {
	case ImpactHigh:
		return 3
	case ImpactMedium:
		return 2
	case ImpactLow:
		return 1
	default:
		return 0
	}
}

// Suggestion is a ranked remediation proposal
type Suggestion struct {
	Kind        SuggestionKind
	Description string
	Platform    string // set for review_platform only
	Entities    []string
	Impact      Impact
}

// CleanupReport combines an analysis, its duplicates and the ranked suggestions
type CleanupReport struct {
	Analysis    *Analysis
	Duplicates  []DuplicateCluster
	Suggestions []Suggestion
}

// PlatformCount is an entity count for one platform
type PlatformCount struct {
	Platform string
	Count    int
}

// ConnectionInfo is the outcome of a connection check
type ConnectionInfo struct {
	Instance      InstanceInfo
	TotalEntities int
	TopPlatforms  []PlatformCount
}
