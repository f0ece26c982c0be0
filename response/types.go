package response

// Summary holds the headline counts of an analysis
type Summary struct {
	TotalEntities   int `json:"total_entities"`
	TotalDevices    int `json:"total_devices"`
	TotalAreas      int `json:"total_areas"`
	HiddenCount     int `json:"hidden_count"`
	DisabledCount   int `json:"disabled_count"`
	OrphanedCount   int `json:"orphaned_count"`
	UnusedCount     int `json:"unused_count"`
	UnassignedCount int `json:"unassigned_count"`
}

// Group is one platform or domain group
type Group struct {
	Name     string   `json:"name"`
	Count    int      `json:"count"`
	Entities []string `json:"entities"`
}

// AreaGroup is one area group, keyed by area ID
type AreaGroup struct {
	AreaID   string   `json:"area_id"`
	Name     string   `json:"name"`
	Count    int      `json:"count"`
	Entities []string `json:"entities"`
}

// ProblemEntities lists entity IDs per problem flag
type ProblemEntities struct {
	Hidden   []string `json:"hidden"`
	Disabled []string `json:"disabled"`
	Orphaned []string `json:"orphaned"`
	Unused   []string `json:"unused"`
}

// Analysis is the entity analysis report
type Analysis struct {
	Summary         Summary         `json:"summary"`
	ByPlatform      []Group         `json:"by_platform"`
	ByDomain        []Group         `json:"by_domain"`
	ByArea          []AreaGroup     `json:"by_area"`
	ProblemEntities ProblemEntities `json:"problem_entities"`
}

// DuplicateEntity is one member of a duplicate name cluster
type DuplicateEntity struct {
	EntityID string  `json:"entity_id"`
	Platform *string `json:"platform"`
	DeviceID *string `json:"device_id"`
	Disabled bool    `json:"disabled"`
}

// Duplicate is a group of entities sharing a display name
type Duplicate struct {
	Name     string            `json:"name"`
	Count    int               `json:"count"`
	Entities []DuplicateEntity `json:"entities"`
}

// Suggestion is a ranked cleanup proposal
type Suggestion struct {
	Type        string   `json:"type"`
	Description string   `json:"description"`
	Platform    string   `json:"platform,omitempty"`
	Entities    []string `json:"entities"`
	Impact      string   `json:"impact"`
}

// CleanupReport combines the analysis, duplicates and ranked suggestions
type CleanupReport struct {
	Analysis    *Analysis    `json:"analysis"`
	Duplicates  []Duplicate  `json:"duplicates"`
	Suggestions []Suggestion `json:"suggestions"`
}

// PlatformCount is an entity count for one platform
type PlatformCount struct {
	Platform string `json:"platform"`
	Count    int    `json:"count"`
}

// ConnectionStatus is the result of a connection check
type ConnectionStatus struct {
	Status        string          `json:"status"`
	URL           string          `json:"url"`
	Version       string          `json:"version"`
	LocationName  string          `json:"location_name"`
	TotalEntities int             `json:"total_entities"`
	TopPlatforms  []PlatformCount `json:"top_platforms"`
}

// Rule describes one cleanup heuristic
type Rule struct {
	Type        string `json:"type"`
	Description string `json:"description"`
}
