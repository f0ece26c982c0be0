package analyzer

import (
	"github.com/elC0mpa/ha-doctor/model"
	"github.com/elC0mpa/ha-doctor/service"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

type analyzerService struct {
	registry service.RegistryService
	options  Options
}

// Options tunes the suggestion heuristics
type Options struct {
	// PlatformReviewThreshold is the entity count a platform must exceed to be reviewed
	PlatformReviewThreshold int
	// UnassignedThreshold is the unassigned entity count that triggers area organization
	UnassignedThreshold int
	// BuiltinPlatform is never suggested for review
	BuiltinPlatform string
}

// ReportKind names a report produced by Report
type ReportKind string

const (
	ReportAnalysis   ReportKind = "analysis"
	ReportDuplicates ReportKind = "duplicates"
	ReportCleanup    ReportKind = "cleanup"
)

// ReportKinds lists the supported report kinds in display order
var ReportKinds = []ReportKind{ReportAnalysis, ReportDuplicates, ReportCleanup}

// Snapshot holds one fetch of the four collections, in fetch order
type Snapshot struct {
	Entities []model.Entity
	Devices  []model.Device
	Areas    []model.Area
	States   []model.State
}

// Index provides constant-time lookups across the registries
type Index struct {
	devices map[string]model.Device
	areas   map[string]model.Area
	states  map[string]model.State
}

// Grouping maps a classification key to its member entities, in first-seen key order
type Grouping = orderedmap.OrderedMap[string, []model.Entity]

// Classification is the output of a single classification pass
type Classification struct {
	ByPlatform *Grouping
	ByDomain   *Grouping
	ByArea     *Grouping

	Hidden   []model.Entity
	Disabled []model.Entity
	Orphaned []model.Entity
	Unused   []model.Entity
}
