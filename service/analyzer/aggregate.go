package analyzer

import (
	"cmp"
	"slices"

	"github.com/elC0mpa/ha-doctor/model"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

const (
	unassignedAreaName = "Unassigned"
	unknownAreaName    = "Unknown"
)

// Aggregate turns a classification into report sections sorted by member
// count. Equal counts keep the first-seen key order.
func Aggregate(snapshot *Snapshot, idx *Index, c *Classification) *model.Analysis {
	unassigned, _ := c.ByArea.Get(model.UnassignedAreaID)

	return &model.Analysis{
		Summary: model.Summary{
			TotalEntities:   len(snapshot.Entities),
			TotalDevices:    len(snapshot.Devices),
			TotalAreas:      len(snapshot.Areas),
			HiddenCount:     len(c.Hidden),
			DisabledCount:   len(c.Disabled),
			OrphanedCount:   len(c.Orphaned),
			UnusedCount:     len(c.Unused),
			UnassignedCount: len(unassigned),
		},
		ByPlatform: groupSections(c.ByPlatform),
		ByDomain:   groupSections(c.ByDomain),
		ByArea:     areaSections(c.ByArea, idx),
		Problems: model.ProblemEntities{
			Hidden:   entityIDs(c.Hidden),
			Disabled: entityIDs(c.Disabled),
			Orphaned: entityIDs(c.Orphaned),
			Unused:   entityIDs(c.Unused),
		},
	}
}

func groupSections(grouping *Grouping) []model.GroupSection {
	sections := make([]model.GroupSection, 0, grouping.Len())
	for pair := grouping.Oldest(); pair != nil; pair = pair.Next() {
		sections = append(sections, model.GroupSection{
			Key:      pair.Key,
			Count:    len(pair.Value),
			Entities: entityIDs(pair.Value),
		})
	}

	slices.SortStableFunc(sections, func(a, b model.GroupSection) int {
		return cmp.Compare(b.Count, a.Count)
	})
	return sections
}

func areaSections(grouping *Grouping, idx *Index) []model.AreaSection {
	sections := make([]model.AreaSection, 0, grouping.Len())
	for pair := grouping.Oldest(); pair != nil; pair = pair.Next() {
		sections = append(sections, model.AreaSection{
			AreaID:   pair.Key,
			AreaName: areaName(pair.Key, idx),
			Count:    len(pair.Value),
			Entities: entityIDs(pair.Value),
		})
	}

	slices.SortStableFunc(sections, func(a, b model.AreaSection) int {
		return cmp.Compare(b.Count, a.Count)
	})
	return sections
}

func areaName(areaID string, idx *Index) string {
	if areaID == model.UnassignedAreaID {
		return unassignedAreaName
	}
	if area, ok := idx.Area(areaID); ok && area.Name != "" {
		return area.Name
	}
	return unknownAreaName
}

// TopPlatforms counts entities per platform and returns the n largest platforms
func TopPlatforms(entities []model.Entity, n int) []model.PlatformCount {
	counts := orderedmap.New[string, int]()
	for _, entity := range entities {
		platform := entity.PlatformOrUnknown()
		count, _ := counts.Get(platform)
		counts.Set(platform, count+1)
	}

	platforms := make([]model.PlatformCount, 0, counts.Len())
	for pair := counts.Oldest(); pair != nil; pair = pair.Next() {
		platforms = append(platforms, model.PlatformCount{Platform: pair.Key, Count: pair.Value})
	}

	slices.SortStableFunc(platforms, func(a, b model.PlatformCount) int {
		return cmp.Compare(b.Count, a.Count)
	})

	if n >= 0 && len(platforms) > n {
		platforms = platforms[:n]
	}
	return platforms
}

func entityIDs(entities []model.Entity) []string {
	ids := make([]string, 0, len(entities))
	for _, entity := range entities {
		ids = append(ids, entity.EntityID)
	}
	return ids
}
