package analyzer

import (
	"github.com/elC0mpa/ha-doctor/model"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Classify groups every entity by platform, domain and area and collects the
// hidden, disabled, orphaned and unused flag lists in one pass.
// The unassigned area group always exists and is the first area key.
func Classify(entities []model.Entity, idx *Index) *Classification {
	c := &Classification{
		ByPlatform: orderedmap.New[string, []model.Entity](),
		ByDomain:   orderedmap.New[string, []model.Entity](),
		ByArea:     orderedmap.New[string, []model.Entity](),
		Hidden:     []model.Entity{},
		Disabled:   []model.Entity{},
		Orphaned:   []model.Entity{},
		Unused:     []model.Entity{},
	}
	c.ByArea.Set(model.UnassignedAreaID, []model.Entity{})

	for _, entity := range entities {
		appendToGroup(c.ByPlatform, entity.PlatformOrUnknown(), entity)
		appendToGroup(c.ByDomain, entity.Domain(), entity)
		appendToGroup(c.ByArea, resolveArea(entity, idx), entity)

		if entity.IsHidden() {
			c.Hidden = append(c.Hidden, entity)
		}
		if entity.IsDisabled() {
			c.Disabled = append(c.Disabled, entity)
		}
		if isOrphaned(entity, idx) {
			c.Orphaned = append(c.Orphaned, entity)
		}
		if !idx.HasState(entity.EntityID) {
			c.Unused = append(c.Unused, entity)
		}
	}

	return c
}

// resolveArea prefers the entity's own area, then the area of its device
// when that device is still registered.
func resolveArea(entity model.Entity, idx *Index) string {
	if areaID := model.StringValue(entity.AreaID); areaID != "" {
		return areaID
	}

	if deviceID := model.StringValue(entity.DeviceID); deviceID != "" {
		if device, ok := idx.Device(deviceID); ok {
			if areaID := model.StringValue(device.AreaID); areaID != "" {
				return areaID
			}
		}
	}

	return model.UnassignedAreaID
}

func isOrphaned(entity model.Entity, idx *Index) bool {
	deviceID := model.StringValue(entity.DeviceID)
	if deviceID == "" {
		return false
	}
	_, ok := idx.Device(deviceID)
	return !ok
}

func appendToGroup(grouping *Grouping, key string, entity model.Entity) {
	members, _ := grouping.Get(key)
	grouping.Set(key, append(members, entity))
}
