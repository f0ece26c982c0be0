package analyzer

import "github.com/elC0mpa/ha-doctor/model"

// BuildIndex indexes devices by ID, areas by area ID and states by entity ID.
// Later records win when a registry repeats a key.
func BuildIndex(devices []model.Device, areas []model.Area, states []model.State) *Index {
	idx := &Index{
		devices: make(map[string]model.Device, len(devices)),
		areas:   make(map[string]model.Area, len(areas)),
		states:  make(map[string]model.State, len(states)),
	}

	for _, device := range devices {
		idx.devices[device.ID] = device
	}
	for _, area := range areas {
		idx.areas[area.AreaID] = area
	}
	for _, state := range states {
		idx.states[state.EntityID] = state
	}

	return idx
}

func (idx *Index) Device(id string) (model.Device, bool) {
	device, ok := idx.devices[id]
	return device, ok
}

func (idx *Index) Area(id string) (model.Area, bool) {
	area, ok := idx.areas[id]
	return area, ok
}

func (idx *Index) HasState(entityID string) bool {
	_, ok := idx.states[entityID]
	return ok
}
