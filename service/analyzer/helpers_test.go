package analyzer

import (
	"context"
	"fmt"

	"github.com/elC0mpa/ha-doctor/model"
)

// fakeRegistry is an in-memory service.RegistryService
type fakeRegistry struct {
	entities []model.Entity
	devices  []model.Device
	areas    []model.Area
	states   []model.State

	entitiesErr error
	devicesErr  error
	areasErr    error
	statesErr   error

	calls int
}

func (f *fakeRegistry) GetEntityRegistry(_ context.Context) ([]model.Entity, error) {
	f.calls++
	return f.entities, f.entitiesErr
}

func (f *fakeRegistry) GetDeviceRegistry(_ context.Context) ([]model.Device, error) {
	return f.devices, f.devicesErr
}

func (f *fakeRegistry) GetAreaRegistry(_ context.Context) ([]model.Area, error) {
	return f.areas, f.areasErr
}

func (f *fakeRegistry) GetStates(_ context.Context) ([]model.State, error) {
	return f.states, f.statesErr
}

type entityOption func(*model.Entity)

func newEntity(entityID string, opts ...entityOption) model.Entity {
	e := model.Entity{EntityID: entityID}
	for _, opt := range opts {
		opt(&e)
	}
	return e
}

func withName(name string) entityOption {
	return func(e *model.Entity) { e.Name = model.String(name) }
}

func withPlatform(platform string) entityOption {
	return func(e *model.Entity) { e.Platform = model.String(platform) }
}

func withDevice(deviceID string) entityOption {
	return func(e *model.Entity) { e.DeviceID = model.String(deviceID) }
}

func withArea(areaID string) entityOption {
	return func(e *model.Entity) { e.AreaID = model.String(areaID) }
}

func hiddenBy(marker string) entityOption {
	return func(e *model.Entity) { e.HiddenBy = model.String(marker) }
}

func disabledBy(marker string) entityOption {
	return func(e *model.Entity) { e.DisabledBy = model.String(marker) }
}

func statesFor(entityIDs ...string) []model.State {
	states := make([]model.State, 0, len(entityIDs))
	for _, id := range entityIDs {
		states = append(states, model.State{EntityID: id, State: "on"})
	}
	return states
}

func manyEntities(n int, format string, opts ...entityOption) []model.Entity {
	entities := make([]model.Entity, 0, n)
	for i := 0; i < n; i++ {
		entities = append(entities, newEntity(fmt.Sprintf(format, i), opts...))
	}
	return entities
}

func sectionKeys(sections []model.GroupSection) []string {
	keys := make([]string, 0, len(sections))
	for _, s := range sections {
		keys = append(keys, s.Key)
	}
	return keys
}

func findSection(sections []model.GroupSection, key string) (model.GroupSection, bool) {
	for _, s := range sections {
		if s.Key == key {
			return s, true
		}
	}
	return model.GroupSection{}, false
}

type fakeInstance struct {
	info *model.InstanceInfo
	err  error
}

func (f *fakeInstance) GetConfig(_ context.Context) (*model.InstanceInfo, error) {
	return f.info, f.err
}
