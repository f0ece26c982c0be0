package model

import "strings"

// Registry models mirror the records returned by the Home Assistant registries.
// Optional fields are nil when the registry reports null; an empty string is
// treated the same as nil by the helper methods.

// UnknownPlatform is the platform reported for entities without one
const UnknownPlatform = "unknown"

// domainSeparator splits an entity ID into domain and object ID
const domainSeparator = "."

// Entity is an entry of the entity registry
type Entity struct {
	EntityID   string  `json:"entity_id"`
	Name       *string `json:"name"`
	DeviceID   *string `json:"device_id"`
	AreaID     *string `json:"area_id"`
	Platform   *string `json:"platform"`
	HiddenBy   *string `json:"hidden_by"`
	DisabledBy *string `json:"disabled_by"`
}

// Domain returns the part of the entity ID before the first separator
func (e Entity) Domain() string {
	domain, _, _ := strings.Cut(e.EntityID, domainSeparator)
	return domain
}

// ObjectID returns the part of the entity ID after the first separator.
// IDs without a separator are returned whole.
func (e Entity) ObjectID() string {
	_, objectID, found := strings.Cut(e.EntityID, domainSeparator)
	if !found {
		return e.EntityID
	}
	return objectID
}

// PlatformOrUnknown returns the declared platform or UnknownPlatform
func (e Entity) PlatformOrUnknown() string {
	if platform := StringValue(e.Platform); platform != "" {
		return platform
	}
	return UnknownPlatform
}

// DisplayName returns the declared name, falling back to the object ID
func (e Entity) DisplayName() string {
	if name := StringValue(e.Name); name != "" {
		return name
	}
	return e.ObjectID()
}

func (e Entity) IsHidden() bool {
	return StringValue(e.HiddenBy) != ""
}

func (e Entity) IsDisabled() bool {
	return StringValue(e.DisabledBy) != ""
}

// Device is an entry of the device registry
type Device struct {
	ID     string  `json:"id"`
	Name   *string `json:"name"`
	AreaID *string `json:"area_id"`
}

// Area is an entry of the area registry
type Area struct {
	AreaID string `json:"area_id"`
	Name   string `json:"name"`
}

// State is a runtime state object; only the entity ID matters for analysis
type State struct {
	EntityID string `json:"entity_id"`
	State    string `json:"state"`
}

// InstanceInfo identifies the Home Assistant instance being analyzed
type InstanceInfo struct {
	Version      string `json:"version"`
	LocationName string `json:"location_name"`
}

// StringValue dereferences an optional string, returning "" for nil
func StringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// String returns a pointer to s
func String(s string) *string {
	return &s
}
