package analyzer

import (
	"testing"

	"github.com/elC0mpa/ha-doctor/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuggest_HideDiagnostic(t *testing.T) {
	analysis := &model.Analysis{
		ByDomain: []model.GroupSection{
			{Key: "sensor", Count: 4, Entities: []string{
				"sensor.door_battery",
				"sensor.hall_temperature",
				"sensor.power_usage",
				"sensor.router_rssi",
			}},
			{Key: "binary_sensor", Count: 2, Entities: []string{
				"binary_sensor.plug_update_available",
				"binary_sensor.motion",
			}},
			{Key: "switch", Count: 1, Entities: []string{"switch.charger_battery"}},
		},
	}

	suggestions := Suggest(analysis, DefaultOptions())

	require.Len(t, suggestions, 2)
	assert.Equal(t, model.Suggestion{
		Kind:        model.SuggestionHideDiagnostic,
		Description: "Hide 3 diagnostic sensor entities",
		Entities:    []string{"sensor.door_battery", "sensor.hall_temperature", "sensor.router_rssi"},
		Impact:      model.ImpactLow,
	}, suggestions[0])
	assert.Equal(t, "Hide 1 diagnostic binary_sensor entities", suggestions[1].Description)
}

func TestDiagnosticPattern(t *testing.T) {
	tests := []struct {
		entityID string
		expected bool
	}{
		{"sensor.a_battery", true},
		{"sensor.a_temperature", true},
		{"sensor.b_temp", true},
		{"sensor.a_voltage", true},
		{"sensor.a_signal_strength", true},
		{"sensor.a_rssi", true},
		{"sensor.a_linkquality", true},
		{"sensor.a_last_seen", true},
		{"binary_sensor.a_update_available", true},
		{"binary_sensor.a_restart_required", true},
		{"sensor.battery_level", false},
		{"sensor.battery", false},
		{"sensor.a_battery_low", false},
	}

	for _, tt := range tests {
		t.Run(tt.entityID, func(t *testing.T) {
			assert.Equal(t, tt.expected, diagnosticPattern.MatchString(tt.entityID))
		})
	}
}

func TestSuggest_ReviewPlatform(t *testing.T) {
	analysis := &model.Analysis{
		ByPlatform: []model.GroupSection{
			{Key: "homeassistant", Count: 120, Entities: []string{"sun.sun"}},
			{Key: "acme", Count: 51, Entities: []string{"light.acme_1"}},
			{Key: "zha", Count: 50, Entities: []string{"light.zha_1"}},
		},
	}

	suggestions := Suggest(analysis, DefaultOptions())

	require.Len(t, suggestions, 1)
	assert.Equal(t, model.Suggestion{
		Kind:        model.SuggestionReviewPlatform,
		Description: "Review acme platform with 51 entities",
		Platform:    "acme",
		Entities:    []string{"light.acme_1"},
		Impact:      model.ImpactMedium,
	}, suggestions[0])
}

func TestSuggest_OrganizeAreas(t *testing.T) {
	unassigned := []string{"light.a", "light.b"}

	tests := []struct {
		name     string
		count    int
		expected int
	}{
		{name: "at threshold", count: 10, expected: 0},
		{name: "above threshold", count: 11, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			analysis := &model.Analysis{
				Summary: model.Summary{UnassignedCount: tt.count},
				ByArea: []model.AreaSection{
					{AreaID: model.UnassignedAreaID, AreaName: "Unassigned", Count: tt.count, Entities: unassigned},
				},
			}

			suggestions := Suggest(analysis, DefaultOptions())

			require.Len(t, suggestions, tt.expected)
			if tt.expected > 0 {
				assert.Equal(t, model.SuggestionOrganizeAreas, suggestions[0].Kind)
				assert.Equal(t, model.ImpactHigh, suggestions[0].Impact)
				assert.Equal(t, unassigned, suggestions[0].Entities)
				assert.Equal(t, "Organize 11 unassigned entities into areas", suggestions[0].Description)
			}
		})
	}
}

func TestSuggest_RankedByImpactThenRuleOrder(t *testing.T) {
	analysis := &model.Analysis{
		Summary: model.Summary{UnassignedCount: 20},
		ByDomain: []model.GroupSection{
			{Key: "sensor", Count: 1, Entities: []string{"sensor.a_battery"}},
			{Key: "binary_sensor", Count: 1, Entities: []string{"binary_sensor.a_rssi"}},
		},
		ByPlatform: []model.GroupSection{
			{Key: "first", Count: 70},
			{Key: "second", Count: 60},
		},
		ByArea: []model.AreaSection{{AreaID: model.UnassignedAreaID, Count: 20}},
	}

	suggestions := Suggest(analysis, DefaultOptions())

	type ranked struct {
		kind   model.SuggestionKind
		detail string
	}
	var got []ranked
	for _, s := range suggestions {
		got = append(got, ranked{kind: s.Kind, detail: s.Description})
	}

	assert.Equal(t, []ranked{
		{model.SuggestionOrganizeAreas, "Organize 20 unassigned entities into areas"},
		{model.SuggestionReviewPlatform, "Review first platform with 70 entities"},
		{model.SuggestionReviewPlatform, "Review second platform with 60 entities"},
		{model.SuggestionHideDiagnostic, "Hide 1 diagnostic sensor entities"},
		{model.SuggestionHideDiagnostic, "Hide 1 diagnostic binary_sensor entities"},
	}, got)
}

func TestSuggest_CustomOptions(t *testing.T) {
	analysis := &model.Analysis{
		Summary:    model.Summary{UnassignedCount: 3},
		ByPlatform: []model.GroupSection{{Key: "homeassistant", Count: 5}},
		ByArea:     []model.AreaSection{{AreaID: model.UnassignedAreaID, Count: 3}},
	}

	suggestions := Suggest(analysis, Options{
		PlatformReviewThreshold: 4,
		UnassignedThreshold:     2,
		BuiltinPlatform:         "core",
	})

	require.Len(t, suggestions, 2)
	assert.Equal(t, model.SuggestionOrganizeAreas, suggestions[0].Kind)
	assert.Equal(t, model.SuggestionReviewPlatform, suggestions[1].Kind)
}

func TestSuggest_NoFindings(t *testing.T) {
	suggestions := Suggest(&model.Analysis{}, DefaultOptions())

	assert.NotNil(t, suggestions)
	assert.Empty(t, suggestions)
}

func TestDescribeRules(t *testing.T) {
	infos := DescribeRules()

	require.Len(t, infos, 3)
	assert.Equal(t, model.SuggestionHideDiagnostic, infos[0].Kind)
	assert.Equal(t, model.SuggestionReviewPlatform, infos[1].Kind)
	assert.Equal(t, model.SuggestionOrganizeAreas, infos[2].Kind)
	for _, info := range infos {
		assert.NotEmpty(t, info.Description)
	}
}
