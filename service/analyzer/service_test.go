package analyzer

import (
	"context"
	"errors"
	"testing"

	"github.com/elC0mpa/ha-doctor/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuggestCleanup_DiagnosticScenario(t *testing.T) {
	registry := &fakeRegistry{
		entities: []model.Entity{
			newEntity("sensor.a_battery"),
			newEntity("sensor.b_temp"),
			newEntity("light.c"),
		},
		states: statesFor("light.c"),
	}

	report, err := NewService(registry, DefaultOptions()).SuggestCleanup(context.Background())
	require.NoError(t, err)

	analysis := report.Analysis
	assert.Equal(t, 2, analysis.Summary.UnusedCount)
	assert.Equal(t, 3, analysis.Summary.UnassignedCount)

	sensor, ok := findSection(analysis.ByDomain, "sensor")
	require.True(t, ok)
	assert.Equal(t, 2, sensor.Count)

	light, ok := findSection(analysis.ByDomain, "light")
	require.True(t, ok)
	assert.Equal(t, 1, light.Count)

	unassigned, ok := analysis.AreaSectionByID(model.UnassignedAreaID)
	require.True(t, ok)
	assert.Equal(t, 3, unassigned.Count)

	require.Len(t, report.Suggestions, 1)
	assert.Equal(t, model.SuggestionHideDiagnostic, report.Suggestions[0].Kind)
	assert.Equal(t, model.ImpactLow, report.Suggestions[0].Impact)
	assert.Equal(t, []string{"sensor.a_battery", "sensor.b_temp"}, report.Suggestions[0].Entities)

	for _, s := range report.Suggestions {
		assert.NotEqual(t, model.SuggestionOrganizeAreas, s.Kind)
	}
}

func TestSuggestCleanup_ReviewPlatformScenario(t *testing.T) {
	registry := &fakeRegistry{
		entities: manyEntities(60, "switch.outlet_%d", withPlatform("acme"), withArea("garage")),
		areas:    []model.Area{{AreaID: "garage", Name: "Garage"}},
	}

	report, err := NewService(registry, DefaultOptions()).SuggestCleanup(context.Background())
	require.NoError(t, err)

	var reviews []model.Suggestion
	for _, s := range report.Suggestions {
		if s.Kind == model.SuggestionReviewPlatform {
			reviews = append(reviews, s)
		}
	}

	require.Len(t, reviews, 1)
	assert.Equal(t, "acme", reviews[0].Platform)
	assert.Equal(t, model.ImpactMedium, reviews[0].Impact)
	assert.Len(t, reviews[0].Entities, 60)
}

func TestFindDuplicateEntities_FrontDoorScenario(t *testing.T) {
	registry := &fakeRegistry{
		entities: []model.Entity{
			newEntity("binary_sensor.front_door", withName("Front Door")),
			newEntity("lock.front_door", withName("Front Door")),
		},
		devicesErr: errors.New("device registry must not be fetched"),
	}

	clusters, err := NewService(registry, DefaultOptions()).FindDuplicateEntities(context.Background())
	require.NoError(t, err)

	require.Len(t, clusters, 1)
	assert.Equal(t, "Front Door", clusters[0].Name)
	assert.Equal(t, 2, clusters[0].Count)
}

func TestSuggestCleanup_IncludesDuplicates(t *testing.T) {
	registry := &fakeRegistry{
		entities: []model.Entity{
			newEntity("light.kitchen"),
			newEntity("switch.kitchen"),
		},
	}

	report, err := NewService(registry, DefaultOptions()).SuggestCleanup(context.Background())
	require.NoError(t, err)

	require.Len(t, report.Duplicates, 1)
	assert.Equal(t, "kitchen", report.Duplicates[0].Name)
	assert.Empty(t, report.Suggestions)
}

func TestAnalyzeEntities_FetchFailure(t *testing.T) {
	upstream := errors.New("503 Service Unavailable")

	tests := []struct {
		name     string
		registry *fakeRegistry
		message  string
	}{
		{name: "entities", registry: &fakeRegistry{entitiesErr: upstream}, message: "fetching entity registry"},
		{name: "devices", registry: &fakeRegistry{devicesErr: upstream}, message: "fetching device registry"},
		{name: "areas", registry: &fakeRegistry{areasErr: upstream}, message: "fetching area registry"},
		{name: "states", registry: &fakeRegistry{statesErr: upstream}, message: "fetching states"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.registry.entities = []model.Entity{newEntity("light.a")}

			analysis, err := NewService(tt.registry, DefaultOptions()).AnalyzeEntities(context.Background())

			require.Error(t, err)
			assert.Nil(t, analysis)
			assert.ErrorIs(t, err, upstream)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestSuggestCleanup_FetchFailure(t *testing.T) {
	upstream := errors.New("connection refused")
	registry := &fakeRegistry{statesErr: upstream}

	report, err := NewService(registry, DefaultOptions()).SuggestCleanup(context.Background())

	assert.Nil(t, report)
	assert.ErrorIs(t, err, upstream)
}

func TestFindDuplicateEntities_FetchFailure(t *testing.T) {
	upstream := errors.New("401 Unauthorized")
	registry := &fakeRegistry{entitiesErr: upstream}

	clusters, err := NewService(registry, DefaultOptions()).FindDuplicateEntities(context.Background())

	assert.Nil(t, clusters)
	assert.ErrorIs(t, err, upstream)
}

func TestReport(t *testing.T) {
	registry := &fakeRegistry{
		entities: []model.Entity{newEntity("light.a"), newEntity("switch.a")},
	}
	svc := NewService(registry, DefaultOptions())

	analysis, err := svc.Report(context.Background(), string(ReportAnalysis))
	require.NoError(t, err)
	assert.IsType(t, &model.Analysis{}, analysis)

	duplicates, err := svc.Report(context.Background(), string(ReportDuplicates))
	require.NoError(t, err)
	assert.IsType(t, []model.DuplicateCluster{}, duplicates)

	cleanup, err := svc.Report(context.Background(), string(ReportCleanup))
	require.NoError(t, err)
	assert.IsType(t, &model.CleanupReport{}, cleanup)
}

func TestReport_UnknownKind(t *testing.T) {
	registry := &fakeRegistry{}

	result, err := NewService(registry, DefaultOptions()).Report(context.Background(), "inventory")

	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrUnknownReport)
	assert.Contains(t, err.Error(), `"inventory"`)
	assert.Zero(t, registry.calls)
}

func TestParseReportKind(t *testing.T) {
	for _, kind := range ReportKinds {
		got, err := ParseReportKind(string(kind))
		require.NoError(t, err)
		assert.Equal(t, kind, got)
	}

	for _, kind := range []string{"check", "rules", "inventory", "", "Analysis"} {
		_, err := ParseReportKind(kind)
		assert.ErrorIs(t, err, ErrUnknownReport, kind)
	}
}

func TestFetchSnapshot(t *testing.T) {
	registry := &fakeRegistry{
		entities: []model.Entity{newEntity("light.a")},
		devices:  []model.Device{{ID: "dev1"}},
		areas:    []model.Area{{AreaID: "kitchen", Name: "Kitchen"}},
		states:   statesFor("light.a"),
	}

	snapshot, err := FetchSnapshot(context.Background(), registry)
	require.NoError(t, err)

	assert.Equal(t, registry.entities, snapshot.Entities)
	assert.Equal(t, registry.devices, snapshot.Devices)
	assert.Equal(t, registry.areas, snapshot.Areas)
	assert.Equal(t, registry.states, snapshot.States)
}
