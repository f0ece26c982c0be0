package analyzer

import (
	"context"
	"fmt"
	"slices"

	"github.com/elC0mpa/ha-doctor/model"
	"github.com/elC0mpa/ha-doctor/service"
	"golang.org/x/sync/errgroup"
)

const (
	defaultPlatformReviewThreshold = 50
	defaultUnassignedThreshold     = 10
	defaultBuiltinPlatform         = "homeassistant"
)

func DefaultOptions() Options {
	return Options{
		PlatformReviewThreshold: defaultPlatformReviewThreshold,
		UnassignedThreshold:     defaultUnassignedThreshold,
		BuiltinPlatform:         defaultBuiltinPlatform,
	}
}

var _ service.AnalyzerService = (*analyzerService)(nil)

func NewService(registry service.RegistryService, options Options) *analyzerService {
	return &analyzerService{
		registry: registry,
		options:  options,
	}
}

// AnalyzeEntities fetches all registries and classifies every entity
func (s *analyzerService) AnalyzeEntities(ctx context.Context) (*model.Analysis, error) {
	snapshot, err := FetchSnapshot(ctx, s.registry)
	if err != nil {
		return nil, err
	}

	return Analyze(snapshot), nil
}

// FindDuplicateEntities fetches the entity registry and reports name clashes
func (s *analyzerService) FindDuplicateEntities(ctx context.Context) ([]model.DuplicateCluster, error) {
	entities, err := s.registry.GetEntityRegistry(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching entity registry: %w", err)
	}

	return DetectDuplicates(entities), nil
}

// SuggestCleanup runs the analysis and duplicate detection over one snapshot
// and ranks the cleanup suggestions.
func (s *analyzerService) SuggestCleanup(ctx context.Context) (*model.CleanupReport, error) {
	snapshot, err := FetchSnapshot(ctx, s.registry)
	if err != nil {
		return nil, err
	}

	analysis := Analyze(snapshot)

	return &model.CleanupReport{
		Analysis:    analysis,
		Duplicates:  DetectDuplicates(snapshot.Entities),
		Suggestions: Suggest(analysis, s.options),
	}, nil
}

// Report produces the report named by kind
func (s *analyzerService) Report(ctx context.Context, kind string) (any, error) {
	reportKind, err := ParseReportKind(kind)
	if err != nil {
		return nil, err
	}

	switch reportKind {
	case ReportAnalysis:
		return s.AnalyzeEntities(ctx)
	case ReportDuplicates:
		return s.FindDuplicateEntities(ctx)
	case ReportCleanup:
		return s.SuggestCleanup(ctx)
	default:
		return nil, unknownReportError(kind)
	}
}

// ParseReportKind validates a report kind without fetching anything
func ParseReportKind(kind string) (ReportKind, error) {
	if !slices.Contains(ReportKinds, ReportKind(kind)) {
		return "", unknownReportError(kind)
	}
	return ReportKind(kind), nil
}

func unknownReportError(kind string) error {
	return fmt.Errorf("%w: %q (expected one of %v)", ErrUnknownReport, kind, ReportKinds)
}

// Analyze runs the index, classification and aggregation passes over a snapshot
func Analyze(snapshot *Snapshot) *model.Analysis {
	idx := BuildIndex(snapshot.Devices, snapshot.Areas, snapshot.States)
	return Aggregate(snapshot, idx, Classify(snapshot.Entities, idx))
}

// FetchSnapshot fetches the four collections concurrently and returns once all
// of them are available. The first failure cancels the others and is returned.
func FetchSnapshot(ctx context.Context, registry service.RegistryService) (*Snapshot, error) {
	var snapshot Snapshot

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		entities, err := registry.GetEntityRegistry(gCtx)
		if err != nil {
			return fmt.Errorf("fetching entity registry: %w", err)
		}
		snapshot.Entities = entities
		return nil
	})

	g.Go(func() error {
		devices, err := registry.GetDeviceRegistry(gCtx)
		if err != nil {
			return fmt.Errorf("fetching device registry: %w", err)
		}
		snapshot.Devices = devices
		return nil
	})

	g.Go(func() error {
		areas, err := registry.GetAreaRegistry(gCtx)
		if err != nil {
			return fmt.Errorf("fetching area registry: %w", err)
		}
		snapshot.Areas = areas
		return nil
	})

	g.Go(func() error {
		states, err := registry.GetStates(gCtx)
		if err != nil {
			return fmt.Errorf("fetching states: %w", err)
		}
		snapshot.States = states
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &snapshot, nil
}

// topPlatformCount is the number of platforms reported by a connection check
const topPlatformCount = 5

// CheckConnection verifies that the instance answers and summarizes its entity registry
func CheckConnection(ctx context.Context, instance service.InstanceService, registry service.RegistryService) (*model.ConnectionInfo, error) {
	info, err := instance.GetConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching instance config: %w", err)
	}

	entities, err := registry.GetEntityRegistry(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching entity registry: %w", err)
	}

	return &model.ConnectionInfo{
		Instance:      *info,
		TotalEntities: len(entities),
		TopPlatforms:  TopPlatforms(entities, topPlatformCount),
	}, nil
}
