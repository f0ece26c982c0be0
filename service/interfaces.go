package service

import (
	"context"

	"github.com/elC0mpa/ha-doctor/model"
)

// RegistryService supplies the Home Assistant registries and state snapshot
type RegistryService interface {
	GetEntityRegistry(ctx context.Context) ([]model.Entity, error)
	GetDeviceRegistry(ctx context.Context) ([]model.Device, error)
	GetAreaRegistry(ctx context.Context) ([]model.Area, error)
	GetStates(ctx context.Context) ([]model.State, error)
}

// InstanceService provides Home Assistant instance identity information
type InstanceService interface {
	GetConfig(ctx context.Context) (*model.InstanceInfo, error)
}

// AnalyzerService produces registry reports
type AnalyzerService interface {
	AnalyzeEntities(ctx context.Context) (*model.Analysis, error)
	FindDuplicateEntities(ctx context.Context) ([]model.DuplicateCluster, error)
	SuggestCleanup(ctx context.Context) (*model.CleanupReport, error)
	Report(ctx context.Context, kind string) (any, error)
}
