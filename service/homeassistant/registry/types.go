package haregistry

import (
	"context"
	"net/http"

	"github.com/elC0mpa/ha-doctor/model"
)

type service struct {
	client  *http.Client
	baseURL string
}

type RegistryService interface {
	GetEntityRegistry(ctx context.Context) ([]model.Entity, error)
	GetDeviceRegistry(ctx context.Context) ([]model.Device, error)
	GetAreaRegistry(ctx context.Context) ([]model.Area, error)
	GetStates(ctx context.Context) ([]model.State, error)
	GetConfig(ctx context.Context) (*model.InstanceInfo, error)
}
