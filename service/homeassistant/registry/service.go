package haregistry

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/elC0mpa/ha-doctor/model"
)

const (
	entityRegistryEndpoint = "config/entity_registry/list"
	deviceRegistryEndpoint = "config/device_registry/list"
	areaRegistryEndpoint   = "config/area_registry/list"
	statesEndpoint         = "states"
	configEndpoint         = "config"
)

func NewService(client *http.Client, baseURL string) *service {
	return &service{
		client:  client,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

func (s *service) GetEntityRegistry(ctx context.Context) ([]model.Entity, error) {
	var entities []model.Entity
	if err := s.get(ctx, entityRegistryEndpoint, &entities); err != nil {
		return nil, err
	}
	return entities, nil
}

func (s *service) GetDeviceRegistry(ctx context.Context) ([]model.Device, error) {
	var devices []model.Device
	if err := s.get(ctx, deviceRegistryEndpoint, &devices); err != nil {
		return nil, err
	}
	return devices, nil
}

func (s *service) GetAreaRegistry(ctx context.Context) ([]model.Area, error) {
	var areas []model.Area
	if err := s.get(ctx, areaRegistryEndpoint, &areas); err != nil {
		return nil, err
	}
	return areas, nil
}

func (s *service) GetStates(ctx context.Context) ([]model.State, error) {
	var states []model.State
	if err := s.get(ctx, statesEndpoint, &states); err != nil {
		return nil, err
	}
	return states, nil
}

// GetConfig implements service.InstanceService
func (s *service) GetConfig(ctx context.Context) (*model.InstanceInfo, error) {
	var info model.InstanceInfo
	if err := s.get(ctx, configEndpoint, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

func (s *service) get(ctx context.Context, endpoint string, out any) error {
	url := fmt.Sprintf("%s/api/%s", s.baseURL, endpoint)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("building request for %s: %w", endpoint, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("requesting %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{
			Endpoint:   endpoint,
			StatusCode: resp.StatusCode,
			Status:     http.StatusText(resp.StatusCode),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding %s response: %w", endpoint, err)
	}
	return nil
}
