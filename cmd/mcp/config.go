package main

import (
	"context"
	"fmt"

	"github.com/elC0mpa/ha-doctor/config"
	"github.com/elC0mpa/ha-doctor/service"
	"github.com/elC0mpa/ha-doctor/service/analyzer"
	haconfig "github.com/elC0mpa/ha-doctor/service/homeassistant/config"
	haregistry "github.com/elC0mpa/ha-doctor/service/homeassistant/registry"
)

// services bundles what the tools need from one Home Assistant instance
type services struct {
	analyzer service.AnalyzerService
	instance service.InstanceService
	registry service.RegistryService
	baseURL  string
}

// newServices validates the configuration and wires the Home Assistant services
func newServices(ctx context.Context, cfg *config.Config) (*services, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	configSvc := haconfig.NewService(cfg.BaseURL, cfg.AccessToken, cfg.Timeout)
	client, err := configSvc.GetHTTPClient(ctx)
	if err != nil {
		return nil, err
	}

	registrySvc := haregistry.NewService(client, configSvc.GetBaseURL())

	return &services{
		analyzer: analyzer.NewService(registrySvc, cfg.AnalyzerOptions()),
		instance: registrySvc,
		registry: registrySvc,
		baseURL:  configSvc.GetBaseURL(),
	}, nil
}
