package orchestrator

import (
	"context"
	"io"

	"github.com/elC0mpa/ha-doctor/model"
	"github.com/elC0mpa/ha-doctor/service"
)

type orchestratorService struct {
	analyzerService service.AnalyzerService
	instanceService service.InstanceService
	registryService service.RegistryService
	baseURL         string
	out             io.Writer
}

type OrchestratorService interface {
	Orchestrate(ctx context.Context, flags model.Flags) error
}

const (
	// WorkflowCheck verifies the connection instead of producing a report
	WorkflowCheck = "check"
	// WorkflowRules lists the cleanup heuristics without contacting the instance
	WorkflowRules = "rules"
)
