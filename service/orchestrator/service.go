package orchestrator

import (
	"context"
	"fmt"
	"io"

	"github.com/elC0mpa/ha-doctor/model"
	"github.com/elC0mpa/ha-doctor/response"
	"github.com/elC0mpa/ha-doctor/service"
	"github.com/elC0mpa/ha-doctor/service/analyzer"
	"github.com/elC0mpa/ha-doctor/utils"
)

func NewService(analyzerService service.AnalyzerService, instanceService service.InstanceService, registryService service.RegistryService, baseURL string, out io.Writer) *orchestratorService {
	return &orchestratorService{
		analyzerService: analyzerService,
		instanceService: instanceService,
		registryService: registryService,
		baseURL:         baseURL,
		out:             out,
	}
}

func (s *orchestratorService) Orchestrate(ctx context.Context, flags model.Flags) error {
	switch flags.Report {
	case WorkflowCheck:
		return s.checkWorkflow(ctx, flags.JSON)
	case WorkflowRules:
		return s.rulesWorkflow(flags.JSON)
	default:
		return s.reportWorkflow(ctx, flags.Report, flags.JSON)
	}
}

func (s *orchestratorService) reportWorkflow(ctx context.Context, kind string, jsonOutput bool) error {
	report, err := s.analyzerService.Report(ctx, kind)
	utils.StopSpinner()
	if err != nil {
		return err
	}

	if jsonOutput {
		return utils.PrintJSON(s.out, response.ConvertReport(report))
	}

	switch r := report.(type) {
	case *model.Analysis:
		utils.DrawAnalysisTables(s.out, r)
		utils.DrawPlatformChart(s.out, utils.PlatformCounts(r.ByPlatform))
	case []model.DuplicateCluster:
		utils.DrawDuplicatesTable(s.out, r)
	case *model.CleanupReport:
		utils.DrawAnalysisTables(s.out, r.Analysis)
		utils.DrawDuplicatesTable(s.out, r.Duplicates)
		utils.DrawSuggestionsTable(s.out, r.Suggestions)
	default:
		return fmt.Errorf("no renderer for %T", report)
	}

	return nil
}

func (s *orchestratorService) checkWorkflow(ctx context.Context, jsonOutput bool) error {
	info, err := analyzer.CheckConnection(ctx, s.instanceService, s.registryService)
	utils.StopSpinner()
	if err != nil {
		return err
	}

	if jsonOutput {
		return utils.PrintJSON(s.out, response.ConvertConnectionInfo(s.baseURL, info))
	}

	utils.DrawConnectionInfo(s.out, s.baseURL, info)
	return nil
}

func (s *orchestratorService) rulesWorkflow(jsonOutput bool) error {
	utils.StopSpinner()

	rules := response.ConvertRules(analyzer.DescribeRules())
	if jsonOutput {
		return utils.PrintJSON(s.out, rules)
	}

	for _, rule := range rules {
		fmt.Fprintf(s.out, " %-16s %s\n", rule.Type, rule.Description)
	}
	return nil
}
