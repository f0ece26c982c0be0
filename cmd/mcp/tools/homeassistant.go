package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/elC0mpa/ha-doctor/response"
	"github.com/elC0mpa/ha-doctor/service"
	"github.com/elC0mpa/ha-doctor/service/analyzer"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// RegisterHomeAssistantTools registers all Home Assistant tools with the MCP server
func RegisterHomeAssistantTools(s *server.MCPServer, analyzerSvc service.AnalyzerService, instanceSvc service.InstanceService, registrySvc service.RegistryService, baseURL string) {
	s.AddTool(
		mcp.NewTool("ha_analyze_entities",
			mcp.WithDescription("Analyze all Home Assistant entities and group them by platform, domain and area, listing hidden, disabled, orphaned and unused entities"),
		),
		makeAnalyzeEntitiesHandler(analyzerSvc),
	)

	s.AddTool(
		mcp.NewTool("ha_find_duplicate_entities",
			mcp.WithDescription("Find entities that share the same display name"),
		),
		makeFindDuplicatesHandler(analyzerSvc),
	)

	s.AddTool(
		mcp.NewTool("ha_suggest_cleanup",
			mcp.WithDescription("Analyze the registries and return cleanup suggestions ranked by impact, together with the analysis and duplicates"),
		),
		makeSuggestCleanupHandler(analyzerSvc),
	)

	s.AddTool(
		mcp.NewTool("ha_get_report",
			mcp.WithDescription("Produce one of the registry reports by type"),
			mcp.WithString("type",
				mcp.Required(),
				mcp.Description("Report type"),
				mcp.Enum(reportKinds()...),
			),
		),
		makeGetReportHandler(analyzerSvc),
	)

	s.AddTool(
		mcp.NewTool("ha_check_connection",
			mcp.WithDescription("Verify the connection to Home Assistant and return the version, location and top platforms by entity count"),
		),
		makeCheckConnectionHandler(instanceSvc, registrySvc, baseURL),
	)
}

func makeAnalyzeEntitiesHandler(analyzerSvc service.AnalyzerService) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		analysis, err := analyzerSvc.AnalyzeEntities(ctx)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to analyze entities: %v", err)), nil
		}

		return textResult(response.ConvertAnalysis(analysis))
	}
}

func makeFindDuplicatesHandler(analyzerSvc service.AnalyzerService) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		duplicates, err := analyzerSvc.FindDuplicateEntities(ctx)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to find duplicate entities: %v", err)), nil
		}

		return textResult(response.ConvertDuplicates(duplicates))
	}
}

func makeSuggestCleanupHandler(analyzerSvc service.AnalyzerService) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		report, err := analyzerSvc.SuggestCleanup(ctx)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to suggest cleanup: %v", err)), nil
		}

		return textResult(response.ConvertCleanupReport(report))
	}
}

func makeGetReportHandler(analyzerSvc service.AnalyzerService) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		kind := request.GetString("type", "")
		if kind == "" {
			return mcp.NewToolResultError(fmt.Sprintf("Missing report type, expected one of: %s", strings.Join(reportKinds(), ", "))), nil
		}

		report, err := analyzerSvc.Report(ctx, kind)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to get report: %v", err)), nil
		}

		return textResult(response.ConvertReport(report))
	}
}

func makeCheckConnectionHandler(instanceSvc service.InstanceService, registrySvc service.RegistryService, baseURL string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		info, err := analyzer.CheckConnection(ctx, instanceSvc, registrySvc)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to connect to Home Assistant at %s: %v", baseURL, err)), nil
		}

		return textResult(response.ConvertConnectionInfo(baseURL, info))
	}
}

func textResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to encode result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

func reportKinds() []string {
	kinds := make([]string, 0, len(analyzer.ReportKinds))
	for _, kind := range analyzer.ReportKinds {
		kinds = append(kinds, string(kind))
	}
	return kinds
}
