package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/elC0mpa/ha-doctor/config"
	"github.com/elC0mpa/ha-doctor/model"
	"github.com/elC0mpa/ha-doctor/service/analyzer"
	haconfig "github.com/elC0mpa/ha-doctor/service/homeassistant/config"
	haregistry "github.com/elC0mpa/ha-doctor/service/homeassistant/registry"
	"github.com/elC0mpa/ha-doctor/service/orchestrator"
	"github.com/elC0mpa/ha-doctor/utils"
	"github.com/spf13/cobra"
)

func main() {
	envLoaded := config.LoadEnvFile()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	logger := utils.NewLogger(os.Stderr, "ha-doctor", config.LoadConfig().Debug)
	if !envLoaded {
		logger.Debug("No .env file found, using system environment variables")
	}

	if err := newRootCmd(runWorkflow).ExecuteContext(ctx); err != nil {
		utils.StopSpinner()
		logger.Error("command failed", "err", err)
		os.Exit(1)
	}
}

func runWorkflow(cmd *cobra.Command, flags model.Flags) error {
	cfg := config.LoadConfig()
	cfg.ApplyFlags(flags)

	logger := utils.NewLogger(os.Stderr, "ha-doctor", cfg.Debug)
	out := cmd.OutOrStdout()

	if flags.Report == orchestrator.WorkflowRules {
		return orchestrator.NewService(nil, nil, nil, "", out).Orchestrate(cmd.Context(), flags)
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	configService := haconfig.NewService(cfg.BaseURL, cfg.AccessToken, cfg.Timeout)
	client, err := configService.GetHTTPClient(cmd.Context())
	if err != nil {
		return err
	}

	registryService := haregistry.NewService(client, configService.GetBaseURL())
	analyzerService := analyzer.NewService(registryService, cfg.AnalyzerOptions())
	orchestratorService := orchestrator.NewService(analyzerService, registryService, registryService, configService.GetBaseURL(), out)

	logger.Debug("running workflow", "report", flags.Report, "url", configService.GetBaseURL(), "timeout", cfg.Timeout)

	if !flags.JSON {
		utils.DrawBanner(out)
		utils.StartSpinner()
	}

	return orchestratorService.Orchestrate(cmd.Context(), flags)
}
