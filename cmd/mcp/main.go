package main

import (
	"context"
	"os"

	"github.com/elC0mpa/ha-doctor/cmd/mcp/tools"
	"github.com/elC0mpa/ha-doctor/config"
	"github.com/elC0mpa/ha-doctor/utils"
	"github.com/mark3labs/mcp-go/server"
)

func main() {
	envLoaded := config.LoadEnvFile()
	cfg := config.LoadConfig()

	// stdout carries the MCP protocol
	logger := utils.NewLogger(os.Stderr, "ha-doctor-mcp", cfg.Debug)
	if !envLoaded {
		logger.Debug("No .env file found, using system environment variables")
	}

	svcs, err := newServices(context.Background(), cfg)
	if err != nil {
		logger.Fatal("Failed to configure Home Assistant", "err", err)
	}

	s := server.NewMCPServer(
		"ha-doctor-mcp",
		"1.0.0",
		server.WithToolCapabilities(true),
	)

	tools.RegisterHomeAssistantTools(s, svcs.analyzer, svcs.instance, svcs.registry, svcs.baseURL)

	logger.Info("Serving Home Assistant tools over stdio", "url", svcs.baseURL)
	if err := server.ServeStdio(s); err != nil {
		logger.Error("Server error", "err", err)
		os.Exit(1)
	}
}
