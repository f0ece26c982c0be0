package main

import (
	"fmt"
	"strings"

	"github.com/elC0mpa/ha-doctor/model"
	"github.com/elC0mpa/ha-doctor/service/analyzer"
	"github.com/elC0mpa/ha-doctor/service/flag"
	"github.com/elC0mpa/ha-doctor/service/orchestrator"
	"github.com/spf13/cobra"
)

// workflowFunc runs one workflow with the parsed command line flags
type workflowFunc func(cmd *cobra.Command, flags model.Flags) error

const reportTypeFlag = "type"

func newRootCmd(run workflowFunc) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "ha-doctor",
		Short: "Diagnose the entity, device and area registries of a Home Assistant instance",
		Long: `ha-doctor fetches the registries of a Home Assistant instance and reports
orphaned, hidden, disabled, unused, duplicate and unassigned entities together
with ranked cleanup suggestions.

The instance is read from HA_BASE_URL and HA_ACCESS_TOKEN (a .env file in the
working directory is loaded when present) or from the --url and --token flags.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	flag.Register(rootCmd.PersistentFlags())

	rootCmd.AddCommand(
		newWorkflowCmd(run, string(analyzer.ReportAnalysis), "analyze", "Classify every entity by platform, domain and area"),
		newWorkflowCmd(run, string(analyzer.ReportDuplicates), "duplicates", "List entities sharing a display name"),
		newWorkflowCmd(run, string(analyzer.ReportCleanup), "cleanup", "Analyze the registries and rank cleanup suggestions"),
		newWorkflowCmd(run, orchestrator.WorkflowCheck, "check", "Verify the connection and summarize the entity registry"),
		newWorkflowCmd(run, orchestrator.WorkflowRules, "rules", "List the cleanup heuristics"),
		newReportCmd(run),
	)

	return rootCmd
}

func newWorkflowCmd(run workflowFunc, report, use, short string) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			flags, err := flag.NewService(cmd.Flags()).GetParsedFlags(report)
			if err != nil {
				return err
			}
			return run(cmd, flags)
		},
	}
}

func newReportCmd(run workflowFunc) *cobra.Command {
	kinds := make([]string, 0, len(analyzer.ReportKinds))
	for _, kind := range analyzer.ReportKinds {
		kinds = append(kinds, string(kind))
	}

	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Produce a report by type",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			report, err := cmd.Flags().GetString(reportTypeFlag)
			if err != nil {
				return err
			}

			// check and rules are workflows of their own, not report types
			kind, err := analyzer.ParseReportKind(report)
			if err != nil {
				return err
			}

			flags, err := flag.NewService(cmd.Flags()).GetParsedFlags(string(kind))
			if err != nil {
				return err
			}
			return run(cmd, flags)
		},
	}
	reportCmd.Flags().String(reportTypeFlag, "", fmt.Sprintf("Report type (%s)", strings.Join(kinds, ", ")))
	_ = reportCmd.MarkFlagRequired(reportTypeFlag)

	return reportCmd
}
