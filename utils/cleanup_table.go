package utils

import (
	"fmt"
	"io"

	"github.com/elC0mpa/ha-doctor/model"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

func DrawDuplicatesTable(w io.Writer, clusters []model.DuplicateCluster) {
	if len(clusters) == 0 {
		fmt.Fprintf(w, "\n %s\n", text.FgHiGreen.Sprint("✓ No duplicate entity names found"))
		return
	}

	tw := newTable(w, "Duplicate Entity Names")
	tw.AppendHeader(table.Row{"Name", "Count", "Entity ID", "Platform", "Device ID", "Disabled"})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, AutoMerge: true},
		{Number: 2, AutoMerge: true, Align: text.AlignRight},
	})

	for _, cluster := range clusters {
		for _, member := range cluster.Entities {
			disabled := ""
			if member.Disabled {
				disabled = text.FgYellow.Sprint("yes")
			}

			tw.AppendRow(table.Row{
				text.FgHiYellow.Sprint(cluster.Name),
				cluster.Count,
				member.EntityID,
				valueOrDash(member.Platform),
				valueOrDash(member.DeviceID),
				disabled,
			})
		}
		tw.AppendSeparator()
	}

	tw.Render()
}

func DrawSuggestionsTable(w io.Writer, suggestions []model.Suggestion) {
	if len(suggestions) == 0 {
		fmt.Fprintf(w, "\n %s\n", text.FgHiGreen.Sprint("✓ Nothing to clean up"))
		return
	}

	tw := newTable(w, "Cleanup Suggestions")
	tw.AppendHeader(table.Row{"Impact", "Suggestion", "Type", "Entities"})

	for _, suggestion := range suggestions {
		tw.AppendRow(table.Row{
			impactCell(suggestion.Impact),
			suggestion.Description,
			string(suggestion.Kind),
			previewEntities(suggestion.Entities),
		})
	}

	tw.Render()
}

func impactCell(impact model.Impact) string {
	switch impact {
	case model.ImpactHigh:
		return text.FgHiRed.Sprint("HIGH")
	case model.ImpactMedium:
		return text.FgHiYellow.Sprint("MEDIUM")
	default:
		return text.FgHiBlue.Sprint("LOW")
	}
}

func valueOrDash(s *string) string {
	if v := model.StringValue(s); v != "" {
		return v
	}
	return "-"
}
