package utils

import (
	"fmt"
	"io"
	"strings"

	"github.com/elC0mpa/ha-doctor/model"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// maxListedEntities caps the entity IDs printed per table row
const maxListedEntities = 5

func DrawAnalysisTables(w io.Writer, analysis *model.Analysis) {
	fmt.Fprintf(w, "\n%s\n", text.FgHiWhite.Sprint(" 🏠 HOME ASSISTANT ENTITY DIAGNOSIS"))
	fmt.Fprintln(w, text.FgHiBlue.Sprint(" ------------------------------------------------"))

	drawSummaryTable(w, analysis.Summary)
	drawGroupTable(w, "Entities by Domain", "Domain", analysis.ByDomain)
	drawGroupTable(w, "Entities by Platform", "Platform", analysis.ByPlatform)
	drawAreaTable(w, analysis.ByArea)
	drawProblemTable(w, analysis.Problems)
}

func drawSummaryTable(w io.Writer, summary model.Summary) {
	tw := newTable(w, "Summary")
	tw.AppendHeader(table.Row{"Metric", "Count"})
	tw.SetColumnConfigs([]table.ColumnConfig{{Number: 2, Align: text.AlignRight}})

	tw.AppendRows([]table.Row{
		{"Entities", summary.TotalEntities},
		{"Devices", summary.TotalDevices},
		{"Areas", summary.TotalAreas},
	})
	tw.AppendSeparator()
	tw.AppendRows([]table.Row{
		{"Hidden", countCell(summary.HiddenCount)},
		{"Disabled", countCell(summary.DisabledCount)},
		{"Orphaned", countCell(summary.OrphanedCount)},
		{"Unused", countCell(summary.UnusedCount)},
		{"Unassigned", countCell(summary.UnassignedCount)},
	})

	tw.Render()
}

func drawGroupTable(w io.Writer, title, keyHeader string, sections []model.GroupSection) {
	tw := newTable(w, title)
	tw.AppendHeader(table.Row{keyHeader, "Count", "Entities"})
	tw.SetColumnConfigs([]table.ColumnConfig{{Number: 2, Align: text.AlignRight}})

	for _, section := range sections {
		tw.AppendRow(table.Row{
			text.FgGreen.Sprint(section.Key),
			section.Count,
			previewEntities(section.Entities),
		})
	}

	tw.Render()
}

func drawAreaTable(w io.Writer, sections []model.AreaSection) {
	tw := newTable(w, "Entities by Area")
	tw.AppendHeader(table.Row{"Area", "Area ID", "Count", "Entities"})
	tw.SetColumnConfigs([]table.ColumnConfig{{Number: 3, Align: text.AlignRight}})

	for _, section := range sections {
		name := text.FgGreen.Sprint(section.AreaName)
		if section.AreaID == model.UnassignedAreaID && section.Count > 0 {
			name = text.FgYellow.Sprint(section.AreaName)
		}

		tw.AppendRow(table.Row{name, section.AreaID, section.Count, previewEntities(section.Entities)})
	}

	tw.Render()
}

func drawProblemTable(w io.Writer, problems model.ProblemEntities) {
	tw := newTable(w, "Problem Entities")
	tw.AppendHeader(table.Row{"Problem", "Count", "Entities"})
	tw.SetColumnConfigs([]table.ColumnConfig{{Number: 2, Align: text.AlignRight}})

	rows := []struct {
		label string
		ids   []string
	}{
		{"Hidden", problems.Hidden},
		{"Disabled", problems.Disabled},
		{"Orphaned", problems.Orphaned},
		{"Unused", problems.Unused},
	}
	for _, row := range rows {
		tw.AppendRow(table.Row{row.label, countCell(len(row.ids)), previewEntities(row.ids)})
	}

	tw.Render()
}

func newTable(w io.Writer, title string) table.Writer {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetTitle(title)
	tw.SetStyle(table.StyleRounded)
	return tw
}

func countCell(count int) string {
	if count > 0 {
		return text.FgHiRed.Sprintf("%d", count)
	}
	return text.FgHiGreen.Sprintf("%d", count)
}

func previewEntities(ids []string) string {
	if len(ids) <= maxListedEntities {
		return strings.Join(ids, "\n")
	}
	preview := strings.Join(ids[:maxListedEntities], "\n")
	return fmt.Sprintf("%s\n%s", preview, text.FgHiBlack.Sprintf("... and %d more", len(ids)-maxListedEntities))
}
