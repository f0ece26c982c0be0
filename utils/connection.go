package utils

import (
	"fmt"
	"io"

	"github.com/elC0mpa/ha-doctor/model"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

func DrawConnectionInfo(w io.Writer, baseURL string, info *model.ConnectionInfo) {
	fmt.Fprintf(w, "\n %s\n", text.FgHiGreen.Sprint("✓ Connection successful"))
	fmt.Fprintf(w, " URL: %s\n", text.FgBlue.Sprint(baseURL))
	fmt.Fprintf(w, " Home Assistant version: %s\n", text.FgHiWhite.Sprint(info.Instance.Version))
	fmt.Fprintf(w, " Location: %s\n", text.FgHiWhite.Sprint(info.Instance.LocationName))
	fmt.Fprintf(w, " Total entities: %s\n", text.FgHiWhite.Sprint(info.TotalEntities))

	tw := newTable(w, fmt.Sprintf("Top %d platforms by entity count", len(info.TopPlatforms)))
	tw.AppendHeader(table.Row{"Platform", "Entities"})
	tw.SetColumnConfigs([]table.ColumnConfig{{Number: 2, Align: text.AlignRight}})
	for _, platform := range info.TopPlatforms {
		tw.AppendRow(table.Row{text.FgGreen.Sprint(platform.Platform), platform.Count})
	}
	tw.Render()
}
