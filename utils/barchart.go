package utils

import (
	"fmt"
	"io"
	"sort"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"
	"github.com/elC0mpa/ha-doctor/model"
	"github.com/jedib0t/go-pretty/v6/text"
)

const (
	ColorRank1 = "#d73027"
	ColorRank2 = "#f46d43"
	ColorRank3 = "#fee08b"
	ColorRank4 = "#abdda4"
	ColorRank5 = "#66c2a5"
	ColorRank6 = "#1a9850"
)

// maxChartBars limits the chart to the largest platforms
const maxChartBars = 6

var defaultStyle = lipgloss.NewStyle().
	BorderStyle(lipgloss.NormalBorder()).
	BorderForeground(lipgloss.Color("#F4D060"))

func DrawPlatformChart(w io.Writer, platforms []model.PlatformCount) {
	if len(platforms) == 0 {
		return
	}
	if len(platforms) > maxChartBars {
		platforms = platforms[:maxChartBars]
	}

	fmt.Fprintf(w, "\n%s\n", text.FgHiWhite.Sprint(" 📊 ENTITIES BY PLATFORM"))
	fmt.Fprintln(w, text.FgHiBlue.Sprint(" ------------------------------------------------"))

	bc := barchart.New(20*len(platforms), 20)

	indexedColors := assignRankedColors(platforms)

	for idx, platform := range platforms {
		bc.Push(barchart.BarData{
			Label: fmt.Sprintf("%s: %d", platform.Platform, platform.Count),
			Values: []barchart.BarValue{
				{
					Name:  platform.Platform,
					Value: float64(platform.Count),
					Style: lipgloss.NewStyle().Foreground(lipgloss.Color(indexedColors[idx])),
				},
			},
		})
	}

	bc.Draw()
	fmt.Fprintln(w, lipgloss.JoinHorizontal(lipgloss.Top, defaultStyle.Render(bc.View())))
}

// PlatformCounts converts platform sections into chart input
func PlatformCounts(sections []model.GroupSection) []model.PlatformCount {
	counts := make([]model.PlatformCount, 0, len(sections))
	for _, section := range sections {
		counts = append(counts, model.PlatformCount{Platform: section.Key, Count: section.Count})
	}
	return counts
}

func assignRankedColors(platforms []model.PlatformCount) []string {
	palette := []string{ColorRank1, ColorRank2, ColorRank3, ColorRank4, ColorRank5, ColorRank6}

	type countWithIndex struct {
		index int
		value int
	}

	countsToSort := make([]countWithIndex, len(platforms))
	for i, platform := range platforms {
		countsToSort[i] = countWithIndex{index: i, value: platform.Count}
	}

	sort.SliceStable(countsToSort, func(i, j int) bool {
		return countsToSort[i].value > countsToSort[j].value
	})

	resultColors := make([]string, len(platforms))
	for rank, sorted := range countsToSort {
		if rank < len(palette) {
			resultColors[sorted.index] = palette[rank]
		}
	}

	return resultColors
}
