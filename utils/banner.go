package utils

import (
	"fmt"
	"io"

	"github.com/common-nighthawk/go-figure"
	"github.com/jedib0t/go-pretty/v6/text"
)

func DrawBanner(w io.Writer) {
	banner := figure.NewFigure("HA Doctor", "", true)
	fmt.Fprintln(w, text.FgHiCyan.Sprint(banner.String()))
}
