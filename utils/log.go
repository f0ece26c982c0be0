package utils

import (
	"io"

	"github.com/charmbracelet/log"
)

// NewLogger creates a console logger. Stdout is reserved for reports and
// the MCP transport, so callers pass stderr.
func NewLogger(w io.Writer, prefix string, debug bool) *log.Logger {
	level := log.InfoLevel
	if debug {
		level = log.DebugLevel
	}

	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
}
