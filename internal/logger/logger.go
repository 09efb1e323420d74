package logger

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// New returns a timestamped stderr logger. Debug lowers the level to DEBUG.
func New(debug bool) *log.Logger {
	return NewWithWriter(os.Stderr, debug)
}

func NewWithWriter(w io.Writer, debug bool) *log.Logger {
	level := log.InfoLevel
	if debug {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Level:           level,
		Prefix:          "flowseed",
	})
}
