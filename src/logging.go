package wwv

/*
Logging (ambient stack).

The teacher's go.mod already names charmbracelet/log as an intended
dependency, but the teacher's own cgo-era textcolor.go/dw_printf path
never actually imports it — every direwolf log line goes through a
hand-rolled ANSI-escape text colorizer instead. This repo is the first
to actually wire charmbracelet/log in, using its level-based API
(Debug/Info/Warn/Error) in place of dw_printf's severity-by-color-code
convention.
*/

import (
	"os"

	"github.com/charmbracelet/log"
)

// NewLogger returns a charmbracelet/log logger writing to stderr, with
// Debug-level output gated by verbose (spec.md §6's -v/--verbose).
func NewLogger(verbose bool) *log.Logger {
	l := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
	})
	if verbose {
		l.SetLevel(log.DebugLevel)
	} else {
		l.SetLevel(log.InfoLevel)
	}
	return l
}
