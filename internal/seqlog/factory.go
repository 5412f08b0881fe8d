// Package seqlog provides the per-component charmbracelet/log loggers used
// across the tree packages for Debug-level tracing: branch splits,
// suffix-link resolution misses, preprocessing invalidation. Logging never
// drives control flow; every component works identically with logging
// disabled.
package seqlog

import (
	"os"

	"github.com/charmbracelet/log"
)

// Component names passed to New, kept as constants so call sites can't
// typo a component and silently log under the wrong prefix.
const (
	Radix    = "radix"
	Suffix   = "suffix"
	Kernel   = "kernel"
	EditDist = "editdist"
)

// New creates a charm logger prefixed with component, at the process-wide
// log level (log.GetLevel) in effect when New is called; a later
// log.SetLevel does not change it.
func New(component string) *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		Prefix:          component,
		ReportCaller:    false,
		ReportTimestamp: false,
		Formatter:       log.TextFormatter,
		Level:           log.GetLevel(),
	})
}

// NewWithLevel creates a component logger pinned to level regardless of
// the process-wide default, for callers (such as tests) that need to
// override it locally.
func NewWithLevel(component string, level log.Level) *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		Prefix:          component,
		ReportCaller:    false,
		ReportTimestamp: false,
		Formatter:       log.TextFormatter,
		Level:           level,
	})
}
