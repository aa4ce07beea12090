// Package logging builds the leveled console logger used across tasklist.
package logging

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// DebugEnabled returns true if debug mode is enabled via TASKLIST_DEBUG environment variable
func DebugEnabled() bool {
	return os.Getenv("TASKLIST_DEBUG") != ""
}

// Options holds configuration for the console logger.
type Options struct {
	Verbose         bool
	ReportTimestamp bool
	Prefix          string
}

// DefaultOptions returns the options used by the tasklist command.
func DefaultOptions() Options {
	return Options{
		Verbose:         false,
		ReportTimestamp: false,
		Prefix:          "tasklist",
	}
}

// Level returns the level selected by the options: warnings by default,
// everything when verbose or TASKLIST_DEBUG is set.
func (o Options) Level() log.Level {
	if o.Verbose || DebugEnabled() {
		return log.DebugLevel
	}
	return log.WarnLevel
}

// New creates a logger writing to w. Log output goes to stderr in the
// command so it never interleaves with the table on stdout.
func New(w io.Writer, opts Options) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           opts.Level(),
		Formatter:       log.TextFormatter,
		ReportTimestamp: opts.ReportTimestamp,
		Prefix:          opts.Prefix,
	})
}

// Discard returns a logger that drops everything; used by tests.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
}
