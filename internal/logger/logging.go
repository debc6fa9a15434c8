// Package logger provides charmbracelet/log loggers configured for wordgrid.
// Everything goes to stderr so stdout carries only results and IPC frames.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// New creates a new default charm log.
func New(prefix string) *log.Logger {
	return NewWithConfig(prefix, log.GetLevel(), false, false, log.TextFormatter)
}

// NewWithConfig creates a new charm log with custom config
func NewWithConfig(prefix string, level log.Level, caller bool, showTimestamp bool, fmt log.Formatter) *log.Logger {
	return newWithWriter(os.Stderr, prefix, level, caller, showTimestamp, fmt)
}

func newWithWriter(w io.Writer, prefix string, level log.Level, caller bool, showTimestamp bool, fmt log.Formatter) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Prefix:          prefix,
		Level:           level,
		ReportCaller:    caller,
		ReportTimestamp: showTimestamp,
		Formatter:       fmt,
	})
}

// SetupGlobal points the global logger at stderr and sets its level.
// debug overrides level; an unparseable level falls back to warn.
func SetupGlobal(level string, debug bool) log.Level {
	lvl := ParseLevel(level)
	if debug {
		lvl = log.DebugLevel
	}
	log.SetOutput(os.Stderr)
	log.SetLevel(lvl)
	log.SetReportTimestamp(debug)
	return lvl
}

// ParseLevel maps a config string to a level, warn if it is not recognized.
func ParseLevel(level string) log.Level {
	lvl, err := log.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		return log.WarnLevel
	}
	return lvl
}
