package config

import (
	"io"

	"github.com/charmbracelet/log"
)

// NewLogger returns a logger writing to w at the level named by LOG_LEVEL
// (debug, info, warn, error). Unknown levels keep info.
func NewLogger(w io.Writer, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if level, err := log.ParseLevel(GetEnv("LOG_LEVEL", "info")); err == nil {
		logger.SetLevel(level)
	}
	return logger
}
