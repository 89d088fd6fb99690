// Package logging provides the process-wide structured logger. The core
// partitioning packages stay log-free (errors carry their own context); the
// CLI and any embedding service log through this package.
package logging

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger builds a zerolog logger writing JSON to stdout with RFC3339
// timestamps. Environment switches:
//
//	PRETTY=1  human-readable console output on stderr
//	DEBUG=1   debug-level logging
func NewLogger() zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339Nano

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	if os.Getenv("PRETTY") == "1" {
		logger = logger.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
	if os.Getenv("DEBUG") == "1" {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	return logger
}
