// Package logging configures the process-wide zerolog logger.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup points the global logger at stdout: human-readable in development,
// JSON lines everywhere else.
func Setup(environment, level string) {
	SetupWriter(os.Stdout, environment, level)
}

// SetupWriter is Setup with an explicit destination
func SetupWriter(out io.Writer, environment, level string) {
	zerolog.SetGlobalLevel(Level(environment, level))

	w := out
	if environment == "development" {
		w = zerolog.ConsoleWriter{Out: out, TimeFormat: "15:04:05"}
	}

	log.Logger = zerolog.New(w).With().Timestamp().Logger()
}

// Level resolves the configured level name, defaulting by environment
func Level(environment, level string) zerolog.Level {
	if level != "" {
		if lvl, err := zerolog.ParseLevel(strings.ToLower(level)); err == nil {
			return lvl
		}
	}
	if environment == "development" {
		return zerolog.DebugLevel
	}
	return zerolog.InfoLevel
}
