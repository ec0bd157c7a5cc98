package config

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger builds the base zerolog logger from LOG_LEVEL / LOG_FORMAT.
// Defaults to JSON at info level on stdout.
func NewLogger() zerolog.Logger {
	level := zerolog.InfoLevel
	if parsed, err := zerolog.ParseLevel(strings.ToLower(EnvOrDefault("LOG_LEVEL", "info"))); err == nil {
		level = parsed
	}

	var output = zerolog.New(os.Stdout)
	if strings.ToLower(EnvOrDefault("LOG_FORMAT", "json")) == "console" {
		output = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	}

	zerolog.TimeFieldFormat = time.RFC3339Nano
	return output.
		Level(level).
		With().
		Timestamp().
		Str("app", "stayhub-backend").
		Logger()
}
