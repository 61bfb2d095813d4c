package infra

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger returns a JSON logger on stdout, or a debug-level console logger
// in development.
func NewLogger(appEnv string) zerolog.Logger {
	return newLogger(os.Stdout, appEnv == "development")
}

// NewConsoleLogger is the human-readable stderr logger used by command line
// tools.
func NewConsoleLogger(verbose bool) zerolog.Logger {
	return newLogger(os.Stderr, true).Level(levelFor(verbose))
}

func newLogger(out io.Writer, console bool) zerolog.Logger {
	logger := zerolog.New(out).
		Level(levelFor(console)).
		With().
		Timestamp().
		Logger()

	if console {
		logger = logger.Output(zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339})
	}
	return logger
}

func levelFor(debug bool) zerolog.Level {
	if debug {
		return zerolog.DebugLevel
	}
	return zerolog.InfoLevel
}

// Logger lets packages take a logger without importing zerolog directly.
type Logger = zerolog.Logger
