// Package onboard hosts the first-launch onboarding flow: a short, ordered
// sequence of steps ending in a completion screen, with the user's answers
// persisted as they change.
//
// The package is display independent. Views are supplied by a
// router.ViewFactory; the SDL views live in the ui package.
package onboard

import (
	"io"
	"log/slog"
	"os"

	"github.com/BrandonKowalski/onboard/pkg/onboard/constants"
	"github.com/BrandonKowalski/onboard/pkg/onboard/internal"
)

// Options configures process-wide logging for the onboarding packages.
type Options struct {
	LogPath  string // Full path for the log file including filename (creates parent directories)
	LogLevel string // Application log level; falls back to ONBOARD_LOG_LEVEL
}

// Init configures logging. Call it once before starting a flow.
// In dev mode the internal logger is raised to debug so pager moves and
// persistence writes are visible.
func Init(options Options) {
	if options.LogPath != "" {
		internal.SetLogPath(options.LogPath)
	}

	level := options.LogLevel
	if level == "" {
		level = os.Getenv(constants.LogLevelEnvVar)
	}
	if level != "" {
		internal.SetRawLogLevel(level)
	}

	if constants.IsDevMode() {
		internal.SetInternalLogLevel(slog.LevelDebug)
	} else {
		internal.SetInternalLogLevel(slog.LevelError)
	}
}

// Close flushes and closes the log file, if any.
func Close() {
	internal.CloseLogger()
}

// SetLogPath sets the full path for the log file, including filename.
// Call before Init() to take effect during initialization.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// SetLogOutput sends all log output to w instead of stdout.
// Call before the first logger is used.
func SetLogOutput(w io.Writer) {
	internal.SetLogOutput(w)
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}

// SetInternalLogLevel sets the level of the flow, pager and store diagnostics.
func SetInternalLogLevel(level slog.Level) {
	internal.SetInternalLogLevel(level)
}
