package logger

import (
	"io"
	"log"
	"log/slog"
	"os"
	"strings"
)

const (
	// EnvVarLogLevel is the environment variable name for setting the log level.
	EnvVarLogLevel = "LOG_LEVEL"

	// FormatJSON writes one JSON object per line.
	FormatJSON = "json"

	// FormatText writes logfmt-style key=value lines.
	FormatText = "text"
)

// NewStructuredLogger creates a structured logger writing to w.
// Module name and version are included in the logger's context.
// AddSource is enabled for debug level logging only.
// Parameters:
//   - w: Destination of the log lines; os.Stderr when nil.
//   - module: The name of the module/application using the logger.
//   - version: The version of the module/application (e.g., "v1.0.0").
//   - level: The log level as a string (e.g., "debug", "info", "warn", "error").
//   - format: FormatJSON or FormatText; anything else is treated as JSON.
func NewStructuredLogger(w io.Writer, module, version, level, format string) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}

	lev := ParseLogLevel(level)
	opts := &slog.HandlerOptions{
		Level:     lev,
		AddSource: lev <= slog.LevelDebug,
	}

	var h slog.Handler
	if strings.EqualFold(strings.TrimSpace(format), FormatText) {
		h = slog.NewTextHandler(w, opts)
	} else {
		h = slog.NewJSONHandler(w, opts)
	}

	return slog.New(h).With("module", module, "version", version)
}

// NewLogLogger adapts l to a standard library log.Logger at the given level,
// for APIs such as http.Server.ErrorLog.
func NewLogLogger(l *slog.Logger, level slog.Level) *log.Logger {
	return slog.NewLogLogger(l.Handler(), level)
}

// SetDefaultLogger initializes the structured logger and sets it as the
// default logger. The level is derived from the LOG_LEVEL environment variable.
func SetDefaultLogger(module, version string) *slog.Logger {
	return SetDefaultLoggerWithLevel(module, version, os.Getenv(EnvVarLogLevel), FormatJSON)
}

// SetDefaultLoggerWithLevel initializes the structured logger with the
// specified level and format and sets it as the default logger.
func SetDefaultLoggerWithLevel(module, version, level, format string) *slog.Logger {
	l := NewStructuredLogger(os.Stderr, module, version, level, format)
	slog.SetDefault(l)
	return l
}

// ParseLogLevel converts a string representation of a log level into a slog.Level.
// Defaults to slog.LevelInfo for unrecognized strings.
func ParseLogLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
