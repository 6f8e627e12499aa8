package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

var Logger *log.Logger

// LogLevel represents available log levels
type LogLevel string

const (
	DebugLevel LogLevel = "debug"
	InfoLevel  LogLevel = "info"
	WarnLevel  LogLevel = "warn"
	ErrorLevel LogLevel = "error"
)

// InitLogger initializes the global logger with configuration from environment variables
func InitLogger() {
	Configure(os.Stderr, ParseLevel(os.Getenv("LOG_LEVEL")), os.Getenv("LOG_FORMAT"))
}

// Configure replaces the global logger. Format "json" switches to the JSON
// formatter, anything else keeps the pretty text output.
func Configure(w io.Writer, level LogLevel, format string) {
	Logger = log.New(w)
	setLogLevel(Logger, level)

	if strings.EqualFold(format, "json") {
		Logger.SetFormatter(log.JSONFormatter)
	} else {
		Logger.SetReportTimestamp(true)
		Logger.SetReportCaller(true)
	}
	Logger.SetPrefix("terrainpainter")

	Logger.Debug("Logger initialized successfully", "level", level, "format", format)
}

// ParseLevel maps a level name to a LogLevel. Unknown names fall back to debug.
func ParseLevel(name string) LogLevel {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return DebugLevel
	case "info":
		return InfoLevel
	case "warn", "warning":
		return WarnLevel
	case "error":
		return ErrorLevel
	default:
		return DebugLevel
	}
}

// setLogLevel configures the logger with the specified level
func setLogLevel(logger *log.Logger, level LogLevel) {
	switch level {
	case InfoLevel:
		logger.SetLevel(log.InfoLevel)
	case WarnLevel:
		logger.SetLevel(log.WarnLevel)
	case ErrorLevel:
		logger.SetLevel(log.ErrorLevel)
	default:
		logger.SetLevel(log.DebugLevel)
	}
}

// GetLogger returns the global logger instance
func GetLogger() *log.Logger {
	if Logger == nil {
		InitLogger()
	}
	return Logger
}

// WithFields creates a logger with contextual fields
func WithFields(fields ...interface{}) *log.Logger {
	return GetLogger().With(fields...)
}

// WithLayer creates a logger with noise layer context
func WithLayer(index int, seed int64) *log.Logger {
	return WithFields("layer", index, "seed", seed)
}

// WithGrid creates a logger with grid dimension context
func WithGrid(width, height int) *log.Logger {
	return WithFields("width", width, "height", height)
}

// WithDuration creates a logger with duration context (for performance logging)
func WithDuration(operation string, duration time.Duration) *log.Logger {
	return WithFields("operation", operation, "duration", duration)
}
