package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Prefix is prepended to every line of human-readable log output.
const Prefix = "🎨 "

// Options controls how NewLogger builds its logger.
type Options struct {
	Name   string
	Level  string    // "trace".."error", or "json" / "json:<level>"
	Output io.Writer // defaults to stderr, or a rotating file if SPLASHGEN_LOG_PATH is set
}

// NewLogger creates a new hclog logger with standard settings
func NewLogger(opts Options) hclog.Logger {
	level, jsonFormat := ParseLevel(opts.Level)

	output := opts.Output
	if output == nil {
		output = defaultOutput()
	}

	// Add prefix for non-JSON output
	if !jsonFormat {
		output = NewPrefixWriter(Prefix, output)
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:       opts.Name,
		Level:      hclog.LevelFromString(level),
		JSONFormat: jsonFormat,
		Output:     output,
		TimeFormat: "2006-01-02T15:04:05Z", // UTC ISO format
		TimeFn: func() time.Time {
			return time.Now().UTC()
		},
	})
}

// ParseLevel splits a level string of the form "json" or "json:debug" into
// the hclog level name and whether JSON output was requested.
func ParseLevel(level string) (string, bool) {
	if level == "" {
		level = GetLogLevel()
	}
	if !strings.HasPrefix(level, "json") {
		return level, false
	}
	parts := strings.SplitN(level, ":", 2)
	if len(parts) > 1 && parts[1] != "" {
		return parts[1], true
	}
	return "info", true
}

// GetLogLevel returns the configured log level from environment
func GetLogLevel() string {
	level := os.Getenv("SPLASHGEN_LOG_LEVEL")
	if level == "" {
		level = "warn"
	}
	return level
}

func defaultOutput() io.Writer {
	if logPath := os.Getenv("SPLASHGEN_LOG_PATH"); logPath != "" {
		return &lumberjack.Logger{
			Filename:   logPath,
			MaxSize:    1,
			MaxBackups: 2,
		}
	}
	return os.Stderr
}
