package logger

import (
	"io"
	"os"
	"strings"

	charm "github.com/charmbracelet/log"

	errUtils "github.com/cloudposse/alp/errors"
)

// Level is the charmbracelet/log level type.
type Level = charm.Level

// TraceLevel is one step more verbose than DebugLevel.
const TraceLevel Level = charm.DebugLevel - 1

// Re-exported levels so callers only import this package.
const (
	DebugLevel = charm.DebugLevel
	InfoLevel  = charm.InfoLevel
	WarnLevel  = charm.WarnLevel
	ErrorLevel = charm.ErrorLevel
	FatalLevel = charm.FatalLevel
)

// offLevel is above every level a message can be logged at.
const offLevel Level = charm.FatalLevel + 1

// LogLevel is the user-facing log level name accepted by --logs-level.
type LogLevel string

const (
	LogLevelOff     LogLevel = "Off"
	LogLevelTrace   LogLevel = "Trace"
	LogLevelDebug   LogLevel = "Debug"
	LogLevelInfo    LogLevel = "Info"
	LogLevelWarning LogLevel = "Warning"
)

// ParseLogLevel validates a user-facing log level name. An empty string means Info.
func ParseLogLevel(logLevel string) (LogLevel, error) {
	if logLevel == "" {
		return LogLevelInfo, nil
	}

	for _, level := range []LogLevel{LogLevelTrace, LogLevelDebug, LogLevelInfo, LogLevelWarning, LogLevelOff} {
		if strings.EqualFold(logLevel, string(level)) {
			return level, nil
		}
	}

	return "", errUtils.Build(errUtils.ErrInvalidLogLevel).
		WithContext("level", logLevel).
		WithHint("Supported log levels are Trace, Debug, Info, Warning, Off").
		WithExitCode(errUtils.ExitCodeUsage).
		Err()
}

// ToCharmLevel maps a LogLevel onto the charmbracelet/log level.
func (l LogLevel) ToCharmLevel() Level {
	switch l {
	case LogLevelTrace:
		return TraceLevel
	case LogLevelDebug:
		return DebugLevel
	case LogLevelWarning:
		return WarnLevel
	case LogLevelOff:
		return offLevel
	default:
		return InfoLevel
	}
}

// AlpLogger wraps a charmbracelet logger and adds the trace level.
type AlpLogger struct {
	*charm.Logger
}

// NewAlpLogger wraps an existing charmbracelet logger.
func NewAlpLogger(l *charm.Logger) *AlpLogger {
	l.SetStyles(getLogStyles())
	return &AlpLogger{Logger: l}
}

// Trace logs a message below debug level.
func (l *AlpLogger) Trace(msg interface{}, keyvals ...interface{}) {
	l.Log(TraceLevel, msg, keyvals...)
}

// GetLevelString returns the lowercase name of the current level.
func (l *AlpLogger) GetLevelString() string {
	switch level := l.GetLevel(); level {
	case TraceLevel:
		return "trace"
	case offLevel:
		return "off"
	default:
		return level.String()
	}
}

// OpenOutput resolves a --logs-file value into a writer. The returned closer
// is a no-op for the standard streams.
func OpenOutput(file string) (io.Writer, func() error, error) {
	noop := func() error { return nil }

	switch file {
	case "", "/dev/stderr":
		return os.Stderr, noop, nil
	case "/dev/stdout":
		return os.Stdout, noop, nil
	case "/dev/null":
		return io.Discard, noop, nil
	}

	f, err := os.OpenFile(file, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0o644)
	if err != nil {
		return nil, noop, errUtils.Build(errUtils.ErrOpenLogFile).
			WithExplanation(err.Error()).
			WithContext("file", file).
			Err()
	}
	return f, f.Close, nil
}
