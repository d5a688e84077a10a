package logger

import (
	"os"
	"sync/atomic"

	charm "github.com/charmbracelet/log"
)

// defaultLogger is the global default AlpLogger instance stored atomically.
var defaultLogger atomic.Value

func init() {
	defaultLogger.Store(NewAlpLogger(charm.Default()))
}

// Default returns the global default AlpLogger instance.
func Default() *AlpLogger {
	return defaultLogger.Load().(*AlpLogger)
}

// SetDefault sets a new global default AlpLogger instance.
func SetDefault(logger *AlpLogger) {
	if logger != nil {
		defaultLogger.Store(logger)
	}
}

// New creates a new AlpLogger writing to stderr.
func New() *AlpLogger {
	return NewAlpLogger(charm.New(os.Stderr))
}

// Trace logs at trace level on the default logger.
func Trace(msg interface{}, keyvals ...interface{}) {
	Default().Trace(msg, keyvals...)
}

// Debug logs at debug level on the default logger.
func Debug(msg interface{}, keyvals ...interface{}) {
	Default().Debug(msg, keyvals...)
}

// Info logs at info level on the default logger.
func Info(msg interface{}, keyvals ...interface{}) {
	Default().Info(msg, keyvals...)
}

// Warn logs at warn level on the default logger.
func Warn(msg interface{}, keyvals ...interface{}) {
	Default().Warn(msg, keyvals...)
}

// Error logs at error level on the default logger.
func Error(msg interface{}, keyvals ...interface{}) {
	Default().Error(msg, keyvals...)
}

// Configure replaces the default logger with one writing to file at the given
// level. The returned closer releases the log file.
func Configure(level, file string) (func() error, error) {
	logLevel, err := ParseLogLevel(level)
	if err != nil {
		return nil, err
	}

	w, closer, err := OpenOutput(file)
	if err != nil {
		return nil, err
	}

	SetDefault(NewAlpLogger(charm.NewWithOptions(w, charm.Options{
		Level:           logLevel.ToCharmLevel(),
		ReportTimestamp: false,
	})))
	return closer, nil
}
