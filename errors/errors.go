package errors

import (
	"github.com/cockroachdb/errors"
)

// Time conversion errors.
var (
	// ErrBeforeEpoch is the domain error raised when an instant precedes the configured epoch.
	ErrBeforeEpoch        = errors.New("instant precedes the alp epoch")
	ErrInvalidSpeed       = errors.New("speed multiplier must be positive")
	ErrInvalidDateLiteral = errors.New("invalid date literal")
	ErrUnitOutOfRange     = errors.New("alp unit out of range")
	ErrInvalidTimezone    = errors.New("invalid timezone")
	ErrTimeOutOfRange     = errors.New("instant is too far past the alp epoch")
)

// Rendering errors.
var (
	ErrUnknownUnit        = errors.New("unknown unit")
	ErrInvalidDisplayType = errors.New("invalid display type")
)

// CLI and configuration errors.
var (
	ErrInvalidLogLevel      = errors.New("invalid log level")
	ErrInvalidInterval      = errors.New("redraw interval must be positive")
	ErrInvalidPositionalArg = errors.New("invalid positional arguments")
	ErrOpenLogFile          = errors.New("failed to open log file")
	ErrInterrupted          = errors.New("interrupted")
)
