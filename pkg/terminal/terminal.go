package terminal

import (
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/cloudposse/alp/pkg/schema"
	tmpl "github.com/cloudposse/alp/pkg/template"
)

// Terminal provides terminal capability detection.
type Terminal interface {
	// IsTTY returns whether the given stream is a TTY.
	IsTTY(stream Stream) bool

	// ColorProfile returns the terminal's color capabilities.
	ColorProfile() ColorProfile

	// Width returns the terminal width for the given stream.
	// Returns 0 if width cannot be determined.
	Width(stream Stream) int

	// Styles returns the style provider matching the color profile.
	Styles() tmpl.StyleProvider
}

// Stream represents a terminal stream.
type Stream int

const (
	Stdin Stream = iota
	Stdout
	Stderr
)

// ColorProfile represents terminal color capabilities.
type ColorProfile int

const (
	ColorNone ColorProfile = iota // No color support
	Color16                       // 16 colors (basic ANSI)
	Color256                      // 256 colors
	ColorTrue                     // Truecolor (16 million colors)
)

// String returns the string representation of ColorProfile.
func (c ColorProfile) String() string {
	switch c {
	case ColorNone:
		return "None"
	case Color16:
		return "16"
	case Color256:
		return "256"
	case ColorTrue:
		return "TrueColor"
	default:
		return "Unknown"
	}
}

// Config holds terminal configuration from flags and the environment.
type Config struct {
	// From CLI flags
	NoColor bool
	Color   bool

	// From environment variables
	EnvNoColor       bool   // NO_COLOR
	EnvCLIColor      string // CLICOLOR
	EnvCLIColorForce bool   // CLICOLOR_FORCE
	EnvTerm          string // TERM
	EnvColorTerm     string // COLORTERM
}

// NewConfig combines the terminal settings with the color environment variables.
func NewConfig(settings schema.Terminal) *Config {
	return &Config{
		NoColor: settings.NoColor,
		Color:   settings.Color,

		EnvNoColor:       os.Getenv("NO_COLOR") != "",
		EnvCLIColor:      os.Getenv("CLICOLOR"),
		EnvCLIColorForce: os.Getenv("CLICOLOR_FORCE") != "",
		EnvTerm:          os.Getenv("TERM"),
		EnvColorTerm:     os.Getenv("COLORTERM"),
	}
}

// terminal implements the Terminal interface.
type terminal struct {
	config       *Config
	colorProfile ColorProfile
}

// New creates a new Terminal. The color profile is detected once, for stdout.
func New(opts ...Option) Terminal {
	t := &terminal{
		config: NewConfig(schema.Terminal{}),
	}

	for _, opt := range opts {
		opt(t)
	}

	t.colorProfile = t.config.DetectColorProfile(t.IsTTY(Stdout))

	return t
}

// Option configures Terminal.
type Option func(*terminal)

// WithConfig sets a custom config.
func WithConfig(cfg *Config) Option {
	return func(t *terminal) {
		t.config = cfg
	}
}

func (t *terminal) IsTTY(stream Stream) bool {
	fd := streamToFd(stream)
	if fd < 0 {
		return false
	}
	return term.IsTerminal(fd)
}

func (t *terminal) ColorProfile() ColorProfile {
	return t.colorProfile
}

func (t *terminal) Width(stream Stream) int {
	fd := streamToFd(stream)
	if fd < 0 {
		return 0
	}

	width, _, err := term.GetSize(fd)
	if err != nil {
		return 0
	}

	return width
}

func (t *terminal) Styles() tmpl.StyleProvider {
	return NewStyles(t.colorProfile)
}

// streamToFd converts Stream to file descriptor.
// Returns -1 if the stream type is invalid.
func streamToFd(stream Stream) int {
	switch stream {
	case Stdin:
		return int(os.Stdin.Fd())
	case Stdout:
		return int(os.Stdout.Fd())
	case Stderr:
		return int(os.Stderr.Fd())
	default:
		return -1
	}
}

// ShouldUseColor determines if color should be used based on config priority.
// Priority (highest to lowest):
// 1. NO_COLOR env var - disables all color
// 2. CLICOLOR=0 - disables color (unless CLICOLOR_FORCE is set)
// 3. CLICOLOR_FORCE - forces color even for non-TTY
// 4. --no-format / --no-color flag
// 5. --color flag
// 6. Default (true for TTY, false for non-TTY)
func (c *Config) ShouldUseColor(isTTY bool) bool {
	if c.EnvNoColor {
		return false
	}

	if c.EnvCLIColor == "0" && !c.EnvCLIColorForce {
		return false
	}

	if c.EnvCLIColorForce {
		return true
	}

	if c.NoColor {
		return false
	}

	if c.Color {
		return true
	}

	return isTTY
}

// DetectColorProfile determines the terminal's color capabilities.
func (c *Config) DetectColorProfile(isTTY bool) ColorProfile {
	if !c.ShouldUseColor(isTTY) {
		return ColorNone
	}

	colorTerm := strings.ToLower(c.EnvColorTerm)
	if colorTerm == "truecolor" || colorTerm == "24bit" {
		return ColorTrue
	}

	termVar := strings.ToLower(c.EnvTerm)
	if termVar == "dumb" && !c.Color && !c.EnvCLIColorForce {
		return ColorNone
	}
	if strings.Contains(termVar, "256") {
		return Color256
	}

	// Color was requested or the stream is a TTY; 16 colors is the safe floor.
	return Color16
}
