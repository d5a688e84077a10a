package schema

import "time"

// Configuration is the fully resolved alp configuration (flags > env > defaults).
type Configuration struct {
	Display  Display  `json:"display" mapstructure:"display"`
	Time     Time     `json:"time" mapstructure:"time"`
	Terminal Terminal `json:"terminal" mapstructure:"terminal"`
	Logs     Logs     `json:"logs" mapstructure:"logs"`
	Errors   Errors   `json:"errors" mapstructure:"errors"`
}

// Display selects what is drawn and how often.
type Display struct {
	// Types are display type names such as "dec", "hex" or "led".
	Types []string `json:"types" mapstructure:"types"`
	// Format is a custom template; when set it replaces Types.
	Format     string        `json:"format,omitempty" mapstructure:"format"`
	Continuous bool          `json:"continuous" mapstructure:"continuous"`
	Interval   time.Duration `json:"interval" mapstructure:"interval"`
}

// Time configures the conversion.
type Time struct {
	// Literal is an optional GRE:/ALP: date literal to display instead of now.
	Literal  string  `json:"literal,omitempty" mapstructure:"literal"`
	Timezone string  `json:"timezone" mapstructure:"timezone"`
	Speed    float64 `json:"speed" mapstructure:"speed"`
}

// Terminal controls escape sequence output.
type Terminal struct {
	Color   bool `json:"color" mapstructure:"color"`
	NoColor bool `json:"no_color" mapstructure:"no_color"`
}

// Logs configures the logger.
type Logs struct {
	Level string `json:"level" mapstructure:"level"`
	File  string `json:"file" mapstructure:"file"`
}

// Errors controls how a failed command is reported.
type Errors struct {
	// Verbose adds the error context and stack trace.
	Verbose bool `json:"verbose" mapstructure:"verbose"`
}
