package config

const (
	// EnvPrefix prefixes every alp environment variable.
	EnvPrefix = "ALP"

	TypeFlag       = "type"
	FormatFlag     = "format"
	ContinuousFlag = "continuous"
	IntervalFlag   = "interval"
	SpeedFlag      = "speed"
	TimezoneFlag   = "timezone"
	ColorFlag      = "color"
	NoFormatFlag   = "no-format"
	LogsLevelFlag  = "logs-level"
	LogsFileFlag   = "logs-file"
	VerboseFlag    = "verbose"

	DisplayTypesKey      = "display.types"
	DisplayFormatKey     = "display.format"
	DisplayContinuousKey = "display.continuous"
	DisplayIntervalKey   = "display.interval"
	TimeSpeedKey         = "time.speed"
	TimeTimezoneKey      = "time.timezone"
	TerminalColorKey     = "terminal.color"
	TerminalNoColorKey   = "terminal.no_color"
	LogsLevelKey         = "logs.level"
	LogsFileKey          = "logs.file"
	ErrorsVerboseKey     = "errors.verbose"
)

// flagKeys maps flag names onto configuration keys.
var flagKeys = map[string]string{
	TypeFlag:       DisplayTypesKey,
	FormatFlag:     DisplayFormatKey,
	ContinuousFlag: DisplayContinuousKey,
	IntervalFlag:   DisplayIntervalKey,
	SpeedFlag:      TimeSpeedKey,
	TimezoneFlag:   TimeTimezoneKey,
	ColorFlag:      TerminalColorKey,
	NoFormatFlag:   TerminalNoColorKey,
	LogsLevelFlag:  LogsLevelKey,
	LogsFileFlag:   LogsFileKey,
	VerboseFlag:    ErrorsVerboseKey,
}

// envVars maps configuration keys onto environment variables.
var envVars = map[string]string{
	DisplayTypesKey:      EnvPrefix + "_TYPE",
	DisplayFormatKey:     EnvPrefix + "_FORMAT",
	DisplayContinuousKey: EnvPrefix + "_CONTINUOUS",
	DisplayIntervalKey:   EnvPrefix + "_INTERVAL",
	TimeSpeedKey:         EnvPrefix + "_SPEED",
	TimeTimezoneKey:      EnvPrefix + "_TIMEZONE",
	TerminalColorKey:     EnvPrefix + "_COLOR",
	TerminalNoColorKey:   EnvPrefix + "_NO_FORMAT",
	LogsLevelKey:         EnvPrefix + "_LOGS_LEVEL",
	LogsFileKey:          EnvPrefix + "_LOGS_FILE",
	ErrorsVerboseKey:     EnvPrefix + "_VERBOSE",
}
