package config

import (
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	errUtils "github.com/cloudposse/alp/errors"
	log "github.com/cloudposse/alp/pkg/logger"
	"github.com/cloudposse/alp/pkg/schema"
)

const (
	DefaultDisplayType = "dec"
	DefaultInterval    = time.Second
	DefaultSpeed       = 1.0
	DefaultTimezone    = "UTC"
	DefaultLogsLevel   = "Info"
	DefaultLogsFile    = "/dev/stderr"
)

// New returns a viper instance carrying defaults and environment bindings.
// Precedence, lowest first: defaults, ALP_* environment variables, flags.
func New() *viper.Viper {
	v := viper.New()
	setDefaultConfiguration(v)
	for key, env := range envVars {
		// BindEnv only fails when called without a key.
		_ = v.BindEnv(key, env)
	}
	return v
}

func setDefaultConfiguration(v *viper.Viper) {
	v.SetDefault(DisplayTypesKey, []string{DefaultDisplayType})
	v.SetDefault(DisplayFormatKey, "")
	v.SetDefault(DisplayContinuousKey, false)
	v.SetDefault(DisplayIntervalKey, DefaultInterval)
	v.SetDefault(TimeSpeedKey, DefaultSpeed)
	v.SetDefault(TimeTimezoneKey, DefaultTimezone)
	v.SetDefault(TerminalColorKey, false)
	v.SetDefault(TerminalNoColorKey, false)
	v.SetDefault(LogsLevelKey, DefaultLogsLevel)
	v.SetDefault(LogsFileKey, DefaultLogsFile)
	v.SetDefault(ErrorsVerboseKey, false)
}

// BindFlags binds every known flag present in flags to its configuration key.
func BindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for name, key := range flagKeys {
		flag := flags.Lookup(name)
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return err
		}
	}
	return nil
}

// Load unmarshals and validates the configuration.
func Load(v *viper.Viper) (schema.Configuration, error) {
	var cfg schema.Configuration
	hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))
	if err := v.Unmarshal(&cfg, hook); err != nil {
		return cfg, err
	}

	if err := Validate(&cfg); err != nil {
		return cfg, err
	}

	log.Debug("Loaded configuration",
		"types", cfg.Display.Types,
		"continuous", cfg.Display.Continuous,
		"speed", cfg.Time.Speed,
		"timezone", cfg.Time.Timezone,
	)
	return cfg, nil
}

// Validate checks the values flag and env parsing cannot constrain by type.
func Validate(cfg *schema.Configuration) error {
	if cfg.Time.Speed <= 0 {
		return errUtils.Build(errUtils.ErrInvalidSpeed).
			WithContext("speed", cfg.Time.Speed).
			WithHint("Use a positive --speed such as 1 (real time) or 60").
			WithExitCode(errUtils.ExitCodeUsage).
			Err()
	}

	if cfg.Display.Interval <= 0 {
		return errUtils.Build(errUtils.ErrInvalidInterval).
			WithContext("interval", cfg.Display.Interval.String()).
			WithHint("Use a positive --interval such as 1s or 250ms").
			WithExitCode(errUtils.ExitCodeUsage).
			Err()
	}

	if _, err := Location(cfg); err != nil {
		return err
	}

	if _, err := log.ParseLogLevel(cfg.Logs.Level); err != nil {
		return err
	}

	return nil
}

// Location resolves the configured timezone. An empty name means UTC.
func Location(cfg *schema.Configuration) (*time.Location, error) {
	name := cfg.Time.Timezone
	if name == "" {
		name = DefaultTimezone
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, errUtils.Build(errUtils.ErrInvalidTimezone).
			WithExplanation(err.Error()).
			WithContext("timezone", name).
			WithHint("Use an IANA name such as UTC, Local or Europe/Copenhagen").
			WithExitCode(errUtils.ExitCodeUsage).
			Err()
	}
	return loc, nil
}
