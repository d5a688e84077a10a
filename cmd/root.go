package cmd

import (
	"context"
	"os"

	"github.com/elewis787/boa"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	errUtils "github.com/cloudposse/alp/errors"
	e "github.com/cloudposse/alp/internal/exec"
	cfg "github.com/cloudposse/alp/pkg/config"
	log "github.com/cloudposse/alp/pkg/logger"
	"github.com/cloudposse/alp/pkg/schema"
	"github.com/cloudposse/alp/pkg/terminal"
)

var (
	// alpConfig is loaded in PersistentPreRunE before any command runs.
	alpConfig *schema.Configuration

	closeLog = func() error { return nil }

	// errorSettings is read ahead of validation so a rejected configuration is
	// still reported the way the user asked.
	errorSettings struct {
		verbose bool
		noColor bool
		color   bool
	}

	rootCtx, cancelRoot = context.WithCancelCause(context.Background())
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = NewRootCmd()

// NewRootCmd builds the alp command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "alp [date-literal]",
		Short: "Show the time in Alp units",
		Long: `alp converts the current time, or a date literal, into the Alp calendar:
one alp is 2^18 seconds, split into hexalp, qvalp, salp, talp and second.

Date literals are GRE:YYYY,MM,DD,HH,MM,SS for a Gregorian wall time or
ALP:alp,hexalp,qvalp,salp,talp,second with hexadecimal fields.`,
		Example: `alp
alp -t dec,hex,led -c
alp -f '!(bold)&(alp)!(reset).&(hexalp#)&(qvalp)' GRE:2024,3,1,12,0,0
alp --speed 60 -c -t led`,
		Args:              literalArgs,
		PersistentPreRunE: setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				alpConfig.Time.Literal = args[0]
			}
			return e.NewClockExec(alpConfig, e.WithOutput(cmd.OutOrStdout())).Execute(cmd.Context())
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	addDisplayFlags(root.Flags())
	addGlobalFlags(root.PersistentFlags())
	root.SetFlagErrorFunc(flagError)

	if term.IsTerminal(int(os.Stdout.Fd())) {
		b := boa.New(boa.WithStyles(boa.DefaultStyles()))
		root.SetUsageFunc(b.UsageFunc)
		root.SetHelpFunc(b.HelpFunc)
	}

	root.AddCommand(newVersionCmd(), newUnitsCmd(), newConvertCmd())
	return root
}

func addDisplayFlags(flags *pflag.FlagSet) {
	flags.StringSliceP(cfg.TypeFlag, "t", []string{cfg.DefaultDisplayType}, "Display types: dec, hex, led, info, seconds")
	flags.BoolP(cfg.ContinuousFlag, "c", false, "Keep redrawing until interrupted")
	flags.StringP(cfg.FormatFlag, "f", "", "Custom template, overrides --type")
	flags.Float64(cfg.SpeedFlag, cfg.DefaultSpeed, "Speed multiplier for debugging")
	flags.Duration(cfg.IntervalFlag, cfg.DefaultInterval, "Redraw interval in continuous mode")
}

func addGlobalFlags(flags *pflag.FlagSet) {
	flags.Bool(cfg.NoFormatFlag, false, "Disable color and style escape sequences")
	flags.Bool(cfg.ColorFlag, false, "Force color output")
	flags.String(cfg.TimezoneFlag, cfg.DefaultTimezone, "Location of the epoch and of GRE: literals")
	flags.String(cfg.LogsLevelFlag, cfg.DefaultLogsLevel, "Logs level. Supported log levels are Trace, Debug, Info, Warning, Off")
	flags.String(cfg.LogsFileFlag, cfg.DefaultLogsFile, "The file to write alp logs to, including '/dev/stdout', '/dev/stderr' and '/dev/null'")
	flags.Bool(cfg.VerboseFlag, false, "Show error context and stack traces")
}

// setup loads the configuration and configures the logger.
func setup(cmd *cobra.Command, _ []string) error {
	v := cfg.New()
	if err := cfg.BindFlags(v, cmd.Flags()); err != nil {
		return err
	}
	errorSettings.verbose = v.GetBool(cfg.ErrorsVerboseKey)
	errorSettings.noColor = v.GetBool(cfg.TerminalNoColorKey)
	errorSettings.color = v.GetBool(cfg.TerminalColorKey)

	loaded, err := cfg.Load(v)
	if err != nil {
		return err
	}

	closer, err := log.Configure(loaded.Logs.Level, loaded.Logs.File)
	if err != nil {
		return err
	}
	closeLog = closer

	log.Trace("Running command", "command", cmd.CommandPath())
	alpConfig = &loaded
	return nil
}

func literalArgs(_ *cobra.Command, args []string) error {
	if len(args) > 1 {
		return errUtils.Build(errUtils.ErrInvalidPositionalArg).
			WithExplanationf("expected at most one date literal, got %d arguments", len(args)).
			WithHint("Pass a single literal such as GRE:2024,3,1,12,0,0 or ALP:963,9,3,e,c,2").
			WithExitCode(errUtils.ExitCodeUsage).
			Err()
	}
	return nil
}

func flagError(_ *cobra.Command, err error) error {
	return errUtils.Build(err).
		WithHint("Run `alp --help` to list the available flags").
		WithExitCode(errUtils.ExitCodeUsage).
		Err()
}

// Execute runs the root command. It is called by main.main().
func Execute() error {
	return RootCmd.ExecuteContext(rootCtx)
}

// ErrorFormatterConfig returns how an error from Execute should be rendered.
func ErrorFormatterConfig() errUtils.FormatterConfig {
	config := errUtils.DefaultFormatterConfig()
	config.Verbose = errorSettings.verbose

	switch {
	case errorSettings.noColor:
		config.Color = "never"
	case errorSettings.color:
		config.Color = "always"
	}

	if width := terminal.New().Width(terminal.Stderr); width > 0 {
		config.MaxLineLength = width
	}
	return config
}

// Interrupt cancels the running command with an error carrying the exit code
// for sig.
func Interrupt(sig os.Signal) {
	cancelRoot(errUtils.Build(errUtils.ErrInterrupted).
		WithContext("signal", sig.String()).
		WithExitCode(errUtils.SignalExitCode(sig)).
		Err())
}

// Cleanup releases resources held by the last command.
func Cleanup() {
	if err := closeLog(); err != nil {
		log.Debug("Failed to close log file", "error", err)
	}
	closeLog = func() error { return nil }
}
