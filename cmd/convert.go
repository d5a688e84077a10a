package cmd

import (
	"github.com/spf13/cobra"

	errUtils "github.com/cloudposse/alp/errors"
	e "github.com/cloudposse/alp/internal/exec"
	"github.com/cloudposse/alp/pkg/display"
)

func newConvertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "convert <date-literal>",
		Short: "Print a date literal in decimal, hex and spelled-out Alp units",
		Example: `alp convert GRE:2024,3,1,12,0,0
alp convert ALP:963,9,3,e,c,2`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errUtils.Build(errUtils.ErrInvalidPositionalArg).
					WithExplanation("convert takes exactly one date literal").
					WithHint("Use GRE:YYYY,MM,DD,HH,MM,SS or ALP:alp,hexalp,qvalp,salp,talp,second (hex)").
					WithExitCode(errUtils.ExitCodeUsage).
					Err()
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			conv := *alpConfig
			conv.Time.Literal = args[0]
			conv.Display.Types = []string{display.TypeDecimal, display.TypeHex, display.TypeInfo}
			conv.Display.Format = ""
			conv.Display.Continuous = false

			return e.NewClockExec(&conv, e.WithOutput(cmd.OutOrStdout())).Execute(cmd.Context())
		},
	}
}
