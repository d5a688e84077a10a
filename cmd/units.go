package cmd

import (
	"github.com/spf13/cobra"

	e "github.com/cloudposse/alp/internal/exec"
)

func newUnitsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "units",
		Short:   "List the Alp units with their place value and radix",
		Example: "alp units",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return e.PrintUnits(cmd.OutOrStdout())
		},
	}
}
