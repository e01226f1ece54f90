package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"submit-lsf-job/pkg/utils"
)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version of this tool and of the LSF installation",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), utils.GetVersion())
			fmt.Fprintf(cmd.OutOrStdout(), "LSF Version: %s\n", utils.GetLsfVersion())
		},
	}
}
