package cmd

import (
	"fmt"

	"github.com/philipparndt/goview/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version.GetFullVersion())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
