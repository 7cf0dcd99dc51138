package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the slipway version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("slipway %s (commit: %s)\n", appVersion, appCommit)
	},
}
