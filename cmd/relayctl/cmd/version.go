package cmd

import (
	"github.com/spf13/cobra"

	"github.com/relayops/relayctl/internal/constants"
	"github.com/relayops/relayctl/internal/output"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the relayctl version",
	Run: func(_ *cobra.Command, _ []string) {
		output.Println(constants.ProjectName, constants.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
