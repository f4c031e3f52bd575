package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/structeng/beamreport/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of beamreport",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("beamreport v%s\n", version.Version)
		fmt.Println("Simply Supported Beam Report Generator")
		if version.GitCommit != "unknown" {
			fmt.Printf("commit %s, built %s\n", version.GitCommit, version.BuildTime)
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
