package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gosite/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gosite",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gosite v%s\n", version.Version)
		fmt.Println("Soil Analysis and Wind Load Calculator")
		fmt.Printf("Built: %s (commit %s)\n", version.BuildTime, version.GitCommit)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
