package cmd

import (
	"github.com/alexiusacademia/gosite/internal/render"
	"github.com/spf13/cobra"
)

var windTablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "Print the gust, drag and acceptable limit tables",
	Run: func(cmd *cobra.Command, args []string) {
		render.Tables(cmd.OutOrStdout())
	},
}

func init() {
	windCmd.AddCommand(windTablesCmd)
}
