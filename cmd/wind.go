package cmd

import (
	"github.com/spf13/cobra"
)

var windCmd = &cobra.Command{
	Use:   "wind",
	Short: "Wind load calculation",
	Long: `Estimate the wind load on a structure and compare it with the
acceptable limit for its building use.

Subcommands:
  compute  - Wind load, limit and Safe / Caution / Exceeds advisory
  tables   - Gust factors, drag coefficients and acceptable limits

  F = q × G × Cd × A,  q = 0.613 v²`,
}

func init() {
	rootCmd.AddCommand(windCmd)
}
