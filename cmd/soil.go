package cmd

import (
	"github.com/spf13/cobra"
)

var soilCmd = &cobra.Command{
	Use:   "soil",
	Short: "Soil analysis for shallow foundations",
	Long: `Screen a single soil layer for a shallow foundation.

Subcommands:
  analyze  - Allowable bearing, settlement, lateral pressure and warnings

Soil types: Clay, Sand, Silt, Loam.`,
}

func init() {
	rootCmd.AddCommand(soilCmd)
}
