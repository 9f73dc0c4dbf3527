package cmd

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/gosite/internal/version"
	"github.com/spf13/cobra"
)

var (
	cfgFile    string
	historyDir string
)

var rootCmd = &cobra.Command{
	Use:   "gosite",
	Short: "Soil Analysis and Wind Load Calculator",
	Long: `gosite - Go Site Assessment Tool

A CLI tool for preliminary site assessment of building projects.

This tool helps engineers perform:
  - Soil analysis (allowable bearing, settlement, lateral earth pressure)
  - Wind load calculation against acceptable limits by building use
  - Batch evaluation of scenarios from Excel workbooks
  - PDF reports and load curve charts

Every calculation is appended to a CSV history log.`,
	SilenceUsage: true,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   gosite v%-48s║\n", version.Version)
		fmt.Println("  ║   Soil Analysis and Wind Load Calculator                  ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Soil bearing, settlement and lateral pressure screening")
		fmt.Println("    • Wind load with Safe / Caution / Exceeds advisory")
		fmt.Println("    • Interactive prompt and web form front ends")
		fmt.Println("    • CSV history with Excel export")
		fmt.Println()
		fmt.Println("  Use 'gosite --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SilenceErrors = true

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "YAML configuration file")
	rootCmd.PersistentFlags().StringVar(&historyDir, "history-dir", "", "Directory for the CSV history logs (overrides config)")
}
