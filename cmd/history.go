package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gosite/internal/history"
	"github.com/alexiusacademia/gosite/internal/render"
	"github.com/spf13/cobra"
)

var (
	historyLast int
	historyOut  string
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect and export the calculation history",
}

var historyShowCmd = &cobra.Command{
	Use:       "show soil|wind",
	Short:     "Print logged soil analyses or wind load calculations",
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"soil", "wind"},
	RunE:      runHistoryShow,
}

var historyExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export both history logs to an Excel workbook",
	Long: `Write the soil and wind history logs to one .xlsx workbook with a
"Soil" and a "Wind" sheet.

Examples:
  gosite history export --out history.xlsx`,
	RunE: runHistoryExport,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.AddCommand(historyShowCmd)
	historyCmd.AddCommand(historyExportCmd)

	historyShowCmd.Flags().IntVarP(&historyLast, "last", "n", 0, "Show only the last N records (0 for all)")
	historyExportCmd.Flags().StringVarP(&historyOut, "out", "o", "history.xlsx", "Output workbook")
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	rec := history.NewRecorder(cfg.History.Dir, cfg.History.SoilFile, cfg.History.WindFile)

	log, title := rec.Soil, "SOIL ANALYSIS HISTORY"
	if args[0] == "wind" {
		log, title = rec.Wind, "WIND LOAD HISTORY"
	}

	rows, err := log.Read()
	if err != nil {
		return err
	}
	if historyLast > 0 && len(rows) > historyLast {
		rows = rows[len(rows)-historyLast:]
	}
	render.History(cmd.OutOrStdout(), title, log.Header(), rows)
	return nil
}

func runHistoryExport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	rec := history.NewRecorder(cfg.History.Dir, cfg.History.SoilFile, cfg.History.WindFile)
	if err := rec.ExportXLSX(historyOut); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "History exported to %s\n", historyOut)
	return nil
}
