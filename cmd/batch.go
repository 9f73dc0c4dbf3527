package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gosite/internal/batch"
	"github.com/alexiusacademia/gosite/internal/render"
	"github.com/spf13/cobra"
)

var (
	batchFile      string
	batchTemplate  string
	batchNoHistory bool
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Evaluate wind and soil scenarios from an Excel workbook",
	Long: `Read a workbook with a "Wind" sheet and/or a "Soil" sheet and evaluate
every row. The first row of each sheet is a header.

  Wind columns: speed, exposure, shape, category, subtype, area
  Soil columns: soil type, bearing capacity, layer depth, water table depth

Rows that fail validation are reported with their sheet and row number;
the remaining rows are still evaluated and logged.

Examples:
  # Write an empty workbook with the expected headers
  gosite batch --template scenarios.xlsx

  gosite batch --file scenarios.xlsx`,
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().StringVarP(&batchFile, "file", "f", "", "Workbook to evaluate")
	batchCmd.Flags().StringVar(&batchTemplate, "template", "", "Write an empty batch workbook to this path and exit")
	batchCmd.Flags().BoolVar(&batchNoHistory, "no-history", false, "Do not append to the history logs")
	batchCmd.MarkFlagsOneRequired("file", "template")
	batchCmd.MarkFlagsMutuallyExclusive("file", "template")
}

func runBatch(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if batchTemplate != "" {
		if err := batch.WriteTemplate(batchTemplate); err != nil {
			return err
		}
		fmt.Fprintf(out, "Template written to %s\n", batchTemplate)
		return nil
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	model, err := soilModel(cfg)
	if err != nil {
		return err
	}
	runner, err := batch.NewRunner(model)
	if err != nil {
		return err
	}
	rep, err := runner.RunFile(batchFile)
	if err != nil {
		return err
	}
	rec := recorder(cfg, batchNoHistory)

	render.Banner(out, "BATCH EVALUATION")

	if len(rep.Wind) > 0 {
		render.Heading(out, "WIND")
		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "  Row\tStructure\tLoad (N)\tLimit (N)\tAdvisory")
		for _, o := range rep.Wind {
			r := o.Result
			fmt.Fprintf(w, "  %d\t%s / %s\t%.2f\t%.0f\t%s\n", o.Row, r.Scenario.Category, r.Scenario.Subtype, r.Load, r.Limit, r.Advisory)
			if err := rec.RecordWind(r); err != nil {
				render.HistoryWarning(os.Stderr, err)
			}
		}
		w.Flush()
		fmt.Fprintln(out)
	}

	if len(rep.Soil) > 0 {
		render.Heading(out, "SOIL")
		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "  Row\tType\tAllowable (kN)\tTier\tWarnings")
		for _, o := range rep.Soil {
			r := o.Result
			codes := ""
			for i, wn := range r.Warnings {
				if i > 0 {
					codes += ","
				}
				codes += string(wn.Code)
			}
			if codes == "" {
				codes = "-"
			}
			fmt.Fprintf(w, "  %d\t%s\t%.2f\t%s\t%s\n", o.Row, r.Sample.Type, r.AllowableBearing, r.Tier, codes)
			if err := rec.RecordSoil(r); err != nil {
				render.HistoryWarning(os.Stderr, err)
			}
		}
		w.Flush()
		fmt.Fprintln(out)
	}

	if len(rep.Errors) > 0 {
		render.Heading(out, "REJECTED ROWS")
		for _, e := range rep.Errors {
			fmt.Fprintf(out, "  ⚠ %v\n", e)
		}
		fmt.Fprintln(out)
	}

	fmt.Fprintf(out, "  %d row(s) evaluated, %d rejected\n\n", rep.Processed(), len(rep.Errors))
	if len(rep.Errors) > 0 {
		return fmt.Errorf("%d row(s) rejected", len(rep.Errors))
	}
	return nil
}
