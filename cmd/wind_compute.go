package cmd

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/gosite/internal/diagram"
	"github.com/alexiusacademia/gosite/internal/render"
	"github.com/alexiusacademia/gosite/internal/report"
	"github.com/alexiusacademia/gosite/internal/tables"
	"github.com/alexiusacademia/gosite/internal/wind"
	"github.com/spf13/cobra"
)

var (
	windSpeed     float64
	windExposure  string
	windShape     string
	windCategory  string
	windSubtype   string
	windArea      float64
	windChart     bool
	windExport    string
	windPDF       string
	windNoHistory bool
)

var windComputeCmd = &cobra.Command{
	Use:   "compute",
	Short: "Compute the wind load on a structure",
	Long: `Compute the wind load F = q·G·Cd·A and evaluate it against the
acceptable limit for the structure type:

  load > limit          Exceeds  (reinforce the structure)
  load > 0.75 × limit   Caution  (monitor for damage or strain)
  otherwise             Safe

Run 'gosite wind tables' for the exposure, shape and structure catalogue.

Examples:
  # Retail building, suburban exposure
  gosite wind compute --speed 10 --exposure B --shape rectangular \
    --category commercial --subtype retail --area 50

  # With a load curve chart and PNG export
  gosite wind compute -v 8 -e F -s irregular -c industrial --subtype "power plant" -a 50 \
    --chart --export curve.png`,
	RunE: runWindCompute,
}

func init() {
	windCmd.AddCommand(windComputeCmd)

	windComputeCmd.Flags().Float64VarP(&windSpeed, "speed", "v", 0, "Wind speed (m/s) [required]")
	windComputeCmd.Flags().StringVarP(&windExposure, "exposure", "e", "", "Exposure category A-F [required]")
	windComputeCmd.Flags().StringVarP(&windShape, "shape", "s", "", "Structural shape [required]")
	windComputeCmd.Flags().Float64VarP(&windArea, "area", "a", 0, "Area exposed to wind (m²) [required]")
	windComputeCmd.Flags().StringVarP(&windCategory, "category", "c", "", "Building structure type [required]")
	windComputeCmd.Flags().StringVar(&windSubtype, "subtype", "", "Specific building type within the category [required]")

	windComputeCmd.Flags().BoolVar(&windChart, "chart", false, "Print the load vs speed curve")
	windComputeCmd.Flags().StringVar(&windExport, "export", "", "Export the load curve to an image (png, svg, pdf)")
	windComputeCmd.Flags().StringVar(&windPDF, "pdf", "", "Write a PDF report to this file")
	windComputeCmd.Flags().BoolVar(&windNoHistory, "no-history", false, "Do not append to the history log")

	for _, f := range []string{"speed", "exposure", "shape", "area", "category", "subtype"} {
		windComputeCmd.MarkFlagRequired(f)
	}
}

func windScenario() (wind.Scenario, error) {
	exposure, err := tables.ParseExposure(windExposure)
	if err != nil {
		return wind.Scenario{}, err
	}
	shape, err := tables.ParseShape(windShape)
	if err != nil {
		return wind.Scenario{}, err
	}
	category, err := tables.ParseCategory(windCategory)
	if err != nil {
		return wind.Scenario{}, err
	}
	subtype, err := tables.ParseSubtype(category, windSubtype)
	if err != nil {
		return wind.Scenario{}, err
	}
	return wind.NewScenario(windSpeed, exposure, shape, category, subtype, windArea)
}

func runWindCompute(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	sc, err := windScenario()
	if err != nil {
		return err
	}
	result, err := wind.Compute(sc)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	render.Wind(out, result)

	if err := recorder(cfg, windNoHistory).RecordWind(result); err != nil {
		render.HistoryWarning(out, err)
	}

	if windChart || windExport != "" {
		data, err := diagram.NewLoadCurveData(result, 60)
		if err != nil {
			return err
		}
		if windChart {
			fmt.Fprint(out, diagram.DrawASCIILoadCurve(data, 60, 15))
			fmt.Fprintln(out)
		}
		if windExport != "" {
			if err := diagram.ExportLoadCurve(data, windExport); err != nil {
				return fmt.Errorf("exporting load curve: %w", err)
			}
			fmt.Fprintf(out, "  Load curve exported to %s\n\n", windExport)
		}
	}

	if windPDF != "" {
		if err := writePDF(windPDF, func(f *os.File) error {
			return report.WriteWind(f, result, report.Meta{})
		}); err != nil {
			return err
		}
		fmt.Fprintf(out, "  Report written to %s\n\n", windPDF)
	}
	return nil
}
