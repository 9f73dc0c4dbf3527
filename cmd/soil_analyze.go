package cmd

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/gosite/internal/render"
	"github.com/alexiusacademia/gosite/internal/report"
	"github.com/alexiusacademia/gosite/internal/soil"
	"github.com/alexiusacademia/gosite/internal/tables"
	"github.com/spf13/cobra"
)

var (
	soilType         string
	soilCapacity     float64
	soilDepth        float64
	soilWaterTable   float64
	soilYoungModulus float64
	soilPDF          string
	soilNoHistory    bool
)

var soilAnalyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a soil sample",
	Long: `Compute the allowable bearing capacity, estimated settlement and
lateral earth pressure coefficient of a soil layer, and flag any condition
unsafe for construction.

  allowable = qa × load factor × depth / 3.0   (load factor 1.2 for clay)
  settlement = p·B / (E·(1 − ν²))
  K = 1 − πφ / (1 + πφ)                         (φ = 30)

Examples:
  # Clay layer, 200 kN/m² bearing, 2 m deep, water table at 3 m
  gosite soil analyze --type clay --capacity 200 --depth 2 --water-table 3

  # Softer modulus and a PDF report
  gosite soil analyze -t sand -q 120 -d 1.5 -w 1 --young-modulus 1e5 --pdf soil.pdf`,
	RunE: runSoilAnalyze,
}

func init() {
	soilCmd.AddCommand(soilAnalyzeCmd)

	soilAnalyzeCmd.Flags().StringVarP(&soilType, "type", "t", "", "Soil type: Clay, Sand, Silt, Loam [required]")
	soilAnalyzeCmd.Flags().Float64VarP(&soilCapacity, "capacity", "q", 0, "Soil bearing capacity (kN/m²) [required]")
	soilAnalyzeCmd.Flags().Float64VarP(&soilDepth, "depth", "d", 0, "Depth of soil layer (m) [required]")
	soilAnalyzeCmd.Flags().Float64VarP(&soilWaterTable, "water-table", "w", 0, "Water table depth (m) [required]")

	soilAnalyzeCmd.Flags().Float64Var(&soilYoungModulus, "young-modulus", 0, "Young's modulus E for settlement (kN/m²), overrides config")
	soilAnalyzeCmd.Flags().StringVar(&soilPDF, "pdf", "", "Write a PDF report to this file")
	soilAnalyzeCmd.Flags().BoolVar(&soilNoHistory, "no-history", false, "Do not append to the history log")

	soilAnalyzeCmd.MarkFlagRequired("type")
	soilAnalyzeCmd.MarkFlagRequired("capacity")
	soilAnalyzeCmd.MarkFlagRequired("depth")
	soilAnalyzeCmd.MarkFlagRequired("water-table")
}

func runSoilAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("young-modulus") {
		cfg.Soil.YoungModulus = soilYoungModulus
	}

	t, err := tables.ParseSoilType(soilType)
	if err != nil {
		return err
	}
	sample, err := soil.NewSample(t, soilCapacity, soilDepth, soilWaterTable)
	if err != nil {
		return err
	}

	model, err := soilModel(cfg)
	if err != nil {
		return err
	}
	result, err := model.Analyze(sample)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	render.Soil(out, result)

	if err := recorder(cfg, soilNoHistory).RecordSoil(result); err != nil {
		render.HistoryWarning(out, err)
	}

	if soilPDF != "" {
		if err := writePDF(soilPDF, func(f *os.File) error {
			return report.WriteSoil(f, result, report.Meta{})
		}); err != nil {
			return err
		}
		fmt.Fprintf(out, "  Report written to %s\n\n", soilPDF)
	}
	return nil
}

func writePDF(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating report: %w", err)
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("writing report %s: %w", path, err)
	}
	return f.Close()
}
