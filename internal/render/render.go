package render

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/alexiusacademia/gosite/internal/diagram"
	"github.com/alexiusacademia/gosite/internal/soil"
	"github.com/alexiusacademia/gosite/internal/tables"
	"github.com/alexiusacademia/gosite/internal/wind"
)

const (
	doubleRule = "═══════════════════════════════════════════════════════════════"
	singleRule = "───────────────────────────────────────────────────────────────"
)

// Banner prints a boxed section title
func Banner(w io.Writer, title string) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, doubleRule)
	fmt.Fprintf(w, "     %s\n", title)
	fmt.Fprintln(w, doubleRule)
	fmt.Fprintln(w)
}

// Heading prints a section heading followed by a rule
func Heading(w io.Writer, title string) {
	fmt.Fprintf(w, "%s:\n", title)
	fmt.Fprintln(w, singleRule)
}

func newTab(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

// Soil prints the full soil analysis report
func Soil(w io.Writer, r *soil.Result) {
	Banner(w, "SOIL ANALYSIS")

	Heading(w, "INPUT DATA")
	tw := newTab(w)
	fmt.Fprintf(tw, "  Soil Type:\t%s\n", r.Sample.Type)
	fmt.Fprintf(tw, "  Soil Bearing Capacity:\t%g kN/m²\n", r.Sample.BearingCapacity)
	fmt.Fprintf(tw, "  Depth of Soil Layer:\t%g m\n", r.Sample.LayerDepth)
	fmt.Fprintf(tw, "  Water Table Depth:\t%g m\n", r.Sample.WaterTableDepth)
	tw.Flush()
	fmt.Fprintf(w, "  %s\n", r.Description)
	fmt.Fprintln(w)

	Heading(w, "RESULTS")
	tw = newTab(w)
	fmt.Fprintf(tw, "  Bearing Capacity Evaluation:\t%s\n", r.Tier.Label())
	fmt.Fprintf(tw, "  Load Factor:\t%.1f\n", r.LoadFactor)
	fmt.Fprintf(tw, "  Allowable Bearing Capacity:\t%.2f kN\n", r.AllowableBearing)
	fmt.Fprintf(tw, "  Settlement (estimated):\t%.6f m\n", r.Settlement)
	fmt.Fprintf(tw, "  Lateral Earth Pressure Coefficient:\t%.4f\n", r.LateralCoefficient)
	tw.Flush()
	mark := "✓"
	if !r.WaterTableAdequate {
		mark = "⚠"
	}
	fmt.Fprintf(w, "  %s %s\n", mark, r.WaterTableEffect)
	fmt.Fprintln(w)

	Heading(w, "WARNINGS")
	if !r.HasWarnings() {
		fmt.Fprintln(w, "  ✓ No warnings")
	}
	for _, wn := range r.Warnings {
		fmt.Fprintf(w, "  ⚠ [%s] %s\n", wn.Code, wn.Message)
	}
	fmt.Fprintln(w)
}

// Wind prints the wind load result with its evaluation
func Wind(w io.Writer, r *wind.Result) {
	s := r.Scenario
	Banner(w, "WIND LOAD CALCULATION")

	Heading(w, "INPUT DATA")
	tw := newTab(w)
	fmt.Fprintf(tw, "  Wind Speed (v):\t%g m/s\n", s.Speed)
	fmt.Fprintf(tw, "  Exposure Category:\t%s (%s)\n", s.Exposure, s.Exposure.Description())
	fmt.Fprintf(tw, "  Structural Shape:\t%s\n", s.Shape)
	fmt.Fprintf(tw, "  Exposed Area (A):\t%g m²\n", s.Area)
	fmt.Fprintf(tw, "  Structure Type:\t%s\n", s.Category.Title())
	fmt.Fprintf(tw, "  Specific Type:\t%s\n", s.Subtype)
	tw.Flush()
	fmt.Fprintln(w)

	Heading(w, "CALCULATION")
	tw = newTab(w)
	fmt.Fprintf(tw, "  Dynamic Pressure (q = 0.613 v²):\t%.2f N/m²\n", r.DynamicPressure)
	fmt.Fprintf(tw, "  Gust Factor (G):\t%.2f\n", r.Gust)
	fmt.Fprintf(tw, "  Drag Coefficient (Cd):\t%.2f\n", r.Drag)
	tw.Flush()
	fmt.Fprintln(w)

	fmt.Fprint(w, diagram.DrawSummaryBox("WIND LOAD", []string{
		fmt.Sprintf("F = q·G·Cd·A = %.2f N", r.Load),
		fmt.Sprintf("Acceptable limit = %.0f N", r.Limit),
	}))
	fmt.Fprintln(w)
	fmt.Fprint(w, diagram.DrawLoadGauge(r.Load, r.Limit, 40))
	fmt.Fprintln(w)

	Heading(w, "EVALUATION")
	mark := "✓"
	if r.Advisory != wind.Safe {
		mark = "⚠"
	}
	fmt.Fprintf(w, "  %s %s\n", mark, r.Advisory.Message(string(s.Category)))
	if rec := r.Advisory.Recommendation(); rec != "" {
		fmt.Fprintf(w, "  %s\n", rec)
	}
	fmt.Fprintln(w)
}

// Tables prints the gust, drag and acceptable limit catalogue
func Tables(w io.Writer) {
	Banner(w, "WIND LOAD REFERENCE TABLES")

	Heading(w, "EXPOSURE CATEGORIES (GUST FACTOR G)")
	tw := newTab(w)
	for _, e := range tables.Exposures() {
		fmt.Fprintf(tw, "  %s\t%s\t%.1f\n", e.Exposure, e.Description, e.Gust)
	}
	tw.Flush()
	fmt.Fprintln(w)

	Heading(w, "STRUCTURAL SHAPES (DRAG COEFFICIENT Cd)")
	tw = newTab(w)
	for _, s := range tables.Shapes() {
		fmt.Fprintf(tw, "  %s\t%g\n", s.Shape, s.Drag)
	}
	tw.Flush()
	fmt.Fprintln(w)

	Heading(w, "ACCEPTABLE WIND LOAD LIMITS (N)")
	tw = newTab(w)
	for _, c := range tables.Categories() {
		for i, st := range tables.Subtypes(c) {
			label := ""
			if i == 0 {
				label = c.Title()
			}
			fmt.Fprintf(tw, "  %s\t%s\t%.0f\n", label, st.Name, st.Limit)
		}
	}
	tw.Flush()
	fmt.Fprintln(w)
}

// History prints logged rows under their header, most recent last
func History(w io.Writer, title string, header []string, rows [][]string) {
	Banner(w, title)
	if len(rows) == 0 {
		fmt.Fprintln(w, "  No records.")
		fmt.Fprintln(w)
		return
	}
	tw := newTab(w)
	fmt.Fprintf(tw, "  #\t%s\n", strings.Join(header, "\t"))
	for i, row := range rows {
		fmt.Fprintf(tw, "  %d\t%s\n", i+1, strings.Join(row, "\t"))
	}
	tw.Flush()
	fmt.Fprintln(w)
}

// HistoryWarning reports a failed history append without failing the calculation
func HistoryWarning(w io.Writer, err error) {
	fmt.Fprintf(w, "  ⚠ Warning: result not saved to history: %v\n\n", err)
}
