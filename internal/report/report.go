package report

import (
	"fmt"
	"io"
	"time"

	"github.com/alexiusacademia/gosite/internal/soil"
	"github.com/alexiusacademia/gosite/internal/wind"
	"github.com/phpdave11/gofpdf"
)

// Meta is the report heading
type Meta struct {
	Project string `json:"project"`
	Author  string `json:"author"`
	Date    time.Time
}

type row struct {
	label, value string
}

func newDocument(title string, meta Meta) *gofpdf.Fpdf {
	if meta.Date.IsZero() {
		meta.Date = time.Now()
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(title, true)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, title)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	if meta.Project != "" {
		pdf.Cell(0, 6, fmt.Sprintf("Project: %s", meta.Project))
		pdf.Ln(6)
	}
	if meta.Author != "" {
		pdf.Cell(0, 6, fmt.Sprintf("Author: %s", meta.Author))
		pdf.Ln(6)
	}
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", meta.Date.Format("2006-01-02")))
	pdf.Ln(10)
	return pdf
}

func section(pdf *gofpdf.Fpdf, heading string, rows []row) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, heading)
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
	for _, r := range rows {
		pdf.CellFormat(75, 6, r.label, "B", 0, "L", false, 0, "")
		pdf.CellFormat(0, 6, r.value, "B", 1, "L", false, 0, "")
	}
	pdf.Ln(4)
}

func notes(pdf *gofpdf.Fpdf, heading string, lines []string) {
	if len(lines) == 0 {
		return
	}
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, heading)
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
	for _, l := range lines {
		pdf.MultiCell(0, 5, "- "+l, "", "L", false)
	}
	pdf.Ln(2)
}

func footer(pdf *gofpdf.Fpdf) {
	pdf.SetFont("Helvetica", "I", 8)
	pdf.MultiCell(0, 4, "Indicative screening only. Simplified single-layer, single-load-case formulas; not for certified structural design.", "", "L", false)
}

// WriteSoil renders a soil analysis as a one-page PDF
func WriteSoil(w io.Writer, r *soil.Result, meta Meta) error {
	pdf := newDocument("Soil Analysis Report", meta)

	section(pdf, "Input", []row{
		{"Soil type", string(r.Sample.Type)},
		{"Soil bearing capacity", fmt.Sprintf("%g kN/m2", r.Sample.BearingCapacity)},
		{"Depth of soil layer", fmt.Sprintf("%g m", r.Sample.LayerDepth)},
		{"Water table depth", fmt.Sprintf("%g m", r.Sample.WaterTableDepth)},
	})
	pdf.SetFont("Helvetica", "", 10)
	pdf.MultiCell(0, 5, r.Description, "", "L", false)
	pdf.Ln(4)

	section(pdf, "Results", []row{
		{"Bearing capacity evaluation", r.Tier.Label()},
		{"Load factor", fmt.Sprintf("%.1f", r.LoadFactor)},
		{"Allowable bearing capacity", fmt.Sprintf("%.2f kN", r.AllowableBearing)},
		{"Settlement (estimated)", fmt.Sprintf("%.6f m", r.Settlement)},
		{"Lateral earth pressure coefficient", fmt.Sprintf("%.4f", r.LateralCoefficient)},
		{"Water table effect", r.WaterTableEffect},
	})

	warnings := make([]string, len(r.Warnings))
	for i, wn := range r.Warnings {
		warnings[i] = fmt.Sprintf("[%s] %s", wn.Code, wn.Message)
	}
	notes(pdf, "Warnings", warnings)
	footer(pdf)

	return pdf.Output(w)
}

// WriteWind renders a wind load computation as a one-page PDF
func WriteWind(w io.Writer, r *wind.Result, meta Meta) error {
	pdf := newDocument("Wind Load Report", meta)
	s := r.Scenario

	section(pdf, "Input", []row{
		{"Wind speed", fmt.Sprintf("%g m/s", s.Speed)},
		{"Exposure category", fmt.Sprintf("%s - %s", s.Exposure, s.Exposure.Description())},
		{"Structural shape", string(s.Shape)},
		{"Exposed area", fmt.Sprintf("%g m2", s.Area)},
		{"Structure type", s.Category.Title()},
		{"Specific type", s.Subtype},
	})

	section(pdf, "Results", []row{
		{"Dynamic pressure q = 0.613 v^2", fmt.Sprintf("%.2f", r.DynamicPressure)},
		{"Gust factor G", fmt.Sprintf("%.2f", r.Gust)},
		{"Drag coefficient Cd", fmt.Sprintf("%.2f", r.Drag)},
		{"Wind load q G Cd A", fmt.Sprintf("%.2f N", r.Load)},
		{"Acceptable limit", fmt.Sprintf("%.0f N", r.Limit)},
		{"Load / limit", fmt.Sprintf("%.1f %%", r.Ratio*100)},
		{"Advisory", string(r.Advisory)},
	})

	lines := []string{r.Advisory.Message(string(s.Category))}
	if rec := r.Advisory.Recommendation(); rec != "" {
		lines = append(lines, rec)
	}
	notes(pdf, "Evaluation", lines)
	footer(pdf)

	return pdf.Output(w)
}
