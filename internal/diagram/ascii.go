package diagram

import (
	"fmt"
	"strings"

	"github.com/alexiusacademia/gosite/internal/wind"
	"github.com/guptarohit/asciigraph"
)

// LoadCurveData holds data for drawing a wind load curve against its limits
type LoadCurveData struct {
	Title  string
	Points []wind.CurvePoint

	// Limits (N)
	Limit   float64
	Caution float64 // usually 0.75 × Limit

	// Operating point
	Speed float64 // m/s
	Load  float64 // N
}

// NewLoadCurveData samples the scenario of r from 0 to twice its critical speed
func NewLoadCurveData(r *wind.Result, points int) (LoadCurveData, error) {
	vc, err := wind.CriticalSpeed(r.Scenario)
	if err != nil {
		return LoadCurveData{}, err
	}
	maxSpeed := 2 * vc
	if r.Scenario.Speed > maxSpeed {
		maxSpeed = 1.25 * r.Scenario.Speed
	}
	pts, err := wind.LoadCurve(r.Scenario, maxSpeed, points)
	if err != nil {
		return LoadCurveData{}, err
	}
	return LoadCurveData{
		Title:   fmt.Sprintf("Wind load vs speed: %s / %s", r.Scenario.Category, r.Scenario.Subtype),
		Points:  pts,
		Limit:   r.Limit,
		Caution: wind.CautionRatio * r.Limit,
		Speed:   r.Scenario.Speed,
		Load:    r.Load,
	}, nil
}

// DrawASCIILoadCurve plots the load curve with the caution and limit lines
func DrawASCIILoadCurve(data LoadCurveData, width, height int) string {
	if len(data.Points) == 0 {
		return ""
	}

	loads := make([]float64, len(data.Points))
	caution := make([]float64, len(data.Points))
	limit := make([]float64, len(data.Points))
	for i, p := range data.Points {
		loads[i] = p.Load
		caution[i] = data.Caution
		limit[i] = data.Limit
	}

	last := data.Points[len(data.Points)-1].Speed
	caption := fmt.Sprintf("load (N) for 0 to %.1f m/s; flat lines: 0.75 limit = %.0f N, limit = %.0f N", last, data.Caution, data.Limit)

	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString("  " + strings.ToUpper(data.Title) + "\n")
	sb.WriteString("  " + strings.Repeat("─", len([]rune(data.Title))) + "\n\n")
	sb.WriteString(asciigraph.PlotMany(
		[][]float64{loads, caution, limit},
		asciigraph.Width(width),
		asciigraph.Height(height),
		asciigraph.Precision(0),
		asciigraph.Caption(caption),
	))
	sb.WriteString("\n")
	return sb.String()
}

// DrawLoadGauge renders the load as a horizontal bar scaled to the limit
func DrawLoadGauge(load, limit float64, width int) string {
	if limit <= 0 || width < 10 {
		return ""
	}

	ratio := load / limit
	filled := int(ratio * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	cautionMark := int(wind.CautionRatio * float64(width))

	bar := []rune(strings.Repeat("█", filled) + strings.Repeat("░", width-filled))
	if cautionMark < len(bar) && cautionMark >= filled {
		bar[cautionMark] = '┆'
	}

	overflow := ""
	if ratio > 1 {
		overflow = " ▶"
	}
	return fmt.Sprintf("  0 ├%s┤ limit%s  (%.0f%% of %.0f N)\n", string(bar), overflow, ratio*100, limit)
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := len([]rune(title))
	for _, line := range lines {
		if n := len([]rune(line)); n > maxLen {
			maxLen = n
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(title, maxLen-4)))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(line, maxLen-4)))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}

// pad right-pads by rune count; %-*s counts bytes and misaligns "m²"
func pad(s string, n int) string {
	if d := n - len([]rune(s)); d > 0 {
		return s + strings.Repeat(" ", d)
	}
	return s
}
