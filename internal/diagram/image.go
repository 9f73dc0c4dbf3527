package diagram

import (
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ExportLoadCurve exports the load curve to an image file (png, svg, pdf by extension)
func ExportLoadCurve(data LoadCurveData, filename string) error {
	p := plot.New()
	p.Title.Text = data.Title
	p.X.Label.Text = "Wind speed (m/s)"
	p.Y.Label.Text = "Wind load (N)"
	p.Y.Min = 0

	curve := make(plotter.XYs, len(data.Points))
	for i, pt := range data.Points {
		curve[i] = plotter.XY{X: pt.Speed, Y: pt.Load}
	}
	loadLine, err := plotter.NewLine(curve)
	if err != nil {
		return err
	}
	loadLine.LineStyle.Width = vg.Points(2)
	loadLine.LineStyle.Color = color.RGBA{R: 0, G: 0, B: 139, A: 255}
	p.Add(loadLine)
	p.Legend.Add("load", loadLine)

	maxX := 0.0
	if len(data.Points) > 0 {
		maxX = data.Points[len(data.Points)-1].Speed
	}

	// Caution line at 0.75 × limit
	cautionLine, err := plotter.NewLine(plotter.XYs{
		{X: 0, Y: data.Caution},
		{X: maxX, Y: data.Caution},
	})
	if err != nil {
		return err
	}
	cautionLine.LineStyle.Width = vg.Points(1)
	cautionLine.LineStyle.Color = color.RGBA{R: 255, G: 165, B: 0, A: 255}
	cautionLine.LineStyle.Dashes = []vg.Length{vg.Points(2), vg.Points(2)}
	p.Add(cautionLine)
	p.Legend.Add("caution (0.75 limit)", cautionLine)

	// Acceptable limit
	limitLine, err := plotter.NewLine(plotter.XYs{
		{X: 0, Y: data.Limit},
		{X: maxX, Y: data.Limit},
	})
	if err != nil {
		return err
	}
	limitLine.LineStyle.Width = vg.Points(1.5)
	limitLine.LineStyle.Color = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	limitLine.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
	p.Add(limitLine)
	p.Legend.Add("limit", limitLine)

	// Operating point
	point, err := plotter.NewScatter(plotter.XYs{{X: data.Speed, Y: data.Load}})
	if err != nil {
		return err
	}
	point.GlyphStyle.Color = color.RGBA{R: 139, G: 69, B: 19, A: 255}
	point.GlyphStyle.Radius = vg.Points(4)
	point.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(point)
	p.Legend.Add("design case", point)
	p.Legend.Top = true
	p.Legend.Left = true

	// Determine file format from extension
	ext := filepath.Ext(filename)
	width := 8 * vg.Inch
	height := 6 * vg.Inch

	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	switch ext {
	case ".png", ".svg", ".pdf":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}
