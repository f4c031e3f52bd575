// Package diagram renders the shear force and bending moment curves as
// vector plots, and as ASCII charts for terminal preview.
package diagram

import (
	"image/color"
	"io"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/structeng/beamreport/internal/statics"
)

var (
	shearColor  = color.RGBA{R: 0, G: 0, B: 205, A: 255}
	momentColor = color.RGBA{R: 205, G: 0, B: 0, A: 255}
	axisGray    = color.Gray{Y: 128}
)

// NewSFD builds the shear force diagram plot.
func NewSFD(d *statics.Diagram) (*plot.Plot, error) {
	xs, shear, _ := d.Curves()
	return curvePlot("Shear Force Diagram", "Shear Force (kN)", xs, shear, shearColor, d.Beam.Span)
}

// NewBMD builds the bending moment diagram plot.
func NewBMD(d *statics.Diagram) (*plot.Plot, error) {
	xs, _, moment := d.Curves()
	return curvePlot("Bending Moment Diagram", "Bending Moment (kN·m)", xs, moment, momentColor, d.Beam.Span)
}

func curvePlot(title, yLabel string, xs, ys []float64, c color.Color, span float64) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Distance along beam (m)"
	p.Y.Label.Text = yLabel
	p.Add(plotter.NewGrid())

	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i] = plotter.XY{X: xs[i], Y: ys[i]}
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil, err
	}
	line.LineStyle.Width = vg.Points(2)
	line.LineStyle.Color = c
	p.Add(line)

	// Zero reference line across the full span
	zero, err := plotter.NewLine(plotter.XYs{{X: 0, Y: 0}, {X: span, Y: 0}})
	if err != nil {
		return nil, err
	}
	zero.LineStyle.Width = vg.Points(1)
	zero.LineStyle.Color = axisGray
	zero.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}
	p.Add(zero)

	p.X.Min = 0
	p.X.Max = span
	return p, nil
}

// WritePNG renders the plot to w as a PNG with the given canvas size.
func WritePNG(p *plot.Plot, width, height vg.Length, w io.Writer) error {
	c := vgimg.New(width, height)
	p.Draw(draw.New(c))
	png := vgimg.PngCanvas{Canvas: c}
	_, err := png.WriteTo(w)
	return err
}

// Save writes the plot to a file, format chosen by extension
// (.png, .svg or .pdf; anything else gets .png appended).
func Save(p *plot.Plot, filename string) error {
	width := 8 * vg.Inch
	height := 5 * vg.Inch

	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		os.MkdirAll(dir, 0755)
	}

	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}
