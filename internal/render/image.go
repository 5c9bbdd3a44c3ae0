package render

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/DSinghania13/girdervis/internal/girder"
)

// diagramColor returns the conventional line color per diagram type:
// blue for shear, red for moment.
func diagramColor(typ girder.DiagramType) color.Color {
	if typ == girder.Shear {
		return color.RGBA{R: 0, G: 0, B: 205, A: 255}
	}
	return color.RGBA{R: 205, G: 0, B: 0, A: 255}
}

// Export2D renders one girder diagram as a 2D figure and saves it to
// filename (.png, .svg or .pdf by extension).
func Export2D(fn *girder.Function, cfg Config, filename string) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s (%s) - Girder %s", fn.Type.Title(), fn.Type, fn.Girder)
	p.X.Label.Text = "Bridge Longitudinal Axis (m)"
	p.Y.Label.Text = fmt.Sprintf("Magnitude [%s]", fn.Type.Unit())

	lineColor := diagramColor(fn.Type)

	// Hatch fill first so the boundary draws on top of it.
	for _, h := range HatchLines(fn, cfg.HatchDensity) {
		hl, err := plotter.NewLine(plotter.XYs{
			{X: h[0].X, Y: h[0].Y},
			{X: h[1].X, Y: h[1].Y},
		})
		if err != nil {
			return err
		}
		hl.LineStyle.Width = vg.Points(0.6)
		hl.LineStyle.Color = color.RGBA{R: 30, G: 30, B: 30, A: 200}
		p.Add(hl)
	}

	// Zero axis reference line.
	length := fn.Segments[len(fn.Segments)-1].S1
	zeroLine, err := plotter.NewLine(plotter.XYs{
		{X: 0, Y: 0},
		{X: length, Y: 0},
	})
	if err != nil {
		return err
	}
	zeroLine.LineStyle.Width = vg.Points(1.5)
	zeroLine.LineStyle.Color = color.Black
	p.Add(zeroLine)

	// Main boundary polyline with node markers.
	boundary := Polyline(fn)
	xys := make(plotter.XYs, len(boundary))
	for i, pt := range boundary {
		xys[i] = plotter.XY{X: pt.X, Y: pt.Y}
	}
	line, points, err := plotter.NewLinePoints(xys)
	if err != nil {
		return err
	}
	line.LineStyle.Width = vg.Points(2)
	line.LineStyle.Color = lineColor
	points.GlyphStyle.Color = lineColor
	points.GlyphStyle.Radius = vg.Points(2)
	points.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(line, points)

	// Annotate global extrema.
	min, max := fn.Extrema()
	labels := []struct {
		x, y float64
		text string
	}{
		{max.S, max.V, fmt.Sprintf("MAX: %.3f %s", max.V, fn.Type.Unit())},
		{min.S, min.V, fmt.Sprintf("MIN: %.3f %s", min.V, fn.Type.Unit())},
	}

	// Annotate zero crossings (moment diagrams change sign inside spans).
	for _, x0 := range fn.ZeroCrossings() {
		labels = append(labels, struct {
			x, y float64
			text string
		}{x0, 0, fmt.Sprintf("x=%.2f m", x0)})
	}

	for _, lbl := range labels {
		l, err := plotter.NewLabels(plotter.XYLabels{
			XYs:    []plotter.XY{{X: lbl.x, Y: lbl.y}},
			Labels: []string{lbl.text},
		})
		if err != nil {
			return err
		}
		p.Add(l)
	}

	return savePlot(p, 10*vg.Inch, 5*vg.Inch, filename)
}

// savePlot writes a figure to disk, creating the directory if needed and
// defaulting to PNG for unknown extensions.
func savePlot(p *plot.Plot, width, height vg.Length, filename string) error {
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
