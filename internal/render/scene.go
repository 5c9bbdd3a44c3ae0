package render

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/DSinghania13/girdervis/internal/girder"
	"github.com/DSinghania13/girdervis/internal/model"
)

// Scene camera: a fixed isometric-style orthographic projection. The angles
// match the usual structural-analysis view with the deck receding to the
// upper right.
const (
	sceneAzimuth   = 35.0 * math.Pi / 180
	sceneElevation = 28.0 * math.Pi / 180
)

// projectPoint maps a scene point onto the drawing plane.
func projectPoint(p model.Vec3) (x, y float64) {
	sa, ca := math.Sincos(sceneAzimuth)
	se, ce := math.Sincos(sceneElevation)
	x = p.X*ca + p.Z*sa
	y = p.Y*ce + (p.Z*ca-p.X*sa)*se
	return x, y
}

// ExportScene renders a set of girder fences into one figure and saves it
// to filename. All fences must have been built with the same Scale so their
// heights and colors are comparable; cm supplies the shared magnitude
// coloring.
func ExportScene(fences []*Fence, cm *Colormap, typ girder.DiagramType, filename string) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("3D %s (%s) - All Girders", typ.Title(), typ)
	p.X.Label.Text = "Length / Width (m, projected)"
	p.Y.Label.Text = fmt.Sprintf("Force Magnitude [%s] (scaled)", typ.Unit())

	for _, f := range fences {
		// Zero-force baseline along the girder axis.
		base := make(plotter.XYs, len(f.Baseline))
		for i, pt := range f.Baseline {
			x, y := projectPoint(pt)
			base[i] = plotter.XY{X: x, Y: y}
		}
		baseline, err := plotter.NewLine(base)
		if err != nil {
			return err
		}
		baseline.LineStyle.Width = vg.Points(1.5)
		baseline.LineStyle.Color = color.Gray{Y: 128}
		p.Add(baseline)

		// Vertical hatch ribs, colored by unscaled magnitude.
		for _, rib := range f.Ribs {
			if err := addEdge(p, rib, cm, vg.Points(0.8)); err != nil {
				return err
			}
		}

		// Top profile, thicker, broken between elements.
		for _, top := range f.Top {
			if err := addEdge(p, top, cm, vg.Points(2)); err != nil {
				return err
			}
		}
	}

	return savePlot(p, 12*vg.Inch, 7*vg.Inch, filename)
}

// addEdge projects one fence edge and draws it with the gradient color of
// its mean value.
func addEdge(p *plot.Plot, e Edge, cm *Colormap, width vg.Length) error {
	ax, ay := projectPoint(e.A.Pos)
	bx, by := projectPoint(e.B.Pos)
	line, err := plotter.NewLine(plotter.XYs{{X: ax, Y: ay}, {X: bx, Y: by}})
	if err != nil {
		return err
	}
	line.LineStyle.Width = width
	line.LineStyle.Color = cm.At((e.A.Value + e.B.Value) / 2)
	p.Add(line)
	return nil
}
