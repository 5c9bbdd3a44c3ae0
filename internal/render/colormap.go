package render

import (
	"image/color"
	"math"

	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/moreland"
)

// Colormap encodes force magnitude as a position on a blue-to-red gradient.
// It is keyed on absolute value against the scene-global maximum, so the
// same color means the same magnitude on every girder of a scene.
type Colormap struct {
	maxAbs float64
	cm     palette.ColorMap
}

// NewColormap builds a colormap for a scene whose largest magnitude is
// maxAbs. A degenerate all-zero scene maps everything to the cold end.
func NewColormap(maxAbs float64) *Colormap {
	if maxAbs <= 0 {
		maxAbs = 1
	}
	cm := moreland.SmoothBlueRed()
	cm.SetMin(0)
	cm.SetMax(1)
	return &Colormap{maxAbs: maxAbs, cm: cm}
}

// Position returns where |v| falls on the gradient, clamped to [0, 1].
// It is monotone in |v|.
func (c *Colormap) Position(v float64) float64 {
	t := math.Abs(v) / c.maxAbs
	if t > 1 {
		return 1
	}
	return t
}

// At returns the gradient color for value v: cold (blue) near zero
// magnitude, hot (red) at the scene maximum.
func (c *Colormap) At(v float64) color.Color {
	col, err := c.cm.At(c.Position(v))
	if err != nil {
		// Position is clamped, so the lookup cannot be out of range.
		return color.Black
	}
	return col
}
