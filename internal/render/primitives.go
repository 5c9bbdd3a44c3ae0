package render

import "github.com/DSinghania13/girdervis/internal/girder"

// XY is a point of a 2D diagram in (arc-length, signed value) space.
type XY struct {
	X float64
	Y float64
}

// Polyline converts a diagram function into its boundary polyline. Each
// segment contributes both endpoints, so a stepped shear diagram renders
// its vertical jumps at element boundaries and a moment diagram renders its
// sloped spans, with no smoothing between elements.
func Polyline(fn *girder.Function) []XY {
	pts := make([]XY, 0, 2*len(fn.Segments))
	for _, seg := range fn.Segments {
		pts = append(pts, XY{X: seg.S0, Y: seg.V0}, XY{X: seg.S1, Y: seg.V1})
	}
	return pts
}

// HatchLines builds the vertical fill lines of a 2D diagram: for each
// element, density evenly spaced stations, each with a line from the zero
// axis to the diagram value at that station.
func HatchLines(fn *girder.Function, density int) [][2]XY {
	if density < 2 {
		density = 2
	}
	lines := make([][2]XY, 0, density*len(fn.Segments))
	for _, seg := range fn.Segments {
		for i := 0; i < density; i++ {
			frac := float64(i) / float64(density-1)
			x := seg.S0 + (seg.S1-seg.S0)*frac
			y := seg.V0 + (seg.V1-seg.V0)*frac
			lines = append(lines, [2]XY{{X: x, Y: 0}, {X: x, Y: y}})
		}
	}
	return lines
}
