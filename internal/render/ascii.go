package render

import (
	"fmt"

	"github.com/guptarohit/asciigraph"

	"github.com/DSinghania13/girdervis/internal/girder"
)

// ASCII renders a terminal preview of a diagram function, sampled at evenly
// spaced stations along the girder. Stepped shear shows as flat plateaus,
// moment as sloped runs.
func ASCII(fn *girder.Function, width, height int) string {
	if width < 10 {
		width = 72
	}
	if height < 2 {
		height = 12
	}

	length := fn.Segments[len(fn.Segments)-1].S1
	data := make([]float64, width)
	for i := range data {
		s := length * float64(i) / float64(width-1)
		data[i] = fn.At(s)
	}

	return asciigraph.Plot(data,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(fmt.Sprintf("%s - Girder %s [%s] over %.2f m",
			fn.Type, fn.Girder, fn.Type.Unit(), length)),
	)
}
