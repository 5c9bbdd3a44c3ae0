// Package render projects reconstructed girder diagrams into visual
// primitives: 2D polylines with hatch fill, and 3D "fence" ribbons with
// magnitude-keyed coloring, exported through gonum/plot.
package render

// Config holds the presentation policy of a rendering pass. None of these
// settings affect the diagram values themselves, only how they are drawn.
type Config struct {
	// TargetHeight is the visual extent (in scene length units) that the
	// largest force magnitude maps to in a 3D scene.
	TargetHeight float64

	// WidthExpansion stretches the transverse (Z) coordinates of the deck
	// so inner girders are not hidden behind outer ones. Purely visual.
	WidthExpansion float64

	// HatchInterval is the number of rib intervals per element in a 3D
	// fence; an element gets HatchInterval+1 vertical ribs.
	HatchInterval int

	// HatchDensity is the number of vertical fill lines per element in a
	// 2D diagram.
	HatchDensity int
}

// DefaultConfig returns the stock presentation: forces scaled to 5 length
// units, 1.5x width expansion, 10 rib intervals and 12 fill lines per
// element.
func DefaultConfig() Config {
	return Config{
		TargetHeight:   5.0,
		WidthExpansion: 1.5,
		HatchInterval:  10,
		HatchDensity:   12,
	}
}
