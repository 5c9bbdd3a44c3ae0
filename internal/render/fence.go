package render

import (
	"github.com/DSinghania13/girdervis/internal/girder"
	"github.com/DSinghania13/girdervis/internal/model"
)

// Vertex is a point of a 3D fence in scene coordinates: X follows the
// bridge length, Y is the scaled diagram height, Z is the expanded deck
// width. Value keeps the unscaled signed force for color lookup.
type Vertex struct {
	Pos   model.Vec3
	Value float64
}

// Edge is a straight fence edge between two vertices.
type Edge struct {
	A Vertex
	B Vertex
}

// Fence is the 3D rendering of one girder diagram: the zero-force baseline
// along the girder axis, the top profile at scaled height, and the vertical
// hatch ribs between them. The top profile is broken between elements so
// stepped diagrams keep their discrete look.
type Fence struct {
	Girder   string
	Baseline []model.Vec3
	Top      []Edge
	Ribs     []Edge
}

// BuildFence extrudes a diagram function along its girder path. Heights are
// Value * sc.Factor on the Y axis; the deck is drawn at Y = 0 and transverse
// coordinates are multiplied by cfg.WidthExpansion for visual separation
// between girders.
func BuildFence(p *girder.Path, fn *girder.Function, sc girder.Scale, cfg Config) *Fence {
	f := &Fence{
		Girder:   p.Name,
		Baseline: make([]model.Vec3, 0, len(p.Points)),
	}
	for _, bp := range p.Points {
		f.Baseline = append(f.Baseline, model.Vec3{X: bp.Pos.X, Y: 0, Z: bp.Pos.Z * cfg.WidthExpansion})
	}

	intervals := cfg.HatchInterval
	if intervals < 1 {
		intervals = 1
	}

	for k, seg := range fn.Segments {
		a := p.Points[k].Pos
		b := p.Points[k+1].Pos

		prev := fenceVertex(a, b, seg, 0, sc.Factor, cfg.WidthExpansion)
		f.Ribs = append(f.Ribs, ribEdge(prev))

		for i := 1; i <= intervals; i++ {
			frac := float64(i) / float64(intervals)
			v := fenceVertex(a, b, seg, frac, sc.Factor, cfg.WidthExpansion)
			f.Top = append(f.Top, Edge{A: prev, B: v})
			f.Ribs = append(f.Ribs, ribEdge(v))
			prev = v
		}
	}

	return f
}

// fenceVertex interpolates the top-profile vertex at fraction frac of an
// element span.
func fenceVertex(a, b model.Vec3, seg girder.Segment, frac, factor, expansion float64) Vertex {
	val := seg.V0 + (seg.V1-seg.V0)*frac
	return Vertex{
		Pos: model.Vec3{
			X: a.X + (b.X-a.X)*frac,
			Y: val * factor,
			Z: (a.Z + (b.Z-a.Z)*frac) * expansion,
		},
		Value: val,
	}
}

// ribEdge drops a vertical hatch line from a top vertex to the zero plane.
func ribEdge(top Vertex) Edge {
	return Edge{
		A: Vertex{Pos: model.Vec3{X: top.Pos.X, Y: 0, Z: top.Pos.Z}, Value: top.Value},
		B: top,
	}
}
