// Package girder reconstructs internal-force diagrams along longitudinal
// girders of a bridge deck: it chains elements into an arc-length
// parameterized path, attaches the per-element force samples as a piecewise
// function, and computes the shared visual scale for a rendering pass.
package girder

import (
	"fmt"

	"github.com/DSinghania13/girdervis/internal/model"
)

// chainTol is the coordinate tolerance used when consecutive elements do not
// share a node id but may still meet at the same point.
const chainTol = 1e-9

// Breakpoint is one node of a girder path: its cumulative arc length from
// the girder start and its position in space.
type Breakpoint struct {
	S   float64
	Pos model.Vec3
}

// Path is one continuous longitudinal girder: an ordered element chain and
// the derived arc-length breakpoints. Immutable once built; Points always
// holds len(Elements)+1 entries.
type Path struct {
	Name     string
	Elements []model.ElemID
	Points   []Breakpoint
}

// BuildPath walks the element ids in the given order and accumulates arc
// length from the 3D distance between each element's endpoint nodes.
//
// Consecutive elements must connect end-to-start. A broken chain is a
// configuration error and returns a GeometryError; the list is never
// reordered or auto-corrected.
func BuildPath(name string, geo *model.Geometry, elems []model.ElemID) (*Path, error) {
	if len(elems) == 0 {
		return nil, &model.GeometryError{Girder: name, Reason: "empty element list"}
	}

	p := &Path{
		Name:     name,
		Elements: append([]model.ElemID(nil), elems...),
		Points:   make([]Breakpoint, 0, len(elems)+1),
	}

	var (
		arc     float64
		prevEnd model.NodeID
		prevPos model.Vec3
	)

	for k, eid := range elems {
		el, err := geo.Element(eid)
		if err != nil {
			return nil, fmt.Errorf("girder %q: %w", name, err)
		}
		start, err := geo.Node(el.Start)
		if err != nil {
			return nil, fmt.Errorf("girder %q: element %d: %w", name, eid, err)
		}
		end, err := geo.Node(el.End)
		if err != nil {
			return nil, fmt.Errorf("girder %q: element %d: %w", name, eid, err)
		}

		if k == 0 {
			p.Points = append(p.Points, Breakpoint{S: 0, Pos: start})
		} else if el.Start != prevEnd && start.Dist(prevPos) > chainTol {
			return nil, &model.GeometryError{
				Girder: name,
				Elem:   eid,
				Reason: fmt.Sprintf("start node %d does not connect to previous end node %d", el.Start, prevEnd),
			}
		}

		arc += start.Dist(end)
		p.Points = append(p.Points, Breakpoint{S: arc, Pos: end})
		prevEnd = el.End
		prevPos = end
	}

	return p, nil
}

// Length returns the total arc length of the girder.
func (p *Path) Length() float64 {
	return p.Points[len(p.Points)-1].S
}

// Span returns the arc-length interval covered by element k of the chain.
func (p *Path) Span(k int) (s0, s1 float64) {
	return p.Points[k].S, p.Points[k+1].S
}
