package girder

import (
	"math"

	"github.com/DSinghania13/girdervis/internal/model"
)

// DiagramType selects which internal force a diagram plots and thereby its
// interpolation rule: shear is stepped, moment is piecewise linear.
type DiagramType int

const (
	Shear DiagramType = iota
	Moment
)

// String returns the conventional diagram abbreviation.
func (t DiagramType) String() string {
	if t == Shear {
		return "SFD"
	}
	return "BMD"
}

// Title returns the full diagram name.
func (t DiagramType) Title() string {
	if t == Shear {
		return "Shear Force"
	}
	return "Bending Moment"
}

// Unit returns the display unit of the diagram values.
func (t DiagramType) Unit() string {
	if t == Shear {
		return "kN"
	}
	return "kN-m"
}

// Segment is the diagram over one element: the arc-length span [S0, S1] and
// the values at its two ends. A stepped segment has V0 == V1.
type Segment struct {
	Elem   model.ElemID
	S0, S1 float64
	V0, V1 float64
}

// Function is the reconstructed diagram of one girder and one diagram type:
// an ordered list of per-element segments. Adjacent segments may disagree at
// their shared arc length; the dataset values are kept verbatim (vertical
// jumps render as such, they are not smoothed away).
type Function struct {
	Girder   string
	Type     DiagramType
	Segments []Segment
}

// BuildFunction attaches force samples to a girder path.
//
// Shear uses the start-node value (Vy_i) as the constant over the whole
// element span; the same end is used for every element so the stepped
// profile stays consistent with the dataset convention. Moment interpolates
// linearly from Mz_i to Mz_j. A missing sample is a DataError.
func BuildFunction(p *Path, forces *model.Forces, typ DiagramType) (*Function, error) {
	fn := &Function{
		Girder:   p.Name,
		Type:     typ,
		Segments: make([]Segment, 0, len(p.Elements)),
	}

	for k, eid := range p.Elements {
		sample, err := forces.Sample(eid)
		if err != nil {
			return nil, &model.DataError{Girder: p.Name, Elem: eid, Reason: "no force sample for element"}
		}
		s0, s1 := p.Span(k)

		var v0, v1 float64
		if typ == Shear {
			v0, v1 = sample.ShearI, sample.ShearI
		} else {
			v0, v1 = sample.MomentI, sample.MomentJ
		}
		fn.Segments = append(fn.Segments, Segment{Elem: eid, S0: s0, S1: s1, V0: v0, V1: v1})
	}

	return fn, nil
}

// At samples the diagram at arc length s. Positions before the first or
// after the last segment clamp to the nearest end value; at a jump between
// segments the later segment wins.
func (f *Function) At(s float64) float64 {
	segs := f.Segments
	if s <= segs[0].S0 {
		return segs[0].V0
	}
	for i := len(segs) - 1; i >= 0; i-- {
		seg := segs[i]
		if s >= seg.S0 {
			if s >= seg.S1 || seg.S1 == seg.S0 {
				return seg.V1
			}
			return seg.V0 + (seg.V1-seg.V0)*(s-seg.S0)/(seg.S1-seg.S0)
		}
	}
	return segs[len(segs)-1].V1
}

// MaxAbs returns the largest absolute value over all segment endpoints.
func (f *Function) MaxAbs() float64 {
	var m float64
	for _, seg := range f.Segments {
		m = math.Max(m, math.Max(math.Abs(seg.V0), math.Abs(seg.V1)))
	}
	return m
}

// Range returns the signed minimum and maximum over all segment endpoints.
func (f *Function) Range() (min, max float64) {
	min, max = math.Inf(1), math.Inf(-1)
	for _, seg := range f.Segments {
		min = math.Min(min, math.Min(seg.V0, seg.V1))
		max = math.Max(max, math.Max(seg.V0, seg.V1))
	}
	return min, max
}

// Extremum is a diagram value at a specific arc length.
type Extremum struct {
	S float64
	V float64
}

// Extrema returns the breakpoints holding the global minimum and maximum.
func (f *Function) Extrema() (min, max Extremum) {
	min = Extremum{S: f.Segments[0].S0, V: f.Segments[0].V0}
	max = min
	for _, seg := range f.Segments {
		for _, pt := range [2]Extremum{{seg.S0, seg.V0}, {seg.S1, seg.V1}} {
			if pt.V < min.V {
				min = pt
			}
			if pt.V > max.V {
				max = pt
			}
		}
	}
	return min, max
}

// ZeroCrossings returns the arc lengths where the diagram changes sign
// inside an element, computed from the exact linear intersection. Stepped
// segments never cross inside a span.
func (f *Function) ZeroCrossings() []float64 {
	var xs []float64
	for _, seg := range f.Segments {
		if seg.V0*seg.V1 < 0 {
			xs = append(xs, seg.S0-seg.V0*(seg.S1-seg.S0)/(seg.V1-seg.V0))
		}
	}
	return xs
}
