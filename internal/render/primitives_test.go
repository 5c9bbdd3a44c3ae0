package render

import (
	"math"
	"testing"

	"github.com/DSinghania13/girdervis/internal/girder"
)

// stepFn is a three-element stepped shear diagram over spans 3, 4 and 5 m.
func stepFn() *girder.Function {
	return &girder.Function{
		Girder: "central",
		Type:   girder.Shear,
		Segments: []girder.Segment{
			{Elem: 15, S0: 0, S1: 3, V0: 10, V1: 10},
			{Elem: 24, S0: 3, S1: 7, V0: -5, V1: -5},
			{Elem: 33, S0: 7, S1: 12, V0: 20, V1: 20},
		},
	}
}

func TestPolylineKeepsRawValues(t *testing.T) {
	pts := Polyline(stepFn())
	want := []XY{
		{0, 10}, {3, 10},
		{3, -5}, {7, -5},
		{7, 20}, {12, 20},
	}
	if len(pts) != len(want) {
		t.Fatalf("got %d points, want %d", len(pts), len(want))
	}
	for i, pt := range pts {
		if pt != want[i] {
			t.Errorf("point %d = %+v, want %+v", i, pt, want[i])
		}
	}
}

func TestPolylineFirstSegmentSign(t *testing.T) {
	fn := &girder.Function{
		Girder: "central",
		Type:   girder.Shear,
		Segments: []girder.Segment{
			{Elem: 15, S0: 0, S1: 3, V0: -120.5, V1: -120.5},
		},
	}
	pts := Polyline(fn)
	if pts[0].Y != -120.5 || pts[1].Y != -120.5 {
		t.Errorf("first segment values = %v, %v; want -120.5 exactly", pts[0].Y, pts[1].Y)
	}
}

func TestHatchLinesCountAndAnchors(t *testing.T) {
	lines := HatchLines(stepFn(), 12)
	if len(lines) != 3*12 {
		t.Fatalf("got %d hatch lines, want 36", len(lines))
	}
	for i, ln := range lines {
		if ln[0].Y != 0 {
			t.Fatalf("line %d does not start on the zero axis: %+v", i, ln)
		}
		if ln[0].X != ln[1].X {
			t.Fatalf("line %d is not vertical: %+v", i, ln)
		}
	}
	// All lines within the first element carry the constant step value.
	for _, ln := range lines[:12] {
		if ln[1].Y != 10 {
			t.Errorf("hatch at %v has value %v, want 10", ln[0].X, ln[1].Y)
		}
	}
}

func TestHatchLinesInterpolateLinearSegments(t *testing.T) {
	fn := &girder.Function{
		Girder: "span",
		Type:   girder.Moment,
		Segments: []girder.Segment{
			{Elem: 5, S0: 10, S1: 14.2, V0: 50, V1: 30},
		},
	}
	lines := HatchLines(fn, 3) // stations at 10, 12.1, 14.2
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	mid := lines[1]
	if math.Abs(mid[0].X-12.1) > 1e-12 {
		t.Errorf("mid station at %v, want 12.1", mid[0].X)
	}
	if math.Abs(mid[1].Y-40) > 1e-12 {
		t.Errorf("mid value = %v, want 40", mid[1].Y)
	}
}
