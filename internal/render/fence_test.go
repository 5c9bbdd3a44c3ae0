package render

import (
	"math"
	"testing"

	"github.com/DSinghania13/girdervis/internal/girder"
	"github.com/DSinghania13/girdervis/internal/model"
)

func fencePath(t *testing.T) *girder.Path {
	t.Helper()
	geo := model.NewGeometry(
		map[model.NodeID]model.Vec3{
			1: {X: 0, Y: 0, Z: 2},
			2: {X: 3, Y: 0, Z: 2},
			3: {X: 7, Y: 0, Z: 2},
		},
		map[model.ElemID]model.Element{
			10: {Start: 1, End: 2},
			11: {Start: 2, End: 3},
		},
	)
	p, err := girder.BuildPath("edge", geo, []model.ElemID{10, 11})
	if err != nil {
		t.Fatalf("BuildPath: %v", err)
	}
	return p
}

func fenceFn() *girder.Function {
	return &girder.Function{
		Girder: "edge",
		Type:   girder.Moment,
		Segments: []girder.Segment{
			{Elem: 10, S0: 0, S1: 3, V0: 0, V1: 30},
			{Elem: 11, S0: 3, S1: 7, V0: 30, V1: -10},
		},
	}
}

func TestBuildFenceScalesHeightsAndExpandsWidth(t *testing.T) {
	p := fencePath(t)
	fn := fenceFn()
	sc := girder.Normalize(5.0, fn) // MaxAbs 30, Factor 1/6
	cfg := DefaultConfig()

	f := BuildFence(p, fn, sc, cfg)

	// Baseline sits on the zero plane with expanded Z.
	for i, bp := range f.Baseline {
		if bp.Y != 0 {
			t.Errorf("baseline point %d has height %v, want 0", i, bp.Y)
		}
		if bp.Z != 2*cfg.WidthExpansion {
			t.Errorf("baseline point %d Z = %v, want %v", i, bp.Z, 2*cfg.WidthExpansion)
		}
	}

	// 10 intervals per element: 2*10 top edges, 2*11 ribs.
	if len(f.Top) != 20 {
		t.Errorf("got %d top edges, want 20", len(f.Top))
	}
	if len(f.Ribs) != 22 {
		t.Errorf("got %d ribs, want 22", len(f.Ribs))
	}

	// The peak value 30 renders at the target height 5.
	var maxH float64
	for _, e := range f.Top {
		maxH = math.Max(maxH, math.Max(e.A.Pos.Y, e.B.Pos.Y))
	}
	if math.Abs(maxH-5) > 1e-12 {
		t.Errorf("peak height = %v, want 5", maxH)
	}

	// Ribs are vertical: bottom at zero, top at value*factor, value kept
	// unscaled for coloring.
	for i, r := range f.Ribs {
		if r.A.Pos.Y != 0 {
			t.Fatalf("rib %d bottom not on zero plane: %v", i, r.A.Pos.Y)
		}
		if r.A.Pos.X != r.B.Pos.X || r.A.Pos.Z != r.B.Pos.Z {
			t.Fatalf("rib %d not vertical", i)
		}
		if math.Abs(r.B.Pos.Y-r.B.Value*sc.Factor) > 1e-12 {
			t.Fatalf("rib %d height %v does not match value %v * factor", i, r.B.Pos.Y, r.B.Value)
		}
	}
}

func TestBuildFenceNegativeValuesExtrudeDownward(t *testing.T) {
	p := fencePath(t)
	fn := fenceFn()
	sc := girder.Normalize(5.0, fn)

	f := BuildFence(p, fn, sc, DefaultConfig())

	last := f.Top[len(f.Top)-1].B
	if last.Value != -10 {
		t.Fatalf("last top vertex value = %v, want -10", last.Value)
	}
	if last.Pos.Y >= 0 {
		t.Errorf("negative value renders at height %v, want below zero", last.Pos.Y)
	}
}

func TestBuildFenceAllZeroRendersFlat(t *testing.T) {
	p := fencePath(t)
	fn := &girder.Function{
		Girder: "edge",
		Type:   girder.Shear,
		Segments: []girder.Segment{
			{Elem: 10, S0: 0, S1: 3},
			{Elem: 11, S0: 3, S1: 7},
		},
	}
	sc := girder.Normalize(5.0, fn)
	if sc.Factor != 1 {
		t.Fatalf("degenerate Factor = %v, want 1", sc.Factor)
	}

	f := BuildFence(p, fn, sc, DefaultConfig())
	for _, e := range f.Top {
		if e.A.Pos.Y != 0 || e.B.Pos.Y != 0 {
			t.Fatalf("all-zero diagram renders non-flat edge: %+v", e)
		}
	}
}

func TestBuildFenceStepKeepsConstantHeightPerElement(t *testing.T) {
	p := fencePath(t)
	fn := &girder.Function{
		Girder: "edge",
		Type:   girder.Shear,
		Segments: []girder.Segment{
			{Elem: 10, S0: 0, S1: 3, V0: 10, V1: 10},
			{Elem: 11, S0: 3, S1: 7, V0: -5, V1: -5},
		},
	}
	sc := girder.Normalize(5.0, fn) // factor 0.5

	f := BuildFence(p, fn, sc, DefaultConfig())
	for _, e := range f.Top[:10] {
		if e.A.Pos.Y != 5 || e.B.Pos.Y != 5 {
			t.Errorf("first element top edge not constant: %+v", e)
		}
	}
	for _, e := range f.Top[10:] {
		if e.A.Pos.Y != -2.5 || e.B.Pos.Y != -2.5 {
			t.Errorf("second element top edge not constant: %+v", e)
		}
	}
}
