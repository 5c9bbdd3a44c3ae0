package girder

import (
	"math"
	"testing"

	"github.com/DSinghania13/girdervis/internal/model"
)

func TestNormalizeTargetsVisualExtent(t *testing.T) {
	fn, err := BuildFunction(centralPath(t), threeSpanForces(), Shear)
	if err != nil {
		t.Fatalf("BuildFunction: %v", err)
	}

	sc := Normalize(5.0, fn)
	if sc.MaxAbs != 20 {
		t.Errorf("MaxAbs = %v, want 20", sc.MaxAbs)
	}
	if sc.Factor != 0.25 {
		t.Errorf("Factor = %v, want 0.25", sc.Factor)
	}
	// The largest magnitude renders exactly at the target extent.
	if h := sc.MaxAbs * sc.Factor; h != 5.0 {
		t.Errorf("rendered extent = %v, want 5.0", h)
	}
}

func TestNormalizeSharedAcrossGirders(t *testing.T) {
	p := centralPath(t)
	small, err := BuildFunction(p, model.NewForces(map[model.ElemID]model.ForceSample{
		15: {ShearI: 1}, 24: {ShearI: -2}, 33: {ShearI: 1},
	}), Shear)
	if err != nil {
		t.Fatalf("BuildFunction: %v", err)
	}
	big, err := BuildFunction(p, model.NewForces(map[model.ElemID]model.ForceSample{
		15: {ShearI: -100}, 24: {ShearI: 50}, 33: {ShearI: 10},
	}), Shear)
	if err != nil {
		t.Fatalf("BuildFunction: %v", err)
	}

	sc := Normalize(5.0, small, big)
	if sc.MaxAbs != 100 {
		t.Errorf("MaxAbs = %v, want 100 (global over both girders)", sc.MaxAbs)
	}
	if sc.Min != -100 || sc.Max != 50 {
		t.Errorf("signed range = (%v, %v), want (-100, 50)", sc.Min, sc.Max)
	}
	if sc.Factor != 0.05 {
		t.Errorf("Factor = %v, want 0.05", sc.Factor)
	}
}

func TestNormalizeDegenerateAllZero(t *testing.T) {
	fn, err := BuildFunction(centralPath(t), model.NewForces(map[model.ElemID]model.ForceSample{
		15: {}, 24: {}, 33: {},
	}), Moment)
	if err != nil {
		t.Fatalf("BuildFunction: %v", err)
	}

	sc := Normalize(5.0, fn)
	if sc.Factor != 1 {
		t.Errorf("Factor = %v, want 1 for all-zero diagram", sc.Factor)
	}
	// Every rendered height stays zero.
	for _, seg := range fn.Segments {
		if seg.V0*sc.Factor != 0 || seg.V1*sc.Factor != 0 {
			t.Errorf("segment %d renders non-flat", seg.Elem)
		}
	}
}

func TestNormalizeNoFunctions(t *testing.T) {
	sc := Normalize(5.0)
	if sc.Factor != 1 || sc.MaxAbs != 0 {
		t.Errorf("empty scope: %+v, want Factor 1, MaxAbs 0", sc)
	}
	if math.IsInf(sc.Min, 0) || math.IsInf(sc.Max, 0) {
		t.Errorf("empty scope leaks infinities: %+v", sc)
	}
}
