package render

import (
	"image/color"
	"testing"
)

func TestColormapPositionMonotone(t *testing.T) {
	cm := NewColormap(100)

	prev := -1.0
	for _, m := range []float64{0, 0.5, 10, 25, 50, 99, 100} {
		pos := cm.Position(m)
		if pos < prev {
			t.Fatalf("Position(%v) = %v decreases from %v", m, pos, prev)
		}
		prev = pos
	}

	// Sign is irrelevant: color keys on magnitude.
	if cm.Position(-50) != cm.Position(50) {
		t.Errorf("Position(-50) != Position(50)")
	}
}

func TestColormapClampsAboveMax(t *testing.T) {
	cm := NewColormap(10)
	if pos := cm.Position(50); pos != 1 {
		t.Errorf("Position above max = %v, want clamped to 1", pos)
	}
}

func TestColormapColdToHot(t *testing.T) {
	cm := NewColormap(100)

	cold := color.RGBAModel.Convert(cm.At(0)).(color.RGBA)
	hot := color.RGBAModel.Convert(cm.At(100)).(color.RGBA)

	if cold.B <= cold.R {
		t.Errorf("zero magnitude color %+v is not blue-dominant", cold)
	}
	if hot.R <= hot.B {
		t.Errorf("max magnitude color %+v is not red-dominant", hot)
	}
}

func TestColormapDegenerateScene(t *testing.T) {
	cm := NewColormap(0)
	if pos := cm.Position(0); pos != 0 {
		t.Errorf("degenerate Position(0) = %v, want 0", pos)
	}
	// Must not panic and must stay on the cold end.
	c := color.RGBAModel.Convert(cm.At(0)).(color.RGBA)
	if c.B <= c.R {
		t.Errorf("degenerate scene color %+v is not cold", c)
	}
}
