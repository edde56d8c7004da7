package fractals

import (
	"testing"

	"github.com/gogpu/gg"
)

func TestSegmentLength(t *testing.T) {
	if got := (Segment{Start: gg.Pt(1, 2), End: gg.Pt(4, -2)}).Length(); got != 5 {
		t.Errorf("Length = %g, want 5", got)
	}
}

func TestPolygonArea(t *testing.T) {
	tests := []struct {
		name string
		pg   Polygon
		want float64
	}{
		{"unit square", Polygon{gg.Pt(0, 0), gg.Pt(1, 0), gg.Pt(1, 1), gg.Pt(0, 1)}, 1},
		{"clockwise triangle", Polygon{gg.Pt(0, 0), gg.Pt(0, 3), gg.Pt(4, 0)}, 6},
		{"degenerate", Polygon{gg.Pt(0, 0), gg.Pt(1, 1), gg.Pt(2, 2)}, 0},
	}
	for _, tt := range tests {
		if got := tt.pg.Area(); got != tt.want {
			t.Errorf("%s: Area() = %g, want %g", tt.name, got, tt.want)
		}
	}
}

func TestRegion(t *testing.T) {
	r := MandelbrotRegion
	if r.Width() != 3 || r.Height() != 3 {
		t.Errorf("size = %gx%g, want 3x3", r.Width(), r.Height())
	}
	if got := r.Center(); got != complex(-0.5, 0) {
		t.Errorf("Center() = %v", got)
	}
	if r.Empty() {
		t.Error("Mandelbrot region reported empty")
	}
	for _, e := range []Region{{}, {Xmin: 1, Xmax: 0, Ymin: 0, Ymax: 1}, {Xmin: 0, Xmax: 1, Ymin: 2, Ymax: 2}} {
		if !e.Empty() {
			t.Errorf("%+v not empty", e)
		}
	}
	for name, lr := range Landmarks {
		if lr.Empty() {
			t.Errorf("landmark %q is empty", name)
		}
	}
}
