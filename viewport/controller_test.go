package viewport

import (
	"math"
	"testing"

	"github.com/marben/fractals"
)

func TestNew(t *testing.T) {
	c := New(800, 600)
	want := fractals.Params{Scale: 100, PanX: 400, PanY: 300, Iter: 1}
	if got := c.Params(); got != want {
		t.Errorf("Params() = %+v, want %+v", got, want)
	}
}

func TestApply(t *testing.T) {
	tests := []struct {
		name string
		keys Keys
		want fractals.Params
	}{
		{"none", Keys{}, fractals.Params{Scale: 100, PanX: 400, PanY: 300, Iter: 1}},
		{"zoom in", Keys{ZoomIn: true}, fractals.Params{Scale: 110, PanX: 400, PanY: 300, Iter: 1}},
		{"zoom out", Keys{ZoomOut: true}, fractals.Params{Scale: 90, PanX: 400, PanY: 300, Iter: 1}},
		{"rotate left", Keys{RotateLeft: true}, fractals.Params{Scale: 100, Angle: -math.Pi / 60, PanX: 400, PanY: 300, Iter: 1}},
		{"rotate right", Keys{RotateRight: true}, fractals.Params{Scale: 100, Angle: math.Pi / 60, PanX: 400, PanY: 300, Iter: 1}},
		{"pan up left", Keys{PanUp: true, PanLeft: true}, fractals.Params{Scale: 100, PanX: 395, PanY: 295, Iter: 1}},
		{"pan down right", Keys{PanDown: true, PanRight: true}, fractals.Params{Scale: 100, PanX: 405, PanY: 305, Iter: 1}},
		{"opposites cancel", Keys{ZoomIn: true, ZoomOut: true, PanLeft: true, PanRight: true}, fractals.Params{Scale: 100, PanX: 400, PanY: 300, Iter: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(800, 600)
			c.Apply(tt.keys)
			if got := c.Params(); got != tt.want {
				t.Errorf("Params() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestZoomFloor(t *testing.T) {
	c := New(100, 100)
	for range 20 {
		c.Apply(Keys{ZoomOut: true})
	}
	if got := c.Params().Scale; got != MinScale {
		t.Errorf("Scale = %g, want %g", got, MinScale)
	}
}

func TestIterations(t *testing.T) {
	c := New(100, 100)
	c.IterDown()
	if got := c.Params().Iter; got != 1 {
		t.Errorf("Iter after IterDown at 1 = %d, want 1", got)
	}

	c.SetIterLimit(3)
	for range 5 {
		c.IterUp()
	}
	if got := c.Params().Iter; got != 3 {
		t.Errorf("Iter = %d, want limit 3", got)
	}

	c.SetIterLimit(2)
	if got := c.Params().Iter; got != 2 {
		t.Errorf("Iter after lowering limit = %d, want 2", got)
	}

	c.SetIterLimit(0)
	c.IterUp()
	if got := c.Params().Iter; got != 3 {
		t.Errorf("Iter without limit = %d, want 3", got)
	}
}

func TestSetParamsAndReset(t *testing.T) {
	c := New(200, 100)
	c.SetIterLimit(4)
	c.SetParams(fractals.Params{Scale: -5, Angle: 1, PanX: 7, PanY: 8, Iter: 10})
	want := fractals.Params{Scale: MinScale, Angle: 1, PanX: 7, PanY: 8, Iter: 4}
	if got := c.Params(); got != want {
		t.Errorf("Params() = %+v, want %+v", got, want)
	}

	c.Reset()
	if got := c.Params(); got != (fractals.Params{Scale: 100, PanX: 100, PanY: 50, Iter: 1}) {
		t.Errorf("Params() after Reset = %+v", got)
	}
}

func TestKeysAny(t *testing.T) {
	if (Keys{}).Any() {
		t.Error("empty Keys reports a held key")
	}
	if !(Keys{PanLeft: true}).Any() {
		t.Error("PanLeft not reported")
	}
}
