package escape

import (
	"testing"
)

func TestMandelbrotEscapeCount(t *testing.T) {
	for _, maxIter := range []int{1, 8, 50, 80, 1000} {
		if got := Mandelbrot(0, maxIter); got != maxIter {
			t.Errorf("Mandelbrot(0, %d) = %d, want %d", maxIter, got, maxIter)
		}
		if got := Mandelbrot(complex(2, 2), maxIter); got != 0 {
			t.Errorf("Mandelbrot(2+2i, %d) = %d, want 0", maxIter, got)
		}
	}

	tests := []struct {
		c    complex128
		want int
	}{
		{complex(-1, 0), 100}, // period-2 cycle
		{complex(0.5, 0), 4},  // 0.5, 0.75, 1.0625, 1.6289, 3.153
		{complex(-2, 0), 100}, // tip of the needle, |z| reaches exactly 2
		{complex(1, 0), 2},    // 1, 2, 5
	}
	for _, tt := range tests {
		if got := Mandelbrot(tt.c, 100); got != tt.want {
			t.Errorf("Mandelbrot(%v, 100) = %d, want %d", tt.c, got, tt.want)
		}
	}
}

func TestJuliaEscapeCount(t *testing.T) {
	c := JuliaPresets[0]
	if got := Julia(complex(3, 0), c, 50); got != 0 {
		t.Errorf("Julia(3) = %d, want 0", got)
	}
	// from z = 0 the Julia orbit is the Mandelbrot orbit of c
	for _, c := range JuliaPresets {
		if got, want := Julia(0, c, 60), Mandelbrot(c, 60); got != want {
			t.Errorf("Julia(0, %v) = %d, want %d", c, got, want)
		}
	}
}

func TestLinspace(t *testing.T) {
	got := linspace(-1, 1, 5)
	want := []float64{-1, -0.5, 0, 0.5, 1}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("linspace[%d] = %g, want %g", i, got[i], want[i])
		}
	}
	if got := linspace(3, 7, 1); len(got) != 1 || got[0] != 3 {
		t.Errorf("linspace(3, 7, 1) = %v", got)
	}
}

func TestComputeFieldMatchesPointwise(t *testing.T) {
	for _, kind := range []Kind{KindMandelbrot, KindJulia} {
		t.Run(kind.String(), func(t *testing.T) {
			f, err := New(kind, 64, 48, WithRenderScale(1))
			if err != nil {
				t.Fatal(err)
			}
			f.UpdateParameters(150, 0, 20, 30, 5)

			field := f.ComputeField()
			w, h := f.Resolution()
			if len(field) != w*h {
				t.Fatalf("len(field) = %d, want %d", len(field), w*h)
			}

			vp := f.Viewport()
			xs := linspace(vp.Xmin, vp.Xmax, w)
			ys := linspace(vp.Ymin, vp.Ymax, h)
			for py, y := range ys {
				for px, x := range xs {
					var want int
					if kind == KindJulia {
						want = Julia(complex(x, y), vp.C, vp.MaxIter)
					} else {
						want = Mandelbrot(complex(x, y), vp.MaxIter)
					}
					if got := field[py*w+px]; got != want {
						t.Fatalf("point (%d,%d) = %d, want %d", px, py, got, want)
					}
				}
			}
		})
	}
}

func TestComputeFieldAllEscaped(t *testing.T) {
	f, err := New(KindMandelbrot, 10, 10, WithRenderScale(1),
		WithMaxIter(1000))
	if err != nil {
		t.Fatal(err)
	}
	// far outside the set, everything escapes on the first iteration
	f.vp.Xmin, f.vp.Xmax = 10, 11
	f.vp.Ymin, f.vp.Ymax = 10, 11

	for i, n := range f.ComputeField() {
		if n != 0 {
			t.Fatalf("point %d = %d, want 0", i, n)
		}
	}
}
