package escape

// Mandelbrot returns the escape count of c: the 0-based index of the first
// iteration of z = z² + c, started at z = 0, after which |z| > 2.
// Points that stay bounded for maxIter iterations return maxIter.
func Mandelbrot(c complex128, maxIter int) int {
	return escapeCount(0, c, maxIter)
}

// Julia is like Mandelbrot but starts at z and keeps c fixed.
func Julia(z, c complex128, maxIter int) int {
	return escapeCount(z, c, maxIter)
}

func escapeCount(z, c complex128, maxIter int) int {
	x, y := real(z), imag(z)
	cr, ci := real(c), imag(c)
	for i := range maxIter {
		x, y = x*x-y*y+cr, 2*x*y+ci
		if x*x+y*y > 4 {
			return i
		}
	}
	return maxIter
}

// linspace returns n evenly spaced samples over [a, b], endpoints included.
func linspace(a, b float64, n int) []float64 {
	s := make([]float64, n)
	if n == 1 {
		s[0] = a
		return s
	}
	step := (b - a) / float64(n-1)
	for i := range s {
		s[i] = a + float64(i)*step
	}
	s[n-1] = b
	return s
}

// ComputeField fills the escape-count grid of the current viewport at the
// reduced resolution and returns it, row-major, len = w*h as reported by
// Resolution. The slice is reused by the next call.
//
// All points advance one iteration per sweep and leave the active set as
// soon as they escape, so the whole computation stops once every point has
// escaped.
func (f *Field) ComputeField() []int {
	w, h := f.effW, f.effH
	n := w * h
	maxIter := f.vp.MaxIter

	if cap(f.field) < n {
		f.field = make([]int, n)
		f.zr = make([]float64, n)
		f.zi = make([]float64, n)
		f.cr = make([]float64, n)
		f.ci = make([]float64, n)
		f.active = make([]int32, n)
	}
	field := f.field[:n]
	zr, zi, cr, ci := f.zr[:n], f.zi[:n], f.cr[:n], f.ci[:n]
	active := f.active[:n]

	xs := linspace(f.vp.Xmin, f.vp.Xmax, w)
	ys := linspace(f.vp.Ymin, f.vp.Ymax, h)
	julia := f.cfg.Kind == KindJulia
	jr, ji := real(f.vp.C), imag(f.vp.C)

	for py, y := range ys {
		row := py * w
		for px, x := range xs {
			p := row + px
			if julia {
				zr[p], zi[p] = x, y
				cr[p], ci[p] = jr, ji
			} else {
				zr[p], zi[p] = 0, 0
				cr[p], ci[p] = x, y
			}
			field[p] = maxIter
			active[p] = int32(p)
		}
	}

	for i := 0; i < maxIter && len(active) > 0; i++ {
		k := 0
		for _, p := range active {
			x, y := zr[p], zi[p]
			x, y = x*x-y*y+cr[p], 2*x*y+ci[p]
			if x*x+y*y > 4 {
				field[p] = i
				continue
			}
			zr[p], zi[p] = x, y
			active[k] = p
			k++
		}
		active = active[:k]
	}
	return field
}
