package escape

import "github.com/marben/fractals"

// Kind selects the iteration formula.
type Kind int

const (
	// KindMandelbrot iterates z = z² + c from z = 0 with c the sample point.
	KindMandelbrot Kind = iota
	// KindJulia iterates z = z² + c from z = the sample point with a fixed c.
	KindJulia
)

func (k Kind) String() string {
	switch k {
	case KindMandelbrot:
		return "mandelbrot"
	case KindJulia:
		return "julia"
	}
	return "unknown"
}

// Config holds the tunables of one fractal kind. Mandelbrot and Julia have
// different natural scales and cost/quality trade-offs, so every value is
// kept per kind.
type Config struct {
	Kind Kind

	ZoomDivisor      float64 // zoom = max(MinZoom, scale / ZoomDivisor)
	AspectDivisor    float64 // pixels per plane unit = width / AspectDivisor
	RotationDeadzone float64 // radians; smaller rotations are ignored
	PlaneSpan        float64 // visible plane extent at zoom 1
	IterCap          int     // upper bound for MaxIter
	IterMultiplier   int     // MaxIter = iter step * IterMultiplier
	KeyDecimals      int     // rounding of bounds in the CacheKey
	RenderScale      float64 // internal resolution relative to the output

	Region  fractals.Region // bounds before the first update
	MaxIter int             // iteration cap before the first update
	C       complex128      // Julia parameter before the first rotation step

	// Presets are the Julia parameters selected by rotation.
	Presets []complex128
}

// IterLimit returns the iteration cap for an iteration step:
// step*IterMultiplier clamped to [1, IterCap]. Steps too large to multiply
// without overflow yield IterCap.
func (c Config) IterLimit(step int) int {
	if step <= 0 {
		return 1
	}
	if c.IterMultiplier > 0 && step > c.IterCap/c.IterMultiplier {
		return max(1, c.IterCap)
	}
	return max(1, min(c.IterCap, step*c.IterMultiplier))
}

// MinZoom is the lower bound of the derived zoom factor.
const MinZoom = 0.1

// JuliaPresets are the c values the Julia set steps through while rotating.
var JuliaPresets = []complex128{
	complex(-0.7, 0.27015),
	complex(-0.8, 0.156),
	complex(-0.75, 0.11),
	complex(0.285, 0.01),
	complex(-0.4, 0.6),
	complex(-0.123, 0.745),
	complex(-0.745, 0.113),
	complex(-0.235, -0.827),
}

// MandelbrotConfig returns the default Mandelbrot tunables.
func MandelbrotConfig() Config {
	return Config{
		Kind:             KindMandelbrot,
		ZoomDivisor:      200,
		AspectDivisor:    6,
		RotationDeadzone: 0.1,
		PlaneSpan:        3,
		IterCap:          80,
		IterMultiplier:   8,
		KeyDecimals:      4,
		RenderScale:      0.5,
		Region:           fractals.MandelbrotRegion,
		MaxIter:          50,
	}
}

// JuliaConfig returns the default Julia tunables. Julia renders at a
// slightly higher internal resolution than Mandelbrot.
func JuliaConfig() Config {
	return Config{
		Kind:             KindJulia,
		ZoomDivisor:      150,
		AspectDivisor:    4,
		RotationDeadzone: 0.05,
		PlaneSpan:        4,
		IterCap:          60,
		IterMultiplier:   10,
		KeyDecimals:      3,
		RenderScale:      0.6,
		Region:           fractals.JuliaRegion,
		MaxIter:          50,
		C:                JuliaPresets[0],
		Presets:          JuliaPresets,
	}
}

// ConfigFor returns the default configuration of k.
func ConfigFor(k Kind) Config {
	if k == KindJulia {
		return JuliaConfig()
	}
	return MandelbrotConfig()
}
