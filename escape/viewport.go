package escape

import (
	"math"

	"github.com/marben/fractals"
)

// Viewport is the complex-plane window of a Field.
type Viewport struct {
	Width, Height int // output pixels, fixed at construction
	Xmin, Xmax    float64
	Ymin, Ymax    float64
	MaxIter       int
	C             complex128 // Julia only
}

// Region returns the plane bounds of the viewport.
func (v Viewport) Region() fractals.Region {
	return fractals.Region{Xmin: v.Xmin, Xmax: v.Xmax, Ymin: v.Ymin, Ymax: v.Ymax}
}

// CacheKey is a rounded snapshot of a viewport. Two frames with equal keys
// render the same image.
type CacheKey struct {
	Xmin, Xmax float64
	Ymin, Ymax float64
	MaxIter    int
	CIndex     int
}

func newCacheKey(r fractals.Region, maxIter, cIndex, decimals int) CacheKey {
	return CacheKey{
		Xmin:    round(r.Xmin, decimals),
		Xmax:    round(r.Xmax, decimals),
		Ymin:    round(r.Ymin, decimals),
		Ymax:    round(r.Ymax, decimals),
		MaxIter: maxIter,
		CIndex:  cIndex,
	}
}

func round(x float64, decimals int) float64 {
	p := math.Pow10(decimals)
	return math.Round(x*p) / p
}

// State of a Field's cached surface.
type State int

const (
	// Stale means no surface exists yet or the viewport changed since the
	// last computation.
	Stale State = iota
	// Cached means the surface matches the current CacheKey.
	Cached
)

func (s State) String() string {
	if s == Cached {
		return "cached"
	}
	return "stale"
}
