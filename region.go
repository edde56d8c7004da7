package fractals

// Region is an axis aligned rectangle of the complex plane.
type Region struct {
	Xmin, Xmax float64
	Ymin, Ymax float64
}

// Width of the region along the real axis.
func (r Region) Width() float64 { return r.Xmax - r.Xmin }

// Height of the region along the imaginary axis.
func (r Region) Height() float64 { return r.Ymax - r.Ymin }

// Center of the region as a complex number.
func (r Region) Center() complex128 {
	return complex((r.Xmin+r.Xmax)/2, (r.Ymin+r.Ymax)/2)
}

// Empty reports whether the region has no area.
func (r Region) Empty() bool {
	return !(r.Xmax > r.Xmin) || !(r.Ymax > r.Ymin)
}

// Default regions of the two escape-time fractals.
var (
	MandelbrotRegion = Region{Xmin: -2.0, Xmax: 1.0, Ymin: -1.5, Ymax: 1.5}
	JuliaRegion      = Region{Xmin: -2.0, Xmax: 2.0, Ymin: -2.0, Ymax: 2.0}
)

// Named views of the Mandelbrot set, for starting a field somewhere
// more interesting than the whole set.
var (
	SeahorseValley = Region{Xmin: -0.8, Xmax: -0.7, Ymin: 0.05, Ymax: 0.15}
	ElephantValley = Region{Xmin: -1.85, Xmax: -1.75, Ymin: -0.10, Ymax: -0.02}
	SpiralMinibrot = Region{Xmin: -0.7435, Xmax: -0.7420, Ymin: 0.1310, Ymax: 0.1325}
	TripleSpiral   = Region{Xmin: -0.7480, Xmax: -0.7450, Ymin: 0.0950, Ymax: 0.0980}
)

// Landmarks maps the names accepted on the command line to regions.
var Landmarks = map[string]Region{
	"mandelbrot": MandelbrotRegion,
	"julia":      JuliaRegion,
	"seahorse":   SeahorseValley,
	"elephant":   ElephantValley,
	"minibrot":   SpiralMinibrot,
	"triple":     TripleSpiral,
}
