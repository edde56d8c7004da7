package fractals

// Params are the per-frame view parameters produced by the viewport
// controller. They are in pixel space: Scale is a size in pixels,
// PanX/PanY is the screen position of the fractal's centre.
type Params struct {
	Scale float64 // zoom, pixels
	Angle float64 // rotation, radians
	PanX  float64
	PanY  float64
	Iter  int // recursion depth or iteration step, >= 1
}
