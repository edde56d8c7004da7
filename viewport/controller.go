// Package viewport turns keyboard state into view parameters.
package viewport

import (
	"math"

	"github.com/marben/fractals"
)

// Step sizes applied once per frame while a key is held.
const (
	StepAngle = math.Pi / 60
	StepZoom  = 10.0
	StepPan   = 5.0

	MinScale     = 0.1
	InitialScale = 100.0
)

// Keys is the set of continuous transforms held down during a frame.
type Keys struct {
	ZoomIn, ZoomOut         bool
	RotateLeft, RotateRight bool
	PanUp, PanDown          bool
	PanLeft, PanRight       bool
}

// Any reports whether any key is held.
func (k Keys) Any() bool {
	return k != Keys{}
}

// Controller accumulates view parameters for one window.
type Controller struct {
	width, height int
	p             fractals.Params

	// iterLimit caps Iter when positive.
	iterLimit int
}

// New returns a controller for a width×height window, centred, at the
// initial zoom and one iteration step.
func New(width, height int) *Controller {
	c := &Controller{width: width, height: height}
	c.Reset()
	return c
}

// Reset restores the initial parameters. The iteration limit is kept.
func (c *Controller) Reset() {
	c.p = fractals.Params{
		Scale: InitialScale,
		PanX:  float64(c.width / 2),
		PanY:  float64(c.height / 2),
		Iter:  1,
	}
}

// Params returns the current parameters.
func (c *Controller) Params() fractals.Params {
	return c.p
}

// SetParams replaces the current parameters, applying the same floors and
// limit as the key handlers.
func (c *Controller) SetParams(p fractals.Params) {
	p.Scale = max(MinScale, p.Scale)
	p.Iter = max(1, p.Iter)
	if c.iterLimit > 0 {
		p.Iter = min(p.Iter, c.iterLimit)
	}
	c.p = p
}

// SetIterLimit caps the iteration step, for example at a generator's
// maximum depth. Zero removes the cap.
func (c *Controller) SetIterLimit(n int) {
	c.iterLimit = max(0, n)
	if c.iterLimit > 0 && c.p.Iter > c.iterLimit {
		c.p.Iter = c.iterLimit
	}
}

// Apply advances the continuous transforms by one frame.
func (c *Controller) Apply(k Keys) {
	if k.ZoomIn {
		c.p.Scale += StepZoom
	}
	if k.ZoomOut {
		c.p.Scale = max(MinScale, c.p.Scale-StepZoom)
	}
	if k.RotateLeft {
		c.p.Angle -= StepAngle
	}
	if k.RotateRight {
		c.p.Angle += StepAngle
	}
	if k.PanUp {
		c.p.PanY -= StepPan
	}
	if k.PanDown {
		c.p.PanY += StepPan
	}
	if k.PanLeft {
		c.p.PanX -= StepPan
	}
	if k.PanRight {
		c.p.PanX += StepPan
	}
}

// IterUp increases the iteration step by one, up to the limit.
func (c *Controller) IterUp() {
	if c.iterLimit > 0 && c.p.Iter >= c.iterLimit {
		return
	}
	c.p.Iter++
}

// IterDown decreases the iteration step by one, never below 1.
func (c *Controller) IterDown() {
	c.p.Iter = max(1, c.p.Iter-1)
}
