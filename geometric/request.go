package geometric

import (
	"errors"
	"fmt"
	"math"

	"github.com/marben/fractals"
)

var ErrInvalidRequest = errors.New("geometric: invalid request")

// Request fully describes a geometric fractal. The zero values of
// BranchAngle and Decay select DefaultBranchAngle and DefaultDecay.
type Request struct {
	Origin      fractals.Point // centre, or the root of a tree
	Length      float64        // circumradius, or the trunk length
	Angle       float64        // radians
	Depth       int
	BranchAngle float64 // degrees, trees only
	Decay       float64 // trees only
}

// Validate reports configuration errors: a depth outside [0, limit],
// non-finite coordinates, a negative length or a decay outside [0, 1).
// A zero length is valid and produces degenerate output.
func (r Request) Validate(limit int) error {
	if err := CheckDepth(r.Depth, limit); err != nil {
		return err
	}
	for _, v := range []float64{r.Origin.X, r.Origin.Y, r.Length, r.Angle, r.BranchAngle, r.Decay} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: non-finite value %v", ErrInvalidRequest, v)
		}
	}
	if r.Length < 0 {
		return fmt.Errorf("%w: negative length %g", ErrInvalidRequest, r.Length)
	}
	if r.Decay < 0 || r.Decay >= 1 {
		return fmt.Errorf("%w: decay %g outside [0, 1)", ErrInvalidRequest, r.Decay)
	}
	return nil
}

// Snowflake generates the Koch snowflake described by r.
func (r Request) Snowflake() []fractals.Segment {
	return Snowflake(r.Origin, r.Length, r.Angle, r.Depth)
}

// Sierpinski generates the Sierpinski triangle described by r.
func (r Request) Sierpinski() []fractals.Polygon {
	return SierpinskiTriangle(r.Origin, r.Length, r.Angle, r.Depth)
}

// Tree generates the recursive tree described by r. The trunk points along
// r.Angle, converted to the degree convention of Branches.
func (r Request) Tree() []fractals.Segment {
	ba := r.BranchAngle
	if ba == 0 {
		ba = DefaultBranchAngle
	}
	decay := r.Decay
	if decay == 0 {
		decay = DefaultDecay
	}
	return Branches(r.Origin, r.Angle*180/math.Pi, r.Length, r.Depth, ba, decay)
}
