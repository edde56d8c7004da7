package geometric

import (
	"math"

	"github.com/gogpu/gg"
	"github.com/marben/fractals"
)

// Tree defaults.
const (
	DefaultBranchAngle = 30.0 // degrees
	DefaultDecay       = 0.7
	MinBranchLength    = 2.0
)

type branchFrame struct {
	origin fractals.Point
	angle  float64 // degrees
	length float64
	depth  int
}

// Branches returns the segments of a binary tree rooted at origin.
//
// angle is in degrees with screen-space "up" at 90: a branch ends at
// origin + length*(cos a, -sin a). Each branch forks into a left child at
// angle-branchAngle and a right child at angle+branchAngle, both scaled by
// decay. Branches shorter than MinBranchLength and depth <= 0 produce
// nothing. Segments come in pre-order: the branch, its left subtree, then
// its right subtree.
func Branches(origin fractals.Point, angle, length float64, depth int, branchAngle, decay float64) []fractals.Segment {
	depth = clampDepth(depth, MaxTreeDepth)
	var out []fractals.Segment

	stack := []branchFrame{{origin, angle, length, depth}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if f.depth <= 0 || f.length < MinBranchLength {
			continue
		}

		rad := f.angle * math.Pi / 180
		end := f.origin.Add(gg.Pt(f.length, 0).Rotate(-rad))
		out = append(out, fractals.Segment{Start: f.origin, End: end})

		l := f.length * decay
		d := f.depth - 1
		stack = append(stack,
			branchFrame{end, f.angle + branchAngle, l, d},
			branchFrame{end, f.angle - branchAngle, l, d},
		)
	}
	return out
}
