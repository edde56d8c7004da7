package geometric

import (
	"math"

	"github.com/gogpu/gg"
	"github.com/marben/fractals"
)

type kochFrame struct {
	start, end fractals.Point
	depth      int
}

// KochCurve subdivides the segment start→end depth times and returns the
// 4^depth segments of the Koch curve in drawing order.
//
// Each step splits the segment at one and two thirds (p1, p3) and raises
// the peak p2 by turning the middle third p1→p3 by -60° about p1. In
// screen space (Y down) the peak lies to the left of the direction of
// travel, which for a clockwise triangle points outwards.
func KochCurve(start, end fractals.Point, depth int) []fractals.Segment {
	depth = clampDepth(depth, MaxKochDepth)
	out := make([]fractals.Segment, 0, pow(4, depth))
	return appendKoch(out, start, end, depth)
}

func appendKoch(out []fractals.Segment, start, end fractals.Point, depth int) []fractals.Segment {
	stack := []kochFrame{{start, end, depth}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if f.depth == 0 {
			out = append(out, fractals.Segment{Start: f.start, End: f.end})
			continue
		}

		third := f.end.Sub(f.start).Div(3)
		p1 := f.start.Add(third)
		p3 := f.end.Sub(third)
		p2 := p1.Add(third.Rotate(-math.Pi / 3))

		// pushed in reverse so start→p1 is emitted first
		d := f.depth - 1
		stack = append(stack,
			kochFrame{p3, f.end, d},
			kochFrame{p2, p3, d},
			kochFrame{p1, p2, d},
			kochFrame{f.start, p1, d},
		)
	}
	return out
}

// Triangle returns the vertices of the equilateral triangle inscribed in
// the circle of the given radius, starting at startAngle (radians) and
// stepping by 120°.
func Triangle(center fractals.Point, radius, startAngle float64) [3]fractals.Point {
	var v [3]fractals.Point
	for i := range v {
		v[i] = center.Add(gg.Pt(radius, 0).Rotate(startAngle + float64(i)*2*math.Pi/3))
	}
	return v
}

// Snowflake returns the Koch curve run along the edges 0→1, 1→2 and 2→0 of
// the triangle built by Triangle.
func Snowflake(center fractals.Point, radius, startAngle float64, depth int) []fractals.Segment {
	depth = clampDepth(depth, MaxKochDepth)
	v := Triangle(center, radius, startAngle)
	out := make([]fractals.Segment, 0, 3*pow(4, depth))
	out = appendKoch(out, v[0], v[1], depth)
	out = appendKoch(out, v[1], v[2], depth)
	out = appendKoch(out, v[2], v[0], depth)
	return out
}
