package geometric

import "github.com/marben/fractals"

type triFrame struct {
	v     [3]fractals.Point
	depth int
}

// Subdivide splits the triangle v depth times, keeping the three corner
// triangles and dropping the central one. It returns 3^depth triangles,
// corner 0 before corner 1 before corner 2 at every level.
func Subdivide(v [3]fractals.Point, depth int) []fractals.Polygon {
	depth = clampDepth(depth, MaxSierpinskiDepth)
	out := make([]fractals.Polygon, 0, pow(3, depth))

	stack := []triFrame{{v, depth}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if f.depth == 0 {
			out = append(out, fractals.Polygon{f.v[0], f.v[1], f.v[2]})
			continue
		}

		m01 := f.v[0].Lerp(f.v[1], 0.5)
		m12 := f.v[1].Lerp(f.v[2], 0.5)
		m20 := f.v[2].Lerp(f.v[0], 0.5)
		d := f.depth - 1
		stack = append(stack,
			triFrame{[3]fractals.Point{m20, m12, f.v[2]}, d},
			triFrame{[3]fractals.Point{m01, f.v[1], m12}, d},
			triFrame{[3]fractals.Point{f.v[0], m01, m20}, d},
		)
	}
	return out
}

// SierpinskiTriangle returns the outer triangle followed by its
// subdivision, 1 + 3^depth polygons in total.
func SierpinskiTriangle(center fractals.Point, radius, startAngle float64, depth int) []fractals.Polygon {
	v := Triangle(center, radius, startAngle)
	inner := Subdivide(v, depth)
	out := make([]fractals.Polygon, 0, 1+len(inner))
	out = append(out, fractals.Polygon{v[0], v[1], v[2]})
	return append(out, inner...)
}
