package fractals

import (
	"math"

	"github.com/gogpu/gg"
)

// Point is a position in screen space. Y grows downwards.
type Point = gg.Point

// Segment is a line from Start to End.
type Segment struct {
	Start, End Point
}

// Length of the segment.
func (s Segment) Length() float64 {
	return s.Start.Distance(s.End)
}

// Polygon is a closed sequence of at least three vertices.
type Polygon []Point

// Area returns the unsigned area of the polygon (shoelace formula).
func (pg Polygon) Area() float64 {
	var a float64
	for i := range pg {
		a += pg[i].Cross(pg[(i+1)%len(pg)])
	}
	return math.Abs(a) / 2
}
