package scene

import (
	"fmt"
	"image"
	"math"

	"github.com/gogpu/gg"
	"github.com/marben/fractals"
	"github.com/marben/fractals/geometric"
)

// A tree at Iter n has n+2 levels so that the first step already forks.
const treeDepthOffset = 2

// request maps view parameters onto a generator request. Snowflake and
// triangle are centred on the pan position with Scale as circumradius. The
// tree grows upwards from half a trunk below the pan position.
func (s *Scene) request(p fractals.Params) (geometric.Request, error) {
	if err := geometric.CheckDepth(p.Iter, s.IterLimit()); err != nil {
		return geometric.Request{}, fmt.Errorf("scene %v: %w", s.mode, err)
	}
	req := geometric.Request{
		Origin: gg.Pt(p.PanX, p.PanY),
		Length: p.Scale,
		Angle:  p.Angle,
		Depth:  p.Iter,
	}
	limit := geometric.MaxKochDepth
	switch s.mode {
	case fractals.Sierpinski:
		limit = geometric.MaxSierpinskiDepth
	case fractals.Tree:
		limit = geometric.MaxTreeDepth
		req.Origin.Y += p.Scale / 2
		req.Angle += math.Pi / 2
		req.Depth += treeDepthOffset
	}
	if err := req.Validate(limit); err != nil {
		return geometric.Request{}, fmt.Errorf("scene %v: %w", s.mode, err)
	}
	return req, nil
}

func (s *Scene) draw(req geometric.Request) (*image.RGBA, error) {
	dc := gg.NewContext(s.width, s.height)
	defer dc.Close()

	dc.ClearWithColor(gg.Black)
	dc.SetLineWidth(s.opts.lineWidth)

	switch s.mode {
	case fractals.Koch:
		dc.SetRGB(1, 1, 1)
		strokeSegments(dc, req.Snowflake())
	case fractals.Sierpinski:
		dc.SetRGB(1, 1, 1)
		for _, poly := range req.Sierpinski() {
			tracePolygon(dc, poly)
		}
	case fractals.Tree:
		dc.SetRGB(0, 1, 0)
		strokeSegments(dc, req.Tree())
	}
	if err := dc.Stroke(); err != nil {
		return nil, err
	}
	return toRGBA(dc.Image()), nil
}

// strokeSegments adds every segment to the current path. Consecutive
// segments sharing an endpoint extend the same subpath.
func strokeSegments(dc *gg.Context, segs []fractals.Segment) {
	var last fractals.Point
	for i, sg := range segs {
		if i == 0 || sg.Start != last {
			dc.MoveTo(sg.Start.X, sg.Start.Y)
		}
		dc.LineTo(sg.End.X, sg.End.Y)
		last = sg.End
	}
}

func tracePolygon(dc *gg.Context, poly fractals.Polygon) {
	if len(poly) < 3 {
		return
	}
	dc.MoveTo(poly[0].X, poly[0].Y)
	for _, pt := range poly[1:] {
		dc.LineTo(pt.X, pt.Y)
	}
	dc.ClosePath()
}
