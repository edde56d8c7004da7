// Package scene renders one fractal mode into images.
//
// A Scene turns view parameters into a generator request for the geometric
// modes and draws the result with gg, or delegates to an escape.Field for
// the escape-time modes.
package scene

import (
	"fmt"
	"image"

	"github.com/marben/fractals"
	"github.com/marben/fractals/escape"
	"github.com/marben/fractals/geometric"
	"golang.org/x/image/draw"
)

// Scene renders a single mode at a fixed size.
type Scene struct {
	mode          fractals.Mode
	width, height int
	opts          options

	field *escape.Field // escape-time modes only
}

var _ fractals.Renderer = (*Scene)(nil)

// New creates a scene for mode producing width×height images.
func New(mode fractals.Mode, width, height int, opts ...Option) (*Scene, error) {
	if !mode.Valid() {
		return nil, fmt.Errorf("scene: unknown mode %d", int(mode))
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("scene: %dx%d: %w", width, height, fractals.ErrInvalidSize)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	s := &Scene{mode: mode, width: width, height: height, opts: o}
	if mode.Escape() {
		kind := escape.KindMandelbrot
		if mode == fractals.Julia {
			kind = escape.KindJulia
		}
		f, err := escape.New(kind, width, height, o.escape...)
		if err != nil {
			return nil, fmt.Errorf("scene %v: %w", mode, err)
		}
		s.field = f
	}
	return s, nil
}

// Mode returns the mode drawn by the scene.
func (s *Scene) Mode() fractals.Mode { return s.mode }

// Size returns the output size.
func (s *Scene) Size() (w, h int) { return s.width, s.height }

// Field returns the escape-time field, or nil for geometric modes.
func (s *Scene) Field() *escape.Field { return s.field }

// ShowInfo reports whether the info overlay is drawn.
func (s *Scene) ShowInfo() bool { return s.opts.info }

// SetShowInfo turns the info overlay on or off.
func (s *Scene) SetShowInfo(on bool) { s.opts.info = on }

// IterLimit returns the largest Params.Iter the scene accepts, or 0 when
// any value is accepted.
func (s *Scene) IterLimit() int {
	return IterLimit(s.mode)
}

// IterLimit returns the largest Params.Iter accepted for mode, or 0 when
// any value is accepted. Escape-time modes cap iterations themselves.
func IterLimit(mode fractals.Mode) int {
	switch mode {
	case fractals.Koch:
		return geometric.MaxKochDepth
	case fractals.Sierpinski:
		return geometric.MaxSierpinskiDepth
	case fractals.Tree:
		return geometric.MaxTreeDepth - treeDepthOffset
	}
	return 0
}

// Render draws the scene for p. Geometric modes return a fresh image on
// every call. Escape-time modes return the field's cached surface unless
// the overlay is on, in which case the overlay is drawn on a copy.
func (s *Scene) Render(p fractals.Params) (*image.RGBA, error) {
	if s.field != nil {
		img, err := s.field.Render(p)
		if err != nil {
			return nil, err
		}
		if s.opts.info {
			img = clone(img)
			drawInfo(img, s.mode.Title(), s.field.Info(), fmt.Sprintf("iterations %d", s.field.Viewport().MaxIter))
		}
		return img, nil
	}

	req, err := s.request(p)
	if err != nil {
		return nil, err
	}
	img, err := s.draw(req)
	if err != nil {
		return nil, fmt.Errorf("scene %v: %w", s.mode, err)
	}
	if s.opts.info {
		drawInfo(img, s.mode.Title(),
			fmt.Sprintf("depth %d  scale %.1f  angle %.2f", req.Depth, req.Length, p.Angle),
			fmt.Sprintf("pan %.0f, %.0f", p.PanX, p.PanY))
	}
	return img, nil
}

// Preview returns the escape-time field at its initial region and
// iteration cap, before any view parameters have been applied. Geometric
// scenes have no initial view and return an error.
func (s *Scene) Preview() (*image.RGBA, error) {
	if s.field == nil {
		return nil, fmt.Errorf("scene %v: no initial region", s.mode)
	}
	img := s.field.Surface()
	if s.opts.info {
		img = clone(img)
		drawInfo(img, s.mode.Title(), s.field.Info(), fmt.Sprintf("iterations %d", s.field.Viewport().MaxIter))
	}
	return img, nil
}

func clone(src *image.RGBA) *image.RGBA {
	dst := image.NewRGBA(src.Bounds())
	copy(dst.Pix, src.Pix)
	return dst
}

// toRGBA returns img as *image.RGBA, converting only when needed.
func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	rgba := image.NewRGBA(img.Bounds())
	draw.Draw(rgba, rgba.Bounds(), img, img.Bounds().Min, draw.Src)
	return rgba
}
