package escape

import (
	"errors"
	"fmt"
	"image"
	"math"
	"time"

	"github.com/gogpu/gg"
	"github.com/marben/fractals"
	"golang.org/x/image/draw"
)

var (
	ErrInvalidRenderScale = errors.New("escape: render scale must be in (0, 1]")
	ErrInvalidMaxIter     = errors.New("escape: max iterations must be positive")
	ErrEmptyRegion        = errors.New("escape: region has no area")
)

// Field is an escape-time fractal bound to one output size.
type Field struct {
	cfg        Config
	vp         Viewport
	effW, effH int
	cIndex     int

	key    CacheKey
	hasKey bool
	state  State

	surface    *image.RGBA
	recomputes int

	// scratch reused by ComputeField
	field          []int
	zr, zi, cr, ci []float64
	active         []int32
}

var _ fractals.Renderer = (*Field)(nil)

// New creates a field of the given kind producing width×height images.
func New(kind Kind, width, height int, opts ...Option) (*Field, error) {
	cfg := ConfigFor(kind)
	for _, opt := range opts {
		opt(&cfg)
	}

	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("escape: %dx%d: %w", width, height, fractals.ErrInvalidSize)
	}
	if !(cfg.RenderScale > 0 && cfg.RenderScale <= 1) {
		return nil, fmt.Errorf("%w: %g", ErrInvalidRenderScale, cfg.RenderScale)
	}
	if cfg.MaxIter <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidMaxIter, cfg.MaxIter)
	}
	if cfg.Region.Empty() {
		return nil, fmt.Errorf("%w: %+v", ErrEmptyRegion, cfg.Region)
	}

	r := cfg.Region
	return &Field{
		cfg: cfg,
		vp: Viewport{
			Width:   width,
			Height:  height,
			Xmin:    r.Xmin,
			Xmax:    r.Xmax,
			Ymin:    r.Ymin,
			Ymax:    r.Ymax,
			MaxIter: cfg.MaxIter,
			C:       cfg.C,
		},
		effW: max(1, int(float64(width)*cfg.RenderScale)),
		effH: max(1, int(float64(height)*cfg.RenderScale)),
	}, nil
}

// Kind of the field.
func (f *Field) Kind() Kind { return f.cfg.Kind }

// Viewport returns a copy of the current viewport.
func (f *Field) Viewport() Viewport { return f.vp }

// Resolution returns the size of the internal iteration grid.
func (f *Field) Resolution() (w, h int) { return f.effW, f.effH }

// State reports whether the cached surface is current.
func (f *Field) State() State { return f.state }

// Recomputes returns how many times the field has been computed.
func (f *Field) Recomputes() int { return f.recomputes }

// CIndex returns the index of the active Julia preset.
func (f *Field) CIndex() int { return f.cIndex }

// Key returns the cache key of the last accepted parameters.
func (f *Field) Key() (CacheKey, bool) { return f.key, f.hasKey }

// Info describes the current parameters in one line.
func (f *Field) Info() string {
	if f.cfg.Kind == KindJulia {
		return fmt.Sprintf("c = %.3f + %.3fi", real(f.vp.C), imag(f.vp.C))
	}
	return fmt.Sprintf("x = [%.4f, %.4f]  y = [%.4f, %.4f]", f.vp.Xmin, f.vp.Xmax, f.vp.Ymin, f.vp.Ymax)
}

// PresetIndex maps a rotation onto one of n presets. The full turn is
// split into n equal steps, so the mapping is a step function of
// rotation mod 2π.
func PresetIndex(rotation float64, n int) int {
	if n <= 0 {
		return 0
	}
	a := math.Mod(rotation, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return min(int(a/(2*math.Pi)*float64(n)), n-1)
}

// UpdateParameters maps pixel-space view parameters onto the complex plane.
// It reports whether the rounded viewport changed; when it did not, the
// field is left untouched.
func (f *Field) UpdateParameters(zoomRaw, rotation, panX, panY float64, iterRaw int) bool {
	cfg := &f.cfg
	w, h := float64(f.vp.Width), float64(f.vp.Height)

	zoom := math.Max(MinZoom, zoomRaw/cfg.ZoomDivisor)
	cx := (panX - w/2) / (w / cfg.AspectDivisor) / zoom
	cy := (panY - h/2) / (h / cfg.AspectDivisor) / zoom

	if math.Abs(rotation) > cfg.RotationDeadzone {
		c := gg.Pt(cx, cy).Rotate(rotation)
		cx, cy = c.X, c.Y
	}

	span := cfg.PlaneSpan / zoom
	r := fractals.Region{
		Xmin: cx - span/2,
		Xmax: cx + span/2,
		Ymin: cy - span/2,
		Ymax: cy + span/2,
	}
	maxIter := cfg.IterLimit(iterRaw)

	cIndex := 0
	if cfg.Kind == KindJulia {
		cIndex = PresetIndex(rotation, len(cfg.Presets))
	}

	key := newCacheKey(r, maxIter, cIndex, cfg.KeyDecimals)
	if f.hasKey && key == f.key {
		return false
	}

	f.vp.Xmin, f.vp.Xmax = r.Xmin, r.Xmax
	f.vp.Ymin, f.vp.Ymax = r.Ymin, r.Ymax
	f.vp.MaxIter = maxIter
	if cfg.Kind == KindJulia && cIndex != f.cIndex {
		f.cIndex = cIndex
		f.vp.C = cfg.Presets[cIndex]
	}
	f.key = key
	f.hasKey = true
	f.state = Stale
	return true
}

// Render updates the parameters and returns the surface, recomputing it
// only if the viewport changed. The returned image belongs to the Field and
// is replaced, never modified, by later recomputes.
func (f *Field) Render(p fractals.Params) (*image.RGBA, error) {
	f.UpdateParameters(p.Scale, p.Angle, p.PanX, p.PanY, p.Iter)
	return f.Surface(), nil
}

// Surface returns the image of the current viewport, computing it first if
// the field is stale.
func (f *Field) Surface() *image.RGBA {
	if f.state != Cached || f.surface == nil {
		f.recompute()
	}
	return f.surface
}

func (f *Field) recompute() {
	start := time.Now()

	field := f.ComputeField()
	pal := f.BuildPalette()

	small := image.NewRGBA(image.Rect(0, 0, f.effW, f.effH))
	for i, n := range field {
		c := pal[n]
		j := i * 4
		small.Pix[j+0] = c.R
		small.Pix[j+1] = c.G
		small.Pix[j+2] = c.B
		small.Pix[j+3] = c.A
	}

	surface := image.NewRGBA(image.Rect(0, 0, f.vp.Width, f.vp.Height))
	draw.BiLinear.Scale(surface, surface.Bounds(), small, small.Bounds(), draw.Src, nil)

	f.surface = surface
	f.state = Cached
	f.recomputes++

	fractals.Logger().Debug("escape: field recomputed",
		"kind", f.cfg.Kind,
		"grid", fmt.Sprintf("%dx%d", f.effW, f.effH),
		"max_iter", f.vp.MaxIter,
		"xmin", f.vp.Xmin, "xmax", f.vp.Xmax,
		"ymin", f.vp.Ymin, "ymax", f.vp.Ymax,
		"took", time.Since(start))
}
