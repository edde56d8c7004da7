package escape

import "github.com/marben/fractals"

// Option configures a Field during creation.
//
// Example:
//
//	f, err := escape.New(escape.KindMandelbrot, 800, 600,
//		escape.WithRegion(fractals.SeahorseValley),
//		escape.WithMaxIter(80))
type Option func(*Config)

// WithConfig replaces the whole configuration. Options after it still apply.
func WithConfig(cfg Config) Option {
	return func(c *Config) {
		*c = cfg
	}
}

// WithRegion sets the initial plane bounds.
func WithRegion(r fractals.Region) Option {
	return func(c *Config) {
		c.Region = r
	}
}

// WithC sets the initial Julia parameter. It stays in effect until the
// rotation selects a different preset.
func WithC(z complex128) Option {
	return func(c *Config) {
		c.C = z
	}
}

// WithMaxIter sets the initial iteration cap.
func WithMaxIter(n int) Option {
	return func(c *Config) {
		c.MaxIter = n
	}
}

// WithRenderScale sets the internal resolution relative to the output,
// in (0, 1].
func WithRenderScale(s float64) Option {
	return func(c *Config) {
		c.RenderScale = s
	}
}
