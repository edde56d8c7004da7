package scene

import "github.com/marben/fractals/escape"

// Option configures a Scene.
type Option func(*options)

type options struct {
	lineWidth float64
	info      bool
	escape    []escape.Option
}

func defaultOptions() options {
	return options{lineWidth: 1}
}

// WithLineWidth sets the stroke width of geometric fractals, in pixels.
func WithLineWidth(w float64) Option {
	return func(o *options) {
		if w > 0 {
			o.lineWidth = w
		}
	}
}

// WithInfo starts the scene with the info overlay shown.
func WithInfo(on bool) Option {
	return func(o *options) {
		o.info = on
	}
}

// WithEscapeOptions passes options through to the escape-time field of
// Mandelbrot and Julia scenes. Geometric scenes ignore them.
func WithEscapeOptions(opts ...escape.Option) Option {
	return func(o *options) {
		o.escape = append(o.escape, opts...)
	}
}
