package fractals

import "errors"

// ErrInvalidSize is returned when a surface is requested with a
// non-positive width or height.
var ErrInvalidSize = errors.New("fractals: width and height must be positive")
