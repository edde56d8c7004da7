package fractals

import (
	"image"
)

// Renderer produces one frame for the given view parameters.
// The returned image may be reused by the Renderer on the next call,
// callers that keep it across frames must copy it.
type Renderer interface {
	Render(p Params) (*image.RGBA, error)
}

// ImgSaver persists a displayed frame.
type ImgSaver interface {
	Save(name string, img image.Image) (string, error)
}
