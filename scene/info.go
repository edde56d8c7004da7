package scene

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	infoMargin     = 8
	infoLineHeight = 16
)

var (
	infoBackground = image.NewUniform(color.RGBA{0, 0, 0, 160})
	infoText       = image.NewUniform(color.RGBA{255, 255, 200, 255})
)

// drawInfo writes lines into the top left corner of img over a translucent
// backing box.
func drawInfo(img *image.RGBA, lines ...string) {
	face := basicfont.Face7x13
	d := &font.Drawer{Dst: img, Src: infoText, Face: face}

	w := 0
	for _, l := range lines {
		w = max(w, d.MeasureString(l).Ceil())
	}
	box := image.Rect(0, 0, w+2*infoMargin, len(lines)*infoLineHeight+infoMargin)
	draw.Draw(img, box.Intersect(img.Bounds()), infoBackground, image.Point{}, draw.Over)

	for i, l := range lines {
		d.Dot = fixed.P(infoMargin, infoMargin+face.Ascent+i*infoLineHeight)
		d.DrawString(l)
	}
}
