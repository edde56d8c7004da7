package escape

import "image/color"

// Palette maps an escape count to a colour. Entry MaxIter is black and
// marks points inside the set.
type Palette []color.RGBA

var black = color.RGBA{A: 0xff}

// BuildPalette generates the palette of the field's kind for its current
// iteration cap.
func (f *Field) BuildPalette() Palette {
	if f.cfg.Kind == KindJulia {
		return JuliaPalette(f.vp.MaxIter)
	}
	return MandelbrotPalette(f.vp.MaxIter)
}

// MandelbrotPalette runs blue → purple → orange over three bands split at
// t = 0.33 and t = 0.66, followed by the black in-set entry.
func MandelbrotPalette(maxIter int) Palette {
	return buildPalette(maxIter, func(t float64) (r, g, b float64) {
		switch {
		case t < 0.33:
			q := t / 0.33
			return 50 * q, 100 * q, 255 * (1 - q*0.3)
		case t < 0.66:
			q := (t - 0.33) / 0.33
			return 50 + 150*q, 100 + 100*q, 200 - 100*q
		default:
			q := (t - 0.66) / 0.34
			return 200 + 55*q, 200 - 50*q, 100 * (1 - q)
		}
	})
}

// JuliaPalette runs cool blue → purple → warm over four bands split at
// t = 0.25, 0.5 and 0.75, followed by the black in-set entry.
func JuliaPalette(maxIter int) Palette {
	return buildPalette(maxIter, func(t float64) (r, g, b float64) {
		switch {
		case t < 0.25:
			q := t / 0.25
			return 20 + 80*q, 50 + 150*q, 100 + 155*q
		case t < 0.5:
			q := (t - 0.25) / 0.25
			return 100 + 100*q, 200 + 50*q, 255 - 50*q
		case t < 0.75:
			q := (t - 0.5) / 0.25
			return 200 + 50*q, 250 - 100*q, 205 - 80*q
		default:
			q := (t - 0.75) / 0.25
			return 250 + 5*q, 150 + 80*q, 125 + 100*q
		}
	})
}

func buildPalette(maxIter int, band func(t float64) (r, g, b float64)) Palette {
	maxIter = max(maxIter, 1)
	p := make(Palette, maxIter+1)
	for i := range maxIter {
		r, g, b := band(float64(i) / float64(maxIter))
		p[i] = color.RGBA{R: channel(r), G: channel(g), B: channel(b), A: 0xff}
	}
	p[maxIter] = black
	return p
}

// channel truncates like an integer conversion and clamps to a byte.
func channel(v float64) uint8 {
	return uint8(max(0, min(255, v)))
}
