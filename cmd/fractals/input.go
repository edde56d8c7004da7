package main

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/marben/fractals/viewport"
)

// input is the part of ebiten's input state the game reads.
type input interface {
	pressed(k ebiten.Key) bool
	justPressed(k ebiten.Key) bool
	// clicked returns the cursor position when the left button was
	// pressed this frame.
	clicked() (image.Point, bool)
}

type ebitenInput struct{}

func (ebitenInput) pressed(k ebiten.Key) bool     { return ebiten.IsKeyPressed(k) }
func (ebitenInput) justPressed(k ebiten.Key) bool { return inpututil.IsKeyJustPressed(k) }

func (ebitenInput) clicked() (image.Point, bool) {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return image.Point{}, false
	}
	x, y := ebiten.CursorPosition()
	return image.Pt(x, y), true
}

// heldKeys maps the held keys onto viewport transforms: arrows zoom and
// rotate, WASD pans.
func heldKeys(in input) viewport.Keys {
	return viewport.Keys{
		ZoomIn:      in.pressed(ebiten.KeyArrowUp),
		ZoomOut:     in.pressed(ebiten.KeyArrowDown),
		RotateLeft:  in.pressed(ebiten.KeyArrowLeft),
		RotateRight: in.pressed(ebiten.KeyArrowRight),
		PanUp:       in.pressed(ebiten.KeyW),
		PanDown:     in.pressed(ebiten.KeyS),
		PanLeft:     in.pressed(ebiten.KeyA),
		PanRight:    in.pressed(ebiten.KeyD),
	}
}

var digitKeys = []ebiten.Key{ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4, ebiten.KeyDigit5}

// digit returns the 1-based index of a digit key pressed this frame, or 0.
func digit(in input) int {
	for i, k := range digitKeys {
		if in.justPressed(k) {
			return i + 1
		}
	}
	return 0
}
