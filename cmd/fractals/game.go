package main

import (
	"fmt"
	"image"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/marben/fractals"
	"github.com/marben/fractals/scene"
	"github.com/marben/fractals/viewport"
)

type screen int

const (
	screenMenu screen = iota
	screenViewer
)

const (
	buttonW = 110
	buttonH = 28
	margin  = 12

	menuTop   = 80
	menuEntry = 48
)

var (
	buttonColor  = color.RGBA{40, 70, 140, 255}
	buttonBorder = color.RGBA{120, 180, 255, 255}
	menuBg       = color.RGBA{20, 20, 42, 255}
	menuSelected = color.RGBA{60, 90, 170, 255}
)

// Game implements ebiten.Game. It shows either the menu or a viewer for
// one mode. Every mode keeps its own scene and controller for the life of
// the window.
type Game struct {
	width, height int
	in            input
	saver         fractals.ImgSaver

	screen   screen
	selected int // menu index
	mode     fractals.Mode
	info     bool

	scenes map[fractals.Mode]*scene.Scene
	ctrls  map[fractals.Mode]*viewport.Controller

	frame  *image.RGBA
	canvas *ebiten.Image
	status string
}

func newGame(width, height int, saver fractals.ImgSaver, in input) *Game {
	return &Game{
		width:  width,
		height: height,
		in:     in,
		saver:  saver,
		mode:   fractals.Koch,
		scenes: make(map[fractals.Mode]*scene.Scene),
		ctrls:  make(map[fractals.Mode]*viewport.Controller),
	}
}

// captureButton is the on-screen screenshot button of the viewer.
func (g *Game) captureButton() image.Rectangle {
	return image.Rect(g.width-buttonW-margin, g.height-buttonH-margin, g.width-margin, g.height-margin)
}

// open switches to the viewer for m, creating its scene on first use.
func (g *Game) open(m fractals.Mode) error {
	if _, ok := g.scenes[m]; !ok {
		sc, err := scene.New(m, g.width, g.height)
		if err != nil {
			return err
		}
		ctrl := viewport.New(g.width, g.height)
		ctrl.SetIterLimit(sc.IterLimit())
		g.scenes[m] = sc
		g.ctrls[m] = ctrl
	}
	g.mode = m
	g.selected = int(m) - 1
	g.screen = screenViewer
	g.status = ""
	ebiten.SetWindowTitle(m.Title())
	return nil
}

func (g *Game) Update() error {
	switch g.screen {
	case screenMenu:
		return g.updateMenu()
	default:
		return g.updateViewer()
	}
}

func (g *Game) updateMenu() error {
	in := g.in
	n := len(fractals.Modes)
	switch {
	case in.justPressed(ebiten.KeyEscape):
		return ebiten.Termination
	case in.justPressed(ebiten.KeyArrowUp):
		g.selected = (g.selected + n - 1) % n
	case in.justPressed(ebiten.KeyArrowDown):
		g.selected = (g.selected + 1) % n
	case in.justPressed(ebiten.KeyEnter):
		return g.open(fractals.Modes[g.selected])
	}
	if d := digit(in); d > 0 {
		return g.open(fractals.Mode(d))
	}
	if pt, ok := in.clicked(); ok {
		for i := range fractals.Modes {
			if pt.In(menuEntryRect(i, g.width)) {
				return g.open(fractals.Modes[i])
			}
		}
	}
	return nil
}

func menuEntryRect(i, width int) image.Rectangle {
	y := menuTop + i*menuEntry
	return image.Rect(margin*4, y, width-margin*4, y+menuEntry-8)
}

func (g *Game) updateViewer() error {
	in := g.in
	if in.justPressed(ebiten.KeyEscape) {
		g.screen = screenMenu
		g.frame = nil
		ebiten.SetWindowTitle("Fractals")
		return nil
	}
	if d := digit(in); d > 0 && fractals.Mode(d) != g.mode {
		if err := g.open(fractals.Mode(d)); err != nil {
			return err
		}
	}

	ctrl := g.ctrls[g.mode]
	if in.justPressed(ebiten.KeyE) {
		ctrl.IterUp()
	}
	if in.justPressed(ebiten.KeyQ) {
		ctrl.IterDown()
	}
	if in.justPressed(ebiten.KeyR) {
		ctrl.Reset()
	}
	if in.justPressed(ebiten.KeyI) {
		g.info = !g.info
	}
	ctrl.Apply(heldKeys(in))

	sc := g.scenes[g.mode]
	sc.SetShowInfo(g.info)
	frame, err := sc.Render(ctrl.Params())
	if err != nil {
		return fmt.Errorf("render %v: %w", g.mode, err)
	}
	g.frame = frame

	capture := in.justPressed(ebiten.KeyP)
	if pt, ok := in.clicked(); ok && pt.In(g.captureButton()) {
		capture = true
	}
	if capture {
		g.capture()
	}
	return nil
}

// capture saves the current frame. Failures are reported on screen and
// never stop the viewer.
func (g *Game) capture() {
	path, err := g.saver.Save(g.mode.String(), g.frame)
	if err != nil {
		log.Printf("screenshot: %v", err)
		g.status = "screenshot failed"
		return
	}
	log.Printf("screenshot saved to %s", path)
	g.status = "saved " + path
}

func (g *Game) Draw(dst *ebiten.Image) {
	switch g.screen {
	case screenMenu:
		g.drawMenu(dst)
	default:
		g.drawViewer(dst)
	}
}

func (g *Game) drawMenu(dst *ebiten.Image) {
	dst.Fill(menuBg)
	ebitenutil.DebugPrintAt(dst, "FRACTALS", margin*4, margin*3)
	ebitenutil.DebugPrintAt(dst, "Up/Down or 1-5 to choose, Enter to open, Esc to quit", margin*4, margin*3+16)

	for i, m := range fractals.Modes {
		r := menuEntryRect(i, g.width)
		if i == g.selected {
			vector.DrawFilledRect(dst, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), menuSelected, false)
		}
		vector.StrokeRect(dst, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), 1, buttonBorder, false)
		ebitenutil.DebugPrintAt(dst, fmt.Sprintf("%d. %s", int(m), m.Title()), r.Min.X+margin, r.Min.Y+4)
		ebitenutil.DebugPrintAt(dst, m.Description(), r.Min.X+margin, r.Min.Y+20)
	}
}

func (g *Game) drawViewer(dst *ebiten.Image) {
	if g.frame == nil {
		return
	}
	if g.canvas == nil {
		g.canvas = ebiten.NewImage(g.width, g.height)
	}
	g.canvas.WritePixels(g.frame.Pix)
	dst.DrawImage(g.canvas, nil)

	b := g.captureButton()
	vector.DrawFilledRect(dst, float32(b.Min.X), float32(b.Min.Y), float32(b.Dx()), float32(b.Dy()), buttonColor, false)
	vector.StrokeRect(dst, float32(b.Min.X), float32(b.Min.Y), float32(b.Dx()), float32(b.Dy()), 1, buttonBorder, false)
	ebitenutil.DebugPrintAt(dst, "Screenshot", b.Min.X+20, b.Min.Y+6)

	help := "arrows: zoom/rotate  WASD: pan  Q/E: iterations  I: info  P: screenshot  Esc: menu"
	if g.status != "" {
		help = g.status
	}
	ebitenutil.DebugPrintAt(dst, help, margin, g.height-margin-16)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}
