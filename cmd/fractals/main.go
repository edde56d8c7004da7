// fractals is an interactive desktop viewer for the Koch snowflake, the
// Sierpinski triangle, a recursive tree and the Mandelbrot and Julia sets.
//
// Usage:
//
//	fractals [flags] [mode]
//
// mode is 1-5 or a fractal name and opens the viewer directly, skipping
// the menu.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/marben/fractals"
	"github.com/marben/fractals/screenshot"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("run: %+v", err)
	}
}

func run() error {
	width := flag.Int("width", 800, "window width")
	height := flag.Int("height", 600, "window height")
	dir := flag.String("dir", screenshot.DefaultDir, "screenshot directory")
	verbose := flag.Bool("v", false, "log library debug output")
	flag.Parse()

	if *width <= 0 || *height <= 0 {
		return fmt.Errorf("window %dx%d: %w", *width, *height, fractals.ErrInvalidSize)
	}
	if *verbose {
		fractals.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	g := newGame(*width, *height, screenshot.New(*dir), ebitenInput{})
	if flag.NArg() > 0 {
		if err := g.open(fractals.ParseMode(flag.Arg(0))); err != nil {
			return err
		}
	}

	ebiten.SetWindowSize(*width, *height)
	ebiten.SetWindowTitle("Fractals")
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
