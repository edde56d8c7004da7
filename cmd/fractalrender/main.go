// fractalrender renders a single fractal frame and saves it as a PNG file.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"log"
	"log/slog"
	"os"

	"github.com/marben/fractals"
	"github.com/marben/fractals/escape"
	"github.com/marben/fractals/scene"
	"github.com/marben/fractals/screenshot"
)

type config struct {
	mode          fractals.Mode
	width, height int
	params        fractals.Params
	region        string
	info          bool
	out           string
	dir           string
	verbose       bool
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Fatalf("FATAL: %v", err)
	}
}

func parseFlags(args []string) (config, error) {
	var (
		cfg  config
		mode string
	)
	fs := flag.NewFlagSet("fractalrender", flag.ContinueOnError)
	fs.StringVar(&mode, "mode", "1", "fractal: 1-5 or koch, sierpinski, tree, mandelbrot, julia")
	fs.IntVar(&cfg.width, "width", 800, "image width")
	fs.IntVar(&cfg.height, "height", 600, "image height")
	fs.Float64Var(&cfg.params.Scale, "scale", 100, "zoom")
	fs.Float64Var(&cfg.params.Angle, "angle", 0, "rotation in radians")
	fs.Float64Var(&cfg.params.PanX, "panx", 0, "horizontal pan in pixels (default: centre)")
	fs.Float64Var(&cfg.params.PanY, "pany", 0, "vertical pan in pixels (default: centre)")
	fs.IntVar(&cfg.params.Iter, "iter", 1, "recursion depth or iteration step")
	fs.StringVar(&cfg.region, "region", "", "start an escape-time fractal at a named region, ignoring the view flags")
	fs.BoolVar(&cfg.info, "info", false, "draw the info overlay")
	fs.StringVar(&cfg.out, "out", "", "output file (default: timestamped file in -dir)")
	fs.StringVar(&cfg.dir, "dir", screenshot.DefaultDir, "output directory when -out is not set")
	fs.BoolVar(&cfg.verbose, "v", false, "log library debug output")
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}

	cfg.mode = fractals.ParseMode(mode)

	// unset pans centre the fractal, explicit ones are kept even if negative
	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if !set["panx"] {
		cfg.params.PanX = float64(cfg.width / 2)
	}
	if !set["pany"] {
		cfg.params.PanY = float64(cfg.height / 2)
	}
	if cfg.region != "" {
		if !cfg.mode.Escape() {
			return config{}, fmt.Errorf("-region needs an escape-time mode, got %v", cfg.mode)
		}
		if _, ok := fractals.Landmarks[cfg.region]; !ok {
			return config{}, fmt.Errorf("unknown region %q", cfg.region)
		}
	}
	return cfg, nil
}

func run(args []string) error {
	cfg, err := parseFlags(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if cfg.verbose {
		fractals.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	img, err := render(cfg)
	if err != nil {
		return err
	}

	if cfg.out != "" {
		if err := screenshot.WriteFile(cfg.out, img); err != nil {
			return fmt.Errorf("failed to save image: %w", err)
		}
		log.Printf("%v saved to %q", cfg.mode, cfg.out)
		return nil
	}
	path, err := screenshot.New(cfg.dir).Save(cfg.mode.String(), img)
	if err != nil {
		return fmt.Errorf("failed to save image: %w", err)
	}
	log.Printf("%v saved to %q", cfg.mode, path)
	return nil
}

func render(cfg config) (*image.RGBA, error) {
	opts := []scene.Option{scene.WithInfo(cfg.info)}
	if cfg.region != "" {
		ec := escape.ConfigFor(kindOf(cfg.mode))
		opts = append(opts, scene.WithEscapeOptions(
			escape.WithRegion(fractals.Landmarks[cfg.region]),
			escape.WithMaxIter(ec.IterLimit(cfg.params.Iter)),
		))
	}

	sc, err := scene.New(cfg.mode, cfg.width, cfg.height, opts...)
	if err != nil {
		return nil, err
	}
	if cfg.region != "" {
		return sc.Preview()
	}
	return sc.Render(cfg.params)
}

func kindOf(m fractals.Mode) escape.Kind {
	if m == fractals.Julia {
		return escape.KindJulia
	}
	return escape.KindMandelbrot
}
