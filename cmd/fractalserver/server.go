// fractalserver serves an interactive fractal viewer to browsers. Frames are
// rendered on the server and streamed over a websocket as PNG images.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/marben/fractals"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("run: %+v", err)
	}
}

func run() error {
	addr := flag.String("addr", ":8080", "http listen address")
	width := flag.Int("width", 800, "frame width")
	height := flag.Int("height", 600, "frame height")
	verbose := flag.Bool("v", false, "log library debug output")
	flag.Parse()

	if *width <= 0 || *height <= 0 {
		return fmt.Errorf("frame %dx%d: %w", *width, *height, fractals.ErrInvalidSize)
	}
	if *verbose {
		fractals.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	websocketListener, httpServer := webServer(context.Background(), *addr)
	defer websocketListener.Close()

	go func() {
		if err := serveSessions(websocketListener, *width, *height); err != nil {
			log.Fatalf("serveSessions: %v", err)
		}
	}()

	log.Printf("listening on http://localhost%s, websocket endpoint %s", *addr, websocketListener.Addr())
	return httpServer.ListenAndServe()
}
