// Package escape computes escape-time fractals (the Mandelbrot and Julia
// sets) into colour images.
//
// A Field owns one complex-plane viewport. Every frame the caller passes the
// pixel-space view parameters to Render; the Field maps them to plane
// bounds, rounds them into a CacheKey, and only when the key changes does it
// recompute the iteration grid at a reduced resolution, colour it through a
// generated palette and upscale it to the requested size. Unchanged frames
// return the cached image without any work.
//
// A Field is not safe for concurrent use. Each viewer owns its own.
package escape
