package geometric

import (
	"errors"
	"fmt"

	"github.com/marben/fractals"
)

// Depth limits. Output size grows as 4^d, 3^d and 2^d respectively.
const (
	MaxKochDepth       = 8  // 3 * 4^8 = 196608 segments for a snowflake
	MaxSierpinskiDepth = 10 // 3^10 = 59049 triangles
	MaxTreeDepth       = 18 // at most 2^18 - 1 branches
)

var (
	ErrNegativeDepth = errors.New("geometric: negative depth")
	ErrDepthTooLarge = errors.New("geometric: depth too large")
)

// CheckDepth validates a depth against a limit.
func CheckDepth(depth, limit int) error {
	if depth < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeDepth, depth)
	}
	if depth > limit {
		return fmt.Errorf("%w: %d > %d", ErrDepthTooLarge, depth, limit)
	}
	return nil
}

func clampDepth(depth, limit int) int {
	d := max(0, min(depth, limit))
	if d != depth {
		fractals.Logger().Warn("geometric: depth clamped", "depth", depth, "limit", limit, "used", d)
	}
	return d
}

// pow returns base^exp for the small exponents used to size output slices.
func pow(base, exp int) int {
	n := 1
	for range exp {
		n *= base
	}
	return n
}
