// Package geometric generates the line work of the recursive fractals:
// the Koch snowflake, the Sierpinski triangle and the recursive tree.
//
// Every generator is a pure function. The same input always yields the same
// output, nothing is cached, and the returned slices are freshly allocated,
// so generators may be called from several goroutines at once.
//
// Recursion is driven by an explicit work stack instead of the call stack.
// Depth is clamped to MaxKochDepth, MaxSierpinskiDepth and MaxTreeDepth,
// which bound both memory and run time. Callers that want to reject
// out-of-range input instead of clamping it use CheckDepth or
// Request.Validate.
package geometric
