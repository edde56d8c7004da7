package fractals

import (
	"strconv"
	"strings"
)

// Mode selects the fractal shown by a viewer.
type Mode int

const (
	Koch Mode = iota + 1
	Sierpinski
	Tree
	Mandelbrot
	Julia
)

// Modes lists every mode in menu order.
var Modes = []Mode{Koch, Sierpinski, Tree, Mandelbrot, Julia}

// String returns the short name used for window titles and screenshot files.
func (m Mode) String() string {
	switch m {
	case Koch:
		return "koch"
	case Sierpinski:
		return "sierpinski"
	case Tree:
		return "tree"
	case Mandelbrot:
		return "mandelbrot"
	case Julia:
		return "julia"
	}
	return "mode(" + strconv.Itoa(int(m)) + ")"
}

// Title is the human readable name shown in menus.
func (m Mode) Title() string {
	switch m {
	case Koch:
		return "Koch snowflake"
	case Sierpinski:
		return "Sierpinski triangle"
	case Tree:
		return "Recursive tree"
	case Mandelbrot:
		return "Mandelbrot set"
	case Julia:
		return "Julia set"
	}
	return m.String()
}

// Description is a one line explanation for the menu.
func (m Mode) Description() string {
	switch m {
	case Koch:
		return "Curve that grows a snowflake through recursive subdivision."
	case Sierpinski:
		return "Triangle subdivided recursively into a pattern of triangular holes."
	case Tree:
		return "Branches that fork recursively, imitating natural growth."
	case Mandelbrot:
		return "Points c for which z = z*z + c stays bounded from z = 0."
	case Julia:
		return "Points z that stay bounded under z = z*z + c for a fixed c. Rotate to change c."
	}
	return ""
}

// Valid reports whether m is one of the known modes.
func (m Mode) Valid() bool {
	return m >= Koch && m <= Julia
}

// Escape reports whether m is an escape-time fractal.
func (m Mode) Escape() bool {
	return m == Mandelbrot || m == Julia
}

// ParseMode parses a mode number (1-5) or name. Anything else yields Koch.
func ParseMode(s string) Mode {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		if m := Mode(n); m.Valid() {
			return m
		}
		return Koch
	}
	for _, m := range Modes {
		if strings.EqualFold(s, m.String()) {
			return m
		}
	}
	return Koch
}
