package ant

import (
	"errors"
	"fmt"
	"image/color"
)

// ErrInvalidSize is returned when a grid is requested with a non-positive
// width or height.
var ErrInvalidSize = errors.New("ant: grid dimensions must be positive")

// Unmarked is the background color of a cell no ant has marked.
var Unmarked = color.RGBA{R: 255, G: 255, B: 255, A: 255}

// Grid stores a toroidal 2D field of cell colors in row-major order: the cell
// at (x, y) lives at index y*W + x.
type Grid struct {
	w, h   int
	data   []color.RGBA
	writes uint64
}

// NewGrid allocates a grid with every cell set to Unmarked.
func NewGrid(w, h int) (*Grid, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidSize, w, h)
	}
	g := &Grid{w: w, h: h, data: make([]color.RGBA, w*h)}
	g.Clear()
	return g, nil
}

// Wrap reduces coord into [0, extent). extent must be positive; a zero extent
// panics with a division by zero.
func Wrap(coord, extent int) int {
	return (coord%extent + extent) % extent
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.h }

// Wrap applies toroidal wrapping to both coordinates.
func (g *Grid) Wrap(x, y int) (int, int) {
	return Wrap(x, g.w), Wrap(y, g.h)
}

// Index returns the linear slice index for (x, y) after wrapping.
func (g *Grid) Index(x, y int) int {
	x, y = g.Wrap(x, y)
	return y*g.w + x
}

// Get returns the color of the cell at (x, y).
func (g *Grid) Get(x, y int) color.RGBA {
	return g.data[g.Index(x, y)]
}

// Set overwrites the color of the cell at (x, y).
func (g *Grid) Set(x, y int, c color.RGBA) {
	g.data[g.Index(x, y)] = c
	g.writes++
}

// Cells exposes the backing slice in row-major order. Callers must treat it as
// read-only; use Snapshot for a copy that survives further ticks.
func (g *Grid) Cells() []color.RGBA { return g.data }

// Snapshot returns a row-major copy of the cell colors.
func (g *Grid) Snapshot() []color.RGBA {
	return append([]color.RGBA(nil), g.data...)
}

// Clear resets every cell to Unmarked. The write counter is left untouched.
func (g *Grid) Clear() {
	for i := range g.data {
		g.data[i] = Unmarked
	}
}

// Marked counts the cells whose color differs from the background.
func (g *Grid) Marked() int {
	n := 0
	for _, c := range g.data {
		if !IsUnmarked(c) {
			n++
		}
	}
	return n
}

// Writes reports how many Set calls the grid has served.
func (g *Grid) Writes() uint64 { return g.writes }

// IsUnmarked reports whether c matches the background color. Alpha is ignored.
func IsUnmarked(c color.RGBA) bool {
	return c.R == Unmarked.R && c.G == Unmarked.G && c.B == Unmarked.B
}
