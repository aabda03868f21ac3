package ant

import (
	"fmt"
	"image"
	"image/color"
)

// Direction is one of the four cardinal headings. The numeric values index the
// delta table used by Update.
type Direction uint8

const (
	Up Direction = iota
	Right
	Down
	Left
)

// DefaultFacing is the heading every new ant starts with.
const DefaultFacing = Down

var deltas = [4]image.Point{
	Up:    {X: 0, Y: -1},
	Right: {X: 1, Y: 0},
	Down:  {X: 0, Y: 1},
	Left:  {X: -1, Y: 0},
}

// Delta returns the one-cell step taken when moving in d.
func (d Direction) Delta() image.Point { return deltas[d%4] }

// TurnRight rotates 90° clockwise.
func (d Direction) TurnRight() Direction { return (d + 1) % 4 }

// TurnLeft rotates 90° counter-clockwise.
func (d Direction) TurnLeft() Direction { return (d + 3) % 4 }

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	default:
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
}

// Rand is the randomness an ant needs at construction. *rand.Rand from
// math/rand/v2 and *core.RNG both satisfy it.
type Rand interface {
	IntN(n int) int
}

// Ant is a mobile cursor executing the mark-and-turn rule.
//
// Pos may sit one step outside the grid between updates; it is wrapped on the
// next grid access.
type Ant struct {
	Color  color.RGBA
	Pos    image.Point
	Facing Direction
}

// New returns an ant with a random color placed uniformly inside a w×h grid.
func New(r Rand, w, h int) *Ant {
	c := randomColor(r)
	return &Ant{
		Color:  c,
		Pos:    image.Pt(r.IntN(w), r.IntN(h)),
		Facing: DefaultFacing,
	}
}

// NewAt returns an ant with a random color starting at (x, y).
func NewAt(r Rand, x, y int) *Ant {
	return &Ant{Color: randomColor(r), Pos: image.Pt(x, y), Facing: DefaultFacing}
}

// randomColor samples an opaque color, redrawing the rare sample that matches
// the background so the ant's marks are always visible to the rule.
func randomColor(r Rand) color.RGBA {
	for {
		c := color.RGBA{R: uint8(r.IntN(256)), G: uint8(r.IntN(256)), B: uint8(r.IntN(256)), A: 255}
		if !IsUnmarked(c) {
			return c
		}
	}
}

// Update applies one step of the rule to g: on an unmarked cell turn right and
// mark it, on any marked cell turn left and erase it, then move forward one
// cell. Exactly one cell of g is written.
func (a *Ant) Update(g *Grid) {
	a.Pos.X, a.Pos.Y = g.Wrap(a.Pos.X, a.Pos.Y)

	if IsUnmarked(g.Get(a.Pos.X, a.Pos.Y)) {
		a.Facing = a.Facing.TurnRight()
		g.Set(a.Pos.X, a.Pos.Y, a.Color)
	} else {
		a.Facing = a.Facing.TurnLeft()
		g.Set(a.Pos.X, a.Pos.Y, Unmarked)
	}

	a.Pos = a.Pos.Add(a.Facing.Delta())
}
