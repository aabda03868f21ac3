//go:build ebiten

package ui

import (
	"image/color"

	"langton-ca/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var antMarker = color.RGBA{R: 20, G: 20, B: 20, A: 230}

// Overlay highlights agent positions on top of the grid. It is toggled with A.
type Overlay struct {
	sim      core.Sim
	scale    int
	showAnts bool
	pixel    *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	o := &Overlay{sim: sim, scale: scale}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles the overlay on key presses.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyA) {
		o.showAnts = !o.showAnts
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.showAnts {
		return
	}
	provider, ok := o.sim.(core.AgentProvider)
	if !ok {
		return
	}
	scale := o.scale
	if scale <= 0 {
		scale = 1
	}
	// Markers are inset so the cell color under the ant stays visible.
	inset := float64(scale) / 4
	side := float64(scale) - 2*inset
	if side < 1 {
		inset, side = 0, float64(scale)
	}
	for _, p := range provider.Agents() {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(side, side)
		op.GeoM.Translate(float64(p.X*scale)+inset, float64(p.Y*scale)+inset)
		op.ColorScale.ScaleWithColor(antMarker)
		screen.DrawImage(o.pixel, op)
	}
}
