//go:build ebiten

package ui

import (
	"fmt"
	"image/color"
	"strings"

	"langton-ca/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	panelPadding = 10
	lineHeight   = 16
	groupGap     = 8
)

var (
	panelBackground = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	titleColor      = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	groupColor      = color.RGBA{R: 140, G: 170, B: 220, A: 255}
	labelColor      = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	valueColor      = color.RGBA{R: 250, G: 210, B: 120, A: 255}
	hintColor       = color.RGBA{R: 120, G: 120, B: 130, A: 255}
)

var keyHints = []string{
	"space pause  n step",
	"r reset  s reseed",
	"a ants  q quit",
}

// HUD renders the parameter panel to the right of the simulation view.
type HUD struct {
	sim        core.Sim
	width      int
	panel      *ebiten.Image
	lastHeight int
	snapshot   core.ParameterSnapshot
	title      string
}

// NewHUD constructs a HUD for the provided simulation and panel width. A
// non-positive width disables the panel.
func NewHUD(sim core.Sim, width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{sim: sim, width: width, title: buildTitle(sim)}
}

// Update refreshes the cached parameter snapshot from the simulation.
func (h *HUD) Update() {
	if h == nil || h.width <= 0 {
		return
	}
	provider, ok := h.sim.(core.ParameterProvider)
	if !ok {
		h.snapshot = core.ParameterSnapshot{}
		return
	}
	h.snapshot = provider.Parameters()
}

// Draw paints the HUD panel anchored at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, scale int) {
	if h == nil || h.width <= 0 {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	height := h.sim.Size().H * scale
	if height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(panelBackground)
	h.drawParameters(height)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawParameters(height int) {
	face := basicfont.Face7x13
	y := panelPadding + lineHeight
	text.Draw(h.panel, h.title, face, panelPadding, y, titleColor)
	y += lineHeight + groupGap

	if len(h.snapshot.Groups) == 0 {
		text.Draw(h.panel, "No parameters", face, panelPadding, y, hintColor)
		y += lineHeight
	}
	for _, group := range h.snapshot.Groups {
		text.Draw(h.panel, group.Name, face, panelPadding, y, groupColor)
		y += lineHeight
		for _, param := range group.Params {
			text.Draw(h.panel, param.Label, face, panelPadding+8, y, labelColor)
			bounds := text.BoundString(face, param.Value)
			valueX := h.width - panelPadding - bounds.Dx()
			text.Draw(h.panel, param.Value, face, valueX, y, valueColor)
			y += lineHeight
		}
		y += groupGap
	}

	hintY := height - panelPadding - (len(keyHints)-1)*lineHeight
	if hintY <= y {
		return
	}
	for i, hint := range keyHints {
		text.Draw(h.panel, hint, face, panelPadding, hintY+i*lineHeight, hintColor)
	}
}

func buildTitle(sim core.Sim) string {
	if sim == nil || sim.Name() == "" {
		return "Parameters"
	}
	return fmt.Sprintf("%s parameters", strings.ToLower(sim.Name()))
}
