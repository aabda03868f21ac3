//go:build !ebiten

package ui

import "langton-ca/internal/core"

// Overlay stands in for the ant-position markers in builds without ebiten.
type Overlay struct{}

// NewOverlay returns an overlay that never marks ants.
func NewOverlay(core.Sim, int) *Overlay { return &Overlay{} }

// Update is a no-op in headless builds.
func (o *Overlay) Update() {}

// Draw is a no-op placeholder.
func (o *Overlay) Draw(any) {}
