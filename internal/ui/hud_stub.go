//go:build !ebiten

package ui

import "langton-ca/internal/core"

// HUD stands in for the parameter panel when the viewer is built without ebiten.
type HUD struct{}

// NewHUD returns nil; the terminal and dump tools never draw a panel.
func NewHUD(core.Sim, int) *HUD { return nil }

// Update is a no-op in the headless build.
func (h *HUD) Update() {}

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any, int, int) {}
