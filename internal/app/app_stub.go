//go:build !ebiten

package app

import (
	"fmt"

	"langton-ca/internal/core"
)

// Game mirrors the windowed ant viewer so headless builds of this package compile.
type Game struct{}

// New panics: the ant viewer window needs the ebiten build tag.
func New(core.Sim, *Config) *Game {
	panic("app.New requires building with the 'ebiten' tag")
}

// Reset is a no-op placeholder.
func (g *Game) Reset(int64) {}

// Update always reports that the GUI build tag is missing.
func (g *Game) Update() error {
	return fmt.Errorf("ant viewer requires building with the 'ebiten' tag")
}

// Draw is a no-op placeholder to satisfy the interface shape.
func (g *Game) Draw(any) {}

// Layout returns zeros in the headless build.
func (g *Game) Layout(int, int) (int, int) { return 0, 0 }
