package ant

import "image/color"

// World owns one grid and the ordered set of ants walking it. Insertion order
// is the per-tick update order.
type World struct {
	grid  *Grid
	ants  []*Ant
	ticks uint64
}

// NewWorld creates a world with an unmarked w×h grid and no ants.
func NewWorld(w, h int) (*World, error) {
	g, err := NewGrid(w, h)
	if err != nil {
		return nil, err
	}
	return &World{grid: g}, nil
}

// AddAnt appends a to the update order.
func (w *World) AddAnt(a *Ant) {
	if a == nil {
		return
	}
	w.ants = append(w.ants, a)
}

// Tick updates every ant once, strictly in insertion order. Ants share the grid
// so a later ant observes the writes of earlier ones within the same tick.
func (w *World) Tick() {
	for _, a := range w.ants {
		a.Update(w.grid)
	}
	w.ticks++
}

// Run advances the world by n ticks.
func (w *World) Run(n int) {
	for i := 0; i < n; i++ {
		w.Tick()
	}
}

// Ticks reports how many ticks have run since creation.
func (w *World) Ticks() uint64 { return w.ticks }

// Grid exposes the shared grid.
func (w *World) Grid() *Grid { return w.grid }

// Ants returns the ants in update order. The slice is a copy; the ants are not.
func (w *World) Ants() []*Ant {
	return append([]*Ant(nil), w.ants...)
}

// Snapshot returns a row-major copy of the cell colors.
func (w *World) Snapshot() []color.RGBA { return w.grid.Snapshot() }
