// Package tui renders a simulation in a terminal using tcell. Each grid cell
// takes two terminal columns so cells come out roughly square.
package tui

import (
	"context"
	"fmt"
	"time"

	"langton-ca/internal/core"

	"github.com/gdamore/tcell/v2"
)

// Viewer drives a sim on a tcell screen.
type Viewer struct {
	screen tcell.Screen
	sim    core.Sim
	pacer  *core.Pacer
	steps  int
	seed   int64
	paused bool
}

// New returns a viewer running steps sim ticks every 1/tps seconds. The screen
// must already be initialized.
func New(screen tcell.Screen, sim core.Sim, tps, steps int, seed int64) *Viewer {
	if steps < 0 {
		steps = 0
	}
	return &Viewer{
		screen: screen,
		sim:    sim,
		pacer:  core.NewPacer(tps),
		steps:  steps,
		seed:   seed,
	}
}

// Run loops until the user quits or ctx is cancelled.
func (v *Viewer) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	ticker := time.NewTicker(v.pacer.Interval())
	defer ticker.Stop()

	v.Draw()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if v.HandleKey(ev) {
					return nil
				}
				v.Draw()
			case *tcell.EventResize:
				v.screen.Sync()
				v.Draw()
			}
		case <-ticker.C:
			if n := v.pacer.Due(); n > 0 && !v.paused {
				v.advance(n * v.steps)
				v.Draw()
			}
		}
	}
}

// HandleKey applies a key press and reports whether the viewer should exit.
func (v *Viewer) HandleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return true
		case ' ':
			v.paused = !v.paused
		case 'n':
			v.advance(1)
		case 'r':
			v.sim.Reset(v.seed)
		case 's':
			v.seed = time.Now().UnixNano()
			v.sim.Reset(v.seed)
		}
	}
	return false
}

// Paused reports whether the viewer is holding the simulation.
func (v *Viewer) Paused() bool { return v.paused }

func (v *Viewer) advance(n int) {
	for i := 0; i < n; i++ {
		v.sim.Step()
	}
}

// Draw paints the visible part of the grid plus a status line.
func (v *Viewer) Draw() {
	sw, sh := v.screen.Size()
	size := v.sim.Size()
	cols := min(size.W, sw/2)
	rows := min(size.H, sh-1)
	cells := v.sim.Cells()

	v.screen.Clear()
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			c := cells[y*size.W+x]
			style := tcell.StyleDefault.Background(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
			v.screen.SetContent(2*x, y, ' ', nil, style)
			v.screen.SetContent(2*x+1, y, ' ', nil, style)
		}
	}
	if sh > 0 {
		drawString(v.screen, 0, sh-1, v.status())
	}
	v.screen.Show()
}

type tickCounter interface {
	Ticks() uint64
}

func (v *Viewer) status() string {
	s := v.sim.Name()
	if t, ok := v.sim.(tickCounter); ok {
		s += fmt.Sprintf("  tick %d", t.Ticks())
	}
	if v.paused {
		s += "  [paused]"
	}
	return s + "  space pause  n step  r reset  s reseed  q quit"
}

func drawString(screen tcell.Screen, x, y int, s string) {
	for i, r := range []rune(s) {
		screen.SetContent(x+i, y, r, nil, tcell.StyleDefault)
	}
}
