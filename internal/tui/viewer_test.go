package tui

import (
	"strings"
	"testing"

	"langton-ca/internal/sims/langton"

	"github.com/gdamore/tcell/v2"
)

func newTestScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(w, h)
	return screen
}

func newTestSim() *langton.Sim {
	cfg := langton.DefaultConfig()
	cfg.Width = 8
	cfg.Height = 6
	cfg.Ants = 1
	cfg.StartX = 2
	cfg.StartY = 3
	return langton.New("langton", cfg)
}

func TestDrawPaintsCellsAndStatus(t *testing.T) {
	screen := newTestScreen(t, 80, 10)
	sim := newTestSim()
	v := New(screen, sim, 30, 1, 1)

	v.HandleKey(tcell.NewEventKey(tcell.KeyRune, 'n', tcell.ModNone))
	v.Draw()

	contents, w, _ := screen.GetContents()
	markColor := sim.World().Ants()[0].Color
	want := tcell.NewRGBColor(int32(markColor.R), int32(markColor.G), int32(markColor.B))
	for _, x := range []int{4, 5} {
		_, bg, _ := contents[3*w+x].Style.Decompose()
		if bg != want {
			t.Fatalf("column %d background = %v, want ant color %v", x, bg, want)
		}
	}
	_, bg, _ := contents[0].Style.Decompose()
	if bg != tcell.NewRGBColor(255, 255, 255) {
		t.Fatalf("unmarked cell background = %v, want white", bg)
	}

	var status strings.Builder
	for x := 0; x < w; x++ {
		for _, r := range contents[9*w+x].Runes {
			status.WriteRune(r)
		}
	}
	if !strings.Contains(status.String(), "tick 1") {
		t.Fatalf("status line %q missing tick count", status.String())
	}
}

func TestDrawClipsToScreen(t *testing.T) {
	screen := newTestScreen(t, 6, 3)
	v := New(screen, newTestSim(), 30, 1, 1)
	v.Draw() // must not index past the screen or the grid
}

func TestHandleKey(t *testing.T) {
	screen := newTestScreen(t, 40, 10)
	sim := newTestSim()
	v := New(screen, sim, 30, 4, 1)

	if v.HandleKey(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone)) || !v.Paused() {
		t.Fatal("space should pause without quitting")
	}
	v.HandleKey(tcell.NewEventKey(tcell.KeyRune, 'n', tcell.ModNone))
	v.HandleKey(tcell.NewEventKey(tcell.KeyRune, 'n', tcell.ModNone))
	if sim.Ticks() != 2 {
		t.Fatalf("ticks after two single steps = %d, want 2", sim.Ticks())
	}
	v.HandleKey(tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone))
	if sim.Ticks() != 0 || sim.Marked() != 0 {
		t.Fatal("r should reset the simulation")
	}
	if !v.HandleKey(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)) {
		t.Fatal("q should quit")
	}
	if !v.HandleKey(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)) {
		t.Fatal("escape should quit")
	}
}
