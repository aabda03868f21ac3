package langton

import (
	"image"
	"image/color"
	"slices"
	"testing"

	"langton-ca/internal/core"
	"langton-ca/pkg/ant"
)

func TestFromMapOverrides(t *testing.T) {
	c := FromMap(map[string]string{
		"w":            "64",
		"h":            "32",
		"ants":         "5",
		"random_start": "true",
		"start_x":      "-3",
		"seed":         "77",
	})
	if c.Width != 64 || c.Height != 32 || c.Ants != 5 {
		t.Fatalf("dimensions/ants not applied: %+v", c)
	}
	if !c.RandomStart || c.StartX != -3 || c.Seed != 77 {
		t.Fatalf("start/seed not applied: %+v", c)
	}
	if c.StartY != DefaultConfig().StartY {
		t.Fatalf("start_y should keep its default, got %d", c.StartY)
	}
}

func TestFromMapIgnoresInvalid(t *testing.T) {
	c := FromMap(map[string]string{
		"w":            "0",
		"h":            "-4",
		"ants":         "lots",
		"random_start": "maybe",
	})
	if c != DefaultConfig() {
		t.Fatalf("invalid values should be ignored, got %+v", c)
	}
	if FromMap(nil) != DefaultConfig() {
		t.Fatal("nil map should yield the defaults")
	}
}

func TestRegisteredVariants(t *testing.T) {
	for _, name := range []string{"langton", "langton-swarm"} {
		factory, ok := core.Sims()[name]
		if !ok {
			t.Fatalf("%s not registered", name)
		}
		sim := factory(map[string]string{"w": "20", "h": "10"})
		if sim.Name() != name {
			t.Fatalf("Name() = %q, want %q", sim.Name(), name)
		}
		if sim.Size() != (core.Size{W: 20, H: 10}) {
			t.Fatalf("%s size = %+v", name, sim.Size())
		}
		if len(sim.Cells()) != 200 {
			t.Fatalf("%s cells = %d, want 200", name, len(sim.Cells()))
		}
	}
}

func TestFixedStartPlacesAllAnts(t *testing.T) {
	sim := New("langton", DefaultConfig())
	agents := sim.Agents()
	if len(agents) != 2 {
		t.Fatalf("expected 2 ants, got %d", len(agents))
	}
	for i, p := range agents {
		if p != image.Pt(50, 50) {
			t.Fatalf("ant %d at %v, want (50,50)", i, p)
		}
	}
}

func TestResetDeterministic(t *testing.T) {
	cfg := SwarmConfig()
	cfg.Width = 48
	cfg.Height = 40
	sim := New("langton-swarm", cfg)

	run := func(seed int64) []color.RGBA {
		sim.Reset(seed)
		for i := 0; i < 800; i++ {
			sim.Step()
		}
		return append([]color.RGBA(nil), sim.Cells()...)
	}

	first := run(9)
	if sim.Ticks() != 800 {
		t.Fatalf("Ticks() = %d, want 800", sim.Ticks())
	}
	second := run(9)
	if !slices.Equal(first, second) {
		t.Fatal("Reset with the same seed is not deterministic")
	}
	other := run(10)
	if slices.Equal(first, other) {
		t.Fatal("different seeds should produce different runs")
	}
}

func TestResetClearsGrid(t *testing.T) {
	sim := New("langton", DefaultConfig())
	for i := 0; i < 50; i++ {
		sim.Step()
	}
	if sim.Marked() == 0 {
		t.Fatal("expected marks after 50 steps")
	}
	sim.Reset(0)
	if sim.Marked() != 0 || sim.Ticks() != 0 {
		t.Fatalf("Reset left marked=%d ticks=%d", sim.Marked(), sim.Ticks())
	}
	if sim.Config().Seed != DefaultConfig().Seed {
		t.Fatalf("zero seed should fall back to the configured seed, got %d", sim.Config().Seed)
	}
}

func TestParametersReflectState(t *testing.T) {
	sim := New("langton", DefaultConfig())
	sim.Step()
	values := map[string]string{}
	for _, g := range sim.Parameters().Groups {
		for _, p := range g.Params {
			values[p.Key] = p.Value
		}
	}
	if values["ticks"] != "1" {
		t.Fatalf("ticks param = %q, want 1", values["ticks"])
	}
	if values["ants"] != "2" || values["w"] != "100" {
		t.Fatalf("unexpected params: %v", values)
	}
	// Two ants on the same cell: the first marks, the second erases.
	if values["marked"] != "0" {
		t.Fatalf("marked param = %q, want 0", values["marked"])
	}
	if got := sim.World().Grid().Get(50, 50); got != ant.Unmarked {
		t.Fatalf("start cell = %v, want unmarked", got)
	}
}
