package langton

import (
	"image"
	"image/color"

	"langton-ca/internal/core"
	"langton-ca/pkg/ant"
	pcore "langton-ca/pkg/core"
)

// Sim drives an ant.World for the host applications.
type Sim struct {
	name  string
	cfg   Config
	world *ant.World
}

// New builds a sim from cfg and seeds it with cfg.Seed. Width and height are
// clamped to at least one cell.
func New(name string, cfg Config) *Sim {
	if cfg.Width <= 0 {
		cfg.Width = 1
	}
	if cfg.Height <= 0 {
		cfg.Height = 1
	}
	s := &Sim{name: name, cfg: cfg}
	s.Reset(cfg.Seed)
	return s
}

// Name returns the simulation identifier.
func (s *Sim) Name() string { return s.name }

// Size returns the grid dimensions.
func (s *Sim) Size() core.Size { return core.Size{W: s.cfg.Width, H: s.cfg.Height} }

// Cells exposes the current grid colors in row-major order.
func (s *Sim) Cells() []color.RGBA { return s.world.Grid().Cells() }

// World exposes the underlying world.
func (s *Sim) World() *ant.World { return s.world }

// Config returns the active configuration.
func (s *Sim) Config() Config { return s.cfg }

// Reset rebuilds an unmarked world and respawns the ants from seed. A zero
// seed falls back to the configured one.
func (s *Sim) Reset(seed int64) {
	if seed == 0 {
		seed = s.cfg.Seed
	}
	s.cfg.Seed = seed

	world, err := ant.NewWorld(s.cfg.Width, s.cfg.Height)
	if err != nil {
		// New clamps dimensions, so this only fires on a corrupted config.
		panic(err)
	}
	rng := pcore.NewRNG(seed)
	for i := 0; i < s.cfg.Ants; i++ {
		if s.cfg.RandomStart {
			world.AddAnt(ant.New(rng, s.cfg.Width, s.cfg.Height))
			continue
		}
		world.AddAnt(ant.NewAt(rng, s.cfg.StartX, s.cfg.StartY))
	}
	s.world = world
}

// Step advances every ant once.
func (s *Sim) Step() { s.world.Tick() }

// Agents returns the wrapped on-grid position of every ant in update order.
func (s *Sim) Agents() []image.Point {
	ants := s.world.Ants()
	g := s.world.Grid()
	pts := make([]image.Point, len(ants))
	for i, a := range ants {
		x, y := g.Wrap(a.Pos.X, a.Pos.Y)
		pts[i] = image.Pt(x, y)
	}
	return pts
}

// Marked counts the cells currently carrying an ant's color.
func (s *Sim) Marked() int { return s.world.Grid().Marked() }

// Ticks reports how many steps have run since the last Reset.
func (s *Sim) Ticks() uint64 { return s.world.Ticks() }

func init() {
	core.Register("langton", func(cfg map[string]string) core.Sim {
		return New("langton", FromMap(cfg))
	})
	core.Register("langton-swarm", func(cfg map[string]string) core.Sim {
		return New("langton-swarm", Apply(SwarmConfig(), cfg))
	})
}
