package langton

import "strconv"

// Config controls the world built by the langton sims.
type Config struct {
	Width  int
	Height int
	Ants   int

	// RandomStart places ants uniformly over the grid; otherwise every ant
	// starts at (StartX, StartY).
	RandomStart bool
	StartX      int
	StartY      int

	Seed int64
}

// DefaultConfig returns the classic two-ant setup on a 100×100 board.
func DefaultConfig() Config {
	return Config{
		Width:  100,
		Height: 100,
		Ants:   2,
		StartX: 50,
		StartY: 50,
		Seed:   42,
	}
}

// SwarmConfig returns a larger board with many randomly placed ants.
func SwarmConfig() Config {
	c := DefaultConfig()
	c.Width = 256
	c.Height = 256
	c.Ants = 16
	c.RandomStart = true
	c.StartX = c.Width / 2
	c.StartY = c.Height / 2
	return c
}

// FromMap populates a config from a string map (flag-style key/value pairs),
// starting from DefaultConfig.
func FromMap(cfg map[string]string) Config {
	return Apply(DefaultConfig(), cfg)
}

// Apply overrides fields of base with any recognised keys in cfg. Values that
// do not parse or are out of range are ignored.
func Apply(base Config, cfg map[string]string) Config {
	c := base
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["ants"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Ants = parsed
		}
	}
	if v, ok := cfg["random_start"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.RandomStart = parsed
		}
	}
	if v, ok := cfg["start_x"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.StartX = parsed
		}
	}
	if v, ok := cfg["start_y"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.StartY = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	return c
}
