package app

import (
	"flag"
	"fmt"
	"sort"
	"strings"
)

// Config represents the command-line parameters shared by the viewers.
type Config struct {
	Sim   string
	Scale int
	TPS   int
	Seed  int64
	Steps int
	HUD   int
	Set   KV
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "langton", Scale: 5, TPS: 60, Seed: 0, Steps: 4, HUD: 220, Set: KV{}}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset (0 keeps the sim's configured seed)")
	fs.IntVar(&c.Steps, "steps", c.Steps, "simulation ticks per frame")
	fs.IntVar(&c.HUD, "hud", c.HUD, "width of the parameter panel in pixels (0 hides it)")
	fs.Var(c.Set, "set", "sim parameter override in key=value form (repeatable)")
}

// Normalize clamps values that would stall or break the viewers.
func (c *Config) Normalize() {
	if c.Scale <= 0 {
		c.Scale = 1
	}
	if c.Steps < 0 {
		c.Steps = 0
	}
	if c.HUD < 0 {
		c.HUD = 0
	}
}

// KV collects repeatable key=value flags into a map handed to sim factories.
type KV map[string]string

func (kv KV) String() string {
	keys := make([]string, 0, len(kv))
	for k := range kv {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + "=" + kv[k]
	}
	return strings.Join(parts, ",")
}

// Set parses a single key=value pair.
func (kv KV) Set(value string) error {
	key, val, ok := strings.Cut(value, "=")
	key = strings.TrimSpace(key)
	if !ok || key == "" {
		return fmt.Errorf("expected key=value, got %q", value)
	}
	kv[key] = strings.TrimSpace(val)
	return nil
}
