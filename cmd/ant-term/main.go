package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"strings"

	"langton-ca/internal/app"
	"langton-ca/internal/core"
	_ "langton-ca/internal/sims/langton"
	"langton-ca/internal/tui"

	"github.com/gdamore/tcell/v2"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("ant-term: ")

	cfg := app.NewConfig()
	cfg.TPS = 30
	cfg.Bind(flag.CommandLine)
	flag.Parse()
	cfg.Normalize()

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q (available: %s)", cfg.Sim, strings.Join(core.Names(), ", "))
	}
	sim := factory(cfg.Set)
	sim.Reset(cfg.Seed)

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("terminal failed: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("terminal failed: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err = tui.New(screen, sim, cfg.TPS, cfg.Steps, cfg.Seed).Run(ctx)
	stop()
	screen.Fini()
	if err != nil {
		log.Fatalf("terminal failed: %v", err)
	}
}
