package main

import (
	"testing"

	"langton-ca/internal/sims/langton"
)

func TestSweepMatchesSequentialRuns(t *testing.T) {
	cfg := langton.SwarmConfig()
	cfg.Width = 40
	cfg.Height = 30
	cfg.Ants = 4
	seeds := seedRange(10, 12)

	parallel := sweep(cfg, seeds, 600, 50, 4)
	if len(parallel) != len(seeds) {
		t.Fatalf("got %d results, want %d", len(parallel), len(seeds))
	}

	bySeed := map[int64]seedResult{}
	for _, res := range parallel {
		bySeed[res.seed] = res
	}
	for _, seed := range seeds {
		want := runSeed(cfg, seed, 600, 50)
		if got := bySeed[seed]; got != want {
			t.Fatalf("seed %d: parallel %+v, sequential %+v", seed, got, want)
		}
	}

	for i := 1; i < len(parallel); i++ {
		if parallel[i-1].marked < parallel[i].marked {
			t.Fatalf("results not sorted by marked cells: %+v", parallel)
		}
	}
}

func TestRunSeedTracksPeak(t *testing.T) {
	cfg := langton.DefaultConfig()
	cfg.Width = 30
	cfg.Height = 30
	cfg.Ants = 1
	cfg.StartX = 15
	cfg.StartY = 15

	res := runSeed(cfg, 1, 300, 10)
	if res.peakMarked < res.marked {
		t.Fatalf("peak %d below final %d", res.peakMarked, res.marked)
	}
	if res.peakTick <= 0 || res.peakTick > 300 {
		t.Fatalf("peak tick %d out of range", res.peakTick)
	}
	if res.coverage <= 0 || res.coverage > 1 {
		t.Fatalf("coverage %f out of range", res.coverage)
	}
}
