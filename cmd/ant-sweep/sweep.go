package main

import (
	"sort"
	"sync"

	"langton-ca/internal/sims/langton"
)

type seedResult struct {
	seed       int64
	marked     int
	peakMarked int
	peakTick   int
	coverage   float64
}

// sweep evaluates every seed on its own world. Worlds are independent, so
// they run in parallel while each keeps strict in-order ant updates.
func sweep(cfg langton.Config, seeds []int64, ticks, sample, workers int) []seedResult {
	if workers <= 0 {
		workers = 1
	}
	if sample <= 0 {
		sample = ticks
	}

	jobs := make(chan int64)
	results := make(chan seedResult)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for seed := range jobs {
				results <- runSeed(cfg, seed, ticks, sample)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, seed := range seeds {
			jobs <- seed
		}
		close(jobs)
	}()

	var all []seedResult
	for res := range results {
		all = append(all, res)
	}

	sort.Slice(all, func(i, j int) bool {
		if all[i].marked != all[j].marked {
			return all[i].marked > all[j].marked
		}
		return all[i].seed < all[j].seed
	})
	return all
}

func runSeed(cfg langton.Config, seed int64, ticks, sample int) seedResult {
	sim := langton.New("sweep", cfg)
	sim.Reset(seed)

	res := seedResult{seed: seed}
	for tick := 1; tick <= ticks; tick++ {
		sim.Step()
		if tick%sample != 0 && tick != ticks {
			continue
		}
		if m := sim.Marked(); m > res.peakMarked {
			res.peakMarked = m
			res.peakTick = tick
		}
	}
	res.marked = sim.Marked()
	size := sim.Size()
	res.coverage = float64(res.marked) / float64(size.W*size.H)
	return res
}
