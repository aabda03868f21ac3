package core

import "time"

// Pacer runs simulation updates at a steady ticks-per-second rate, reporting
// how many ticks are due each time it is polled.
type Pacer struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// maxCatchUp bounds how many ticks a single poll may report after a stall.
const maxCatchUp = 8

// NewPacer constructs a Pacer targeting the given TPS. The first poll reports
// one tick.
func NewPacer(tps int) *Pacer {
	p := &Pacer{now: time.Now}
	p.SetTPS(tps)
	p.accumulator = p.step
	return p
}

// SetTPS changes the tick rate. Non-positive values fall back to 60.
func (p *Pacer) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	p.step = time.Second / time.Duration(tps)
}

// Interval returns the duration of a single tick.
func (p *Pacer) Interval() time.Duration { return p.step }

// Due reports how many ticks should run since the previous poll.
func (p *Pacer) Due() int {
	now := p.now()
	if p.last.IsZero() {
		p.last = now
	}
	p.accumulator += now.Sub(p.last)
	p.last = now

	n := 0
	for p.accumulator >= p.step && n < maxCatchUp {
		p.accumulator -= p.step
		n++
	}
	if n == maxCatchUp {
		p.accumulator = 0
	}
	return n
}
