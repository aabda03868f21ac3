package export

import (
	"errors"
	"os"

	"github.com/wcharczuk/go-chart/v2"
)

// Coverage records how many cells are marked as a run progresses.
type Coverage struct {
	ticks  []float64
	marked []float64
}

// Record appends a sample.
func (c *Coverage) Record(tick uint64, marked int) {
	c.ticks = append(c.ticks, float64(tick))
	c.marked = append(c.marked, float64(marked))
}

// Len reports how many samples were recorded.
func (c *Coverage) Len() int { return len(c.ticks) }

// Peak returns the largest marked-cell count seen and the tick it occurred at.
func (c *Coverage) Peak() (tick uint64, marked int) {
	best := -1.0
	for i, m := range c.marked {
		if m > best {
			best = m
			tick = uint64(c.ticks[i])
		}
	}
	if best < 0 {
		return 0, 0
	}
	return tick, int(best)
}

// WriteChart renders the samples as a line chart PNG at path. At least two
// samples are required.
func (c *Coverage) WriteChart(path, title string) error {
	if len(c.ticks) < 2 {
		return &Error{Op: "chart", Path: path, Err: errors.New("need at least two samples")}
	}

	yAxis := chart.YAxis{Name: "marked cells"}
	if lo, hi := bounds(c.marked); lo == hi {
		// go-chart refuses a zero-height range.
		yAxis.Range = &chart.ContinuousRange{Min: lo - 1, Max: hi + 1}
	}

	graph := chart.Chart{
		Title: title,
		XAxis: chart.XAxis{Name: "tick"},
		YAxis: yAxis,
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "marked",
				XValues: c.ticks,
				YValues: c.marked,
				Style:   chart.Style{StrokeColor: chart.ColorBlue, StrokeWidth: 2.0},
			},
		},
	}

	f, err := os.Create(path)
	if err != nil {
		return &Error{Op: "create", Path: path, Err: err}
	}
	if err := graph.Render(chart.PNG, f); err != nil {
		f.Close()
		return &Error{Op: "chart", Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		return &Error{Op: "close", Path: path, Err: err}
	}
	return nil
}

func bounds(vals []float64) (lo, hi float64) {
	for i, v := range vals {
		if i == 0 || v < lo {
			lo = v
		}
		if i == 0 || v > hi {
			hi = v
		}
	}
	return lo, hi
}
