// Command ant-dump runs a simulation headless and exports frames.
//
// Every run writes into its own directory <out>/<run-id>: PNG frames named
// frame_<tick>.png, and optionally an MJPEG video and a coverage chart.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"langton-ca/internal/app"
	"langton-ca/internal/core"
	"langton-ca/internal/export"
	"langton-ca/internal/render"
	_ "langton-ca/internal/sims/langton"

	"github.com/google/uuid"
)

type options struct {
	sim   string
	set   app.KV
	seed  int64
	ticks int
	every int
	scale int
	out   string
	png   bool
	video bool
	fps   int
	chart bool
}

type markedCounter interface {
	Marked() int
}

type summary struct {
	dir    string
	frames int
	marked int
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("ant-dump: ")

	opts := options{set: app.KV{}}
	flag.StringVar(&opts.sim, "sim", "langton", "simulation to run")
	flag.Var(opts.set, "set", "sim parameter override in key=value form (repeatable)")
	flag.Int64Var(&opts.seed, "seed", 0, "seed for the run (0 keeps the sim's configured seed)")
	flag.IntVar(&opts.ticks, "ticks", 11000, "total ticks to simulate")
	flag.IntVar(&opts.every, "every", 100, "export a frame every N ticks")
	flag.IntVar(&opts.scale, "scale", 4, "pixels per cell in exported frames")
	flag.StringVar(&opts.out, "out", "frames", "parent directory for run output")
	flag.BoolVar(&opts.png, "png", true, "write each frame as a PNG")
	flag.BoolVar(&opts.video, "video", false, "also write an MJPEG AVI of the frames")
	flag.IntVar(&opts.fps, "fps", 30, "video frame rate")
	flag.BoolVar(&opts.chart, "chart", false, "write a chart of marked cells over time")
	flag.Parse()

	res, err := run(opts)
	var exportErr *export.Error
	switch {
	case errors.As(err, &exportErr):
		log.Fatalf("export failed: %v", err)
	case err != nil:
		log.Fatal(err)
	}
	log.Printf("wrote %d frames to %s (%d cells marked)", res.frames, res.dir, res.marked)
}

func run(opts options) (summary, error) {
	factory, ok := core.Sims()[opts.sim]
	if !ok {
		return summary{}, fmt.Errorf("unknown sim %q (available: %s)", opts.sim, strings.Join(core.Names(), ", "))
	}
	if opts.ticks < 0 {
		return summary{}, fmt.Errorf("ticks must not be negative, got %d", opts.ticks)
	}
	if opts.every <= 0 {
		opts.every = 1
	}
	if opts.scale <= 0 {
		opts.scale = 1
	}

	sim := factory(opts.set)
	sim.Reset(opts.seed)
	size := sim.Size()

	dir := filepath.Join(opts.out, uuid.New().String())
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return summary{}, &export.Error{Op: "mkdir", Path: dir, Err: err}
	}

	var sinks []export.Sink
	if opts.png {
		frames, err := export.NewPNGDir(dir)
		if err != nil {
			return summary{}, err
		}
		sinks = append(sinks, frames)
	}
	if opts.video {
		video, err := export.NewVideo(filepath.Join(dir, sim.Name()+".avi"), size.W*opts.scale, size.H*opts.scale, opts.fps, 0)
		if err != nil {
			return summary{}, err
		}
		sinks = append(sinks, video)
	}
	sink := export.Multi(sinks...)

	counter, _ := sim.(markedCounter)
	var coverage export.Coverage
	res := summary{dir: dir}

	emit := func(tick int) error {
		if counter != nil {
			coverage.Record(uint64(tick), counter.Marked())
		}
		if len(sinks) == 0 {
			return nil
		}
		frame := render.Frame(sim.Cells(), size.W, size.H, opts.scale)
		if err := sink.WriteFrame(uint64(tick), frame); err != nil {
			return err
		}
		res.frames++
		return nil
	}

	if err := emit(0); err != nil {
		sink.Close()
		return res, err
	}
	for tick := 1; tick <= opts.ticks; tick++ {
		sim.Step()
		if tick%opts.every != 0 && tick != opts.ticks {
			continue
		}
		if err := emit(tick); err != nil {
			sink.Close()
			return res, err
		}
	}
	if err := sink.Close(); err != nil {
		return res, err
	}

	if counter != nil {
		res.marked = counter.Marked()
	}
	if opts.chart && coverage.Len() >= 2 {
		title := sim.Name()
		if opts.seed != 0 {
			title = fmt.Sprintf("%s seed %d", sim.Name(), opts.seed)
		}
		if err := coverage.WriteChart(filepath.Join(dir, "coverage.png"), title); err != nil {
			return res, err
		}
	}
	return res, nil
}
