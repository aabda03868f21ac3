package export

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
)

// PNGDir writes each frame to its own PNG file named after the tick.
type PNGDir struct {
	dir     string
	written int
}

// NewPNGDir creates dir (and parents) and returns a sink writing into it.
func NewPNGDir(dir string) (*PNGDir, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, &Error{Op: "mkdir", Path: dir, Err: err}
	}
	return &PNGDir{dir: dir}, nil
}

// FramePath returns the file a frame for tick is written to.
func (p *PNGDir) FramePath(tick uint64) string {
	return filepath.Join(p.dir, fmt.Sprintf("frame_%06d.png", tick))
}

// WriteFrame encodes img as PNG.
func (p *PNGDir) WriteFrame(tick uint64, img image.Image) error {
	path := p.FramePath(tick)
	if err := WritePNG(path, img); err != nil {
		return err
	}
	p.written++
	return nil
}

// Written reports how many frames have been saved.
func (p *PNGDir) Written() int { return p.written }

// Close is a no-op; every frame is flushed as it is written.
func (p *PNGDir) Close() error { return nil }

// WritePNG encodes img to a new file at path.
func WritePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return &Error{Op: "create", Path: path, Err: err}
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return &Error{Op: "encode", Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		return &Error{Op: "close", Path: path, Err: err}
	}
	return nil
}
