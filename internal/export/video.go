package export

import (
	"bytes"
	"errors"
	"image"
	"image/jpeg"

	"github.com/icza/mjpeg"
)

// DefaultJPEGQuality is used for video frames when none is configured.
const DefaultJPEGQuality = 90

// Video appends frames to an MJPEG AVI file.
type Video struct {
	path   string
	w      mjpeg.AviWriter
	buf    bytes.Buffer
	opts   jpeg.Options
	width  int
	height int
	frames int
	closed bool
}

// NewVideo creates an AVI at path for frames of the given pixel size.
func NewVideo(path string, width, height, fps, quality int) (*Video, error) {
	if fps <= 0 {
		fps = 30
	}
	if quality <= 0 || quality > 100 {
		quality = DefaultJPEGQuality
	}
	w, err := mjpeg.New(path, int32(width), int32(height), int32(fps))
	if err != nil {
		return nil, &Error{Op: "create", Path: path, Err: err}
	}
	return &Video{
		path:   path,
		w:      w,
		opts:   jpeg.Options{Quality: quality},
		width:  width,
		height: height,
	}, nil
}

// WriteFrame encodes img as JPEG and appends it to the video. Frames must
// match the size the video was created with.
func (v *Video) WriteFrame(_ uint64, img image.Image) error {
	if v.closed {
		return &Error{Op: "frame", Path: v.path, Err: errors.New("video already closed")}
	}
	if b := img.Bounds(); b.Dx() != v.width || b.Dy() != v.height {
		return &Error{Op: "frame", Path: v.path, Err: errors.New("frame size does not match video")}
	}
	v.buf.Reset()
	if err := jpeg.Encode(&v.buf, img, &v.opts); err != nil {
		return &Error{Op: "encode", Path: v.path, Err: err}
	}
	if err := v.w.AddFrame(v.buf.Bytes()); err != nil {
		return &Error{Op: "frame", Path: v.path, Err: err}
	}
	v.frames++
	return nil
}

// Frames reports how many frames have been appended.
func (v *Video) Frames() int { return v.frames }

// Close finalizes the AVI index. It is safe to call more than once.
func (v *Video) Close() error {
	if v.closed {
		return nil
	}
	v.closed = true
	if err := v.w.Close(); err != nil {
		return &Error{Op: "close", Path: v.path, Err: err}
	}
	return nil
}
