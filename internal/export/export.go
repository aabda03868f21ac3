// Package export writes simulation frames and run statistics to disk.
//
// Every failure is reported as an *Error naming the operation and the path
// involved, so callers can tell an output problem apart from anything else.
package export

import (
	"errors"
	"image"
)

// Error labels a failed export operation.
type Error struct {
	Op   string
	Path string
	Err  error
}

func (e *Error) Error() string {
	return "export " + e.Op + " " + e.Path + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error { return e.Err }

// Sink consumes rendered frames.
type Sink interface {
	WriteFrame(tick uint64, img image.Image) error
	Close() error
}

type multi []Sink

// Multi fans frames out to every sink in order. Close closes all sinks and
// joins their errors.
func Multi(sinks ...Sink) Sink {
	return multi(sinks)
}

func (m multi) WriteFrame(tick uint64, img image.Image) error {
	for _, s := range m {
		if err := s.WriteFrame(tick, img); err != nil {
			return err
		}
	}
	return nil
}

func (m multi) Close() error {
	var errs []error
	for _, s := range m {
		if err := s.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
