package mosaic

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("mosaic: invalid option supplied")

// Option configures Solve via functional arguments.
type Option func(*Options)

// Options holds facade parameters.
type Options struct {
	// Ctx is passed to the assembler.
	Ctx context.Context
	// Log receives one entry per pipeline stage.
	Log logrus.FieldLogger
	// MirrorSearch enables the scanner's mirrored pass.
	MirrorSearch bool

	err error
}

// DefaultOptions returns a background context, a discarding logger and no
// mirror search.
func DefaultOptions() Options {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return Options{
		Ctx: context.Background(),
		Log: l,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx == nil {
			o.err = fmt.Errorf("%w: nil context", ErrOptionViolation)
			return
		}
		o.Ctx = ctx
	}
}

// WithLogger routes stage logging to l.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Log = l
		}
	}
}

// WithMirrorSearch enables the scanner's mirrored pass.
func WithMirrorSearch(enabled bool) Option {
	return func(o *Options) {
		o.MirrorSearch = enabled
	}
}
