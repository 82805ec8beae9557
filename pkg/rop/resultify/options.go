package resultify

import (
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/ib-77/resultify/pkg/rop"
)

type Options struct {
	Logger       zerolog.Logger
	CaptureStack bool
}

type Option func(*Options)

// WithLogger reports recovered panics to logger at debug level.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}

// WithStack attaches the stack of the panicking goroutine to recovered panics.
// The stored error still matches the panic value through errors.Is and errors.As.
func WithStack(capture bool) Option {
	return func(o *Options) {
		o.CaptureStack = capture
	}
}

func newOptions(opts []Option) *Options {
	o := &Options{Logger: zerolog.Nop()}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
	return o
}

func (o *Options) recovered(p any) error {
	err := rop.PanicAsError(p)
	o.Logger.Debug().Err(err).Interface("panic", p).Msg("resultify: recovered panic")
	if o.CaptureStack {
		return errors.WithStack(err)
	}
	return err
}
