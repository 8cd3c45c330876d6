package ops

import (
	"log/slog"

	"github.com/born-ml/mlfunc/internal/parallel"
)

type options struct {
	parallel parallel.Config
	logger   *slog.Logger
}

// Option configures a single axis operation.
type Option func(*options)

// WithParallel sets how lanes are scheduled across goroutines.
// Results do not depend on this setting.
func WithParallel(cfg parallel.Config) Option {
	return func(o *options) {
		o.parallel = cfg
	}
}

// WithSequential processes every lane on the calling goroutine.
func WithSequential() Option {
	return WithParallel(parallel.Sequential())
}

// WithLogger enables debug logging of reductions and warnings on
// precondition failures. A nil logger disables logging.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = slog.New(slog.DiscardHandler)
		}
		o.logger = logger
	}
}

func newOptions(opts []Option) options {
	o := options{
		parallel: parallel.DefaultConfig(),
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
