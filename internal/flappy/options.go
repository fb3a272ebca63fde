package flappy

import (
	"io"

	"github.com/charmbracelet/log"
)

// Shaker receives cosmetic trauma when the bird crashes.
type Shaker interface {
	AddTrauma(amount float64)
}

// LostFunc is called once per episode with the final score.
type LostFunc func(score uint32)

type options struct {
	logger *log.Logger
	shaker Shaker
	onLost []LostFunc
}

// Option configures a Session or Game.
type Option func(*options)

// WithLogger sets the logger used for state transitions.
func WithLogger(l *log.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithShaker sets the camera collaborator notified on crashes.
func WithShaker(s Shaker) Option {
	return func(o *options) {
		o.shaker = s
	}
}

// OnLost registers a callback run on every entry into Lost.
func OnLost(fn LostFunc) Option {
	return func(o *options) {
		o.onLost = append(o.onLost, fn)
	}
}

func buildOptions(opts []Option) options {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = log.New(io.Discard)
	}
	return o
}
