package unblack

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/pbmclean/grid"
)

// Sentinel errors for Unblack.
var (
	// ErrInvalidDimensions is returned for a nil or empty bitmap.
	// It wraps grid.ErrInvalidDimensions so either sentinel matches.
	ErrInvalidDimensions = fmt.Errorf("unblack: %w", grid.ErrInvalidDimensions)

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("unblack: invalid option supplied")
)

// Option configures Unblack via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation by Unblack.
type Option func(*Options)

// Options holds the tunables and hooks for one Unblack call.
type Options struct {
	// OnClear is called once per cleared pixel, seeds first, then in
	// breadth-first order.
	OnClear func(col, row int)

	// QueueHint is the initial capacity of the work queue.
	// Zero lets Unblack pick 2·(W+H), the size of the border.
	QueueHint int

	err error
}

// DefaultOptions returns Options with a no-op OnClear and no queue hint.
func DefaultOptions() Options {
	return Options{
		OnClear:   func(int, int) {},
		QueueHint: 0,
	}
}

// WithOnClear registers a callback run for every pixel Unblack clears.
func WithOnClear(fn func(col, row int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnClear = fn
		}
	}
}

// WithQueueHint presizes the work queue.
//
//	n > 0: initial capacity n
//	n == 0: default (border length)
//	n < 0: invalid option → ErrOptionViolation
func WithQueueHint(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: QueueHint cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.QueueHint = n
	}
}

// point is one pending (col,row) in the work queue.
type point struct {
	col, row int
}
