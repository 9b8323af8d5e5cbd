// SPDX-License-Identifier: MIT

package posespace

import (
	"github.com/rs/zerolog"

	"github.com/katalvlaran/posespace/rotation"
)

// Options configures an Interpolator.
//
// Logger    – receives refit and fallback events at debug level; default zerolog.Nop().
// TwistAxis – local axis twist is measured around; default rotation.AxisX.
type Options struct {
	Logger    zerolog.Logger
	TwistAxis rotation.Axis
}

// Option is a functional option for New.
type Option func(*Options)

// DefaultOptions returns a silent logger and the X twist axis.
func DefaultOptions() Options {
	return Options{
		Logger:    zerolog.Nop(),
		TwistAxis: rotation.DefaultTwistAxis,
	}
}

// WithLogger sets the logger used for refit diagnostics.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithTwistAxis selects the twist axis. Panics on an unknown axis.
func WithTwistAxis(a rotation.Axis) Option {
	if err := a.Validate(); err != nil {
		panic(err.Error())
	}

	return func(o *Options) {
		o.TwistAxis = a
	}
}
