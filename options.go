// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package pulsenet

import "go.uber.org/zap"

// DefaultPressLimit is the default upper bound on the number of presses the
// period analyzer runs before giving up.
//
const DefaultPressLimit = 1 << 20

type config struct {
	strict bool
	log    *zap.Logger
	limit  uint64
}

func newConfig(opts []Option) config {
	c := config{log: zap.NewNop(), limit: DefaultPressLimit}
	for _, o := range opts {
		o(&c)
	}
	return c
}

// An Option configures a Network.
//
type Option func(*config)

// Strict rejects outputs to undeclared labels with an UnknownDestinationError
// instead of wiring them to implicit sinks.
//
func Strict() Option {
	return func(c *config) { c.strict = true }
}

// WithLogger sets the logger used by the network and the period analyzer.
//
func WithLogger(l *zap.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.log = l
		}
	}
}

// WithPressLimit bounds the number of presses run by FindActivationPeriods.
// A zero limit restores DefaultPressLimit.
//
func WithPressLimit(n uint64) Option {
	return func(c *config) {
		if n == 0 {
			n = DefaultPressLimit
		}
		c.limit = n
	}
}
