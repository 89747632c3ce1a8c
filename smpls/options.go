package smpls

import "go.uber.org/zap"

// Option configures SMPLS and EventModel.
type Option func(*config)

type config struct {
	logger       *zap.Logger
	resources    int
	hasResources bool
}

func newConfig(opts []Option) config {
	c := config{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&c)
	}

	return c
}

// WithLogger routes diagnostics to l. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithResources fixes the resource count used for identity matrices and
// bounded maxima during synthesis. Without it the count is derived from
// the dissected scenario matrices.
func WithResources(n int) Option {
	return func(c *config) {
		c.resources = n
		c.hasResources = true
	}
}
