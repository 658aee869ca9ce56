package clipwire

import "github.com/rs/zerolog"

type readConfig struct {
	limits Limits
	logger zerolog.Logger
}

type ReadOption func(*readConfig)

func WithReadLimits(l Limits) ReadOption {
	return func(c *readConfig) { c.limits = l }
}

// WithLogger sets a logger for debug-level decode tracing (section tags,
// declared sizes, decoded labels). The default logger discards everything.
func WithLogger(l zerolog.Logger) ReadOption {
	return func(c *readConfig) { c.logger = l }
}

type writeConfig struct {
	limits Limits
}

type WriteOption func(*writeConfig)

func WithWriteLimits(l Limits) WriteOption {
	return func(c *writeConfig) { c.limits = l }
}
