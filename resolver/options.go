package resolver

import "log/slog"

// Options configures a Resolver.
type Options struct {
	// Logger receives debug records for every resolution.
	// Defaults to a logger that discards everything.
	Logger *slog.Logger

	// Stages replaces the default stage list when non-empty.
	Stages []Stage
}

// Option is a functional option for configuring a Resolver.
type Option func(*Options)

// WithLogger sets the logger used by the Resolver.
func WithLogger(logger *slog.Logger) Option {
	return func(opts *Options) {
		opts.Logger = logger
	}
}

// WithStages replaces the default stages. The stages run in the given order
// and are combined with Combine.
func WithStages(stages ...Stage) Option {
	return func(opts *Options) {
		opts.Stages = stages
	}
}
