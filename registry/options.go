package registry

import (
	"log/slog"
	"runtime"

	"github.com/jmgilman/dappreg/schema"
)

// Options configures how a Registry is built.
type Options struct {
	// Logger receives load progress and index conflicts.
	// Defaults to a logger that discards everything.
	Logger *slog.Logger

	// AssetBaseURL prefixes the icon and cover paths produced by Load.
	// If empty, asset paths are relative to the repository root.
	AssetBaseURL string

	// Validator checks documents read by Load.
	// If nil, Load compiles the embedded schema.
	Validator *schema.Validator

	// Concurrency bounds how many project folders Load reads at once.
	// Defaults to GOMAXPROCS.
	Concurrency int
}

// Option is a functional option for configuring a Registry.
type Option func(*Options)

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(opts *Options) {
		opts.Logger = logger
	}
}

// WithAssetBaseURL sets the prefix of asset URLs produced by Load.
//
// Example usage:
//
//	reg, err := registry.Load(ctx, fsys,
//	    registry.WithAssetBaseURL("https://raw.githubusercontent.com/org/dapps/main/repository"))
func WithAssetBaseURL(url string) Option {
	return func(opts *Options) {
		opts.AssetBaseURL = url
	}
}

// WithValidator reuses an existing schema validator.
func WithValidator(v *schema.Validator) Option {
	return func(opts *Options) {
		opts.Validator = v
	}
}

// WithConcurrency bounds how many project folders Load reads at once.
// Values below one are ignored.
func WithConcurrency(n int) Option {
	return func(opts *Options) {
		if n > 0 {
			opts.Concurrency = n
		}
	}
}

func buildOptions(opts []Option) *Options {
	o := &Options{}
	for _, opt := range opts {
		opt(o)
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.DiscardHandler)
	}
	if o.Concurrency <= 0 {
		o.Concurrency = runtime.GOMAXPROCS(0)
	}
	return o
}
