package platform

import (
	"log/slog"

	"github.com/quotefix/quotefix/pkg/core"
)

// options holds the internal configuration for the fix service.
type options struct {
	repository core.Repository
	logger     *slog.Logger
	dryRun     bool
}

// Option defines a functional option for configuring the fix service.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		repository: nil,
		logger:     nil,
		dryRun:     false,
	}
}

// WithLogger sets the logger for the service.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithDryRun reports what would change without touching the file.
func WithDryRun(dryRun bool) Option {
	return func(o *options) {
		o.dryRun = dryRun
	}
}

// WithRepository allows injecting a custom storage adapter (e.g. mock).
// If provided, the default filesystem adapter will be skipped.
func WithRepository(repo core.Repository) Option {
	return func(o *options) {
		o.repository = repo
	}
}
