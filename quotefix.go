package quotefix

import (
	"context"
	"log/slog"

	"github.com/quotefix/quotefix/internal/platform"
	"github.com/quotefix/quotefix/pkg/core"
)

// Version exposes the version of the tool.
const Version = "0.1.0"

// --- Types ---

// Result is a public alias for the outcome of a fix.
type Result = core.Result

// --- Configuration ---

// Option defines a functional option for configuring the fixer.
type Option = platform.Option

// WithLogger sets the logger for the service.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithDryRun reports what would change without writing.
func WithDryRun(dryRun bool) Option {
	return platform.WithDryRun(dryRun)
}

// WithRepository allows injecting a custom storage adapter.
func WithRepository(repo core.Repository) Option {
	return platform.WithRepository(repo)
}

// --- Factory ---

// New creates a fix service.
func New(opts ...Option) *core.Service {
	return platform.New(opts...)
}

// Fix applies the apology quote fix to the file at path.
func Fix(ctx context.Context, path string, opts ...Option) (Result, error) {
	return New(opts...).Fix(ctx, path)
}
