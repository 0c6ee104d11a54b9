package platform

import (
	"io"
	"log/slog"

	"github.com/quotefix/quotefix/pkg/adapters/fs"
	"github.com/quotefix/quotefix/pkg/core"
)

// New wires a core.Service that applies the apology quote fix.
//
//	svc := platform.New(platform.WithDryRun(true))
func New(opts ...Option) *core.Service {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	logger := o.logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	repo := o.repository
	if repo == nil {
		repo = fs.NewRepository(logger)
	}

	return core.NewService(repo, core.ApologyQuoteRule, logger, o.dryRun)
}
