package core

import (
	"context"
	"fmt"
	"io"
	"log/slog"
)

// Result describes the outcome of a single Fix call.
type Result struct {
	Path    string
	Rule    string
	Matches int
	Changed bool
	DryRun  bool
}

// Service applies a Rule to files held by a Repository.
type Service struct {
	repo   Repository
	rule   Rule
	logger *slog.Logger
	dryRun bool
}

// NewService creates a new Service for the given rule.
func NewService(repo Repository, rule Rule, logger *slog.Logger, dryRun bool) *Service {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Service{
		repo:   repo,
		rule:   rule,
		logger: logger,
		dryRun: dryRun,
	}
}

// Fix reads path, applies the rule and writes the result back.
// When nothing matches, the file is not written at all.
func (s *Service) Fix(ctx context.Context, path string) (Result, error) {
	res := Result{Path: path, Rule: s.rule.Name, DryRun: s.dryRun}
	if path == "" {
		return res, ErrEmptyPath
	}
	if err := ctx.Err(); err != nil {
		return res, err
	}

	src, err := s.repo.Load(ctx, path)
	if err != nil {
		return res, fmt.Errorf("failed to load %s: %w", path, err)
	}

	fixed, n := s.rule.Apply(src.Content)
	res.Matches = n
	s.logger.Debug("rule applied", "path", path, "rule", s.rule.Name, "matches", n)

	if n == 0 {
		return res, nil
	}
	res.Changed = true

	if s.dryRun {
		s.logger.Info("dry run, leaving file untouched", "path", path)
		return res, nil
	}

	if err := ctx.Err(); err != nil {
		return res, err
	}

	src.Content = fixed
	if err := s.repo.Save(ctx, src); err != nil {
		return res, fmt.Errorf("failed to save %s: %w", path, err)
	}
	s.logger.Info("file rewritten", "path", path, "matches", n)

	return res, nil
}
