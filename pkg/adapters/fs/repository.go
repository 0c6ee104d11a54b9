// Package fs stores source files on the local filesystem.
package fs

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/quotefix/quotefix/pkg/core"
)

// keptModeBits are the mode bits carried over to the rewritten file.
const keptModeBits = os.ModePerm | os.ModeSetuid | os.ModeSetgid | os.ModeSticky

// Repository implements core.Repository on the local disk.
type Repository struct {
	logger *slog.Logger
}

// NewRepository creates a filesystem repository. A nil logger falls back to slog.Default().
func NewRepository(logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{logger: logger}
}

// Load reads the whole file at path. Directories, devices and other
// non-regular files are rejected with core.ErrNotRegularFile.
func (r *Repository) Load(ctx context.Context, path string) (core.Source, error) {
	info, err := os.Stat(path)
	if err != nil {
		return core.Source{}, err
	}
	if !info.Mode().IsRegular() {
		return core.Source{}, fmt.Errorf("%s: %w", path, core.ErrNotRegularFile)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return core.Source{}, err
	}
	r.logger.Debug("source loaded", "path", path, "bytes", len(data))

	return core.Source{
		Path:    path,
		Content: string(data),
		Mode:    info.Mode() & keptModeBits,
	}, nil
}

// Save atomically replaces the file at src.Path. Symlinks are followed so the
// file they point to is rewritten, and a target without write permission is
// refused even though its directory would allow the rename.
func (r *Repository) Save(ctx context.Context, src core.Source) error {
	target, err := filepath.EvalSymlinks(src.Path)
	if err != nil {
		return err
	}

	f, err := os.OpenFile(target, os.O_WRONLY, 0)
	if err != nil {
		return fmt.Errorf("target is not writable: %w", err)
	}
	f.Close()

	mode := src.Mode & keptModeBits
	if mode.Perm() == 0 {
		mode |= 0o644
	}
	if err := replaceFile(target, []byte(src.Content), mode); err != nil {
		return err
	}
	r.logger.Debug("source saved", "path", src.Path, "target", target, "bytes", len(src.Content))
	return nil
}
