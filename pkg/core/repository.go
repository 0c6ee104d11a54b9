package core

import (
	"context"
	"io/fs"
)

// Source is the full text of one file together with the mode it was read with.
type Source struct {
	Path    string
	Content string
	Mode    fs.FileMode
}

// Repository defines the contract for loading and storing source files.
// Keeping it behind an interface lets the service run against fakes in tests.
type Repository interface {
	// Load reads the whole file at path.
	Load(ctx context.Context, path string) (Source, error)

	// Save replaces the file at src.Path with src.Content, keeping src.Mode.
	Save(ctx context.Context, src Source) error
}
