package storage

import (
	"context"
	"io"
)

// FileStorage holds employee reference photos. Paths are relative keys
// under the store root.
type FileStorage interface {
	// Upload writes a file and returns its storage key.
	Upload(ctx context.Context, file io.Reader, path string) (string, error)

	// Delete removes a file; deleting a missing file is not an error.
	Delete(ctx context.Context, path string) error

	// URL returns the public URL for a stored file.
	URL(path string) string

	// Exists checks if a file exists.
	Exists(ctx context.Context, path string) (bool, error)
}
