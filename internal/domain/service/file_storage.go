package service

import (
	"context"
	"io"
)

// FileStorage defines the interface for storing and retrieving file bytes.
// Metadata lives in the database; this only handles the object payloads.
type FileStorage interface {
	// Save writes the reader's contents under the given key, overwriting any
	// existing object.
	Save(ctx context.Context, key, contentType string, r io.Reader) error

	// Open returns a reader over the object stored under key. The caller must
	// close the returned reader.
	Open(ctx context.Context, key string) (io.ReadCloser, error)

	// Delete removes the object stored under key.
	Delete(ctx context.Context, key string) error
}
