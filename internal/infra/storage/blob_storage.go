// Package storage implements the FileStorage domain service on top of
// gocloud.dev blob buckets, so local disk and cloud backends share one code path.
package storage

import (
	"context"
	"io"
	"log/slog"

	"medmatch/config"
	"medmatch/internal/domain/lifecycle"
	"medmatch/internal/domain/service"
	"medmatch/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// bucket driver
	_ "gocloud.dev/blob/memblob"  // mem:// bucket driver, used in tests and dev
)

// blobStorage implements service.FileStorage backed by a gocloud.dev bucket.
type blobStorage struct {
	bucket *blob.Bucket
}

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// New opens the configured bucket and registers its shutdown hook.
func New(params Params) (service.FileStorage, error) {
	if params.Config.FileStorage == nil || params.Config.FileStorage.BucketURL == "" {
		return nil, errors.New("fileStorage.bucketUrl must be configured")
	}

	openCtx, cancel := context.WithTimeout(params.Ctx, lifecycle.DefaultTimeout)
	defer cancel()

	bucket, err := blob.OpenBucket(openCtx, params.Config.FileStorage.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", params.Config.FileStorage.BucketURL)
	}

	params.Logger.Info("Blob storage initialized",
		slog.String("bucket_url", params.Config.FileStorage.BucketURL),
	)

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	return &blobStorage{bucket: bucket}, nil
}

// NewWithBucket wraps an already-open bucket. Used by tests with memblob.
func NewWithBucket(bucket *blob.Bucket) service.FileStorage {
	return &blobStorage{bucket: bucket}
}

// Save writes the reader's contents under the given key.
func (s *blobStorage) Save(ctx context.Context, key, contentType string, r io.Reader) error {
	w, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return errors.Wrapf(err, "failed to open writer for %s", key)
	}

	if _, err := io.Copy(w, r); err != nil {
		// Closing after a failed copy aborts the write.
		_ = w.Close()

		return errors.Wrapf(err, "failed to write object %s", key)
	}

	if err := w.Close(); err != nil {
		return errors.Wrapf(err, "failed to finalize object %s", key)
	}

	return nil
}

// Open returns a reader over the object stored under key.
func (s *blobStorage) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	r, err := s.bucket.NewReader(ctx, key, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open object %s", key)
	}

	return r, nil
}

// Delete removes the object stored under key.
func (s *blobStorage) Delete(ctx context.Context, key string) error {
	if err := s.bucket.Delete(ctx, key); err != nil {
		return errors.Wrapf(err, "failed to delete object %s", key)
	}

	return nil
}
