package storage

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func TestBlobStorage_SaveOpenDelete(t *testing.T) {
	ctx := context.Background()
	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()

	store := NewWithBucket(bucket)

	err := store.Save(ctx, "accounts/a/resume.pdf", "application/pdf", strings.NewReader("file contents"))
	require.NoError(t, err)

	r, err := store.Open(ctx, "accounts/a/resume.pdf")
	require.NoError(t, err)
	data, err := io.ReadAll(r)
	require.NoError(t, err)
	require.NoError(t, r.Close())
	assert.Equal(t, "file contents", string(data))

	require.NoError(t, store.Delete(ctx, "accounts/a/resume.pdf"))

	_, err = store.Open(ctx, "accounts/a/resume.pdf")
	assert.Error(t, err)
}

func TestBlobStorage_OpenMissingKey(t *testing.T) {
	ctx := context.Background()
	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()

	store := NewWithBucket(bucket)

	_, err := store.Open(ctx, "does/not/exist")
	assert.Error(t, err)
}

func TestBlobStorage_SaveOverwrites(t *testing.T) {
	ctx := context.Background()
	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()

	store := NewWithBucket(bucket)

	require.NoError(t, store.Save(ctx, "k", "text/plain", strings.NewReader("first")))
	require.NoError(t, store.Save(ctx, "k", "text/plain", strings.NewReader("second")))

	r, err := store.Open(ctx, "k")
	require.NoError(t, err)
	data, err := io.ReadAll(r)
	require.NoError(t, err)
	require.NoError(t, r.Close())
	assert.Equal(t, "second", string(data))
}
