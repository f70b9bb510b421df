package usecase

import (
	"context"
	"io"

	"medmatch/internal/domain/entity"

	"github.com/google/uuid"
)

// UploadFileInput defines the data required to store an uploaded file.
type UploadFileInput struct {
	AccountID   uuid.UUID
	Name        string
	ContentType string
	Size        int64
	Content     io.Reader
}

// FileUsecase defines the interface for file upload business operations.
// Ownership is always checked: an account only sees its own files.
type FileUsecase interface {
	// Upload stores the file bytes and records its metadata.
	Upload(ctx context.Context, input *UploadFileInput) (*entity.File, error)

	// List returns the metadata of all files owned by the account, newest first.
	List(ctx context.Context, accountID uuid.UUID) ([]*entity.File, error)

	// Download returns the metadata and a reader over the file bytes.
	// The caller must close the returned reader.
	Download(ctx context.Context, accountID, fileID uuid.UUID) (*entity.File, io.ReadCloser, error)

	// Delete removes both the stored bytes and the metadata record.
	Delete(ctx context.Context, accountID, fileID uuid.UUID) error
}
