package repository

import (
	"context"
	"errors"

	"medmatch/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrFileNotFound is a domain-specific error returned when a file record is not found.
var ErrFileNotFound = errors.New("file not found")

// FileRepository defines the standard operations for file metadata persistence.
type FileRepository interface {
	// FindByID retrieves a single file record by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.File, error)

	// ListByAccountID retrieves all file records owned by the given account,
	// newest first.
	ListByAccountID(ctx context.Context, accountID uuid.UUID) ([]*entity.File, error)

	// Create persists a new file record.
	Create(ctx context.Context, file *entity.File) error

	// Delete removes the file record with the given ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
