// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"medmatch/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAccountNotFound is a domain-specific error returned when an account is not found.
var ErrAccountNotFound = errors.New("account not found")

// ErrDuplicateEmail is returned when an insert collides with the unique email
// constraint. The database is the arbiter; callers never pre-check existence.
var ErrDuplicateEmail = errors.New("email already registered")

// AccountRepository defines the standard operations for account persistence.
// The application layer will depend on this interface, not the concrete implementation.
type AccountRepository interface {
	// FindByID retrieves a single account by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// FindByEmail retrieves a single account by its email address. The lookup
	// always hits the primary, so a just-created account is visible immediately.
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)

	// Create persists a new account. A unique-constraint collision on email is
	// reported as ErrDuplicateEmail.
	Create(ctx context.Context, account *entity.Account) error
}
