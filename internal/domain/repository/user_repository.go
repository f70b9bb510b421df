package repository

import (
	"context"
	"errors"

	"medmatch/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// ErrProfileExists is returned when creating a profile kind the user already has.
var ErrProfileExists = errors.New("profile already exists")

// UserRepository defines the standard operations for user persistence.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID, with profiles preloaded.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByAccountID retrieves the user linked to the given account, with profiles preloaded.
	FindByAccountID(ctx context.Context, accountID uuid.UUID) (*entity.User, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies an existing user entity in the storage.
	Update(ctx context.Context, user *entity.User) error

	// CreateStudentProfile persists a student profile for the user.
	// A second profile of the same kind is reported as ErrProfileExists.
	CreateStudentProfile(ctx context.Context, profile *entity.StudentProfile) error

	// UpdateStudentProfile modifies the user's existing student profile.
	UpdateStudentProfile(ctx context.Context, profile *entity.StudentProfile) error

	// CreateProfessionalProfile persists a professional profile for the user.
	// A second profile of the same kind is reported as ErrProfileExists.
	CreateProfessionalProfile(ctx context.Context, profile *entity.ProfessionalProfile) error

	// UpdateProfessionalProfile modifies the user's existing professional profile.
	UpdateProfessionalProfile(ctx context.Context, profile *entity.ProfessionalProfile) error
}
