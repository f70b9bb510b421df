package usecase

import (
	"context"

	"medmatch/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// UpdateUserInput defines the editable fields of the user record.
type UpdateUserInput struct {
	FirstName string
	LastName  string
	Bio       string
}

// StudentProfileInput defines the data for creating or updating a student profile.
type StudentProfileInput struct {
	School         string
	FieldOfStudy   string
	GraduationYear int
}

// ProfessionalProfileInput defines the data for creating or updating a professional profile.
type ProfessionalProfileInput struct {
	Specialty       string
	Institution     string
	YearsOfPractice int
	LicenseNumber   string
}

// ProfileUsecase defines the interface for user and profile business operations.
type ProfileUsecase interface {
	// GetOwnUser returns the user record linked to the authenticated account.
	GetOwnUser(ctx context.Context, accountID uuid.UUID) (*entity.User, error)

	// UpdateOwnUser updates the user record linked to the authenticated account.
	UpdateOwnUser(ctx context.Context, accountID uuid.UUID, input *UpdateUserInput) (*entity.User, error)

	// CreateStudentProfile adds a student profile; a user holds at most one.
	CreateStudentProfile(ctx context.Context, accountID uuid.UUID, input *StudentProfileInput) (*entity.User, error)

	// UpdateStudentProfile modifies the existing student profile.
	UpdateStudentProfile(ctx context.Context, accountID uuid.UUID, input *StudentProfileInput) (*entity.User, error)

	// CreateProfessionalProfile adds a professional profile; a user holds at most one.
	CreateProfessionalProfile(ctx context.Context, accountID uuid.UUID, input *ProfessionalProfileInput) (*entity.User, error)

	// UpdateProfessionalProfile modifies the existing professional profile.
	UpdateProfessionalProfile(ctx context.Context, accountID uuid.UUID, input *ProfessionalProfileInput) (*entity.User, error)

	// GenerateProfileQR returns a PNG share code for the given user.
	GenerateProfileQR(ctx context.Context, userID uuid.UUID) ([]byte, error)
}
