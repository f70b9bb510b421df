package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the profile-bearing record linked to an Account. It carries the
// person's public-facing data, while the Account keeps the credentials.
type User struct {
	ID                  uuid.UUID            // The unique identifier for the user record.
	AccountID           uuid.UUID            // Foreign key to the owning Account.
	FirstName           string               // The user's given name.
	LastName            string               // The user's family name.
	Bio                 string               // Free-form self description.
	StudentProfile      *StudentProfile      // Nil unless the user has filled in a student profile.
	ProfessionalProfile *ProfessionalProfile // Nil unless the user has filled in a professional profile.
	CreatedAt           time.Time            // Timestamp of when this user record was created.
	UpdatedAt           time.Time            // Timestamp of the last modification to this user's data.
}

// StudentProfile holds data specific to the "student" role.
type StudentProfile struct {
	UserID         uuid.UUID // Foreign key that links this profile to a core User entity.
	School         string    // The school the student attends.
	FieldOfStudy   string    // The student's declared field of study.
	GraduationYear int       // Expected graduation year.
	UpdatedAt      time.Time // Timestamp of the last modification to this profile.
}

// ProfessionalProfile holds data specific to the "professional" role.
type ProfessionalProfile struct {
	UserID          uuid.UUID // Foreign key that links this profile to a core User entity.
	Specialty       string    // The professional's medical specialty.
	Institution     string    // The institution the professional practices at.
	YearsOfPractice int       // Number of years in practice.
	LicenseNumber   string    // The professional's license number.
	UpdatedAt       time.Time // Timestamp of the last modification to this profile.
}
