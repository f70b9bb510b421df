package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. Each user belongs to exactly one account.
type UserModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	AccountID uuid.UUID `gorm:"type:uuid;unique;not null"`
	FirstName string    `gorm:"type:varchar(100)"`
	LastName  string    `gorm:"type:varchar(100)"`
	Bio       string    `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time

	StudentProfile      *StudentProfileModel      `gorm:"foreignKey:UserID"`
	ProfessionalProfile *ProfessionalProfileModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// StudentProfileModel mirrors the 'student_profiles' table. UserID references users.id (UUID).
type StudentProfileModel struct {
	UserID         uuid.UUID `gorm:"primaryKey"`
	School         string    `gorm:"type:varchar(255)"`
	FieldOfStudy   string    `gorm:"type:varchar(255)"`
	GraduationYear int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (StudentProfileModel) TableName() string {
	return "student_profiles"
}

// ProfessionalProfileModel mirrors the 'professional_profiles' table. UserID references users.id (UUID).
type ProfessionalProfileModel struct {
	UserID          uuid.UUID `gorm:"primaryKey"`
	Specialty       string    `gorm:"type:varchar(255)"`
	Institution     string    `gorm:"type:varchar(255)"`
	YearsOfPractice int
	LicenseNumber   string `gorm:"type:varchar(100)"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProfessionalProfileModel) TableName() string {
	return "professional_profiles"
}
