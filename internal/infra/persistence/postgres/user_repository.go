package postgres

import (
	"context"

	"medmatch/internal/domain/entity"
	domainerrors "medmatch/internal/domain/errors"
	"medmatch/internal/domain/repository"
	"medmatch/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements the domain.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByID retrieves a single user by their unique ID, preloading their profiles.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Preload("StudentProfile").
		Preload("ProfessionalProfile").
		Where("id = ?", id).
		First(&userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return toUserDomain(&userM), nil
}

// FindByAccountID retrieves the user linked to the given account, preloading profiles.
func (repo *userRepository) FindByAccountID(ctx context.Context, accountID uuid.UUID) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Preload("StudentProfile").
		Preload("ProfessionalProfile").
		Where("account_id = ?", accountID).
		First(&userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by account id")
	}

	return toUserDomain(&userM), nil
}

// Create persists a new user entity to the database.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "user already exists for this account")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "invalid account reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// Update modifies an existing user entity in the database. Profiles are
// managed through their own methods, so only the user columns are written.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	err := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", userM.ID).
		Updates(map[string]any{
			"first_name": userM.FirstName,
			"last_name":  userM.LastName,
			"bio":        userM.Bio,
		}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update user")
	}

	return nil
}

// CreateStudentProfile persists a student profile for the user.
func (repo *userRepository) CreateStudentProfile(ctx context.Context, profile *entity.StudentProfile) error {
	profileM := fromStudentProfileDomain(profile)

	if err := repo.db.WithContext(ctx).Create(profileM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrProfileExists
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create student profile")
	}

	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

// UpdateStudentProfile modifies the user's existing student profile.
func (repo *userRepository) UpdateStudentProfile(ctx context.Context, profile *entity.StudentProfile) error {
	profileM := fromStudentProfileDomain(profile)

	result := repo.db.WithContext(ctx).
		Model(&model.StudentProfileModel{}).
		Where("user_id = ?", profileM.UserID).
		Updates(map[string]any{
			"school":          profileM.School,
			"field_of_study":  profileM.FieldOfStudy,
			"graduation_year": profileM.GraduationYear,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update student profile")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// CreateProfessionalProfile persists a professional profile for the user.
func (repo *userRepository) CreateProfessionalProfile(ctx context.Context, profile *entity.ProfessionalProfile) error {
	profileM := fromProfessionalProfileDomain(profile)

	if err := repo.db.WithContext(ctx).Create(profileM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrProfileExists
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create professional profile")
	}

	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

// UpdateProfessionalProfile modifies the user's existing professional profile.
func (repo *userRepository) UpdateProfessionalProfile(ctx context.Context, profile *entity.ProfessionalProfile) error {
	profileM := fromProfessionalProfileDomain(profile)

	result := repo.db.WithContext(ctx).
		Model(&model.ProfessionalProfileModel{}).
		Where("user_id = ?", profileM.UserID).
		Updates(map[string]any{
			"specialty":         profileM.Specialty,
			"institution":       profileM.Institution,
			"years_of_practice": profileM.YearsOfPractice,
			"license_number":    profileM.LicenseNumber,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update professional profile")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:                  data.ID,
		AccountID:           data.AccountID,
		FirstName:           data.FirstName,
		LastName:            data.LastName,
		Bio:                 data.Bio,
		StudentProfile:      toStudentProfileDomain(data.StudentProfile),
		ProfessionalProfile: toProfessionalProfileDomain(data.ProfessionalProfile),
		CreatedAt:           data.CreatedAt,
		UpdatedAt:           data.UpdatedAt,
	}
}

// fromUserDomain converts a domain User entity to a GORM UserModel for persistence.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:        data.ID,
		AccountID: data.AccountID,
		FirstName: data.FirstName,
		LastName:  data.LastName,
		Bio:       data.Bio,
	}
}

// toStudentProfileDomain converts a GORM StudentProfileModel to a domain StudentProfile entity.
func toStudentProfileDomain(data *model.StudentProfileModel) *entity.StudentProfile {
	if data == nil {
		return nil
	}

	return &entity.StudentProfile{
		UserID:         data.UserID,
		School:         data.School,
		FieldOfStudy:   data.FieldOfStudy,
		GraduationYear: data.GraduationYear,
		UpdatedAt:      data.UpdatedAt,
	}
}

// fromStudentProfileDomain converts a domain StudentProfile entity to a GORM StudentProfileModel.
func fromStudentProfileDomain(data *entity.StudentProfile) *model.StudentProfileModel {
	if data == nil {
		return nil
	}

	return &model.StudentProfileModel{
		UserID:         data.UserID,
		School:         data.School,
		FieldOfStudy:   data.FieldOfStudy,
		GraduationYear: data.GraduationYear,
	}
}

// toProfessionalProfileDomain converts a GORM ProfessionalProfileModel to a domain ProfessionalProfile entity.
func toProfessionalProfileDomain(data *model.ProfessionalProfileModel) *entity.ProfessionalProfile {
	if data == nil {
		return nil
	}

	return &entity.ProfessionalProfile{
		UserID:          data.UserID,
		Specialty:       data.Specialty,
		Institution:     data.Institution,
		YearsOfPractice: data.YearsOfPractice,
		LicenseNumber:   data.LicenseNumber,
		UpdatedAt:       data.UpdatedAt,
	}
}

// fromProfessionalProfileDomain converts a domain ProfessionalProfile entity to a GORM ProfessionalProfileModel.
func fromProfessionalProfileDomain(data *entity.ProfessionalProfile) *model.ProfessionalProfileModel {
	if data == nil {
		return nil
	}

	return &model.ProfessionalProfileModel{
		UserID:          data.UserID,
		Specialty:       data.Specialty,
		Institution:     data.Institution,
		YearsOfPractice: data.YearsOfPractice,
		LicenseNumber:   data.LicenseNumber,
	}
}
