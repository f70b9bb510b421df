package impl

import (
	"context"
	"log/slog"

	deliverycontext "medmatch/internal/delivery/context"
	"medmatch/internal/domain/entity"
	domainerrors "medmatch/internal/domain/errors"
	"medmatch/internal/domain/repository"
	"medmatch/internal/domain/service"
	"medmatch/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	userRepo      repository.UserRepository
	qrcodeService service.QRCodeService
	logger        *slog.Logger
}

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	UserRepo      repository.UserRepository
	QRCodeService service.QRCodeService
	Logger        *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		userRepo:      params.UserRepo,
		qrcodeService: params.QRCodeService,
		logger:        params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// loadUser resolves the user record behind an authenticated account.
func (srv *profileService) loadUser(ctx context.Context, accountID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByAccountID(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("no user record for account")
		}

		return nil, errors.Wrap(err, "failed to load user by account id")
	}

	return user, nil
}

// GetOwnUser returns the user record linked to the authenticated account.
func (srv *profileService) GetOwnUser(ctx context.Context, accountID uuid.UUID) (*entity.User, error) {
	return srv.loadUser(ctx, accountID)
}

// UpdateOwnUser updates the editable user fields and returns the fresh record.
func (srv *profileService) UpdateOwnUser(ctx context.Context, accountID uuid.UUID, input *usecase.UpdateUserInput) (*entity.User, error) {
	user, err := srv.loadUser(ctx, accountID)
	if err != nil {
		return nil, err
	}

	user.FirstName = input.FirstName
	user.LastName = input.LastName
	user.Bio = input.Bio

	if err := srv.userRepo.Update(ctx, user); err != nil {
		srv.log(ctx).Error("Failed to update user", slog.Any("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update user")
	}

	srv.log(ctx).Debug("User updated", slog.Any("userID", user.ID))

	return srv.loadUser(ctx, accountID)
}

// CreateStudentProfile adds a student profile to the user.
func (srv *profileService) CreateStudentProfile(ctx context.Context, accountID uuid.UUID, input *usecase.StudentProfileInput) (*entity.User, error) {
	user, err := srv.loadUser(ctx, accountID)
	if err != nil {
		return nil, err
	}

	profile := &entity.StudentProfile{
		UserID:         user.ID,
		School:         input.School,
		FieldOfStudy:   input.FieldOfStudy,
		GraduationYear: input.GraduationYear,
	}

	if err := srv.userRepo.CreateStudentProfile(ctx, profile); err != nil {
		if errors.Is(err, repository.ErrProfileExists) {
			srv.log(ctx).Warn("Student profile already exists", slog.Any("userID", user.ID))

			return nil, domainerrors.ErrProfileConflict
		}

		return nil, errors.Wrap(err, "failed to create student profile")
	}

	srv.log(ctx).Info("Student profile created", slog.Any("userID", user.ID))

	return srv.loadUser(ctx, accountID)
}

// UpdateStudentProfile modifies the user's existing student profile.
func (srv *profileService) UpdateStudentProfile(ctx context.Context, accountID uuid.UUID, input *usecase.StudentProfileInput) (*entity.User, error) {
	user, err := srv.loadUser(ctx, accountID)
	if err != nil {
		return nil, err
	}

	if user.StudentProfile == nil {
		return nil, domainerrors.ErrNotFound.WrapMessage("student profile does not exist")
	}

	profile := &entity.StudentProfile{
		UserID:         user.ID,
		School:         input.School,
		FieldOfStudy:   input.FieldOfStudy,
		GraduationYear: input.GraduationYear,
	}

	if err := srv.userRepo.UpdateStudentProfile(ctx, profile); err != nil {
		return nil, errors.Wrap(err, "failed to update student profile")
	}

	return srv.loadUser(ctx, accountID)
}

// CreateProfessionalProfile adds a professional profile to the user.
func (srv *profileService) CreateProfessionalProfile(ctx context.Context, accountID uuid.UUID, input *usecase.ProfessionalProfileInput) (*entity.User, error) {
	user, err := srv.loadUser(ctx, accountID)
	if err != nil {
		return nil, err
	}

	profile := &entity.ProfessionalProfile{
		UserID:          user.ID,
		Specialty:       input.Specialty,
		Institution:     input.Institution,
		YearsOfPractice: input.YearsOfPractice,
		LicenseNumber:   input.LicenseNumber,
	}

	if err := srv.userRepo.CreateProfessionalProfile(ctx, profile); err != nil {
		if errors.Is(err, repository.ErrProfileExists) {
			srv.log(ctx).Warn("Professional profile already exists", slog.Any("userID", user.ID))

			return nil, domainerrors.ErrProfileConflict
		}

		return nil, errors.Wrap(err, "failed to create professional profile")
	}

	srv.log(ctx).Info("Professional profile created", slog.Any("userID", user.ID))

	return srv.loadUser(ctx, accountID)
}

// UpdateProfessionalProfile modifies the user's existing professional profile.
func (srv *profileService) UpdateProfessionalProfile(ctx context.Context, accountID uuid.UUID, input *usecase.ProfessionalProfileInput) (*entity.User, error) {
	user, err := srv.loadUser(ctx, accountID)
	if err != nil {
		return nil, err
	}

	if user.ProfessionalProfile == nil {
		return nil, domainerrors.ErrNotFound.WrapMessage("professional profile does not exist")
	}

	profile := &entity.ProfessionalProfile{
		UserID:          user.ID,
		Specialty:       input.Specialty,
		Institution:     input.Institution,
		YearsOfPractice: input.YearsOfPractice,
		LicenseNumber:   input.LicenseNumber,
	}

	if err := srv.userRepo.UpdateProfessionalProfile(ctx, profile); err != nil {
		return nil, errors.Wrap(err, "failed to update professional profile")
	}

	return srv.loadUser(ctx, accountID)
}

// GenerateProfileQR returns a PNG share code for the given user.
func (srv *profileService) GenerateProfileQR(ctx context.Context, userID uuid.UUID) ([]byte, error) {
	// Confirm the user exists before minting a code for them.
	if _, err := srv.userRepo.FindByID(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("user does not exist")
		}

		return nil, errors.Wrap(err, "failed to load user for QR generation")
	}

	pngBytes, err := srv.qrcodeService.GenerateProfileQR(userID)
	if err != nil {
		srv.log(ctx).Error("Failed to generate profile QR", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate profile QR")
	}

	return pngBytes, nil
}
