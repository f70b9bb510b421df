package handler

import (
	"net/http"
	"time"

	"medmatch/internal/delivery/http/middleware"
	"medmatch/internal/delivery/http/response"
	"medmatch/internal/domain/entity"
	domainerrors "medmatch/internal/domain/errors"
	"medmatch/internal/errors"
	"medmatch/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ProfileHandler holds dependencies for user and profile handlers.
type ProfileHandler struct {
	uc usecase.ProfileUsecase
}

// NewProfileHandler is the constructor for ProfileHandler, injected by Fx.
func NewProfileHandler(uc usecase.ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{uc: uc}
}

type updateUserRequest struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Bio       string `json:"bio"`
}

type studentProfileRequest struct {
	School         string `json:"school" validate:"required"`
	FieldOfStudy   string `json:"fieldOfStudy" validate:"required"`
	GraduationYear int    `json:"graduationYear" validate:"required"`
}

type professionalProfileRequest struct {
	Specialty       string `json:"specialty" validate:"required"`
	Institution     string `json:"institution" validate:"required"`
	YearsOfPractice int    `json:"yearsOfPractice"`
	LicenseNumber   string `json:"licenseNumber"`
}

type studentProfileResponse struct {
	School         string `json:"school"`
	FieldOfStudy   string `json:"fieldOfStudy"`
	GraduationYear int    `json:"graduationYear"`
}

type professionalProfileResponse struct {
	Specialty       string `json:"specialty"`
	Institution     string `json:"institution"`
	YearsOfPractice int    `json:"yearsOfPractice"`
	LicenseNumber   string `json:"licenseNumber"`
}

type userResponse struct {
	ID                  string                       `json:"id"`
	FirstName           string                       `json:"firstName"`
	LastName            string                       `json:"lastName"`
	Bio                 string                       `json:"bio"`
	StudentProfile      *studentProfileResponse      `json:"studentProfile,omitempty"`
	ProfessionalProfile *professionalProfileResponse `json:"professionalProfile,omitempty"`
	CreatedAt           time.Time                    `json:"createdAt"`
	UpdatedAt           time.Time                    `json:"updatedAt"`
}

func toUserResponse(user *entity.User) userResponse {
	resp := userResponse{
		ID:        user.ID.String(),
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Bio:       user.Bio,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
	if user.StudentProfile != nil {
		resp.StudentProfile = &studentProfileResponse{
			School:         user.StudentProfile.School,
			FieldOfStudy:   user.StudentProfile.FieldOfStudy,
			GraduationYear: user.StudentProfile.GraduationYear,
		}
	}
	if user.ProfessionalProfile != nil {
		resp.ProfessionalProfile = &professionalProfileResponse{
			Specialty:       user.ProfessionalProfile.Specialty,
			Institution:     user.ProfessionalProfile.Institution,
			YearsOfPractice: user.ProfessionalProfile.YearsOfPractice,
			LicenseNumber:   user.ProfessionalProfile.LicenseNumber,
		}
	}

	return resp
}

// accountIDFromContext extracts the authenticated account ID stored by the
// auth middleware.
func accountIDFromContext(c echo.Context) (uuid.UUID, error) {
	accountID, ok := c.Get(middleware.ContextKeyAccountID).(uuid.UUID)
	if !ok {
		return uuid.Nil, errors.WithStack(domainerrors.ErrUnauthorized)
	}

	return accountID, nil
}

// GetMe returns the authenticated account's user with any profiles.
func (h *ProfileHandler) GetMe(c echo.Context) error {
	accountID, err := accountIDFromContext(c)
	if err != nil {
		return err
	}

	user, err := h.uc.GetOwnUser(c.Request().Context(), accountID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user), "User retrieved successfully")
}

// UpdateMe updates the authenticated account's user.
func (h *ProfileHandler) UpdateMe(c echo.Context) error {
	accountID, err := accountIDFromContext(c)
	if err != nil {
		return err
	}

	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Invalid user input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	user, err := h.uc.UpdateOwnUser(c.Request().Context(), accountID, &usecase.UpdateUserInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Bio:       req.Bio,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user), "User updated successfully")
}

// CreateStudentProfile attaches a student profile to the user.
func (h *ProfileHandler) CreateStudentProfile(c echo.Context) error {
	accountID, err := accountIDFromContext(c)
	if err != nil {
		return err
	}

	var req studentProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Invalid student profile input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	user, err := h.uc.CreateStudentProfile(c.Request().Context(), accountID, &usecase.StudentProfileInput{
		School:         req.School,
		FieldOfStudy:   req.FieldOfStudy,
		GraduationYear: req.GraduationYear,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toUserResponse(user), "Student profile created successfully")
}

// UpdateStudentProfile updates the user's student profile.
func (h *ProfileHandler) UpdateStudentProfile(c echo.Context) error {
	accountID, err := accountIDFromContext(c)
	if err != nil {
		return err
	}

	var req studentProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Invalid student profile input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	user, err := h.uc.UpdateStudentProfile(c.Request().Context(), accountID, &usecase.StudentProfileInput{
		School:         req.School,
		FieldOfStudy:   req.FieldOfStudy,
		GraduationYear: req.GraduationYear,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user), "Student profile updated successfully")
}

// CreateProfessionalProfile attaches a professional profile to the user.
func (h *ProfileHandler) CreateProfessionalProfile(c echo.Context) error {
	accountID, err := accountIDFromContext(c)
	if err != nil {
		return err
	}

	var req professionalProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Invalid professional profile input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	user, err := h.uc.CreateProfessionalProfile(c.Request().Context(), accountID, &usecase.ProfessionalProfileInput{
		Specialty:       req.Specialty,
		Institution:     req.Institution,
		YearsOfPractice: req.YearsOfPractice,
		LicenseNumber:   req.LicenseNumber,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toUserResponse(user), "Professional profile created successfully")
}

// UpdateProfessionalProfile updates the user's professional profile.
func (h *ProfileHandler) UpdateProfessionalProfile(c echo.Context) error {
	accountID, err := accountIDFromContext(c)
	if err != nil {
		return err
	}

	var req professionalProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Invalid professional profile input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	user, err := h.uc.UpdateProfessionalProfile(c.Request().Context(), accountID, &usecase.ProfessionalProfileInput{
		Specialty:       req.Specialty,
		Institution:     req.Institution,
		YearsOfPractice: req.YearsOfPractice,
		LicenseNumber:   req.LicenseNumber,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user), "Professional profile updated successfully")
}

// GetProfileQR renders a shareable QR code for the given user's profile.
func (h *ProfileHandler) GetProfileQR(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Invalid user ID")
	}

	png, err := h.uc.GenerateProfileQR(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
