package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"medmatch/internal/delivery/http/middleware"
	"medmatch/internal/delivery/http/validator"
	"medmatch/internal/domain/entity"
	domainerrors "medmatch/internal/domain/errors"
	mockUC "medmatch/internal/mocks/usecase"
	"medmatch/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type profileHandlerFixtures struct {
	handler *ProfileHandler
	uc      *mockUC.MockProfileUsecase
	echo    *echo.Echo
}

func createTestProfileHandler(t *testing.T) profileHandlerFixtures {
	t.Helper()

	uc := new(mockUC.MockProfileUsecase)
	e := echo.New()
	e.Validator = validator.New()

	return profileHandlerFixtures{
		handler: NewProfileHandler(uc),
		uc:      uc,
		echo:    e,
	}
}

func authedContext(fx profileHandlerFixtures, req *http.Request, rec *httptest.ResponseRecorder, accountID uuid.UUID) echo.Context {
	c := fx.echo.NewContext(req, rec)
	c.Set(middleware.ContextKeyAccountID, accountID)
	c.Set(middleware.ContextKeyEmail, "a@test.com")

	return c
}

func TestProfileHandler_GetMe(t *testing.T) {
	fx := createTestProfileHandler(t)

	accountID := uuid.New()
	user := &entity.User{
		ID:        uuid.New(),
		AccountID: accountID,
		FirstName: "Ada",
		StudentProfile: &entity.StudentProfile{
			School:         "Johns Hopkins",
			FieldOfStudy:   "Medicine",
			GraduationYear: 2028,
		},
	}
	fx.uc.On("GetOwnUser", mock.Anything, accountID).Return(user, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
	rec := httptest.NewRecorder()
	c := authedContext(fx, req, rec, accountID)

	require.NoError(t, fx.handler.GetMe(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `"firstName":"Ada"`)
	assert.Contains(t, body, `"school":"Johns Hopkins"`)
	assert.NotContains(t, body, "professionalProfile")
}

func TestProfileHandler_GetMe_MissingIdentity(t *testing.T) {
	fx := createTestProfileHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
	rec := httptest.NewRecorder()
	c := fx.echo.NewContext(req, rec)

	err := fx.handler.GetMe(c)

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "UNAUTHORIZED", appErr.ErrorCode())
	fx.uc.AssertNotCalled(t, "GetOwnUser", mock.Anything, mock.Anything)
}

func TestProfileHandler_UpdateMe(t *testing.T) {
	fx := createTestProfileHandler(t)

	accountID := uuid.New()
	user := &entity.User{ID: uuid.New(), AccountID: accountID, FirstName: "Grace", LastName: "Hopper"}
	fx.uc.On("UpdateOwnUser", mock.Anything, accountID, mock.AnythingOfType("*usecase.UpdateUserInput")).
		Run(func(args mock.Arguments) {
			input := args.Get(2).(*usecase.UpdateUserInput)
			assert.Equal(t, "Grace", input.FirstName)
		}).
		Return(user, nil)

	req := httptest.NewRequest(http.MethodPut, "/api/users/me",
		strings.NewReader(`{"firstName":"Grace","lastName":"Hopper","bio":"Navy"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := authedContext(fx, req, rec, accountID)

	require.NoError(t, fx.handler.UpdateMe(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestProfileHandler_CreateStudentProfile(t *testing.T) {
	fx := createTestProfileHandler(t)

	accountID := uuid.New()
	user := &entity.User{ID: uuid.New(), AccountID: accountID}
	fx.uc.On("CreateStudentProfile", mock.Anything, accountID, mock.AnythingOfType("*usecase.StudentProfileInput")).
		Return(user, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/profiles/student",
		strings.NewReader(`{"school":"Johns Hopkins","fieldOfStudy":"Medicine","graduationYear":2028}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := authedContext(fx, req, rec, accountID)

	require.NoError(t, fx.handler.CreateStudentProfile(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestProfileHandler_CreateStudentProfile_Conflict(t *testing.T) {
	fx := createTestProfileHandler(t)

	accountID := uuid.New()
	fx.uc.On("CreateStudentProfile", mock.Anything, accountID, mock.Anything).
		Return(nil, domainerrors.ErrProfileConflict)

	req := httptest.NewRequest(http.MethodPost, "/api/profiles/student",
		strings.NewReader(`{"school":"X","fieldOfStudy":"Y","graduationYear":2028}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := authedContext(fx, req, rec, accountID)

	err := fx.handler.CreateStudentProfile(c)

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "PROFILE_CONFLICT", appErr.ErrorCode())
}

func TestProfileHandler_UpdateProfessionalProfile_ValidationFailure(t *testing.T) {
	fx := createTestProfileHandler(t)

	req := httptest.NewRequest(http.MethodPut, "/api/profiles/professional",
		strings.NewReader(`{"institution":"General Hospital"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := authedContext(fx, req, rec, uuid.New())

	err := fx.handler.UpdateProfessionalProfile(c)

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
	fx.uc.AssertNotCalled(t, "UpdateProfessionalProfile", mock.Anything, mock.Anything, mock.Anything)
}

func TestProfileHandler_GetProfileQR(t *testing.T) {
	fx := createTestProfileHandler(t)

	userID := uuid.New()
	png := []byte{0x89, 0x50, 0x4E, 0x47}
	fx.uc.On("GenerateProfileQR", mock.Anything, userID).Return(png, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/profiles/"+userID.String()+"/qr", nil)
	rec := httptest.NewRecorder()
	c := authedContext(fx, req, rec, uuid.New())
	c.SetParamNames("user_id")
	c.SetParamValues(userID.String())

	require.NoError(t, fx.handler.GetProfileQR(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, png, rec.Body.Bytes())
}

func TestProfileHandler_GetProfileQR_BadUserID(t *testing.T) {
	fx := createTestProfileHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/profiles/not-a-uuid/qr", nil)
	rec := httptest.NewRecorder()
	c := authedContext(fx, req, rec, uuid.New())
	c.SetParamNames("user_id")
	c.SetParamValues("not-a-uuid")

	require.NoError(t, fx.handler.GetProfileQR(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
	fx.uc.AssertNotCalled(t, "GenerateProfileQR", mock.Anything, mock.Anything)
}
