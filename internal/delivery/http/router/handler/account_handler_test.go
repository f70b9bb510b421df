package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"medmatch/config"
	httpmiddleware "medmatch/internal/delivery/http/middleware"
	"medmatch/internal/delivery/http/validator"
	"medmatch/internal/domain/entity"
	domainerrors "medmatch/internal/domain/errors"
	mockSvc "medmatch/internal/mocks/service"
	mockUC "medmatch/internal/mocks/usecase"
	"medmatch/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type accountHandlerFixtures struct {
	handler  *AccountHandler
	uc       *mockUC.MockAccountUsecase
	tokenSvc *mockSvc.MockTokenService
	echo     *echo.Echo
}

func createTestAccountHandler(t *testing.T, env string) accountHandlerFixtures {
	t.Helper()

	uc := new(mockUC.MockAccountUsecase)
	tokenSvc := new(mockSvc.MockTokenService)
	tokenSvc.On("RefreshTokenDuration").Return(7 * 24 * time.Hour).Maybe()

	cfg := &config.Config{}
	cfg.Env.Env = env

	e := echo.New()
	e.Validator = validator.New()

	return accountHandlerFixtures{
		handler:  NewAccountHandler(uc, tokenSvc, cfg),
		uc:       uc,
		tokenSvc: tokenSvc,
		echo:     e,
	}
}

func findCookie(t *testing.T, rec *httptest.ResponseRecorder, name string) *http.Cookie {
	t.Helper()

	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}
	t.Fatalf("cookie %q not set", name)

	return nil
}

func TestAccountHandler_Signup(t *testing.T) {
	fx := createTestAccountHandler(t, "development")

	account := &entity.Account{ID: uuid.New(), Email: "a@test.com", EntryDate: time.Now()}
	fx.uc.On("Signup", mock.Anything, mock.AnythingOfType("*usecase.SignupInput")).Return(account, nil)
	fx.uc.On("IssueTokens", mock.Anything, "a@test.com", account.ID.String()).
		Return(&usecase.TokenPair{AccessToken: "access", RefreshToken: "refresh"}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/accounts/signup",
		strings.NewReader(`{"email":"A@Test.com","password":"secret-pw-1"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := fx.echo.NewContext(req, rec)

	require.NoError(t, fx.handler.Signup(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `"status":"success"`)
	assert.Contains(t, body, `"accessToken":"access"`)
	assert.Contains(t, body, `"refreshToken":"refresh"`)
	assert.NotContains(t, body, "passwordHash")

	cookie := findCookie(t, rec, "refreshToken")
	assert.Equal(t, "refresh", cookie.Value)
	assert.Equal(t, "/", cookie.Path)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, http.SameSiteStrictMode, cookie.SameSite)
	assert.False(t, cookie.Secure)
	assert.Equal(t, 604800, cookie.MaxAge)
}

func TestAccountHandler_Signup_ValidationFailure(t *testing.T) {
	fx := createTestAccountHandler(t, "development")

	req := httptest.NewRequest(http.MethodPost, "/api/accounts/signup",
		strings.NewReader(`{"email":"not-an-email","password":"secret-pw-1"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := fx.echo.NewContext(req, rec)

	err := fx.handler.Signup(c)

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
	fx.uc.AssertNotCalled(t, "Signup", mock.Anything, mock.Anything)
}

func TestAccountHandler_Login_SecureCookieInProduction(t *testing.T) {
	fx := createTestAccountHandler(t, "production")

	account := &entity.Account{ID: uuid.New(), Email: "a@test.com"}
	fx.uc.On("Login", mock.Anything, mock.Anything).Return(account, nil)
	fx.uc.On("IssueTokens", mock.Anything, account.Email, account.ID.String()).
		Return(&usecase.TokenPair{AccessToken: "access", RefreshToken: "refresh"}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/accounts/login",
		strings.NewReader(`{"email":"a@test.com","password":"secret-pw-1"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := fx.echo.NewContext(req, rec)

	require.NoError(t, fx.handler.Login(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	cookie := findCookie(t, rec, "refreshToken")
	assert.True(t, cookie.Secure)
}

func TestAccountHandler_Login_FailurePassesThroughUnchanged(t *testing.T) {
	fx := createTestAccountHandler(t, "development")

	fx.uc.On("Login", mock.Anything, mock.Anything).Return(nil, domainerrors.ErrInvalidCredentials)

	req := httptest.NewRequest(http.MethodPost, "/api/accounts/login",
		strings.NewReader(`{"email":"a@test.com","password":"wrong-password"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := fx.echo.NewContext(req, rec)

	err := fx.handler.Login(c)

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INVALID_CREDENTIALS", appErr.ErrorCode())
	assert.Equal(t, http.StatusUnauthorized, appErr.HTTPCode())
	fx.uc.AssertNotCalled(t, "IssueTokens", mock.Anything, mock.Anything, mock.Anything)
}

func TestAccountHandler_Logout_ClearsCookie(t *testing.T) {
	fx := createTestAccountHandler(t, "development")

	req := httptest.NewRequest(http.MethodPost, "/api/accounts/logout", nil)
	rec := httptest.NewRecorder()
	c := fx.echo.NewContext(req, rec)

	require.NoError(t, fx.handler.Logout(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	cookie := findCookie(t, rec, "refreshToken")
	assert.Empty(t, cookie.Value)
	assert.Equal(t, -1, cookie.MaxAge)
	assert.Equal(t, "/", cookie.Path)
	assert.True(t, cookie.HttpOnly)
}

func TestAccountHandler_RefreshAccessToken_FromCookie(t *testing.T) {
	fx := createTestAccountHandler(t, "development")

	fx.uc.On("GenerateAccessToken", mock.Anything, "cookie-token").Return("new-access", nil)

	req := httptest.NewRequest(http.MethodPost, "/api/accounts/token", nil)
	req.AddCookie(&http.Cookie{Name: "refreshToken", Value: "cookie-token"})
	rec := httptest.NewRecorder()
	c := fx.echo.NewContext(req, rec)

	require.NoError(t, fx.handler.RefreshAccessToken(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `"accessToken":"new-access"`)
	// The presented refresh token comes back unchanged.
	assert.Contains(t, body, `"refreshToken":"cookie-token"`)
}

func TestAccountHandler_RefreshAccessToken_CookieWinsOverBody(t *testing.T) {
	fx := createTestAccountHandler(t, "development")

	fx.uc.On("GenerateAccessToken", mock.Anything, "cookie-token").Return("new-access", nil)

	req := httptest.NewRequest(http.MethodPost, "/api/accounts/token",
		strings.NewReader(`{"refreshToken":"body-token"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.AddCookie(&http.Cookie{Name: "refreshToken", Value: "cookie-token"})
	rec := httptest.NewRecorder()
	c := fx.echo.NewContext(req, rec)

	require.NoError(t, fx.handler.RefreshAccessToken(c))

	fx.uc.AssertCalled(t, "GenerateAccessToken", mock.Anything, "cookie-token")
	fx.uc.AssertNotCalled(t, "GenerateAccessToken", mock.Anything, "body-token")
}

func TestAccountHandler_RefreshAccessToken_FromBody(t *testing.T) {
	fx := createTestAccountHandler(t, "development")

	fx.uc.On("GenerateAccessToken", mock.Anything, "body-token").Return("new-access", nil)

	req := httptest.NewRequest(http.MethodPost, "/api/accounts/token",
		strings.NewReader(`{"refreshToken":"body-token"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := fx.echo.NewContext(req, rec)

	require.NoError(t, fx.handler.RefreshAccessToken(c))

	assert.Contains(t, rec.Body.String(), `"refreshToken":"body-token"`)
}

func TestAccountHandler_RefreshAccessToken_MissingToken(t *testing.T) {
	fx := createTestAccountHandler(t, "development")

	req := httptest.NewRequest(http.MethodPost, "/api/accounts/token", nil)
	rec := httptest.NewRecorder()
	c := fx.echo.NewContext(req, rec)

	err := fx.handler.RefreshAccessToken(c)

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
	fx.uc.AssertNotCalled(t, "GenerateAccessToken", mock.Anything, mock.Anything)
}

func TestAccountHandler_RefreshAccessToken_InvalidToken(t *testing.T) {
	fx := createTestAccountHandler(t, "development")

	fx.uc.On("GenerateAccessToken", mock.Anything, "bad").Return("", domainerrors.ErrRefreshTokenInvalid)

	req := httptest.NewRequest(http.MethodPost, "/api/accounts/token", nil)
	req.AddCookie(&http.Cookie{Name: "refreshToken", Value: "bad"})
	rec := httptest.NewRecorder()
	c := fx.echo.NewContext(req, rec)

	err := fx.handler.RefreshAccessToken(c)

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INVALID_REFRESH_TOKEN", appErr.ErrorCode())
}

// Unknown-email and wrong-password failures must render identical envelopes.
func TestAccountHandler_Login_IndistinguishableFailureEnvelopes(t *testing.T) {
	render := func(t *testing.T) string {
		t.Helper()

		fx := createTestAccountHandler(t, "development")
		fx.uc.On("Login", mock.Anything, mock.Anything).Return(nil, domainerrors.ErrInvalidCredentials)

		req := httptest.NewRequest(http.MethodPost, "/api/accounts/login",
			strings.NewReader(`{"email":"a@test.com","password":"whatever-pw"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := fx.echo.NewContext(req, rec)

		err := fx.handler.Login(c)
		require.Error(t, err)

		errorMw := newTestErrorMiddleware(t)
		errorMw.HandleHTTPError(err, c)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)

		return rec.Body.String()
	}

	assert.Equal(t, render(t), render(t))
}

func newTestErrorMiddleware(t *testing.T) *httpmiddleware.ErrorMiddleware {
	t.Helper()

	return httpmiddleware.NewErrorMiddleware(newDiscardLogger())
}

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
