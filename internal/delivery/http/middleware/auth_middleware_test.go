package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "medmatch/internal/domain/errors"
	"medmatch/internal/domain/service"
	mockSvc "medmatch/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func runAuthenticate(t *testing.T, tokenSvc *mockSvc.MockTokenService, authHeader string) (echo.Context, error) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := NewAuthMiddleware(tokenSvc)
	next := func(c echo.Context) error { return nil }

	return c, mw.Authenticate(next)(c)
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	tokenSvc := new(mockSvc.MockTokenService)
	accountID := uuid.New()
	tokenSvc.On("VerifyAccess", "valid-token").Return(&service.TokenClaims{
		Email: "a@test.com",
		ID:    accountID.String(),
	}, nil)

	c, err := runAuthenticate(t, tokenSvc, "Bearer valid-token")

	require.NoError(t, err)
	assert.Equal(t, accountID, c.Get(ContextKeyAccountID))
	assert.Equal(t, "a@test.com", c.Get(ContextKeyEmail))
}

func TestAuthMiddleware_Failures(t *testing.T) {
	tests := []struct {
		name       string
		authHeader string
		setupMock  func(tokenSvc *mockSvc.MockTokenService)
	}{
		{
			name:       "missing header",
			authHeader: "",
		},
		{
			name:       "not a bearer token",
			authHeader: "Basic dXNlcjpwYXNz",
		},
		{
			name:       "empty bearer token",
			authHeader: "Bearer ",
		},
		{
			name:       "verification fails",
			authHeader: "Bearer bad-token",
			setupMock: func(tokenSvc *mockSvc.MockTokenService) {
				tokenSvc.On("VerifyAccess", "bad-token").Return(nil, service.ErrInvalidToken)
			},
		},
		{
			name:       "id claim is not a uuid",
			authHeader: "Bearer odd-token",
			setupMock: func(tokenSvc *mockSvc.MockTokenService) {
				tokenSvc.On("VerifyAccess", "odd-token").Return(&service.TokenClaims{
					Email: "a@test.com",
					ID:    "not-a-uuid",
				}, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenSvc := new(mockSvc.MockTokenService)
			if tt.setupMock != nil {
				tt.setupMock(tokenSvc)
			}

			c, err := runAuthenticate(t, tokenSvc, tt.authHeader)

			require.Error(t, err)
			// Every rejection carries the same opaque 401.
			var appErr domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, "UNAUTHORIZED", appErr.ErrorCode())
			assert.Equal(t, http.StatusUnauthorized, appErr.HTTPCode())
			assert.Nil(t, c.Get(ContextKeyAccountID))
		})
	}
}

func TestAuthMiddleware_NextHandlerRuns(t *testing.T) {
	tokenSvc := new(mockSvc.MockTokenService)
	tokenSvc.On("VerifyAccess", mock.Anything).Return(&service.TokenClaims{
		Email: "a@test.com",
		ID:    uuid.New().String(),
	}, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer ok")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	next := func(c echo.Context) error {
		called = true

		return nil
	}

	require.NoError(t, NewAuthMiddleware(tokenSvc).Authenticate(next)(c))
	assert.True(t, called)
}
