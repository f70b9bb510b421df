package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "medmatch/internal/domain/errors"
	"medmatch/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func renderError(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
	mw.HandleHTTPError(err, c)

	return rec
}

func TestErrorMiddleware_AppError(t *testing.T) {
	rec := renderError(t, domainerrors.ErrInvalidCredentials)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `"status":"error"`)
	assert.Contains(t, body, `"code":"INVALID_CREDENTIALS"`)
	assert.Contains(t, body, `"type":"Invalid email or password"`)
}

func TestErrorMiddleware_WrappedAppError(t *testing.T) {
	wrapped := errors.Wrap(domainerrors.NewAccountConflict("a@test.com"), "signup failed")

	rec := renderError(t, wrapped)

	assert.Equal(t, http.StatusConflict, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `"code":"ACCOUNT_CONFLICT"`)
	assert.Contains(t, body, "Account with email a@test.com already exists")
}

func TestErrorMiddleware_EchoHTTPError(t *testing.T) {
	rec := renderError(t, echo.NewHTTPError(http.StatusNotFound, "Not Found"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"HTTP_ERROR"`)
}

func TestErrorMiddleware_UnknownErrorIsOpaque(t *testing.T) {
	rec := renderError(t, errors.New("pq: connection refused to 10.0.0.5"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `"code":"INTERNAL_ERROR"`)
	assert.NotContains(t, body, "10.0.0.5")
}
