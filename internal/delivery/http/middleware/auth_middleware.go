package middleware

import (
	"strings"

	domainerrors "medmatch/internal/domain/errors"
	"medmatch/internal/domain/service"
	"medmatch/internal/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Context keys set by Authenticate for downstream handlers.
const (
	ContextKeyAccountID = "accountID"
	ContextKeyEmail     = "email"
)

// AuthMiddleware provides middleware for JWT authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the Bearer access token and stores the account
// identity on the context. Every failure mode returns the same 401 so a
// caller cannot probe which check rejected the token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return errors.WithStack(domainerrors.ErrUnauthorized)
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			return errors.WithStack(domainerrors.ErrUnauthorized)
		}

		claims, err := m.tokenSvc.VerifyAccess(tokenString)
		if err != nil {
			return errors.WithStack(domainerrors.ErrUnauthorized)
		}

		accountID, err := uuid.Parse(claims.ID)
		if err != nil {
			return errors.WithStack(domainerrors.ErrUnauthorized)
		}

		// Set account info on the context for handlers to use
		c.Set(ContextKeyAccountID, accountID)
		c.Set(ContextKeyEmail, claims.Email)

		return next(c)
	}
}
