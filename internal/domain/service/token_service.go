package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"medmatch/internal/errors"
)

// ErrInvalidToken is the single opaque failure for every verification path:
// bad signature, wrong secret, expired, malformed, or missing claims. Callers
// must not be able to tell these apart.
var ErrInvalidToken = errors.New("invalid token")

// TokenClaims defines the custom claims carried by both token kinds.
type TokenClaims struct {
	Email string `json:"email"`
	ID    string `json:"id"` // Account ID as a string.
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating JWTs.
// Access and refresh tokens are signed with separate secrets, so a token of
// one kind never verifies as the other.
type TokenService interface {
	// SignAccess creates a short-lived access token for the given identity.
	SignAccess(email, id string) (string, error)

	// SignRefresh creates a long-lived refresh token for the given identity.
	SignRefresh(email, id string) (string, error)

	// VerifyAccess checks an access token and returns its claims.
	// Any failure is reported as ErrInvalidToken.
	VerifyAccess(tokenString string) (*TokenClaims, error)

	// VerifyRefresh checks a refresh token and returns its claims.
	// Any failure is reported as ErrInvalidToken.
	VerifyRefresh(tokenString string) (*TokenClaims, error)

	// AccessTokenDuration returns the configured lifetime of access tokens.
	AccessTokenDuration() time.Duration

	// RefreshTokenDuration returns the configured lifetime of refresh tokens.
	// The session cookie maxAge is derived from this value so the two cannot drift.
	RefreshTokenDuration() time.Duration
}
