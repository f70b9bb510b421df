package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"medmatch/config"
	"medmatch/internal/domain/service"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	accessSecret  string        // Secret key for signing access tokens.
	refreshSecret string        // Secret key for signing refresh tokens.
	accessTTL     time.Duration // Time-to-live for access tokens.
	refreshTTL    time.Duration // Time-to-live for refresh tokens.
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" || cfg.SecretKey.Refresh == "" {
		return nil, errors.New("jwt secrets must be provided")
	}

	return &jwtService{
		accessSecret:  cfg.SecretKey.Access,
		refreshSecret: cfg.SecretKey.Refresh,
		accessTTL:     time.Minute * 15,
		refreshTTL:    time.Hour * 24 * 7,
	}, nil
}

// SignAccess creates a short-lived access token for the given identity.
func (s *jwtService) SignAccess(email, id string) (string, error) {
	return s.signToken(email, id, s.accessTTL, s.accessSecret)
}

// SignRefresh creates a long-lived refresh token for the given identity.
func (s *jwtService) SignRefresh(email, id string) (string, error) {
	return s.signToken(email, id, s.refreshTTL, s.refreshSecret)
}

// VerifyAccess checks an access token and returns its claims.
func (s *jwtService) VerifyAccess(tokenString string) (*service.TokenClaims, error) {
	return s.verifyToken(tokenString, s.accessSecret)
}

// VerifyRefresh checks a refresh token and returns its claims.
func (s *jwtService) VerifyRefresh(tokenString string) (*service.TokenClaims, error) {
	return s.verifyToken(tokenString, s.refreshSecret)
}

// AccessTokenDuration returns the configured duration for access tokens.
func (s *jwtService) AccessTokenDuration() time.Duration {
	return s.accessTTL
}

// RefreshTokenDuration returns the configured duration for refresh tokens.
func (s *jwtService) RefreshTokenDuration() time.Duration {
	return s.refreshTTL
}

// signToken is a private helper to create a JWT with the identity claims.
func (s *jwtService) signToken(email, id string, ttl time.Duration, secret string) (string, error) {
	now := time.Now()
	claims := &service.TokenClaims{
		Email: email,
		ID:    id,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(secret))
}

// verifyToken checks the validity of a token string against a secret.
// Every failure collapses to service.ErrInvalidToken so callers cannot
// distinguish expiry from forgery.
func (s *jwtService) verifyToken(tokenString, secret string) (*service.TokenClaims, error) {
	claims := new(service.TokenClaims)
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, service.ErrInvalidToken
	}

	// Payload-shape rule: both identity claims must be present and non-empty.
	if claims.Email == "" || claims.ID == "" {
		return nil, service.ErrInvalidToken
	}

	return claims, nil
}
