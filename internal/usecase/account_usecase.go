// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"medmatch/internal/domain/entity"
)

// --- Input DTOs ---

// SignupInput defines the data required to create a new account.
type SignupInput struct {
	Email    string
	Password string
}

// LoginInput defines the data required for an account holder to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// TokenPair carries the two session tokens issued together.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// AccountUsecase defines the interface for account and token business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AccountUsecase interface {
	// Signup creates a new account. A duplicate email is reported as an
	// account conflict; the database unique constraint is the only guard.
	Signup(ctx context.Context, input *SignupInput) (*entity.Account, error)

	// Login verifies credentials and returns the account. An unknown email
	// and a wrong password produce the same opaque failure.
	Login(ctx context.Context, input *LoginInput) (*entity.Account, error)

	// GenerateRefreshToken signs a refresh token for the given identity.
	// Pure signing, no storage lookup.
	GenerateRefreshToken(ctx context.Context, email, id string) (string, error)

	// GenerateAccessToken verifies a refresh token, re-checks the account it
	// names still exists with a matching id, and signs a fresh access token.
	GenerateAccessToken(ctx context.Context, refreshToken string) (string, error)

	// IssueTokens mints the refresh token and then derives the access token
	// from it, so every issuance round-trips through verification.
	IssueTokens(ctx context.Context, email, id string) (*TokenPair, error)
}
