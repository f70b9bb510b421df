// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "medmatch/internal/delivery/context"
	"medmatch/internal/domain/entity"
	domainerrors "medmatch/internal/domain/errors"
	"medmatch/internal/domain/repository"
	"medmatch/internal/domain/service"
	"medmatch/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager      repository.TransactionManager
	accountRepo    repository.AccountRepository
	hasher         service.PasswordHasher
	tokenService   service.TokenService
	eventPublisher service.EventPublisher
	logger         *slog.Logger
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	AccountRepo    repository.AccountRepository
	Hasher         service.PasswordHasher
	TokenService   service.TokenService
	EventPublisher service.EventPublisher
	Logger         *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all dependencies as interfaces.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		txManager:      params.TxManager,
		accountRepo:    params.AccountRepo,
		hasher:         params.Hasher,
		tokenService:   params.TokenService,
		eventPublisher: params.EventPublisher,
		logger:         params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// normalizeEmail lowercases and trims the submitted email. Every store access
// goes through this, so A@Test.com and a@test.com hit the same row.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Signup orchestrates the account creation process.
func (srv *accountService) Signup(ctx context.Context, input *usecase.SignupInput) (*entity.Account, error) {
	email := normalizeEmail(input.Email)
	srv.log(ctx).Info("Starting signup", slog.String("email", email))

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during signup", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password during signup")
	}

	newAccount := &entity.Account{
		Email:        email,
		PasswordHash: hashedPassword,
	}

	// No pre-existence check: the unique constraint on email is the single
	// arbiter, so two concurrent signups cannot both succeed.
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()
		userRepo := repoFactory.UserRepo()

		if err := accountRepo.Create(ctx, newAccount); err != nil {
			return err
		}

		// Every account gets an empty user record for profile data.
		newUser := &entity.User{AccountID: newAccount.ID}

		return userRepo.Create(ctx, newUser)
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			srv.log(ctx).Warn("Signup conflict", slog.String("email", email))

			return nil, domainerrors.NewAccountConflict(email)
		}
		srv.log(ctx).Error("Failed to execute signup transaction", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute signup transaction")
	}

	srv.publishRegisteredEvent(ctx, newAccount)

	srv.log(ctx).Debug("Signup completed", slog.Any("accountID", newAccount.ID))

	return newAccount, nil
}

// publishRegisteredEvent emits the signup audit event. Publishing failures are
// logged and swallowed; the account is already committed.
func (srv *accountService) publishRegisteredEvent(ctx context.Context, account *entity.Account) {
	event := &service.AccountEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Type:       service.AccountEventRegistered,
		AccountID:  account.ID.String(),
		Email:      account.Email,
		OccurredAt: time.Now().UTC(),
	}

	if err := srv.eventPublisher.PublishAccountEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish account registered event",
			slog.Any("accountID", account.ID),
			slog.Any("error", err),
		)
	}
}

// Login orchestrates the credential verification process.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*entity.Account, error) {
	email := normalizeEmail(input.Email)
	srv.log(ctx).Debug("Starting login", slog.String("email", email))

	account, err := srv.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			// Same error value as a wrong password, so the two responses
			// stay byte-identical.
			srv.log(ctx).Warn("Login failed", slog.String("email", email))

			return nil, domainerrors.ErrInvalidCredentials
		}
		srv.log(ctx).Error("Failed to load account during login", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to find account by email")
	}

	if !srv.hasher.Check(input.Password, account.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", email))

		return nil, domainerrors.ErrInvalidCredentials
	}

	srv.log(ctx).Debug("Login succeeded", slog.Any("accountID", account.ID))

	return account, nil
}

// GenerateRefreshToken signs a refresh token for the given identity.
// Pure signing: no storage access, valid for whatever identity is passed in.
func (srv *accountService) GenerateRefreshToken(ctx context.Context, email, id string) (string, error) {
	token, err := srv.tokenService.SignRefresh(email, id)
	if err != nil {
		srv.log(ctx).Error("Failed to sign refresh token", slog.Any("error", err))

		return "", errors.Wrap(err, "failed to sign refresh token")
	}

	return token, nil
}

// GenerateAccessToken exchanges a valid refresh token for a fresh access token.
// The account named by the claims is re-checked against the store; a deleted
// account or a stale id claim invalidates the token. Every failure collapses
// into the single opaque refresh-token error.
func (srv *accountService) GenerateAccessToken(ctx context.Context, refreshToken string) (string, error) {
	claims, err := srv.tokenService.VerifyRefresh(refreshToken)
	if err != nil {
		srv.log(ctx).Warn("Refresh token verification failed")

		return "", domainerrors.ErrRefreshTokenInvalid
	}

	account, err := srv.accountRepo.FindByEmail(ctx, normalizeEmail(claims.Email))
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			srv.log(ctx).Warn("Refresh token names an unknown account")

			return "", domainerrors.ErrRefreshTokenInvalid
		}
		srv.log(ctx).Error("Failed to load account for token refresh", slog.Any("error", err))

		return "", errors.Wrap(err, "failed to find account for token refresh")
	}

	if account.ID.String() != claims.ID {
		srv.log(ctx).Warn("Refresh token id claim does not match account", slog.Any("accountID", account.ID))

		return "", domainerrors.ErrRefreshTokenInvalid
	}

	accessToken, err := srv.tokenService.SignAccess(account.Email, account.ID.String())
	if err != nil {
		srv.log(ctx).Error("Failed to sign access token", slog.Any("error", err))

		return "", errors.Wrap(err, "failed to sign access token")
	}

	return accessToken, nil
}

// IssueTokens mints a refresh token and then derives the access token from it.
// Routing the access token through GenerateAccessToken makes every issuance
// re-verify that the account really exists with the claimed id.
func (srv *accountService) IssueTokens(ctx context.Context, email, id string) (*usecase.TokenPair, error) {
	refreshToken, err := srv.GenerateRefreshToken(ctx, email, id)
	if err != nil {
		return nil, err
	}

	accessToken, err := srv.GenerateAccessToken(ctx, refreshToken)
	if err != nil {
		srv.log(ctx).Error("Failed to derive access token during issuance", slog.Any("error", err))

		return nil, err
	}

	return &usecase.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
