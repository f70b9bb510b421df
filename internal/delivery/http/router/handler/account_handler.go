// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"
	"time"

	"medmatch/config"
	"medmatch/internal/delivery/http/response"
	"medmatch/internal/domain/entity"
	domainerrors "medmatch/internal/domain/errors"
	"medmatch/internal/domain/service"
	"medmatch/internal/errors"
	"medmatch/internal/usecase"

	"github.com/labstack/echo/v4"
)

// refreshCookieName is the cookie carrying the refresh token between
// requests. The token itself is never stored server-side.
const refreshCookieName = "refreshToken"

// AccountHandler holds dependencies for account and session handlers.
type AccountHandler struct {
	uc       usecase.AccountUsecase
	tokenSvc service.TokenService
	cfg      *config.Config
}

// NewAccountHandler is the constructor for AccountHandler, injected by Fx.
func NewAccountHandler(uc usecase.AccountUsecase, tokenSvc service.TokenService, cfg *config.Config) *AccountHandler {
	return &AccountHandler{
		uc:       uc,
		tokenSvc: tokenSvc,
		cfg:      cfg,
	}
}

type signupRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// accountResponse is the wire shape of an account. The password hash never
// leaves the server.
type accountResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	EntryDate time.Time `json:"entryDate"`
}

type sessionResponse struct {
	Account      accountResponse `json:"account"`
	AccessToken  string          `json:"accessToken"`
	RefreshToken string          `json:"refreshToken"`
}

type tokenResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

func toAccountResponse(account *entity.Account) accountResponse {
	return accountResponse{
		ID:        account.ID.String(),
		Email:     account.Email,
		EntryDate: account.EntryDate,
	}
}

// Signup handles the account registration request.
func (h *AccountHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Invalid signup input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	ctx := c.Request().Context()

	account, err := h.uc.Signup(ctx, &usecase.SignupInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	tokens, err := h.uc.IssueTokens(ctx, account.Email, account.ID.String())
	if err != nil {
		return errors.WithStack(err)
	}

	c.SetCookie(h.newRefreshCookie(tokens.RefreshToken))

	return response.Success(c, http.StatusCreated, sessionResponse{
		Account:      toAccountResponse(account),
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	}, "Account created successfully")
}

// Login handles the login request.
func (h *AccountHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	ctx := c.Request().Context()

	account, err := h.uc.Login(ctx, &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	tokens, err := h.uc.IssueTokens(ctx, account.Email, account.ID.String())
	if err != nil {
		return errors.WithStack(err)
	}

	c.SetCookie(h.newRefreshCookie(tokens.RefreshToken))

	return response.Success(c, http.StatusOK, sessionResponse{
		Account:      toAccountResponse(account),
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	}, "Login successful")
}

// Logout clears the refresh token cookie. Tokens are stateless so there is
// nothing to revoke server-side.
func (h *AccountHandler) Logout(c echo.Context) error {
	cookie := h.newRefreshCookie("")
	cookie.MaxAge = -1
	cookie.Expires = time.Unix(0, 0)
	c.SetCookie(cookie)

	return response.Success(c, http.StatusOK, nil, "Logout successful")
}

// RefreshAccessToken exchanges a refresh token for a new access token. The
// token is read from the cookie first and falls back to the request body;
// the cookie wins when both are present.
func (h *AccountHandler) RefreshAccessToken(c echo.Context) error {
	refreshToken := ""
	if cookie, err := c.Cookie(refreshCookieName); err == nil && cookie.Value != "" {
		refreshToken = cookie.Value
	} else {
		var req refreshRequest
		if err := c.Bind(&req); err == nil {
			refreshToken = req.RefreshToken
		}
	}

	if refreshToken == "" {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("refresh token is required"))
	}

	accessToken, err := h.uc.GenerateAccessToken(c.Request().Context(), refreshToken)
	if err != nil {
		return errors.WithStack(err)
	}

	// The presented refresh token is echoed back unchanged, no rotation.
	return response.Success(c, http.StatusOK, tokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, "Token refreshed successfully")
}

// newRefreshCookie builds the refresh token cookie. Its lifetime matches the
// refresh token TTL exactly and it is never readable from scripts.
func (h *AccountHandler) newRefreshCookie(token string) *http.Cookie {
	return &http.Cookie{
		Name:     refreshCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.tokenSvc.RefreshTokenDuration() / time.Second),
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		Secure:   h.cfg.IsProduction(),
	}
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
