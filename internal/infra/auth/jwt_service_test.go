package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medmatch/config"
	"medmatch/internal/domain/service"
)

func newTestTokenService(t *testing.T) service.TokenService {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = "test-access-secret"
	cfg.SecretKey.Refresh = "test-refresh-secret"

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc
}

func TestNewJWTService_MissingSecrets(t *testing.T) {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "only-access"

	_, err := NewJWTService(cfg)
	assert.Error(t, err)
}

func TestJWTService_AccessRoundTrip(t *testing.T) {
	svc := newTestTokenService(t)

	token, err := svc.SignAccess("user@example.com", "account-id-1")
	require.NoError(t, err)

	claims, err := svc.VerifyAccess(token)
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", claims.Email)
	assert.Equal(t, "account-id-1", claims.ID)
	require.NotNil(t, claims.ExpiresAt)
	require.NotNil(t, claims.IssuedAt)
	assert.WithinDuration(t, claims.IssuedAt.Add(15*time.Minute), claims.ExpiresAt.Time, time.Second)
}

func TestJWTService_RefreshRoundTrip(t *testing.T) {
	svc := newTestTokenService(t)

	token, err := svc.SignRefresh("user@example.com", "account-id-1")
	require.NoError(t, err)

	claims, err := svc.VerifyRefresh(token)
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", claims.Email)
	assert.Equal(t, "account-id-1", claims.ID)
	require.NotNil(t, claims.ExpiresAt)
	require.NotNil(t, claims.IssuedAt)
	assert.WithinDuration(t, claims.IssuedAt.Add(7*24*time.Hour), claims.ExpiresAt.Time, time.Second)
}

func TestJWTService_SecretsAreNotInterchangeable(t *testing.T) {
	svc := newTestTokenService(t)

	accessToken, err := svc.SignAccess("user@example.com", "account-id-1")
	require.NoError(t, err)
	refreshToken, err := svc.SignRefresh("user@example.com", "account-id-1")
	require.NoError(t, err)

	// An access token never verifies as a refresh token and vice versa.
	_, err = svc.VerifyRefresh(accessToken)
	assert.ErrorIs(t, err, service.ErrInvalidToken)
	_, err = svc.VerifyAccess(refreshToken)
	assert.ErrorIs(t, err, service.ErrInvalidToken)
}

func TestJWTService_TamperedToken(t *testing.T) {
	svc := newTestTokenService(t)

	token, err := svc.SignAccess("user@example.com", "account-id-1")
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"
	_, err = svc.VerifyAccess(tampered)
	assert.ErrorIs(t, err, service.ErrInvalidToken)
}

func TestJWTService_MalformedToken(t *testing.T) {
	svc := newTestTokenService(t)

	for _, tokenString := range []string{"", "garbage", "a.b.c"} {
		_, err := svc.VerifyAccess(tokenString)
		assert.ErrorIs(t, err, service.ErrInvalidToken)
	}
}

func TestJWTService_ExpiredToken(t *testing.T) {
	svc := newTestTokenService(t)

	// Craft a token with the right secret but an expiry in the past.
	claims := &service.TokenClaims{
		Email: "user@example.com",
		ID:    "account-id-1",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-access-secret"))
	require.NoError(t, err)

	_, err = svc.VerifyAccess(expired)
	assert.ErrorIs(t, err, service.ErrInvalidToken)
}

func TestJWTService_MissingIdentityClaims(t *testing.T) {
	svc := newTestTokenService(t)

	// Well-signed, unexpired token with an empty id claim still fails the
	// payload-shape check.
	claims := &service.TokenClaims{
		Email: "user@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-access-secret"))
	require.NoError(t, err)

	_, err = svc.VerifyAccess(token)
	assert.ErrorIs(t, err, service.ErrInvalidToken)
}

func TestJWTService_RejectsNonHMACAlgorithm(t *testing.T) {
	svc := newTestTokenService(t)

	// alg=none tokens must never verify.
	claims := &service.TokenClaims{
		Email: "user@example.com",
		ID:    "account-id-1",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.VerifyAccess(token)
	assert.ErrorIs(t, err, service.ErrInvalidToken)
}

func TestJWTService_Durations(t *testing.T) {
	svc := newTestTokenService(t)

	assert.Equal(t, 15*time.Minute, svc.AccessTokenDuration())
	assert.Equal(t, 7*24*time.Hour, svc.RefreshTokenDuration())
	assert.Equal(t, 604800, int(svc.RefreshTokenDuration()/time.Second))
}
