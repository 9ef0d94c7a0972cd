package auth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/feedsense/pkg/domain"
)

func makeToken(t *testing.T, method jwt.SigningMethod, key any, sub string, exp time.Time) string {
	t.Helper()
	claims := &Claims{Email: "jo@example.com", RegisteredClaims: jwt.RegisteredClaims{
		Subject:   sub,
		ExpiresAt: jwt.NewNumericDate(exp),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}}
	claims.UserMetadata.Name = "Jo"
	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return token
}

func TestJWTVerifier_Verify(t *testing.T) {
	v := NewJWTVerifier("test-secret")
	future := time.Now().Add(time.Hour)

	t.Run("valid token", func(t *testing.T) {
		user, err := v.Verify(context.Background(), makeToken(t, jwt.SigningMethodHS256, []byte("test-secret"), "user-123", future))
		require.NoError(t, err)
		assert.Equal(t, domain.User{ID: "user-123", Email: "jo@example.com", Name: "Jo"}, user)
	})

	t.Run("expired", func(t *testing.T) {
		token := makeToken(t, jwt.SigningMethodHS256, []byte("test-secret"), "user-123", time.Now().Add(-time.Minute))
		_, err := v.Verify(context.Background(), token)
		require.ErrorIs(t, err, ErrTokenExpired)
	})

	t.Run("wrong secret", func(t *testing.T) {
		token := makeToken(t, jwt.SigningMethodHS256, []byte("other-secret"), "user-123", future)
		_, err := v.Verify(context.Background(), token)
		require.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("unsigned token rejected", func(t *testing.T) {
		token := makeToken(t, jwt.SigningMethodNone, jwt.UnsafeAllowNoneSignatureType, "user-123", future)
		_, err := v.Verify(context.Background(), token)
		require.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("no subject", func(t *testing.T) {
		token := makeToken(t, jwt.SigningMethodHS256, []byte("test-secret"), "", future)
		_, err := v.Verify(context.Background(), token)
		require.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := v.Verify(context.Background(), "not.a.token")
		require.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("empty", func(t *testing.T) {
		_, err := v.Verify(context.Background(), "  ")
		require.ErrorIs(t, err, ErrMissingToken)
	})
}
