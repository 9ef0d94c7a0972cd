// Package auth verifies bearer tokens of API callers
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/umputun/feedsense/pkg/domain"
)

// errors returned by Verify
var (
	ErrMissingToken = errors.New("missing token")
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)

// Claims are the token claims used by the service: subject is the user id,
// name comes from user_metadata as issued by hosted auth providers
type Claims struct {
	Email        string `json:"email"`
	UserMetadata struct {
		Name string `json:"name"`
	} `json:"user_metadata"`
	jwt.RegisteredClaims
}

// JWTVerifier validates HMAC-signed bearer tokens
type JWTVerifier struct {
	secret []byte
}

// NewJWTVerifier makes a verifier for tokens signed with secret
func NewJWTVerifier(secret string) *JWTVerifier {
	return &JWTVerifier{secret: []byte(secret)}
}

// Verify parses and validates the token and returns the user it was issued for
func (v *JWTVerifier) Verify(_ context.Context, token string) (domain.User, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return domain.User{}, ErrMissingToken
	}

	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		// ensure the token's signing method is what we expect
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return v.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return domain.User{}, ErrTokenExpired
		}
		return domain.User{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !parsed.Valid || claims.Subject == "" {
		return domain.User{}, ErrInvalidToken
	}

	return domain.User{ID: claims.Subject, Email: claims.Email, Name: claims.UserMetadata.Name}, nil
}
