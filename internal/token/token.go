// Package token issues and verifies the signed bearer tokens that gate the
// catalog endpoints.
package token

import (
	"time"

	"GameCatalogAPI/internal/apperr"

	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the token payload: user identity plus the registered
// expiry claim.
type Claims struct {
	UserID int64  `json:"id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// Service signs and verifies HS256 tokens with a single process-wide secret.
type Service struct {
	secret   []byte
	validity time.Duration
}

func NewService(secret []byte, validity time.Duration) *Service {
	return &Service{secret: secret, validity: validity}
}

// Issue creates a signed token for the given user, valid for the configured
// duration.
func (s *Service) Issue(userID int64, email string) (string, error) {
	claims := &Claims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.validity)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Verify decodes a token and checks its signature and expiry. Malformed
// input, a signature mismatch and an expired token all yield the same
// apperr.ErrInvalidToken; callers must not distinguish the sub-reason.
func (s *Service) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	t, err := jwt.ParseWithClaims(tokenString, claims, func(_ *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !t.Valid {
		return nil, apperr.ErrInvalidToken
	}
	return claims, nil
}
