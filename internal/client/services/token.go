package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

// TokenIssuer signs the mock session token stored next to the session
// artifact. Tokens carry the user ID as subject and never expire.
type TokenIssuer struct {
	secret []byte
}

// DefaultTokenSecret is used when no secret is configured.
const DefaultTokenSecret = "authflow-dev-secret"

func NewTokenIssuer(secret string) *TokenIssuer {
	if secret == "" {
		secret = DefaultTokenSecret
	}
	return &TokenIssuer{secret: []byte(secret)}
}

// Issue returns an HS256 token for userID issued at now.
func (t *TokenIssuer) Issue(userID string, now time.Time) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:  userID,
		IssuedAt: jwt.NewNumericDate(now),
	}
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return s, nil
}

// Subject verifies token and returns the user ID it was issued for.
func (t *TokenIssuer) Subject(token string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return t.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	return claims.Subject, nil
}
