package helpers

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/mygroup/simple-community/pkg/apperr"
)

// TokenManager issues and validates the signed bearer tokens that carry a
// user's identity. The signing secret is injected at construction and never
// rotated at runtime.
type TokenManager struct {
	Secret []byte
	Issuer string
	TTL    time.Duration
}

var defaultManager *TokenManager

func NewTokenManager(secret, issuer string, ttl time.Duration) *TokenManager {
	m := &TokenManager{Secret: []byte(secret), Issuer: issuer, TTL: ttl}
	defaultManager = m
	return m
}

// DefaultTokens returns the last constructed TokenManager (used for auto-wiring routes)
func DefaultTokens() *TokenManager { return defaultManager }

// Issue creates a signed token for the given user id, valid for the
// configured TTL from now.
func (m *TokenManager) Issue(userID string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		Issuer:    m.Issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.TTL)),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(m.Secret)
}

// Validate parses the token and returns its subject. Every non-success path
// (malformed token, signature mismatch, unsupported method, wrong issuer,
// expiry) returns an INVALID_TOKEN failure; a subject is never returned for
// a token that did not fully verify.
func (m *TokenManager) Validate(tokenStr string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	tkn, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, apperr.New(apperr.InvalidToken, "Token is invalid")
		}
		return m.Secret, nil
	}, jwt.WithIssuer(m.Issuer))
	if err != nil || !tkn.Valid {
		return "", apperr.New(apperr.InvalidToken, "Token is invalid")
	}
	if claims.Subject == "" {
		return "", apperr.New(apperr.InvalidToken, "Token is invalid")
	}
	return claims.Subject, nil
}
