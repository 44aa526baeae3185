package session

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// TokenInfo holds the claims the console cares about.
type TokenInfo struct {
	Subject   string
	Email     string
	Name      string
	Issuer    string
	IssuedAt  time.Time
	ExpiresAt time.Time // zero if the token has no exp claim
}

// Expired reports whether the token has an exp claim in the past.
func (i *TokenInfo) Expired(now time.Time) bool {
	return !i.ExpiresAt.IsZero() && !now.Before(i.ExpiresAt)
}

type tokenClaims struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	jwt.RegisteredClaims
}

// Inspect decodes a JWT without verifying its signature. The backend is the
// authority on validity; the console only needs identity and expiry hints.
func Inspect(token string) (*TokenInfo, error) {
	token = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(token), "Bearer "))
	if token == "" {
		return nil, fmt.Errorf("empty token")
	}

	claims := &tokenClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	info := &TokenInfo{
		Subject: claims.Subject,
		Email:   claims.Email,
		Name:    claims.Name,
		Issuer:  claims.Issuer,
	}
	if claims.IssuedAt != nil {
		info.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		info.ExpiresAt = claims.ExpiresAt.Time
	}
	return info, nil
}

// LooksLikeJWT reports whether token has the three-segment shape of a JWT.
func LooksLikeJWT(token string) bool {
	token = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(token), "Bearer "))
	return strings.HasPrefix(token, "eyJ") && strings.Count(token, ".") == 2
}
