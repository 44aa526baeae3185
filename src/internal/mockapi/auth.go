package mockapi

import (
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// Authenticator accepts a fixed set of opaque tokens and HS256 JWTs signed
// with its secret.
type Authenticator struct {
	secret []byte

	mu     sync.RWMutex
	tokens map[string]struct{}
}

// NewAuthenticator creates an authenticator. An empty secret disables JWT
// verification.
func NewAuthenticator(secret string, tokens ...string) *Authenticator {
	a := &Authenticator{secret: []byte(secret), tokens: make(map[string]struct{})}
	for _, t := range tokens {
		a.tokens[t] = struct{}{}
	}
	return a
}

// Allow adds an opaque token.
func (a *Authenticator) Allow(token string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.tokens[token] = struct{}{}
}

// Revoke removes an opaque token.
func (a *Authenticator) Revoke(token string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	delete(a.tokens, token)
}

// Verify returns nil if token is accepted.
func (a *Authenticator) Verify(token string) error {
	a.mu.RLock()
	_, ok := a.tokens[token]
	a.mu.RUnlock()
	if ok {
		return nil
	}

	if len(a.secret) == 0 {
		return fmt.Errorf("unknown token")
	}

	_, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return a.secret, nil
	})
	return err
}

// Issue signs a token for subject valid for ttl.
func (a *Authenticator) Issue(subject, email string, ttl time.Duration) (string, error) {
	if len(a.secret) == 0 {
		return "", fmt.Errorf("no signing secret configured")
	}

	now := time.Now()
	claims := struct {
		Email string `json:"email,omitempty"`
		jwt.RegisteredClaims
	}{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    "casava-mockapi",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
}
