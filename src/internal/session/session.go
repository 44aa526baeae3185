// Package session provides the authentication collaborator used by the
// request adapter: a live bearer-token accessor and a sign-out action.
package session

import (
	"sync"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/endpoints"

	"github.com/casava/admin-console/src/internal/log"
)

// Provider is the capability the request layer needs from the auth system.
//
// Token is read on every authorized request, never cached by callers.
// An empty string means there is no usable session.
type Provider interface {
	Token() string
	SignOut()
}

// OAuth2Provider adapts an oauth2.TokenSource to Provider.
//
// After SignOut the provider returns an empty token until SignIn installs a
// new token source. Sign-out hooks run once per session.
type OAuth2Provider struct {
	mu        sync.Mutex
	source    oauth2.TokenSource
	signedOut bool
	hooks     []func()
}

// NewOAuth2Provider creates a provider reading tokens from source.
func NewOAuth2Provider(source oauth2.TokenSource) *OAuth2Provider {
	return &OAuth2Provider{source: source}
}

// NewStaticProvider wraps a fixed bearer token. When the token is a JWT with
// an exp claim, the session stops yielding it once expired.
func NewStaticProvider(token string) *OAuth2Provider {
	tok := &oauth2.Token{AccessToken: token, TokenType: "Bearer"}
	if info, err := Inspect(token); err == nil && !info.ExpiresAt.IsZero() {
		tok.Expiry = info.ExpiresAt
	}
	return NewOAuth2Provider(oauth2.StaticTokenSource(tok))
}

// Token returns the current access token, or "" if signed out, expired or the
// token source fails.
func (p *OAuth2Provider) Token() string {
	p.mu.Lock()
	source, signedOut := p.source, p.signedOut
	p.mu.Unlock()

	if signedOut || source == nil {
		return ""
	}

	tok, err := source.Token()
	if err != nil {
		log.Warnf("Failed to obtain session token: %v", err)
		return ""
	}
	if !tok.Valid() {
		log.Debugf("Session token is expired or empty")
		return ""
	}
	return tok.AccessToken
}

// SignOut ends the session and runs the registered hooks. Repeated calls are
// no-ops until the next SignIn.
func (p *OAuth2Provider) SignOut() {
	p.mu.Lock()
	if p.signedOut {
		p.mu.Unlock()
		return
	}
	p.signedOut = true
	hooks := append([]func(){}, p.hooks...)
	p.mu.Unlock()

	log.Infof("Session signed out")
	for _, hook := range hooks {
		hook()
	}
}

// SignIn starts a new session backed by source.
func (p *OAuth2Provider) SignIn(source oauth2.TokenSource) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.source = source
	p.signedOut = false
}

// SignedOut reports whether the session has been ended.
func (p *OAuth2Provider) SignedOut() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.signedOut
}

// OnSignOut registers a hook run when the session ends.
func (p *OAuth2Provider) OnSignOut(hook func()) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.hooks = append(p.hooks, hook)
}

// GoogleConfig returns the OAuth2 configuration for the Google sign-in
// provider used by the dashboard's auth server.
func GoogleConfig(clientID, clientSecret, redirectURL string) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURL:  redirectURL,
		Endpoint:     endpoints.Google,
		Scopes:       []string{"openid", "email", "profile"},
	}
}
