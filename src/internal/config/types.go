package config

import (
	"strings"
	"time"

	"github.com/casava/admin-console/src/internal/services"
)

const (
	DefaultCasavaBaseURL  = "http://127.0.0.1:8787/casava"
	DefaultSmedanBaseURL  = "http://127.0.0.1:8787/smedan"
	DefaultTimeoutSeconds = 30

	googleCallbackPath = "/api/auth/callback/google"
)

type Config struct {
	Services *ServicesConfig `toml:"services"`
	Auth     *AuthConfig     `toml:"auth"`
	HTTP     *HTTPConfig     `toml:"http"`

	_absConfigFilePath string
}

type ServicesConfig struct {
	CasavaBaseURL string `toml:"casava_base_url" validate:"required,http_url"`
	SmedanBaseURL string `toml:"smedan_base_url" validate:"required,http_url"`
}

type AuthConfig struct {
	GoogleClientID     string `toml:"google_client_id" validate:"required_with=GoogleClientSecret"`
	GoogleClientSecret string `toml:"google_client_secret" validate:"required_with=GoogleClientID"`
	NextAuthURL        string `toml:"nextauth_url" validate:"omitempty,http_url"`
	SessionToken       string `toml:"session_token,omitempty"`
}

type HTTPConfig struct {
	TimeoutSeconds int    `toml:"timeout_seconds" validate:"min=0,max=300"`
	UserAgent      string `toml:"user_agent,omitempty"`
}

// Default returns the configuration used when no file is given. It points at
// the local mock API.
func Default() *Config {
	return &Config{
		Services: &ServicesConfig{
			CasavaBaseURL: DefaultCasavaBaseURL,
			SmedanBaseURL: DefaultSmedanBaseURL,
		},
		Auth: &AuthConfig{},
		HTTP: &HTTPConfig{TimeoutSeconds: DefaultTimeoutSeconds},
	}
}

// Resolver returns the service base URL resolver for this configuration.
func (c *Config) Resolver() *services.Resolver {
	return services.NewResolver(map[services.Name]string{
		services.Casava: c.Services.CasavaBaseURL,
		services.Smedan: c.Services.SmedanBaseURL,
	})
}

// Timeout returns the HTTP timeout. Zero means the transport default.
func (c *Config) Timeout() time.Duration {
	if c.HTTP == nil {
		return 0
	}
	return time.Duration(c.HTTP.TimeoutSeconds) * time.Second
}

// GoogleRedirectURL returns the OAuth callback URL under nextauth_url.
func (c *Config) GoogleRedirectURL() string {
	if c.Auth == nil || c.Auth.NextAuthURL == "" {
		return ""
	}
	return strings.TrimRight(c.Auth.NextAuthURL, "/") + googleCallbackPath
}

func (c *Config) GetConfigPath() string {
	return c._absConfigFilePath
}
