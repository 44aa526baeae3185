package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	apperrors "github.com/casava/admin-console/src/internal/errors"
	"github.com/casava/admin-console/src/internal/services"
)

func noEnv(string) (string, bool) { return "", false }

func TestLoadConfig_NonExistentFile(t *testing.T) {
	_, err := LoadConfig("/non/existent/file.toml")
	if !apperrors.HasCode(err, apperrors.ErrCodeConfig) {
		t.Errorf("Expected config error for non-existent file, got %v", err)
	}
}

func TestLoadConfig_InvalidTOML(t *testing.T) {
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "invalid.toml")

	invalidTOML := `[services
	casava_base_url = "https://api.casava.test"`

	err := os.WriteFile(configFile, []byte(invalidTOML), 0644)
	if err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	_, err = LoadConfig(configFile)
	if err == nil {
		t.Error("Expected error for invalid TOML")
	}
}

func TestLoadConfig_ValidConfig(t *testing.T) {
	t.Setenv(EnvCasavaBaseURL, "")
	t.Setenv(EnvSmedanBaseURL, "")

	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "valid.toml")

	validTOML := `[services]
casava_base_url = "https://api.casava.test/v1/"
smedan_base_url = "https://smedan.casava.test/api"

[http]
timeout_seconds = 10
user_agent = "casava-admin/test"`

	err := os.WriteFile(configFile, []byte(validTOML), 0644)
	if err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	config, err := LoadConfig(configFile)
	if err != nil {
		t.Fatalf("Expected no error for valid config: %v", err)
	}

	if config.Services.CasavaBaseURL != "https://api.casava.test/v1/" {
		t.Errorf("Unexpected casava_base_url %q", config.Services.CasavaBaseURL)
	}
	if config.Auth == nil {
		t.Fatal("Expected missing auth section to be filled with defaults")
	}
	if config.Timeout() != 10*time.Second {
		t.Errorf("Expected 10s timeout, got %v", config.Timeout())
	}
	if config.GetConfigPath() != configFile {
		t.Errorf("Expected config path %q, got %q", configFile, config.GetConfigPath())
	}

	resolver := config.Resolver()
	if got := resolver.BaseURL(services.Casava); got != "https://api.casava.test/v1" {
		t.Errorf("Expected trimmed casava base URL, got %q", got)
	}
	if got := resolver.BaseURL(services.Smedan); got != "https://smedan.casava.test/api" {
		t.Errorf("Unexpected smedan base URL %q", got)
	}
}

func TestLoadConfig_NoFileUsesDefaultsAndEnv(t *testing.T) {
	t.Setenv(EnvCasavaBaseURL, "https://env.casava.test")
	t.Setenv(EnvSmedanBaseURL, "")
	t.Setenv(EnvSessionToken, "opaque-token")

	config, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if config.Services.CasavaBaseURL != "https://env.casava.test" {
		t.Errorf("Expected env override, got %q", config.Services.CasavaBaseURL)
	}
	if config.Services.SmedanBaseURL != DefaultSmedanBaseURL {
		t.Errorf("Expected default smedan URL, got %q", config.Services.SmedanBaseURL)
	}
	if config.Auth.SessionToken != "opaque-token" {
		t.Errorf("Expected session token from env, got %q", config.Auth.SessionToken)
	}
	if config.Timeout() != DefaultTimeoutSeconds*time.Second {
		t.Errorf("Expected default timeout, got %v", config.Timeout())
	}
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		EnvGoogleClientID:     "client-id",
		EnvGoogleClientSecret: "client-secret",
		EnvNextAuthURL:        "https://admin.casava.test/",
	}
	config := &Config{}
	config.ApplyEnv(func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	})

	if config.Auth.GoogleClientID != "client-id" || config.Auth.GoogleClientSecret != "client-secret" {
		t.Errorf("Unexpected auth config %+v", config.Auth)
	}
	if got := config.GoogleRedirectURL(); got != "https://admin.casava.test/api/auth/callback/google" {
		t.Errorf("GoogleRedirectURL() = %q", got)
	}
	if config.Services.CasavaBaseURL != DefaultCasavaBaseURL {
		t.Errorf("Expected default casava URL, got %q", config.Services.CasavaBaseURL)
	}
}

func TestSerializeConfig(t *testing.T) {
	config := Default()
	config.ApplyEnv(noEnv)

	buf, err := config.SerializeConfig()
	if err != nil {
		t.Fatalf("SerializeConfig() error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{"[services]", "casava_base_url", "[http]", "timeout_seconds = 30"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected serialized config to contain %q:\n%s", want, out)
		}
	}
}

func TestWriteConfig(t *testing.T) {
	t.Setenv(EnvCasavaBaseURL, "")

	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "config.toml")
	if err := os.WriteFile(configFile, []byte("[http]\ntimeout_seconds = 5\n"), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	config, err := LoadConfig(configFile)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	config.Services.CasavaBaseURL = "https://written.casava.test"

	if err := config.WriteConfig(); err != nil {
		t.Fatalf("WriteConfig() error = %v", err)
	}

	reloaded, err := LoadConfig(configFile)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if reloaded.Services.CasavaBaseURL != "https://written.casava.test" {
		t.Errorf("Expected written value, got %q", reloaded.Services.CasavaBaseURL)
	}
	if reloaded.HTTP.TimeoutSeconds != 5 {
		t.Errorf("Expected timeout to survive, got %d", reloaded.HTTP.TimeoutSeconds)
	}
}

func TestWriteConfig_WithoutFile(t *testing.T) {
	if err := Default().WriteConfig(); err == nil {
		t.Error("Expected error when writing a config that has no file")
	}
}
