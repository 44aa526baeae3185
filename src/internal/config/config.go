package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	apperrors "github.com/casava/admin-console/src/internal/errors"
	"github.com/casava/admin-console/src/internal/log"
)

// Environment variables that override the file.
const (
	EnvCasavaBaseURL      = "NUXT_API_CASAVA_BASE_URL"
	EnvSmedanBaseURL      = "NUXT_API_SMEDAN_BASE_URL"
	EnvGoogleClientID     = "NUXT_GOOGLE_CLIENT_ID"
	EnvGoogleClientSecret = "NUXT_GOOGLE_CLIENT_SECRET"
	EnvNextAuthURL        = "NUXT_NEXTAUTH_URL"
	EnvSessionToken       = "CASAVA_SESSION_TOKEN"
)

// LoadConfig reads the configuration file at configPath, fills missing
// sections with defaults and applies environment overrides. An empty path
// skips the file.
func LoadConfig(configPath string) (*Config, error) {
	config := Default()

	if configPath != "" {
		configFile, err := filepath.Abs(filepath.Clean(configPath))
		if err != nil {
			return nil, apperrors.NewConfigError("failed to get absolute path", err)
		}

		content, err := os.ReadFile(configFile)
		if err != nil {
			if os.IsNotExist(err) {
				log.Errorf("Configuration file not found: %s", configFile)
				return nil, apperrors.NewConfigError("configuration file not found: "+configFile, err)
			}
			return nil, apperrors.NewConfigError("failed to read config file", err)
		}

		if err := toml.Unmarshal(content, config); err != nil {
			var derr *toml.DecodeError
			if errors.As(err, &derr) {
				log.Errorf("%s", derr.String())
				row, col := derr.Position()
				log.Errorf("Error at line %d, column %d", row, col)
				return nil, apperrors.NewConfigError("failed to parse config file", nil)
			}
			return nil, apperrors.NewConfigError("failed to parse config file", err)
		}

		config._absConfigFilePath = configFile
		log.Debugf("Configuration file path: %s", configFile)
	}

	config.fillDefaults()
	config.ApplyEnv(os.LookupEnv)

	return config, nil
}

// ApplyEnv overrides configuration values from the environment. lookup is
// usually os.LookupEnv.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	c.fillDefaults()

	overrides := []struct {
		env    string
		target *string
	}{
		{EnvCasavaBaseURL, &c.Services.CasavaBaseURL},
		{EnvSmedanBaseURL, &c.Services.SmedanBaseURL},
		{EnvGoogleClientID, &c.Auth.GoogleClientID},
		{EnvGoogleClientSecret, &c.Auth.GoogleClientSecret},
		{EnvNextAuthURL, &c.Auth.NextAuthURL},
		{EnvSessionToken, &c.Auth.SessionToken},
	}

	for _, o := range overrides {
		if value, ok := lookup(o.env); ok && value != "" {
			log.Debugf("Using %s from environment", o.env)
			*o.target = value
		}
	}
}

func (c *Config) fillDefaults() {
	defaults := Default()
	if c.Services == nil {
		c.Services = defaults.Services
	}
	if c.Auth == nil {
		c.Auth = defaults.Auth
	}
	if c.HTTP == nil {
		c.HTTP = defaults.HTTP
	}
}

func (c *Config) SerializeConfig() (*bytes.Buffer, error) {
	buf := bytes.Buffer{}
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(c); err != nil {
		return nil, err
	}
	return &buf, nil
}

// WriteConfig writes the configuration back to the file it was loaded from.
func (c *Config) WriteConfig() error {
	if c._absConfigFilePath == "" {
		return fmt.Errorf("configuration was not loaded from a file")
	}
	config, err := c.SerializeConfig()
	if err != nil {
		return err
	}
	return os.WriteFile(c._absConfigFilePath, config.Bytes(), 0600)
}
