package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/casava/admin-console/src/internal/config"
	"github.com/casava/admin-console/src/internal/log"
	"github.com/casava/admin-console/src/internal/request"
	"github.com/casava/admin-console/src/internal/session"
	"github.com/casava/admin-console/src/internal/transport"
)

type Runner interface {
	Init(args []string, globalArgs *AppContext) error
	Run() error
	Name() string
}

type AppContext struct {
	ConfigPath string
	Verbose    bool

	// Out receives command output. Defaults to os.Stdout.
	Out io.Writer

	// Transport overrides the HTTP transport built from configuration.
	Transport transport.Transport
}

func (c *AppContext) out() io.Writer {
	if c.Out == nil {
		return os.Stdout
	}
	return c.Out
}

// loadAndValidateConfigOrFail loads configuration from file (if any) and the
// environment, then validates it.
func loadAndValidateConfigOrFail(configPath string) (*config.Config, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %v", err)
	}

	if err := cfg.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %v", err)
	}

	return cfg, nil
}

// newDeps wires the adapter dependencies from configuration.
func newDeps(ctx *AppContext, cfg *config.Config) request.Deps {
	t := ctx.Transport
	if t == nil {
		ht := transport.NewHTTPTransportWithTimeout(cfg.Timeout())
		if cfg.HTTP.UserAgent != "" {
			ht.SetUserAgent(cfg.HTTP.UserAgent)
		}
		t = ht
	}

	sess := session.NewStaticProvider(cfg.Auth.SessionToken)
	sess.OnSignOut(func() {
		log.Warnf("Session token was rejected, update %s or auth.session_token", config.EnvSessionToken)
	})

	return request.Deps{
		Transport: t,
		Session:   sess,
		Services:  cfg.Resolver(),
	}
}

// printJSON writes v as indented JSON.
func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
