package commands

import (
	"flag"
	"fmt"
	"time"

	"github.com/casava/admin-console/src/internal/config"
	"github.com/casava/admin-console/src/internal/session"
)

func CreateWhoAmICommand() *WhoAmICommand {
	return &WhoAmICommand{
		fs: flag.NewFlagSet("whoami", flag.ExitOnError),
	}
}

// WhoAmICommand prints the identity carried by the configured session token.
type WhoAmICommand struct {
	fs  *flag.FlagSet
	ctx *AppContext
	cfg *config.Config
}

func (c *WhoAmICommand) Name() string {
	return c.fs.Name()
}

func (c *WhoAmICommand) Init(args []string, ctx *AppContext) error {
	c.ctx = ctx

	if err := c.fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadAndValidateConfigOrFail(ctx.ConfigPath)
	if err != nil {
		return err
	}
	c.cfg = cfg

	return nil
}

func (c *WhoAmICommand) Run() error {
	token := c.cfg.Auth.SessionToken
	if token == "" {
		return fmt.Errorf("no session token configured, set %s or auth.session_token", config.EnvSessionToken)
	}

	w := c.ctx.out()
	if !session.LooksLikeJWT(token) {
		fmt.Fprintln(w, "Session token is opaque, no claims to show")
		return nil
	}

	info, err := session.Inspect(token)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Subject: %s\n", info.Subject)
	if info.Email != "" {
		fmt.Fprintf(w, "Email:   %s\n", info.Email)
	}
	if info.Name != "" {
		fmt.Fprintf(w, "Name:    %s\n", info.Name)
	}
	if info.Issuer != "" {
		fmt.Fprintf(w, "Issuer:  %s\n", info.Issuer)
	}
	if !info.ExpiresAt.IsZero() {
		status := "valid"
		if info.Expired(time.Now()) {
			status = "expired"
		}
		fmt.Fprintf(w, "Expires: %s (%s)\n", info.ExpiresAt.UTC().Format(time.RFC3339), status)
	}
	return nil
}
