package commands

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/casava/admin-console/src/internal/log"
	"github.com/casava/admin-console/src/internal/mockapi"
)

// ServeMockCommand runs the mock Casava and SMEDAN backends locally.
type ServeMockCommand struct {
	fs  *flag.FlagSet
	ctx *AppContext

	bindAddr string
	secret   string
	tokens   stringList
	ttl      time.Duration

	server *mockapi.Server
}

// CreateServeMockCommand creates a new serve-mock command.
func CreateServeMockCommand() Runner {
	return &ServeMockCommand{}
}

// Name returns the command name.
func (c *ServeMockCommand) Name() string {
	return "serve-mock"
}

// Init initializes the command with arguments. It needs no configuration file.
func (c *ServeMockCommand) Init(args []string, ctx *AppContext) error {
	c.ctx = ctx
	c.fs = flag.NewFlagSet("serve-mock", flag.ExitOnError)

	c.fs.StringVar(&c.bindAddr, "bind", "127.0.0.1:8787", "Address to bind the mock API (e.g., 127.0.0.1:8787)")
	c.fs.StringVar(&c.secret, "secret", "casava-dev-secret", "HMAC secret used to sign and verify JWT session tokens")
	c.fs.Var(&c.tokens, "token", "Additional opaque bearer token to accept (repeatable)")
	c.fs.DurationVar(&c.ttl, "ttl", 24*time.Hour, "Lifetime of the issued development token")

	if err := c.fs.Parse(args); err != nil {
		return err
	}
	if c.secret == "" {
		return fmt.Errorf("-secret must not be empty")
	}

	return nil
}

// Run starts the server and blocks until it fails or a signal arrives.
func (c *ServeMockCommand) Run() error {
	auth := mockapi.NewAuthenticator(c.secret, c.tokens...)
	token, err := auth.Issue("admin", "admin@casava.test", c.ttl)
	if err != nil {
		return fmt.Errorf("failed to issue development token: %w", err)
	}

	fmt.Fprintf(c.ctx.out(), "Development session token (valid for %s):\n%s\n", c.ttl, token)

	c.server = mockapi.NewServer(c.bindAddr, mockapi.NewRouter(mockapi.NewStore(), auth))

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- c.server.Start()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(shutdown)

	select {
	case err := <-serverErrors:
		return err
	case sig := <-shutdown:
		log.Infof("Received signal %v, shutting down mock API...", sig)

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := c.server.Stop(ctx); err != nil {
			return fmt.Errorf("failed to stop mock API: %w", err)
		}
	}
	return nil
}

// stringList collects a repeatable string flag.
type stringList []string

func (s *stringList) String() string {
	return fmt.Sprint([]string(*s))
}

func (s *stringList) Set(v string) error {
	*s = append(*s, v)
	return nil
}
