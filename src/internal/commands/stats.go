package commands

import (
	"context"
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/casava/admin-console/src/internal/config"
	"github.com/casava/admin-console/src/internal/request"
	"github.com/casava/admin-console/src/internal/stats"
)

func CreateStatsCommand() *StatsCommand {
	return &StatsCommand{
		fs: flag.NewFlagSet("stats", flag.ExitOnError),
	}
}

type StatsCommand struct {
	fs   *flag.FlagSet
	ctx  *AppContext
	cfg  *config.Config
	deps request.Deps

	kind stats.Kind
	date time.Time
}

func (c *StatsCommand) Name() string {
	return c.fs.Name()
}

func (c *StatsCommand) Init(args []string, ctx *AppContext) error {
	c.ctx = ctx

	var date string
	c.fs.StringVar(&date, "date", "", "Day to load statistics for (YYYY-MM-DD, default today)")
	c.fs.Usage = func() {
		fmt.Fprintf(c.fs.Output(), "Usage: stats [-date YYYY-MM-DD] <%s>\n", strings.Join(kindNames(), "|"))
		c.fs.PrintDefaults()
	}

	if err := c.fs.Parse(args); err != nil {
		return err
	}

	if c.fs.NArg() != 1 {
		return fmt.Errorf("expected exactly one statistics kind, one of: %s", strings.Join(kindNames(), ", "))
	}
	c.kind = stats.Kind(c.fs.Arg(0))
	if _, _, ok := c.kind.Path(); !ok {
		return fmt.Errorf("unknown statistics kind %q, expected one of: %s", c.kind, strings.Join(kindNames(), ", "))
	}

	if date != "" {
		d, err := time.Parse("2006-01-02", date)
		if err != nil {
			return fmt.Errorf("invalid -date %q: %v", date, err)
		}
		c.date = d
	}

	cfg, err := loadAndValidateConfigOrFail(ctx.ConfigPath)
	if err != nil {
		return err
	}
	c.cfg = cfg
	c.deps = newDeps(ctx, cfg)

	return nil
}

func (c *StatsCommand) Run() error {
	ctx := context.Background()

	switch c.kind {
	case stats.KindSmedan:
		return printLoaded(c.ctx, stats.Smedan(ctx, c.deps, c.date))
	case stats.KindD2C:
		return printLoaded(c.ctx, stats.D2C(ctx, c.deps, c.date))
	case stats.KindB2B:
		return printLoaded(c.ctx, stats.B2B(ctx, c.deps, c.date))
	case stats.KindFinance:
		return printLoaded(c.ctx, stats.Finance(ctx, c.deps, c.date))
	}
	return fmt.Errorf("unknown statistics kind %q", c.kind)
}

func kindNames() []string {
	kinds := stats.Kinds()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = string(k)
	}
	return names
}

// printLoaded waits for an auto-loading adapter and prints its payload.
func printLoaded[T any](ctx *AppContext, a *request.Adapter[T]) error {
	a.Wait()
	return printState(ctx, a.State())
}

func printState[T any](ctx *AppContext, state request.State[T]) error {
	if state.Error != nil {
		return state.Error
	}
	if state.Data == nil {
		return request.ErrSignedOut
	}
	return printJSON(ctx.out(), state.Data.Data)
}
