package commands

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/casava/admin-console/src/internal/config"
	"github.com/casava/admin-console/src/internal/contracts"
	"github.com/casava/admin-console/src/internal/request"
	"github.com/casava/admin-console/src/internal/stats"
)

func CreateCustomersCommand() *CustomersCommand {
	return &CustomersCommand{
		fs: flag.NewFlagSet("customers", flag.ExitOnError),
	}
}

// CustomersCommand prints a page of the customer list.
type CustomersCommand struct {
	fs   *flag.FlagSet
	ctx  *AppContext
	cfg  *config.Config
	deps request.Deps

	page    int
	perPage int
	search  string
	asJSON  bool
}

func (c *CustomersCommand) Name() string {
	return c.fs.Name()
}

func (c *CustomersCommand) Init(args []string, ctx *AppContext) error {
	c.ctx = ctx

	c.fs.IntVar(&c.page, "page", 1, "Page to load")
	c.fs.IntVar(&c.perPage, "per-page", 0, "Customers per page (default: server default)")
	c.fs.StringVar(&c.search, "search", "", "Filter by name or email")
	c.fs.BoolVar(&c.asJSON, "json", false, "Print the raw page as JSON")

	if err := c.fs.Parse(args); err != nil {
		return err
	}
	if c.page < 1 {
		return fmt.Errorf("-page must be >= 1")
	}

	cfg, err := loadAndValidateConfigOrFail(ctx.ConfigPath)
	if err != nil {
		return err
	}
	c.cfg = cfg
	c.deps = newDeps(ctx, cfg)

	return nil
}

func (c *CustomersCommand) params() map[string]any {
	params := map[string]any{"page": c.page}
	if c.perPage > 0 {
		params["per_page"] = c.perPage
	}
	if c.search != "" {
		params["search"] = c.search
	}
	return params
}

func (c *CustomersCommand) Run() error {
	a := stats.Customers(context.Background(), c.deps, c.params())
	a.Wait()

	state := a.State()
	if c.asJSON || state.Error != nil || state.Data == nil {
		return printState(c.ctx, state)
	}

	page := state.Data.Data
	w := c.ctx.out()
	for _, customer := range page.Data {
		verified := ""
		if customer.Verified {
			verified = " (verified)"
		}
		fmt.Fprintf(w, "%s  %s %s <%s>%s\n", customer.ID, customer.FirstName, customer.LastName, customer.Email, verified)
	}

	meta := contracts.DatatableMetaFromPage(page.Meta, len(page.Data))
	fmt.Fprintf(w, "\nPage %d of %d, %d customers total\n", meta.Page, meta.Pages, meta.Total)
	if buttons := contracts.PaginationButtons(meta); len(buttons) > 3 {
		fmt.Fprintf(w, "%s\n", formatButtons(buttons))
	}
	return nil
}

func formatButtons(buttons []contracts.DatatablePaginationLink) string {
	parts := make([]string, 0, len(buttons))
	for _, b := range buttons {
		switch {
		case b.IsActive:
			parts = append(parts, "["+b.Title+"]")
		case b.IsDisabled && b.Title != "...":
			parts = append(parts, "("+b.Title+")")
		default:
			parts = append(parts, b.Title)
		}
	}
	return strings.Join(parts, " ")
}

func CreateShowCustomerCommand() *CustomerCommand {
	return &CustomerCommand{
		fs: flag.NewFlagSet("customer", flag.ExitOnError),
	}
}

// CustomerCommand prints a single customer by id.
type CustomerCommand struct {
	fs   *flag.FlagSet
	ctx  *AppContext
	deps request.Deps
	id   string
}

func (c *CustomerCommand) Name() string {
	return c.fs.Name()
}

func (c *CustomerCommand) Init(args []string, ctx *AppContext) error {
	c.ctx = ctx

	if err := c.fs.Parse(args); err != nil {
		return err
	}
	if c.fs.NArg() != 1 {
		return fmt.Errorf("usage: customer <id>")
	}
	c.id = c.fs.Arg(0)

	cfg, err := loadAndValidateConfigOrFail(ctx.ConfigPath)
	if err != nil {
		return err
	}
	c.deps = newDeps(ctx, cfg)

	return nil
}

func (c *CustomerCommand) Run() error {
	return printLoaded(c.ctx, stats.CustomerByID(context.Background(), c.deps, c.id))
}
