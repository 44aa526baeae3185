package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"sort"

	"github.com/casava/admin-console/src/internal/form"
	"github.com/casava/admin-console/src/internal/request"
	"github.com/casava/admin-console/src/internal/stats"
)

func CreateCreateCustomerCommand() *CreateCustomerCommand {
	return &CreateCustomerCommand{
		fs: flag.NewFlagSet("create-customer", flag.ExitOnError),
	}
}

// CreateCustomerCommand submits the create customer form.
type CreateCustomerCommand struct {
	fs   *flag.FlagSet
	ctx  *AppContext
	deps request.Deps

	firstName string
	lastName  string
	email     string
	phone     string
	multipart bool
}

func (c *CreateCustomerCommand) Name() string {
	return c.fs.Name()
}

func (c *CreateCustomerCommand) Init(args []string, ctx *AppContext) error {
	c.ctx = ctx

	c.fs.StringVar(&c.firstName, "first-name", "", "Customer first name")
	c.fs.StringVar(&c.lastName, "last-name", "", "Customer last name")
	c.fs.StringVar(&c.email, "email", "", "Customer email")
	c.fs.StringVar(&c.phone, "phone", "", "Customer phone number")
	c.fs.BoolVar(&c.multipart, "multipart", false, "Send as multipart/form-data instead of JSON")

	if err := c.fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadAndValidateConfigOrFail(ctx.ConfigPath)
	if err != nil {
		return err
	}
	c.deps = newDeps(ctx, cfg)

	return nil
}

func (c *CreateCustomerCommand) Run() error {
	ctx := context.Background()

	f := stats.NewCustomerForm()
	f.Set("first_name", c.firstName)
	f.Set("last_name", c.lastName)
	f.Set("email", c.email)
	if c.phone != "" {
		f.Set("phone", c.phone)
	}

	binder := form.NewBinder(f, stats.CreateCustomer(ctx, c.deps), form.BinderOptions[stats.Customer]{
		UseFormData: c.multipart,
		WrapperKey:  "customer",
	})

	err := binder.Submit(ctx)
	if err != nil {
		if f.Error != nil {
			fmt.Fprintf(c.ctx.out(), "Error: %s\n", *f.Error)
		}
		printFieldErrors(c.ctx, f)
		if errors.Is(err, form.ErrInvalid) {
			return fmt.Errorf("customer form is invalid")
		}
		return err
	}

	if f.Success != nil {
		fmt.Fprintln(c.ctx.out(), *f.Success)
	}
	return printJSON(c.ctx.out(), binder.Adapter().Data().Data)
}

func printFieldErrors(ctx *AppContext, f *form.Form) {
	errs := f.FieldErrors()
	names := make([]string, 0, len(errs))
	for name := range errs {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		for _, msg := range errs[name] {
			fmt.Fprintf(ctx.out(), "  %s: %s\n", name, msg)
		}
	}
}
