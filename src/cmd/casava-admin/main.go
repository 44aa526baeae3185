package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/casava/admin-console/src/internal/commands"
	"github.com/casava/admin-console/src/internal/log"
)

var (
	version = "dev"
	commit  = "n/a"
	date    = "n/a"
)

func main() {
	ctx := &commands.AppContext{}

	// Define flags
	flag.StringVar(&ctx.ConfigPath, "config", "", "Path to configuration file (optional, environment variables also apply)")
	flag.BoolVar(&ctx.Verbose, "verbose", false, "Enable debug logging")

	// Custom usage message
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Casava Admin Console\n")
		fmt.Fprintf(os.Stderr, "Version: %s (Commit: %s, Date: %s)\n\n", version, commit, date)
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <command>\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Commands:\n")
		fmt.Fprintf(os.Stderr, "  stats <kind>            Show dashboard statistics (smedan, d2c, b2b, finance)\n")
		fmt.Fprintf(os.Stderr, "  customers               List customers\n")
		fmt.Fprintf(os.Stderr, "  customer <id>           Show a single customer\n")
		fmt.Fprintf(os.Stderr, "  create-customer         Create a customer\n")
		fmt.Fprintf(os.Stderr, "  whoami                  Show the identity in the configured session token\n")
		fmt.Fprintf(os.Stderr, "  serve-mock              Run the local mock backend\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if ctx.Verbose {
		log.SetVerbose(true)
	}

	cmds := []commands.Runner{
		commands.CreateStatsCommand(),
		commands.CreateCustomersCommand(),
		commands.CreateShowCustomerCommand(),
		commands.CreateCreateCustomerCommand(),
		commands.CreateWhoAmICommand(),
		commands.CreateServeMockCommand(),
	}

	args := flag.Args()

	if len(args) < 1 {
		flag.Usage()
		os.Exit(1)
	}

	subcommand := args[0]
	for _, cmd := range cmds {
		if cmd.Name() == subcommand {
			if err := cmd.Init(args[1:], ctx); err != nil {
				log.Fatalf("Failed to initialize command: %v", err)
			}

			if err := cmd.Run(); err != nil {
				log.Fatalf("Failed to run command: %v", err)
			}

			os.Exit(0)
		}
	}

	log.Fatalf("Unknown subcommand: %s", subcommand)
}
