// Package commands implements CLI command handlers for casava-admin.
//
// Each command implements the Runner interface: Init parses the command's
// flags and loads configuration, Run performs the work and Name returns the
// subcommand used for routing.
//
// # Available Commands
//
//   - stats: Load one of the dashboard statistics cards
//   - customers: List customers page by page
//   - customer: Show a single customer
//   - create-customer: Submit the create customer form
//   - whoami: Inspect the configured session token
//   - serve-mock: Run the local mock backend
//
// # Example Usage
//
//	cmd := commands.CreateStatsCommand()
//	ctx := &commands.AppContext{ConfigPath: "casava-admin.toml"}
//	if err := cmd.Init([]string{"smedan"}, ctx); err != nil {
//	    log.Fatal(err)
//	}
//	if err := cmd.Run(); err != nil {
//	    log.Fatal(err)
//	}
package commands
