// Package cmd implements the CLI commands of the fin application.
package cmd

import (
	"flag"

	"github.com/google/subcommands"
	"github.com/oakleyfin/finbrief"
)

// Register the subcommands. A main package calls Register() and then
// Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&briefCmd{}, "reports")
	c.Register(&forexCmd{}, "markets")
	c.Register(&stockCmd{}, "markets")
	c.Register(&moversCmd{}, "markets")
	c.Register(&commoditiesCmd{}, "markets")
	c.Register(&newsCmd{}, "news")
	c.Register(&calendarCmd{}, "news")
	c.Register(&portfolioCmd{}, "portfolio")
	c.Register(&alertsCmd{}, "alerts")
	c.Register(&topicCmd{}, "help")
}

// as a CLI application the process is short lived, so package-level flags
// shared by all commands are fine here.

var dataDirFlag = flag.String("data-dir", "", "Directory for cache, portfolio and alert state.\n Defaults to $FINBRIEF_DATA_DIR or ~/.finbrief.")

// openApp is the central constructor used by every command.
func openApp() (*finbrief.App, error) {
	cfg := finbrief.DefaultConfig()
	if *dataDirFlag != "" {
		cfg.DataDir = *dataDirFlag
	}
	return finbrief.NewApp(cfg)
}
