package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/oakleyfin/finbrief/renderer"
)

type forexCmd struct {
	pair      string
	period    string
	dashboard bool
}

func (*forexCmd) Name() string     { return "forex" }
func (*forexCmd) Synopsis() string { return "show forex pair data" }
func (*forexCmd) Usage() string {
	return `fin forex [-pair <symbol>] [-period <period>] [-dashboard]

  Shows the default AUD/USD pair, a specific pair, or the full dashboard
  of AUD pairs and major crosses.

Usage Examples:
$ fin forex
$ fin forex -pair EURUSD=X
$ fin forex -dashboard

`
}

func (c *forexCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.pair, "pair", "", "Forex pair symbol (defaults to AUDUSD=X).")
	f.StringVar(&c.period, "period", "5d", "History period used to compute the day change.")
	f.BoolVar(&c.dashboard, "dashboard", false, "Show all watched pairs.")
}

func (c *forexCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	app, err := openApp()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if c.dashboard {
		quotes := app.Market.ForexDashboard()
		if len(quotes) == 0 {
			fmt.Fprintln(os.Stderr, "Forex data unavailable")
			return subcommands.ExitFailure
		}
		printMarkdown(renderer.QuotesMarkdown("Forex Dashboard", quotes))
		return subcommands.ExitSuccess
	}

	q, err := app.Market.Forex(c.pair, c.period)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Forex data unavailable: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.ForexMarkdown(q))
	return subcommands.ExitSuccess
}
