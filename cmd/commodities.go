package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/oakleyfin/finbrief/renderer"
)

type commoditiesCmd struct {
	indices bool
}

func (*commoditiesCmd) Name() string     { return "commodities" }
func (*commoditiesCmd) Synopsis() string { return "show commodity and index prices" }
func (*commoditiesCmd) Usage() string {
	return `fin commodities [-indices]

  Shows the watched commodity futures (gold, iron ore, oil, copper),
  or the watched market indices with -indices.

Usage Examples:
$ fin commodities
$ fin commodities -indices

`
}

func (c *commoditiesCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.indices, "indices", false, "Show market indices instead of commodities.")
}

func (c *commoditiesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	app, err := openApp()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	title, quotes := "Commodities", app.Market.Commodities()
	if c.indices {
		title, quotes = "Market Indices", app.Market.Indices()
	}
	if len(quotes) == 0 {
		fmt.Fprintln(os.Stderr, "Market data unavailable")
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.QuotesMarkdown(title, quotes))
	return subcommands.ExitSuccess
}
