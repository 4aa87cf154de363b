package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/oakleyfin/finbrief/renderer"
)

type stockCmd struct {
	live bool
}

func (*stockCmd) Name() string     { return "stock" }
func (*stockCmd) Synopsis() string { return "show data for a single stock" }
func (*stockCmd) Usage() string {
	return `fin stock [-live] <symbol>

  Shows the cached quote for one symbol. With -live, fetches only the
  latest market price, bypassing the cache (but not the rate limiter).

Usage Examples:
$ fin stock BHP.AX
$ fin stock -live BHP.AX

`
}

func (c *stockCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.live, "live", false, "Fetch the latest spot price, skipping the cache.")
}

func (c *stockCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: fin stock [-live] <symbol>")
		return subcommands.ExitUsageError
	}
	symbol := f.Arg(0)

	app, err := openApp()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if c.live {
		price, err := app.Market.Live(symbol)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Live price unavailable: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Printf("%s: %.4f\n", symbol, price)
		return subcommands.ExitSuccess
	}

	q, err := app.Market.Stock(symbol)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Stock data unavailable: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.QuoteMarkdown(q))
	return subcommands.ExitSuccess
}
