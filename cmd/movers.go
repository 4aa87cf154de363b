package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/oakleyfin/finbrief/renderer"
)

type moversCmd struct {
	limit int
}

func (*moversCmd) Name() string     { return "movers" }
func (*moversCmd) Synopsis() string { return "show top ASX gainers and losers" }
func (*moversCmd) Usage() string {
	return `fin movers [-limit <n>]

  Ranks the watched ASX stocks by day change and shows the biggest
  gainers and losers.

Usage Examples:
$ fin movers
$ fin movers -limit 3

`
}

func (c *moversCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.limit, "limit", 5, "Number of gainers and losers to show.")
}

func (c *moversCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	app, err := openApp()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	m := app.Market.Movers(c.limit)
	if len(m.Gainers) == 0 && len(m.Losers) == 0 {
		fmt.Fprintln(os.Stderr, "Market data unavailable")
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.MoversMarkdown(m))
	return subcommands.ExitSuccess
}
