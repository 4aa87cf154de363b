package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/oakleyfin/finbrief"
	"github.com/oakleyfin/finbrief/renderer"
	"github.com/shopspring/decimal"
)

type portfolioCmd struct{}

func (*portfolioCmd) Name() string     { return "portfolio" }
func (*portfolioCmd) Synopsis() string { return "manage holdings and show P&L" }
func (*portfolioCmd) Usage() string {
	return `fin portfolio [show]
fin portfolio add <symbol> <shares> <cost-price>
fin portfolio remove <symbol> [shares]
fin portfolio sectors

  Without arguments (or with "show") prints the current valuation.
  "add" records a purchase, merging into an existing holding at average
  cost. "remove" sells the given number of shares, or the whole holding
  when omitted. "sectors" shows the allocation by sector.

Usage Examples:
$ fin portfolio
$ fin portfolio add BHP.AX 100 42.50
$ fin portfolio remove BHP.AX 50
$ fin portfolio sectors

`
}

func (*portfolioCmd) SetFlags(f *flag.FlagSet) {}

func (c *portfolioCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	app, err := openApp()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	action := "show"
	if f.NArg() > 0 {
		action = f.Arg(0)
	}

	switch action {
	case "show":
		return c.show(app)
	case "add":
		return c.add(app, f.Args()[1:])
	case "remove":
		return c.remove(app, f.Args()[1:])
	case "sectors":
		return c.sectors(app)
	default:
		fmt.Fprintf(os.Stderr, "unknown portfolio action %q\n", action)
		return subcommands.ExitUsageError
	}
}

func (c *portfolioCmd) show(app *finbrief.App) subcommands.ExitStatus {
	positions := app.Portfolio.Valuation(app.Market)
	cost, value, pnl, pnlPct := app.Portfolio.Totals(positions)
	printMarkdown(renderer.PortfolioMarkdown(positions, cost, value, pnl, pnlPct))
	return subcommands.ExitSuccess
}

func (c *portfolioCmd) add(app *finbrief.App, args []string) subcommands.ExitStatus {
	if len(args) != 3 {
		fmt.Fprintln(os.Stderr, "usage: fin portfolio add <symbol> <shares> <cost-price>")
		return subcommands.ExitUsageError
	}
	shares, err := decimal.NewFromString(args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid shares %q: %v\n", args[1], err)
		return subcommands.ExitUsageError
	}
	price, err := decimal.NewFromString(args[2])
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid cost price %q: %v\n", args[2], err)
		return subcommands.ExitUsageError
	}

	h, merged, err := app.Portfolio.Add(args[0], shares, price)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	verb := "Added"
	if merged {
		verb = "Updated"
	}
	fmt.Printf("%s %s: %s shares at avg cost %s\n", verb, h.Symbol, h.Shares, h.CostPrice.StringFixed(4))
	return subcommands.ExitSuccess
}

func (c *portfolioCmd) remove(app *finbrief.App, args []string) subcommands.ExitStatus {
	if len(args) < 1 || len(args) > 2 {
		fmt.Fprintln(os.Stderr, "usage: fin portfolio remove <symbol> [shares]")
		return subcommands.ExitUsageError
	}
	shares := decimal.Zero // zero means remove the whole holding
	if len(args) == 2 {
		var err error
		if shares, err = decimal.NewFromString(args[1]); err != nil {
			fmt.Fprintf(os.Stderr, "invalid shares %q: %v\n", args[1], err)
			return subcommands.ExitUsageError
		}
	}

	remaining, removedAll, err := app.Portfolio.Remove(args[0], shares)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if removedAll {
		fmt.Printf("Removed %s\n", args[0])
	} else {
		fmt.Printf("Sold %s %s, %s shares remain\n", args[1], args[0], remaining.Shares)
	}
	return subcommands.ExitSuccess
}

func (c *portfolioCmd) sectors(app *finbrief.App) subcommands.ExitStatus {
	positions := app.Portfolio.Valuation(app.Market)
	weights := finbrief.SectorAllocation(positions, app.Market)
	if len(weights) == 0 {
		fmt.Fprintln(os.Stderr, "No priced holdings")
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.SectorsMarkdown(weights))
	return subcommands.ExitSuccess
}
