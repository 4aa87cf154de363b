package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/google/subcommands"
	"github.com/oakleyfin/finbrief"
	"github.com/oakleyfin/finbrief/renderer"
)

type alertsCmd struct {
	keywords  string
	threshold float64
}

func (*alertsCmd) Name() string     { return "alerts" }
func (*alertsCmd) Synopsis() string { return "manage and check alert rules" }
func (*alertsCmd) Usage() string {
	return `fin alerts [list]
fin alerts add price <symbol> <above|below> <target>
fin alerts add news -keywords <a,b>
fin alerts add volatility <symbol> -threshold <pct>
fin alerts remove <id>
fin alerts check

  Price alerts fire when the last price crosses the target, news alerts
  when a scanned headline mentions a keyword, volatility alerts when the
  day move exceeds the threshold in either direction. "check" evaluates
  every active rule against current data; a rule that fires is marked
  triggered and will not fire again.

Usage Examples:
$ fin alerts add price BHP.AX below 40
$ fin alerts add news -keywords "rba,rate"
$ fin alerts add volatility CBA.AX -threshold 2.5
$ fin alerts check

`
}

func (c *alertsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.keywords, "keywords", "", "Comma-separated keywords for news alerts.")
	f.Float64Var(&c.threshold, "threshold", 2.0, "Day-move threshold in percent for volatility alerts.")
}

func (c *alertsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	app, err := openApp()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	action := "list"
	if f.NArg() > 0 {
		action = f.Arg(0)
	}

	switch action {
	case "list":
		printMarkdown(renderer.AlertsMarkdown(app.Alerts.List()))
		return subcommands.ExitSuccess
	case "add":
		return c.add(app, f.Args()[1:])
	case "remove":
		return c.remove(app, f.Args()[1:])
	case "check":
		return c.check(app)
	default:
		fmt.Fprintf(os.Stderr, "unknown alerts action %q\n", action)
		return subcommands.ExitUsageError
	}
}

func (c *alertsCmd) add(app *finbrief.App, args []string) subcommands.ExitStatus {
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "usage: fin alerts add <price|news|volatility> ...")
		return subcommands.ExitUsageError
	}

	var a finbrief.Alert
	var err error
	switch kind := finbrief.AlertKind(args[0]); kind {
	case finbrief.PriceAlert:
		if len(args) != 4 {
			fmt.Fprintln(os.Stderr, "usage: fin alerts add price <symbol> <above|below> <target>")
			return subcommands.ExitUsageError
		}
		target, perr := strconv.ParseFloat(args[3], 64)
		if perr != nil {
			fmt.Fprintf(os.Stderr, "invalid target %q: %v\n", args[3], perr)
			return subcommands.ExitUsageError
		}
		a, err = app.Alerts.AddPrice(args[1], args[2], target)
	case finbrief.NewsAlert:
		if c.keywords == "" {
			fmt.Fprintln(os.Stderr, "usage: fin alerts add news -keywords <a,b>")
			return subcommands.ExitUsageError
		}
		a, err = app.Alerts.AddNews(splitCommas(c.keywords))
	case finbrief.VolatilityAlert:
		if len(args) != 2 {
			fmt.Fprintln(os.Stderr, "usage: fin alerts add volatility <symbol> -threshold <pct>")
			return subcommands.ExitUsageError
		}
		a, err = app.Alerts.AddVolatility(args[1], c.threshold)
	default:
		fmt.Fprintf(os.Stderr, "unknown alert type %q\n", kind)
		return subcommands.ExitUsageError
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Alert #%d added\n", a.ID)
	return subcommands.ExitSuccess
}

func (c *alertsCmd) remove(app *finbrief.App, args []string) subcommands.ExitStatus {
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "usage: fin alerts remove <id>")
		return subcommands.ExitUsageError
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid alert id %q\n", args[0])
		return subcommands.ExitUsageError
	}
	if err := app.Alerts.Remove(id); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Alert #%d removed\n", id)
	return subcommands.ExitSuccess
}

func (c *alertsCmd) check(app *finbrief.App) subcommands.ExitStatus {
	triggered, err := app.Alerts.Check(app.Market, app.News)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if len(triggered) == 0 {
		fmt.Println("No alerts triggered")
		return subcommands.ExitSuccess
	}
	printMarkdown(renderer.TriggeredMarkdown(triggered))
	return subcommands.ExitSuccess
}
