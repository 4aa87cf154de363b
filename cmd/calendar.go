package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/oakleyfin/finbrief/renderer"
)

type calendarCmd struct {
	days      int
	country   string
	recurring bool
}

func (*calendarCmd) Name() string     { return "calendar" }
func (*calendarCmd) Synopsis() string { return "show upcoming economic events" }
func (*calendarCmd) Usage() string {
	return `fin calendar [-days <n>] [-country <code>] [-recurring]

  Shows scheduled economic events (central bank meetings, CPI releases,
  employment data) within the next days. -recurring lists the known
  recurring schedule instead of dated events.

Usage Examples:
$ fin calendar
$ fin calendar -days 14 -country AU
$ fin calendar -recurring

`
}

func (c *calendarCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.days, "days", 7, "Look-ahead window in days.")
	f.StringVar(&c.country, "country", "", "Country code filter (AU, US, ...).")
	f.BoolVar(&c.recurring, "recurring", false, "Show recurring event schedule.")
}

func (c *calendarCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	app, err := openApp()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if c.recurring {
		printMarkdown(renderer.RecurringMarkdown(app.Calendar.Recurring(c.country)))
		return subcommands.ExitSuccess
	}

	events, err := app.Calendar.Upcoming(c.days, c.country)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Calendar unavailable: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.CalendarMarkdown(events))
	return subcommands.ExitSuccess
}
