package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/oakleyfin/finbrief"
	"github.com/oakleyfin/finbrief/renderer"
)

type briefCmd struct {
	raw bool
}

func (*briefCmd) Name() string     { return "brief" }
func (*briefCmd) Synopsis() string { return "build the full morning finance briefing" }
func (*briefCmd) Usage() string {
	return `fin brief [-raw]

  Assembles triggered alerts, forex, indices, commodities, top news, the
  economic calendar and the portfolio into one message, truncated to the
  messaging channel limit. Sections with unreachable data degrade to a
  notice instead of aborting the brief.

Usage Examples:
# Render the brief in the terminal.
$ fin brief

# Raw markdown for a delivery pipeline.
$ fin brief -raw | deliver-somewhere

`
}

func (c *briefCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.raw, "raw", false, "Print raw markdown without terminal styling.")
}

func (c *briefCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	app, err := openApp()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	report := finbrief.NewBriefing(app).Build()
	out := renderer.Truncate(renderer.BriefingMarkdown(report), finbrief.MaxMessageLen)

	if c.raw {
		fmt.Println(out)
	} else {
		printMarkdown(out)
	}
	return subcommands.ExitSuccess
}
