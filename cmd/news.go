package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/oakleyfin/finbrief"
	"github.com/oakleyfin/finbrief/renderer"
)

type newsCmd struct {
	category string
	keywords string
	limit    int
	verbose  bool
}

func (*newsCmd) Name() string     { return "news" }
func (*newsCmd) Synopsis() string { return "scan RSS feeds for financial headlines" }
func (*newsCmd) Usage() string {
	return `fin news [-category <name>] [-keywords <a,b>] [-limit <n>] [-v]

  Scans the configured RSS feeds, scores headlines by financial
  relevance and prints the top ones. -keywords restricts the scan to
  headlines mentioning any of the given words.

Usage Examples:
$ fin news
$ fin news -category australia -limit 5
$ fin news -keywords "rba,rate cut"

`
}

func (c *newsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.category, "category", "", "Feed category to scan (e.g. australia, markets).")
	f.StringVar(&c.keywords, "keywords", "", "Comma-separated keywords to filter headlines on.")
	f.IntVar(&c.limit, "limit", 10, "Maximum number of headlines.")
	f.BoolVar(&c.verbose, "v", false, "Show relevance scores.")
}

func (c *newsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	app, err := openApp()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	var items []finbrief.NewsItem
	if c.keywords != "" {
		items, err = app.News.ScanForKeywords(splitCommas(c.keywords), c.limit)
	} else {
		items, err = app.News.Scan(c.category, c.limit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "News unavailable: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.NewsMarkdown(items, c.verbose))
	return subcommands.ExitSuccess
}

// splitCommas trims whitespace around each comma separated field and drops
// empty ones.
func splitCommas(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
