// Command fin is a personal finance briefing tool: market quotes, news
// scanning, portfolio tracking, alert rules and an economic calendar,
// aggregated into a morning brief.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/oakleyfin/finbrief/cmd"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// completion describes the CLI for shell completion. Must be called before
// flag.Parse: it exits the process when invoked by the shell.
func completion() {
	sub := func() *complete.Command { return &complete.Command{} }
	c := &complete.Command{
		Sub: map[string]*complete.Command{
			"brief":       sub(),
			"forex":       sub(),
			"stock":       sub(),
			"movers":      sub(),
			"commodities": sub(),
			"news":        sub(),
			"calendar":    sub(),
			"portfolio":   sub(),
			"alerts":      sub(),
			"topic":       sub(),
			"help":        sub(),
			"flags":       sub(),
		},
		Flags: map[string]complete.Predictor{
			"data-dir": predict.Dirs("*"),
		},
	}
	c.Complete(path.Base(os.Args[0]))
}

func main() {
	// a .env next to the binary may set FINBRIEF_DATA_DIR; missing is fine.
	godotenv.Load()

	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
