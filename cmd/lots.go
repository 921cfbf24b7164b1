package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/scoobybejesus/cryptools/renderer"
)

// lotsCmd holds the flags for the 'lots' subcommand.
type lotsCmd struct {
	settingsFlags
}

func (*lotsCmd) Name() string     { return "lots" }
func (*lotsCmd) Synopsis() string { return "accounts with their cost-basis lots" }
func (*lotsCmd) Usage() string {
	return `cryptools lots -f <file> [-c <currency>] [-method <1-4>] [-lk-cutoff <date>]

  Imports the transaction history, runs the costing engine, and displays
  every account with its lots, fully depleted lots included.
`
}

func (c *lotsCmd) SetFlags(f *flag.FlagSet) { c.settingsFlags.SetFlags(f) }

func (c *lotsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	settings, _, ledger, _, err := c.run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.AccountsMarkdown(settings, ledger))
	return subcommands.ExitSuccess
}
