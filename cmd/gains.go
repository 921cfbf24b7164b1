package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/scoobybejesus/cryptools/renderer"
)

// gainsCmd holds the flags for the 'gains' subcommand.
type gainsCmd struct {
	settingsFlags
}

func (*gainsCmd) Name() string     { return "gains" }
func (*gainsCmd) Synopsis() string { return "realized and deferred gain/loss report" }
func (*gainsCmd) Usage() string {
	return `cryptools gains -f <file> [-c <currency>] [-method <1-4>] [-lk-cutoff <date>]

  Imports the transaction history, runs the costing engine, and displays
  per-disposal proceeds, cost basis, and gain/loss, plus the run totals.
`
}

func (c *gainsCmd) SetFlags(f *flag.FlagSet) { c.settingsFlags.SetFlags(f) }

func (c *gainsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	settings, actions, _, txs, err := c.run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.GainsMarkdown(settings, actions, txs))
	return subcommands.ExitSuccess
}
