package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/scoobybejesus/cryptools/renderer"
)

// transactionsCmd holds the flags for the 'transactions' subcommand.
type transactionsCmd struct {
	settingsFlags
}

func (*transactionsCmd) Name() string     { return "transactions" }
func (*transactionsCmd) Synopsis() string { return "enriched transaction list" }
func (*transactionsCmd) Usage() string {
	return `cryptools transactions -f <file> [-c <currency>] [-method <1-4>] [-lk-cutoff <date>]

  Imports the transaction history, runs the costing engine, and displays the
  full enriched transaction list.
`
}

func (c *transactionsCmd) SetFlags(f *flag.FlagSet) { c.settingsFlags.SetFlags(f) }

func (c *transactionsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	settings, actions, _, txs, err := c.run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.TransactionsMarkdown(settings, actions, txs))
	return subcommands.ExitSuccess
}
