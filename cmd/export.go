package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/subcommands"

	"github.com/scoobybejesus/cryptools"
	"github.com/scoobybejesus/cryptools/internal/logger"
	"github.com/scoobybejesus/cryptools/renderer"
)

// exportCmd holds the flags for the 'export' subcommand.
type exportCmd struct {
	settingsFlags
	outputDir string
	suppress  bool
	verbose   bool
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "run the full import and write all reports to files" }
func (*exportCmd) Usage() string {
	return `cryptools export -f <file> [-o <dir>] [-c <currency>] [-method <1-4>] [-lk-cutoff <date>]

  Imports the transaction history, runs the costing engine, and writes the
  transaction CSV, the account/lot CSV, the plain-text journal entries, and
  the markdown reports to the output directory.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	c.settingsFlags.SetFlags(f)
	f.StringVar(&c.outputDir, "o", envOr("OUTPUT_DIR", "."), "Output directory for exported reports")
	f.BoolVar(&c.suppress, "suppress", false, "Process the import but write no report files")
	f.BoolVar(&c.verbose, "v", false, "Verbose diagnostics")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	logger.SetVerbose(c.verbose)
	log := logger.New()

	settings, actions, ledger, txs, err := c.run()
	if err != nil {
		log.Error().Err(err).Msg("run aborted")
		return subcommands.ExitFailure
	}
	settings.OutputDir = c.outputDir
	settings.SuppressReports = c.suppress

	log.Info().
		Int("records", actions.Len()).
		Int("accounts", len(ledger.Currencies())).
		Str("realized", txs.RealizedGains(settings.HomeCurrency).String()).
		Msg("import processed")

	if settings.SuppressReports {
		log.Info().Msg("report files suppressed")
		return subcommands.ExitSuccess
	}

	exports := []struct {
		name  string
		write func(f *os.File) error
	}{
		{"transactions.csv", func(f *os.File) error {
			return cryptools.ExportTransactionsCSV(f, settings, actions, txs)
		}},
		{"account_lots.csv", func(f *os.File) error {
			return cryptools.ExportAccountLotsCSV(f, settings, ledger)
		}},
		{"journal.txt", func(f *os.File) error {
			return cryptools.ExportJournalEntries(f, settings, actions, txs)
		}},
		{"accounts.md", func(f *os.File) error {
			_, err := f.WriteString(renderer.AccountsMarkdown(settings, ledger))
			return err
		}},
		{"gains.md", func(f *os.File) error {
			_, err := f.WriteString(renderer.GainsMarkdown(settings, actions, txs))
			return err
		}},
	}
	for _, e := range exports {
		path := filepath.Join(settings.OutputDir, e.name)
		if err := writeFile(path, e.write); err != nil {
			log.Error().Err(err).Str("file", path).Msg("export failed")
			return subcommands.ExitFailure
		}
		log.Debug().Str("file", path).Msg("exported")
	}

	fmt.Printf("Reports written to %s\n", settings.OutputDir)
	return subcommands.ExitSuccess
}

func writeFile(path string, write func(f *os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := write(f); err != nil {
		return err
	}
	return f.Close()
}
