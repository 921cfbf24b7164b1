// Package cmd implements the CLI application that imports a transaction
// history and prints or exports the resulting accounting reports.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"

	"github.com/scoobybejesus/cryptools"
	"github.com/scoobybejesus/cryptools/date"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&lotsCmd{}, "reports")
	c.Register(&gainsCmd{}, "reports")
	c.Register(&transactionsCmd{}, "reports")
	c.Register(&exportCmd{}, "exports")
}

// envOr returns the environment value for key, or def when unset. A .env file
// loaded at startup can provide these.
func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// settingsFlags holds the flags shared by every subcommand that runs the
// costing engine over an import file.
type settingsFlags struct {
	file         string
	homeCurrency string
	lkCutoff     string
	method       string
	iso          bool
	separator    string
}

func (s *settingsFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&s.file, "f", envOr("IMPORT_FILE", ""), "CSV file of transactions to import")
	f.StringVar(&s.homeCurrency, "c", envOr("HOME_CURRENCY", "USD"), "Home currency in which reports are denominated")
	f.StringVar(&s.lkCutoff, "lk-cutoff", envOr("LK_CUTOFF_DATE", ""), "Like-kind exchange cutoff date (YYYY-MM-DD); empty disables")
	f.StringVar(&s.method, "method", envOr("INV_COSTING_METHOD", "1"), "Costing method: 1 LIFO/creation, 2 LIFO/basis date, 3 FIFO/creation, 4 FIFO/basis date")
	f.BoolVar(&s.iso, "iso", false, "Import dates are ISO-ordered (year-month-day) instead of US-style")
	f.StringVar(&s.separator, "date-separator", "h", "Import date separator: h, s, or p (hyphen, slash, period)")
}

// Settings builds the run settings from the flags.
func (s *settingsFlags) Settings() (*cryptools.Settings, error) {
	settings := cryptools.NewSettings()
	settings.HomeCurrency = s.homeCurrency
	settings.ISODate = s.iso

	var err error
	if settings.CostingMethod, err = cryptools.ParseCostingMethod(s.method); err != nil {
		return nil, err
	}
	if settings.DateSeparator, err = date.ParseSeparator(s.separator); err != nil {
		return nil, err
	}
	if s.lkCutoff != "" {
		if settings.LikeKindCutoff, err = date.Parse(s.lkCutoff); err != nil {
			return nil, fmt.Errorf("invalid like-kind cutoff: %w", err)
		}
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return settings, nil
}

// run imports the file and processes the full history through the costing
// engine.
func (s *settingsFlags) run() (*cryptools.Settings, *cryptools.ActionStore, *cryptools.Ledger, *cryptools.TransactionStore, error) {
	settings, err := s.Settings()
	if err != nil {
		return nil, nil, nil, nil, err
	}
	if s.file == "" {
		return nil, nil, nil, nil, fmt.Errorf("no import file: set -f or IMPORT_FILE")
	}
	f, err := os.Open(s.file)
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("cannot open import file: %w", err)
	}
	defer f.Close()

	actions, err := cryptools.ImportActionRecords(f, settings)
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("importing %q: %w", s.file, err)
	}
	ledger, txs, err := cryptools.Process(actions, settings)
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("processing %q: %w", s.file, err)
	}
	return settings, actions, ledger, txs, nil
}

// printMarkdown renders a markdown report to the terminal.
func printMarkdown(markdown string) {
	out, err := glamour.Render(markdown, "auto")
	if err != nil {
		// Fall back to the raw markdown.
		fmt.Println(markdown)
		return
	}
	fmt.Print(out)
}
