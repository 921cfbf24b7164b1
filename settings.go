package cryptools

import (
	"fmt"
	"strings"

	"github.com/scoobybejesus/cryptools/date"
)

// Settings holds the per-run configuration. It is immutable for the duration
// of a run and passed by reference through the costing engine's entry point.
type Settings struct {
	// HomeCurrency is the fiat currency in which all basis, proceeds, and
	// gain/loss figures are denominated.
	HomeCurrency string

	// LikeKindCutoff is the date through which like-kind exchange treatment
	// applies. The zero Date disables like-kind treatment entirely.
	LikeKindCutoff date.Date

	// CostingMethod selects the lot-depletion order for disposals.
	CostingMethod CostingMethod

	// ISODate expects imported dates as year-month-day instead of the
	// US-style month-day-year.
	ISODate bool

	// DateSeparator is the character separating imported date fields.
	DateSeparator date.Separator

	// OutputDir is where exported reports are written.
	OutputDir string

	// SuppressReports prevents report files from being written after a run.
	SuppressReports bool
}

// NewSettings returns settings with the historical defaults: USD home
// currency, LIFO by lot creation order, hyphen-separated US-style dates,
// reports exported to the current directory.
func NewSettings() *Settings {
	return &Settings{
		HomeCurrency:  "USD",
		CostingMethod: LIFOByCreation,
		DateSeparator: date.Hyphen,
		OutputDir:     ".",
	}
}

// Validate checks that the settings are internally usable.
func (s *Settings) Validate() error {
	if err := ValidateCurrency(s.HomeCurrency); err != nil {
		return fmt.Errorf("invalid home currency: %w", err)
	}
	if s.CostingMethod < LIFOByCreation || s.CostingMethod > FIFOByBasisDate {
		return fmt.Errorf("invalid costing method %d", s.CostingMethod)
	}
	return nil
}

// IsHome reports whether cur is the home currency.
func (s *Settings) IsHome(cur string) bool {
	return strings.EqualFold(cur, s.HomeCurrency)
}

// LikeKindEnabled reports whether a like-kind cutoff date is configured.
func (s *Settings) LikeKindEnabled() bool { return !s.LikeKindCutoff.IsZero() }
