package renderer

import (
	"fmt"
	"strings"

	"github.com/scoobybejesus/cryptools"
)

// GainsMarkdown renders the realized gain/loss report: per-disposal figures
// and the run totals, with like-kind-deferred amounts broken out.
func GainsMarkdown(s *cryptools.Settings, actions *cryptools.ActionStore, txs *cryptools.TransactionStore) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Gains and Losses (%s)\n\n", s.HomeCurrency)
	fmt.Fprintf(&b, "Costing method: %s\n\n", s.CostingMethod)
	if s.LikeKindEnabled() {
		fmt.Fprintf(&b, "Like-kind exchange treatment through %s\n\n", s.LikeKindCutoff)
	}

	fmt.Fprint(&b, "## Disposals\n\n")
	fmt.Fprintln(&b, "| Id | Date | Kind | Disposed | Proceeds | Cost Basis | Gain/Loss | |")
	fmt.Fprintln(&b, "|---:|:---|:---|---:|---:|---:|---:|:---|")

	for t := range txs.All() {
		if !t.Kind.HasDisposal() {
			continue
		}
		a := actions.Get(t.ID)
		note := ""
		if t.LikeKindDeferred {
			note = "deferred"
		}
		fmt.Fprintf(&b, "| %d | %s | %s | %s %s | %s | %s | %s | %s |\n",
			t.ID, t.Date, t.Kind,
			a.OutQuantity, a.OutCurrency,
			t.Proceeds, t.CostBasis, t.GainLoss.SignedString(), note,
		)
	}
	fmt.Fprintln(&b)

	income := txs.IncomeByYear(s.HomeCurrency)
	expense := txs.ExpenseByYear(s.HomeCurrency)

	fmt.Fprint(&b, "## Totals\n\n")
	fmt.Fprintln(&b, "| | |")
	fmt.Fprintln(&b, "|:---|---:|")
	fmt.Fprintf(&b, "| Realized gain/loss | %s |\n", txs.RealizedGains(s.HomeCurrency).SignedString())
	if s.LikeKindEnabled() {
		fmt.Fprintf(&b, "| Deferred (like-kind) | %s |\n", txs.DeferredGains(s.HomeCurrency).SignedString())
	}
	// Income and expense are tax figures, reported per calendar year.
	for _, year := range txs.Years() {
		if v, ok := income[year]; ok {
			fmt.Fprintf(&b, "| Income %d | %s |\n", year, v)
		}
		if v, ok := expense[year]; ok {
			fmt.Fprintf(&b, "| Expense %d | %s |\n", year, v)
		}
	}

	return b.String()
}
