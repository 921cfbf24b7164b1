// Package renderer turns the finished account, lot, and transaction datasets
// into markdown reports. It only reads; the datasets are immutable by the
// time they reach it.
package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/scoobybejesus/cryptools"
)

// AccountsMarkdown renders every account with its lots, fully depleted lots
// included.
func AccountsMarkdown(s *cryptools.Settings, ledger *cryptools.Ledger) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Accounts and Lots")

	for _, currency := range ledger.Currencies() {
		account, _ := ledger.Account(currency)
		doc.H2(fmt.Sprintf("%s (balance %s)", currency, account.Balance()))

		if len(account.Lots()) == 0 {
			doc.PlainText("No lots.")
			continue
		}

		table := md.TableSet{
			Alignment: []md.TableAlignment{
				md.AlignRight,
				md.AlignLeft,
				md.AlignLeft,
				md.AlignRight,
				md.AlignRight,
				md.AlignRight,
				md.AlignLeft,
			},
			Header: []string{"Lot", "Created", "Basis Date", "Original", "Remaining", "Cost Basis", "Notes"},
		}
		for _, id := range account.Lots() {
			lot := ledger.Lot(id)
			notes := ""
			if lot.LikeKindCarryover {
				notes = "like-kind carryover"
			}
			if !lot.IsOpen() {
				if notes != "" {
					notes += ", "
				}
				notes += "closed"
			}
			table.Rows = append(table.Rows, []string{
				fmt.Sprintf("%d", lot.CreationOrder()+1),
				lot.CreationDate.String(),
				lot.BasisDate.String(),
				lot.OriginalQuantity.String(),
				lot.RemainingQuantity.String(),
				lot.Basis.String(),
				notes,
			})
		}
		doc.Table(table)
	}

	doc.Build()
	return buf.String()
}
