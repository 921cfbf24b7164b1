package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/scoobybejesus/cryptools"
)

// TransactionsMarkdown renders the full enriched transaction list, one row
// per transaction.
func TransactionsMarkdown(s *cryptools.Settings, actions *cryptools.ActionStore, txs *cryptools.TransactionStore) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Transactions")

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignRight,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignLeft,
		},
		Header: []string{"Id", "Date", "Kind", "Out", "In", "Proceeds", "Cost Basis", "Gain/Loss", "Memo"},
	}
	for t := range txs.All() {
		a := actions.Get(t.ID)
		out, in := "", ""
		if a.Kind.HasDisposal() {
			out = fmt.Sprintf("%s %s", a.OutQuantity, a.OutCurrency)
		}
		if a.Kind.HasAcquisition() {
			in = fmt.Sprintf("%s %s", a.InQuantity, a.InCurrency)
		}
		memo := t.Memo
		if t.LikeKindDeferred {
			if memo != "" {
				memo += " "
			}
			memo += "(like-kind)"
		}
		table.Rows = append(table.Rows, []string{
			fmt.Sprintf("%d", t.ID),
			t.Date.String(),
			t.Kind.String(),
			out,
			in,
			t.Proceeds.String(),
			t.CostBasis.String(),
			t.GainLoss.SignedString(),
			memo,
		})
	}
	doc.Table(table)

	doc.Build()
	return buf.String()
}
