package cryptools

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/scoobybejesus/cryptools/date"
)

// this file contains functions to handle the import/export formats.
// The import format is a plain CSV ledger of transactions; exports are CSV
// datasets and a plain-text journal, all meant to be human readable.

// importHeader lists the import columns, in order. Dates use the configured
// separator and field order; quantities and values are plain decimals; value
// is denominated in the home currency.
var importHeader = []string{
	"date", "kind", "out_currency", "out_quantity", "in_currency", "in_quantity", "value", "memo",
}

// ImportActionRecords imports a full transaction history from 'r' in the
// import format. Sequence ids are assigned in row order starting at 1. A
// malformed row aborts the import, identifying the row.
func ImportActionRecords(r io.Reader, s *Settings) (*ActionStore, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("cannot read import header: %w", err)
	}
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, name := range importHeader[:7] { // memo is optional
		if _, ok := col[name]; !ok {
			return nil, fmt.Errorf("import header misses column %q", name)
		}
	}
	field := func(row []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	store := NewActionStore()
	var seq uint32
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("cannot read import row: %w", err)
		}
		seq++

		a := &ActionRecord{ID: seq, Memo: field(row, "memo")}

		a.Date, err = date.ParseImported(field(row, "date"), s.DateSeparator, s.ISODate)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", seq, err)
		}
		a.Kind, err = ParseTxKind(field(row, "kind"))
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", seq, err)
		}
		if a.Kind.HasDisposal() {
			a.OutCurrency = strings.ToUpper(field(row, "out_currency"))
			a.OutQuantity, err = ParseQuantity(field(row, "out_quantity"))
			if err != nil {
				return nil, fmt.Errorf("row %d: %w", seq, err)
			}
		}
		if a.Kind.HasAcquisition() {
			a.InCurrency = strings.ToUpper(field(row, "in_currency"))
			a.InQuantity, err = ParseQuantity(field(row, "in_quantity"))
			if err != nil {
				return nil, fmt.Errorf("row %d: %w", seq, err)
			}
		}
		a.Value, err = ParseMoney(field(row, "value"), s.HomeCurrency)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", seq, err)
		}
		if err := a.Validate(s); err != nil {
			return nil, fmt.Errorf("row %d: %w", seq, err)
		}
		if err := store.Append(a); err != nil {
			return nil, fmt.Errorf("row %d: %w", seq, err)
		}
	}
	return store, nil
}

// ExportTransactionsCSV exports the derived transactions to 'w': one row per
// transaction with its realized figures.
func ExportTransactionsCSV(w io.Writer, s *Settings, actions *ActionStore, txs *TransactionStore) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{
		"id", "date", "kind", "out_currency", "out_quantity", "in_currency", "in_quantity",
		"proceeds", "cost_basis", "gain_loss", "like_kind_deferred", "memo",
	}); err != nil {
		return fmt.Errorf("cannot write transactions export: %w", err)
	}
	for t := range txs.All() {
		a := actions.Get(t.ID)
		if a == nil {
			return fmt.Errorf("transaction %d has no action record", t.ID)
		}
		row := []string{
			fmt.Sprintf("%d", t.ID),
			t.Date.String(),
			t.Kind.String(),
			a.OutCurrency,
			quantityField(a.Kind.HasDisposal(), a.OutQuantity),
			a.InCurrency,
			quantityField(a.Kind.HasAcquisition(), a.InQuantity),
			moneyField(t.Proceeds),
			moneyField(t.CostBasis),
			moneyField(t.GainLoss),
			fmt.Sprintf("%t", t.LikeKindDeferred),
			t.Memo,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("cannot write transaction %d: %w", t.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportAccountLotsCSV exports every lot of every account to 'w', closed lots
// included.
func ExportAccountLotsCSV(w io.Writer, s *Settings, ledger *Ledger) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{
		"currency", "lot", "creation_date", "basis_date",
		"original_quantity", "remaining_quantity", "cost_basis", "like_kind_carryover", "status",
	}); err != nil {
		return fmt.Errorf("cannot write lots export: %w", err)
	}
	for _, currency := range ledger.Currencies() {
		account, _ := ledger.Account(currency)
		for _, id := range account.Lots() {
			lot := ledger.Lot(id)
			status := "closed"
			if lot.IsOpen() {
				status = "open"
			}
			row := []string{
				currency,
				fmt.Sprintf("%d", lot.CreationOrder()+1),
				lot.CreationDate.String(),
				lot.BasisDate.String(),
				lot.OriginalQuantity.String(),
				lot.RemainingQuantity.String(),
				moneyField(lot.Basis),
				fmt.Sprintf("%t", lot.LikeKindCarryover),
				status,
			}
			if err := cw.Write(row); err != nil {
				return fmt.Errorf("cannot write lot %d of %s: %w", id, currency, err)
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportJournalEntries exports plain-text double-entry journal lines to 'w',
// one entry per transaction, all figures in the home currency.
func ExportJournalEntries(w io.Writer, s *Settings, actions *ActionStore, txs *TransactionStore) error {
	for t := range txs.All() {
		a := actions.Get(t.ID)
		if a == nil {
			return fmt.Errorf("transaction %d has no action record", t.ID)
		}
		header := fmt.Sprintf("%s  %s", t.Date, t.Kind)
		if t.Memo != "" {
			header += "  ; " + t.Memo
		}
		if _, err := fmt.Fprintln(w, header); err != nil {
			return err
		}
		if a.Kind.HasAcquisition() {
			// The debit is the basis placed on the new lots: carried-over
			// basis for a like-kind exchange, the record's value otherwise.
			debit := M(0, s.HomeCurrency).Add(a.Value)
			if t.LikeKindDeferred {
				debit = t.CostBasis
			}
			fmt.Fprintf(w, "    Dr  %-12s %14s\n", a.InCurrency, debit)
		}
		if a.Kind.HasDisposal() {
			fmt.Fprintf(w, "    Cr  %-12s %14s\n", a.OutCurrency, t.CostBasis)
			label := "Realized gain/loss"
			if t.LikeKindDeferred {
				label = "Deferred gain/loss"
			}
			if !t.GainLoss.IsZero() {
				fmt.Fprintf(w, "    %-16s %14s\n", label, t.GainLoss.SignedString())
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

func moneyField(m Money) string { return m.Decimal().StringFixed(MoneyScale) }

func quantityField(set bool, q Quantity) string {
	if !set {
		return ""
	}
	return q.String()
}
