package cryptools

import (
	"fmt"

	"github.com/scoobybejesus/cryptools/date"
)

// Process runs the costing engine: one pass over the action records in input
// order, building the account/lot ledger and the derived transactions.
//
// Records must arrive in non-decreasing date order; a record dated before its
// predecessor fails with ErrChronologyViolation before any ledger mutation
// for that record. Any error aborts the run with no partial output.
func Process(actions *ActionStore, settings *Settings) (*Ledger, *TransactionStore, error) {
	if err := settings.Validate(); err != nil {
		return nil, nil, err
	}
	ledger := NewLedger()
	txs := NewTransactionStore()

	// The home account exists even for histories that never touch fiat.
	ledger.GetOrCreateAccount(settings.HomeCurrency)

	var prev date.Date
	for a := range actions.All() {
		if err := a.Validate(settings); err != nil {
			return nil, nil, err
		}
		if !prev.IsZero() && a.Date.Before(prev) {
			return nil, nil, fmt.Errorf("record %d dated %s precedes prior record dated %s: %w",
				a.ID, a.Date, prev, ErrChronologyViolation)
		}
		prev = a.Date

		tx, err := processRecord(ledger, a, settings)
		if err != nil {
			return nil, nil, err
		}
		if err := txs.Append(tx); err != nil {
			return nil, nil, err
		}
	}
	return ledger, txs, nil
}

// processRecord derives one transaction from one action record, posting its
// movements to the ledger.
func processRecord(l *Ledger, a *ActionRecord, s *Settings) (*Transaction, error) {
	home := s.HomeCurrency
	// The record's value may carry no currency (constructed in code rather
	// than imported); adding to a zero home amount pins it to home.
	value := M(0, home).Add(a.Value)
	tx := &Transaction{
		ID: a.ID, Date: a.Date, Kind: a.Kind, Memo: a.Memo, Value: value,
		Proceeds: M(0, home), CostBasis: M(0, home), GainLoss: M(0, home),
	}

	likeKind := a.Kind == Trade &&
		s.LikeKindEnabled() && !a.Date.After(s.LikeKindCutoff) &&
		!s.IsHome(a.OutCurrency) && !s.IsHome(a.InCurrency)

	// Disposal side. Lots are selected and the basis computed in full before
	// the first depletion, so a failing disposal mutates nothing.
	var pairs []Depletion
	if a.Kind.HasDisposal() {
		l.GetOrCreateAccount(a.OutCurrency)
		var err error
		pairs, err = l.SelectLots(a.OutCurrency, a.OutQuantity, s.CostingMethod)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", a.ID, err)
		}
		basis := M(0, home)
		for _, p := range pairs {
			b, err := l.Lot(p.Lot).BasisFor(p.Quantity)
			if err != nil {
				return nil, fmt.Errorf("record %d: %w", a.ID, err)
			}
			basis = basis.Add(b)
		}
		for _, p := range pairs {
			mv, err := l.DepleteLot(p.Lot, p.Quantity, a.ID)
			if err != nil {
				return nil, fmt.Errorf("record %d: %w", a.ID, err)
			}
			tx.movements = append(tx.movements, mv)
		}
		tx.Proceeds = value
		tx.CostBasis = basis
		tx.GainLoss = value.Sub(basis)
	}

	// Acquisition side.
	if a.Kind.HasAcquisition() {
		if likeKind {
			if err := carryOver(l, a, tx, pairs); err != nil {
				return nil, err
			}
			tx.LikeKindDeferred = true
		} else {
			_, mv, err := l.OpenLot(a.InCurrency, a.InQuantity, a.Date, a.Date, value, false, a.ID)
			if err != nil {
				return nil, fmt.Errorf("record %d: %w", a.ID, err)
			}
			tx.movements = append(tx.movements, mv)
		}
	}
	return tx, nil
}

// carryOver opens the acquisition side of a like-kind exchange: one carryover
// lot per consumed source pair, each inheriting that pair's basis and the
// source lot's basis date. The received quantity is apportioned pro rata on a
// cumulative schedule so the opened quantities sum to the received quantity
// exactly, the last lot absorbing the rounding remainder.
func carryOver(l *Ledger, a *ActionRecord, tx *Transaction, pairs []Depletion) error {
	var consumed, allocated Quantity
	carriedBasis := M(0, a.Value.Currency())
	lastOpened := LotID(-1)
	for i, p := range pairs {
		consumed = consumed.Add(p.Quantity)

		var cum Quantity
		if i == len(pairs)-1 {
			cum = a.InQuantity
		} else {
			var err error
			cum, err = a.InQuantity.ProRata(consumed, a.OutQuantity)
			if err != nil {
				return fmt.Errorf("record %d: %w", a.ID, err)
			}
		}
		qty := cum.Sub(allocated)

		src := l.Lot(p.Lot)
		basis, err := src.BasisFor(p.Quantity)
		if err != nil {
			return fmt.Errorf("record %d: %w", a.ID, err)
		}
		basis = basis.Add(carriedBasis)
		carriedBasis = M(0, basis.Currency())

		// A dust pair can round to a zero share; its basis rides along to the
		// next lot instead of opening an empty one.
		if !qty.IsPositive() {
			carriedBasis = basis
			continue
		}
		allocated = allocated.Add(qty)

		id, mv, err := l.OpenLot(a.InCurrency, qty, a.Date, src.BasisDate, basis, true, a.ID)
		if err != nil {
			return fmt.Errorf("record %d: %w", a.ID, err)
		}
		lastOpened = id
		tx.movements = append(tx.movements, mv)
	}
	// If the final pair's share rounded to zero its basis is still owed; it
	// lands on the last lot actually opened.
	if !carriedBasis.IsZero() && lastOpened >= 0 {
		lot := l.Lot(lastOpened)
		lot.Basis = lot.Basis.Add(carriedBasis)
	}
	return nil
}
