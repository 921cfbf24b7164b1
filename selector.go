package cryptools

import (
	"fmt"
	"slices"
)

// Depletion is one (lot, quantity) pair a disposal will consume.
type Depletion struct {
	Lot      LotID
	Quantity Quantity
}

// SelectLots chooses which open lots to deplete to satisfy a disposal of qty
// from the currency's account, per the costing method. It is a pure function
// of the ledger state: it mutates nothing, and for identical open-lot state
// it always returns the same ordered depletion list.
//
// The total quantity across the returned pairs equals qty exactly. When the
// account's open lots cannot cover qty, it fails with ErrInsufficientFunds,
// reporting requested vs available.
func (l *Ledger) SelectLots(currency string, qty Quantity, method CostingMethod) ([]Depletion, error) {
	if !qty.IsPositive() {
		return nil, fmt.Errorf("cannot dispose of %s %s: %w", qty, currency, ErrInvalidQuantity)
	}
	open := l.OpenLots(currency)

	var available Quantity
	for _, lot := range open {
		available = available.Add(lot.RemainingQuantity)
	}
	if available.LessThan(qty) {
		return nil, fmt.Errorf("cannot dispose of %s %s: only %s available: %w",
			qty, currency, available, ErrInsufficientFunds)
	}

	// Sort by the method's key, descending for LIFO. Ties always break by
	// creation order then lot id, ascending, whatever the method.
	slices.SortStableFunc(open, func(a, b *Lot) int {
		var c int
		if method.byBasisDate() {
			c = a.BasisDate.Compare(b.BasisDate)
		} else {
			c = a.creationOrder - b.creationOrder
		}
		if method.lifo() {
			c = -c
		}
		if c != 0 {
			return c
		}
		if c := a.creationOrder - b.creationOrder; c != 0 {
			return c
		}
		return int(a.id - b.id)
	})

	var selected []Depletion
	outstanding := qty
	for _, lot := range open {
		if outstanding.IsZero() {
			break
		}
		take := lot.RemainingQuantity.Min(outstanding)
		selected = append(selected, Depletion{Lot: lot.id, Quantity: take})
		outstanding = outstanding.Sub(take)
	}
	return selected, nil
}
