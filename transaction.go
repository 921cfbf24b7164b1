package cryptools

import (
	"fmt"
	"iter"
	"slices"

	"github.com/scoobybejesus/cryptools/date"
)

// Transaction is the enriched record derived from one ActionRecord: the
// movements it caused and the realized figures, all in the home currency.
// Created once per action record by the costing engine, immutable thereafter.
type Transaction struct {
	ID   uint32 // same sequence id as the originating ActionRecord
	Date date.Date
	Kind TxKind

	// Value is the record's home-currency value, the fair market value of
	// whatever changed hands.
	Value Money

	movements []MovementID

	// Proceeds is the home-currency value of what was given up; CostBasis the
	// home-currency value of the lots consumed. Both are zero for pure
	// acquisitions (basis events, not disposal events).
	Proceeds  Money
	CostBasis Money

	// GainLoss is Proceeds minus CostBasis. When LikeKindDeferred is set the
	// figure is still recorded for reporting but excluded from realized
	// totals, the basis having carried over to the acquired lots instead.
	GainLoss         Money
	LikeKindDeferred bool

	Memo string
}

// Movements returns the ids of the movements this transaction caused.
func (t *Transaction) Movements() []MovementID { return t.movements }

// TransactionStore holds the derived transaction outputs keyed by sequence
// id, iterated in processing order.
type TransactionStore struct {
	txs  []*Transaction
	byID map[uint32]*Transaction
}

// NewTransactionStore creates an empty store.
func NewTransactionStore() *TransactionStore {
	return &TransactionStore{byID: make(map[uint32]*Transaction)}
}

// Append adds a transaction to the store. Sequence ids must be unique.
func (s *TransactionStore) Append(t *Transaction) error {
	if _, dup := s.byID[t.ID]; dup {
		return fmt.Errorf("duplicate transaction id %d", t.ID)
	}
	s.txs = append(s.txs, t)
	s.byID[t.ID] = t
	return nil
}

// Get returns the transaction with the given sequence id, or nil.
func (s *TransactionStore) Get(id uint32) *Transaction { return s.byID[id] }

// Len returns the number of transactions.
func (s *TransactionStore) Len() int { return len(s.txs) }

// All iterates the transactions in processing order.
func (s *TransactionStore) All() iter.Seq[*Transaction] {
	return func(yield func(*Transaction) bool) {
		for _, t := range s.txs {
			if !yield(t) {
				return
			}
		}
	}
}

// RealizedGains sums gain/loss over all transactions except those deferred by
// like-kind treatment.
func (s *TransactionStore) RealizedGains(homeCurrency string) Money {
	total := M(0, homeCurrency)
	for _, t := range s.txs {
		if t.LikeKindDeferred {
			continue
		}
		total = total.Add(t.GainLoss)
	}
	return total
}

// DeferredGains sums the recorded but unrealized gain/loss of like-kind
// transactions.
func (s *TransactionStore) DeferredGains(homeCurrency string) Money {
	total := M(0, homeCurrency)
	for _, t := range s.txs {
		if t.LikeKindDeferred {
			total = total.Add(t.GainLoss)
		}
	}
	return total
}

// Years returns the calendar years the transactions span, ascending.
func (s *TransactionStore) Years() []int {
	var years []int
	for _, t := range s.txs {
		if y := t.Date.Year(); !slices.Contains(years, y) {
			years = append(years, y)
		}
	}
	slices.Sort(years)
	return years
}

// IncomeByYear sums the value of income transactions per calendar year.
// Years with no income are absent from the map.
func (s *TransactionStore) IncomeByYear(homeCurrency string) map[int]Money {
	return s.valueByYear(Income, homeCurrency)
}

// ExpenseByYear sums the value of expense transactions per calendar year.
// Years with no expense are absent from the map.
func (s *TransactionStore) ExpenseByYear(homeCurrency string) map[int]Money {
	return s.valueByYear(Expense, homeCurrency)
}

func (s *TransactionStore) valueByYear(kind TxKind, homeCurrency string) map[int]Money {
	totals := make(map[int]Money)
	for _, t := range s.txs {
		if t.Kind != kind {
			continue
		}
		y := t.Date.Year()
		total, ok := totals[y]
		if !ok {
			total = M(0, homeCurrency)
		}
		totals[y] = total.Add(t.Value)
	}
	return totals
}
