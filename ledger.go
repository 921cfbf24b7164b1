package cryptools

import (
	"fmt"

	"github.com/scoobybejesus/cryptools/date"
)

// LotID addresses a Lot in the ledger's arena.
type LotID int

// MovementID addresses a Movement in the ledger's arena.
type MovementID int

// MovementDirection distinguishes the creation of a lot from a depletion.
type MovementDirection int

const (
	// Inflow records the full creation of a lot.
	Inflow MovementDirection = iota + 1
	// Outflow records one depletion of a lot.
	Outflow
)

func (d MovementDirection) String() string {
	switch d {
	case Inflow:
		return "inflow"
	case Outflow:
		return "outflow"
	default:
		return "unknown"
	}
}

// Movement records one quantity moved into or out of a lot, tied to the
// transaction that caused it. Movements hold ids, not pointers: lots and
// transactions live in arenas.
type Movement struct {
	Lot         LotID
	Transaction uint32 // sequence id of the causing transaction
	Direction   MovementDirection
	Quantity    Quantity
}

// Lot is a quantity of one currency acquired at a specific instant. A lot is
// immutable except for its remaining quantity, which only a movement may
// decrease. Fully depleted lots are never deleted; they remain for reporting.
type Lot struct {
	id            LotID
	currency      string
	creationOrder int // ordinal within the owning account

	// CreationDate is when the lot was opened in this ledger. BasisDate is
	// normally the same day, but a like-kind carryover lot retains the basis
	// date of the lot whose basis it inherited.
	CreationDate date.Date
	BasisDate    date.Date

	OriginalQuantity  Quantity
	RemainingQuantity Quantity

	// Basis is the home-currency cost basis for the original quantity.
	Basis Money

	// LikeKindCarryover marks a lot whose basis was inherited through a
	// like-kind exchange rather than set to fair-market value.
	LikeKindCarryover bool
}

// ID returns the lot's arena id.
func (l *Lot) ID() LotID { return l.id }

// Currency returns the currency the lot is denominated in.
func (l *Lot) Currency() string { return l.currency }

// CreationOrder returns the lot's ordinal within its account.
func (l *Lot) CreationOrder() int { return l.creationOrder }

// IsOpen reports whether the lot still has undepleted quantity.
func (l *Lot) IsOpen() bool { return l.RemainingQuantity.IsPositive() }

// BasisFor apportions the lot's basis to a partial quantity, pro rata over
// the original quantity.
func (l *Lot) BasisFor(qty Quantity) (Money, error) {
	if qty.Equal(l.OriginalQuantity) {
		return l.Basis, nil
	}
	return l.Basis.ProRata(qty, l.OriginalQuantity)
}

// Account holds all lots of one currency, in creation order, plus the running
// balance. The balance always equals the sum of the lots' remaining
// quantities.
type Account struct {
	currency string
	lots     []LotID
	balance  Quantity
}

// Currency returns the account's currency.
func (a *Account) Currency() string { return a.currency }

// Balance returns the running balance.
func (a *Account) Balance() Quantity { return a.balance }

// Lots returns the account's lot ids in creation order.
func (a *Account) Lots() []LotID { return a.lots }

// Ledger owns the accounts, the lot and movement arenas, and is mutated only
// by the costing engine. Exactly one writer for the duration of a run; the
// finished ledger is read-only.
type Ledger struct {
	accounts map[string]*Account
	order    []string // account creation order, for deterministic iteration
	lots     []*Lot
	moves    []Movement
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{accounts: make(map[string]*Account)}
}

// GetOrCreateAccount returns the account for a currency, creating it on first
// reference.
func (l *Ledger) GetOrCreateAccount(currency string) *Account {
	if a, ok := l.accounts[currency]; ok {
		return a
	}
	a := &Account{currency: currency}
	l.accounts[currency] = a
	l.order = append(l.order, currency)
	return a
}

// Account returns the account for a currency, if it exists.
func (l *Ledger) Account(currency string) (*Account, bool) {
	a, ok := l.accounts[currency]
	return a, ok
}

// Currencies returns the account currencies in creation order.
func (l *Ledger) Currencies() []string { return l.order }

// Lot returns the lot with the given id, or nil.
func (l *Ledger) Lot(id LotID) *Lot {
	if id < 0 || int(id) >= len(l.lots) {
		return nil
	}
	return l.lots[id]
}

// Movement returns the movement with the given id.
func (l *Ledger) Movement(id MovementID) Movement { return l.moves[id] }

// Movements returns all movements in posting order.
func (l *Ledger) Movements() []Movement { return l.moves }

// OpenLot appends a new lot to the currency's account with remaining equal to
// original quantity, and records the inflow movement tying it to txID.
func (l *Ledger) OpenLot(currency string, qty Quantity, creation, basisDate date.Date, basis Money, carryover bool, txID uint32) (LotID, MovementID, error) {
	if !qty.IsPositive() {
		return 0, 0, fmt.Errorf("cannot open %s lot with quantity %s: %w", currency, qty, ErrInvalidQuantity)
	}
	account := l.GetOrCreateAccount(currency)
	lot := &Lot{
		id:                LotID(len(l.lots)),
		currency:          currency,
		creationOrder:     len(account.lots),
		CreationDate:      creation,
		BasisDate:         basisDate,
		OriginalQuantity:  qty,
		RemainingQuantity: qty,
		Basis:             basis,
		LikeKindCarryover: carryover,
	}
	l.lots = append(l.lots, lot)
	account.lots = append(account.lots, lot.id)
	account.balance = account.balance.Add(qty)

	move := Movement{Lot: lot.id, Transaction: txID, Direction: Inflow, Quantity: qty}
	l.moves = append(l.moves, move)
	return lot.id, MovementID(len(l.moves) - 1), nil
}

// DepleteLot decreases a lot's remaining quantity and the account balance,
// recording the outflow movement tying it to txID.
func (l *Ledger) DepleteLot(id LotID, qty Quantity, txID uint32) (MovementID, error) {
	lot := l.Lot(id)
	if lot == nil {
		return 0, fmt.Errorf("no such lot %d", id)
	}
	if !qty.IsPositive() {
		return 0, fmt.Errorf("cannot deplete lot %d by %s: %w", id, qty, ErrInvalidQuantity)
	}
	if qty.GreaterThan(lot.RemainingQuantity) {
		return 0, fmt.Errorf("cannot deplete lot %d by %s: only %s remaining: %w",
			id, qty, lot.RemainingQuantity, ErrInsufficientLotBalance)
	}
	lot.RemainingQuantity = lot.RemainingQuantity.Sub(qty)
	account := l.accounts[lot.currency]
	account.balance = account.balance.Sub(qty)

	move := Movement{Lot: id, Transaction: txID, Direction: Outflow, Quantity: qty}
	l.moves = append(l.moves, move)
	return MovementID(len(l.moves) - 1), nil
}

// OpenLots returns the currency's lots that still have undepleted quantity,
// in creation order.
func (l *Ledger) OpenLots(currency string) []*Lot {
	account, ok := l.accounts[currency]
	if !ok {
		return nil
	}
	var open []*Lot
	for _, id := range account.lots {
		if lot := l.lots[id]; lot.IsOpen() {
			open = append(open, lot)
		}
	}
	return open
}
