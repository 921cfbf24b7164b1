package cryptools

import (
	"errors"
	"testing"

	"github.com/scoobybejesus/cryptools/date"
)

func TestLedger_OpenLot(t *testing.T) {
	ledger := NewLedger()
	on := date.MustParse("2018-01-01")

	id, mv, err := ledger.OpenLot("BTC", Q(1.5), on, on, USD(6000), false, 1)
	if err != nil {
		t.Fatalf("OpenLot() unexpected error: %v", err)
	}
	lot := ledger.Lot(id)
	if !lot.OriginalQuantity.Equal(Q(1.5)) || !lot.RemainingQuantity.Equal(Q(1.5)) {
		t.Errorf("new lot quantities = %s/%s, want 1.5/1.5", lot.RemainingQuantity, lot.OriginalQuantity)
	}
	if move := ledger.Movement(mv); move.Direction != Inflow || !move.Quantity.Equal(Q(1.5)) || move.Transaction != 1 {
		t.Errorf("inflow movement = %+v", move)
	}
	account, ok := ledger.Account("BTC")
	if !ok || !account.Balance().Equal(Q(1.5)) {
		t.Errorf("account balance = %s, want 1.5", account.Balance())
	}
	checkBalances(t, ledger)
}

func TestLedger_OpenLot_NonPositive(t *testing.T) {
	ledger := NewLedger()
	on := date.MustParse("2018-01-01")

	for _, qty := range []Quantity{Q(0), Q(-1)} {
		if _, _, err := ledger.OpenLot("BTC", qty, on, on, USD(0), false, 1); !errors.Is(err, ErrInvalidQuantity) {
			t.Errorf("OpenLot(%s): got %v, want ErrInvalidQuantity", qty, err)
		}
	}
	if account, ok := ledger.Account("BTC"); ok && len(account.Lots()) != 0 {
		t.Errorf("failed OpenLot left %d lots behind", len(account.Lots()))
	}
}

func TestLedger_DepleteLot(t *testing.T) {
	ledger := NewLedger()
	on := date.MustParse("2018-01-01")
	id, _, err := ledger.OpenLot("BTC", Q(2), on, on, USD(8000), false, 1)
	if err != nil {
		t.Fatalf("OpenLot() unexpected error: %v", err)
	}

	mv, err := ledger.DepleteLot(id, Q(0.5), 2)
	if err != nil {
		t.Fatalf("DepleteLot() unexpected error: %v", err)
	}
	if move := ledger.Movement(mv); move.Direction != Outflow || !move.Quantity.Equal(Q(0.5)) {
		t.Errorf("outflow movement = %+v", move)
	}
	lot := ledger.Lot(id)
	if !lot.RemainingQuantity.Equal(Q(1.5)) {
		t.Errorf("remaining = %s, want 1.5", lot.RemainingQuantity)
	}
	if !lot.OriginalQuantity.Equal(Q(2)) {
		t.Errorf("original changed to %s", lot.OriginalQuantity)
	}
	checkBalances(t, ledger)

	// Depleting more than remaining fails and changes nothing.
	if _, err := ledger.DepleteLot(id, Q(2), 3); !errors.Is(err, ErrInsufficientLotBalance) {
		t.Errorf("over-depletion: got %v, want ErrInsufficientLotBalance", err)
	}
	if !ledger.Lot(id).RemainingQuantity.Equal(Q(1.5)) {
		t.Errorf("failed depletion changed remaining to %s", ledger.Lot(id).RemainingQuantity)
	}
	checkBalances(t, ledger)

	// Exact depletion closes the lot but keeps it for reporting.
	if _, err := ledger.DepleteLot(id, Q(1.5), 4); err != nil {
		t.Fatalf("exact depletion unexpected error: %v", err)
	}
	if lot := ledger.Lot(id); lot.IsOpen() {
		t.Errorf("lot still open with remaining %s", lot.RemainingQuantity)
	}
	account, _ := ledger.Account("BTC")
	if len(account.Lots()) != 1 {
		t.Errorf("closed lot was deleted, %d lots left", len(account.Lots()))
	}
	if !account.Balance().IsZero() {
		t.Errorf("balance = %s, want 0", account.Balance())
	}
	checkBalances(t, ledger)
}

func TestLedger_GetOrCreateAccount(t *testing.T) {
	ledger := NewLedger()
	a := ledger.GetOrCreateAccount("ETH")
	b := ledger.GetOrCreateAccount("ETH")
	if a != b {
		t.Error("GetOrCreateAccount is not idempotent")
	}
	if got := ledger.Currencies(); len(got) != 1 || got[0] != "ETH" {
		t.Errorf("Currencies() = %v, want [ETH]", got)
	}
}

func TestLot_BasisFor(t *testing.T) {
	ledger := NewLedger()
	on := date.MustParse("2018-01-01")
	id, _, _ := ledger.OpenLot("BTC", Q(2), on, on, USD(8000), false, 1)
	lot := ledger.Lot(id)

	full, err := lot.BasisFor(Q(2))
	if err != nil || !full.Equal(USD(8000)) {
		t.Errorf("BasisFor(full) = %s, %v; want $8,000.00", full, err)
	}
	half, err := lot.BasisFor(Q(0.5))
	if err != nil || !half.Equal(USD(2000)) {
		t.Errorf("BasisFor(0.5) = %s, %v; want $2,000.00", half, err)
	}
}
