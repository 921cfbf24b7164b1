package cryptools

import (
	"testing"

	"github.com/scoobybejesus/cryptools/date"
)

func TestTransactionStore(t *testing.T) {
	store := NewTransactionStore()
	a := &Transaction{ID: 1, Date: date.MustParse("2018-01-01"), Kind: Income, GainLoss: USD(0)}
	b := &Transaction{ID: 2, Date: date.MustParse("2018-02-01"), Kind: Trade, GainLoss: USD(100)}
	c := &Transaction{ID: 3, Date: date.MustParse("2018-03-01"), Kind: Trade, GainLoss: USD(40), LikeKindDeferred: true}

	for _, tx := range []*Transaction{a, b, c} {
		if err := store.Append(tx); err != nil {
			t.Fatalf("Append(%d) unexpected error: %v", tx.ID, err)
		}
	}
	if err := store.Append(&Transaction{ID: 2}); err == nil {
		t.Error("Append with duplicate id expected an error")
	}
	if store.Len() != 3 {
		t.Errorf("Len() = %d, want 3", store.Len())
	}
	if store.Get(2) != b {
		t.Errorf("Get(2) = %v, want %v", store.Get(2), b)
	}
	if store.Get(99) != nil {
		t.Error("Get(99) should be nil")
	}

	var order []uint32
	for tx := range store.All() {
		order = append(order, tx.ID)
	}
	if len(order) != 3 || order[0] != 1 || order[1] != 2 || order[2] != 3 {
		t.Errorf("All() order = %v, want [1 2 3]", order)
	}

	if got := store.RealizedGains("USD"); !got.Equal(USD(100)) {
		t.Errorf("RealizedGains() = %s, want $100.00 (deferred excluded)", got)
	}
	if got := store.DeferredGains("USD"); !got.Equal(USD(40)) {
		t.Errorf("DeferredGains() = %s, want $40.00", got)
	}
}

func TestTransactionStore_TotalsByYear(t *testing.T) {
	actions := actionStore(t,
		incomeRec(1, "2017-03-01", "BTC", 1, 1000),
		incomeRec(2, "2017-09-01", "BTC", 0.5, 700),
		incomeRec(3, "2018-02-01", "BTC", 0.25, 400),
		expenseRec(4, "2018-06-01", "BTC", 0.1, 200),
	)
	_, txs, err := Process(actions, testSettings())
	if err != nil {
		t.Fatalf("Process() unexpected error: %v", err)
	}

	years := txs.Years()
	if len(years) != 2 || years[0] != 2017 || years[1] != 2018 {
		t.Fatalf("Years() = %v, want [2017 2018]", years)
	}

	income := txs.IncomeByYear("USD")
	if got := income[2017]; !got.Equal(USD(1700)) {
		t.Errorf("IncomeByYear()[2017] = %s, want $1,700.00", got)
	}
	if got := income[2018]; !got.Equal(USD(400)) {
		t.Errorf("IncomeByYear()[2018] = %s, want $400.00", got)
	}

	expense := txs.ExpenseByYear("USD")
	if _, ok := expense[2017]; ok {
		t.Error("ExpenseByYear() should have no 2017 entry")
	}
	if got := expense[2018]; !got.Equal(USD(200)) {
		t.Errorf("ExpenseByYear()[2018] = %s, want $200.00", got)
	}
}

func TestActionStore(t *testing.T) {
	store := actionStore(t,
		incomeRec(1, "2018-01-01", "BTC", 1, 1000),
		expenseRec(2, "2018-02-01", "BTC", 0.5, 600),
	)
	if store.Len() != 2 {
		t.Errorf("Len() = %d, want 2", store.Len())
	}
	if store.Get(2).Kind != Expense {
		t.Errorf("Get(2).Kind = %s, want expense", store.Get(2).Kind)
	}
	if err := store.Append(incomeRec(1, "2018-03-01", "BTC", 1, 1000)); err == nil {
		t.Error("Append with duplicate id expected an error")
	}
}

func TestParseTxKind(t *testing.T) {
	for in, want := range map[string]TxKind{
		"trade":        Trade,
		"Income":       Income,
		"expense":      Expense,
		"transfer-in":  TransferIn,
		"transfer_out": TransferOut,
	} {
		got, err := ParseTxKind(in)
		if err != nil {
			t.Fatalf("ParseTxKind(%q) unexpected error: %v", in, err)
		}
		if got != want {
			t.Errorf("ParseTxKind(%q) = %s, want %s", in, got, want)
		}
	}
	if _, err := ParseTxKind("dividend"); err == nil {
		t.Error("ParseTxKind(\"dividend\") expected an error")
	}
}

func TestParseCostingMethod(t *testing.T) {
	for in, want := range map[string]CostingMethod{
		"1": LIFOByCreation, "2": LIFOByBasisDate, "3": FIFOByCreation, "4": FIFOByBasisDate,
	} {
		got, err := ParseCostingMethod(in)
		if err != nil {
			t.Fatalf("ParseCostingMethod(%q) unexpected error: %v", in, err)
		}
		if got != want {
			t.Errorf("ParseCostingMethod(%q) = %s, want %s", in, got, want)
		}
	}
	if _, err := ParseCostingMethod("5"); err == nil {
		t.Error("ParseCostingMethod(\"5\") expected an error")
	}
}
