package cryptools

import "github.com/scoobybejesus/cryptools/date"

// USD is a helper for tests to create home-currency money from a const.
func USD(v float64) Money { return M(v, "USD") }

// testSettings returns default settings for tests: USD home currency, LIFO by
// creation order, no like-kind cutoff.
func testSettings() *Settings { return NewSettings() }

// likeKindSettings returns settings with like-kind treatment through cutoff.
func likeKindSettings(cutoff string) *Settings {
	s := NewSettings()
	s.LikeKindCutoff = date.MustParse(cutoff)
	return s
}

// The record constructors below assign ids; call them in input order.

func tradeRec(id uint32, day, outCur string, outQty float64, inCur string, inQty float64, value float64) *ActionRecord {
	return &ActionRecord{
		ID: id, Date: date.MustParse(day), Kind: Trade,
		OutCurrency: outCur, OutQuantity: Q(outQty),
		InCurrency: inCur, InQuantity: Q(inQty),
		Value: USD(value),
	}
}

func incomeRec(id uint32, day, cur string, qty, value float64) *ActionRecord {
	return &ActionRecord{
		ID: id, Date: date.MustParse(day), Kind: Income,
		InCurrency: cur, InQuantity: Q(qty),
		Value: USD(value),
	}
}

func expenseRec(id uint32, day, cur string, qty, value float64) *ActionRecord {
	return &ActionRecord{
		ID: id, Date: date.MustParse(day), Kind: Expense,
		OutCurrency: cur, OutQuantity: Q(qty),
		Value: USD(value),
	}
}

func transferInRec(id uint32, day, cur string, qty, value float64) *ActionRecord {
	return &ActionRecord{
		ID: id, Date: date.MustParse(day), Kind: TransferIn,
		InCurrency: cur, InQuantity: Q(qty),
		Value: USD(value),
	}
}

func actionStore(t interface{ Fatalf(string, ...any) }, records ...*ActionRecord) *ActionStore {
	store := NewActionStore()
	for _, a := range records {
		if err := store.Append(a); err != nil {
			t.Fatalf("appending record %d: %v", a.ID, err)
		}
	}
	return store
}

// checkBalances fails the test when any account's running balance differs
// from the sum of its lots' remaining quantities.
func checkBalances(t interface{ Errorf(string, ...any) }, ledger *Ledger) {
	for _, currency := range ledger.Currencies() {
		account, _ := ledger.Account(currency)
		var sum Quantity
		for _, id := range account.Lots() {
			sum = sum.Add(ledger.Lot(id).RemainingQuantity)
		}
		if !sum.Equal(account.Balance()) {
			t.Errorf("account %s: balance %s != sum of lot remainders %s", currency, account.Balance(), sum)
		}
	}
}
