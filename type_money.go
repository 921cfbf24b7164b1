package cryptools

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// MoneyScale is the number of fractional digits kept when a home-currency
// division does not terminate.
const MoneyScale = 2

// Money represents a monetary value denominated in one currency, in practice
// always the configured home currency.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

func M[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T, currency string) Money {
	return Money{value: newDecimal(value), cur: currency}
}

// ParseMoney parses a decimal string into a Money of the given currency.
func ParseMoney(s, currency string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return Money{value: d, cur: currency}, nil
}

// ValidateCurrency reports whether code names a currency known to the
// go-money registry (fiat currencies and the common cryptocurrencies).
func ValidateCurrency(code string) error {
	if money.GetCurrency(strings.ToUpper(code)) == nil {
		return fmt.Errorf("%w: %q", ErrUnknownCurrency, code)
	}
	return nil
}

// currency returns the money's currency metadata.
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, m.cur).Currency()
}

// String returns the formatted representation of the money value, rounded to
// the currency's fraction.
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

func (m Money) Currency() string                { return m.cur }
func (m Money) Equal(n Money) bool              { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Money) IsZero() bool                    { return m.value.IsZero() }
func (m Money) IsPositive() bool                { return m.value.IsPositive() }
func (m Money) IsNegative() bool                { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool           { return m.value.LessThan(n.value) }
func (m Money) GreaterThan(n Money) bool        { return m.value.GreaterThan(n.value) }
func (m Money) GreaterThanOrEqual(n Money) bool { return m.value.GreaterThanOrEqual(n.value) }
func (m Money) Neg() Money                      { return Money{value: m.value.Neg(), cur: m.cur} }
func (m Money) Mul(n Quantity) Money            { return Money{value: m.value.Mul(n.value), cur: m.cur} }

// binary operators.
func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value), cur: cur(m, n)} }
func (m Money) Sub(n Money) Money { return Money{value: m.value.Sub(n.value), cur: cur(m, n)} }

// makes the "" currency totally weak.
func cur(A, B Money) string {
	if A.cur == "" {
		return B.cur
	}
	if B.cur == "" {
		return A.cur
	}
	if A.cur != B.cur {
		panic("currency mismatch" + A.cur + "!=" + B.cur)
	}
	return A.cur
}

// Div divides m by a quantity, rounding half away from zero to MoneyScale
// digits when the quotient does not terminate. Dividing by zero is an
// ErrArithmetic.
func (m Money) Div(n Quantity) (Money, error) {
	if n.value.IsZero() {
		return Money{}, fmt.Errorf("%w: division of %s by zero", ErrArithmetic, m)
	}
	return Money{value: m.value.DivRound(n.value, MoneyScale), cur: m.cur}, nil
}

// ProRata returns the share of m attributable to part out of whole, rounded
// to MoneyScale digits. This is how a lot's basis is apportioned to a partial
// depletion without ever dividing basis down to a per-unit figure first.
func (m Money) ProRata(part, whole Quantity) (Money, error) {
	if whole.value.IsZero() {
		return Money{}, fmt.Errorf("%w: pro-rata of %s over zero", ErrArithmetic, m)
	}
	return Money{value: m.value.Mul(part.value).DivRound(whole.value, MoneyScale), cur: m.cur}, nil
}

// Round returns m rounded half away from zero to MoneyScale digits.
func (m Money) Round() Money {
	return Money{value: m.value.Round(MoneyScale), cur: m.cur}
}

// SignedString returns the string representation of the money value with a sign.
// 0 is represented as a "-"
func (m Money) SignedString() string {
	if m.value.IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}

// Decimal exposes the raw decimal value for CSV export.
func (m Money) Decimal() decimal.Decimal { return m.value }
