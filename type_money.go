package grocery

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents a monetary value in the store's currency.
//
// The currency is either an ISO 4217 code known to go-money (formatted
// with that currency's symbol and fraction digits) or a literal prefix
// symbol such as "sh", formatted with two decimals. All products of one
// inventory share the same currency, so arithmetic never mixes them.
type Money struct {
	value decimal.Decimal
	cur   string
}

// M builds a Money from a numeric value and a currency code or symbol.
func M[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T, currency string) Money {
	return Money{value: newDecimal(value), cur: currency}
}

// ParseMoney parses the decimal representation of an amount in the given
// currency.
func ParseMoney(s, currency string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, err
	}
	return Money{value: d, cur: currency}, nil
}

// currency returns the go-money currency metadata, or nil when cur is a
// bare prefix symbol rather than an ISO code.
func (m Money) currency() *money.Currency {
	return money.GetCurrency(m.cur)
}

// String returns the amount prefixed with its currency symbol, rounded to
// the currency's fraction digits (two for bare symbols).
func (m Money) String() string {
	if c := m.currency(); c != nil {
		return c.Grapheme + m.value.StringFixed(int32(c.Fraction))
	}
	return m.cur + m.value.StringFixed(2)
}

func (m Money) Currency() string          { return m.cur }
func (m Money) Equal(n Money) bool        { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Money) IsZero() bool              { return m.value.IsZero() }
func (m Money) IsPositive() bool          { return m.value.IsPositive() }
func (m Money) IsNegative() bool          { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool     { return m.value.LessThan(n.value) }
func (m Money) Mul(q Quantity) Money      { return Money{value: m.value.Mul(q.value), cur: m.cur} }
func (m Money) Add(n Money) Money         { return Money{value: m.value.Add(n.value), cur: cur(m, n)} }
func (m Money) Sub(n Money) Money         { return Money{value: m.value.Sub(n.value), cur: cur(m, n)} }

// makes the "" currency totally weak.
func cur(a, b Money) string {
	if a.cur == "" {
		return b.cur
	}
	if b.cur == "" {
		return a.cur
	}
	if a.cur != b.cur {
		panic("currency mismatch " + a.cur + "!=" + b.cur)
	}
	return a.cur
}

// MarshalText implements encoding.TextMarshaler. Only the bare amount is
// persisted; the currency is a store-wide setting, not a per-row fact.
func (m Money) MarshalText() ([]byte, error) {
	return m.value.MarshalText()
}

func (m *Money) UnmarshalText(text []byte) error {
	return m.value.UnmarshalText(text)
}
