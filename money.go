package finbrief

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money is a monetary value kept exact as a decimal in major units.
type Money struct {
	value decimal.Decimal
	cur   string
}

func M[T float64 | int | int64 | decimal.Decimal](value T, currency string) Money {
	switch v := any(value).(type) {
	case float64:
		return Money{value: decimal.NewFromFloat(v), cur: currency}
	case int:
		return Money{value: decimal.NewFromInt(int64(v)), cur: currency}
	case int64:
		return Money{value: decimal.NewFromInt(v), cur: currency}
	case decimal.Decimal:
		return Money{value: v, cur: currency}
	}
	return Money{cur: currency}
}

// String formats the value with the currency's symbol and grouping rules.
func (m Money) String() string {
	// the Money constructor guarantees a non-nil currency.
	cur := money.New(0, m.cur).Currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

// SignedString is String prefixed with + for positive amounts; zero renders
// as "-".
func (m Money) SignedString() string {
	if m.value.IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}

func (m Money) Currency() string         { return m.cur }
func (m Money) IsZero() bool             { return m.value.IsZero() }
func (m Money) IsNegative() bool         { return m.value.IsNegative() }
func (m Money) Add(n Money) Money        { return Money{value: m.value.Add(n.value), cur: m.cur} }
func (m Money) Sub(n Money) Money        { return Money{value: m.value.Sub(n.value), cur: m.cur} }
func (m Money) AsFloat() float64         { return m.value.InexactFloat64() }
func (m Money) Decimal() decimal.Decimal { return m.value }
