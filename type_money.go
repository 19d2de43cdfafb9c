package lansky

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents a US dollar amount.
//
// The value is kept exact, rounding only happens when formatting.
type Money struct {
	value decimal.Decimal // as major unit value
}

// USD returns Money for the given amount of dollars.
func USD[T float64 | int | int64 | decimal.Decimal](value T) Money {
	return Money{value: newDecimal(value)}
}

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float64 | int | int64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int64:
		return decimal.NewFromInt(v)
	default:
		panic("unsupported type")
	}
}

// ParseMoney parses a plain decimal amount like "12.50". A leading "$" is tolerated.
func ParseMoney(s string) (Money, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "$")
	s = strings.ReplaceAll(s, ",", "")
	v, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return Money{value: v}, nil
}

// usd returns the go-money currency description of the US dollar.
func usd() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, money.USD).Currency()
}

// String returns the amount formatted as US dollars, e.g. "$1,234.56".
//
// The amount is rounded half away from zero to the cent.
func (m Money) String() string {
	cur := usd()
	cents := m.value.Shift(int32(cur.Fraction)).Round(0).IntPart()
	if cents < 0 {
		return "-" + cur.Formatter().Format(-cents)
	}
	return cur.Formatter().Format(cents)
}

// Number returns the shortest decimal representation of the amount, e.g. "14.15" or "-15".
func (m Money) Number() string { return m.value.String() }

// Fixed returns the amount with exactly two decimals and no separators, e.g. "1234.50".
func (m Money) Fixed() string { return m.value.StringFixed(2) }

func (m Money) Decimal() decimal.Decimal { return m.value }
func (m Money) IsZero() bool             { return m.value.IsZero() }
func (m Money) IsNegative() bool         { return m.value.IsNegative() }
func (m Money) Equal(n Money) bool       { return m.value.Equal(n.value) }
func (m Money) Neg() Money               { return Money{value: m.value.Neg()} }
func (m Money) Add(n Money) Money        { return Money{value: m.value.Add(n.value)} }
func (m Money) Sub(n Money) Money        { return Money{value: m.value.Sub(n.value)} }

// Cents returns the amount rounded to the cent, used to compare amounts
// coming from imprecise sources.
func (m Money) Cents() int64 { return m.value.Shift(2).Round(0).IntPart() }

// MarshalJSON writes the amount as a bare JSON number.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.value.String()), nil
}

// UnmarshalJSON reads the amount from a JSON number or a numeric string.
func (m *Money) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*m = Money{}
		return nil
	}
	return m.value.UnmarshalJSON(data)
}

// Set implements flag.Value so amounts can be read from the command line.
func (m *Money) Set(s string) error {
	v, err := ParseMoney(s)
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// Sum returns the total of the amounts extracted from each element of xs.
func Sum[T any](xs []T, amount func(T) Money) Money {
	var total Money
	for _, x := range xs {
		total = total.Add(amount(x))
	}
	return total
}
