// Package money provides exact decimal amounts backed by big.Rat.
package money

import (
	"bytes"
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"
)

// Money represents a monetary value with precise decimal arithmetic using big.Rat.
// The zero value is 0. Values are immutable; every operation returns a new Money.
type Money struct {
	rat *big.Rat
}

// Zero returns a zero amount.
func Zero() Money {
	return Money{}
}

// New creates a Money from numerator and denominator.
// Example: New(1299, 100) represents 12.99
func New(numerator, denominator int64) (Money, error) {
	if denominator == 0 {
		return Money{}, fmt.Errorf("denominator cannot be zero")
	}
	return Money{rat: big.NewRat(numerator, denominator)}, nil
}

// FromCents creates a Money from an integer amount of cents.
func FromCents(cents int64) Money {
	return Money{rat: big.NewRat(cents, 100)}
}

// FromRat creates a Money from a big.Rat. A nil rat is zero.
func FromRat(rat *big.Rat) Money {
	if rat == nil {
		return Money{}
	}
	return Money{rat: new(big.Rat).Set(rat)}
}

// Parse reads a decimal string such as "12.99" exactly.
func Parse(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return Money{rat: d.Rat()}, nil
}

// MustParse is Parse for literals known to be valid.
func MustParse(s string) Money {
	m, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return m
}

func (m Money) r() *big.Rat {
	if m.rat == nil {
		return new(big.Rat)
	}
	return m.rat
}

// Add adds two Money values.
func (m Money) Add(other Money) Money {
	return Money{rat: new(big.Rat).Add(m.r(), other.r())}
}

// Subtract subtracts another Money value from this one.
func (m Money) Subtract(other Money) Money {
	return Money{rat: new(big.Rat).Sub(m.r(), other.r())}
}

// MultiplyInt multiplies by an integer factor, such as a quantity.
func (m Money) MultiplyInt(n int) Money {
	return Money{rat: new(big.Rat).Mul(m.r(), big.NewRat(int64(n), 1))}
}

// MultiplyByRat multiplies this Money value by a rational number.
func (m Money) MultiplyByRat(rat *big.Rat) Money {
	return Money{rat: new(big.Rat).Mul(m.r(), rat)}
}

// Percent returns pct percent of m.
func (m Money) Percent(pct int) Money {
	return m.MultiplyByRat(big.NewRat(int64(pct), 100))
}

// Cmp compares m and other and returns -1, 0 or +1.
func (m Money) Cmp(other Money) int {
	return m.r().Cmp(other.r())
}

func (m Money) IsZero() bool     { return m.r().Sign() == 0 }
func (m Money) IsNegative() bool { return m.r().Sign() < 0 }
func (m Money) IsPositive() bool { return m.r().Sign() > 0 }

func (m Money) LessThan(other Money) bool    { return m.Cmp(other) < 0 }
func (m Money) GreaterThan(other Money) bool { return m.Cmp(other) > 0 }
func (m Money) Equals(other Money) bool      { return m.Cmp(other) == 0 }

// Rat returns a copy of the underlying rational.
func (m Money) Rat() *big.Rat {
	return new(big.Rat).Set(m.r())
}

// Float64 returns an approximate float64 representation (for display only, not calculations).
func (m Money) Float64() float64 {
	f, _ := m.r().Float64()
	return f
}

// Cents rounds to the nearest cent, halves away from zero.
func (m Money) Cents() int64 {
	r := m.r()
	num := new(big.Int).Mul(r.Num(), big.NewInt(100))
	den := r.Denom()

	q, rem := new(big.Int).QuoRem(num, den, new(big.Int))
	twice := new(big.Int).Mul(new(big.Int).Abs(rem), big.NewInt(2))
	if twice.Cmp(den) >= 0 {
		if num.Sign() < 0 {
			q.Sub(q, big.NewInt(1))
		} else {
			q.Add(q, big.NewInt(1))
		}
	}
	return q.Int64()
}

// RoundCents returns m rounded to a whole cent, halves away from zero.
func (m Money) RoundCents() Money {
	return FromCents(m.Cents())
}

// String returns the amount with two decimals.
func (m Money) String() string {
	return m.r().FloatString(2)
}

// MarshalJSON encodes the amount as a JSON number with two decimals.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalJSON accepts a JSON number or a quoted decimal string.
func (m *Money) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(data, `"`)
	if len(data) == 0 || string(data) == "null" {
		*m = Money{}
		return nil
	}

	parsed, err := Parse(string(data))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
