package domain

import (
	"fmt"
	"math"
	"math/big"
)

// RoundingUnit is the currency rounding unit (in minor units) applied to every unit price.
const RoundingUnit int64 = 1000

// Money represents a monetary value in currency minor units with exact rational arithmetic.
// It uses big.Rat internally so half-and-half splits never lose precision before rounding.
// Money is immutable - all operations return new instances.
type Money struct {
	amount *big.Rat
}

// NewMoney creates a Money from numerator and denominator.
// For example: NewMoney(185000, 1) represents 185,000 minor units.
func NewMoney(numerator, denominator int64) *Money {
	if denominator == 0 {
		panic("money: denominator cannot be zero")
	}
	return &Money{amount: big.NewRat(numerator, denominator)}
}

// NewMoneyFromInt creates Money from a whole number of minor units.
func NewMoneyFromInt(units int64) *Money {
	return &Money{amount: new(big.Rat).SetInt64(units)}
}

// NewMoneyFromDecimal creates Money from a decimal string such as "15000" or "12500.5".
func NewMoneyFromDecimal(decimal string) (*Money, error) {
	rat := new(big.Rat)
	if _, ok := rat.SetString(decimal); !ok {
		return nil, fmt.Errorf("invalid decimal format: %s", decimal)
	}
	return &Money{amount: rat}, nil
}

// NewMoneyFromRat creates Money from an existing big.Rat. The rat is copied.
func NewMoneyFromRat(rat *big.Rat) *Money {
	if rat == nil {
		return Zero()
	}
	return &Money{amount: new(big.Rat).Set(rat)}
}

// Zero returns a Money instance representing zero.
func Zero() *Money {
	return &Money{amount: new(big.Rat)}
}

// Add returns a new Money that is the sum of m and other. A nil other is treated as zero.
func (m *Money) Add(other *Money) *Money {
	if other == nil {
		return NewMoneyFromRat(m.amount)
	}
	return &Money{amount: new(big.Rat).Add(m.amount, other.amount)}
}

// MultiplyByFraction multiplies Money by numerator/denominator.
func (m *Money) MultiplyByFraction(numerator, denominator int64) *Money {
	return &Money{amount: new(big.Rat).Mul(m.amount, big.NewRat(numerator, denominator))}
}

// Half returns m * 1/2.
func (m *Money) Half() *Money {
	return m.MultiplyByFraction(1, 2)
}

// IsZero returns true if the amount is zero.
func (m *Money) IsZero() bool {
	return m.amount.Sign() == 0
}

// IsNegative returns true if the amount is below zero.
func (m *Money) IsNegative() bool {
	return m.amount.Sign() < 0
}

// IsPositive returns true if the amount is above zero.
func (m *Money) IsPositive() bool {
	return m.amount.Sign() > 0
}

// Equals returns true if m equals other.
func (m *Money) Equals(other *Money) bool {
	if other == nil {
		return false
	}
	return m.amount.Cmp(other.amount) == 0
}

// RoundToUnit rounds to the nearest multiple of unit, ties toward positive infinity,
// matching Math.round(x/unit)*unit. Negative results are floored at zero and amounts beyond
// int64 saturate at the largest multiple of unit that fits.
func (m *Money) RoundToUnit(unit int64) int64 {
	if unit <= 0 {
		unit = RoundingUnit
	}
	if !m.IsPositive() {
		return 0
	}
	// floor(x/unit + 1/2) * unit
	q := new(big.Rat).Quo(m.amount, new(big.Rat).SetInt64(unit))
	q.Add(q, big.NewRat(1, 2))

	// Euclidean division floors for a positive denominator.
	floor, _ := new(big.Int).DivMod(q.Num(), q.Denom(), new(big.Int))

	result := new(big.Int).Mul(floor, big.NewInt(unit))
	if !result.IsInt64() {
		return math.MaxInt64 - math.MaxInt64%unit
	}
	return result.Int64()
}

// Numerator returns the numerator of the internal rational representation.
// Used for database persistence.
func (m *Money) Numerator() int64 {
	return m.amount.Num().Int64()
}

// Denominator returns the denominator of the internal rational representation.
func (m *Money) Denominator() int64 {
	return m.amount.Denom().Int64()
}

// Rat returns a copy of the internal big.Rat.
func (m *Money) Rat() *big.Rat {
	return new(big.Rat).Set(m.amount)
}

// String returns the amount with two decimals.
func (m *Money) String() string {
	return m.amount.FloatString(2)
}

// FloatString returns a decimal string representation with the specified precision.
func (m *Money) FloatString(precision int) string {
	return m.amount.FloatString(precision)
}
