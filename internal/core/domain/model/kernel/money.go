package kernel

import (
	"fmt"
	"math"
	"strconv"

	"github.com/visionyy32/Final-sub001/internal/pkg/errs"
)

// CurrencyPrefix is the fixed three-letter code shown before formatted amounts.
const CurrencyPrefix = "KES"

// ErrAmountIsNegative is returned when constructing Money from a negative amount.
var ErrAmountIsNegative = errs.NewValueIsInvalidError("amount must not be negative")

// Money is a value object for monetary amounts in whole currency units.
// Shipping fees and payment amounts are integers; no fractional minor units
// are carried anywhere in the system.
//
// The zero value is valid and represents a zero amount.
type Money struct {
	amount int
}

// NewMoney creates Money from a whole-unit amount.
// Negative amounts are rejected.
func NewMoney(amount int) (Money, error) {
	if amount < 0 {
		return Money{}, ErrAmountIsNegative
	}
	return Money{amount: amount}, nil
}

// Amount returns the whole-unit amount.
func (m Money) Amount() int {
	return m.amount
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount + other.amount}
}

// MultiplyRound scales the amount by factor and rounds to the nearest unit.
// Used for service-tier multipliers on shipping fees.
func (m Money) MultiplyRound(factor float64) Money {
	return Money{amount: int(math.Round(float64(m.amount) * factor))}
}

// IsEqual compares two amounts.
func (m Money) IsEqual(other Money) bool {
	return m.amount == other.amount
}

// Format renders the amount with the currency prefix and thousands
// separators, e.g. "KES 1,500".
func (m Money) Format() string {
	return fmt.Sprintf("%s %s", CurrencyPrefix, groupThousands(m.amount))
}

// String implements fmt.Stringer using the same display format.
func (m Money) String() string {
	return m.Format()
}

func groupThousands(n int) string {
	s := strconv.Itoa(n)
	if len(s) <= 3 {
		return s
	}

	first := len(s) % 3
	if first == 0 {
		first = 3
	}

	out := s[:first]
	for i := first; i < len(s); i += 3 {
		out += "," + s[i:i+3]
	}
	return out
}
