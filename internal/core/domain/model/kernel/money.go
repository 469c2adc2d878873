package kernel

import (
	"fmt"

	"commerce/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrMoneyIsNotConstructed indicates that a Money value was not created
// through one of the constructor functions. The zero value of Money is
// invalid and must never be used in arithmetic.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
	"Money must be created via NewMoney, MoneyFromString, or MoneyFromDecimal")

// Money is a value object representing a non-negative exact-decimal amount.
// It wraps github.com/shopspring/decimal to keep monetary arithmetic free of
// binary floating point rounding.
//
// Money is immutable: every operation returns a new value. The currency is
// not part of the value; it is a deployment-time policy of the services that
// charge money.
//
// Example usage:
//
//	price, _ := kernel.MoneyFromString("10.00")
//	total, _ := price.MulInt(3)
//	fmt.Println(total.String()) // "30"
type Money struct {
	amount decimal.Decimal

	guard ConstructorGuard
}

// NewMoney creates a Money value from a decimal amount.
// Returns an error if the amount is negative.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount",
			fmt.Errorf("%s is negative", amount.String()),
		)
	}

	return Money{amount: amount, guard: NewConstructorGuard()}, nil
}

// MoneyFromString parses a decimal string such as "25.00" into a Money value.
// Returns an error if the string is not a valid decimal or is negative.
func MoneyFromString(s string) (Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	return NewMoney(amount)
}

// MoneyFromDecimal is an alias of NewMoney kept for readability at
// persistence boundaries where the raw decimal comes from the database.
func MoneyFromDecimal(amount decimal.Decimal) (Money, error) {
	return NewMoney(amount)
}

// ZeroMoney returns a valid Money value of 0.
// Used as the seed when summing order item subtotals.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero, guard: NewConstructorGuard()}
}

// Validate checks that the Money value was properly constructed.
// Returns ErrMoneyIsNotConstructed for zero-value Money.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

// Decimal returns the underlying decimal amount.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// String returns the decimal string representation of the amount.
func (m Money) String() string {
	return m.amount.String()
}

// IsEqual compares two Money values numerically, so "20" and "20.00"
// are equal.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// IsZero reports whether the amount is exactly 0.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// Add returns the sum of two Money values.
// Both operands must be properly constructed.
func (m Money) Add(other Money) (Money, error) {
	if err := m.Validate(); err != nil {
		return Money{}, err
	}
	if err := other.Validate(); err != nil {
		return Money{}, err
	}

	return Money{amount: m.amount.Add(other.amount), guard: NewConstructorGuard()}, nil
}

// MulInt returns the amount multiplied by a non-negative integer factor,
// such as an order item quantity.
func (m Money) MulInt(factor int) (Money, error) {
	if err := m.Validate(); err != nil {
		return Money{}, err
	}
	if factor < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"factor",
			fmt.Errorf("%d is negative", factor),
		)
	}

	return Money{
		amount: m.amount.Mul(decimal.NewFromInt(int64(factor))),
		guard:  NewConstructorGuard(),
	}, nil
}

// DiscountPercent returns the amount reduced by the given percentage:
// amount − amount × percent / 100. The percent must be within [0, 100].
func (m Money) DiscountPercent(percent int) (Money, error) {
	if err := m.Validate(); err != nil {
		return Money{}, err
	}
	if percent < 0 || percent > 100 {
		return Money{}, errs.NewValueIsOutOfRangeError("discountPercent", percent, 0, 100)
	}

	discount := m.amount.
		Mul(decimal.NewFromInt(int64(percent))).
		Div(decimal.NewFromInt(100))

	return Money{amount: m.amount.Sub(discount), guard: NewConstructorGuard()}, nil
}
