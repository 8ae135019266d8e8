package kernel

import (
	"fmt"

	"flavorverse/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrMoneyIsNotConstructed indicates a zero-value Money.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError("Money must be created via NewMoney")

// Money is a strictly positive decimal amount. Unit prices and order totals
// both use it; no currency is attached because the service prices everything
// in the restaurant's single local currency.
type Money struct {
	amount decimal.Decimal
}

// NewMoney returns Money for amount, rejecting zero and negative values.
//
// Example:
//
//	price, err := kernel.NewMoney(decimal.RequireFromString("9.50"))
func NewMoney(amount decimal.Decimal) (Money, error) {
	if !amount.IsPositive() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount",
			fmt.Errorf("%s is not greater than 0", amount.String()),
		)
	}
	return Money{amount: amount}, nil
}

// MustNewMoney is NewMoney for literals in tests and fixtures; it panics on
// an invalid amount.
func MustNewMoney(amount string) Money {
	m, err := NewMoney(decimal.RequireFromString(amount))
	if err != nil {
		panic(err)
	}
	return m
}

// Amount returns the decimal value.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Float64 returns the amount as a float for JSON responses.
func (m Money) Float64() float64 {
	return m.amount.InexactFloat64()
}

// String returns the amount without trailing zeros.
func (m Money) String() string {
	return m.amount.String()
}

// IsEqual compares two amounts numerically ("19" equals "19.00").
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// Validate returns ErrMoneyIsNotConstructed for the zero value.
func (m Money) Validate() error {
	if !m.amount.IsPositive() {
		return ErrMoneyIsNotConstructed
	}
	return nil
}
