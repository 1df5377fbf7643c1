package valueobject

import (
	"database/sql/driver"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Currency represents a currency code (ISO 4217)
type Currency string

const (
	DZD Currency = "DZD" // Algerian Dinar (base currency, "DA")
	USD Currency = "USD" // US Dollar
	CNY Currency = "CNY" // Chinese Yuan
	EUR Currency = "EUR" // Euro
	JPY Currency = "JPY" // Japanese Yen
)

// DefaultCurrency is the base currency every amount is normalized into
const DefaultCurrency = DZD

// IsValid checks if the currency is one the system trades in
func (c Currency) IsValid() bool {
	switch c {
	case DZD, USD, CNY, EUR, JPY:
		return true
	}
	return false
}

// Money is a value object representing monetary amounts.
// It is immutable - all operations return new Money instances.
type Money struct {
	amount   decimal.Decimal
	currency Currency
}

// NewMoney creates a new Money with the specified amount and currency
func NewMoney(amount decimal.Decimal, currency Currency) (Money, error) {
	if currency == "" {
		return Money{}, errors.New("currency cannot be empty")
	}
	return Money{
		amount:   amount,
		currency: currency,
	}, nil
}

// NewMoneyFromString creates Money from a string representation
func NewMoneyFromString(amount string, currency Currency) (Money, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return Money{}, fmt.Errorf("invalid amount string: %w", err)
	}
	return NewMoney(d, currency)
}

// NewMoneyDZD creates Money in the base currency
func NewMoneyDZD(amount decimal.Decimal) Money {
	return Money{amount: amount, currency: DZD}
}

// NewMoneyDZDFromFloat creates Money in DZD from float64
func NewMoneyDZDFromFloat(amount float64) Money {
	return Money{amount: decimal.NewFromFloat(amount), currency: DZD}
}

// NewMoneyDZDFromString creates Money in DZD from string
func NewMoneyDZDFromString(amount string) (Money, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return Money{}, fmt.Errorf("invalid amount string: %w", err)
	}
	return Money{amount: d, currency: DZD}, nil
}

// Zero returns a zero-value Money in the specified currency
func Zero(currency Currency) Money {
	return Money{amount: decimal.Zero, currency: currency}
}

// ZeroDZD returns a zero-value Money in the base currency
func ZeroDZD() Money {
	return Zero(DZD)
}

// Amount returns the decimal amount
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Currency returns the currency code
func (m Money) Currency() Currency {
	return m.currency
}

// IsZero returns true if the amount is zero
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsPositive returns true if the amount is positive
func (m Money) IsPositive() bool {
	return m.amount.IsPositive()
}

// IsNegative returns true if the amount is negative
func (m Money) IsNegative() bool {
	return m.amount.IsNegative()
}

// Add returns a new Money with the sum of both amounts.
// Returns error if currencies don't match.
func (m Money) Add(other Money) (Money, error) {
	if m.currency != other.currency {
		return Money{}, fmt.Errorf("cannot add money with different currencies: %s and %s", m.currency, other.currency)
	}
	return Money{
		amount:   m.amount.Add(other.amount),
		currency: m.currency,
	}, nil
}

// MustAdd adds two Money values, panics if currencies don't match
func (m Money) MustAdd(other Money) Money {
	result, err := m.Add(other)
	if err != nil {
		panic(err)
	}
	return result
}

// Subtract returns a new Money with the difference.
// Returns error if currencies don't match.
func (m Money) Subtract(other Money) (Money, error) {
	if m.currency != other.currency {
		return Money{}, fmt.Errorf("cannot subtract money with different currencies: %s and %s", m.currency, other.currency)
	}
	return Money{
		amount:   m.amount.Sub(other.amount),
		currency: m.currency,
	}, nil
}

// MustSubtract subtracts two Money values, panics if currencies don't match
func (m Money) MustSubtract(other Money) Money {
	result, err := m.Subtract(other)
	if err != nil {
		panic(err)
	}
	return result
}

// Mul returns a new Money multiplied by the given factor
func (m Money) Mul(factor decimal.Decimal) Money {
	return Money{
		amount:   m.amount.Mul(factor),
		currency: m.currency,
	}
}

// Percent returns the given percentage of the amount (rate in 0-100)
func (m Money) Percent(rate decimal.Decimal) Money {
	return Money{
		amount:   m.amount.Mul(rate).Div(decimal.NewFromInt(100)),
		currency: m.currency,
	}
}

// Convert converts the amount into the target currency at the given
// exchange rate. The rate is "units of target per one unit of source".
func (m Money) Convert(rate decimal.Decimal, target Currency) (Money, error) {
	if rate.LessThanOrEqual(decimal.Zero) {
		return Money{}, errors.New("exchange rate must be positive")
	}
	return Money{
		amount:   m.amount.Mul(rate),
		currency: target,
	}, nil
}

// GreaterThan returns true if this amount is greater than the other
func (m Money) GreaterThan(other Money) bool {
	return m.amount.GreaterThan(other.amount)
}

// LessThanOrEqual returns true if this amount is less than or equal to the other
func (m Money) LessThanOrEqual(other Money) bool {
	return m.amount.LessThanOrEqual(other.amount)
}

// Equal returns true if amount and currency match
func (m Money) Equal(other Money) bool {
	return m.currency == other.currency && m.amount.Equal(other.amount)
}

// Round returns the amount rounded to the given number of decimal places.
// Rounding is a display concern; intermediate arithmetic never rounds.
func (m Money) Round(places int32) Money {
	return Money{
		amount:   m.amount.Round(places),
		currency: m.currency,
	}
}

// String returns a human-readable representation
func (m Money) String() string {
	return fmt.Sprintf("%s %s", m.amount.StringFixed(2), m.currency)
}

// Value implements driver.Valuer so Money can be stored as a numeric column
func (m Money) Value() (driver.Value, error) {
	return m.amount.String(), nil
}
