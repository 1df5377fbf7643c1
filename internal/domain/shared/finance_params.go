package shared

import "github.com/shopspring/decimal"

// FinanceParams carries the financial constants used by the
// computation chain. It is loaded from configuration at startup and
// passed explicitly into services; there is no global settings lookup.
type FinanceParams struct {
	// VATRate is the VAT percentage applied on top of invoice subtotals
	VATRate decimal.Decimal
	// BaseCommissionRate is the company-wide base commission percentage
	BaseCommissionRate decimal.Decimal
	// ReservationDays is how long a vehicle reservation holds
	ReservationDays int
}

// DefaultFinanceParams returns the standard parameters: 19% VAT, 10%
// base commission, 7-day reservations.
func DefaultFinanceParams() FinanceParams {
	return FinanceParams{
		VATRate:            decimal.NewFromInt(19),
		BaseCommissionRate: decimal.NewFromInt(10),
		ReservationDays:    7,
	}
}

// Validate checks the parameters are usable
func (p FinanceParams) Validate() error {
	hundred := decimal.NewFromInt(100)
	if p.VATRate.IsNegative() || p.VATRate.GreaterThan(hundred) {
		return NewDomainError("INVALID_VAT_RATE", "VAT rate must be between 0 and 100")
	}
	if p.BaseCommissionRate.IsNegative() || p.BaseCommissionRate.GreaterThan(hundred) {
		return NewDomainError("INVALID_BASE_RATE", "Base commission rate must be between 0 and 100")
	}
	if p.ReservationDays <= 0 {
		return NewDomainError("INVALID_RESERVATION_DAYS", "Reservation days must be positive")
	}
	return nil
}
