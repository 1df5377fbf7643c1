package purchasing

import (
	"github.com/cartrade/backend/internal/domain/shared"
	"github.com/cartrade/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FreightMethod represents the shipping method for a vehicle
type FreightMethod string

const (
	FreightMethodSea FreightMethod = "sea"
	FreightMethodAir FreightMethod = "air"
)

// IsValid checks if the freight method is valid
func (m FreightMethod) IsValid() bool {
	return m == FreightMethodSea || m == FreightMethodAir
}

// String returns the string representation of FreightMethod
func (m FreightMethod) String() string {
	return string(m)
}

// FreightCost is the freight and logistics cost segment of a purchase.
// It is a child entity of the Purchase aggregate; all amounts are
// normalized to DZD at construction.
type FreightCost struct {
	shared.BaseEntity
	PurchaseID     uuid.UUID            `json:"purchase_id"`
	Method         FreightMethod        `json:"method"`
	FreightAmount  decimal.Decimal      `json:"freight_amount"`
	Currency       valueobject.Currency `json:"currency"`
	ExchangeRate   decimal.Decimal      `json:"exchange_rate"`
	InsuranceDZD   decimal.Decimal      `json:"insurance_dzd"`
	OtherCostsDZD  decimal.Decimal      `json:"other_costs_dzd"`
	TotalDZD       decimal.Decimal      `json:"total_dzd"`
}

// NewFreightCost creates a freight cost segment.
// TotalDZD = freight * rate + insurance + other logistics costs.
func NewFreightCost(method FreightMethod, freightAmount decimal.Decimal, currency valueobject.Currency, exchangeRate, insuranceDZD, otherCostsDZD decimal.Decimal) (*FreightCost, error) {
	if !method.IsValid() {
		return nil, shared.NewDomainError("INVALID_FREIGHT_METHOD", "Freight method must be sea or air")
	}
	if freightAmount.IsNegative() {
		return nil, shared.NewDomainError("INVALID_FREIGHT_AMOUNT", "Freight amount cannot be negative")
	}
	if !currency.IsValid() {
		return nil, shared.NewDomainError("INVALID_CURRENCY", "Currency is not valid")
	}
	if exchangeRate.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_EXCHANGE_RATE", "Exchange rate must be greater than zero")
	}
	if insuranceDZD.IsNegative() {
		return nil, shared.NewDomainError("INVALID_INSURANCE", "Insurance cost cannot be negative")
	}
	if otherCostsDZD.IsNegative() {
		return nil, shared.NewDomainError("INVALID_OTHER_COSTS", "Other logistics costs cannot be negative")
	}

	freightDZD := freightAmount.Mul(exchangeRate)

	return &FreightCost{
		BaseEntity:    shared.NewBaseEntity(),
		Method:        method,
		FreightAmount: freightAmount,
		Currency:      currency,
		ExchangeRate:  exchangeRate,
		InsuranceDZD:  insuranceDZD,
		OtherCostsDZD: otherCostsDZD,
		TotalDZD:      freightDZD.Add(insuranceDZD).Add(otherCostsDZD),
	}, nil
}

// TotalMoney returns the total freight cost in the base currency
func (f *FreightCost) TotalMoney() valueobject.Money {
	return valueobject.NewMoneyDZD(f.TotalDZD)
}
