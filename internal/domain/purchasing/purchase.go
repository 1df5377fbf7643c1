package purchasing

import (
	"time"

	"github.com/cartrade/backend/internal/domain/shared"
	"github.com/cartrade/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Purchase represents a vehicle purchase from a supplier.
// It is the aggregate root owning the optional freight and customs
// cost segments; together they make up the vehicle's landed cost.
type Purchase struct {
	shared.AuditedAggregateRoot
	PurchaseDate  time.Time            `json:"purchase_date"`
	SupplierID    uuid.UUID            `json:"supplier_id"`
	PriceFOB      decimal.Decimal      `json:"price_fob"`
	Currency      valueobject.Currency `json:"currency"`
	ExchangeRate  decimal.Decimal      `json:"exchange_rate"`
	PriceDZD      decimal.Decimal      `json:"price_dzd"`
	Notes         string               `json:"notes"`
	Freight       *FreightCost         `json:"freight,omitempty"`
	Customs       *CustomsDeclaration  `json:"customs,omitempty"`
}

// NewPurchase creates a new purchase record.
// The DZD price is derived from the FOB price and the exchange rate.
func NewPurchase(purchaseDate time.Time, supplierID uuid.UUID, priceFOB decimal.Decimal, currency valueobject.Currency, exchangeRate decimal.Decimal) (*Purchase, error) {
	if purchaseDate.IsZero() {
		return nil, shared.NewDomainError("INVALID_PURCHASE_DATE", "Purchase date is required")
	}
	if purchaseDate.After(time.Now()) {
		return nil, shared.NewDomainError("INVALID_PURCHASE_DATE", "Purchase date cannot be in the future")
	}
	if supplierID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_SUPPLIER", "Supplier ID cannot be empty")
	}
	if priceFOB.IsNegative() {
		return nil, shared.NewDomainError("INVALID_FOB_PRICE", "FOB price cannot be negative")
	}
	if !currency.IsValid() {
		return nil, shared.NewDomainError("INVALID_CURRENCY", "Currency is not valid")
	}
	if exchangeRate.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_EXCHANGE_RATE", "Exchange rate must be greater than zero")
	}

	p := &Purchase{
		AuditedAggregateRoot: shared.NewAuditedAggregateRoot(),
		PurchaseDate:         purchaseDate,
		SupplierID:           supplierID,
		PriceFOB:             priceFOB,
		Currency:             currency,
		ExchangeRate:         exchangeRate,
		PriceDZD:             priceFOB.Mul(exchangeRate),
	}

	p.AddDomainEvent(NewPurchaseCreatedEvent(p))

	return p, nil
}

// AttachFreight attaches the freight cost segment.
// A purchase carries at most one freight segment.
func (p *Purchase) AttachFreight(freight *FreightCost) error {
	if freight == nil {
		return shared.NewDomainError("INVALID_FREIGHT", "Freight cost cannot be nil")
	}
	if p.Freight != nil {
		return shared.NewDomainError("FREIGHT_EXISTS", "Purchase already has a freight cost segment")
	}
	freight.PurchaseID = p.ID
	p.Freight = freight
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	p.AddDomainEvent(NewFreightAttachedEvent(p, freight))

	return nil
}

// AttachCustoms attaches the customs declaration segment.
// A purchase carries at most one customs declaration.
func (p *Purchase) AttachCustoms(customs *CustomsDeclaration) error {
	if customs == nil {
		return shared.NewDomainError("INVALID_CUSTOMS", "Customs declaration cannot be nil")
	}
	if p.Customs != nil {
		return shared.NewDomainError("CUSTOMS_EXISTS", "Purchase already has a customs declaration")
	}
	customs.PurchaseID = p.ID
	p.Customs = customs
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	p.AddDomainEvent(NewCustomsAttachedEvent(p, customs))

	return nil
}

// PriceMoney returns the purchase price in the base currency
func (p *Purchase) PriceMoney() valueobject.Money {
	return valueobject.NewMoneyDZD(p.PriceDZD)
}

// LandedCost returns the total cost of the vehicle delivered and
// cleared: purchase price plus freight plus customs, all in DZD.
// Missing freight or customs segments contribute zero.
func (p *Purchase) LandedCost() valueobject.Money {
	total := p.PriceMoney()
	if p.Freight != nil {
		total = total.MustAdd(p.Freight.TotalMoney())
	}
	if p.Customs != nil {
		total = total.MustAdd(p.Customs.TotalMoney())
	}
	return total
}

// CIFValue returns the customs valuation base: purchase price plus
// freight, excluding duties. Used to prefill customs declarations.
func (p *Purchase) CIFValue() valueobject.Money {
	cif := p.PriceMoney()
	if p.Freight != nil {
		cif = cif.MustAdd(p.Freight.TotalMoney())
	}
	return cif
}
