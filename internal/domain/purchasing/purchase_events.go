package purchasing

import (
	"github.com/cartrade/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Event types for the purchasing bounded context
const (
	EventTypePurchaseCreated = "purchasing.purchase.created"
	EventTypeFreightAttached = "purchasing.purchase.freight_attached"
	EventTypeCustomsAttached = "purchasing.purchase.customs_attached"
)

// PurchaseCreatedEvent is raised when a purchase record is created
type PurchaseCreatedEvent struct {
	shared.BaseDomainEvent
	SupplierID string          `json:"supplier_id"`
	PriceDZD   decimal.Decimal `json:"price_dzd"`
}

// NewPurchaseCreatedEvent creates a new PurchaseCreatedEvent
func NewPurchaseCreatedEvent(p *Purchase) *PurchaseCreatedEvent {
	return &PurchaseCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypePurchaseCreated, "Purchase", p.ID),
		SupplierID:      p.SupplierID.String(),
		PriceDZD:        p.PriceDZD,
	}
}

// FreightAttachedEvent is raised when a freight segment is attached
type FreightAttachedEvent struct {
	shared.BaseDomainEvent
	Method   FreightMethod   `json:"method"`
	TotalDZD decimal.Decimal `json:"total_dzd"`
}

// NewFreightAttachedEvent creates a new FreightAttachedEvent
func NewFreightAttachedEvent(p *Purchase, f *FreightCost) *FreightAttachedEvent {
	return &FreightAttachedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeFreightAttached, "Purchase", p.ID),
		Method:          f.Method,
		TotalDZD:        f.TotalDZD,
	}
}

// CustomsAttachedEvent is raised when a customs declaration is attached
type CustomsAttachedEvent struct {
	shared.BaseDomainEvent
	DeclarationNumber string          `json:"declaration_number"`
	TotalDZD          decimal.Decimal `json:"total_dzd"`
}

// NewCustomsAttachedEvent creates a new CustomsAttachedEvent
func NewCustomsAttachedEvent(p *Purchase, c *CustomsDeclaration) *CustomsAttachedEvent {
	return &CustomsAttachedEvent{
		BaseDomainEvent:   shared.NewBaseDomainEvent(EventTypeCustomsAttached, "Purchase", p.ID),
		DeclarationNumber: c.DeclarationNumber,
		TotalDZD:          c.TotalDZD,
	}
}
