package sales

import (
	"github.com/cartrade/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Event types for the sales bounded context
const (
	EventTypeSaleCreated   = "sales.sale.created"
	EventTypeSaleFinalized = "sales.sale.finalized"
	EventTypeInvoiceIssued = "sales.invoice.issued"
	EventTypeInvoicePaid   = "sales.invoice.paid"
)

// SaleCreatedEvent is raised when a sale record is created
type SaleCreatedEvent struct {
	shared.BaseDomainEvent
	SaleNumber string          `json:"sale_number"`
	VehicleID  string          `json:"vehicle_id"`
	TraderID   string          `json:"trader_id"`
	PriceDZD   decimal.Decimal `json:"price_dzd"`
}

// NewSaleCreatedEvent creates a new SaleCreatedEvent
func NewSaleCreatedEvent(s *Sale) *SaleCreatedEvent {
	return &SaleCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeSaleCreated, "Sale", s.ID),
		SaleNumber:      s.SaleNumber,
		VehicleID:       s.VehicleID.String(),
		TraderID:        s.TraderID.String(),
		PriceDZD:        s.SalePriceDZD,
	}
}

// SaleFinalizedEvent is raised when a sale's financials are frozen
type SaleFinalizedEvent struct {
	shared.BaseDomainEvent
	SaleNumber    string          `json:"sale_number"`
	MarginDZD     decimal.Decimal `json:"margin_dzd"`
	CommissionDZD decimal.Decimal `json:"commission_dzd"`
}

// NewSaleFinalizedEvent creates a new SaleFinalizedEvent
func NewSaleFinalizedEvent(s *Sale) *SaleFinalizedEvent {
	return &SaleFinalizedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeSaleFinalized, "Sale", s.ID),
		SaleNumber:      s.SaleNumber,
		MarginDZD:       s.MarginDZD,
		CommissionDZD:   s.CommissionDZD,
	}
}

// InvoiceIssuedEvent is raised when an invoice enters circulation
type InvoiceIssuedEvent struct {
	shared.BaseDomainEvent
	InvoiceNumber string          `json:"invoice_number"`
	TotalTTC      decimal.Decimal `json:"total_ttc"`
}

// NewInvoiceIssuedEvent creates a new InvoiceIssuedEvent
func NewInvoiceIssuedEvent(i *Invoice) *InvoiceIssuedEvent {
	return &InvoiceIssuedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeInvoiceIssued, "Invoice", i.ID),
		InvoiceNumber:   i.InvoiceNumber,
		TotalTTC:        i.TotalTTC,
	}
}

// InvoicePaidEvent is raised when an invoice's balance reaches zero
type InvoicePaidEvent struct {
	shared.BaseDomainEvent
	InvoiceNumber string          `json:"invoice_number"`
	AmountPaid    decimal.Decimal `json:"amount_paid"`
}

// NewInvoicePaidEvent creates a new InvoicePaidEvent
func NewInvoicePaidEvent(i *Invoice) *InvoicePaidEvent {
	return &InvoicePaidEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeInvoicePaid, "Invoice", i.ID),
		InvoiceNumber:   i.InvoiceNumber,
		AmountPaid:      i.AmountPaid,
	}
}
