package sales

import (
	"time"

	"github.com/cartrade/backend/internal/domain/sales"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateSaleRequest carries the fields to open a sale
type CreateSaleRequest struct {
	SaleDate       time.Time       `json:"sale_date" binding:"required"`
	VehicleID      uuid.UUID       `json:"vehicle_id" binding:"required"`
	CustomerID     uuid.UUID       `json:"customer_id" binding:"required"`
	TraderID       uuid.UUID       `json:"trader_id" binding:"required"`
	SalePrice      decimal.Decimal `json:"sale_price" binding:"required"`
	PaymentMethod  string          `json:"payment_method" binding:"required"`
	DownPayment    decimal.Decimal `json:"down_payment"`
	CommissionRate *decimal.Decimal `json:"commission_rate"`
	Notes          string          `json:"notes"`
	CreatedBy      *uuid.UUID      `json:"-"`
}

// UpdateSaleRequest carries the editable fields of a draft sale
type UpdateSaleRequest struct {
	SalePrice      *decimal.Decimal `json:"sale_price"`
	CommissionRate *decimal.Decimal `json:"commission_rate"`
}

// IssueInvoiceRequest carries the fields to invoice a finalized sale
type IssueInvoiceRequest struct {
	DueDate time.Time  `json:"due_date" binding:"required"`
	Notes   string     `json:"notes"`
	IssuedBy *uuid.UUID `json:"-"`
}

// SaleResponse is the API representation of a sale
type SaleResponse struct {
	ID             uuid.UUID       `json:"id"`
	SaleNumber     string          `json:"sale_number"`
	SaleDate       time.Time       `json:"sale_date"`
	VehicleID      uuid.UUID       `json:"vehicle_id"`
	CustomerID     uuid.UUID       `json:"customer_id"`
	TraderID       uuid.UUID       `json:"trader_id"`
	SalePriceDZD   decimal.Decimal `json:"sale_price_dzd"`
	LandedCostDZD  decimal.Decimal `json:"landed_cost_dzd"`
	PaymentMethod  string          `json:"payment_method"`
	DownPaymentDZD decimal.Decimal `json:"down_payment_dzd"`
	CommissionRate decimal.Decimal `json:"commission_rate"`
	MarginDZD      decimal.Decimal `json:"margin_dzd"`
	MarginPercent  decimal.Decimal `json:"margin_percent"`
	CommissionDZD  decimal.Decimal `json:"commission_dzd"`
	Status         string          `json:"status"`
	Notes          string          `json:"notes"`
	CreatedAt      time.Time       `json:"created_at"`
}

// ToSaleResponse converts a sale aggregate to its response
func ToSaleResponse(s *sales.Sale) *SaleResponse {
	return &SaleResponse{
		ID:             s.ID,
		SaleNumber:     s.SaleNumber,
		SaleDate:       s.SaleDate,
		VehicleID:      s.VehicleID,
		CustomerID:     s.CustomerID,
		TraderID:       s.TraderID,
		SalePriceDZD:   s.SalePriceDZD,
		LandedCostDZD:  s.LandedCostDZD,
		PaymentMethod:  string(s.PaymentMethod),
		DownPaymentDZD: s.DownPaymentDZD,
		CommissionRate: s.CommissionRate,
		MarginDZD:      s.MarginDZD,
		MarginPercent:  s.MarginPercent(),
		CommissionDZD:  s.CommissionDZD,
		Status:         string(s.Status),
		Notes:          s.Notes,
		CreatedAt:      s.CreatedAt,
	}
}

// InvoiceResponse is the API representation of an invoice
type InvoiceResponse struct {
	ID            uuid.UUID       `json:"id"`
	InvoiceNumber string          `json:"invoice_number"`
	SaleID        uuid.UUID       `json:"sale_id"`
	CustomerID    uuid.UUID       `json:"customer_id"`
	InvoiceDate   time.Time       `json:"invoice_date"`
	DueDate       time.Time       `json:"due_date"`
	SubtotalHT    decimal.Decimal `json:"subtotal_ht"`
	VATRate       decimal.Decimal `json:"vat_rate"`
	VATAmount     decimal.Decimal `json:"vat_amount"`
	TotalTTC      decimal.Decimal `json:"total_ttc"`
	AmountPaid    decimal.Decimal `json:"amount_paid"`
	BalanceDue    decimal.Decimal `json:"balance_due"`
	Status        string          `json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
}

// ToInvoiceResponse converts an invoice aggregate to its response
func ToInvoiceResponse(i *sales.Invoice) *InvoiceResponse {
	return &InvoiceResponse{
		ID:            i.ID,
		InvoiceNumber: i.InvoiceNumber,
		SaleID:        i.SaleID,
		CustomerID:    i.CustomerID,
		InvoiceDate:   i.InvoiceDate,
		DueDate:       i.DueDate,
		SubtotalHT:    i.SubtotalHT,
		VATRate:       i.VATRate,
		VATAmount:     i.VATAmount,
		TotalTTC:      i.TotalTTC,
		AmountPaid:    i.AmountPaid,
		BalanceDue:    i.BalanceDue,
		Status:        string(i.Status),
		CreatedAt:     i.CreatedAt,
	}
}
