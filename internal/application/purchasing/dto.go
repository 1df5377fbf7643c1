package purchasing

import (
	"time"

	"github.com/cartrade/backend/internal/domain/purchasing"
	"github.com/cartrade/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateSupplierRequest carries the fields to register a supplier
type CreateSupplierRequest struct {
	Name          string `json:"name" binding:"required"`
	Country       string `json:"country" binding:"required"`
	ContactPerson string `json:"contact_person"`
	Phone         string `json:"phone"`
	Email         string `json:"email" binding:"omitempty,email"`
	Currency      string `json:"currency" binding:"required"`
}

// SupplierResponse is the API representation of a supplier
type SupplierResponse struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Country       string    `json:"country"`
	ContactPerson string    `json:"contact_person"`
	Phone         string    `json:"phone"`
	Email         string    `json:"email"`
	Currency      string    `json:"currency"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
}

// ToSupplierResponse converts a supplier aggregate to its response
func ToSupplierResponse(s *purchasing.Supplier) *SupplierResponse {
	return &SupplierResponse{
		ID:            s.ID,
		Name:          s.Name,
		Country:       s.Country,
		ContactPerson: s.ContactPerson,
		Phone:         s.Phone,
		Email:         s.Email,
		Currency:      string(s.Currency),
		IsActive:      s.IsActive,
		CreatedAt:     s.CreatedAt,
	}
}

// CreatePurchaseRequest carries the fields to record a purchase
type CreatePurchaseRequest struct {
	PurchaseDate time.Time       `json:"purchase_date" binding:"required"`
	SupplierID   uuid.UUID       `json:"supplier_id" binding:"required"`
	PriceFOB     decimal.Decimal `json:"price_fob" binding:"required"`
	Currency     string          `json:"currency" binding:"required"`
	ExchangeRate decimal.Decimal `json:"exchange_rate" binding:"required"`
	Notes        string          `json:"notes"`
	CreatedBy    *uuid.UUID      `json:"-"`
}

// AttachFreightRequest carries the freight segment fields
type AttachFreightRequest struct {
	Method        string          `json:"method" binding:"required"`
	FreightAmount decimal.Decimal `json:"freight_amount" binding:"required"`
	Currency      string          `json:"currency" binding:"required"`
	ExchangeRate  decimal.Decimal `json:"exchange_rate" binding:"required"`
	InsuranceDZD  decimal.Decimal `json:"insurance_dzd"`
	OtherCostsDZD decimal.Decimal `json:"other_costs_dzd"`
}

// AttachCustomsRequest carries the customs declaration fields.
// When DeriveFromCIF is set, duty and VAT are computed from the
// purchase's CIF value and the given rates.
type AttachCustomsRequest struct {
	DeclarationDate   time.Time       `json:"declaration_date" binding:"required"`
	DeclarationNumber string          `json:"declaration_number" binding:"required"`
	DeriveFromCIF     bool            `json:"derive_from_cif"`
	CIFValueDZD       decimal.Decimal `json:"cif_value_dzd"`
	TariffRate        decimal.Decimal `json:"tariff_rate"`
	ImportDutyDZD     decimal.Decimal `json:"import_duty_dzd"`
	VATRate           decimal.Decimal `json:"vat_rate"`
	VATAmountDZD      decimal.Decimal `json:"vat_amount_dzd"`
	OtherFeesDZD      decimal.Decimal `json:"other_fees_dzd"`
}

// FreightResponse is the API representation of a freight segment
type FreightResponse struct {
	Method   string          `json:"method"`
	TotalDZD decimal.Decimal `json:"total_dzd"`
}

// CustomsResponse is the API representation of a customs declaration
type CustomsResponse struct {
	DeclarationNumber string          `json:"declaration_number"`
	ImportDutyDZD     decimal.Decimal `json:"import_duty_dzd"`
	VATAmountDZD      decimal.Decimal `json:"vat_amount_dzd"`
	OtherFeesDZD      decimal.Decimal `json:"other_fees_dzd"`
	TotalDZD          decimal.Decimal `json:"total_dzd"`
	IsCleared         bool            `json:"is_cleared"`
}

// PurchaseResponse is the API representation of a purchase with its
// cost segments and derived totals
type PurchaseResponse struct {
	ID            uuid.UUID        `json:"id"`
	PurchaseDate  time.Time        `json:"purchase_date"`
	SupplierID    uuid.UUID        `json:"supplier_id"`
	PriceFOB      decimal.Decimal  `json:"price_fob"`
	Currency      string           `json:"currency"`
	ExchangeRate  decimal.Decimal  `json:"exchange_rate"`
	PriceDZD      decimal.Decimal  `json:"price_dzd"`
	Freight       *FreightResponse `json:"freight,omitempty"`
	Customs       *CustomsResponse `json:"customs,omitempty"`
	LandedCostDZD decimal.Decimal  `json:"landed_cost_dzd"`
	Notes         string           `json:"notes"`
	CreatedAt     time.Time        `json:"created_at"`
}

// ToPurchaseResponse converts a purchase aggregate to its response
func ToPurchaseResponse(p *purchasing.Purchase) *PurchaseResponse {
	resp := &PurchaseResponse{
		ID:            p.ID,
		PurchaseDate:  p.PurchaseDate,
		SupplierID:    p.SupplierID,
		PriceFOB:      p.PriceFOB,
		Currency:      string(p.Currency),
		ExchangeRate:  p.ExchangeRate,
		PriceDZD:      p.PriceDZD,
		LandedCostDZD: p.LandedCost().Amount(),
		Notes:         p.Notes,
		CreatedAt:     p.CreatedAt,
	}
	if p.Freight != nil {
		resp.Freight = &FreightResponse{
			Method:   string(p.Freight.Method),
			TotalDZD: p.Freight.TotalDZD,
		}
	}
	if p.Customs != nil {
		resp.Customs = &CustomsResponse{
			DeclarationNumber: p.Customs.DeclarationNumber,
			ImportDutyDZD:     p.Customs.ImportDutyDZD,
			VATAmountDZD:      p.Customs.VATAmountDZD,
			OtherFeesDZD:      p.Customs.OtherFeesDZD,
			TotalDZD:          p.Customs.TotalDZD,
			IsCleared:         p.Customs.IsCleared,
		}
	}
	return resp
}

// parseCurrency validates a currency code from a request
func parseCurrency(code string) (valueobject.Currency, error) {
	c := valueobject.Currency(code)
	if !c.IsValid() {
		return "", errInvalidCurrency
	}
	return c, nil
}
