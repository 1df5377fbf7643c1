package models

import (
	"time"

	"github.com/cartrade/backend/internal/domain/sales"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SaleModel is the persistence model for the Sale aggregate.
type SaleModel struct {
	AuditedAggregateModel
	SaleNumber     string              `gorm:"type:varchar(30);not null;uniqueIndex"`
	SaleDate       time.Time           `gorm:"type:date;not null;index"`
	VehicleID      uuid.UUID           `gorm:"type:uuid;not null;index"`
	CustomerID     uuid.UUID           `gorm:"type:uuid;not null;index"`
	TraderID       uuid.UUID           `gorm:"type:uuid;not null;index:idx_sales_trader_date"`
	SalePriceDZD   decimal.Decimal     `gorm:"type:decimal(18,4);not null"`
	LandedCostDZD  decimal.Decimal     `gorm:"type:decimal(18,4);not null"`
	PaymentMethod  sales.PaymentMethod `gorm:"type:varchar(20);not null"`
	DownPaymentDZD decimal.Decimal     `gorm:"type:decimal(18,4);not null;default:0"`
	CommissionRate decimal.Decimal     `gorm:"type:decimal(8,4);not null"`
	MarginDZD      decimal.Decimal     `gorm:"type:decimal(18,4);not null"`
	CommissionDZD  decimal.Decimal     `gorm:"type:decimal(18,4);not null"`
	Status         sales.SaleStatus    `gorm:"type:varchar(20);not null;index"`
	Notes          string              `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (SaleModel) TableName() string {
	return "sales"
}

// ToDomain converts the persistence model to a domain Sale.
func (m *SaleModel) ToDomain() *sales.Sale {
	return &sales.Sale{
		AuditedAggregateRoot: m.ToDomainAuditedAggregateRoot(),
		SaleNumber:           m.SaleNumber,
		SaleDate:             m.SaleDate,
		VehicleID:            m.VehicleID,
		CustomerID:           m.CustomerID,
		TraderID:             m.TraderID,
		SalePriceDZD:         m.SalePriceDZD,
		LandedCostDZD:        m.LandedCostDZD,
		PaymentMethod:        m.PaymentMethod,
		DownPaymentDZD:       m.DownPaymentDZD,
		CommissionRate:       m.CommissionRate,
		MarginDZD:            m.MarginDZD,
		CommissionDZD:        m.CommissionDZD,
		Status:               m.Status,
		Notes:                m.Notes,
	}
}

// FromDomain populates the persistence model from a domain Sale.
func (m *SaleModel) FromDomain(s *sales.Sale) {
	m.FromDomainAuditedAggregateRoot(s.AuditedAggregateRoot)
	m.SaleNumber = s.SaleNumber
	m.SaleDate = s.SaleDate
	m.VehicleID = s.VehicleID
	m.CustomerID = s.CustomerID
	m.TraderID = s.TraderID
	m.SalePriceDZD = s.SalePriceDZD
	m.LandedCostDZD = s.LandedCostDZD
	m.PaymentMethod = s.PaymentMethod
	m.DownPaymentDZD = s.DownPaymentDZD
	m.CommissionRate = s.CommissionRate
	m.MarginDZD = s.MarginDZD
	m.CommissionDZD = s.CommissionDZD
	m.Status = s.Status
	m.Notes = s.Notes
}

// SaleModelFromDomain creates a new persistence model from a domain Sale.
func SaleModelFromDomain(s *sales.Sale) *SaleModel {
	m := &SaleModel{}
	m.FromDomain(s)
	return m
}

// InvoiceModel is the persistence model for the Invoice aggregate.
type InvoiceModel struct {
	AuditedAggregateModel
	InvoiceNumber string              `gorm:"type:varchar(30);not null;uniqueIndex"`
	SaleID        uuid.UUID           `gorm:"type:uuid;not null;uniqueIndex"`
	CustomerID    uuid.UUID           `gorm:"type:uuid;not null;index"`
	InvoiceDate   time.Time           `gorm:"type:date;not null;index"`
	DueDate       time.Time           `gorm:"type:date;not null;index"`
	SubtotalHT    decimal.Decimal     `gorm:"type:decimal(18,4);not null"`
	VATRate       decimal.Decimal     `gorm:"type:decimal(8,4);not null"`
	VATAmount     decimal.Decimal     `gorm:"type:decimal(18,4);not null"`
	TotalTTC      decimal.Decimal     `gorm:"type:decimal(18,4);not null"`
	AmountPaid    decimal.Decimal     `gorm:"type:decimal(18,4);not null;default:0"`
	BalanceDue    decimal.Decimal     `gorm:"type:decimal(18,4);not null"`
	Status        sales.InvoiceStatus `gorm:"type:varchar(20);not null;index"`
	Notes         string              `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (InvoiceModel) TableName() string {
	return "invoices"
}

// ToDomain converts the persistence model to a domain Invoice.
func (m *InvoiceModel) ToDomain() *sales.Invoice {
	return &sales.Invoice{
		AuditedAggregateRoot: m.ToDomainAuditedAggregateRoot(),
		InvoiceNumber:        m.InvoiceNumber,
		SaleID:               m.SaleID,
		CustomerID:           m.CustomerID,
		InvoiceDate:          m.InvoiceDate,
		DueDate:              m.DueDate,
		SubtotalHT:           m.SubtotalHT,
		VATRate:              m.VATRate,
		VATAmount:            m.VATAmount,
		TotalTTC:             m.TotalTTC,
		AmountPaid:           m.AmountPaid,
		BalanceDue:           m.BalanceDue,
		Status:               m.Status,
		Notes:                m.Notes,
	}
}

// FromDomain populates the persistence model from a domain Invoice.
func (m *InvoiceModel) FromDomain(i *sales.Invoice) {
	m.FromDomainAuditedAggregateRoot(i.AuditedAggregateRoot)
	m.InvoiceNumber = i.InvoiceNumber
	m.SaleID = i.SaleID
	m.CustomerID = i.CustomerID
	m.InvoiceDate = i.InvoiceDate
	m.DueDate = i.DueDate
	m.SubtotalHT = i.SubtotalHT
	m.VATRate = i.VATRate
	m.VATAmount = i.VATAmount
	m.TotalTTC = i.TotalTTC
	m.AmountPaid = i.AmountPaid
	m.BalanceDue = i.BalanceDue
	m.Status = i.Status
	m.Notes = i.Notes
}

// InvoiceModelFromDomain creates a new persistence model from a domain Invoice.
func InvoiceModelFromDomain(i *sales.Invoice) *InvoiceModel {
	m := &InvoiceModel{}
	m.FromDomain(i)
	return m
}
