package models

import (
	"time"

	"github.com/cartrade/backend/internal/domain/purchasing"
	"github.com/cartrade/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SupplierModel is the persistence model for the Supplier aggregate.
type SupplierModel struct {
	AuditedAggregateModel
	Name          string               `gorm:"type:varchar(200);not null;uniqueIndex"`
	Country       string               `gorm:"type:varchar(100);not null;default:'China'"`
	ContactPerson string               `gorm:"type:varchar(100)"`
	Phone         string               `gorm:"type:varchar(50);index"`
	Email         string               `gorm:"type:varchar(200);index"`
	Address       string               `gorm:"type:text"`
	Currency      valueobject.Currency `gorm:"type:varchar(3);not null"`
	PaymentTerms  string               `gorm:"type:varchar(200)"`
	Notes         string               `gorm:"type:text"`
	IsActive      bool                 `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (SupplierModel) TableName() string {
	return "suppliers"
}

// ToDomain converts the persistence model to a domain Supplier.
func (m *SupplierModel) ToDomain() *purchasing.Supplier {
	return &purchasing.Supplier{
		AuditedAggregateRoot: m.ToDomainAuditedAggregateRoot(),
		Name:                 m.Name,
		Country:              m.Country,
		ContactPerson:        m.ContactPerson,
		Phone:                m.Phone,
		Email:                m.Email,
		Address:              m.Address,
		Currency:             m.Currency,
		PaymentTerms:         m.PaymentTerms,
		Notes:                m.Notes,
		IsActive:             m.IsActive,
	}
}

// FromDomain populates the persistence model from a domain Supplier.
func (m *SupplierModel) FromDomain(s *purchasing.Supplier) {
	m.FromDomainAuditedAggregateRoot(s.AuditedAggregateRoot)
	m.Name = s.Name
	m.Country = s.Country
	m.ContactPerson = s.ContactPerson
	m.Phone = s.Phone
	m.Email = s.Email
	m.Address = s.Address
	m.Currency = s.Currency
	m.PaymentTerms = s.PaymentTerms
	m.Notes = s.Notes
	m.IsActive = s.IsActive
}

// SupplierModelFromDomain creates a new persistence model from a domain Supplier.
func SupplierModelFromDomain(s *purchasing.Supplier) *SupplierModel {
	m := &SupplierModel{}
	m.FromDomain(s)
	return m
}

// PurchaseModel is the persistence model for the Purchase aggregate.
// The freight and customs cost segments live in their own tables and
// are loaded together with the root.
type PurchaseModel struct {
	AuditedAggregateModel
	PurchaseDate time.Time                `gorm:"type:date;not null;index"`
	SupplierID   uuid.UUID                `gorm:"type:uuid;not null;index"`
	PriceFOB     decimal.Decimal          `gorm:"type:decimal(18,4);not null"`
	Currency     valueobject.Currency     `gorm:"type:varchar(3);not null"`
	ExchangeRate decimal.Decimal          `gorm:"type:decimal(18,6);not null"`
	PriceDZD     decimal.Decimal          `gorm:"type:decimal(18,4);not null"`
	Notes        string                   `gorm:"type:text"`
	Freight      *FreightCostModel        `gorm:"foreignKey:PurchaseID"`
	Customs      *CustomsDeclarationModel `gorm:"foreignKey:PurchaseID"`
}

// TableName returns the table name for GORM
func (PurchaseModel) TableName() string {
	return "purchases"
}

// ToDomain converts the persistence model to a domain Purchase with its
// cost segments.
func (m *PurchaseModel) ToDomain() *purchasing.Purchase {
	p := &purchasing.Purchase{
		AuditedAggregateRoot: m.ToDomainAuditedAggregateRoot(),
		PurchaseDate:         m.PurchaseDate,
		SupplierID:           m.SupplierID,
		PriceFOB:             m.PriceFOB,
		Currency:             m.Currency,
		ExchangeRate:         m.ExchangeRate,
		PriceDZD:             m.PriceDZD,
		Notes:                m.Notes,
	}
	if m.Freight != nil {
		p.Freight = m.Freight.ToDomain()
	}
	if m.Customs != nil {
		p.Customs = m.Customs.ToDomain()
	}
	return p
}

// FromDomain populates the persistence model from a domain Purchase.
// The cost segments are mapped when present.
func (m *PurchaseModel) FromDomain(p *purchasing.Purchase) {
	m.FromDomainAuditedAggregateRoot(p.AuditedAggregateRoot)
	m.PurchaseDate = p.PurchaseDate
	m.SupplierID = p.SupplierID
	m.PriceFOB = p.PriceFOB
	m.Currency = p.Currency
	m.ExchangeRate = p.ExchangeRate
	m.PriceDZD = p.PriceDZD
	m.Notes = p.Notes
	if p.Freight != nil {
		m.Freight = FreightCostModelFromDomain(p.Freight)
	}
	if p.Customs != nil {
		m.Customs = CustomsDeclarationModelFromDomain(p.Customs)
	}
}

// PurchaseModelFromDomain creates a new persistence model from a domain Purchase.
func PurchaseModelFromDomain(p *purchasing.Purchase) *PurchaseModel {
	m := &PurchaseModel{}
	m.FromDomain(p)
	return m
}

// FreightCostModel is the persistence model for the FreightCost child
// entity. One row per purchase at most.
type FreightCostModel struct {
	BaseModel
	PurchaseID    uuid.UUID                `gorm:"type:uuid;not null;uniqueIndex"`
	Method        purchasing.FreightMethod `gorm:"type:varchar(10);not null"`
	FreightAmount decimal.Decimal          `gorm:"type:decimal(18,4);not null"`
	Currency      valueobject.Currency     `gorm:"type:varchar(3);not null"`
	ExchangeRate  decimal.Decimal          `gorm:"type:decimal(18,6);not null"`
	InsuranceDZD  decimal.Decimal          `gorm:"type:decimal(18,4);not null;default:0"`
	OtherCostsDZD decimal.Decimal          `gorm:"type:decimal(18,4);not null;default:0"`
	TotalDZD      decimal.Decimal          `gorm:"type:decimal(18,4);not null"`
}

// TableName returns the table name for GORM
func (FreightCostModel) TableName() string {
	return "freight_costs"
}

// ToDomain converts the persistence model to a domain FreightCost.
func (m *FreightCostModel) ToDomain() *purchasing.FreightCost {
	return &purchasing.FreightCost{
		BaseEntity:    m.BaseModel.ToDomain(),
		PurchaseID:    m.PurchaseID,
		Method:        m.Method,
		FreightAmount: m.FreightAmount,
		Currency:      m.Currency,
		ExchangeRate:  m.ExchangeRate,
		InsuranceDZD:  m.InsuranceDZD,
		OtherCostsDZD: m.OtherCostsDZD,
		TotalDZD:      m.TotalDZD,
	}
}

// FromDomain populates the persistence model from a domain FreightCost.
func (m *FreightCostModel) FromDomain(f *purchasing.FreightCost) {
	m.FromDomainBaseEntity(f.BaseEntity)
	m.PurchaseID = f.PurchaseID
	m.Method = f.Method
	m.FreightAmount = f.FreightAmount
	m.Currency = f.Currency
	m.ExchangeRate = f.ExchangeRate
	m.InsuranceDZD = f.InsuranceDZD
	m.OtherCostsDZD = f.OtherCostsDZD
	m.TotalDZD = f.TotalDZD
}

// FreightCostModelFromDomain creates a new persistence model from a domain FreightCost.
func FreightCostModelFromDomain(f *purchasing.FreightCost) *FreightCostModel {
	m := &FreightCostModel{}
	m.FromDomain(f)
	return m
}

// CustomsDeclarationModel is the persistence model for the
// CustomsDeclaration child entity. One row per purchase at most.
type CustomsDeclarationModel struct {
	BaseModel
	PurchaseID        uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex"`
	DeclarationDate   time.Time       `gorm:"type:date;not null"`
	DeclarationNumber string          `gorm:"type:varchar(100);not null;uniqueIndex"`
	CIFValueDZD       decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	TariffRate        decimal.Decimal `gorm:"type:decimal(8,4);not null"`
	ImportDutyDZD     decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	VATRate           decimal.Decimal `gorm:"type:decimal(8,4);not null"`
	VATAmountDZD      decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	OtherFeesDZD      decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	TotalDZD          decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	IsCleared         bool            `gorm:"not null;default:false"`
	ClearanceDate     *time.Time      `gorm:"type:date"`
	Notes             string          `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (CustomsDeclarationModel) TableName() string {
	return "customs_declarations"
}

// ToDomain converts the persistence model to a domain CustomsDeclaration.
func (m *CustomsDeclarationModel) ToDomain() *purchasing.CustomsDeclaration {
	return &purchasing.CustomsDeclaration{
		BaseEntity:        m.BaseModel.ToDomain(),
		PurchaseID:        m.PurchaseID,
		DeclarationDate:   m.DeclarationDate,
		DeclarationNumber: m.DeclarationNumber,
		CIFValueDZD:       m.CIFValueDZD,
		TariffRate:        m.TariffRate,
		ImportDutyDZD:     m.ImportDutyDZD,
		VATRate:           m.VATRate,
		VATAmountDZD:      m.VATAmountDZD,
		OtherFeesDZD:      m.OtherFeesDZD,
		TotalDZD:          m.TotalDZD,
		IsCleared:         m.IsCleared,
		ClearanceDate:     m.ClearanceDate,
		Notes:             m.Notes,
	}
}

// FromDomain populates the persistence model from a domain CustomsDeclaration.
func (m *CustomsDeclarationModel) FromDomain(c *purchasing.CustomsDeclaration) {
	m.FromDomainBaseEntity(c.BaseEntity)
	m.PurchaseID = c.PurchaseID
	m.DeclarationDate = c.DeclarationDate
	m.DeclarationNumber = c.DeclarationNumber
	m.CIFValueDZD = c.CIFValueDZD
	m.TariffRate = c.TariffRate
	m.ImportDutyDZD = c.ImportDutyDZD
	m.VATRate = c.VATRate
	m.VATAmountDZD = c.VATAmountDZD
	m.OtherFeesDZD = c.OtherFeesDZD
	m.TotalDZD = c.TotalDZD
	m.IsCleared = c.IsCleared
	m.ClearanceDate = c.ClearanceDate
	m.Notes = c.Notes
}

// CustomsDeclarationModelFromDomain creates a new persistence model from a domain CustomsDeclaration.
func CustomsDeclarationModelFromDomain(c *purchasing.CustomsDeclaration) *CustomsDeclarationModel {
	m := &CustomsDeclarationModel{}
	m.FromDomain(c)
	return m
}
