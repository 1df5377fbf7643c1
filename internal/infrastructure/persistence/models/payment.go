package models

import (
	"time"

	"github.com/cartrade/backend/internal/domain/payment"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentModel is the persistence model for the Payment aggregate.
type PaymentModel struct {
	AuditedAggregateModel
	PaymentNumber string          `gorm:"type:varchar(30);not null;uniqueIndex"`
	InvoiceID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	PaymentDate   time.Time       `gorm:"type:date;not null;index"`
	AmountDZD     decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Method        payment.Method  `gorm:"type:varchar(20);not null"`
	BankReference string          `gorm:"type:varchar(100)"`
	Confirmed     bool            `gorm:"not null;default:true"`
	Notes         string          `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (PaymentModel) TableName() string {
	return "payments"
}

// ToDomain converts the persistence model to a domain Payment.
func (m *PaymentModel) ToDomain() *payment.Payment {
	return &payment.Payment{
		AuditedAggregateRoot: m.ToDomainAuditedAggregateRoot(),
		PaymentNumber:        m.PaymentNumber,
		InvoiceID:            m.InvoiceID,
		PaymentDate:          m.PaymentDate,
		AmountDZD:            m.AmountDZD,
		Method:               m.Method,
		BankReference:        m.BankReference,
		Confirmed:            m.Confirmed,
		Notes:                m.Notes,
	}
}

// FromDomain populates the persistence model from a domain Payment.
func (m *PaymentModel) FromDomain(p *payment.Payment) {
	m.FromDomainAuditedAggregateRoot(p.AuditedAggregateRoot)
	m.PaymentNumber = p.PaymentNumber
	m.InvoiceID = p.InvoiceID
	m.PaymentDate = p.PaymentDate
	m.AmountDZD = p.AmountDZD
	m.Method = p.Method
	m.BankReference = p.BankReference
	m.Confirmed = p.Confirmed
	m.Notes = p.Notes
}

// PaymentModelFromDomain creates a new persistence model from a domain Payment.
func PaymentModelFromDomain(p *payment.Payment) *PaymentModel {
	m := &PaymentModel{}
	m.FromDomain(p)
	return m
}
