package payment

import (
	"time"

	"github.com/cartrade/backend/internal/domain/shared"
	"github.com/cartrade/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Method represents how a payment was made
type Method string

const (
	MethodCash         Method = "cash"
	MethodBankTransfer Method = "bank_transfer"
	MethodCheck        Method = "check"
	MethodCard         Method = "card"
	MethodOther        Method = "other"
)

// IsValid checks if the method is a valid Method
func (m Method) IsValid() bool {
	switch m {
	case MethodCash, MethodBankTransfer, MethodCheck, MethodCard, MethodOther:
		return true
	}
	return false
}

// Payment is a single settlement recorded against one invoice.
// Confirmed payments count toward the invoice's paid amount; the
// invoice recompute itself happens in the application layer so the
// payment save and the balance update share one transaction.
type Payment struct {
	shared.AuditedAggregateRoot
	PaymentNumber string          `json:"payment_number"`
	InvoiceID     uuid.UUID       `json:"invoice_id"`
	PaymentDate   time.Time       `json:"payment_date"`
	AmountDZD     decimal.Decimal `json:"amount_dzd"`
	Method        Method          `json:"method"`
	BankReference string          `json:"bank_reference"`
	Confirmed     bool            `json:"confirmed"`
	Notes         string          `json:"notes"`
}

// NewPayment creates a confirmed payment against an invoice.
// Amount-versus-balance validation belongs to the invoice and is
// enforced by the caller before construction.
func NewPayment(paymentNumber string, invoiceID uuid.UUID, paymentDate time.Time, amount decimal.Decimal, method Method, bankReference string) (*Payment, error) {
	if paymentNumber == "" {
		return nil, shared.NewDomainError("INVALID_PAYMENT_NUMBER", "Payment number cannot be empty")
	}
	if invoiceID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INVOICE", "Invoice ID cannot be empty")
	}
	if paymentDate.IsZero() {
		return nil, shared.NewDomainError("INVALID_PAYMENT_DATE", "Payment date is required")
	}
	if paymentDate.After(time.Now()) {
		return nil, shared.NewDomainError("INVALID_PAYMENT_DATE", "Payment date cannot be in the future")
	}
	if !amount.IsPositive() {
		return nil, shared.NewDomainError("INVALID_PAYMENT_AMOUNT", "Payment amount must be greater than zero")
	}
	if !method.IsValid() {
		return nil, shared.NewDomainError("INVALID_PAYMENT_METHOD", "Payment method is not valid")
	}

	return &Payment{
		AuditedAggregateRoot: shared.NewAuditedAggregateRoot(),
		PaymentNumber:        paymentNumber,
		InvoiceID:            invoiceID,
		PaymentDate:          paymentDate,
		AmountDZD:            amount,
		Method:               method,
		BankReference:        bankReference,
		Confirmed:            true,
	}, nil
}

// Amend changes the amount and date of an existing payment.
// The caller validates the new amount against the invoice balance with
// this payment's prior amount added back.
func (p *Payment) Amend(amount decimal.Decimal, paymentDate time.Time) error {
	if !amount.IsPositive() {
		return shared.NewDomainError("INVALID_PAYMENT_AMOUNT", "Payment amount must be greater than zero")
	}
	if paymentDate.IsZero() || paymentDate.After(time.Now()) {
		return shared.NewDomainError("INVALID_PAYMENT_DATE", "Payment date cannot be in the future")
	}
	p.AmountDZD = amount
	p.PaymentDate = paymentDate
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
	return nil
}

// Unconfirm excludes the payment from the invoice's paid amount
func (p *Payment) Unconfirm() {
	p.Confirmed = false
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
}

// AmountMoney returns the payment amount in the base currency
func (p *Payment) AmountMoney() valueobject.Money {
	return valueobject.NewMoneyDZD(p.AmountDZD)
}
