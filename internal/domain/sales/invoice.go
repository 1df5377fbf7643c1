package sales

import (
	"time"

	"github.com/cartrade/backend/internal/domain/shared"
	"github.com/cartrade/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultVATRate is the standard Algerian VAT rate in percent
var DefaultVATRate = decimal.NewFromInt(19)

// InvoiceStatus represents the lifecycle status of an invoice
type InvoiceStatus string

const (
	InvoiceStatusDraft     InvoiceStatus = "draft"
	InvoiceStatusIssued    InvoiceStatus = "issued"
	InvoiceStatusPaid      InvoiceStatus = "paid"
	InvoiceStatusCancelled InvoiceStatus = "cancelled"
)

// IsValid checks if the status is a valid InvoiceStatus
func (s InvoiceStatus) IsValid() bool {
	switch s {
	case InvoiceStatusDraft, InvoiceStatusIssued, InvoiceStatusPaid, InvoiceStatusCancelled:
		return true
	}
	return false
}

// IsTerminal returns true for statuses that allow no further transition
func (s InvoiceStatus) IsTerminal() bool {
	return s == InvoiceStatusPaid || s == InvoiceStatusCancelled
}

// Invoice bills a finalized sale to its customer. Totals are derived
// once at creation: VAT is added on top of the sale price (HT), never
// re-read from the sale afterwards.
type Invoice struct {
	shared.AuditedAggregateRoot
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
	Status        InvoiceStatus   `json:"status"`
	Notes         string          `json:"notes"`
}

// NewInvoice creates a draft invoice for a finalized sale.
// TotalTTC = SubtotalHT + SubtotalHT * vatRate / 100.
func NewInvoice(invoiceNumber string, sale *Sale, invoiceDate, dueDate time.Time, vatRate decimal.Decimal) (*Invoice, error) {
	if invoiceNumber == "" {
		return nil, shared.NewDomainError("INVALID_INVOICE_NUMBER", "Invoice number cannot be empty")
	}
	if sale == nil {
		return nil, shared.NewDomainError("INVALID_SALE", "Sale cannot be nil")
	}
	if !sale.IsFinalized() {
		return nil, shared.NewDomainError("SALE_NOT_FINALIZED", "Only finalized sales can be invoiced")
	}
	if invoiceDate.IsZero() {
		return nil, shared.NewDomainError("INVALID_INVOICE_DATE", "Invoice date is required")
	}
	if dueDate.Before(invoiceDate) {
		return nil, shared.NewDomainError("INVALID_DUE_DATE", "Due date cannot be before the invoice date")
	}
	if vatRate.IsNegative() || vatRate.GreaterThan(decimal.NewFromInt(100)) {
		return nil, shared.NewDomainError("INVALID_VAT_RATE", "VAT rate must be between 0 and 100")
	}

	subtotal := sale.SalePriceDZD
	vat := subtotal.Mul(vatRate).Div(decimal.NewFromInt(100))
	total := subtotal.Add(vat)

	inv := &Invoice{
		AuditedAggregateRoot: shared.NewAuditedAggregateRoot(),
		InvoiceNumber:        invoiceNumber,
		SaleID:               sale.ID,
		CustomerID:           sale.CustomerID,
		InvoiceDate:          invoiceDate,
		DueDate:              dueDate,
		SubtotalHT:           subtotal,
		VATRate:              vatRate,
		VATAmount:            vat,
		TotalTTC:             total,
		AmountPaid:           decimal.Zero,
		BalanceDue:           total,
		Status:               InvoiceStatusDraft,
	}

	return inv, nil
}

// Issue moves a draft invoice into circulation
func (i *Invoice) Issue() error {
	if i.Status != InvoiceStatusDraft {
		return shared.NewDomainError("INVOICE_NOT_DRAFT", "Only draft invoices can be issued")
	}
	i.Status = InvoiceStatusIssued
	i.UpdatedAt = time.Now()
	i.IncrementVersion()

	i.AddDomainEvent(NewInvoiceIssuedEvent(i))

	return nil
}

// Cancel cancels an invoice that has received no payments
func (i *Invoice) Cancel() error {
	if i.Status.IsTerminal() {
		return shared.NewDomainError("INVOICE_TERMINAL", "Invoice is already paid or cancelled")
	}
	if i.AmountPaid.IsPositive() {
		return shared.NewDomainError("INVOICE_HAS_PAYMENTS", "Cannot cancel an invoice with recorded payments")
	}
	i.Status = InvoiceStatusCancelled
	i.UpdatedAt = time.Now()
	i.IncrementVersion()
	return nil
}

// ValidatePaymentAmount checks that a payment fits within the balance
// still owed. When amending an existing payment, priorAmount is that
// payment's previously recorded amount; it is added back so the edit
// is not counted against itself.
func (i *Invoice) ValidatePaymentAmount(amount, priorAmount decimal.Decimal) error {
	if !amount.IsPositive() {
		return shared.NewDomainError("INVALID_PAYMENT_AMOUNT", "Payment amount must be greater than zero")
	}
	available := i.BalanceDue.Add(priorAmount)
	if amount.GreaterThan(available) {
		return shared.NewDomainError("PAYMENT_EXCEEDS_BALANCE", "Payment amount exceeds the invoice balance")
	}
	return nil
}

// ApplyConfirmedTotal recomputes the paid amount, balance and status
// from the given sum of confirmed payments. The operation is
// idempotent: reapplying the same total leaves the invoice unchanged
// apart from version bookkeeping.
func (i *Invoice) ApplyConfirmedTotal(totalConfirmed decimal.Decimal) error {
	if totalConfirmed.IsNegative() {
		return shared.NewDomainError("INVALID_PAYMENT_TOTAL", "Confirmed payment total cannot be negative")
	}
	if i.Status == InvoiceStatusCancelled {
		return shared.NewDomainError("INVOICE_CANCELLED", "Cannot apply payments to a cancelled invoice")
	}

	i.AmountPaid = totalConfirmed
	i.BalanceDue = i.TotalTTC.Sub(totalConfirmed)

	switch {
	case i.BalanceDue.LessThanOrEqual(decimal.Zero):
		if i.Status != InvoiceStatusPaid {
			i.Status = InvoiceStatusPaid
			i.AddDomainEvent(NewInvoicePaidEvent(i))
		}
	case i.AmountPaid.IsPositive():
		i.Status = InvoiceStatusIssued
	}

	i.UpdatedAt = time.Now()
	i.IncrementVersion()
	return nil
}

// IsOverdue returns true for an unpaid invoice past its due date
func (i *Invoice) IsOverdue(now time.Time) bool {
	return i.Status == InvoiceStatusIssued && i.BalanceDue.IsPositive() && now.After(i.DueDate)
}

// TotalMoney returns the invoice total in the base currency
func (i *Invoice) TotalMoney() valueobject.Money {
	return valueobject.NewMoneyDZD(i.TotalTTC)
}

// BalanceMoney returns the outstanding balance in the base currency
func (i *Invoice) BalanceMoney() valueobject.Money {
	return valueobject.NewMoneyDZD(i.BalanceDue)
}
