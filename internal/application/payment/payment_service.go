package payment

import (
	"context"
	"time"

	"github.com/cartrade/backend/internal/domain/payment"
	"github.com/cartrade/backend/internal/domain/sales"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RecordPaymentRequest carries the fields to record a payment
type RecordPaymentRequest struct {
	InvoiceID     uuid.UUID       `json:"invoice_id" binding:"required"`
	PaymentDate   time.Time       `json:"payment_date" binding:"required"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	Method        string          `json:"method" binding:"required"`
	BankReference string          `json:"bank_reference"`
	Notes         string          `json:"notes"`
	RecordedBy    *uuid.UUID      `json:"-"`
}

// AmendPaymentRequest carries the editable fields of a payment
type AmendPaymentRequest struct {
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	PaymentDate time.Time       `json:"payment_date" binding:"required"`
}

// PaymentResponse is the API representation of a payment together
// with the invoice state it produced
type PaymentResponse struct {
	ID                uuid.UUID       `json:"id"`
	PaymentNumber     string          `json:"payment_number"`
	InvoiceID         uuid.UUID       `json:"invoice_id"`
	PaymentDate       time.Time       `json:"payment_date"`
	AmountDZD         decimal.Decimal `json:"amount_dzd"`
	Method            string          `json:"method"`
	BankReference     string          `json:"bank_reference"`
	Confirmed         bool            `json:"confirmed"`
	InvoiceAmountPaid decimal.Decimal `json:"invoice_amount_paid"`
	InvoiceBalanceDue decimal.Decimal `json:"invoice_balance_due"`
	InvoiceStatus     string          `json:"invoice_status"`
	CreatedAt         time.Time       `json:"created_at"`
}

func toPaymentResponse(p *payment.Payment, inv *sales.Invoice) *PaymentResponse {
	return &PaymentResponse{
		ID:                p.ID,
		PaymentNumber:     p.PaymentNumber,
		InvoiceID:         p.InvoiceID,
		PaymentDate:       p.PaymentDate,
		AmountDZD:         p.AmountDZD,
		Method:            string(p.Method),
		BankReference:     p.BankReference,
		Confirmed:         p.Confirmed,
		InvoiceAmountPaid: inv.AmountPaid,
		InvoiceBalanceDue: inv.BalanceDue,
		InvoiceStatus:     string(inv.Status),
		CreatedAt:         p.CreatedAt,
	}
}

// PaymentService records payments against invoices. Every mutation
// runs the full chain in one transaction: lock the invoice row,
// validate the amount against the live balance, allocate the payment
// number, write the payment, then recompute the invoice from the sum
// of confirmed payments.
type PaymentService struct {
	scope TransactionScope
}

// NewPaymentService creates a new PaymentService
func NewPaymentService(scope TransactionScope) *PaymentService {
	return &PaymentService{scope: scope}
}

// Record records a new payment and applies it to its invoice
func (s *PaymentService) Record(ctx context.Context, req RecordPaymentRequest) (*PaymentResponse, error) {
	var (
		recorded *payment.Payment
		invoice  *sales.Invoice
	)
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		inv, err := repos.InvoiceRepo().FindByIDForUpdate(ctx, req.InvoiceID)
		if err != nil {
			return err
		}

		if err := inv.ValidatePaymentAmount(req.Amount, decimal.Zero); err != nil {
			return err
		}

		number, err := repos.PaymentRepo().NextPaymentNumber(ctx, req.PaymentDate)
		if err != nil {
			return err
		}

		p, err := payment.NewPayment(number, inv.ID, req.PaymentDate, req.Amount, payment.Method(req.Method), req.BankReference)
		if err != nil {
			return err
		}
		p.Notes = req.Notes
		if req.RecordedBy != nil {
			p.SetCreatedBy(*req.RecordedBy)
		}

		if err := repos.PaymentRepo().Save(ctx, p); err != nil {
			return err
		}

		if err := s.recomputeInvoice(ctx, repos, inv); err != nil {
			return err
		}

		recorded, invoice = p, inv
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toPaymentResponse(recorded, invoice), nil
}

// Amend changes an existing payment's amount or date and reapplies
// the invoice. The payment's prior amount is added back before the
// balance check so the edit is not counted against itself.
func (s *PaymentService) Amend(ctx context.Context, paymentID uuid.UUID, req AmendPaymentRequest) (*PaymentResponse, error) {
	var (
		amended *payment.Payment
		invoice *sales.Invoice
	)
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		p, err := repos.PaymentRepo().FindByID(ctx, paymentID)
		if err != nil {
			return err
		}

		inv, err := repos.InvoiceRepo().FindByIDForUpdate(ctx, p.InvoiceID)
		if err != nil {
			return err
		}

		priorAmount := decimal.Zero
		if p.Confirmed {
			priorAmount = p.AmountDZD
		}
		if err := inv.ValidatePaymentAmount(req.Amount, priorAmount); err != nil {
			return err
		}

		if err := p.Amend(req.Amount, req.PaymentDate); err != nil {
			return err
		}

		if err := repos.PaymentRepo().Save(ctx, p); err != nil {
			return err
		}

		if err := s.recomputeInvoice(ctx, repos, inv); err != nil {
			return err
		}

		amended, invoice = p, inv
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toPaymentResponse(amended, invoice), nil
}

// Cancel unconfirms a payment and reapplies the invoice
func (s *PaymentService) Cancel(ctx context.Context, paymentID uuid.UUID) (*PaymentResponse, error) {
	var (
		cancelled *payment.Payment
		invoice   *sales.Invoice
	)
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		p, err := repos.PaymentRepo().FindByID(ctx, paymentID)
		if err != nil {
			return err
		}

		inv, err := repos.InvoiceRepo().FindByIDForUpdate(ctx, p.InvoiceID)
		if err != nil {
			return err
		}

		p.Unconfirm()
		if err := repos.PaymentRepo().Save(ctx, p); err != nil {
			return err
		}

		if err := s.recomputeInvoice(ctx, repos, inv); err != nil {
			return err
		}

		cancelled, invoice = p, inv
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toPaymentResponse(cancelled, invoice), nil
}

// ListByInvoice retrieves the payments recorded against an invoice
func (s *PaymentService) ListByInvoice(ctx context.Context, invoiceID uuid.UUID) ([]PaymentResponse, error) {
	var responses []PaymentResponse
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		inv, err := repos.InvoiceRepo().FindByID(ctx, invoiceID)
		if err != nil {
			return err
		}
		payments, err := repos.PaymentRepo().FindByInvoice(ctx, invoiceID)
		if err != nil {
			return err
		}
		responses = make([]PaymentResponse, 0, len(payments))
		for i := range payments {
			responses = append(responses, *toPaymentResponse(&payments[i], inv))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return responses, nil
}

// InvoiceStateResponse is the invoice's payment-derived state
type InvoiceStateResponse struct {
	InvoiceID  uuid.UUID       `json:"invoice_id"`
	AmountPaid decimal.Decimal `json:"amount_paid"`
	BalanceDue decimal.Decimal `json:"balance_due"`
	Status     string          `json:"status"`
}

// RecomputeInvoice re-derives an invoice's paid amount, balance and
// status from the confirmed payments on record. Safe to run at any
// time; repeated runs produce the same state.
func (s *PaymentService) RecomputeInvoice(ctx context.Context, invoiceID uuid.UUID) (*InvoiceStateResponse, error) {
	var invoice *sales.Invoice
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		inv, err := repos.InvoiceRepo().FindByIDForUpdate(ctx, invoiceID)
		if err != nil {
			return err
		}
		if err := s.recomputeInvoice(ctx, repos, inv); err != nil {
			return err
		}
		invoice = inv
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &InvoiceStateResponse{
		InvoiceID:  invoice.ID,
		AmountPaid: invoice.AmountPaid,
		BalanceDue: invoice.BalanceDue,
		Status:     string(invoice.Status),
	}, nil
}

// recomputeInvoice re-derives the invoice's paid amount, balance and
// status from the confirmed payments on record. Idempotent.
func (s *PaymentService) recomputeInvoice(ctx context.Context, repos TransactionalRepositories, inv *sales.Invoice) error {
	total, err := repos.PaymentRepo().SumConfirmedByInvoice(ctx, inv.ID)
	if err != nil {
		return err
	}
	if err := inv.ApplyConfirmedTotal(total); err != nil {
		return err
	}
	return repos.InvoiceRepo().Save(ctx, inv)
}
