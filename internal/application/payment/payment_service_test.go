package payment

import (
	"context"
	"testing"
	"time"

	"github.com/cartrade/backend/internal/domain/payment"
	"github.com/cartrade/backend/internal/domain/sales"
	"github.com/cartrade/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockPaymentRepository is a mock implementation of payment.Repository
type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*payment.Payment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.Payment), args.Error(1)
}

func (m *MockPaymentRepository) FindByNumber(ctx context.Context, paymentNumber string) (*payment.Payment, error) {
	args := m.Called(ctx, paymentNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.Payment), args.Error(1)
}

func (m *MockPaymentRepository) FindByInvoice(ctx context.Context, invoiceID uuid.UUID) ([]payment.Payment, error) {
	args := m.Called(ctx, invoiceID)
	return args.Get(0).([]payment.Payment), args.Error(1)
}

func (m *MockPaymentRepository) SumConfirmedByInvoice(ctx context.Context, invoiceID uuid.UUID) (decimal.Decimal, error) {
	args := m.Called(ctx, invoiceID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockPaymentRepository) NextPaymentNumber(ctx context.Context, date time.Time) (string, error) {
	args := m.Called(ctx, date)
	return args.String(0), args.Error(1)
}

func (m *MockPaymentRepository) Save(ctx context.Context, p *payment.Payment) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

// MockInvoiceRepository is a mock implementation of sales.InvoiceRepository
type MockInvoiceRepository struct {
	mock.Mock
}

func (m *MockInvoiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*sales.Invoice, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sales.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*sales.Invoice, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sales.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) FindByNumber(ctx context.Context, invoiceNumber string) (*sales.Invoice, error) {
	args := m.Called(ctx, invoiceNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sales.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) FindBySale(ctx context.Context, saleID uuid.UUID) (*sales.Invoice, error) {
	args := m.Called(ctx, saleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sales.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) FindOverdue(ctx context.Context, asOf time.Time) ([]sales.Invoice, error) {
	args := m.Called(ctx, asOf)
	return args.Get(0).([]sales.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) NextInvoiceNumber(ctx context.Context, date time.Time) (string, error) {
	args := m.Called(ctx, date)
	return args.String(0), args.Error(1)
}

func (m *MockInvoiceRepository) Save(ctx context.Context, invoice *sales.Invoice) error {
	args := m.Called(ctx, invoice)
	return args.Error(0)
}

// issuedInvoice builds an issued 2,380,000 DZD invoice
func issuedInvoice(t *testing.T) *sales.Invoice {
	t.Helper()
	sale, err := sales.NewSale("VTE-20250110-001", time.Now().Add(-time.Hour),
		uuid.New(), uuid.New(), uuid.New(),
		decimal.NewFromInt(2000000), decimal.NewFromInt(1600000),
		sales.PaymentMethodBankTransfer, decimal.Zero, decimal.NewFromInt(10))
	require.NoError(t, err)
	require.NoError(t, sale.Finalize())

	inv, err := sales.NewInvoice("INV-20250110-001", sale, time.Now(), time.Now().AddDate(0, 1, 0), sales.DefaultVATRate)
	require.NoError(t, err)
	require.NoError(t, inv.Issue())
	return inv
}

func TestRecordPayment(t *testing.T) {
	paymentRepo := new(MockPaymentRepository)
	invoiceRepo := new(MockInvoiceRepository)
	service := NewPaymentService(NewNoOpTransactionScope(paymentRepo, invoiceRepo))

	inv := issuedInvoice(t)
	invoiceRepo.On("FindByIDForUpdate", mock.Anything, inv.ID).Return(inv, nil)
	paymentRepo.On("NextPaymentNumber", mock.Anything, mock.AnythingOfType("time.Time")).Return("PAY-20250110-001", nil)
	paymentRepo.On("Save", mock.Anything, mock.AnythingOfType("*payment.Payment")).Return(nil)
	paymentRepo.On("SumConfirmedByInvoice", mock.Anything, inv.ID).Return(decimal.NewFromInt(1000000), nil)
	invoiceRepo.On("Save", mock.Anything, inv).Return(nil)

	resp, err := service.Record(context.Background(), RecordPaymentRequest{
		InvoiceID:   inv.ID,
		PaymentDate: time.Now().Add(-time.Hour),
		Amount:      decimal.NewFromInt(1000000),
		Method:      "bank_transfer",
	})
	require.NoError(t, err)

	assert.Equal(t, "PAY-20250110-001", resp.PaymentNumber)
	assert.True(t, resp.InvoiceBalanceDue.Equal(decimal.NewFromInt(1380000)))
	assert.Equal(t, "issued", resp.InvoiceStatus)
}

func TestRecordPayment_SettlesInvoice(t *testing.T) {
	paymentRepo := new(MockPaymentRepository)
	invoiceRepo := new(MockInvoiceRepository)
	service := NewPaymentService(NewNoOpTransactionScope(paymentRepo, invoiceRepo))

	inv := issuedInvoice(t)
	require.NoError(t, inv.ApplyConfirmedTotal(decimal.NewFromInt(1000000)))

	invoiceRepo.On("FindByIDForUpdate", mock.Anything, inv.ID).Return(inv, nil)
	paymentRepo.On("NextPaymentNumber", mock.Anything, mock.AnythingOfType("time.Time")).Return("PAY-20250110-002", nil)
	paymentRepo.On("Save", mock.Anything, mock.AnythingOfType("*payment.Payment")).Return(nil)
	paymentRepo.On("SumConfirmedByInvoice", mock.Anything, inv.ID).Return(decimal.NewFromInt(2380000), nil)
	invoiceRepo.On("Save", mock.Anything, inv).Return(nil)

	resp, err := service.Record(context.Background(), RecordPaymentRequest{
		InvoiceID:   inv.ID,
		PaymentDate: time.Now().Add(-time.Hour),
		Amount:      decimal.NewFromInt(1380000),
		Method:      "bank_transfer",
	})
	require.NoError(t, err)

	assert.True(t, resp.InvoiceBalanceDue.IsZero())
	assert.Equal(t, "paid", resp.InvoiceStatus)
}

func TestRecordPayment_RejectsOverpayment(t *testing.T) {
	paymentRepo := new(MockPaymentRepository)
	invoiceRepo := new(MockInvoiceRepository)
	service := NewPaymentService(NewNoOpTransactionScope(paymentRepo, invoiceRepo))

	inv := issuedInvoice(t)
	require.NoError(t, inv.ApplyConfirmedTotal(decimal.NewFromInt(1000000)))
	invoiceRepo.On("FindByIDForUpdate", mock.Anything, inv.ID).Return(inv, nil)

	over := decimal.NewFromInt(1380000).Add(decimal.NewFromFloat(0.01))
	_, err := service.Record(context.Background(), RecordPaymentRequest{
		InvoiceID:   inv.ID,
		PaymentDate: time.Now().Add(-time.Hour),
		Amount:      over,
		Method:      "cash",
	})
	require.Error(t, err)

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "PAYMENT_EXCEEDS_BALANCE", domainErr.Code)
	paymentRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestRecordPayment_RejectsFutureDate(t *testing.T) {
	paymentRepo := new(MockPaymentRepository)
	invoiceRepo := new(MockInvoiceRepository)
	service := NewPaymentService(NewNoOpTransactionScope(paymentRepo, invoiceRepo))

	inv := issuedInvoice(t)
	invoiceRepo.On("FindByIDForUpdate", mock.Anything, inv.ID).Return(inv, nil)
	paymentRepo.On("NextPaymentNumber", mock.Anything, mock.AnythingOfType("time.Time")).Return("PAY-20250110-001", nil)

	_, err := service.Record(context.Background(), RecordPaymentRequest{
		InvoiceID:   inv.ID,
		PaymentDate: time.Now().Add(48 * time.Hour),
		Amount:      decimal.NewFromInt(1000),
		Method:      "cash",
	})
	assert.Error(t, err)
}

func TestAmendPayment_AddsBackPriorAmount(t *testing.T) {
	paymentRepo := new(MockPaymentRepository)
	invoiceRepo := new(MockInvoiceRepository)
	service := NewPaymentService(NewNoOpTransactionScope(paymentRepo, invoiceRepo))

	inv := issuedInvoice(t)
	require.NoError(t, inv.ApplyConfirmedTotal(decimal.NewFromInt(2380000)))
	require.True(t, inv.BalanceDue.IsZero())

	p, err := payment.NewPayment("PAY-20250110-001", inv.ID, time.Now().Add(-time.Hour),
		decimal.NewFromInt(2380000), payment.MethodBankTransfer, "")
	require.NoError(t, err)

	paymentRepo.On("FindByID", mock.Anything, p.ID).Return(p, nil)
	invoiceRepo.On("FindByIDForUpdate", mock.Anything, inv.ID).Return(inv, nil)
	paymentRepo.On("Save", mock.Anything, p).Return(nil)
	paymentRepo.On("SumConfirmedByInvoice", mock.Anything, inv.ID).Return(decimal.NewFromInt(2000000), nil)
	invoiceRepo.On("Save", mock.Anything, inv).Return(nil)

	// without the add-back this would be rejected against a zero balance
	resp, err := service.Amend(context.Background(), p.ID, AmendPaymentRequest{
		Amount:      decimal.NewFromInt(2000000),
		PaymentDate: p.PaymentDate,
	})
	require.NoError(t, err)

	assert.True(t, resp.AmountDZD.Equal(decimal.NewFromInt(2000000)))
	assert.True(t, resp.InvoiceBalanceDue.Equal(decimal.NewFromInt(380000)))
	assert.Equal(t, "issued", resp.InvoiceStatus)
}

func TestCancelPayment_Unconfirms(t *testing.T) {
	paymentRepo := new(MockPaymentRepository)
	invoiceRepo := new(MockInvoiceRepository)
	service := NewPaymentService(NewNoOpTransactionScope(paymentRepo, invoiceRepo))

	inv := issuedInvoice(t)
	require.NoError(t, inv.ApplyConfirmedTotal(decimal.NewFromInt(1000000)))

	p, err := payment.NewPayment("PAY-20250110-001", inv.ID, time.Now().Add(-time.Hour),
		decimal.NewFromInt(1000000), payment.MethodCash, "")
	require.NoError(t, err)

	paymentRepo.On("FindByID", mock.Anything, p.ID).Return(p, nil)
	invoiceRepo.On("FindByIDForUpdate", mock.Anything, inv.ID).Return(inv, nil)
	paymentRepo.On("Save", mock.Anything, p).Return(nil)
	paymentRepo.On("SumConfirmedByInvoice", mock.Anything, inv.ID).Return(decimal.Zero, nil)
	invoiceRepo.On("Save", mock.Anything, inv).Return(nil)

	resp, err := service.Cancel(context.Background(), p.ID)
	require.NoError(t, err)

	assert.False(t, resp.Confirmed)
	assert.True(t, resp.InvoiceBalanceDue.Equal(inv.TotalTTC))
}
