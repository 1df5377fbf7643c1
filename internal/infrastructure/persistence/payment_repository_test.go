package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cartrade/backend/internal/domain/payment"
)

func storedPayment(t *testing.T, repo *GormPaymentRepository, number string, invoiceID uuid.UUID, amount int64) *payment.Payment {
	t.Helper()

	p, err := payment.NewPayment(number, invoiceID,
		time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		decimal.NewFromInt(amount), payment.MethodBankTransfer, "")
	require.NoError(t, err)
	require.NoError(t, repo.Save(context.Background(), p))
	return p
}

func TestGormPaymentRepository_SumConfirmedByInvoice(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormPaymentRepository(db)
	ctx := context.Background()

	invoiceID := uuid.New()
	storedPayment(t, repo, "PAY-20250310-001", invoiceID, 500_000)
	storedPayment(t, repo, "PAY-20250310-002", invoiceID, 300_000)

	// unconfirmed payments are excluded from the sum
	excluded := storedPayment(t, repo, "PAY-20250310-003", invoiceID, 100_000)
	excluded.Unconfirm()
	require.NoError(t, repo.Save(ctx, excluded))

	// other invoices do not count
	storedPayment(t, repo, "PAY-20250310-004", uuid.New(), 999_999)

	total, err := repo.SumConfirmedByInvoice(ctx, invoiceID)
	require.NoError(t, err)
	assert.True(t, total.Equal(decimal.NewFromInt(800_000)), "got %s", total)
}

func TestGormPaymentRepository_SumConfirmedByInvoice_NoPayments(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormPaymentRepository(db)

	total, err := repo.SumConfirmedByInvoice(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.True(t, total.IsZero())
}

func TestGormPaymentRepository_NextPaymentNumber(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormPaymentRepository(db)
	ctx := context.Background()

	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	first, err := repo.NextPaymentNumber(ctx, date)
	require.NoError(t, err)
	assert.Equal(t, "PAY-20250310-001", first)

	storedPayment(t, repo, first, uuid.New(), 100_000)

	second, err := repo.NextPaymentNumber(ctx, date)
	require.NoError(t, err)
	assert.Equal(t, "PAY-20250310-002", second)
}

func TestGormPaymentRepository_FindByInvoice(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormPaymentRepository(db)
	ctx := context.Background()

	invoiceID := uuid.New()
	storedPayment(t, repo, "PAY-20250310-002", invoiceID, 200_000)
	storedPayment(t, repo, "PAY-20250310-001", invoiceID, 100_000)

	payments, err := repo.FindByInvoice(ctx, invoiceID)
	require.NoError(t, err)
	require.Len(t, payments, 2)
	assert.Equal(t, "PAY-20250310-001", payments[0].PaymentNumber)
	assert.Equal(t, "PAY-20250310-002", payments[1].PaymentNumber)
}
