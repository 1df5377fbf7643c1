package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cartrade/backend/internal/domain/sales"
	"github.com/cartrade/backend/internal/domain/shared"
)

func storedSale(t *testing.T, repo *GormSaleRepository, number string, date time.Time, traderID uuid.UUID, finalized bool) *sales.Sale {
	t.Helper()

	sale, err := sales.NewSale(number, date, uuid.New(), uuid.New(), traderID,
		decimal.NewFromInt(2_000_000), decimal.NewFromInt(1_700_000),
		sales.PaymentMethodCash, decimal.Zero, decimal.NewFromInt(10))
	require.NoError(t, err)
	if finalized {
		require.NoError(t, sale.Finalize())
	}
	require.NoError(t, repo.Save(context.Background(), sale))
	return sale
}

func TestGormSaleRepository_SaveAndFind(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormSaleRepository(db)
	ctx := context.Background()

	saleDate := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	sale := storedSale(t, repo, "VTE-20250310-001", saleDate, uuid.New(), false)

	found, err := repo.FindByID(ctx, sale.ID)
	require.NoError(t, err)
	assert.Equal(t, sale.SaleNumber, found.SaleNumber)
	assert.True(t, found.SalePriceDZD.Equal(decimal.NewFromInt(2_000_000)))
	assert.True(t, found.MarginDZD.Equal(decimal.NewFromInt(300_000)))
	assert.True(t, found.CommissionDZD.Equal(decimal.NewFromInt(30_000)))
	assert.Equal(t, sales.SaleStatusDraft, found.Status)

	byNumber, err := repo.FindByNumber(ctx, "VTE-20250310-001")
	require.NoError(t, err)
	assert.Equal(t, sale.ID, byNumber.ID)

	byVehicle, err := repo.FindByVehicle(ctx, sale.VehicleID)
	require.NoError(t, err)
	assert.Equal(t, sale.ID, byVehicle.ID)

	_, err = repo.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestGormSaleRepository_FindByVehicle_IgnoresCancelled(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormSaleRepository(db)
	ctx := context.Background()

	saleDate := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	sale := storedSale(t, repo, "VTE-20250310-001", saleDate, uuid.New(), false)
	require.NoError(t, sale.Cancel())
	require.NoError(t, repo.Save(ctx, sale))

	_, err := repo.FindByVehicle(ctx, sale.VehicleID)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestGormSaleRepository_NextSaleNumber(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormSaleRepository(db)
	ctx := context.Background()

	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	first, err := repo.NextSaleNumber(ctx, date)
	require.NoError(t, err)
	assert.Equal(t, "VTE-20250310-001", first)

	storedSale(t, repo, first, date, uuid.New(), false)

	second, err := repo.NextSaleNumber(ctx, date)
	require.NoError(t, err)
	assert.Equal(t, "VTE-20250310-002", second)

	// a different day restarts the sequence
	otherDay, err := repo.NextSaleNumber(ctx, date.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.Equal(t, "VTE-20250311-001", otherDay)
}

func TestGormSaleRepository_FindFinalizedByTraderAndMonth(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormSaleRepository(db)
	ctx := context.Background()

	traderID := uuid.New()
	otherTrader := uuid.New()

	inMonth := time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC)
	endOfMonth := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)
	nextMonth := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)

	storedSale(t, repo, "VTE-20250305-001", inMonth, traderID, true)
	storedSale(t, repo, "VTE-20250331-001", endOfMonth, traderID, true)
	// draft sale in the same month is excluded
	storedSale(t, repo, "VTE-20250305-002", inMonth, traderID, false)
	// another trader's sale is excluded
	storedSale(t, repo, "VTE-20250305-003", inMonth, otherTrader, true)
	// next month is excluded
	storedSale(t, repo, "VTE-20250401-001", nextMonth, traderID, true)

	result, err := repo.FindFinalizedByTraderAndMonth(ctx, traderID, 2025, time.March)
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, "VTE-20250305-001", result[0].SaleNumber)
	assert.Equal(t, "VTE-20250331-001", result[1].SaleNumber)
}
