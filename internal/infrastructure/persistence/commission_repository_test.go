package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cartrade/backend/internal/domain/commission"
	"github.com/cartrade/backend/internal/domain/shared"
)

func TestGormCommissionPeriodRepository_FindByYearMonth(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormCommissionPeriodRepository(db)
	ctx := context.Background()

	period, err := commission.NewPeriod(2025, time.March)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, period))

	found, err := repo.FindByYearMonth(ctx, 2025, time.March)
	require.NoError(t, err)
	assert.Equal(t, period.ID, found.ID)
	assert.Equal(t, "2025-03", found.Label())
	assert.False(t, found.IsClosed)

	_, err = repo.FindByYearMonth(ctx, 2025, time.April)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestGormCommissionPeriodRepository_SavePersistsClose(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormCommissionPeriodRepository(db)
	ctx := context.Background()

	period, err := commission.NewPeriod(2025, time.March)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, period))

	closedBy := uuid.New()
	require.NoError(t, period.Close(closedBy))
	require.NoError(t, repo.Save(ctx, period))

	found, err := repo.FindByID(ctx, period.ID)
	require.NoError(t, err)
	assert.True(t, found.IsClosed)
	require.NotNil(t, found.ClosedBy)
	assert.Equal(t, closedBy, *found.ClosedBy)
	assert.NotNil(t, found.ClosedAt)
}

func TestGormCommissionSummaryRepository_SaveOverwritesRow(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormCommissionSummaryRepository(db)
	ctx := context.Background()

	traderID := uuid.New()
	periodID := uuid.New()

	summary, err := commission.NewSummary(traderID, periodID, 3,
		decimal.NewFromInt(6_000_000), decimal.NewFromInt(900_000),
		decimal.NewFromInt(90_000), nil, decimal.NewFromInt(10))
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, summary))

	// a re-run replaces the figures in place, same row
	require.NoError(t, summary.Replace(4,
		decimal.NewFromInt(8_000_000), decimal.NewFromInt(1_200_000),
		decimal.NewFromInt(120_000), nil, decimal.NewFromInt(10)))
	require.NoError(t, repo.Save(ctx, summary))

	found, err := repo.FindByTraderAndPeriod(ctx, traderID, periodID)
	require.NoError(t, err)
	assert.Equal(t, summary.ID, found.ID)
	assert.Equal(t, 4, found.SalesCount)
	assert.True(t, found.TotalMarginDZD.Equal(decimal.NewFromInt(1_200_000)))
	assert.True(t, found.TotalCommissionDZD.Equal(decimal.NewFromInt(120_000)))

	all, err := repo.FindByPeriod(ctx, periodID)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestGormCommissionSummaryRepository_FindByPeriod_OrdersByCommission(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormCommissionSummaryRepository(db)
	ctx := context.Background()

	periodID := uuid.New()
	low, err := commission.NewSummary(uuid.New(), periodID, 1,
		decimal.NewFromInt(1_000_000), decimal.NewFromInt(100_000),
		decimal.NewFromInt(10_000), nil, decimal.NewFromInt(10))
	require.NoError(t, err)
	high, err := commission.NewSummary(uuid.New(), periodID, 5,
		decimal.NewFromInt(9_000_000), decimal.NewFromInt(1_500_000),
		decimal.NewFromInt(150_000), nil, decimal.NewFromInt(10))
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, low))
	require.NoError(t, repo.Save(ctx, high))

	summaries, err := repo.FindByPeriod(ctx, periodID)
	require.NoError(t, err)
	require.Len(t, summaries, 2)
	assert.Equal(t, high.ID, summaries[0].ID)
	assert.Equal(t, low.ID, summaries[1].ID)
}

func TestGormCommissionTierRepository_FindActive(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormCommissionTierRepository(db)
	ctx := context.Background()

	four := 4
	nine := 9
	silver, err := commission.NewTier("Silver", 5, &nine, decimal.NewFromInt(12))
	require.NoError(t, err)
	bronze, err := commission.NewTier("Bronze", 0, &four, decimal.NewFromInt(10))
	require.NoError(t, err)
	gold, err := commission.NewTier("Gold", 10, nil, decimal.NewFromInt(15))
	require.NoError(t, err)
	retired, err := commission.NewTier("Legacy", 0, nil, decimal.NewFromInt(8))
	require.NoError(t, err)
	retired.Deactivate()

	for _, tier := range []*commission.Tier{silver, bronze, gold, retired} {
		require.NoError(t, repo.Save(ctx, tier))
	}

	tiers, err := repo.FindActive(ctx)
	require.NoError(t, err)
	require.Len(t, tiers, 3)
	assert.Equal(t, "Bronze", tiers[0].Name)
	assert.Equal(t, "Silver", tiers[1].Name)
	assert.Equal(t, "Gold", tiers[2].Name)
	require.NotNil(t, tiers[0].MaxSalesCount)
	assert.Equal(t, 4, *tiers[0].MaxSalesCount)
	assert.Nil(t, tiers[2].MaxSalesCount)
}

func TestGormCommissionPayoutRepository_FindBySummary(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormCommissionPayoutRepository(db)
	ctx := context.Background()

	summary, err := commission.NewSummary(uuid.New(), uuid.New(), 2,
		decimal.NewFromInt(4_000_000), decimal.NewFromInt(600_000),
		decimal.NewFromInt(60_000), nil, decimal.NewFromInt(10))
	require.NoError(t, err)

	payout, err := commission.NewPayout(summary,
		time.Date(2025, 4, 2, 0, 0, 0, 0, time.UTC),
		commission.PayoutMethodBankTransfer, "VIR-2025-042")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, payout))

	found, err := repo.FindBySummary(ctx, summary.ID)
	require.NoError(t, err)
	assert.Equal(t, payout.ID, found.ID)
	assert.True(t, found.AmountDZD.Equal(decimal.NewFromInt(60_000)))
	assert.Equal(t, "VIR-2025-042", found.Reference)

	_, err = repo.FindBySummary(ctx, uuid.New())
	assert.ErrorIs(t, err, shared.ErrNotFound)
}
