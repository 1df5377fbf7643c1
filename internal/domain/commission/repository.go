package commission

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TierRepository defines the interface for tier persistence
type TierRepository interface {
	// FindByID finds a tier by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Tier, error)

	// FindActive returns active tiers ordered ascending by minimum
	FindActive(ctx context.Context) ([]Tier, error)

	// Save creates or updates a tier
	Save(ctx context.Context, tier *Tier) error
}

// PeriodRepository defines the interface for period persistence
type PeriodRepository interface {
	// FindByID finds a period by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Period, error)

	// FindByYearMonth finds the period for (year, month)
	FindByYearMonth(ctx context.Context, year int, month time.Month) (*Period, error)

	// FindByIDForUpdate finds a period by ID holding a row lock for
	// the remainder of the surrounding transaction
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*Period, error)

	// Save creates or updates a period
	Save(ctx context.Context, period *Period) error
}

// SummaryRepository defines the interface for summary persistence
type SummaryRepository interface {
	// FindByID finds a summary by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Summary, error)

	// FindByTraderAndPeriod finds the unique summary for (trader, period)
	FindByTraderAndPeriod(ctx context.Context, traderID, periodID uuid.UUID) (*Summary, error)

	// FindByPeriod finds all summaries for a period
	FindByPeriod(ctx context.Context, periodID uuid.UUID) ([]Summary, error)

	// Save creates or updates a summary
	Save(ctx context.Context, summary *Summary) error
}

// PayoutRepository defines the interface for payout persistence
type PayoutRepository interface {
	// FindByID finds a payout by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Payout, error)

	// FindBySummary finds the payout for a summary, if any
	FindBySummary(ctx context.Context, summaryID uuid.UUID) (*Payout, error)

	// Save creates a payout
	Save(ctx context.Context, payout *Payout) error
}
