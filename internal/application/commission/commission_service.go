package commission

import (
	"context"
	"errors"
	"time"

	"github.com/cartrade/backend/internal/domain/commission"
	"github.com/cartrade/backend/internal/domain/identity"
	"github.com/cartrade/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CommissionService closes commission periods and pays out summaries.
// The period close is the only writer of summaries: it aggregates each
// trader's finalized sales for the month and overwrites the trader's
// summary, so re-running a close before the period flag is set never
// accumulates.
type CommissionService struct {
	scope  TransactionScope
	params shared.FinanceParams
}

// NewCommissionService creates a new CommissionService
func NewCommissionService(scope TransactionScope, params shared.FinanceParams) *CommissionService {
	return &CommissionService{scope: scope, params: params}
}

// CreateTier creates a commission tier
func (s *CommissionService) CreateTier(ctx context.Context, req CreateTierRequest) (*TierResponse, error) {
	tier, err := commission.NewTier(req.Name, req.MinSalesCount, req.MaxSalesCount, req.Rate)
	if err != nil {
		return nil, err
	}

	err = s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		return repos.TierRepo().Save(ctx, tier)
	})
	if err != nil {
		return nil, err
	}
	return toTierResponse(tier), nil
}

// ListTiers retrieves the active tiers ordered ascending by minimum
func (s *CommissionService) ListTiers(ctx context.Context) ([]TierResponse, error) {
	var responses []TierResponse
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		tiers, err := repos.TierRepo().FindActive(ctx)
		if err != nil {
			return err
		}
		responses = make([]TierResponse, 0, len(tiers))
		for i := range tiers {
			responses = append(responses, *toTierResponse(&tiers[i]))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return responses, nil
}

// DeactivateTier removes a tier from selection
func (s *CommissionService) DeactivateTier(ctx context.Context, tierID uuid.UUID) error {
	return s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		tier, err := repos.TierRepo().FindByID(ctx, tierID)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return shared.NewDomainError("TIER_NOT_FOUND", "Commission tier not found")
			}
			return err
		}
		tier.Deactivate()
		return repos.TierRepo().Save(ctx, tier)
	})
}

// ClosePeriod closes the commission period for (year, month). Inside
// one transaction it locks the period row, flips the closed flag, then
// aggregates every active trader's finalized sales of that month and
// upserts their summary. A period that was never opened is created on
// the fly; an already-closed period is rejected.
func (s *CommissionService) ClosePeriod(ctx context.Context, req ClosePeriodRequest) (*ClosePeriodResponse, error) {
	month := time.Month(req.Month)
	var response *ClosePeriodResponse

	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		period, err := s.lockPeriod(ctx, repos, req.Year, month)
		if err != nil {
			return err
		}

		if err := period.Close(req.ClosedBy); err != nil {
			return err
		}
		if err := repos.PeriodRepo().Save(ctx, period); err != nil {
			return err
		}

		tiers, err := repos.TierRepo().FindActive(ctx)
		if err != nil {
			return err
		}

		earners, err := repos.UserRepo().FindActiveByRoles(ctx, identity.RoleTrader, identity.RoleManager)
		if err != nil {
			return err
		}

		summaries := make([]SummaryResponse, 0, len(earners))
		for i := range earners {
			summary, err := s.upsertSummary(ctx, repos, period, &earners[i], tiers)
			if err != nil {
				return err
			}
			summaries = append(summaries, *toSummaryResponse(summary))
		}

		response = &ClosePeriodResponse{
			PeriodID:  period.ID,
			Label:     period.Label(),
			ClosedAt:  *period.ClosedAt,
			Summaries: summaries,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return response, nil
}

// lockPeriod finds the period for (year, month) and re-reads it under
// a row lock, creating it when the month has never been touched
func (s *CommissionService) lockPeriod(ctx context.Context, repos TransactionalRepositories, year int, month time.Month) (*commission.Period, error) {
	existing, err := repos.PeriodRepo().FindByYearMonth(ctx, year, month)
	if err != nil {
		if !errors.Is(err, shared.ErrNotFound) {
			return nil, err
		}
		period, err := commission.NewPeriod(year, month)
		if err != nil {
			return nil, err
		}
		if err := repos.PeriodRepo().Save(ctx, period); err != nil {
			return nil, err
		}
		existing = period
	}
	return repos.PeriodRepo().FindByIDForUpdate(ctx, existing.ID)
}

// upsertSummary aggregates one trader's finalized sales for the period
// and writes the summary, replacing the figures of a previous run
func (s *CommissionService) upsertSummary(ctx context.Context, repos TransactionalRepositories, period *commission.Period, trader *identity.User, tiers []commission.Tier) (*commission.Summary, error) {
	sales, err := repos.SaleRepo().FindFinalizedByTraderAndMonth(ctx, trader.ID, period.Year, period.Month)
	if err != nil {
		return nil, err
	}

	salesCount := len(sales)
	totalSalesValue := decimal.Zero
	totalMargin := decimal.Zero
	baseCommission := decimal.Zero
	for i := range sales {
		totalSalesValue = totalSalesValue.Add(sales[i].SalePriceDZD)
		totalMargin = totalMargin.Add(sales[i].MarginDZD)
		baseCommission = baseCommission.Add(sales[i].CommissionDZD)
	}

	tier := commission.SelectTier(tiers, salesCount)

	existing, err := repos.SummaryRepo().FindByTraderAndPeriod(ctx, trader.ID, period.ID)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	if existing != nil {
		if err := existing.Replace(salesCount, totalSalesValue, totalMargin, baseCommission, tier, s.params.BaseCommissionRate); err != nil {
			return nil, err
		}
		if err := repos.SummaryRepo().Save(ctx, existing); err != nil {
			return nil, err
		}
		return existing, nil
	}

	summary, err := commission.NewSummary(trader.ID, period.ID, salesCount, totalSalesValue, totalMargin, baseCommission, tier, s.params.BaseCommissionRate)
	if err != nil {
		return nil, err
	}
	if err := repos.SummaryRepo().Save(ctx, summary); err != nil {
		return nil, err
	}
	return summary, nil
}

// GetSummary retrieves a summary by ID
func (s *CommissionService) GetSummary(ctx context.Context, summaryID uuid.UUID) (*SummaryResponse, error) {
	var response *SummaryResponse
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		summary, err := repos.SummaryRepo().FindByID(ctx, summaryID)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return shared.NewDomainError("SUMMARY_NOT_FOUND", "Commission summary not found")
			}
			return err
		}
		response = toSummaryResponse(summary)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return response, nil
}

// ListSummariesByPeriod retrieves all summaries of a period
func (s *CommissionService) ListSummariesByPeriod(ctx context.Context, periodID uuid.UUID) ([]SummaryResponse, error) {
	var responses []SummaryResponse
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		summaries, err := repos.SummaryRepo().FindByPeriod(ctx, periodID)
		if err != nil {
			return err
		}
		responses = make([]SummaryResponse, 0, len(summaries))
		for i := range summaries {
			responses = append(responses, *toSummaryResponse(&summaries[i]))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return responses, nil
}

// ApproveSummary moves a pending summary to approved
func (s *CommissionService) ApproveSummary(ctx context.Context, summaryID uuid.UUID) (*SummaryResponse, error) {
	var response *SummaryResponse
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		summary, err := repos.SummaryRepo().FindByID(ctx, summaryID)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return shared.NewDomainError("SUMMARY_NOT_FOUND", "Commission summary not found")
			}
			return err
		}
		if err := summary.Approve(); err != nil {
			return err
		}
		if err := repos.SummaryRepo().Save(ctx, summary); err != nil {
			return err
		}
		response = toSummaryResponse(summary)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return response, nil
}

// RecordPayout pays out a summary. The payout record and the summary's
// paid status are written in one transaction; a summary that already
// has a payout is rejected.
func (s *CommissionService) RecordPayout(ctx context.Context, req RecordPayoutRequest) (*PayoutResponse, error) {
	var response *PayoutResponse
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		summary, err := repos.SummaryRepo().FindByID(ctx, req.SummaryID)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return shared.NewDomainError("SUMMARY_NOT_FOUND", "Commission summary not found")
			}
			return err
		}

		existing, err := repos.PayoutRepo().FindBySummary(ctx, summary.ID)
		if err != nil && !errors.Is(err, shared.ErrNotFound) {
			return err
		}
		if existing != nil {
			return shared.NewDomainError("PAYOUT_EXISTS", "Summary already has a payout")
		}

		payout, err := commission.NewPayout(summary, req.PayoutDate, commission.PayoutMethod(req.Method), req.Reference)
		if err != nil {
			return err
		}
		if req.PaidBy != nil {
			payout.SetCreatedBy(*req.PaidBy)
		}

		if err := repos.PayoutRepo().Save(ctx, payout); err != nil {
			return err
		}
		if err := repos.SummaryRepo().Save(ctx, summary); err != nil {
			return err
		}

		response = toPayoutResponse(payout)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return response, nil
}
