package commission

import (
	"time"

	"github.com/cartrade/backend/internal/domain/shared"
	"github.com/cartrade/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PayoutStatus represents where a summary sits in the payout workflow
type PayoutStatus string

const (
	PayoutStatusPending   PayoutStatus = "pending"
	PayoutStatusApproved  PayoutStatus = "approved"
	PayoutStatusPaid      PayoutStatus = "paid"
	PayoutStatusCancelled PayoutStatus = "cancelled"
)

// IsValid checks if the status is a valid PayoutStatus
func (s PayoutStatus) IsValid() bool {
	switch s {
	case PayoutStatusPending, PayoutStatusApproved, PayoutStatusPaid, PayoutStatusCancelled:
		return true
	}
	return false
}

// IsTerminal returns true for statuses that allow no further transition
func (s PayoutStatus) IsTerminal() bool {
	return s == PayoutStatusPaid || s == PayoutStatusCancelled
}

// Summary is the per-(trader, period) commission aggregate. It is
// derived state: every period close rebuilds it from the trader's
// finalized sales, overwriting whatever was there before.
type Summary struct {
	shared.BaseAggregateRoot
	TraderID           uuid.UUID       `json:"trader_id"`
	PeriodID           uuid.UUID       `json:"period_id"`
	SalesCount         int             `json:"sales_count"`
	TotalSalesValueDZD decimal.Decimal `json:"total_sales_value_dzd"`
	TotalMarginDZD     decimal.Decimal `json:"total_margin_dzd"`
	BaseCommissionDZD  decimal.Decimal `json:"base_commission_dzd"`
	TierName           string          `json:"tier_name"`
	TierBonusDZD       decimal.Decimal `json:"tier_bonus_dzd"`
	TotalCommissionDZD decimal.Decimal `json:"total_commission_dzd"`
	PayoutStatus       PayoutStatus    `json:"payout_status"`
	PayoutDate         *time.Time      `json:"payout_date,omitempty"`
	PayoutReference    string          `json:"payout_reference"`
}

// NewSummary builds a summary from a trader's aggregated sales figures
// and the tier selected for their sales count. tier may be nil when no
// band matches; the bonus is then zero.
//
// TierBonus = totalMargin * (tierRate - baseRate)/100, zero when the
// tier rate does not exceed baseRate. The base commission is the sum
// of per-sale commission amounts and may be negative.
func NewSummary(traderID, periodID uuid.UUID, salesCount int, totalSalesValue, totalMargin, baseCommission decimal.Decimal, tier *Tier, baseRate decimal.Decimal) (*Summary, error) {
	if traderID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_TRADER", "Trader ID cannot be empty")
	}
	if periodID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PERIOD", "Period ID cannot be empty")
	}
	if salesCount < 0 {
		return nil, shared.NewDomainError("INVALID_SALES_COUNT", "Sales count cannot be negative")
	}

	s := &Summary{
		BaseAggregateRoot:  shared.NewBaseAggregateRoot(),
		TraderID:           traderID,
		PeriodID:           periodID,
		SalesCount:         salesCount,
		TotalSalesValueDZD: totalSalesValue,
		TotalMarginDZD:     totalMargin,
		BaseCommissionDZD:  baseCommission,
		TierBonusDZD:       decimal.Zero,
		PayoutStatus:       PayoutStatusPending,
	}
	if tier != nil {
		s.TierName = tier.Name
		s.TierBonusDZD = totalMargin.Mul(tier.BonusRateOver(baseRate)).Div(decimal.NewFromInt(100))
	}
	s.TotalCommissionDZD = s.BaseCommissionDZD.Add(s.TierBonusDZD)

	return s, nil
}

// Replace overwrites the aggregated figures with freshly computed
// ones, keeping identity and payout state. Used by the period close
// upsert so a re-run never accumulates.
func (s *Summary) Replace(salesCount int, totalSalesValue, totalMargin, baseCommission decimal.Decimal, tier *Tier, baseRate decimal.Decimal) error {
	if s.PayoutStatus.IsTerminal() {
		return shared.NewDomainError("SUMMARY_TERMINAL", "Cannot recalculate a paid or cancelled summary")
	}
	s.SalesCount = salesCount
	s.TotalSalesValueDZD = totalSalesValue
	s.TotalMarginDZD = totalMargin
	s.BaseCommissionDZD = baseCommission
	s.TierName = ""
	s.TierBonusDZD = decimal.Zero
	if tier != nil {
		s.TierName = tier.Name
		s.TierBonusDZD = totalMargin.Mul(tier.BonusRateOver(baseRate)).Div(decimal.NewFromInt(100))
	}
	s.TotalCommissionDZD = s.BaseCommissionDZD.Add(s.TierBonusDZD)
	s.UpdatedAt = time.Now()
	s.IncrementVersion()
	return nil
}

// Approve moves a pending summary into the approved state
func (s *Summary) Approve() error {
	if s.PayoutStatus != PayoutStatusPending {
		return shared.NewDomainError("INVALID_PAYOUT_STATUS", "Only pending summaries can be approved")
	}
	s.PayoutStatus = PayoutStatusApproved
	s.UpdatedAt = time.Now()
	s.IncrementVersion()
	return nil
}

// MarkPaid records the payout. Terminal, one-way: there is no
// reversal once a summary is paid.
func (s *Summary) MarkPaid(payoutDate time.Time, reference string) error {
	if s.PayoutStatus.IsTerminal() {
		return shared.NewDomainError("SUMMARY_TERMINAL", "Summary is already paid or cancelled")
	}
	if payoutDate.IsZero() {
		return shared.NewDomainError("INVALID_PAYOUT_DATE", "Payout date is required")
	}
	s.PayoutStatus = PayoutStatusPaid
	s.PayoutDate = &payoutDate
	s.PayoutReference = reference
	s.UpdatedAt = time.Now()
	s.IncrementVersion()

	s.AddDomainEvent(NewSummaryPaidEvent(s))

	return nil
}

// CancelPayout cancels an unpaid summary's payout
func (s *Summary) CancelPayout() error {
	if s.PayoutStatus.IsTerminal() {
		return shared.NewDomainError("SUMMARY_TERMINAL", "Summary is already paid or cancelled")
	}
	s.PayoutStatus = PayoutStatusCancelled
	s.UpdatedAt = time.Now()
	s.IncrementVersion()
	return nil
}

// TotalCommissionMoney returns the total commission in the base currency
func (s *Summary) TotalCommissionMoney() valueobject.Money {
	return valueobject.NewMoneyDZD(s.TotalCommissionDZD)
}
