package commission

import (
	"time"

	"github.com/cartrade/backend/internal/domain/commission"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateTierRequest carries the fields to create a commission tier
type CreateTierRequest struct {
	Name          string          `json:"name" binding:"required"`
	MinSalesCount int             `json:"min_sales_count"`
	MaxSalesCount *int            `json:"max_sales_count"`
	Rate          decimal.Decimal `json:"rate" binding:"required"`
}

// TierResponse is the API representation of a commission tier
type TierResponse struct {
	ID            uuid.UUID       `json:"id"`
	Name          string          `json:"name"`
	MinSalesCount int             `json:"min_sales_count"`
	MaxSalesCount *int            `json:"max_sales_count,omitempty"`
	Rate          decimal.Decimal `json:"rate"`
	IsActive      bool            `json:"is_active"`
	CreatedAt     time.Time       `json:"created_at"`
}

func toTierResponse(t *commission.Tier) *TierResponse {
	return &TierResponse{
		ID:            t.ID,
		Name:          t.Name,
		MinSalesCount: t.MinSalesCount,
		MaxSalesCount: t.MaxSalesCount,
		Rate:          t.Rate,
		IsActive:      t.IsActive,
		CreatedAt:     t.CreatedAt,
	}
}

// ClosePeriodRequest identifies the month to close and the closing user
type ClosePeriodRequest struct {
	Year     int        `json:"year" binding:"required"`
	Month    int        `json:"month" binding:"required,min=1,max=12"`
	ClosedBy uuid.UUID  `json:"-"`
}

// RecordPayoutRequest carries the fields to pay out a summary
type RecordPayoutRequest struct {
	SummaryID  uuid.UUID  `json:"summary_id" binding:"required"`
	PayoutDate time.Time  `json:"payout_date" binding:"required"`
	Method     string     `json:"method" binding:"required"`
	Reference  string     `json:"reference"`
	PaidBy     *uuid.UUID `json:"-"`
}

// SummaryResponse is the API representation of a trader's period summary
type SummaryResponse struct {
	ID                 uuid.UUID       `json:"id"`
	TraderID           uuid.UUID       `json:"trader_id"`
	PeriodID           uuid.UUID       `json:"period_id"`
	SalesCount         int             `json:"sales_count"`
	TotalSalesValueDZD decimal.Decimal `json:"total_sales_value_dzd"`
	TotalMarginDZD     decimal.Decimal `json:"total_margin_dzd"`
	BaseCommissionDZD  decimal.Decimal `json:"base_commission_dzd"`
	TierName           string          `json:"tier_name,omitempty"`
	TierBonusDZD       decimal.Decimal `json:"tier_bonus_dzd"`
	TotalCommissionDZD decimal.Decimal `json:"total_commission_dzd"`
	PayoutStatus       string          `json:"payout_status"`
	PayoutDate         *time.Time      `json:"payout_date,omitempty"`
	PayoutReference    string          `json:"payout_reference,omitempty"`
}

func toSummaryResponse(s *commission.Summary) *SummaryResponse {
	return &SummaryResponse{
		ID:                 s.ID,
		TraderID:           s.TraderID,
		PeriodID:           s.PeriodID,
		SalesCount:         s.SalesCount,
		TotalSalesValueDZD: s.TotalSalesValueDZD,
		TotalMarginDZD:     s.TotalMarginDZD,
		BaseCommissionDZD:  s.BaseCommissionDZD,
		TierName:           s.TierName,
		TierBonusDZD:       s.TierBonusDZD,
		TotalCommissionDZD: s.TotalCommissionDZD,
		PayoutStatus:       string(s.PayoutStatus),
		PayoutDate:         s.PayoutDate,
		PayoutReference:    s.PayoutReference,
	}
}

// ClosePeriodResponse reports the result of a period close
type ClosePeriodResponse struct {
	PeriodID  uuid.UUID         `json:"period_id"`
	Label     string            `json:"label"`
	ClosedAt  time.Time         `json:"closed_at"`
	Summaries []SummaryResponse `json:"summaries"`
}

// PayoutResponse is the API representation of a commission payout
type PayoutResponse struct {
	ID         uuid.UUID       `json:"id"`
	SummaryID  uuid.UUID       `json:"summary_id"`
	PayoutDate time.Time       `json:"payout_date"`
	AmountDZD  decimal.Decimal `json:"amount_dzd"`
	Method     string          `json:"method"`
	Reference  string          `json:"reference"`
	CreatedAt  time.Time       `json:"created_at"`
}

func toPayoutResponse(p *commission.Payout) *PayoutResponse {
	return &PayoutResponse{
		ID:         p.ID,
		SummaryID:  p.SummaryID,
		PayoutDate: p.PayoutDate,
		AmountDZD:  p.AmountDZD,
		Method:     string(p.Method),
		Reference:  p.Reference,
		CreatedAt:  p.CreatedAt,
	}
}
