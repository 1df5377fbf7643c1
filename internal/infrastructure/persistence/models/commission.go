package models

import (
	"time"

	"github.com/cartrade/backend/internal/domain/commission"
	"github.com/cartrade/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CommissionTierModel is the persistence model for the Tier aggregate.
type CommissionTierModel struct {
	AggregateModel
	Name          string          `gorm:"type:varchar(100);not null"`
	MinSalesCount int             `gorm:"not null"`
	MaxSalesCount *int            ``
	Rate          decimal.Decimal `gorm:"type:decimal(8,4);not null"`
	IsActive      bool            `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (CommissionTierModel) TableName() string {
	return "commission_tiers"
}

// ToDomain converts the persistence model to a domain Tier.
func (m *CommissionTierModel) ToDomain() *commission.Tier {
	return &commission.Tier{
		BaseAggregateRoot: shared.BaseAggregateRoot{
			BaseEntity: m.BaseModel.ToDomain(),
			Version:    m.Version,
		},
		Name:          m.Name,
		MinSalesCount: m.MinSalesCount,
		MaxSalesCount: m.MaxSalesCount,
		Rate:          m.Rate,
		IsActive:      m.IsActive,
	}
}

// FromDomain populates the persistence model from a domain Tier.
func (m *CommissionTierModel) FromDomain(t *commission.Tier) {
	m.FromDomainAggregateRoot(t.BaseAggregateRoot)
	m.Name = t.Name
	m.MinSalesCount = t.MinSalesCount
	m.MaxSalesCount = t.MaxSalesCount
	m.Rate = t.Rate
	m.IsActive = t.IsActive
}

// CommissionTierModelFromDomain creates a new persistence model from a domain Tier.
func CommissionTierModelFromDomain(t *commission.Tier) *CommissionTierModel {
	m := &CommissionTierModel{}
	m.FromDomain(t)
	return m
}

// CommissionPeriodModel is the persistence model for the Period
// aggregate. (year, month) is unique: one aggregation window per
// calendar month.
type CommissionPeriodModel struct {
	AggregateModel
	Year     int        `gorm:"not null;uniqueIndex:idx_commission_period_month,priority:1"`
	Month    int        `gorm:"not null;uniqueIndex:idx_commission_period_month,priority:2"`
	IsClosed bool       `gorm:"not null;default:false"`
	ClosedAt *time.Time ``
	ClosedBy *uuid.UUID `gorm:"type:uuid"`
}

// TableName returns the table name for GORM
func (CommissionPeriodModel) TableName() string {
	return "commission_periods"
}

// ToDomain converts the persistence model to a domain Period.
func (m *CommissionPeriodModel) ToDomain() *commission.Period {
	return &commission.Period{
		BaseAggregateRoot: shared.BaseAggregateRoot{
			BaseEntity: m.BaseModel.ToDomain(),
			Version:    m.Version,
		},
		Year:     m.Year,
		Month:    time.Month(m.Month),
		IsClosed: m.IsClosed,
		ClosedAt: m.ClosedAt,
		ClosedBy: m.ClosedBy,
	}
}

// FromDomain populates the persistence model from a domain Period.
func (m *CommissionPeriodModel) FromDomain(p *commission.Period) {
	m.FromDomainAggregateRoot(p.BaseAggregateRoot)
	m.Year = p.Year
	m.Month = int(p.Month)
	m.IsClosed = p.IsClosed
	m.ClosedAt = p.ClosedAt
	m.ClosedBy = p.ClosedBy
}

// CommissionPeriodModelFromDomain creates a new persistence model from a domain Period.
func CommissionPeriodModelFromDomain(p *commission.Period) *CommissionPeriodModel {
	m := &CommissionPeriodModel{}
	m.FromDomain(p)
	return m
}

// CommissionSummaryModel is the persistence model for the Summary
// aggregate. (trader, period) is unique: the period close upserts into
// this row.
type CommissionSummaryModel struct {
	AggregateModel
	TraderID           uuid.UUID               `gorm:"type:uuid;not null;uniqueIndex:idx_commission_summary_trader_period,priority:1"`
	PeriodID           uuid.UUID               `gorm:"type:uuid;not null;uniqueIndex:idx_commission_summary_trader_period,priority:2"`
	SalesCount         int                     `gorm:"not null;default:0"`
	TotalSalesValueDZD decimal.Decimal         `gorm:"type:decimal(18,4);not null;default:0"`
	TotalMarginDZD     decimal.Decimal         `gorm:"type:decimal(18,4);not null;default:0"`
	BaseCommissionDZD  decimal.Decimal         `gorm:"type:decimal(18,4);not null;default:0"`
	TierName           string                  `gorm:"type:varchar(100)"`
	TierBonusDZD       decimal.Decimal         `gorm:"type:decimal(18,4);not null;default:0"`
	TotalCommissionDZD decimal.Decimal         `gorm:"type:decimal(18,4);not null;default:0"`
	PayoutStatus       commission.PayoutStatus `gorm:"type:varchar(20);not null;index"`
	PayoutDate         *time.Time              `gorm:"type:date"`
	PayoutReference    string                  `gorm:"type:varchar(100)"`
}

// TableName returns the table name for GORM
func (CommissionSummaryModel) TableName() string {
	return "commission_summaries"
}

// ToDomain converts the persistence model to a domain Summary.
func (m *CommissionSummaryModel) ToDomain() *commission.Summary {
	return &commission.Summary{
		BaseAggregateRoot: shared.BaseAggregateRoot{
			BaseEntity: m.BaseModel.ToDomain(),
			Version:    m.Version,
		},
		TraderID:           m.TraderID,
		PeriodID:           m.PeriodID,
		SalesCount:         m.SalesCount,
		TotalSalesValueDZD: m.TotalSalesValueDZD,
		TotalMarginDZD:     m.TotalMarginDZD,
		BaseCommissionDZD:  m.BaseCommissionDZD,
		TierName:           m.TierName,
		TierBonusDZD:       m.TierBonusDZD,
		TotalCommissionDZD: m.TotalCommissionDZD,
		PayoutStatus:       m.PayoutStatus,
		PayoutDate:         m.PayoutDate,
		PayoutReference:    m.PayoutReference,
	}
}

// FromDomain populates the persistence model from a domain Summary.
func (m *CommissionSummaryModel) FromDomain(s *commission.Summary) {
	m.FromDomainAggregateRoot(s.BaseAggregateRoot)
	m.TraderID = s.TraderID
	m.PeriodID = s.PeriodID
	m.SalesCount = s.SalesCount
	m.TotalSalesValueDZD = s.TotalSalesValueDZD
	m.TotalMarginDZD = s.TotalMarginDZD
	m.BaseCommissionDZD = s.BaseCommissionDZD
	m.TierName = s.TierName
	m.TierBonusDZD = s.TierBonusDZD
	m.TotalCommissionDZD = s.TotalCommissionDZD
	m.PayoutStatus = s.PayoutStatus
	m.PayoutDate = s.PayoutDate
	m.PayoutReference = s.PayoutReference
}

// CommissionSummaryModelFromDomain creates a new persistence model from a domain Summary.
func CommissionSummaryModelFromDomain(s *commission.Summary) *CommissionSummaryModel {
	m := &CommissionSummaryModel{}
	m.FromDomain(s)
	return m
}

// CommissionPayoutModel is the persistence model for the Payout
// aggregate. One payout per summary.
type CommissionPayoutModel struct {
	AuditedAggregateModel
	SummaryID  uuid.UUID               `gorm:"type:uuid;not null;uniqueIndex"`
	PayoutDate time.Time               `gorm:"type:date;not null"`
	AmountDZD  decimal.Decimal         `gorm:"type:decimal(18,4);not null"`
	Method     commission.PayoutMethod `gorm:"type:varchar(20);not null"`
	Reference  string                  `gorm:"type:varchar(100)"`
	Notes      string                  `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (CommissionPayoutModel) TableName() string {
	return "commission_payouts"
}

// ToDomain converts the persistence model to a domain Payout.
func (m *CommissionPayoutModel) ToDomain() *commission.Payout {
	return &commission.Payout{
		AuditedAggregateRoot: m.ToDomainAuditedAggregateRoot(),
		SummaryID:            m.SummaryID,
		PayoutDate:           m.PayoutDate,
		AmountDZD:            m.AmountDZD,
		Method:               m.Method,
		Reference:            m.Reference,
		Notes:                m.Notes,
	}
}

// FromDomain populates the persistence model from a domain Payout.
func (m *CommissionPayoutModel) FromDomain(p *commission.Payout) {
	m.FromDomainAuditedAggregateRoot(p.AuditedAggregateRoot)
	m.SummaryID = p.SummaryID
	m.PayoutDate = p.PayoutDate
	m.AmountDZD = p.AmountDZD
	m.Method = p.Method
	m.Reference = p.Reference
	m.Notes = p.Notes
}

// CommissionPayoutModelFromDomain creates a new persistence model from a domain Payout.
func CommissionPayoutModelFromDomain(p *commission.Payout) *CommissionPayoutModel {
	m := &CommissionPayoutModel{}
	m.FromDomain(p)
	return m
}
