package commission

import (
	"github.com/cartrade/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Event types for the commission bounded context
const (
	EventTypePeriodClosed = "commission.period.closed"
	EventTypeSummaryPaid  = "commission.summary.paid"
)

// PeriodClosedEvent is raised when a commission period is closed
type PeriodClosedEvent struct {
	shared.BaseDomainEvent
	Year  int `json:"year"`
	Month int `json:"month"`
}

// NewPeriodClosedEvent creates a new PeriodClosedEvent
func NewPeriodClosedEvent(p *Period) *PeriodClosedEvent {
	return &PeriodClosedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypePeriodClosed, "Period", p.ID),
		Year:            p.Year,
		Month:           int(p.Month),
	}
}

// SummaryPaidEvent is raised when a commission summary is paid out
type SummaryPaidEvent struct {
	shared.BaseDomainEvent
	TraderID  string          `json:"trader_id"`
	AmountDZD decimal.Decimal `json:"amount_dzd"`
}

// NewSummaryPaidEvent creates a new SummaryPaidEvent
func NewSummaryPaidEvent(s *Summary) *SummaryPaidEvent {
	return &SummaryPaidEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeSummaryPaid, "Summary", s.ID),
		TraderID:        s.TraderID.String(),
		AmountDZD:       s.TotalCommissionDZD,
	}
}
