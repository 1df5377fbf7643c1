package commission

import (
	"fmt"
	"time"

	"github.com/cartrade/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Period is one calendar month's commission aggregation window.
// Closing is a one-way transition; a closed period is never reopened
// and never recalculated.
type Period struct {
	shared.BaseAggregateRoot
	Year     int        `json:"year"`
	Month    time.Month `json:"month"`
	IsClosed bool       `json:"is_closed"`
	ClosedAt *time.Time `json:"closed_at,omitempty"`
	ClosedBy *uuid.UUID `json:"closed_by,omitempty"`
}

// NewPeriod creates an open period for (year, month)
func NewPeriod(year int, month time.Month) (*Period, error) {
	if year < 2000 || year > 2100 {
		return nil, shared.NewDomainError("INVALID_PERIOD", "Year is out of range")
	}
	if month < time.January || month > time.December {
		return nil, shared.NewDomainError("INVALID_PERIOD", "Month must be between 1 and 12")
	}

	return &Period{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Year:              year,
		Month:             month,
	}, nil
}

// Close closes the period, stamping the closing user and time.
// Closing an already-closed period is rejected so a second close can
// never recalculate frozen summaries.
func (p *Period) Close(closedBy uuid.UUID) error {
	if p.IsClosed {
		return shared.NewDomainError("PERIOD_ALREADY_CLOSED", "Commission period is already closed")
	}
	if closedBy == uuid.Nil {
		return shared.NewDomainError("INVALID_USER", "Closing user is required")
	}
	now := time.Now()
	p.IsClosed = true
	p.ClosedAt = &now
	p.ClosedBy = &closedBy
	p.UpdatedAt = now
	p.IncrementVersion()

	p.AddDomainEvent(NewPeriodClosedEvent(p))

	return nil
}

// Label returns the period formatted as YYYY-MM
func (p *Period) Label() string {
	return fmt.Sprintf("%04d-%02d", p.Year, int(p.Month))
}

// ContainsDate returns true if the date falls inside the period's month
func (p *Period) ContainsDate(date time.Time) bool {
	return date.Year() == p.Year && date.Month() == p.Month
}
