package commission

import (
	"time"

	"github.com/cartrade/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PayoutMethod represents how a commission payout was made
type PayoutMethod string

const (
	PayoutMethodCash         PayoutMethod = "cash"
	PayoutMethodBankTransfer PayoutMethod = "bank_transfer"
	PayoutMethodCheck        PayoutMethod = "check"
)

// IsValid checks if the method is a valid PayoutMethod
func (m PayoutMethod) IsValid() bool {
	switch m {
	case PayoutMethodCash, PayoutMethodBankTransfer, PayoutMethodCheck:
		return true
	}
	return false
}

// Payout is the terminal record of a commission payment to a trader.
// Creating one against a summary flips that summary to paid; there is
// no reversal path.
type Payout struct {
	shared.AuditedAggregateRoot
	SummaryID  uuid.UUID       `json:"summary_id"`
	PayoutDate time.Time       `json:"payout_date"`
	AmountDZD  decimal.Decimal `json:"amount_dzd"`
	Method     PayoutMethod    `json:"method"`
	Reference  string          `json:"reference"`
	Notes      string          `json:"notes"`
}

// NewPayout creates a payout for a summary and marks the summary paid.
// Both records must be saved in the same transaction.
func NewPayout(summary *Summary, payoutDate time.Time, method PayoutMethod, reference string) (*Payout, error) {
	if summary == nil {
		return nil, shared.NewDomainError("INVALID_SUMMARY", "Summary cannot be nil")
	}
	if payoutDate.IsZero() {
		return nil, shared.NewDomainError("INVALID_PAYOUT_DATE", "Payout date is required")
	}
	if payoutDate.After(time.Now()) {
		return nil, shared.NewDomainError("INVALID_PAYOUT_DATE", "Payout date cannot be in the future")
	}
	if !method.IsValid() {
		return nil, shared.NewDomainError("INVALID_PAYOUT_METHOD", "Payout method is not valid")
	}

	if err := summary.MarkPaid(payoutDate, reference); err != nil {
		return nil, err
	}

	return &Payout{
		AuditedAggregateRoot: shared.NewAuditedAggregateRoot(),
		SummaryID:            summary.ID,
		PayoutDate:           payoutDate,
		AmountDZD:            summary.TotalCommissionDZD,
		Method:               method,
		Reference:            reference,
	}, nil
}
