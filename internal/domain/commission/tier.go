package commission

import (
	"sort"
	"time"

	"github.com/cartrade/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// DefaultBaseCommissionRate is the company-wide base rate in percent.
// The effective base rate is configuration, passed explicitly into the
// bonus computation; this is only its default.
var DefaultBaseCommissionRate = decimal.NewFromInt(10)

// Tier is a sales-count band mapping to a commission rate.
// Bands are selected first-match by ascending minimum; overlapping
// bands are legal and resolved by that ordering.
type Tier struct {
	shared.BaseAggregateRoot
	Name          string          `json:"name"`
	MinSalesCount int             `json:"min_sales_count"`
	MaxSalesCount *int            `json:"max_sales_count,omitempty"` // nil means unbounded
	Rate          decimal.Decimal `json:"rate"`
	IsActive      bool            `json:"is_active"`
}

// NewTier creates a commission tier. maxSalesCount nil leaves the band
// open-ended upward.
func NewTier(name string, minSalesCount int, maxSalesCount *int, rate decimal.Decimal) (*Tier, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_TIER_NAME", "Tier name cannot be empty")
	}
	if minSalesCount < 0 {
		return nil, shared.NewDomainError("INVALID_TIER_BAND", "Minimum sales count cannot be negative")
	}
	if maxSalesCount != nil && *maxSalesCount < minSalesCount {
		return nil, shared.NewDomainError("INVALID_TIER_BAND", "Maximum sales count cannot be below the minimum")
	}
	if rate.IsNegative() || rate.GreaterThan(decimal.NewFromInt(100)) {
		return nil, shared.NewDomainError("INVALID_TIER_RATE", "Tier rate must be between 0 and 100")
	}

	return &Tier{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		MinSalesCount:     minSalesCount,
		MaxSalesCount:     maxSalesCount,
		Rate:              rate,
		IsActive:          true,
	}, nil
}

// Contains returns true if the sales count falls inside the band
func (t *Tier) Contains(salesCount int) bool {
	if salesCount < t.MinSalesCount {
		return false
	}
	if t.MaxSalesCount != nil && salesCount > *t.MaxSalesCount {
		return false
	}
	return true
}

// BonusRateOver returns the rate in excess of the given base rate,
// floored at zero
func (t *Tier) BonusRateOver(baseRate decimal.Decimal) decimal.Decimal {
	excess := t.Rate.Sub(baseRate)
	if excess.IsNegative() {
		return decimal.Zero
	}
	return excess
}

// Deactivate removes the tier from selection without deleting it
func (t *Tier) Deactivate() {
	t.IsActive = false
	t.UpdatedAt = time.Now()
	t.IncrementVersion()
}

// SelectTier picks the tier for a sales count: the first active tier,
// ordered ascending by minimum, whose band contains the count.
// Returns nil when no band matches.
func SelectTier(tiers []Tier, salesCount int) *Tier {
	sorted := make([]Tier, len(tiers))
	copy(sorted, tiers)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].MinSalesCount < sorted[j].MinSalesCount
	})

	for i := range sorted {
		if sorted[i].IsActive && sorted[i].Contains(salesCount) {
			return &sorted[i]
		}
	}
	return nil
}
