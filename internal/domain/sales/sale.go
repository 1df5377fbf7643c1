package sales

import (
	"time"

	"github.com/cartrade/backend/internal/domain/shared"
	"github.com/cartrade/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SaleStatus represents the lifecycle status of a sale
type SaleStatus string

const (
	SaleStatusDraft     SaleStatus = "draft"     // financials still editable
	SaleStatusFinalized SaleStatus = "finalized" // price and commission frozen
	SaleStatusCancelled SaleStatus = "cancelled"
)

// IsValid checks if the status is a valid SaleStatus
func (s SaleStatus) IsValid() bool {
	switch s {
	case SaleStatusDraft, SaleStatusFinalized, SaleStatusCancelled:
		return true
	}
	return false
}

// IsTerminal returns true for statuses that allow no further transition
func (s SaleStatus) IsTerminal() bool {
	return s == SaleStatusCancelled
}

// PaymentMethod represents how the customer settles a sale
type PaymentMethod string

const (
	PaymentMethodCash         PaymentMethod = "cash"
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
	PaymentMethodInstallment  PaymentMethod = "installment"
	PaymentMethodCheck        PaymentMethod = "check"
)

// IsValid checks if the payment method is valid
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodBankTransfer, PaymentMethodInstallment, PaymentMethodCheck:
		return true
	}
	return false
}

// Sale represents the sale of one vehicle to one customer by one trader.
// The landed cost is snapshotted from the vehicle's purchase chain at
// creation time so the margin stays stable even if cost records are
// corrected later.
type Sale struct {
	shared.AuditedAggregateRoot
	SaleNumber     string          `json:"sale_number"`
	SaleDate       time.Time       `json:"sale_date"`
	VehicleID      uuid.UUID       `json:"vehicle_id"`
	CustomerID     uuid.UUID       `json:"customer_id"`
	TraderID       uuid.UUID       `json:"trader_id"`
	SalePriceDZD   decimal.Decimal `json:"sale_price_dzd"`
	LandedCostDZD  decimal.Decimal `json:"landed_cost_dzd"`
	PaymentMethod  PaymentMethod   `json:"payment_method"`
	DownPaymentDZD decimal.Decimal `json:"down_payment_dzd"`
	CommissionRate decimal.Decimal `json:"commission_rate"`
	MarginDZD      decimal.Decimal `json:"margin_dzd"`
	CommissionDZD  decimal.Decimal `json:"commission_dzd"`
	Status         SaleStatus      `json:"status"`
	Notes          string          `json:"notes"`
}

// NewSale creates a new draft sale and derives its financials.
// Margin and commission may be negative on a loss-making sale; the
// values are stored as computed, not clamped.
func NewSale(saleNumber string, saleDate time.Time, vehicleID, customerID, traderID uuid.UUID, salePrice, landedCost decimal.Decimal, method PaymentMethod, downPayment, commissionRate decimal.Decimal) (*Sale, error) {
	if saleNumber == "" {
		return nil, shared.NewDomainError("INVALID_SALE_NUMBER", "Sale number cannot be empty")
	}
	if saleDate.IsZero() {
		return nil, shared.NewDomainError("INVALID_SALE_DATE", "Sale date is required")
	}
	if saleDate.After(time.Now()) {
		return nil, shared.NewDomainError("INVALID_SALE_DATE", "Sale date cannot be in the future")
	}
	if vehicleID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_VEHICLE", "Vehicle ID cannot be empty")
	}
	if customerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CUSTOMER", "Customer ID cannot be empty")
	}
	if traderID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_TRADER", "Trader ID cannot be empty")
	}
	if salePrice.IsNegative() {
		return nil, shared.NewDomainError("INVALID_SALE_PRICE", "Sale price cannot be negative")
	}
	if landedCost.IsNegative() {
		return nil, shared.NewDomainError("INVALID_LANDED_COST", "Landed cost cannot be negative")
	}
	if !method.IsValid() {
		return nil, shared.NewDomainError("INVALID_PAYMENT_METHOD", "Payment method is not valid")
	}
	if downPayment.IsNegative() || downPayment.GreaterThan(salePrice) {
		return nil, shared.NewDomainError("INVALID_DOWN_PAYMENT", "Down payment must be between 0 and the sale price")
	}
	if err := validateCommissionRate(commissionRate); err != nil {
		return nil, err
	}

	s := &Sale{
		AuditedAggregateRoot: shared.NewAuditedAggregateRoot(),
		SaleNumber:           saleNumber,
		SaleDate:             saleDate,
		VehicleID:            vehicleID,
		CustomerID:           customerID,
		TraderID:             traderID,
		SalePriceDZD:         salePrice,
		LandedCostDZD:        landedCost,
		PaymentMethod:        method,
		DownPaymentDZD:       downPayment,
		CommissionRate:       commissionRate,
		Status:               SaleStatusDraft,
	}
	s.recalculateFinancials()

	s.AddDomainEvent(NewSaleCreatedEvent(s))

	return s, nil
}

func validateCommissionRate(rate decimal.Decimal) error {
	if rate.IsNegative() || rate.GreaterThan(decimal.NewFromInt(100)) {
		return shared.NewDomainError("INVALID_COMMISSION_RATE", "Commission rate must be between 0 and 100")
	}
	return nil
}

// recalculateFinancials derives margin and commission from the current
// price, landed cost and rate. Negative results are preserved.
func (s *Sale) recalculateFinancials() {
	s.MarginDZD = s.SalePriceDZD.Sub(s.LandedCostDZD)
	s.CommissionDZD = s.MarginDZD.Mul(s.CommissionRate).Div(decimal.NewFromInt(100))
}

// UpdatePrice changes the sale price and re-derives the financials.
// Rejected once the sale is finalized.
func (s *Sale) UpdatePrice(salePrice decimal.Decimal) error {
	if s.Status != SaleStatusDraft {
		return shared.NewDomainError("SALE_NOT_EDITABLE", "Cannot change the price of a finalized or cancelled sale")
	}
	if salePrice.IsNegative() {
		return shared.NewDomainError("INVALID_SALE_PRICE", "Sale price cannot be negative")
	}
	if s.DownPaymentDZD.GreaterThan(salePrice) {
		return shared.NewDomainError("INVALID_DOWN_PAYMENT", "Down payment exceeds the new sale price")
	}
	s.SalePriceDZD = salePrice
	s.recalculateFinancials()
	s.UpdatedAt = time.Now()
	s.IncrementVersion()
	return nil
}

// UpdateCommissionRate changes the commission rate and re-derives the
// financials. Rejected once the sale is finalized.
func (s *Sale) UpdateCommissionRate(rate decimal.Decimal) error {
	if s.Status != SaleStatusDraft {
		return shared.NewDomainError("SALE_NOT_EDITABLE", "Cannot change the commission rate of a finalized or cancelled sale")
	}
	if err := validateCommissionRate(rate); err != nil {
		return err
	}
	s.CommissionRate = rate
	s.recalculateFinancials()
	s.UpdatedAt = time.Now()
	s.IncrementVersion()
	return nil
}

// Finalize freezes the sale's financials. One-way transition.
func (s *Sale) Finalize() error {
	if s.Status == SaleStatusFinalized {
		return shared.NewDomainError("SALE_ALREADY_FINALIZED", "Sale is already finalized")
	}
	if s.Status == SaleStatusCancelled {
		return shared.NewDomainError("SALE_CANCELLED", "Cannot finalize a cancelled sale")
	}
	s.Status = SaleStatusFinalized
	s.UpdatedAt = time.Now()
	s.IncrementVersion()

	s.AddDomainEvent(NewSaleFinalizedEvent(s))

	return nil
}

// Cancel cancels a draft sale
func (s *Sale) Cancel() error {
	if s.Status != SaleStatusDraft {
		return shared.NewDomainError("SALE_NOT_CANCELLABLE", "Only draft sales can be cancelled")
	}
	s.Status = SaleStatusCancelled
	s.UpdatedAt = time.Now()
	s.IncrementVersion()
	return nil
}

// IsFinalized returns true once the financials are frozen
func (s *Sale) IsFinalized() bool {
	return s.Status == SaleStatusFinalized
}

// PriceMoney returns the sale price in the base currency
func (s *Sale) PriceMoney() valueobject.Money {
	return valueobject.NewMoneyDZD(s.SalePriceDZD)
}

// MarginMoney returns the margin in the base currency
func (s *Sale) MarginMoney() valueobject.Money {
	return valueobject.NewMoneyDZD(s.MarginDZD)
}

// CommissionMoney returns the commission in the base currency
func (s *Sale) CommissionMoney() valueobject.Money {
	return valueobject.NewMoneyDZD(s.CommissionDZD)
}

// MarginPercent returns the margin as a percentage of the sale price,
// or zero when the price is zero.
func (s *Sale) MarginPercent() decimal.Decimal {
	if s.SalePriceDZD.IsZero() {
		return decimal.Zero
	}
	return s.MarginDZD.Div(s.SalePriceDZD).Mul(decimal.NewFromInt(100))
}
