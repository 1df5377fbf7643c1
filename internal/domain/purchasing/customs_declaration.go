package purchasing

import (
	"time"

	"github.com/cartrade/backend/internal/domain/shared"
	"github.com/cartrade/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CustomsDeclaration is the customs cost segment of a purchase.
// It is a child entity of the Purchase aggregate.
type CustomsDeclaration struct {
	shared.BaseEntity
	PurchaseID        uuid.UUID       `json:"purchase_id"`
	DeclarationDate   time.Time       `json:"declaration_date"`
	DeclarationNumber string          `json:"declaration_number"`
	CIFValueDZD       decimal.Decimal `json:"cif_value_dzd"`
	TariffRate        decimal.Decimal `json:"tariff_rate"`
	ImportDutyDZD     decimal.Decimal `json:"import_duty_dzd"`
	VATRate           decimal.Decimal `json:"vat_rate"`
	VATAmountDZD      decimal.Decimal `json:"vat_amount_dzd"`
	OtherFeesDZD      decimal.Decimal `json:"other_fees_dzd"`
	TotalDZD          decimal.Decimal `json:"total_dzd"`
	IsCleared         bool            `json:"is_cleared"`
	ClearanceDate     *time.Time      `json:"clearance_date,omitempty"`
	Notes             string          `json:"notes"`
}

var percentHundred = decimal.NewFromInt(100)

// NewCustomsDeclaration creates a customs declaration.
// TotalDZD = import duty + VAT + other fees.
func NewCustomsDeclaration(declarationDate time.Time, declarationNumber string, cifValueDZD, tariffRate, importDutyDZD, vatRate, vatAmountDZD, otherFeesDZD decimal.Decimal) (*CustomsDeclaration, error) {
	if declarationDate.IsZero() {
		return nil, shared.NewDomainError("INVALID_DECLARATION_DATE", "Declaration date is required")
	}
	if declarationNumber == "" {
		return nil, shared.NewDomainError("INVALID_DECLARATION_NUMBER", "Declaration number cannot be empty")
	}
	if err := validatePercentRate(tariffRate, "INVALID_TARIFF_RATE", "Tariff rate"); err != nil {
		return nil, err
	}
	if err := validatePercentRate(vatRate, "INVALID_VAT_RATE", "VAT rate"); err != nil {
		return nil, err
	}
	if importDutyDZD.IsNegative() {
		return nil, shared.NewDomainError("INVALID_IMPORT_DUTY", "Import duty cannot be negative")
	}
	if vatAmountDZD.IsNegative() {
		return nil, shared.NewDomainError("INVALID_VAT_AMOUNT", "VAT amount cannot be negative")
	}
	if otherFeesDZD.IsNegative() {
		return nil, shared.NewDomainError("INVALID_OTHER_FEES", "Other customs fees cannot be negative")
	}

	return &CustomsDeclaration{
		BaseEntity:        shared.NewBaseEntity(),
		DeclarationDate:   declarationDate,
		DeclarationNumber: declarationNumber,
		CIFValueDZD:       cifValueDZD,
		TariffRate:        tariffRate,
		ImportDutyDZD:     importDutyDZD,
		VATRate:           vatRate,
		VATAmountDZD:      vatAmountDZD,
		OtherFeesDZD:      otherFeesDZD,
		TotalDZD:          importDutyDZD.Add(vatAmountDZD).Add(otherFeesDZD),
	}, nil
}

// NewCustomsDeclarationFromCIF creates a declaration deriving duty and
// VAT from the CIF value: duty = CIF * tariff/100 and
// VAT = (CIF + duty) * vatRate/100.
func NewCustomsDeclarationFromCIF(declarationDate time.Time, declarationNumber string, cifValueDZD, tariffRate, vatRate, otherFeesDZD decimal.Decimal) (*CustomsDeclaration, error) {
	if cifValueDZD.IsNegative() {
		return nil, shared.NewDomainError("INVALID_CIF_VALUE", "CIF value cannot be negative")
	}
	if err := validatePercentRate(tariffRate, "INVALID_TARIFF_RATE", "Tariff rate"); err != nil {
		return nil, err
	}
	if err := validatePercentRate(vatRate, "INVALID_VAT_RATE", "VAT rate"); err != nil {
		return nil, err
	}

	importDuty := cifValueDZD.Mul(tariffRate).Div(percentHundred)
	taxableBase := cifValueDZD.Add(importDuty)
	vatAmount := taxableBase.Mul(vatRate).Div(percentHundred)

	return NewCustomsDeclaration(declarationDate, declarationNumber, cifValueDZD, tariffRate, importDuty, vatRate, vatAmount, otherFeesDZD)
}

// MarkCleared records customs clearance.
// The clearance date cannot precede the declaration date.
func (c *CustomsDeclaration) MarkCleared(clearanceDate time.Time) error {
	if clearanceDate.Before(c.DeclarationDate) {
		return shared.NewDomainError("INVALID_CLEARANCE_DATE", "Clearance date cannot be before the declaration date")
	}
	c.IsCleared = true
	c.ClearanceDate = &clearanceDate
	c.UpdatedAt = time.Now()
	return nil
}

// TotalMoney returns the total customs cost in the base currency
func (c *CustomsDeclaration) TotalMoney() valueobject.Money {
	return valueobject.NewMoneyDZD(c.TotalDZD)
}

func validatePercentRate(rate decimal.Decimal, code, label string) error {
	if rate.IsNegative() || rate.GreaterThan(percentHundred) {
		return shared.NewDomainError(code, label+" must be between 0 and 100")
	}
	return nil
}
