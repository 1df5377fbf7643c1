package purchasing

import (
	"time"

	"github.com/cartrade/backend/internal/domain/shared"
	"github.com/cartrade/backend/internal/domain/shared/valueobject"
)

// Supplier represents an exporter the company buys vehicles from
type Supplier struct {
	shared.AuditedAggregateRoot
	Name          string                `json:"name"`
	Country       string                `json:"country"`
	ContactPerson string                `json:"contact_person"`
	Phone         string                `json:"phone"`
	Email         string                `json:"email"`
	Address       string                `json:"address"`
	Currency      valueobject.Currency  `json:"currency"`
	PaymentTerms  string                `json:"payment_terms"`
	Notes         string                `json:"notes"`
	IsActive      bool                  `json:"is_active"`
}

// NewSupplier creates a new supplier.
// At least one contact method (phone or email) is required.
func NewSupplier(name, country, contactPerson, phone, email string, currency valueobject.Currency) (*Supplier, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_SUPPLIER_NAME", "Supplier name cannot be empty")
	}
	if len(name) > 200 {
		return nil, shared.NewDomainError("INVALID_SUPPLIER_NAME", "Supplier name cannot exceed 200 characters")
	}
	if phone == "" && email == "" {
		return nil, shared.NewDomainError("MISSING_CONTACT", "At least one contact method (phone or email) is required")
	}
	if !currency.IsValid() {
		return nil, shared.NewDomainError("INVALID_CURRENCY", "Currency is not valid")
	}
	if country == "" {
		country = "China"
	}

	return &Supplier{
		AuditedAggregateRoot: shared.NewAuditedAggregateRoot(),
		Name:                 name,
		Country:              country,
		ContactPerson:        contactPerson,
		Phone:                phone,
		Email:                email,
		Currency:             currency,
		IsActive:             true,
	}, nil
}

// Deactivate marks the supplier as inactive
func (s *Supplier) Deactivate() {
	s.IsActive = false
	s.UpdatedAt = time.Now()
	s.IncrementVersion()
}

// Activate marks the supplier as active
func (s *Supplier) Activate() {
	s.IsActive = true
	s.UpdatedAt = time.Now()
	s.IncrementVersion()
}

// UpdateContact replaces contact details, keeping the contact-method invariant
func (s *Supplier) UpdateContact(contactPerson, phone, email string) error {
	if phone == "" && email == "" {
		return shared.NewDomainError("MISSING_CONTACT", "At least one contact method (phone or email) is required")
	}
	s.ContactPerson = contactPerson
	s.Phone = phone
	s.Email = email
	s.UpdatedAt = time.Now()
	s.IncrementVersion()
	return nil
}
