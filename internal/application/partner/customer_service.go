package partner

import (
	"context"
	"errors"
	"time"

	"github.com/cartrade/backend/internal/domain/partner"
	"github.com/cartrade/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// CreateCustomerRequest carries the fields to register a customer
type CreateCustomerRequest struct {
	Name      string     `json:"name" binding:"required,max=200"`
	Type      string     `json:"type" binding:"required"`
	NIF       string     `json:"nif"`
	Phone     string     `json:"phone" binding:"required"`
	Email     string     `json:"email" binding:"omitempty,email"`
	Address   string     `json:"address"`
	Wilaya    string     `json:"wilaya" binding:"required,wilaya"`
	Notes     string     `json:"notes"`
	CreatedBy *uuid.UUID `json:"-"`
}

// UpdateCustomerRequest carries the editable customer fields
type UpdateCustomerRequest struct {
	Email   string `json:"email" binding:"omitempty,email"`
	Address string `json:"address"`
	Notes   string `json:"notes"`
}

// CustomerResponse is the API representation of a customer
type CustomerResponse struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Type       string    `json:"type"`
	NIF        string    `json:"nif,omitempty"`
	Phone      string    `json:"phone"`
	Email      string    `json:"email"`
	Address    string    `json:"address"`
	Wilaya     string    `json:"wilaya"`
	WilayaName string    `json:"wilaya_name"`
	Notes      string    `json:"notes"`
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
}

// ToCustomerResponse converts a customer aggregate to its response
func ToCustomerResponse(c *partner.Customer) *CustomerResponse {
	return &CustomerResponse{
		ID:         c.ID,
		Name:       c.Name,
		Type:       string(c.Type),
		NIF:        c.NIF,
		Phone:      c.Phone,
		Email:      c.Email,
		Address:    c.Address,
		Wilaya:     c.Wilaya,
		WilayaName: c.WilayaDisplay(),
		Notes:      c.Notes,
		IsActive:   c.IsActive,
		CreatedAt:  c.CreatedAt,
	}
}

// CustomerService handles customer operations
type CustomerService struct {
	customerRepo partner.CustomerRepository
}

// NewCustomerService creates a new CustomerService
func NewCustomerService(customerRepo partner.CustomerRepository) *CustomerService {
	return &CustomerService{customerRepo: customerRepo}
}

// Create registers a new customer, rejecting duplicates by name+phone
func (s *CustomerService) Create(ctx context.Context, req CreateCustomerRequest) (*CustomerResponse, error) {
	duplicate, err := s.customerRepo.FindDuplicate(ctx, req.Name, req.Phone, uuid.Nil)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}
	if duplicate != nil {
		return nil, shared.NewDomainError("DUPLICATE_CUSTOMER", "A customer with this name and phone already exists")
	}

	customer, err := partner.NewCustomer(req.Name, partner.CustomerType(req.Type), req.NIF, req.Phone, req.Email, req.Address, req.Wilaya)
	if err != nil {
		return nil, err
	}
	customer.Notes = req.Notes
	if req.CreatedBy != nil {
		customer.SetCreatedBy(*req.CreatedBy)
	}

	if err := s.customerRepo.Save(ctx, customer); err != nil {
		return nil, err
	}

	return ToCustomerResponse(customer), nil
}

// Get retrieves a customer by ID
func (s *CustomerService) Get(ctx context.Context, id uuid.UUID) (*CustomerResponse, error) {
	customer, err := s.customerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToCustomerResponse(customer), nil
}

// List retrieves customers, optionally only active ones
func (s *CustomerService) List(ctx context.Context, activeOnly bool) ([]CustomerResponse, error) {
	customers, err := s.customerRepo.FindAll(ctx, activeOnly)
	if err != nil {
		return nil, err
	}
	responses := make([]CustomerResponse, 0, len(customers))
	for i := range customers {
		responses = append(responses, *ToCustomerResponse(&customers[i]))
	}
	return responses, nil
}

// Update edits a customer's contact details
func (s *CustomerService) Update(ctx context.Context, id uuid.UUID, req UpdateCustomerRequest) (*CustomerResponse, error) {
	customer, err := s.customerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	customer.Email = req.Email
	customer.Address = req.Address
	customer.Notes = req.Notes
	customer.UpdatedAt = time.Now()
	customer.IncrementVersion()

	if err := s.customerRepo.Save(ctx, customer); err != nil {
		return nil, err
	}

	return ToCustomerResponse(customer), nil
}

// Deactivate marks a customer as inactive
func (s *CustomerService) Deactivate(ctx context.Context, id uuid.UUID) error {
	customer, err := s.customerRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	customer.Deactivate()
	return s.customerRepo.Save(ctx, customer)
}
