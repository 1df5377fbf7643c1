package partner

import (
	"context"
	"testing"

	"github.com/cartrade/backend/internal/domain/partner"
	"github.com/cartrade/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockCustomerRepository is a mock implementation of CustomerRepository
type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindDuplicate(ctx context.Context, name, phone string, excludeID uuid.UUID) (*partner.Customer, error) {
	args := m.Called(ctx, name, phone, excludeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindAll(ctx context.Context, activeOnly bool) ([]partner.Customer, error) {
	args := m.Called(ctx, activeOnly)
	return args.Get(0).([]partner.Customer), args.Error(1)
}

func (m *MockCustomerRepository) Save(ctx context.Context, customer *partner.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func TestCustomerCreate(t *testing.T) {
	repo := new(MockCustomerRepository)
	service := NewCustomerService(repo)

	repo.On("FindDuplicate", mock.Anything, "Amine Benali", "0661234567", uuid.Nil).Return(nil, shared.ErrNotFound)
	repo.On("Save", mock.Anything, mock.AnythingOfType("*partner.Customer")).Return(nil)

	resp, err := service.Create(context.Background(), CreateCustomerRequest{
		Name:   "Amine Benali",
		Type:   "individual",
		Phone:  "0661234567",
		Wilaya: "16",
	})
	require.NoError(t, err)

	assert.Equal(t, "Alger", resp.WilayaName)
	assert.True(t, resp.IsActive)
	repo.AssertExpectations(t)
}

func TestCustomerCreate_Duplicate(t *testing.T) {
	repo := new(MockCustomerRepository)
	service := NewCustomerService(repo)

	existing, err := partner.NewCustomer("Amine Benali", partner.CustomerTypeIndividual, "", "0661234567", "", "", "16")
	require.NoError(t, err)
	repo.On("FindDuplicate", mock.Anything, "Amine Benali", "0661234567", uuid.Nil).Return(existing, nil)

	_, err = service.Create(context.Background(), CreateCustomerRequest{
		Name:   "Amine Benali",
		Type:   "individual",
		Phone:  "0661234567",
		Wilaya: "16",
	})
	require.Error(t, err)

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "DUPLICATE_CUSTOMER", domainErr.Code)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestCustomerCreate_CompanyWithoutNIF(t *testing.T) {
	repo := new(MockCustomerRepository)
	service := NewCustomerService(repo)

	repo.On("FindDuplicate", mock.Anything, "SARL Auto Plus", "0551234567", uuid.Nil).Return(nil, shared.ErrNotFound)

	_, err := service.Create(context.Background(), CreateCustomerRequest{
		Name:   "SARL Auto Plus",
		Type:   "company",
		Phone:  "0551234567",
		Wilaya: "31",
	})
	assert.Error(t, err)
}

func TestCustomerDeactivate(t *testing.T) {
	repo := new(MockCustomerRepository)
	service := NewCustomerService(repo)

	customer, err := partner.NewCustomer("Amine Benali", partner.CustomerTypeIndividual, "", "0661234567", "", "", "16")
	require.NoError(t, err)
	repo.On("FindByID", mock.Anything, customer.ID).Return(customer, nil)
	repo.On("Save", mock.Anything, customer).Return(nil)

	require.NoError(t, service.Deactivate(context.Background(), customer.ID))
	assert.False(t, customer.IsActive)
}
