package purchasing

import (
	"context"
	"testing"
	"time"

	"github.com/cartrade/backend/internal/domain/purchasing"
	"github.com/cartrade/backend/internal/domain/shared"
	"github.com/cartrade/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockSupplierRepository is a mock implementation of SupplierRepository
type MockSupplierRepository struct {
	mock.Mock
}

func (m *MockSupplierRepository) FindByID(ctx context.Context, id uuid.UUID) (*purchasing.Supplier, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*purchasing.Supplier), args.Error(1)
}

func (m *MockSupplierRepository) FindByName(ctx context.Context, name string) (*purchasing.Supplier, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*purchasing.Supplier), args.Error(1)
}

func (m *MockSupplierRepository) FindAll(ctx context.Context, activeOnly bool) ([]purchasing.Supplier, error) {
	args := m.Called(ctx, activeOnly)
	return args.Get(0).([]purchasing.Supplier), args.Error(1)
}

func (m *MockSupplierRepository) Save(ctx context.Context, supplier *purchasing.Supplier) error {
	args := m.Called(ctx, supplier)
	return args.Error(0)
}

// MockPurchaseRepository is a mock implementation of PurchaseRepository
type MockPurchaseRepository struct {
	mock.Mock
}

func (m *MockPurchaseRepository) FindByID(ctx context.Context, id uuid.UUID) (*purchasing.Purchase, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*purchasing.Purchase), args.Error(1)
}

func (m *MockPurchaseRepository) FindBySupplier(ctx context.Context, supplierID uuid.UUID) ([]purchasing.Purchase, error) {
	args := m.Called(ctx, supplierID)
	return args.Get(0).([]purchasing.Purchase), args.Error(1)
}

func (m *MockPurchaseRepository) FindByDeclarationNumber(ctx context.Context, declarationNumber string) (*purchasing.Purchase, error) {
	args := m.Called(ctx, declarationNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*purchasing.Purchase), args.Error(1)
}

func (m *MockPurchaseRepository) Save(ctx context.Context, purchase *purchasing.Purchase) error {
	args := m.Called(ctx, purchase)
	return args.Error(0)
}

func (m *MockPurchaseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func activeSupplier(t *testing.T) *purchasing.Supplier {
	t.Helper()
	s, err := purchasing.NewSupplier("Dalian Motors", "China", "Li Wei", "+8641182345678", "", valueobject.USD)
	require.NoError(t, err)
	return s
}

func TestCreatePurchase(t *testing.T) {
	supplierRepo := new(MockSupplierRepository)
	purchaseRepo := new(MockPurchaseRepository)
	service := NewPurchaseService(supplierRepo, purchaseRepo)

	supplier := activeSupplier(t)
	supplierRepo.On("FindByID", mock.Anything, supplier.ID).Return(supplier, nil)
	purchaseRepo.On("Save", mock.Anything, mock.AnythingOfType("*purchasing.Purchase")).Return(nil)

	resp, err := service.CreatePurchase(context.Background(), CreatePurchaseRequest{
		PurchaseDate: time.Now().Add(-time.Hour),
		SupplierID:   supplier.ID,
		PriceFOB:     decimal.NewFromInt(10000),
		Currency:     "USD",
		ExchangeRate: decimal.NewFromInt(135),
	})
	require.NoError(t, err)

	assert.True(t, resp.PriceDZD.Equal(decimal.NewFromInt(1350000)))
	assert.True(t, resp.LandedCostDZD.Equal(decimal.NewFromInt(1350000)))
	purchaseRepo.AssertExpectations(t)
}

func TestCreatePurchase_InactiveSupplier(t *testing.T) {
	supplierRepo := new(MockSupplierRepository)
	purchaseRepo := new(MockPurchaseRepository)
	service := NewPurchaseService(supplierRepo, purchaseRepo)

	supplier := activeSupplier(t)
	supplier.Deactivate()
	supplierRepo.On("FindByID", mock.Anything, supplier.ID).Return(supplier, nil)

	_, err := service.CreatePurchase(context.Background(), CreatePurchaseRequest{
		PurchaseDate: time.Now().Add(-time.Hour),
		SupplierID:   supplier.ID,
		PriceFOB:     decimal.NewFromInt(10000),
		Currency:     "USD",
		ExchangeRate: decimal.NewFromInt(135),
	})
	require.Error(t, err)

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "SUPPLIER_INACTIVE", domainErr.Code)
}

func TestCreateSupplier_DuplicateName(t *testing.T) {
	supplierRepo := new(MockSupplierRepository)
	purchaseRepo := new(MockPurchaseRepository)
	service := NewPurchaseService(supplierRepo, purchaseRepo)

	existing := activeSupplier(t)
	supplierRepo.On("FindByName", mock.Anything, "Dalian Motors").Return(existing, nil)

	_, err := service.CreateSupplier(context.Background(), CreateSupplierRequest{
		Name:     "Dalian Motors",
		Country:  "China",
		Phone:    "+8641182345678",
		Currency: "USD",
	})
	assert.Error(t, err)
}

func TestAttachFreightAndCustoms_LandedCost(t *testing.T) {
	supplierRepo := new(MockSupplierRepository)
	purchaseRepo := new(MockPurchaseRepository)
	service := NewPurchaseService(supplierRepo, purchaseRepo)

	purchase, err := purchasing.NewPurchase(time.Now().Add(-time.Hour), uuid.New(),
		decimal.NewFromInt(10000), valueobject.USD, decimal.NewFromInt(135))
	require.NoError(t, err)

	purchaseRepo.On("FindByID", mock.Anything, purchase.ID).Return(purchase, nil)
	purchaseRepo.On("Save", mock.Anything, purchase).Return(nil)

	_, err = service.AttachFreight(context.Background(), purchase.ID, AttachFreightRequest{
		Method:        "sea",
		FreightAmount: decimal.NewFromInt(40000),
		Currency:      "DZD",
		ExchangeRate:  decimal.NewFromInt(1),
		InsuranceDZD:  decimal.NewFromInt(10000),
	})
	require.NoError(t, err)

	resp, err := service.AttachCustoms(context.Background(), purchase.ID, AttachCustomsRequest{
		DeclarationDate:   time.Now().Add(-time.Hour),
		DeclarationNumber: "D10-2025-0042",
		CIFValueDZD:       decimal.NewFromInt(1400000),
		TariffRate:        decimal.NewFromInt(10),
		ImportDutyDZD:     decimal.NewFromInt(140000),
		VATRate:           decimal.NewFromInt(19),
		VATAmountDZD:      decimal.NewFromInt(50000),
		OtherFeesDZD:      decimal.NewFromInt(10000),
	})
	require.NoError(t, err)

	// 1,350,000 price + 50,000 freight + 200,000 customs
	assert.True(t, resp.LandedCostDZD.Equal(decimal.NewFromInt(1600000)), "landed = %s", resp.LandedCostDZD)
}

func TestAttachCustoms_DeriveFromCIF(t *testing.T) {
	supplierRepo := new(MockSupplierRepository)
	purchaseRepo := new(MockPurchaseRepository)
	service := NewPurchaseService(supplierRepo, purchaseRepo)

	purchase, err := purchasing.NewPurchase(time.Now().Add(-time.Hour), uuid.New(),
		decimal.NewFromInt(1400000), valueobject.DZD, decimal.NewFromInt(1))
	require.NoError(t, err)

	purchaseRepo.On("FindByID", mock.Anything, purchase.ID).Return(purchase, nil)
	purchaseRepo.On("Save", mock.Anything, purchase).Return(nil)

	resp, err := service.AttachCustoms(context.Background(), purchase.ID, AttachCustomsRequest{
		DeclarationDate:   time.Now().Add(-time.Hour),
		DeclarationNumber: "D10-2025-0042",
		DeriveFromCIF:     true,
		TariffRate:        decimal.NewFromInt(10),
		VATRate:           decimal.NewFromInt(19),
	})
	require.NoError(t, err)

	// duty = 1,400,000 * 10% = 140,000; VAT = (1,400,000 + 140,000) * 19% = 292,600
	require.NotNil(t, resp.Customs)
	assert.True(t, resp.Customs.ImportDutyDZD.Equal(decimal.NewFromInt(140000)))
	assert.True(t, resp.Customs.VATAmountDZD.Equal(decimal.NewFromInt(292600)))
}
