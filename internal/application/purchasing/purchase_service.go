package purchasing

import (
	"context"
	"errors"
	"time"

	"github.com/cartrade/backend/internal/domain/purchasing"
	"github.com/cartrade/backend/internal/domain/shared"
	"github.com/google/uuid"
)

var errInvalidCurrency = shared.NewDomainError("INVALID_CURRENCY", "Currency is not valid")

// PurchaseService handles supplier and purchase operations
type PurchaseService struct {
	supplierRepo purchasing.SupplierRepository
	purchaseRepo purchasing.PurchaseRepository
}

// NewPurchaseService creates a new PurchaseService
func NewPurchaseService(
	supplierRepo purchasing.SupplierRepository,
	purchaseRepo purchasing.PurchaseRepository,
) *PurchaseService {
	return &PurchaseService{
		supplierRepo: supplierRepo,
		purchaseRepo: purchaseRepo,
	}
}

// CreateSupplier registers a new supplier
func (s *PurchaseService) CreateSupplier(ctx context.Context, req CreateSupplierRequest) (*SupplierResponse, error) {
	existing, err := s.supplierRepo.FindByName(ctx, req.Name)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Supplier with this name already exists")
	}

	currency, err := parseCurrency(req.Currency)
	if err != nil {
		return nil, err
	}

	supplier, err := purchasing.NewSupplier(req.Name, req.Country, req.ContactPerson, req.Phone, req.Email, currency)
	if err != nil {
		return nil, err
	}

	if err := s.supplierRepo.Save(ctx, supplier); err != nil {
		return nil, err
	}

	return ToSupplierResponse(supplier), nil
}

// GetSupplier retrieves a supplier by ID
func (s *PurchaseService) GetSupplier(ctx context.Context, id uuid.UUID) (*SupplierResponse, error) {
	supplier, err := s.supplierRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToSupplierResponse(supplier), nil
}

// ListSuppliers retrieves suppliers, optionally only active ones
func (s *PurchaseService) ListSuppliers(ctx context.Context, activeOnly bool) ([]SupplierResponse, error) {
	suppliers, err := s.supplierRepo.FindAll(ctx, activeOnly)
	if err != nil {
		return nil, err
	}
	responses := make([]SupplierResponse, 0, len(suppliers))
	for i := range suppliers {
		responses = append(responses, *ToSupplierResponse(&suppliers[i]))
	}
	return responses, nil
}

// CreatePurchase records a vehicle purchase from a supplier
func (s *PurchaseService) CreatePurchase(ctx context.Context, req CreatePurchaseRequest) (*PurchaseResponse, error) {
	supplier, err := s.supplierRepo.FindByID(ctx, req.SupplierID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("SUPPLIER_NOT_FOUND", "Supplier not found")
		}
		return nil, err
	}
	if !supplier.IsActive {
		return nil, shared.NewDomainError("SUPPLIER_INACTIVE", "Cannot purchase from an inactive supplier")
	}

	currency, err := parseCurrency(req.Currency)
	if err != nil {
		return nil, err
	}

	purchase, err := purchasing.NewPurchase(req.PurchaseDate, supplier.ID, req.PriceFOB, currency, req.ExchangeRate)
	if err != nil {
		return nil, err
	}
	purchase.Notes = req.Notes
	if req.CreatedBy != nil {
		purchase.SetCreatedBy(*req.CreatedBy)
	}

	if err := s.purchaseRepo.Save(ctx, purchase); err != nil {
		return nil, err
	}

	return ToPurchaseResponse(purchase), nil
}

// GetPurchase retrieves a purchase with its cost segments
func (s *PurchaseService) GetPurchase(ctx context.Context, id uuid.UUID) (*PurchaseResponse, error) {
	purchase, err := s.purchaseRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToPurchaseResponse(purchase), nil
}

// AttachFreight attaches the freight cost segment to a purchase
func (s *PurchaseService) AttachFreight(ctx context.Context, purchaseID uuid.UUID, req AttachFreightRequest) (*PurchaseResponse, error) {
	purchase, err := s.purchaseRepo.FindByID(ctx, purchaseID)
	if err != nil {
		return nil, err
	}

	currency, err := parseCurrency(req.Currency)
	if err != nil {
		return nil, err
	}

	freight, err := purchasing.NewFreightCost(
		purchasing.FreightMethod(req.Method),
		req.FreightAmount, currency, req.ExchangeRate,
		req.InsuranceDZD, req.OtherCostsDZD,
	)
	if err != nil {
		return nil, err
	}

	if err := purchase.AttachFreight(freight); err != nil {
		return nil, err
	}

	if err := s.purchaseRepo.Save(ctx, purchase); err != nil {
		return nil, err
	}

	return ToPurchaseResponse(purchase), nil
}

// AttachCustoms attaches the customs declaration to a purchase.
// With DeriveFromCIF the duty and VAT amounts are derived from the
// purchase's own CIF value, ignoring any amounts in the request.
func (s *PurchaseService) AttachCustoms(ctx context.Context, purchaseID uuid.UUID, req AttachCustomsRequest) (*PurchaseResponse, error) {
	purchase, err := s.purchaseRepo.FindByID(ctx, purchaseID)
	if err != nil {
		return nil, err
	}

	var customs *purchasing.CustomsDeclaration
	if req.DeriveFromCIF {
		customs, err = purchasing.NewCustomsDeclarationFromCIF(
			req.DeclarationDate, req.DeclarationNumber,
			purchase.CIFValue().Amount(),
			req.TariffRate, req.VATRate, req.OtherFeesDZD,
		)
	} else {
		customs, err = purchasing.NewCustomsDeclaration(
			req.DeclarationDate, req.DeclarationNumber,
			req.CIFValueDZD, req.TariffRate, req.ImportDutyDZD,
			req.VATRate, req.VATAmountDZD, req.OtherFeesDZD,
		)
	}
	if err != nil {
		return nil, err
	}

	if err := purchase.AttachCustoms(customs); err != nil {
		return nil, err
	}

	if err := s.purchaseRepo.Save(ctx, purchase); err != nil {
		return nil, err
	}

	return ToPurchaseResponse(purchase), nil
}

// MarkCustomsCleared records customs clearance on a purchase
func (s *PurchaseService) MarkCustomsCleared(ctx context.Context, purchaseID uuid.UUID, clearanceDate time.Time) (*PurchaseResponse, error) {
	purchase, err := s.purchaseRepo.FindByID(ctx, purchaseID)
	if err != nil {
		return nil, err
	}
	if purchase.Customs == nil {
		return nil, shared.NewDomainError("NO_CUSTOMS", "Purchase has no customs declaration")
	}

	if err := purchase.Customs.MarkCleared(clearanceDate); err != nil {
		return nil, err
	}

	if err := s.purchaseRepo.Save(ctx, purchase); err != nil {
		return nil, err
	}

	return ToPurchaseResponse(purchase), nil
}
