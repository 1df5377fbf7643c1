package sales

import (
	"context"
	"errors"

	"github.com/cartrade/backend/internal/domain/identity"
	"github.com/cartrade/backend/internal/domain/partner"
	"github.com/cartrade/backend/internal/domain/purchasing"
	"github.com/cartrade/backend/internal/domain/sales"
	"github.com/cartrade/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// SaleService handles the sale lifecycle: creation with derived
// financials, finalization and invoicing.
type SaleService struct {
	scope        TransactionScope
	purchaseRepo purchasing.PurchaseRepository
	customerRepo partner.CustomerRepository
	userRepo     identity.UserRepository
	params       shared.FinanceParams
}

// NewSaleService creates a new SaleService
func NewSaleService(
	scope TransactionScope,
	purchaseRepo purchasing.PurchaseRepository,
	customerRepo partner.CustomerRepository,
	userRepo identity.UserRepository,
	params shared.FinanceParams,
) *SaleService {
	return &SaleService{
		scope:        scope,
		purchaseRepo: purchaseRepo,
		customerRepo: customerRepo,
		userRepo:     userRepo,
		params:       params,
	}
}

// Create opens a draft sale. The vehicle must be sellable (available,
// or reserved by the same trader), the customer active, and the trader
// a commission-earning role. The landed cost is snapshotted from the
// vehicle's purchase chain.
func (s *SaleService) Create(ctx context.Context, req CreateSaleRequest) (*SaleResponse, error) {
	trader, err := s.userRepo.FindByID(ctx, req.TraderID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("TRADER_NOT_FOUND", "Trader not found")
		}
		return nil, err
	}
	if !trader.IsActive || !trader.Role.EarnsCommission() {
		return nil, shared.NewDomainError("INVALID_TRADER", "Sales must be assigned to an active trader or manager")
	}

	customer, err := s.customerRepo.FindByID(ctx, req.CustomerID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("CUSTOMER_NOT_FOUND", "Customer not found")
		}
		return nil, err
	}
	if !customer.IsActive {
		return nil, shared.NewDomainError("CUSTOMER_INACTIVE", "Cannot sell to an inactive customer")
	}

	rate := trader.DefaultCommissionRate
	if req.CommissionRate != nil {
		rate = *req.CommissionRate
	}

	var created *sales.Sale
	err = s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		vehicle, err := repos.VehicleRepo().FindByID(ctx, req.VehicleID)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return shared.NewDomainError("VEHICLE_NOT_FOUND", "Vehicle not found")
			}
			return err
		}
		if !vehicle.Status.IsSellable() {
			return shared.NewDomainError("VEHICLE_NOT_SELLABLE", "Vehicle is not available for sale")
		}
		if vehicle.ReservedBy != nil && *vehicle.ReservedBy != req.TraderID {
			return shared.NewDomainError("VEHICLE_RESERVED", "Vehicle is reserved by another trader")
		}

		existing, err := repos.SaleRepo().FindByVehicle(ctx, vehicle.ID)
		if err != nil && !errors.Is(err, shared.ErrNotFound) {
			return err
		}
		if existing != nil && existing.Status != sales.SaleStatusCancelled {
			return shared.NewDomainError("VEHICLE_ALREADY_SOLD", "Vehicle already has an open sale")
		}

		purchase, err := s.purchaseRepo.FindByID(ctx, vehicle.PurchaseID)
		if err != nil {
			return err
		}

		saleNumber, err := repos.SaleRepo().NextSaleNumber(ctx, req.SaleDate)
		if err != nil {
			return err
		}

		sale, err := sales.NewSale(
			saleNumber, req.SaleDate,
			vehicle.ID, customer.ID, trader.ID,
			req.SalePrice, purchase.LandedCost().Amount(),
			sales.PaymentMethod(req.PaymentMethod),
			req.DownPayment, rate,
		)
		if err != nil {
			return err
		}
		sale.Notes = req.Notes
		if req.CreatedBy != nil {
			sale.SetCreatedBy(*req.CreatedBy)
		}

		if err := repos.SaleRepo().Save(ctx, sale); err != nil {
			return err
		}
		created = sale
		return nil
	})
	if err != nil {
		return nil, err
	}

	return ToSaleResponse(created), nil
}

// Get retrieves a sale by ID
func (s *SaleService) Get(ctx context.Context, id uuid.UUID) (*SaleResponse, error) {
	var sale *sales.Sale
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		var err error
		sale, err = repos.SaleRepo().FindByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return ToSaleResponse(sale), nil
}

// Update edits a draft sale's price or commission rate and re-derives
// the financials. Rejected once finalized.
func (s *SaleService) Update(ctx context.Context, id uuid.UUID, req UpdateSaleRequest) (*SaleResponse, error) {
	var updated *sales.Sale
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		sale, err := repos.SaleRepo().FindByID(ctx, id)
		if err != nil {
			return err
		}
		if req.SalePrice != nil {
			if err := sale.UpdatePrice(*req.SalePrice); err != nil {
				return err
			}
		}
		if req.CommissionRate != nil {
			if err := sale.UpdateCommissionRate(*req.CommissionRate); err != nil {
				return err
			}
		}
		if err := repos.SaleRepo().Save(ctx, sale); err != nil {
			return err
		}
		updated = sale
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ToSaleResponse(updated), nil
}

// Finalize freezes the sale's financials and marks the vehicle sold.
// Both writes share one transaction.
func (s *SaleService) Finalize(ctx context.Context, id uuid.UUID) (*SaleResponse, error) {
	var finalized *sales.Sale
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		sale, err := repos.SaleRepo().FindByID(ctx, id)
		if err != nil {
			return err
		}
		if err := sale.Finalize(); err != nil {
			return err
		}

		vehicle, err := repos.VehicleRepo().FindByID(ctx, sale.VehicleID)
		if err != nil {
			return err
		}
		if err := vehicle.MarkSold(); err != nil {
			return err
		}

		if err := repos.SaleRepo().Save(ctx, sale); err != nil {
			return err
		}
		if err := repos.VehicleRepo().Save(ctx, vehicle); err != nil {
			return err
		}
		finalized = sale
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ToSaleResponse(finalized), nil
}

// Cancel cancels a draft sale and releases the vehicle's reservation
// when this trader held it
func (s *SaleService) Cancel(ctx context.Context, id uuid.UUID) (*SaleResponse, error) {
	var cancelled *sales.Sale
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		sale, err := repos.SaleRepo().FindByID(ctx, id)
		if err != nil {
			return err
		}
		if err := sale.Cancel(); err != nil {
			return err
		}

		vehicle, err := repos.VehicleRepo().FindByID(ctx, sale.VehicleID)
		if err != nil {
			return err
		}
		if vehicle.ReservedBy != nil && *vehicle.ReservedBy == sale.TraderID {
			if err := vehicle.ReleaseReservation(); err != nil {
				return err
			}
			if err := repos.VehicleRepo().Save(ctx, vehicle); err != nil {
				return err
			}
		}

		if err := repos.SaleRepo().Save(ctx, sale); err != nil {
			return err
		}
		cancelled = sale
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ToSaleResponse(cancelled), nil
}

// IssueInvoice creates and issues the invoice for a finalized sale.
// VAT is applied on top of the sale price at the configured rate.
func (s *SaleService) IssueInvoice(ctx context.Context, saleID uuid.UUID, req IssueInvoiceRequest) (*InvoiceResponse, error) {
	var issued *sales.Invoice
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		sale, err := repos.SaleRepo().FindByID(ctx, saleID)
		if err != nil {
			return err
		}

		existing, err := repos.InvoiceRepo().FindBySale(ctx, sale.ID)
		if err != nil && !errors.Is(err, shared.ErrNotFound) {
			return err
		}
		if existing != nil && existing.Status != sales.InvoiceStatusCancelled {
			return shared.NewDomainError("INVOICE_EXISTS", "Sale already has an invoice")
		}

		invoiceDate := sale.SaleDate
		invoiceNumber, err := repos.InvoiceRepo().NextInvoiceNumber(ctx, invoiceDate)
		if err != nil {
			return err
		}

		invoice, err := sales.NewInvoice(invoiceNumber, sale, invoiceDate, req.DueDate, s.params.VATRate)
		if err != nil {
			return err
		}
		invoice.Notes = req.Notes
		if req.IssuedBy != nil {
			invoice.SetCreatedBy(*req.IssuedBy)
		}
		if err := invoice.Issue(); err != nil {
			return err
		}

		if err := repos.InvoiceRepo().Save(ctx, invoice); err != nil {
			return err
		}
		issued = invoice
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ToInvoiceResponse(issued), nil
}

// GetInvoice retrieves an invoice by ID
func (s *SaleService) GetInvoice(ctx context.Context, id uuid.UUID) (*InvoiceResponse, error) {
	var invoice *sales.Invoice
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		var err error
		invoice, err = repos.InvoiceRepo().FindByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return ToInvoiceResponse(invoice), nil
}
