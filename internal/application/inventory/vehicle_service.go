package inventory

import (
	"context"
	"errors"

	"github.com/cartrade/backend/internal/domain/inventory"
	"github.com/cartrade/backend/internal/domain/purchasing"
	"github.com/cartrade/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// VehicleService handles vehicle inventory operations
type VehicleService struct {
	vehicleRepo  inventory.VehicleRepository
	purchaseRepo purchasing.PurchaseRepository
	params       shared.FinanceParams
}

// NewVehicleService creates a new VehicleService
func NewVehicleService(
	vehicleRepo inventory.VehicleRepository,
	purchaseRepo purchasing.PurchaseRepository,
	params shared.FinanceParams,
) *VehicleService {
	return &VehicleService{
		vehicleRepo:  vehicleRepo,
		purchaseRepo: purchaseRepo,
		params:       params,
	}
}

// Register registers a newly purchased vehicle into stock
func (s *VehicleService) Register(ctx context.Context, req RegisterVehicleRequest) (*VehicleResponse, error) {
	existing, err := s.vehicleRepo.FindByVIN(ctx, req.VIN)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Vehicle with this VIN already exists")
	}

	purchase, err := s.purchaseRepo.FindByID(ctx, req.PurchaseID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("PURCHASE_NOT_FOUND", "Purchase not found")
		}
		return nil, err
	}

	vehicle, err := inventory.NewVehicle(req.VIN, req.Make, req.Model, req.Year, req.Color, purchase.ID)
	if err != nil {
		return nil, err
	}
	vehicle.EngineType = req.EngineType
	vehicle.Specifications = req.Specifications
	if req.CreatedBy != nil {
		vehicle.SetCreatedBy(*req.CreatedBy)
	}

	if err := s.vehicleRepo.Save(ctx, vehicle); err != nil {
		return nil, err
	}

	landedCost := purchase.LandedCost().Amount()
	return ToVehicleResponse(vehicle, &landedCost), nil
}

// Get retrieves a vehicle with its landed cost
func (s *VehicleService) Get(ctx context.Context, id uuid.UUID) (*VehicleResponse, error) {
	vehicle, err := s.vehicleRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	purchase, err := s.purchaseRepo.FindByID(ctx, vehicle.PurchaseID)
	if err != nil {
		return nil, err
	}

	landedCost := purchase.LandedCost().Amount()
	return ToVehicleResponse(vehicle, &landedCost), nil
}

// List retrieves vehicles matching the filter
func (s *VehicleService) List(ctx context.Context, filter VehicleListFilter) ([]VehicleResponse, error) {
	domainFilter := inventory.VehicleFilter{}
	if filter.Status != "" {
		status := inventory.VehicleStatus(filter.Status)
		if !status.IsValid() {
			return nil, shared.NewDomainError("INVALID_STATUS", "Vehicle status is not valid")
		}
		domainFilter.Status = &status
	}
	if filter.Make != "" {
		domainFilter.Make = &filter.Make
	}
	if filter.YearFrom > 0 {
		domainFilter.YearFrom = &filter.YearFrom
	}
	if filter.YearTo > 0 {
		domainFilter.YearTo = &filter.YearTo
	}

	vehicles, err := s.vehicleRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, err
	}

	responses := make([]VehicleResponse, 0, len(vehicles))
	for i := range vehicles {
		responses = append(responses, *ToVehicleResponse(&vehicles[i], nil))
	}
	return responses, nil
}

// MarkAtCustoms records arrival at the customs port
func (s *VehicleService) MarkAtCustoms(ctx context.Context, id uuid.UUID) (*VehicleResponse, error) {
	return s.transition(ctx, id, func(v *inventory.Vehicle) error { return v.MarkAtCustoms() })
}

// MarkAvailable puts a cleared vehicle on the sales floor
func (s *VehicleService) MarkAvailable(ctx context.Context, id uuid.UUID) (*VehicleResponse, error) {
	return s.transition(ctx, id, func(v *inventory.Vehicle) error { return v.MarkAvailable() })
}

// Reserve holds an available vehicle for a trader's customer
func (s *VehicleService) Reserve(ctx context.Context, id uuid.UUID, req ReserveVehicleRequest) (*VehicleResponse, error) {
	days := req.Days
	if days <= 0 {
		days = s.params.ReservationDays
	}
	return s.transition(ctx, id, func(v *inventory.Vehicle) error {
		return v.Reserve(req.TraderID, days)
	})
}

// ReleaseReservation frees a reserved vehicle
func (s *VehicleService) ReleaseReservation(ctx context.Context, id uuid.UUID) (*VehicleResponse, error) {
	return s.transition(ctx, id, func(v *inventory.Vehicle) error { return v.ReleaseReservation() })
}

// ReleaseExpiredReservations frees every vehicle whose reservation
// has lapsed and returns how many were released
func (s *VehicleService) ReleaseExpiredReservations(ctx context.Context) (int, error) {
	expired, err := s.vehicleRepo.FindExpiredReservations(ctx)
	if err != nil {
		return 0, err
	}

	released := 0
	for i := range expired {
		if err := expired[i].ReleaseReservation(); err != nil {
			continue
		}
		if err := s.vehicleRepo.Save(ctx, &expired[i]); err != nil {
			return released, err
		}
		released++
	}
	return released, nil
}

func (s *VehicleService) transition(ctx context.Context, id uuid.UUID, fn func(*inventory.Vehicle) error) (*VehicleResponse, error) {
	vehicle, err := s.vehicleRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := fn(vehicle); err != nil {
		return nil, err
	}

	if err := s.vehicleRepo.Save(ctx, vehicle); err != nil {
		return nil, err
	}

	return ToVehicleResponse(vehicle, nil), nil
}
