package handler

import (
	"context"

	inventoryapp "github.com/cartrade/backend/internal/application/inventory"
	"github.com/cartrade/backend/internal/domain/identity"
	"github.com/cartrade/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// VehicleHandler handles vehicle inventory endpoints
type VehicleHandler struct {
	BaseHandler
	vehicleService *inventoryapp.VehicleService
}

// NewVehicleHandler creates a new VehicleHandler
func NewVehicleHandler(vehicleService *inventoryapp.VehicleService) *VehicleHandler {
	return &VehicleHandler{vehicleService: vehicleService}
}

// RegisterRoutes registers the vehicle endpoints
func (h *VehicleHandler) RegisterRoutes(rg *gin.RouterGroup) {
	view := middleware.RequireCapability(identity.CapViewReports)
	manage := middleware.RequireCapability(identity.CapManageInventory)
	reserve := middleware.RequireCapability(identity.CapReserveVehicles)

	vehicles := rg.Group("/vehicles")
	vehicles.GET("", view, h.List)
	vehicles.GET("/:id", view, h.Get)
	vehicles.POST("", manage, h.Register)
	vehicles.POST("/:id/at-customs", manage, h.MarkAtCustoms)
	vehicles.POST("/:id/available", manage, h.MarkAvailable)
	vehicles.POST("/:id/reserve", reserve, h.Reserve)
	vehicles.DELETE("/:id/reserve", reserve, h.ReleaseReservation)
	vehicles.POST("/release-expired", manage, h.ReleaseExpiredReservations)
}

// Register registers a newly purchased vehicle
func (h *VehicleHandler) Register(c *gin.Context) {
	var req inventoryapp.RegisterVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	if userID, err := getUserID(c); err == nil {
		req.CreatedBy = &userID
	}

	resp, err := h.vehicleService.Register(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// Get returns a vehicle by ID, including its landed cost
func (h *VehicleHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid vehicle ID")
		return
	}

	resp, err := h.vehicleService.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// List returns vehicles matching the filter query parameters
func (h *VehicleHandler) List(c *gin.Context) {
	var filter inventoryapp.VehicleListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.vehicleService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// MarkAtCustoms moves a vehicle into the at-customs status
func (h *VehicleHandler) MarkAtCustoms(c *gin.Context) {
	h.transition(c, h.vehicleService.MarkAtCustoms)
}

// MarkAvailable moves a vehicle into the available status
func (h *VehicleHandler) MarkAvailable(c *gin.Context) {
	h.transition(c, h.vehicleService.MarkAvailable)
}

// Reserve places a reservation on an available vehicle
func (h *VehicleHandler) Reserve(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid vehicle ID")
		return
	}

	var req inventoryapp.ReserveVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.vehicleService.Reserve(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// ReleaseReservation releases a vehicle's reservation
func (h *VehicleHandler) ReleaseReservation(c *gin.Context) {
	h.transition(c, h.vehicleService.ReleaseReservation)
}

// ReleaseExpiredReservations releases every reservation past its expiry
func (h *VehicleHandler) ReleaseExpiredReservations(c *gin.Context) {
	released, err := h.vehicleService.ReleaseExpiredReservations(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, gin.H{"released": released})
}

// transition runs a status transition identified by the :id parameter
func (h *VehicleHandler) transition(c *gin.Context, fn func(ctx context.Context, id uuid.UUID) (*inventoryapp.VehicleResponse, error)) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid vehicle ID")
		return
	}

	resp, err := fn(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}
