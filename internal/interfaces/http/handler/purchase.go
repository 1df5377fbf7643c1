package handler

import (
	"strconv"
	"time"

	purchasingapp "github.com/cartrade/backend/internal/application/purchasing"
	"github.com/cartrade/backend/internal/domain/identity"
	"github.com/cartrade/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
)

// PurchaseHandler handles supplier and purchase endpoints
type PurchaseHandler struct {
	BaseHandler
	purchaseService *purchasingapp.PurchaseService
}

// NewPurchaseHandler creates a new PurchaseHandler
func NewPurchaseHandler(purchaseService *purchasingapp.PurchaseService) *PurchaseHandler {
	return &PurchaseHandler{purchaseService: purchaseService}
}

// RegisterRoutes registers the purchasing endpoints
func (h *PurchaseHandler) RegisterRoutes(rg *gin.RouterGroup) {
	view := middleware.RequireCapability(identity.CapViewReports)
	manage := middleware.RequireCapability(identity.CapManagePurchases)

	suppliers := rg.Group("/suppliers")
	suppliers.GET("", view, h.ListSuppliers)
	suppliers.GET("/:id", view, h.GetSupplier)
	suppliers.POST("", manage, h.CreateSupplier)

	purchases := rg.Group("/purchases")
	purchases.GET("/:id", view, h.GetPurchase)
	purchases.POST("", manage, h.CreatePurchase)
	purchases.POST("/:id/freight", manage, h.AttachFreight)
	purchases.POST("/:id/customs", manage, h.AttachCustoms)
	purchases.POST("/:id/customs/clear", manage, h.MarkCustomsCleared)
}

// CreateSupplier registers a new supplier
func (h *PurchaseHandler) CreateSupplier(c *gin.Context) {
	var req purchasingapp.CreateSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.purchaseService.CreateSupplier(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// GetSupplier returns a supplier by ID
func (h *PurchaseHandler) GetSupplier(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid supplier ID")
		return
	}

	resp, err := h.purchaseService.GetSupplier(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// ListSuppliers returns suppliers, optionally only active ones
func (h *PurchaseHandler) ListSuppliers(c *gin.Context) {
	activeOnly, _ := strconv.ParseBool(c.DefaultQuery("active_only", "false"))

	resp, err := h.purchaseService.ListSuppliers(c.Request.Context(), activeOnly)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// CreatePurchase records a new vehicle purchase
func (h *PurchaseHandler) CreatePurchase(c *gin.Context) {
	var req purchasingapp.CreatePurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	if userID, err := getUserID(c); err == nil {
		req.CreatedBy = &userID
	}

	resp, err := h.purchaseService.CreatePurchase(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// GetPurchase returns a purchase with its cost segments
func (h *PurchaseHandler) GetPurchase(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid purchase ID")
		return
	}

	resp, err := h.purchaseService.GetPurchase(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// AttachFreight attaches the freight cost segment to a purchase
func (h *PurchaseHandler) AttachFreight(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid purchase ID")
		return
	}

	var req purchasingapp.AttachFreightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.purchaseService.AttachFreight(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// AttachCustoms attaches the customs declaration to a purchase
func (h *PurchaseHandler) AttachCustoms(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid purchase ID")
		return
	}

	var req purchasingapp.AttachCustomsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.purchaseService.AttachCustoms(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// MarkCustomsClearedRequest carries the clearance date
type MarkCustomsClearedRequest struct {
	ClearanceDate time.Time `json:"clearance_date" binding:"required"`
}

// MarkCustomsCleared marks a purchase's customs declaration as cleared
func (h *PurchaseHandler) MarkCustomsCleared(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid purchase ID")
		return
	}

	var req MarkCustomsClearedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.purchaseService.MarkCustomsCleared(c.Request.Context(), id, req.ClearanceDate)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}
