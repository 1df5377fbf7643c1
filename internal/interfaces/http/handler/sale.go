package handler

import (
	salesapp "github.com/cartrade/backend/internal/application/sales"
	"github.com/cartrade/backend/internal/domain/identity"
	"github.com/cartrade/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
)

// SaleHandler handles sale and invoice endpoints
type SaleHandler struct {
	BaseHandler
	saleService *salesapp.SaleService
}

// NewSaleHandler creates a new SaleHandler
func NewSaleHandler(saleService *salesapp.SaleService) *SaleHandler {
	return &SaleHandler{saleService: saleService}
}

// RegisterRoutes registers the sale and invoice endpoints
func (h *SaleHandler) RegisterRoutes(rg *gin.RouterGroup) {
	view := middleware.RequireCapability(identity.CapViewReports)
	manage := middleware.RequireCapability(identity.CapManageSales)

	sales := rg.Group("/sales")
	sales.GET("/:id", view, h.Get)
	sales.POST("", manage, h.Create)
	sales.PUT("/:id", manage, h.Update)
	sales.POST("/:id/finalize", manage, h.Finalize)
	sales.POST("/:id/cancel", manage, h.Cancel)
	sales.POST("/:id/invoice", manage, h.IssueInvoice)

	invoices := rg.Group("/invoices")
	invoices.GET("/:id", view, h.GetInvoice)
}

// Create opens a draft sale on a vehicle
func (h *SaleHandler) Create(c *gin.Context) {
	var req salesapp.CreateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	if userID, err := getUserID(c); err == nil {
		req.CreatedBy = &userID
	}

	resp, err := h.saleService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// Get returns a sale by ID
func (h *SaleHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid sale ID")
		return
	}

	resp, err := h.saleService.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Update edits the price or commission rate of a draft sale
func (h *SaleHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid sale ID")
		return
	}

	var req salesapp.UpdateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.saleService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Finalize finalizes a draft sale and marks its vehicle sold
func (h *SaleHandler) Finalize(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid sale ID")
		return
	}

	resp, err := h.saleService.Finalize(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Cancel cancels a sale and returns its vehicle to stock
func (h *SaleHandler) Cancel(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid sale ID")
		return
	}

	resp, err := h.saleService.Cancel(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// IssueInvoice issues the invoice for a finalized sale
func (h *SaleHandler) IssueInvoice(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid sale ID")
		return
	}

	var req salesapp.IssueInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	if userID, err := getUserID(c); err == nil {
		req.IssuedBy = &userID
	}

	resp, err := h.saleService.IssueInvoice(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// GetInvoice returns an invoice by ID
func (h *SaleHandler) GetInvoice(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid invoice ID")
		return
	}

	resp, err := h.saleService.GetInvoice(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}
