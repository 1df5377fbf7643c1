package handler

import (
	paymentapp "github.com/cartrade/backend/internal/application/payment"
	"github.com/cartrade/backend/internal/domain/identity"
	"github.com/cartrade/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
)

// PaymentHandler handles payment endpoints
type PaymentHandler struct {
	BaseHandler
	paymentService *paymentapp.PaymentService
}

// NewPaymentHandler creates a new PaymentHandler
func NewPaymentHandler(paymentService *paymentapp.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// RegisterRoutes registers the payment endpoints
func (h *PaymentHandler) RegisterRoutes(rg *gin.RouterGroup) {
	view := middleware.RequireCapability(identity.CapViewReports)
	record := middleware.RequireCapability(identity.CapRecordPayments)

	payments := rg.Group("/payments")
	payments.POST("", record, h.Record)
	payments.PUT("/:id", record, h.Amend)
	payments.POST("/:id/cancel", record, h.Cancel)

	rg.GET("/invoices/:id/payments", view, h.ListByInvoice)
	rg.POST("/invoices/:id/recompute", record, h.RecomputeInvoice)
}

// Record records a payment against an invoice
func (h *PaymentHandler) Record(c *gin.Context) {
	var req paymentapp.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	if userID, err := getUserID(c); err == nil {
		req.RecordedBy = &userID
	}

	resp, err := h.paymentService.Record(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// Amend corrects the amount or date of a recorded payment
func (h *PaymentHandler) Amend(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid payment ID")
		return
	}

	var req paymentapp.AmendPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.paymentService.Amend(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Cancel voids a payment and recomputes its invoice
func (h *PaymentHandler) Cancel(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid payment ID")
		return
	}

	resp, err := h.paymentService.Cancel(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// RecomputeInvoice re-derives an invoice's paid amount, balance and
// status from its confirmed payments
func (h *PaymentHandler) RecomputeInvoice(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid invoice ID")
		return
	}

	resp, err := h.paymentService.RecomputeInvoice(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// ListByInvoice returns the payments recorded against an invoice
func (h *PaymentHandler) ListByInvoice(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid invoice ID")
		return
	}

	resp, err := h.paymentService.ListByInvoice(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}
