package handler

import (
	commissionapp "github.com/cartrade/backend/internal/application/commission"
	"github.com/cartrade/backend/internal/domain/identity"
	"github.com/cartrade/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
)

// CommissionHandler handles commission tier, period, summary and
// payout endpoints
type CommissionHandler struct {
	BaseHandler
	commissionService *commissionapp.CommissionService
}

// NewCommissionHandler creates a new CommissionHandler
func NewCommissionHandler(commissionService *commissionapp.CommissionService) *CommissionHandler {
	return &CommissionHandler{commissionService: commissionService}
}

// RegisterRoutes registers the commission endpoints
func (h *CommissionHandler) RegisterRoutes(rg *gin.RouterGroup) {
	view := middleware.RequireCapability(identity.CapViewReports)
	manage := middleware.RequireCapability(identity.CapManageCommissions)

	commissions := rg.Group("/commissions")
	commissions.GET("/tiers", view, h.ListTiers)
	commissions.POST("/tiers", manage, h.CreateTier)
	commissions.DELETE("/tiers/:id", manage, h.DeactivateTier)

	commissions.POST("/periods/close", manage, h.ClosePeriod)
	commissions.GET("/periods/:id/summaries", view, h.ListSummariesByPeriod)

	commissions.GET("/summaries/:id", view, h.GetSummary)
	commissions.POST("/summaries/:id/approve", manage, h.ApproveSummary)

	commissions.POST("/payouts", manage, h.RecordPayout)
}

// CreateTier creates a commission tier
func (h *CommissionHandler) CreateTier(c *gin.Context) {
	var req commissionapp.CreateTierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.commissionService.CreateTier(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// ListTiers returns the active commission tiers
func (h *CommissionHandler) ListTiers(c *gin.Context) {
	resp, err := h.commissionService.ListTiers(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// DeactivateTier retires a commission tier
func (h *CommissionHandler) DeactivateTier(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid tier ID")
		return
	}

	if err := h.commissionService.DeactivateTier(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// ClosePeriod closes a commission month and computes every trader's summary
func (h *CommissionHandler) ClosePeriod(c *gin.Context) {
	var req commissionapp.ClosePeriodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}
	req.ClosedBy = userID

	resp, err := h.commissionService.ClosePeriod(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// GetSummary returns a trader's period summary
func (h *CommissionHandler) GetSummary(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid summary ID")
		return
	}

	resp, err := h.commissionService.GetSummary(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// ListSummariesByPeriod returns all summaries for a closed period
func (h *CommissionHandler) ListSummariesByPeriod(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid period ID")
		return
	}

	resp, err := h.commissionService.ListSummariesByPeriod(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// ApproveSummary approves a summary for payout
func (h *CommissionHandler) ApproveSummary(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid summary ID")
		return
	}

	resp, err := h.commissionService.ApproveSummary(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// RecordPayout records the payout of an approved summary
func (h *CommissionHandler) RecordPayout(c *gin.Context) {
	var req commissionapp.RecordPayoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	if userID, err := getUserID(c); err == nil {
		req.PaidBy = &userID
	}

	resp, err := h.commissionService.RecordPayout(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}
