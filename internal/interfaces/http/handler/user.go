package handler

import (
	identityapp "github.com/cartrade/backend/internal/application/identity"
	"github.com/cartrade/backend/internal/domain/identity"
	"github.com/cartrade/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// UserHandler handles user administration endpoints
type UserHandler struct {
	BaseHandler
	userService *identityapp.UserService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userService *identityapp.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// RegisterRoutes registers the user endpoints. User administration is
// a manager concern, so everything is behind the commissions-manage
// capability except the read-only listings.
func (h *UserHandler) RegisterRoutes(rg *gin.RouterGroup) {
	users := rg.Group("/users")
	users.GET("", middleware.RequireCapability(identity.CapViewReports), h.List)
	users.GET("/:id", middleware.RequireCapability(identity.CapViewReports), h.Get)
	users.GET("/commission-earners", middleware.RequireCapability(identity.CapViewReports), h.ListCommissionEarners)
	users.POST("", middleware.RequireCapability(identity.CapManageCommissions), h.Create)
	users.PUT("/:id/commission-rate", middleware.RequireCapability(identity.CapManageCommissions), h.SetCommissionRate)
	users.DELETE("/:id", middleware.RequireCapability(identity.CapManageCommissions), h.Deactivate)
}

// Create creates a new user
func (h *UserHandler) Create(c *gin.Context) {
	var req identityapp.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.userService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// Get returns a user by ID
func (h *UserHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid user ID")
		return
	}

	resp, err := h.userService.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// List returns all users
func (h *UserHandler) List(c *gin.Context) {
	resp, err := h.userService.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// ListCommissionEarners returns the active users whose sales accrue commission
func (h *UserHandler) ListCommissionEarners(c *gin.Context) {
	resp, err := h.userService.ListCommissionEarners(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// SetCommissionRateRequest carries a user's default commission rate
type SetCommissionRateRequest struct {
	Rate decimal.Decimal `json:"rate" binding:"required"`
}

// SetCommissionRate updates a user's default commission rate
func (h *UserHandler) SetCommissionRate(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid user ID")
		return
	}

	var req SetCommissionRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.userService.SetCommissionRate(c.Request.Context(), id, req.Rate)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Deactivate deactivates a user account
func (h *UserHandler) Deactivate(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid user ID")
		return
	}

	if err := h.userService.Deactivate(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
