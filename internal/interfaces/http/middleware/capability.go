package middleware

import (
	"net/http"

	"github.com/cartrade/backend/internal/domain/identity"
	"github.com/cartrade/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// RequireCapability rejects requests whose authenticated role does not
// grant the capability. It must run after JWT authentication so the
// role claim is present in the context.
func RequireCapability(capability identity.Capability) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := identity.Role(GetJWTRole(c))
		if !role.IsValid() {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				dto.NewErrorResponseWithRequestID(dto.ErrCodeUnauthorized,
					"Authentication required", GetRequestID(c)))
			return
		}

		if !role.Can(capability) {
			c.AbortWithStatusJSON(http.StatusForbidden,
				dto.NewErrorResponseWithRequestID(dto.ErrCodeForbidden,
					"Role does not permit this action", GetRequestID(c)))
			return
		}

		c.Next()
	}
}
