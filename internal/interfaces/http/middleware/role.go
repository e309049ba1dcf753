package middleware

import (
	"net/http"

	"github.com/bankcore/backend/internal/domain/identity"
	"github.com/bankcore/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// RequireRole aborts the request with 403 unless the authenticated user has
// one of the given roles. It must run after JWT authentication.
func RequireRole(roles ...identity.Role) gin.HandlerFunc {
	allowed := make(map[identity.Role]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}

	return func(c *gin.Context) {
		role, err := identity.ParseRole(GetJWTRole(c))
		if err != nil || !allowed[role] {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse(
				dto.ErrCodeForbidden,
				"Insufficient role for this operation",
			))
			return
		}
		c.Next()
	}
}

// RequireManager is shorthand for RequireRole(identity.RoleManager)
func RequireManager() gin.HandlerFunc {
	return RequireRole(identity.RoleManager)
}
