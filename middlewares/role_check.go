package middlewares

import (
	"fmt"
	"net/http"
	"slices"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/bill-printing-app/models"
	"github.com/yeremiapane/bill-printing-app/utils"
)

// RequireRole lets the request through when the authenticated role is one of
// roles. Admin is always allowed.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString("role")
		if role == "" {
			utils.RespondError(c, http.StatusUnauthorized, fmt.Errorf("unauthorized"))
			c.Abort()
			return
		}

		if role != models.RoleAdmin && !slices.Contains(roles, role) {
			utils.RespondError(c, http.StatusForbidden, fmt.Errorf("role %s is not allowed here", role))
			c.Abort()
			return
		}

		c.Next()
	}
}
