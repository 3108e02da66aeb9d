package middleware

import (
	"github.com/gin-gonic/gin"
	apierrors "github.com/yukikurage/defect-tracker-api/internal/errors"
	"github.com/yukikurage/defect-tracker-api/internal/models"
)

// RequirePermission rejects callers whose role may not perform action.
// It must run after RequireAuth.
func RequirePermission(action models.Action, message string) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, exists := GetIdentity(c)
		if !exists {
			apierrors.Unauthorized(c, "")
			return
		}

		if !identity.Role.Can(action) {
			apierrors.Forbidden(c, message)
			return
		}

		c.Next()
	}
}
