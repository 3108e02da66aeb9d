package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/defect-tracker-api/internal/constants"
	apierrors "github.com/yukikurage/defect-tracker-api/internal/errors"
	"github.com/yukikurage/defect-tracker-api/internal/models"
	"github.com/yukikurage/defect-tracker-api/internal/services"
)

// Identity is the authenticated caller attached to the request by RequireAuth.
type Identity struct {
	UserID uint64
	Role   models.Role
}

// TokenVerifier validates bearer tokens.
type TokenVerifier interface {
	Verify(token string) (*services.Claims, error)
}

// RequireAuth checks the bearer token of the request. A missing token is
// rejected with 401 and an invalid or expired one with 403.
func RequireAuth(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			apierrors.Unauthorized(c, "")
			return
		}

		claims, err := verifier.Verify(token)
		if err != nil {
			apierrors.Forbidden(c, "Invalid or expired token")
			return
		}

		c.Set(constants.ContextKeyIdentity, Identity{
			UserID: claims.UserID,
			Role:   claims.Role,
		})
		c.Next()
	}
}

// GetIdentity retrieves the authenticated caller from context
func GetIdentity(c *gin.Context) (Identity, bool) {
	value, exists := c.Get(constants.ContextKeyIdentity)
	if !exists {
		return Identity{}, false
	}
	identity, ok := value.(Identity)
	return identity, ok
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, constants.BearerScheme) {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
