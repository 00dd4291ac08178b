package middleware

import (
	"errors"
	"net/http"
	"strings"

	"barbershop/models"
	"barbershop/services/identity"
	"barbershop/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func bearerToken(c *gin.Context) string {
	h := c.GetHeader("Authorization")
	if !strings.HasPrefix(h, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
}

// OptionalIdentityMiddleware verifies a bearer token when one is sent and
// stores the identity in the context. Requests without a token pass through
// as anonymous; a token that fails verification is rejected. Without a
// configured provider every request is anonymous and marked so that
// operations needing a user answer 503 instead of asking for a sign-in.
func OptionalIdentityMiddleware(provider identity.Provider) gin.HandlerFunc {
	return func(c *gin.Context) {
		if provider == nil || !provider.Configured() {
			c.Set(utils.IdentityUnavailableKey, true)
			c.Next()
			return
		}
		token := bearerToken(c)
		if token == "" {
			c.Next()
			return
		}
		id, err := provider.Verify(c.Request.Context(), token)
		if errors.Is(err, identity.ErrNotConfigured) {
			c.Set(utils.IdentityUnavailableKey, true)
			c.Next()
			return
		}
		if err != nil {
			zap.L().Info("Rejected identity token", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, utils.ErrorResponse{
				Message:  "Invalid or expired session",
				Redirect: "/login",
			})
			return
		}
		c.Set(utils.IdentityKey, id)
		c.Next()
	}
}

// CurrentIdentity returns the verified identity, or nil for anonymous
// requests.
func CurrentIdentity(c *gin.Context) *models.Identity {
	v, ok := c.Get(utils.IdentityKey)
	if !ok {
		return nil
	}
	id, _ := v.(*models.Identity)
	return id
}

// IdentityUnavailable reports whether sign-in is not configured for this
// deployment.
func IdentityUnavailable(c *gin.Context) bool {
	return c.GetBool(utils.IdentityUnavailableKey)
}

// abortUnavailable answers 503 with the configuration advisory.
func abortUnavailable(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusServiceUnavailable, utils.ErrorResponse{
		Message: utils.UnavailableAdvisory,
		Details: "sign-in is not configured",
	})
}
