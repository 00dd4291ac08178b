package middleware

import (
	"net/http"

	"barbershop/services/identity"
	"barbershop/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminAuthMiddleware admits only the verified owner account. It must run
// after OptionalIdentityMiddleware.
func AdminAuthMiddleware(adminEmail string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if IdentityUnavailable(c) {
			abortUnavailable(c)
			return
		}
		id := CurrentIdentity(c)
		if id == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, utils.ErrorResponse{
				Message:  "Sign in required",
				Redirect: "/login",
			})
			return
		}
		if !identity.IsAdmin(id, adminEmail) {
			zap.L().Warn("Unauthorized admin access", zap.String("uid", id.UID))
			c.AbortWithStatusJSON(http.StatusForbidden, utils.ErrorResponse{Message: "Unauthorized admin access"})
			return
		}
		c.Set("isAdmin", true)
		c.Next()
	}
}
