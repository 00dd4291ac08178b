package middleware

import (
	"strings"

	"barbershop/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const maxClientIDLength = 128

// ClientSessionMiddleware reads the opaque client id from X-Client-ID,
// issuing a fresh one when it is missing or unusable, and echoes it back so
// the client can keep it.
func ClientSessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		clientID := strings.TrimSpace(c.GetHeader(utils.ClientIDHeader))
		if !validClientID(clientID) {
			clientID = uuid.NewString()
		}
		c.Set(utils.ClientIDKey, clientID)
		c.Set("logger", zap.L().With(zap.String("clientID", clientID)))
		c.Header(utils.ClientIDHeader, clientID)
		c.Next()
	}
}

func validClientID(id string) bool {
	if id == "" || len(id) > maxClientIDLength {
		return false
	}
	for _, r := range id {
		if !(r == '-' || r == '_' || r >= '0' && r <= '9' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z') {
			return false
		}
	}
	return true
}

// ClientID returns the id set by ClientSessionMiddleware.
func ClientID(c *gin.Context) string {
	return c.GetString(utils.ClientIDKey)
}
