package handlers

import (
	"net/http"

	"barbershop/utils"

	"github.com/gin-gonic/gin"
)

// StatusHandler reports which external services are configured, so the
// client can show an advisory instead of failing on submit.
type StatusHandler struct {
	IdentityConfigured    bool
	PersistenceConfigured bool
	RecordsBackend        string
}

func (h *StatusHandler) HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Hi, this is the barbershop",
		"health":  utils.GetHealthStatus(),
	})
}

func (h *StatusHandler) GetStatusHandler(c *gin.Context) {
	body := gin.H{
		"identityConfigured":    h.IdentityConfigured,
		"persistenceConfigured": h.PersistenceConfigured,
		"recordsBackend":        h.RecordsBackend,
		"health":                utils.GetHealthStatus(),
	}
	if !h.IdentityConfigured || !h.PersistenceConfigured {
		body["advisory"] = utils.UnavailableAdvisory
	}
	c.JSON(http.StatusOK, body)
}
