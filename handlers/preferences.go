package handlers

import (
	"net/http"

	"barbershop/middleware"
	"barbershop/models"
	"barbershop/services/preferences"
	"barbershop/utils"

	"github.com/gin-gonic/gin"
)

// PreferencesHandler reads and changes theme and language.
type PreferencesHandler struct {
	Prefs *preferences.Service
}

func NewPreferencesHandler(prefs *preferences.Service) *PreferencesHandler {
	return &PreferencesHandler{Prefs: prefs}
}

func (h *PreferencesHandler) GetPreferencesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.Prefs.Get(c.Request.Context(), middleware.ClientID(c)))
}

func (h *PreferencesHandler) UpdatePreferencesHandler(c *gin.Context) {
	var req models.UpdatePreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}
	prefs, err := h.Prefs.Update(c.Request.Context(), middleware.ClientID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, prefs)
}

func (h *PreferencesHandler) ToggleThemeHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.Prefs.ToggleTheme(c.Request.Context(), middleware.ClientID(c)))
}

func (h *PreferencesHandler) ToggleLanguageHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.Prefs.ToggleLanguage(c.Request.Context(), middleware.ClientID(c)))
}
