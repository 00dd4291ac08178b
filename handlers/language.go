package handlers

import (
	"barbershop/middleware"
	"barbershop/models"
	"barbershop/services/preferences"

	"github.com/gin-gonic/gin"
)

// requestLanguage is the ?lang query value when valid, else the client's
// stored language preference.
func requestLanguage(c *gin.Context, prefs *preferences.Service) models.Language {
	fallback := models.LanguageES
	if prefs != nil {
		fallback = prefs.Get(c.Request.Context(), middleware.ClientID(c)).Language
	}
	return models.ParseLanguage(c.Query("lang"), fallback)
}
