package handlers

import (
	"net/http"

	"barbershop/services/catalog"
	"barbershop/services/preferences"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the service list and the locations page.
type CatalogHandler struct {
	Catalog catalog.Catalog
	Prefs   *preferences.Service
}

func NewCatalogHandler(cat catalog.Catalog, prefs *preferences.Service) *CatalogHandler {
	return &CatalogHandler{Catalog: cat, Prefs: prefs}
}

// ListServicesHandler returns every service localized to the request language.
func (h *CatalogHandler) ListServicesHandler(c *gin.Context) {
	lang := requestLanguage(c, h.Prefs)
	c.JSON(http.StatusOK, gin.H{
		"language": lang,
		"services": catalog.LocalizedServices(h.Catalog, lang),
	})
}

func (h *CatalogHandler) LocationsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, catalog.LocationsPage(h.Catalog, requestLanguage(c, h.Prefs)))
}
