package routes

import (
	"time"

	"barbershop/handlers"
	"barbershop/middleware"
	"barbershop/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/health", hb.HealthHandler)
}

// RegisterCatalogRoutes registers the public read-only endpoints.
func RegisterCatalogRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle) {
	api.GET("/status", hb.StatusHandler)
	api.GET("/services", hb.ListServicesHandler)
	api.GET("/locations", hb.LocationsHandler)

	cal := api.Group("/calendar")
	{
		cal.GET("", hb.MonthHandler)
		cal.GET("/previous", hb.PreviousMonthHandler)
		cal.GET("/next", hb.NextMonthHandler)
		cal.GET("/slots", hb.SlotsHandler)
	}
}

// RegisterCartRoutes registers the per-client cart endpoints.
func RegisterCartRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle) {
	cart := api.Group("/cart")
	{
		cart.GET("", hb.GetCartHandler)
		cart.POST("/items", hb.AddItemHandler)
		cart.DELETE("", hb.ClearCartHandler)
	}
}

// RegisterBookingRoutes registers the draft, confirmation and rating endpoints.
func RegisterBookingRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle) {
	bookingGroup := api.Group("/booking")
	{
		bookingGroup.GET("/draft", hb.GetDraftHandler)
		bookingGroup.PUT("/draft", hb.UpdateDraftHandler)
		bookingGroup.DELETE("/draft", hb.CancelDraftHandler)
		bookingGroup.POST("/confirm", hb.ConfirmBookingHandler)
	}
	api.POST("/ratings", hb.RateServiceHandler)
}

// RegisterPreferencesRoutes registers theme and language endpoints.
func RegisterPreferencesRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle) {
	prefs := api.Group("/preferences")
	{
		prefs.GET("", hb.GetPreferencesHandler)
		prefs.PUT("", hb.UpdatePreferencesHandler)
		prefs.POST("/theme/toggle", hb.ToggleThemeHandler)
		prefs.POST("/language/toggle", hb.ToggleLanguageHandler)
	}
}

// RegisterAdminRoutes sets up endpoints for the shop owner.
func RegisterAdminRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle) {
	adminGroup := api.Group("/admin")
	{
		adminGroup.Use(middleware.AdminAuthMiddleware(hb.AdminEmail))
		adminGroup.GET("/orders", hb.ListOrdersHandler)
		adminGroup.GET("/ratings", hb.ListRatingsHandler)
	}
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle, origins []string) {
	corsConfig := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", utils.ClientIDHeader},
		ExposeHeaders:    []string{"Content-Length", utils.ClientIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(origins) == 1 && origins[0] == "*" {
		corsConfig.AllowOriginFunc = func(string) bool { return true }
	} else {
		corsConfig.AllowOrigins = origins
	}
	r.Use(cors.New(corsConfig))

	RegisterHealthRoute(r, hb)

	api := r.Group("/api")
	api.Use(middleware.ClientSessionMiddleware())
	api.Use(middleware.OptionalIdentityMiddleware(hb.Identity))

	RegisterCatalogRoutes(api, hb)
	RegisterCartRoutes(api, hb)
	RegisterBookingRoutes(api, hb)
	RegisterPreferencesRoutes(api, hb)
	RegisterAdminRoutes(api, hb)
}
