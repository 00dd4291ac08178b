package handlers

import (
	recordsRepo "barbershop/database/repository/records"
	"barbershop/services/booking"
	"barbershop/services/calendar"
	"barbershop/services/catalog"
	"barbershop/services/identity"
	"barbershop/services/preferences"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers and what the routes need to
// guard them.
type HandlerBundle struct {
	Identity   identity.Provider
	AdminEmail string

	// Status endpoints
	HealthHandler gin.HandlerFunc
	StatusHandler gin.HandlerFunc

	// Catalog endpoints
	ListServicesHandler gin.HandlerFunc
	LocationsHandler    gin.HandlerFunc

	// Calendar endpoints
	MonthHandler         gin.HandlerFunc
	PreviousMonthHandler gin.HandlerFunc
	NextMonthHandler     gin.HandlerFunc
	SlotsHandler         gin.HandlerFunc

	// Cart endpoints
	GetCartHandler   gin.HandlerFunc
	AddItemHandler   gin.HandlerFunc
	ClearCartHandler gin.HandlerFunc

	// Booking endpoints
	GetDraftHandler       gin.HandlerFunc
	UpdateDraftHandler    gin.HandlerFunc
	CancelDraftHandler    gin.HandlerFunc
	ConfirmBookingHandler gin.HandlerFunc
	RateServiceHandler    gin.HandlerFunc

	// Preferences endpoints
	GetPreferencesHandler    gin.HandlerFunc
	UpdatePreferencesHandler gin.HandlerFunc
	ToggleThemeHandler       gin.HandlerFunc
	ToggleLanguageHandler    gin.HandlerFunc

	// Admin endpoints
	ListOrdersHandler  gin.HandlerFunc
	ListRatingsHandler gin.HandlerFunc
}

// Deps are the services the handlers are built from.
type Deps struct {
	Catalog    catalog.Catalog
	Picker     *calendar.Picker
	Booking    booking.BookingService
	Submission booking.OrderSubmission
	Prefs      *preferences.Service
	Records    recordsRepo.RecordRepository
	Identity   identity.Provider
	AdminEmail string
	Status     *StatusHandler
}

// NewHandlerBundle assembles every handler from d.
func NewHandlerBundle(d Deps) *HandlerBundle {
	catalogHandler := NewCatalogHandler(d.Catalog, d.Prefs)
	calendarHandler := NewCalendarHandler(d.Picker, d.Prefs)
	cartHandler := NewCartHandler(d.Booking, d.Prefs)
	bookingHandler := NewBookingHandler(d.Booking, d.Prefs)
	ratingHandler := NewRatingHandler(d.Submission)
	prefsHandler := NewPreferencesHandler(d.Prefs)
	adminHandler := NewAdminHandler(d.Records)
	status := d.Status
	if status == nil {
		status = &StatusHandler{}
	}

	return &HandlerBundle{
		Identity:   d.Identity,
		AdminEmail: d.AdminEmail,

		HealthHandler: status.HealthHandler,
		StatusHandler: status.GetStatusHandler,

		ListServicesHandler: catalogHandler.ListServicesHandler,
		LocationsHandler:    catalogHandler.LocationsHandler,

		MonthHandler:         calendarHandler.MonthHandler,
		PreviousMonthHandler: calendarHandler.PreviousMonthHandler,
		NextMonthHandler:     calendarHandler.NextMonthHandler,
		SlotsHandler:         calendarHandler.SlotsHandler,

		GetCartHandler:   cartHandler.GetCartHandler,
		AddItemHandler:   cartHandler.AddItemHandler,
		ClearCartHandler: cartHandler.ClearCartHandler,

		GetDraftHandler:       bookingHandler.GetDraftHandler,
		UpdateDraftHandler:    bookingHandler.UpdateDraftHandler,
		CancelDraftHandler:    bookingHandler.CancelDraftHandler,
		ConfirmBookingHandler: bookingHandler.ConfirmBookingHandler,
		RateServiceHandler:    ratingHandler.RateServiceHandler,

		GetPreferencesHandler:    prefsHandler.GetPreferencesHandler,
		UpdatePreferencesHandler: prefsHandler.UpdatePreferencesHandler,
		ToggleThemeHandler:       prefsHandler.ToggleThemeHandler,
		ToggleLanguageHandler:    prefsHandler.ToggleLanguageHandler,

		ListOrdersHandler:  adminHandler.ListOrdersHandler,
		ListRatingsHandler: adminHandler.ListRatingsHandler,
	}
}
