package handlers

import (
	"errors"
	"net/http"

	"barbershop/middleware"
	"barbershop/services/booking"
	"barbershop/services/calendar"
	"barbershop/services/cart"
	"barbershop/services/preferences"
	"barbershop/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var badRequestErrors = []error{
	booking.ErrInvalidName,
	booking.ErrInvalidRating,
	booking.ErrUnknownService,
	calendar.ErrInvalidDate,
	calendar.ErrDateUnavailable,
	calendar.ErrInvalidTime,
	cart.ErrUnknownService,
	preferences.ErrInvalidTheme,
	preferences.ErrInvalidLanguage,
}

// respondError maps a service error onto a status code and error body.
func respondError(c *gin.Context, err error) {
	var subErr *booking.SubmissionError
	switch {
	case errors.Is(err, booking.ErrIdentityRequired) && middleware.IdentityUnavailable(c):
		utils.JSONError(c, http.StatusServiceUnavailable, utils.UnavailableAdvisory, "sign-in is not configured")
	case errors.Is(err, booking.ErrIdentityRequired):
		c.AbortWithStatusJSON(http.StatusUnauthorized, utils.ErrorResponse{
			Message:  "Sign in to confirm your booking",
			Redirect: "/login",
		})
	case errors.Is(err, booking.ErrNotConfigured):
		utils.JSONError(c, http.StatusServiceUnavailable, utils.UnavailableAdvisory, "persistence is not configured")
	case isBadRequest(err):
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
	case errors.As(err, &subErr):
		getLogger(c).Error("Remote write failed", zap.String("stage", subErr.Stage), zap.Error(subErr.Err))
		utils.JSONError(c, http.StatusBadGateway, "Could not save, please try again", "")
	default:
		getLogger(c).Error("Unhandled error", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error", "")
	}
}

func isBadRequest(err error) bool {
	for _, target := range badRequestErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
