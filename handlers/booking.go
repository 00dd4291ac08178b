package handlers

import (
	"net/http"

	"barbershop/middleware"
	"barbershop/models"
	"barbershop/services/booking"
	"barbershop/services/preferences"
	"barbershop/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler manages the booking draft and its confirmation.
type BookingHandler struct {
	Booking booking.BookingService
	Prefs   *preferences.Service
}

func NewBookingHandler(bs booking.BookingService, prefs *preferences.Service) *BookingHandler {
	return &BookingHandler{Booking: bs, Prefs: prefs}
}

func (h *BookingHandler) GetDraftHandler(c *gin.Context) {
	sess := h.Booking.Open(c.Request.Context(), middleware.ClientID(c))
	c.JSON(http.StatusOK, sess.View())
}

// UpdateDraftHandler sets any of name, date and time. An empty string clears
// the field; a rejected field leaves the whole draft unchanged.
func (h *BookingHandler) UpdateDraftHandler(c *gin.Context) {
	var req models.UpdateDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	ctx := c.Request.Context()
	sess := h.Booking.Open(ctx, middleware.ClientID(c))
	if err := sess.Update(ctx, req); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sess.View())
}

func (h *BookingHandler) CancelDraftHandler(c *gin.Context) {
	ctx := c.Request.Context()
	sess := h.Booking.Open(ctx, middleware.ClientID(c))
	sess.Cancel(ctx)
	c.JSON(http.StatusOK, sess.View())
}

// ConfirmBookingHandler submits the cart and draft as one order. An
// incomplete booking is answered with submitted=false and nothing is sent.
func (h *BookingHandler) ConfirmBookingHandler(c *gin.Context) {
	clientID := middleware.ClientID(c)
	res, err := h.Booking.Submit(c.Request.Context(), clientID, middleware.CurrentIdentity(c), requestLanguage(c, h.Prefs))
	if err != nil {
		respondError(c, err)
		return
	}
	if res.Submitted {
		getLogger(c).Info("Booking confirmed", zap.String("orderID", res.Order.ID))
	}
	c.JSON(http.StatusOK, res)
}
