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

// CartHandler exposes the per-client cart.
type CartHandler struct {
	Booking booking.BookingService
	Prefs   *preferences.Service
}

func NewCartHandler(bs booking.BookingService, prefs *preferences.Service) *CartHandler {
	return &CartHandler{Booking: bs, Prefs: prefs}
}

func (h *CartHandler) GetCartHandler(c *gin.Context) {
	sess := h.Booking.Open(c.Request.Context(), middleware.ClientID(c))
	c.JSON(http.StatusOK, sess.Cart().View(requestLanguage(c, h.Prefs)))
}

// AddItemHandler adds one unit of a catalog service.
func (h *CartHandler) AddItemHandler(c *gin.Context) {
	var req models.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	ctx := c.Request.Context()
	sess := h.Booking.Open(ctx, middleware.ClientID(c))
	svc, err := sess.Cart().AddByID(ctx, req.ServiceID)
	if err != nil {
		respondError(c, err)
		return
	}
	getLogger(c).Debug("Added to cart", zap.String("serviceID", svc.ID))
	c.JSON(http.StatusOK, sess.Cart().View(requestLanguage(c, h.Prefs)))
}

// ClearCartHandler empties the cart. Clearing an empty cart is not an error.
func (h *CartHandler) ClearCartHandler(c *gin.Context) {
	ctx := c.Request.Context()
	sess := h.Booking.Open(ctx, middleware.ClientID(c))
	sess.Cart().Clear(ctx)
	c.JSON(http.StatusOK, sess.Cart().View(requestLanguage(c, h.Prefs)))
}
