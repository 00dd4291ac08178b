package handlers

import (
	"net/http"

	recordsRepo "barbershop/database/repository/records"
	"barbershop/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler lists stored orders and ratings for the shop owner.
type AdminHandler struct {
	Records recordsRepo.RecordRepository
}

func NewAdminHandler(records recordsRepo.RecordRepository) *AdminHandler {
	return &AdminHandler{Records: records}
}

// ListOrdersHandler returns all orders, newest first.
func (ah *AdminHandler) ListOrdersHandler(c *gin.Context) {
	if ah.Records == nil {
		respondError(c, booking.ErrNotConfigured)
		return
	}
	orders, err := ah.Records.ListOrders(c.Request.Context())
	if err != nil {
		zap.L().Error("Failed to fetch orders", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders, "count": len(orders)})
}

// ListRatingsHandler returns all ratings, newest first.
func (ah *AdminHandler) ListRatingsHandler(c *gin.Context) {
	if ah.Records == nil {
		respondError(c, booking.ErrNotConfigured)
		return
	}
	ratings, err := ah.Records.ListRatings(c.Request.Context())
	if err != nil {
		zap.L().Error("Failed to fetch ratings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch ratings"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ratings": ratings, "count": len(ratings)})
}
