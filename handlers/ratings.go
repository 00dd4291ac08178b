package handlers

import (
	"net/http"

	"barbershop/middleware"
	"barbershop/models"
	"barbershop/services/booking"
	"barbershop/utils"

	"github.com/gin-gonic/gin"
)

// RatingHandler records service ratings from signed-in users.
type RatingHandler struct {
	Submission booking.OrderSubmission
}

func NewRatingHandler(sub booking.OrderSubmission) *RatingHandler {
	return &RatingHandler{Submission: sub}
}

func (h *RatingHandler) RateServiceHandler(c *gin.Context) {
	var req models.RateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}
	rating, err := h.Submission.Rate(c.Request.Context(), middleware.CurrentIdentity(c), req.ServiceID, req.Rating)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rating)
}
