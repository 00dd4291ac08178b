package booking

import (
	"context"

	"barbershop/models"

	"github.com/shopspring/decimal"
)

// OrderSubmission hands finalized bookings and ratings to the persistence sink.
type OrderSubmission interface {
	Confirm(ctx context.Context, identity *models.Identity, lines []models.CartLine, total decimal.Decimal, draft models.BookingDraft, lang models.Language) (*models.Order, error)
	Rate(ctx context.Context, identity *models.Identity, serviceID string, value int) (*models.Rating, error)
}

// BookingService opens per-client booking sessions and serialises submissions.
type BookingService interface {
	Open(ctx context.Context, clientID string) *Session
	Submit(ctx context.Context, clientID string, identity *models.Identity, lang models.Language) (models.SubmitResult, error)
}
