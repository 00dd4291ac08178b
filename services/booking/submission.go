package booking

import (
	"context"
	"fmt"

	recordsRepo "barbershop/database/repository/records"
	"barbershop/models"
	"barbershop/services/catalog"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// DefaultOrderSubmission writes to a RecordRepository. A nil Records means
// persistence is not configured and every write returns ErrNotConfigured.
type DefaultOrderSubmission struct {
	Records recordsRepo.RecordRepository
	Catalog catalog.Catalog
	Logger  *zap.Logger
}

func (s *DefaultOrderSubmission) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}

// Confirm writes one order holding the cart snapshot, total and booking
// fields. The sink sets createdAt. Nothing is retried.
func (s *DefaultOrderSubmission) Confirm(ctx context.Context, identity *models.Identity, lines []models.CartLine, total decimal.Decimal, draft models.BookingDraft, lang models.Language) (*models.Order, error) {
	if identity == nil {
		return nil, ErrIdentityRequired
	}
	if s.Records == nil {
		return nil, ErrNotConfigured
	}

	order := models.Order{
		UserID:      identity.UID,
		UserEmail:   identity.Email,
		Cart:        snapshot(lines, lang),
		Total:       total.InexactFloat64(),
		BookingName: draft.Name,
		BookingDate: draft.Date,
		BookingTime: draft.Time,
	}

	id, err := s.Records.InsertOrder(ctx, order)
	if err != nil {
		s.logger().Error("Failed to save order",
			zap.String("userID", identity.UID),
			zap.String("bookingDate", draft.Date),
			zap.Error(err))
		return nil, newSubmissionError("insert order", err)
	}
	order.ID = id
	s.logger().Info("Order confirmed", zap.String("orderID", id), zap.String("userID", identity.UID))
	return &order, nil
}

// Rate records one rating. Repeated ratings for the same service accumulate.
func (s *DefaultOrderSubmission) Rate(ctx context.Context, identity *models.Identity, serviceID string, value int) (*models.Rating, error) {
	if identity == nil {
		return nil, ErrIdentityRequired
	}
	if value < 1 || value > 5 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidRating, value)
	}
	if s.Catalog != nil {
		if _, ok := s.Catalog.Service(serviceID); !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownService, serviceID)
		}
	}
	if s.Records == nil {
		return nil, ErrNotConfigured
	}

	rating := models.Rating{
		UserID:    identity.UID,
		UserEmail: identity.Email,
		ServiceID: serviceID,
		Rating:    value,
	}
	id, err := s.Records.InsertRating(ctx, rating)
	if err != nil {
		s.logger().Error("Failed to save rating",
			zap.String("userID", identity.UID),
			zap.String("serviceID", serviceID),
			zap.Error(err))
		return nil, newSubmissionError("insert rating", err)
	}
	rating.ID = id
	return &rating, nil
}

func snapshot(lines []models.CartLine, lang models.Language) []models.OrderLine {
	out := make([]models.OrderLine, 0, len(lines))
	for _, l := range lines {
		out = append(out, models.OrderLine{
			Service: models.OrderService{
				ID:    l.Service.ID,
				Name:  l.Service.Name.In(lang),
				Price: l.Service.Price.InexactFloat64(),
			},
			Quantity: l.Quantity,
		})
	}
	return out
}
