package booking

import (
	"context"
	"time"

	kvRepo "barbershop/database/repository/kv"
	"barbershop/models"
	"barbershop/services/calendar"
	"barbershop/services/cart"
	"barbershop/services/catalog"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	KV         kvRepo.Store
	Catalog    catalog.Catalog
	Picker     *calendar.Picker
	Submission OrderSubmission
	CartTTL    time.Duration
	DraftTTL   time.Duration
	Logger     *zap.Logger

	inflight singleflight.Group
}

// Open loads the cart and draft of clientID.
func (s *DefaultBookingService) Open(ctx context.Context, clientID string) *Session {
	logger := s.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	sess := &Session{
		clientID:   clientID,
		kv:         s.KV,
		cart:       cart.Open(ctx, s.KV, s.Catalog, clientID, s.CartTTL, logger),
		picker:     s.Picker,
		submission: s.Submission,
		draftTTL:   s.DraftTTL,
		logger:     logger.With(zap.String("clientID", clientID)),
	}
	sess.loadDraft(ctx)
	return sess
}

// Submit opens the client's session and submits it. Concurrent submits for
// the same client and user share one write and one result. The shared write
// does not stop when the first caller's request is cancelled.
func (s *DefaultBookingService) Submit(ctx context.Context, clientID string, identity *models.Identity, lang models.Language) (models.SubmitResult, error) {
	shared := context.WithoutCancel(ctx)
	v, err, _ := s.inflight.Do(submitKey(clientID, identity), func() (interface{}, error) {
		return s.Open(shared, clientID).Submit(shared, identity, lang)
	})
	if err != nil {
		return models.SubmitResult{}, err
	}
	return v.(models.SubmitResult), nil
}

func submitKey(clientID string, identity *models.Identity) string {
	if identity == nil {
		return clientID + "|"
	}
	return clientID + "|" + identity.UID
}
