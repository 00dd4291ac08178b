package recordsRepo

import (
	"context"
	"fmt"
	"time"

	"barbershop/config"
	"barbershop/models"

	"cloud.google.com/go/firestore"
)

type firestoreRecordRepo struct {
	client *firestore.Client
}

// NewFirestoreRecordRepo returns a RecordRepository writing to the "orders"
// and "ratings" collections.
func NewFirestoreRecordRepo(client *firestore.Client) RecordRepository {
	return &firestoreRecordRepo{client: client}
}

func (r *firestoreRecordRepo) InsertOrder(ctx context.Context, order models.Order) (string, error) {
	// Zero CreatedAt makes the serverTimestamp tag apply.
	order.CreatedAt = time.Time{}
	ref, _, err := r.client.Collection(config.OrdersCollection).Add(ctx, order)
	if err != nil {
		return "", fmt.Errorf("firestore: insert order: %w", err)
	}
	return ref.ID, nil
}

func (r *firestoreRecordRepo) InsertRating(ctx context.Context, rating models.Rating) (string, error) {
	rating.CreatedAt = time.Time{}
	ref, _, err := r.client.Collection(config.RatingsCollection).Add(ctx, rating)
	if err != nil {
		return "", fmt.Errorf("firestore: insert rating: %w", err)
	}
	return ref.ID, nil
}

func (r *firestoreRecordRepo) ListOrders(ctx context.Context) ([]models.Order, error) {
	docs, err := r.client.Collection(config.OrdersCollection).
		OrderBy("createdAt", firestore.Desc).
		Documents(ctx).
		GetAll()
	if err != nil {
		return nil, fmt.Errorf("firestore: list orders: %w", err)
	}

	orders := make([]models.Order, 0, len(docs))
	for _, doc := range docs {
		var o models.Order
		if err := doc.DataTo(&o); err != nil {
			return nil, fmt.Errorf("firestore: decode order %s: %w", doc.Ref.ID, err)
		}
		o.ID = doc.Ref.ID
		normalizeOrder(&o)
		orders = append(orders, o)
	}
	return orders, nil
}

func (r *firestoreRecordRepo) ListRatings(ctx context.Context) ([]models.Rating, error) {
	docs, err := r.client.Collection(config.RatingsCollection).
		OrderBy("createdAt", firestore.Desc).
		Documents(ctx).
		GetAll()
	if err != nil {
		return nil, fmt.Errorf("firestore: list ratings: %w", err)
	}

	ratings := make([]models.Rating, 0, len(docs))
	for _, doc := range docs {
		var rt models.Rating
		if err := doc.DataTo(&rt); err != nil {
			return nil, fmt.Errorf("firestore: decode rating %s: %w", doc.Ref.ID, err)
		}
		rt.ID = doc.Ref.ID
		ratings = append(ratings, rt)
	}
	return ratings, nil
}
