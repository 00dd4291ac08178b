package recordsRepo

import (
	"context"

	"barbershop/models"
)

// RecordRepository is the append-only persistence sink for confirmed orders
// and ratings. Each insert gets a store-generated id and a server-side
// createdAt; listings are newest first.
type RecordRepository interface {
	InsertOrder(ctx context.Context, order models.Order) (string, error)
	InsertRating(ctx context.Context, rating models.Rating) (string, error)
	ListOrders(ctx context.Context) ([]models.Order, error)
	ListRatings(ctx context.Context) ([]models.Rating, error)
}

// normalizeOrder applies the defaults used when older records miss fields.
func normalizeOrder(o *models.Order) {
	if o.Cart == nil {
		o.Cart = []models.OrderLine{}
	}
	for i := range o.Cart {
		if o.Cart[i].Quantity <= 0 {
			o.Cart[i].Quantity = 1
		}
	}
}
