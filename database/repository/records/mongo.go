package recordsRepo

import (
	"context"
	"fmt"
	"time"

	"barbershop/config"
	"barbershop/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoRecordRepo struct {
	orders  *mongo.Collection
	ratings *mongo.Collection
}

// NewMongoRecordRepo returns a RecordRepository instance using MongoDB.
func NewMongoRecordRepo(db *mongo.Database) RecordRepository {
	return &mongoRecordRepo{
		orders:  db.Collection(config.OrdersCollection),
		ratings: db.Collection(config.RatingsCollection),
	}
}

func newestFirst() *options.FindOptions {
	return options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
}

// InsertOrder stamps id and createdAt here, on the server, never from the client.
func (r *mongoRecordRepo) InsertOrder(ctx context.Context, order models.Order) (string, error) {
	order.ID = uuid.New().String()
	order.CreatedAt = time.Now().UTC()

	if _, err := r.orders.InsertOne(ctx, order); err != nil {
		return "", fmt.Errorf("mongo: insert order: %w", err)
	}
	return order.ID, nil
}

func (r *mongoRecordRepo) InsertRating(ctx context.Context, rating models.Rating) (string, error) {
	rating.ID = uuid.New().String()
	rating.CreatedAt = time.Now().UTC()

	if _, err := r.ratings.InsertOne(ctx, rating); err != nil {
		return "", fmt.Errorf("mongo: insert rating: %w", err)
	}
	return rating.ID, nil
}

func (r *mongoRecordRepo) ListOrders(ctx context.Context) ([]models.Order, error) {
	cursor, err := r.orders.Find(ctx, bson.M{}, newestFirst())
	if err != nil {
		return nil, fmt.Errorf("mongo: list orders: %w", err)
	}
	defer cursor.Close(ctx)

	orders := []models.Order{}
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, fmt.Errorf("mongo: decode orders: %w", err)
	}
	for i := range orders {
		normalizeOrder(&orders[i])
	}
	return orders, nil
}

func (r *mongoRecordRepo) ListRatings(ctx context.Context) ([]models.Rating, error) {
	cursor, err := r.ratings.Find(ctx, bson.M{}, newestFirst())
	if err != nil {
		return nil, fmt.Errorf("mongo: list ratings: %w", err)
	}
	defer cursor.Close(ctx)

	ratings := []models.Rating{}
	if err := cursor.All(ctx, &ratings); err != nil {
		return nil, fmt.Errorf("mongo: decode ratings: %w", err)
	}
	return ratings, nil
}
