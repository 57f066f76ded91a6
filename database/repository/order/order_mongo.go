package orderRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"viavela/database"
	"viavela/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoOrderRepo implements OrderRepository using MongoDB.
type MongoOrderRepo struct {
	orderColl *mongo.Collection
}

// NewMongoOrderRepo constructs a new instance of MongoOrderRepo.
func NewMongoOrderRepo() OrderRepository {
	db := database.GetDatabase()
	return &MongoOrderRepo{
		orderColl: db.Collection("orders"),
	}
}

func (repo *MongoOrderRepo) Create(ctx context.Context, order *models.Order) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := repo.orderColl.InsertOne(ctx, order); err != nil {
		return fmt.Errorf("error creating order %s: %w", order.ID, err)
	}
	return nil
}

func (repo *MongoOrderRepo) GetByID(ctx context.Context, orderID string) (*models.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var order models.Order
	filter := bson.M{"id": orderID}
	if err := repo.orderColl.FindOne(ctx, filter).Decode(&order); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("error fetching order %s: %w", orderID, err)
	}
	return &order, nil
}

func (repo *MongoOrderRepo) GetByProvider(ctx context.Context, providerID string) ([]models.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"provider_id": providerID}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := repo.orderColl.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error fetching orders for provider %s: %w", providerID, err)
	}
	defer cursor.Close(ctx)

	var orders []models.Order
	for cursor.Next(ctx) {
		var o models.Order
		if err := cursor.Decode(&o); err != nil {
			return nil, fmt.Errorf("error decoding order: %w", err)
		}
		orders = append(orders, o)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return orders, nil
}
