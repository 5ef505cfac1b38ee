package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"admin-dashboard/internal/models"
)

const (
	ProductsCollection = "products"
	OrdersCollection   = "orders"
)

// Connect abre el cliente y verifica la conexión con un ping
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}
	return client, nil
}

// MongoStore persiste la colección; _id es el id string del registro
type MongoStore[T any] struct {
	collection *mongo.Collection
}

var (
	_ ProductStore = (*MongoStore[models.Product])(nil)
	_ OrderStore   = (*MongoStore[models.Order])(nil)
)

func NewMongoProductStore(db *mongo.Database) *MongoStore[models.Product] {
	return &MongoStore[models.Product]{collection: db.Collection(ProductsCollection)}
}

func NewMongoOrderStore(db *mongo.Database) *MongoStore[models.Order] {
	return &MongoStore[models.Order]{collection: db.Collection(OrdersCollection)}
}

// List devuelve la colección en orden de creación
func (s *MongoStore[T]) List(ctx context.Context) ([]T, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}})

	cursor, err := s.collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := []T{}
	if err = cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *MongoStore[T]) Get(ctx context.Context, id string) (T, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var item T
	err := s.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&item)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return item, ErrNotFound
		}
		return item, err
	}
	return item, nil
}

func (s *MongoStore[T]) Create(ctx context.Context, item T) (T, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := s.collection.InsertOne(ctx, item); err != nil {
		var zero T
		return zero, err
	}
	return item, nil
}

// Seed inserta los registros solo si la colección está vacía
func (s *MongoStore[T]) Seed(ctx context.Context, items []T) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	total, err := s.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if total > 0 || len(items) == 0 {
		return nil
	}

	docs := make([]any, 0, len(items))
	for _, item := range items {
		docs = append(docs, item)
	}
	_, err = s.collection.InsertMany(ctx, docs)
	return err
}
