package repository

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"

	"admin-dashboard/internal/mockdata"
	"admin-dashboard/internal/models"
)

func setupMongo(t *testing.T) *mongo.Database {
	t.Helper()

	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		t.Skip("MONGO_URI not set, skipping mongo integration test")
	}

	ctx := context.Background()
	client, err := Connect(ctx, uri)
	if err != nil {
		t.Skipf("MongoDB not available: %v", err)
	}

	db := client.Database("adminDashboardTest")
	t.Cleanup(func() {
		_ = db.Drop(context.Background())
		_ = client.Disconnect(context.Background())
	})
	return db
}

func TestMongoOrderStore(t *testing.T) {
	db := setupMongo(t)
	ctx := context.Background()
	store := NewMongoOrderStore(db)

	require.NoError(t, store.Seed(ctx, mockdata.Orders()))
	require.NoError(t, store.Seed(ctx, mockdata.Orders()))

	orders, err := store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, orders, 12)

	order := models.Order{
		ID:        "1700000123456",
		OrderID:   "ORD-123456",
		Products:  []models.OrderProduct{{ProductID: "1", ProductName: "Wireless Headphones", Quantity: 1, Price: 99.99}},
		CreatedAt: time.Now().UTC().Truncate(time.Millisecond),
	}
	_, err = store.Create(ctx, order)
	require.NoError(t, err)

	got, err := store.Get(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.OrderID, got.OrderID)
	assert.Equal(t, order.Products, got.Products)

	_, err = store.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMongoProductStore(t *testing.T) {
	db := setupMongo(t)
	ctx := context.Background()
	store := NewMongoProductStore(db)

	require.NoError(t, store.Seed(ctx, mockdata.Products()))

	p, err := store.Get(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "WH-001", p.SKU)

	products, err := store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, products, 10)
}
