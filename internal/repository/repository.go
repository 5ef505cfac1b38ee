// Package repository define los almacenes de productos y pedidos y sus backends:
// memoria (datos de prueba) y MongoDB.
package repository

import (
	"context"
	"errors"
	"slices"

	"admin-dashboard/internal/models"
)

var ErrNotFound = errors.New("record not found")

type ProductStore interface {
	List(ctx context.Context) ([]models.Product, error)
	Get(ctx context.Context, id string) (models.Product, error)
	Create(ctx context.Context, product models.Product) (models.Product, error)
}

type OrderStore interface {
	List(ctx context.Context) ([]models.Order, error)
	Get(ctx context.Context, id string) (models.Order, error)
	Create(ctx context.Context, order models.Order) (models.Order, error)
}

func productID(p models.Product) string { return p.ID }

func orderID(o models.Order) string { return o.ID }

func cloneProduct(p models.Product) models.Product { return p }

func cloneOrder(o models.Order) models.Order {
	o.Products = slices.Clone(o.Products)
	return o
}
