// Package mockdata contiene los registros estáticos que sirven de almacén simulado.
package mockdata

import (
	"time"

	"admin-dashboard/internal/models"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 10, 0, 0, 0, time.UTC)
}

// Products devuelve una copia nueva del catálogo simulado en cada llamada
func Products() []models.Product {
	return []models.Product{
		{ID: "1", Name: "Wireless Headphones", SKU: "WH-001", Category: "Electronics", Price: 99.99, Stock: 45,
			Description: "High-quality wireless headphones with noise cancellation", Active: true,
			CreatedAt: day(2024, time.January, 15), UpdatedAt: day(2024, time.January, 15)},
		{ID: "2", Name: "Smart Watch", SKU: "SW-002", Category: "Electronics", Price: 199.99, Stock: 23,
			Description: "Fitness tracking smartwatch with heart rate monitor", Active: true,
			CreatedAt: day(2024, time.January, 14), UpdatedAt: day(2024, time.January, 14)},
		{ID: "3", Name: "Office Chair", SKU: "OC-003", Category: "Furniture", Price: 249.5, Stock: 8,
			Description: "Ergonomic office chair with lumbar support", Active: true,
			CreatedAt: day(2024, time.January, 13), UpdatedAt: day(2024, time.January, 16)},
		{ID: "4", Name: "Running Shoes", SKU: "RS-004", Category: "Sports", Price: 89.95, Stock: 120,
			Description: "Lightweight running shoes for daily training", Active: true,
			CreatedAt: day(2024, time.January, 12), UpdatedAt: day(2024, time.January, 12)},
		{ID: "5", Name: "Cotton T-Shirt", SKU: "CT-005", Category: "Clothing", Price: 19.99, Stock: 300,
			Description: "Organic cotton t-shirt available in several colors", Active: true,
			CreatedAt: day(2024, time.January, 11), UpdatedAt: day(2024, time.January, 11)},
		{ID: "6", Name: "Go Programming Book", SKU: "GB-006", Category: "Books", Price: 39.9, Stock: 0,
			Description: "A practical guide to building services in Go", Active: false,
			CreatedAt: day(2024, time.January, 10), UpdatedAt: day(2024, time.January, 18)},
		{ID: "7", Name: "Garden Hose", SKU: "GH-007", Category: "Home & Garden", Price: 34.5, Stock: 60,
			Description: "Expandable garden hose with spray nozzle", Active: true,
			CreatedAt: day(2024, time.January, 9), UpdatedAt: day(2024, time.January, 9)},
		{ID: "8", Name: "Car Phone Mount", SKU: "CM-008", Category: "Automotive", Price: 24.99, Stock: 5,
			Description: "Magnetic dashboard phone mount", Active: true,
			CreatedAt: day(2024, time.January, 8), UpdatedAt: day(2024, time.January, 8)},
		{ID: "9", Name: "Building Blocks Set", SKU: "BB-009", Category: "Toys", Price: 59.0, Stock: 32,
			Description: "500 piece creative building blocks set", Active: true,
			CreatedAt: day(2024, time.January, 7), UpdatedAt: day(2024, time.January, 7)},
		{ID: "10", Name: "Standing Desk", SKU: "SD-010", Category: "Furniture", Price: 499.0, Stock: 12,
			Description: "Electric height adjustable standing desk", Active: true,
			CreatedAt: day(2024, time.January, 6), UpdatedAt: day(2024, time.January, 6)},
	}
}
