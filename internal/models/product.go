package models

import "time"

// ProductCategories es el conjunto fijo de categorías del catálogo
var ProductCategories = []string{
	"Electronics",
	"Furniture",
	"Clothing",
	"Books",
	"Sports",
	"Home & Garden",
	"Automotive",
	"Toys",
}

// Product representa un producto del catálogo.
// El precio > 0 solo se exige en el formulario de creación; registros existentes pueden violarlo.
type Product struct {
	ID          string    `json:"id" bson:"_id"`
	Name        string    `json:"name" bson:"name"`
	SKU         string    `json:"sku" bson:"sku"`
	Category    string    `json:"category" bson:"category"`
	Price       float64   `json:"price" bson:"price"`
	Stock       int       `json:"stock" bson:"stock"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	Image       string    `json:"image,omitempty" bson:"image,omitempty"`
	Active      bool      `json:"active" bson:"active"`
	CreatedAt   time.Time `json:"createdAt" bson:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" bson:"updated_at"`
}

// IsKnownCategory indica si la categoría pertenece al conjunto fijo
func IsKnownCategory(category string) bool {
	for _, c := range ProductCategories {
		if c == category {
			return true
		}
	}
	return false
}
