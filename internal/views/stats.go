package views

import (
	"math"

	"github.com/shopspring/decimal"

	"admin-dashboard/internal/models"
)

// revenueStockShare es la fracción del stock que la estimación de ingresos supone vendida
var revenueStockShare = decimal.NewFromFloat(0.3)

type OrderStats struct {
	Total            int     `json:"total"`
	Delivered        int     `json:"delivered"`
	Pending          int     `json:"pending"`
	Canceled         int     `json:"canceled"`
	DeliveredPercent int     `json:"deliveredPercent"`
	SatisfactionRate float64 `json:"satisfactionRate"`
}

// AggregateOrderStats cuenta pedidos por estado de entrega. Pending agrupa pending y shipped.
// Con cero pedidos las tasas valen 0.
func AggregateOrderStats(orders []models.Order) OrderStats {
	stats := OrderStats{Total: len(orders)}
	for _, o := range orders {
		switch o.DeliveryStatus {
		case models.DeliveryDelivered:
			stats.Delivered++
		case models.DeliveryPending, models.DeliveryShipped:
			stats.Pending++
		case models.DeliveryCanceled:
			stats.Canceled++
		}
	}
	if stats.Total == 0 {
		return stats
	}
	stats.SatisfactionRate = float64(stats.Delivered) / float64(stats.Total)
	stats.DeliveredPercent = int(math.Round(stats.SatisfactionRate * 100))
	return stats
}

type ProductStats struct {
	TotalProducts    int     `json:"totalProducts"`
	TotalStock       int     `json:"totalStock"`
	CategoryCount    int     `json:"categoryCount"`
	EstimatedRevenue float64 `json:"estimatedRevenue"`
}

// AggregateProductStats calcula stock total, categorías distintas y el ingreso estimado
// Σ price × floor(stock × 0.3). Es una heurística, no un ingreso real.
func AggregateProductStats(products []models.Product) ProductStats {
	stats := ProductStats{TotalProducts: len(products)}
	categories := make(map[string]struct{})
	revenue := decimal.Zero

	for _, p := range products {
		stats.TotalStock += p.Stock
		categories[p.Category] = struct{}{}

		sold := decimal.NewFromInt(int64(p.Stock)).Mul(revenueStockShare).Floor()
		revenue = revenue.Add(decimal.NewFromFloat(p.Price).Mul(sold))
	}

	stats.CategoryCount = len(categories)
	stats.EstimatedRevenue = revenue.Round(2).InexactFloat64()
	return stats
}
