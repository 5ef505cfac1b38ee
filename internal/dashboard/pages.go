package dashboard

import (
	"fmt"
	"math"

	"admin-dashboard/internal/charts"
	"admin-dashboard/internal/models"
	"admin-dashboard/internal/views"
)

type OrdersPage struct {
	Cards         []StatCard       `json:"cards"`
	Stats         views.OrderStats `json:"stats"`
	DeliveryChart []charts.Slice   `json:"deliveryChart"`
	PaymentChart  []charts.Slice   `json:"paymentChart"`
}

func BuildOrdersPage(orders []models.Order) OrdersPage {
	stats := views.AggregateOrderStats(orders)

	delivered := monthly("Delivered", formatInt(stats.Delivered), "12.3%")
	delivered.Description = fmt.Sprintf("%d%% of total", stats.DeliveredPercent)

	return OrdersPage{
		Cards: []StatCard{
			monthly("Total Orders", formatInt(stats.Total), "18.7%"),
			delivered,
			monthly("Pending", formatInt(stats.Pending), "5.2%"),
			monthly("Satisfaction", fmt.Sprintf("%d%%", int(math.Round(stats.SatisfactionRate*100))), "8.9%"),
		},
		Stats:         stats,
		DeliveryChart: charts.DeliveryCounts(orders),
		PaymentChart:  charts.PaymentCounts(orders),
	}
}

type ProductsPage struct {
	Cards         []StatCard         `json:"cards"`
	Stats         views.ProductStats `json:"stats"`
	CategoryChart []charts.Slice     `json:"categoryChart"`
}

func BuildProductsPage(products []models.Product) ProductsPage {
	stats := views.AggregateProductStats(products)
	return ProductsPage{
		Cards: []StatCard{
			monthly("Total Products", formatInt(stats.TotalProducts), "12.5%"),
			monthly("Total Stock", formatInt(stats.TotalStock), "8.2%"),
			monthly("Total Revenue", "$"+formatNumber(stats.EstimatedRevenue), "15.3%"),
			monthly("Categories", formatInt(stats.CategoryCount), "2.1%"),
		},
		Stats:         stats,
		CategoryChart: charts.CategoryCounts(products),
	}
}

// ChartsPage es una página de tarjetas estáticas más gráficos del fixture
type ChartsPage struct {
	Cards  []StatCard     `json:"cards"`
	Charts []charts.Chart `json:"charts"`
}

func chartList(f *charts.Fixture, names ...string) []charts.Chart {
	out := make([]charts.Chart, 0, len(names))
	for _, n := range names {
		if c, ok := charts.ByName(f, n); ok {
			out = append(out, c)
		}
	}
	return out
}

func Overview(f *charts.Fixture) ChartsPage {
	return ChartsPage{
		Cards: []StatCard{
			monthly("Total Sales", "$182,450", "20.1%"),
			monthly("Total Clients", "1,473", "15.3%"),
			monthly("Total Products", "674", "12.5%"),
			monthly("Stock", "12,874", "8.2%"),
		},
		Charts: chartList(f, charts.Names...),
	}
}

func Sales(f *charts.Fixture) ChartsPage {
	return ChartsPage{
		Cards: []StatCard{
			monthly("Total Revenue", "$42,300", "36.2%"),
			monthly("Avg. Order Value", "$78.50", "5.2%"),
			monthly("Total Sales", "128,500", "18.7%"),
			monthly("Growth Rate", "36.2%", "2.1%"),
		},
		Charts: chartList(f, "sales", "categories"),
	}
}

type UsersPage struct {
	Cards   []StatCard      `json:"cards"`
	Clients []charts.Client `json:"clients"`
}

func Users(f *charts.Fixture) UsersPage {
	return UsersPage{
		Cards: []StatCard{
			monthly("Total Clients", "7,670", "12.3%"),
			monthly("New Clients", "860", "8.7%"),
			monthly("Active Clients", "6,420", "15.2%"),
			monthly("Returning Clients", "4,230", "6.8%"),
		},
		Clients: charts.Clients(f),
	}
}
