package views

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"admin-dashboard/internal/mockdata"
	"admin-dashboard/internal/models"
)

func TestPaymentStatusBadge(t *testing.T) {
	tests := []struct {
		status models.PaymentStatus
		want   Badge
	}{
		{models.PaymentPaid, Badge{VariantDefault, "Paid"}},
		{models.PaymentPending, Badge{VariantSecondary, "Pending"}},
		{models.PaymentRefunded, Badge{VariantDestructive, "Refunded"}},
		{"unknown_status", Badge{VariantOutline, "unknown_status"}},
		{"", Badge{VariantOutline, ""}},
	}

	for _, tc := range tests {
		t.Run(string(tc.status), func(t *testing.T) {
			assert.Equal(t, tc.want, PaymentStatusBadge(tc.status))
		})
	}
}

func TestDeliveryStatusBadge(t *testing.T) {
	tests := []struct {
		status models.DeliveryStatus
		want   Badge
	}{
		{models.DeliveryPending, Badge{VariantSecondary, "Pending"}},
		{models.DeliveryShipped, Badge{VariantDefault, "Shipped"}},
		{models.DeliveryDelivered, Badge{VariantDefault, "Delivered"}},
		{models.DeliveryCanceled, Badge{VariantDestructive, "Canceled"}},
		{"lost", Badge{VariantOutline, "lost"}},
	}

	for _, tc := range tests {
		t.Run(string(tc.status), func(t *testing.T) {
			assert.Equal(t, tc.want, DeliveryStatusBadge(tc.status))
		})
	}
}

func TestDeliveryProgress(t *testing.T) {
	assert.Equal(t, 0, DeliveryProgress(models.DeliveryPending))
	assert.Equal(t, 50, DeliveryProgress(models.DeliveryShipped))
	assert.Equal(t, 100, DeliveryProgress(models.DeliveryDelivered))
	assert.Equal(t, 0, DeliveryProgress(models.DeliveryCanceled))
	assert.Equal(t, 0, DeliveryProgress("teleported"))

	for _, o := range mockdata.Orders() {
		assert.Contains(t, []int{0, 50, 100}, DeliveryProgress(o.DeliveryStatus))
	}
}

func TestCustomerSatisfaction(t *testing.T) {
	tests := []struct {
		name     string
		delivery models.DeliveryStatus
		payment  models.PaymentStatus
		want     Satisfaction
	}{
		{"delivered and paid", models.DeliveryDelivered, models.PaymentPaid, Happy},
		{"canceled dominates paid", models.DeliveryCanceled, models.PaymentPaid, Unhappy},
		{"delivered but refunded", models.DeliveryDelivered, models.PaymentRefunded, Unhappy},
		{"shipped and pending", models.DeliveryShipped, models.PaymentPending, Neutral},
		{"delivered but pending payment", models.DeliveryDelivered, models.PaymentPending, Neutral},
		{"unknown statuses", "x", "y", Neutral},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			order := models.Order{DeliveryStatus: tc.delivery, PaymentStatus: tc.payment}
			assert.Equal(t, tc.want, CustomerSatisfaction(order))
		})
	}
}

func TestAggregateOrderStats(t *testing.T) {
	t.Run("empty collection", func(t *testing.T) {
		stats := AggregateOrderStats(nil)
		assert.Equal(t, OrderStats{}, stats)
		assert.Equal(t, 0.0, stats.SatisfactionRate)
	})

	t.Run("pending bucket includes shipped", func(t *testing.T) {
		orders := []models.Order{
			{DeliveryStatus: models.DeliveryPending},
			{DeliveryStatus: models.DeliveryShipped},
			{DeliveryStatus: models.DeliveryDelivered},
			{DeliveryStatus: models.DeliveryCanceled},
		}
		stats := AggregateOrderStats(orders)
		assert.Equal(t, 4, stats.Total)
		assert.Equal(t, 1, stats.Delivered)
		assert.Equal(t, 2, stats.Pending)
		assert.Equal(t, 1, stats.Canceled)
		assert.InDelta(t, 0.25, stats.SatisfactionRate, 1e-9)
		assert.Equal(t, 25, stats.DeliveredPercent)
	})

	t.Run("mock orders", func(t *testing.T) {
		stats := AggregateOrderStats(mockdata.Orders())
		assert.Equal(t, 12, stats.Total)
		assert.Equal(t, 5, stats.Delivered)
		assert.Equal(t, 5, stats.Pending)
		assert.Equal(t, 42, stats.DeliveredPercent)
	})
}

func TestAggregateProductStats(t *testing.T) {
	t.Run("empty collection", func(t *testing.T) {
		assert.Equal(t, ProductStats{}, AggregateProductStats(nil))
	})

	t.Run("floors the sold share", func(t *testing.T) {
		products := []models.Product{
			{Category: "Books", Price: 10, Stock: 5},        // floor(1.5) = 1 -> 10
			{Category: "Books", Price: 2.5, Stock: 10},      // floor(3) = 3 -> 7.5
			{Category: "Toys", Price: 100, Stock: 3},        // floor(0.9) = 0 -> 0
			{Category: "Electronics", Price: 0.1, Stock: 7}, // floor(2.1) = 2 -> 0.2
		}
		stats := AggregateProductStats(products)
		assert.Equal(t, 4, stats.TotalProducts)
		assert.Equal(t, 25, stats.TotalStock)
		assert.Equal(t, 3, stats.CategoryCount)
		assert.Equal(t, 17.7, stats.EstimatedRevenue)
	})
}

func TestStockStatus(t *testing.T) {
	assert.Equal(t, "Out of Stock", StockStatus(0).Label)
	assert.Equal(t, "Low Stock", StockStatus(9).Label)
	assert.Equal(t, "Medium Stock", StockStatus(10).Label)
	assert.Equal(t, "Medium Stock", StockStatus(49).Label)
	assert.Equal(t, "In Stock", StockStatus(50).Label)
}

func TestInitials(t *testing.T) {
	assert.Equal(t, "JD", Initials("John Doe"))
	assert.Equal(t, "MVB", Initials("mary van  buren"))
	assert.Equal(t, "", Initials(""))
}

func TestTimeline(t *testing.T) {
	created := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	updated := created.Add(48 * time.Hour)

	t.Run("delivered and paid", func(t *testing.T) {
		steps := Timeline(models.Order{
			PaymentStatus: models.PaymentPaid, DeliveryStatus: models.DeliveryDelivered,
			CreatedAt: created, UpdatedAt: updated,
		})
		require.Len(t, steps, 4)
		for _, s := range steps {
			assert.Equal(t, StepCompleted, s.Status, s.Title)
			require.NotNil(t, s.Date)
		}
		assert.Equal(t, updated, *steps[3].Date)
	})

	t.Run("pending", func(t *testing.T) {
		steps := Timeline(models.Order{
			PaymentStatus: models.PaymentPending, DeliveryStatus: models.DeliveryPending,
			CreatedAt: created, UpdatedAt: updated,
		})
		assert.Equal(t, StepCompleted, steps[0].Status)
		assert.Equal(t, "Payment pending", steps[1].Description)
		assert.Equal(t, StepPending, steps[2].Status)
		assert.Nil(t, steps[2].Date)
		assert.Nil(t, steps[3].Date)
	})
}

func TestOrderDetail(t *testing.T) {
	order := mockdata.Orders()[0]
	detail := OrderDetail(order)

	assert.Equal(t, "Paid", detail.PaymentBadge.Label)
	assert.Equal(t, 100, detail.Progress)
	assert.Equal(t, Happy, detail.Satisfaction)
	assert.Equal(t, "JD", detail.ClientInitials)
	require.Len(t, detail.LineItems, 2)
	assert.Equal(t, 39.98, detail.LineItems[1].Subtotal)
	assert.Equal(t, 139.97, detail.LineItemsTotal)
	assert.False(t, detail.TotalMismatch)
}
