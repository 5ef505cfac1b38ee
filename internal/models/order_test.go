package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrder_LineItemsTotal(t *testing.T) {
	order := Order{
		Products: []OrderProduct{
			{ProductID: "1", Quantity: 2, Price: 19.99},
			{ProductID: "2", Quantity: 3, Price: 0.1},
		},
		TotalAmount: 40.28,
	}

	assert.Equal(t, "40.28", order.LineItemsTotal().StringFixed(2))
	assert.False(t, order.TotalMismatch())

	order.TotalAmount = 40.00
	assert.True(t, order.TotalMismatch())
}

func TestOrder_LineItemsTotalEmpty(t *testing.T) {
	var order Order
	assert.True(t, order.LineItemsTotal().IsZero())
	assert.False(t, order.TotalMismatch())
}

func TestIsKnownCategory(t *testing.T) {
	assert.True(t, IsKnownCategory("Home & Garden"))
	assert.False(t, IsKnownCategory("home & garden"))
	assert.False(t, IsKnownCategory(""))
}
