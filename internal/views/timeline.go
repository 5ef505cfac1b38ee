package views

import (
	"time"

	"github.com/shopspring/decimal"

	"admin-dashboard/internal/models"
)

type StepStatus string

const (
	StepCompleted StepStatus = "completed"
	StepPending   StepStatus = "pending"
)

// TimelineStep es un paso del seguimiento del pedido. Date es nil mientras el paso no ocurrió.
type TimelineStep struct {
	ID          int        `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Date        *time.Time `json:"date"`
	Status      StepStatus `json:"status"`
}

// Timeline arma los cuatro pasos: creado, pago, envío y entrega
func Timeline(order models.Order) []TimelineStep {
	paid := order.PaymentStatus == models.PaymentPaid
	shipped := order.DeliveryStatus == models.DeliveryShipped || order.DeliveryStatus == models.DeliveryDelivered
	delivered := order.DeliveryStatus == models.DeliveryDelivered

	created := order.CreatedAt
	updated := order.UpdatedAt

	steps := []TimelineStep{
		{ID: 1, Title: "Order Placed", Description: "Order was successfully placed", Date: &created, Status: StepCompleted},
		{ID: 2, Title: "Payment Processed", Description: "Payment pending", Date: &created, Status: StepPending},
		{ID: 3, Title: "Order Shipped", Description: "Preparing for shipment", Status: StepPending},
		{ID: 4, Title: "Order Delivered", Description: "Out for delivery", Status: StepPending},
	}
	if paid {
		steps[1].Description = "Payment confirmed"
		steps[1].Status = StepCompleted
	}
	if shipped {
		steps[2].Description = "Order has been shipped"
		steps[2].Date = &updated
		steps[2].Status = StepCompleted
	}
	if delivered {
		steps[3].Description = "Order has been delivered"
		steps[3].Date = &updated
		steps[3].Status = StepCompleted
	}
	return steps
}

type LineItemView struct {
	models.OrderProduct
	Subtotal float64 `json:"subtotal"`
}

// OrderDetailView reúne todo lo que muestra la página de detalle de un pedido
type OrderDetailView struct {
	Order          models.Order   `json:"order"`
	PaymentBadge   Badge          `json:"paymentBadge"`
	DeliveryBadge  Badge          `json:"deliveryBadge"`
	Progress       int            `json:"progress"`
	Satisfaction   Satisfaction   `json:"satisfaction"`
	ClientInitials string         `json:"clientInitials"`
	LineItems      []LineItemView `json:"lineItems"`
	LineItemsTotal float64        `json:"lineItemsTotal"`
	TotalMismatch  bool           `json:"totalMismatch"`
	Timeline       []TimelineStep `json:"timeline"`
}

func OrderDetail(order models.Order) OrderDetailView {
	items := make([]LineItemView, 0, len(order.Products))
	for _, p := range order.Products {
		items = append(items, LineItemView{OrderProduct: p, Subtotal: money(p.Subtotal())})
	}
	return OrderDetailView{
		Order:          order,
		PaymentBadge:   PaymentStatusBadge(order.PaymentStatus),
		DeliveryBadge:  DeliveryStatusBadge(order.DeliveryStatus),
		Progress:       DeliveryProgress(order.DeliveryStatus),
		Satisfaction:   CustomerSatisfaction(order),
		ClientInitials: Initials(order.ClientName),
		LineItems:      items,
		LineItemsTotal: money(order.LineItemsTotal()),
		TotalMismatch:  order.TotalMismatch(),
		Timeline:       Timeline(order),
	}
}

func money(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}
