package views

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"admin-dashboard/internal/models"
)

var deliveryProgress = map[models.DeliveryStatus]int{
	models.DeliveryPending:   0,
	models.DeliveryShipped:   50,
	models.DeliveryDelivered: 100,
	models.DeliveryCanceled:  0,
}

// DeliveryProgress devuelve el porcentaje de entrega: 0, 50 o 100. Desconocido → 0.
func DeliveryProgress(status models.DeliveryStatus) int {
	return deliveryProgress[status]
}

// Satisfaction es la clasificación del cliente para un pedido
type Satisfaction string

const (
	Happy   Satisfaction = "Happy"
	Neutral Satisfaction = "Neutral"
	Unhappy Satisfaction = "Unhappy"
)

// CustomerSatisfaction evalúa primero el caso feliz (entregado y pagado);
// solo si falla, cancelado o reembolsado da Unhappy.
func CustomerSatisfaction(order models.Order) Satisfaction {
	if order.DeliveryStatus == models.DeliveryDelivered && order.PaymentStatus == models.PaymentPaid {
		return Happy
	}
	if order.DeliveryStatus == models.DeliveryCanceled || order.PaymentStatus == models.PaymentRefunded {
		return Unhappy
	}
	return Neutral
}

// Initials toma la primera letra de cada palabra del nombre, en mayúsculas
func Initials(name string) string {
	var b strings.Builder
	for _, word := range strings.Fields(name) {
		r, _ := utf8.DecodeRuneInString(word)
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}
