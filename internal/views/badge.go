// Package views contiene las vistas derivadas: badges, progreso de entrega,
// satisfacción del cliente y estadísticas agregadas.
package views

import "admin-dashboard/internal/models"

// Variant es la variante visual de un badge
type Variant string

const (
	VariantDefault     Variant = "default"
	VariantSecondary   Variant = "secondary"
	VariantDestructive Variant = "destructive"
	VariantOutline     Variant = "outline"
)

// Badge es una etiqueta corta que representa una categoría de estado
type Badge struct {
	Variant Variant `json:"variant"`
	Label   string  `json:"label"`
}

// BadgeTable mapea valores de una enumeración a su badge
type BadgeTable[S ~string] map[S]Badge

// Lookup devuelve el badge del estado; un estado desconocido cae en (outline, estado)
func (t BadgeTable[S]) Lookup(status S) Badge {
	if b, ok := t[status]; ok {
		return b
	}
	return Badge{Variant: VariantOutline, Label: string(status)}
}

var PaymentBadges = BadgeTable[models.PaymentStatus]{
	models.PaymentPaid:     {Variant: VariantDefault, Label: "Paid"},
	models.PaymentPending:  {Variant: VariantSecondary, Label: "Pending"},
	models.PaymentRefunded: {Variant: VariantDestructive, Label: "Refunded"},
}

var DeliveryBadges = BadgeTable[models.DeliveryStatus]{
	models.DeliveryPending:   {Variant: VariantSecondary, Label: "Pending"},
	models.DeliveryShipped:   {Variant: VariantDefault, Label: "Shipped"},
	models.DeliveryDelivered: {Variant: VariantDefault, Label: "Delivered"},
	models.DeliveryCanceled:  {Variant: VariantDestructive, Label: "Canceled"},
}

func PaymentStatusBadge(status models.PaymentStatus) Badge {
	return PaymentBadges.Lookup(status)
}

func DeliveryStatusBadge(status models.DeliveryStatus) Badge {
	return DeliveryBadges.Lookup(status)
}

// StockStatus clasifica el stock: agotado, bajo (<10), medio (<50) o disponible
func StockStatus(stock int) Badge {
	switch {
	case stock <= 0:
		return Badge{Variant: VariantDestructive, Label: "Out of Stock"}
	case stock < 10:
		return Badge{Variant: VariantSecondary, Label: "Low Stock"}
	case stock < 50:
		return Badge{Variant: VariantOutline, Label: "Medium Stock"}
	default:
		return Badge{Variant: VariantDefault, Label: "In Stock"}
	}
}

func ActiveBadge(active bool) Badge {
	if active {
		return Badge{Variant: VariantDefault, Label: "Active"}
	}
	return Badge{Variant: VariantSecondary, Label: "Inactive"}
}

func CategoryBadge(category string) Badge {
	return Badge{Variant: VariantOutline, Label: category}
}
