package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentPaid     PaymentStatus = "paid"
	PaymentPending  PaymentStatus = "pending"
	PaymentRefunded PaymentStatus = "refunded"
)

type DeliveryStatus string

const (
	DeliveryPending   DeliveryStatus = "pending"
	DeliveryShipped   DeliveryStatus = "shipped"
	DeliveryDelivered DeliveryStatus = "delivered"
	DeliveryCanceled  DeliveryStatus = "canceled"
)

var PaymentStatuses = []PaymentStatus{PaymentPaid, PaymentPending, PaymentRefunded}

var DeliveryStatuses = []DeliveryStatus{DeliveryPending, DeliveryShipped, DeliveryDelivered, DeliveryCanceled}

// OrderProduct es una línea del pedido. Price es una copia del precio al momento del pedido
// y ProductID es una referencia débil: el producto puede no existir en el catálogo.
type OrderProduct struct {
	ProductID   string  `json:"productId" bson:"product_id"`
	ProductName string  `json:"productName" bson:"product_name"`
	Quantity    int     `json:"quantity" bson:"quantity"`
	Price       float64 `json:"price" bson:"price"`
}

// Subtotal devuelve price × quantity
func (p OrderProduct) Subtotal() decimal.Decimal {
	return decimal.NewFromFloat(p.Price).Mul(decimal.NewFromInt(int64(p.Quantity)))
}

// Order representa un pedido con sus líneas
type Order struct {
	ID                   string         `json:"id" bson:"_id"`
	OrderID              string         `json:"orderId" bson:"order_id"`
	Products             []OrderProduct `json:"products" bson:"products"`
	ClientName           string         `json:"clientName" bson:"client_name"`
	DeliveryAddress      string         `json:"deliveryAddress" bson:"delivery_address"`
	PaymentStatus        PaymentStatus  `json:"paymentStatus" bson:"payment_status"`
	DeliveryStatus       DeliveryStatus `json:"deliveryStatus" bson:"delivery_status"`
	ExpectedDeliveryDate string         `json:"expectedDeliveryDate" bson:"expected_delivery_date"`
	TotalAmount          float64        `json:"totalAmount" bson:"total_amount"`
	CreatedAt            time.Time      `json:"createdAt" bson:"created_at"`
	UpdatedAt            time.Time      `json:"updatedAt" bson:"updated_at"`
}

// LineItemsTotal suma price × quantity de todas las líneas
func (o Order) LineItemsTotal() decimal.Decimal {
	total := decimal.Zero
	for _, p := range o.Products {
		total = total.Add(p.Subtotal())
	}
	return total
}

// TotalMismatch indica si TotalAmount no coincide (a centavos) con la suma de las líneas.
// TotalAmount no se recalcula al leer.
func (o Order) TotalMismatch() bool {
	return !decimal.NewFromFloat(o.TotalAmount).Round(2).Equal(o.LineItemsTotal().Round(2))
}
