package mockdata

import (
	"time"

	"admin-dashboard/internal/models"
)

type line = models.OrderProduct

// Orders devuelve una copia nueva de los pedidos simulados en cada llamada
func Orders() []models.Order {
	return []models.Order{
		order("1", "ORD-001", "John Doe", "123 Main St, New York, NY 10001", models.PaymentPaid, models.DeliveryDelivered,
			"2024-01-20", 139.97, day(2024, time.January, 15), day(2024, time.January, 19),
			line{ProductID: "1", ProductName: "Wireless Headphones", Quantity: 1, Price: 99.99},
			line{ProductID: "5", ProductName: "Cotton T-Shirt", Quantity: 2, Price: 19.99}),
		order("2", "ORD-002", "Jane Smith", "456 Oak Ave, Los Angeles, CA 90001", models.PaymentPaid, models.DeliveryShipped,
			"2024-01-22", 199.99, day(2024, time.January, 16), day(2024, time.January, 18),
			line{ProductID: "2", ProductName: "Smart Watch", Quantity: 1, Price: 199.99}),
		order("3", "ORD-003", "Bob Johnson", "789 Pine Rd, Chicago, IL 60601", models.PaymentPending, models.DeliveryPending,
			"2024-01-25", 499.00, day(2024, time.January, 17), day(2024, time.January, 17),
			line{ProductID: "3", ProductName: "Office Chair", Quantity: 2, Price: 249.5}),
		order("4", "ORD-004", "Alice Brown", "321 Elm St, Houston, TX 77001", models.PaymentRefunded, models.DeliveryCanceled,
			"2024-01-21", 89.95, day(2024, time.January, 14), day(2024, time.January, 16),
			line{ProductID: "4", ProductName: "Running Shoes", Quantity: 1, Price: 89.95}),
		order("5", "ORD-005", "Charlie Davis", "654 Maple Dr, Phoenix, AZ 85001", models.PaymentPaid, models.DeliveryDelivered,
			"2024-01-19", 748.50, day(2024, time.January, 12), day(2024, time.January, 18),
			line{ProductID: "10", ProductName: "Standing Desk", Quantity: 1, Price: 499.0},
			line{ProductID: "3", ProductName: "Office Chair", Quantity: 1, Price: 249.5}),
		order("6", "ORD-006", "Diana Evans", "987 Cedar Ln, Philadelphia, PA 19101", models.PaymentPaid, models.DeliveryCanceled,
			"2024-01-24", 177.00, day(2024, time.January, 18), day(2024, time.January, 19),
			line{ProductID: "9", ProductName: "Building Blocks Set", Quantity: 3, Price: 59.0}),
		order("7", "ORD-007", "Frank Green", "147 Birch Blvd, San Antonio, TX 78201", models.PaymentPending, models.DeliveryShipped,
			"2024-01-26", 69.00, day(2024, time.January, 19), day(2024, time.January, 20),
			line{ProductID: "7", ProductName: "Garden Hose", Quantity: 2, Price: 34.5}),
		order("8", "ORD-008", "Grace Hall", "258 Spruce Way, San Diego, CA 92101", models.PaymentPaid, models.DeliveryDelivered,
			"2024-01-18", 99.96, day(2024, time.January, 11), day(2024, time.January, 17),
			line{ProductID: "8", ProductName: "Car Phone Mount", Quantity: 4, Price: 24.99}),
		order("9", "ORD-009", "Henry Irwin", "369 Willow Ct, Dallas, TX 75201", models.PaymentPaid, models.DeliveryPending,
			"2024-01-28", 139.89, day(2024, time.January, 20), day(2024, time.January, 20),
			line{ProductID: "6", ProductName: "Go Programming Book", Quantity: 1, Price: 39.9},
			line{ProductID: "1", ProductName: "Wireless Headphones", Quantity: 1, Price: 99.99}),
		order("10", "ORD-010", "Isabel Jones", "741 Aspen Pl, San Jose, CA 95101", models.PaymentRefunded, models.DeliveryDelivered,
			"2024-01-17", 99.95, day(2024, time.January, 10), day(2024, time.January, 16),
			line{ProductID: "5", ProductName: "Cotton T-Shirt", Quantity: 5, Price: 19.99}),
		order("11", "ORD-011", "Kevin Lee", "852 Poplar St, Austin, TX 73301", models.PaymentPending, models.DeliveryShipped,
			"2024-01-27", 399.98, day(2024, time.January, 19), day(2024, time.January, 21),
			line{ProductID: "2", ProductName: "Smart Watch", Quantity: 2, Price: 199.99}),
		order("12", "ORD-012", "Laura Martin", "963 Chestnut Ave, Seattle, WA 98101", models.PaymentPaid, models.DeliveryDelivered,
			"2024-01-16", 179.90, day(2024, time.January, 9), day(2024, time.January, 15),
			line{ProductID: "4", ProductName: "Running Shoes", Quantity: 2, Price: 89.95}),
	}
}

func order(id, code, client, address string, payment models.PaymentStatus, delivery models.DeliveryStatus,
	expected string, total float64, created, updated time.Time, lines ...models.OrderProduct) models.Order {
	return models.Order{
		ID:                   id,
		OrderID:              code,
		Products:             lines,
		ClientName:           client,
		DeliveryAddress:      address,
		PaymentStatus:        payment,
		DeliveryStatus:       delivery,
		ExpectedDeliveryDate: expected,
		TotalAmount:          total,
		CreatedAt:            created,
		UpdatedAt:            updated,
	}
}
