package dashboard

import (
	"admin-dashboard/internal/models"
	"admin-dashboard/internal/table"
	"admin-dashboard/internal/views"
)

// ClientCell es la celda de cliente con avatar de iniciales
type ClientCell struct {
	Name     string `json:"name"`
	Initials string `json:"initials"`
}

// LinkCell apunta a la página de detalle
type LinkCell struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}

type ProductCell struct {
	Name  string `json:"name"`
	Image string `json:"image,omitempty"`
}

// StockCell muestra la cantidad junto al badge de nivel de stock
type StockCell struct {
	Stock int         `json:"stock"`
	Badge views.Badge `json:"badge"`
}

// OrderOptions configura la tabla de pedidos: búsqueda por orderId, fila expandible
func OrderOptions(pageSize int) table.Options[models.Order] {
	return table.Options[models.Order]{
		Columns:   OrderColumns(),
		SearchKey: "orderId",
		PageSize:  pageSize,
		RowID:     func(o models.Order) string { return o.ID },
		Detail:    func(o models.Order) any { return OrderExpansion(o) },
	}
}

func OrderColumns() []table.Column[models.Order] {
	return []table.Column[models.Order]{
		{
			Key:      "orderId",
			Header:   "Order ID",
			Accessor: func(o models.Order) any { return o.OrderID },
			Display: func(o models.Order) any {
				return LinkCell{Label: o.OrderID, Href: "/dashboard/orders/" + o.ID}
			},
			Render:   table.RenderLink,
			Sortable: true,
		},
		{
			Key:      "clientName",
			Header:   "Client",
			Accessor: func(o models.Order) any { return o.ClientName },
			Display: func(o models.Order) any {
				return ClientCell{Name: o.ClientName, Initials: views.Initials(o.ClientName)}
			},
			Render:   table.RenderText,
			Sortable: true,
			Hideable: true,
		},
		{
			Key:      "paymentStatus",
			Header:   "Payment",
			Accessor: func(o models.Order) any { return o.PaymentStatus },
			Display:  func(o models.Order) any { return views.PaymentStatusBadge(o.PaymentStatus) },
			Render:   table.RenderBadge,
			Sortable: true,
			Hideable: true,
		},
		{
			Key:      "deliveryStatus",
			Header:   "Delivery",
			Accessor: func(o models.Order) any { return o.DeliveryStatus },
			Display:  func(o models.Order) any { return views.DeliveryStatusBadge(o.DeliveryStatus) },
			Render:   table.RenderBadge,
			Sortable: true,
			Hideable: true,
		},
		{
			Key:      "totalAmount",
			Header:   "Total",
			Accessor: func(o models.Order) any { return o.TotalAmount },
			Render:   table.RenderCurrency,
			Sortable: true,
			Hideable: true,
		},
		{
			Key:      "progress",
			Header:   "Progress",
			Accessor: func(o models.Order) any { return views.DeliveryProgress(o.DeliveryStatus) },
			Render:   table.RenderProgress,
			Sortable: true,
			Hideable: true,
		},
		{
			Key:      "feedback",
			Header:   "Feedback",
			Accessor: func(o models.Order) any { return views.CustomerSatisfaction(o) },
			Render:   table.RenderSatisfaction,
			Sortable: true,
			Hideable: true,
		},
		{
			Key:      "createdAt",
			Header:   "Created",
			Accessor: func(o models.Order) any { return o.CreatedAt },
			Render:   table.RenderDate,
			Sortable: true,
		},
	}
}

// OrderExpansionView es el panel de una fila de pedido expandida
type OrderExpansionView struct {
	DeliveryAddress      string               `json:"deliveryAddress"`
	ExpectedDeliveryDate string               `json:"expectedDeliveryDate"`
	LineItems            []views.LineItemView `json:"lineItems"`
}

func OrderExpansion(o models.Order) OrderExpansionView {
	detail := views.OrderDetail(o)
	return OrderExpansionView{
		DeliveryAddress:      o.DeliveryAddress,
		ExpectedDeliveryDate: o.ExpectedDeliveryDate,
		LineItems:            detail.LineItems,
	}
}

// ProductOptions configura la tabla de productos con búsqueda por nombre
func ProductOptions(pageSize int) table.Options[models.Product] {
	return table.Options[models.Product]{
		Columns:   ProductColumns(),
		SearchKey: "name",
		PageSize:  pageSize,
		RowID:     func(p models.Product) string { return p.ID },
	}
}

func ProductColumns() []table.Column[models.Product] {
	return []table.Column[models.Product]{
		{
			Key:      "name",
			Header:   "Product",
			Accessor: func(p models.Product) any { return p.Name },
			Display:  func(p models.Product) any { return ProductCell{Name: p.Name, Image: p.Image} },
			Render:   table.RenderText,
			Sortable: true,
		},
		{
			Key:      "sku",
			Header:   "SKU",
			Accessor: func(p models.Product) any { return p.SKU },
			Render:   table.RenderMono,
			Sortable: true,
			Hideable: true,
		},
		{
			Key:      "category",
			Header:   "Category",
			Accessor: func(p models.Product) any { return p.Category },
			Display:  func(p models.Product) any { return views.CategoryBadge(p.Category) },
			Render:   table.RenderBadge,
			Sortable: true,
			Hideable: true,
		},
		{
			Key:      "price",
			Header:   "Price",
			Accessor: func(p models.Product) any { return p.Price },
			Render:   table.RenderCurrency,
			Sortable: true,
			Hideable: true,
		},
		{
			Key:      "stock",
			Header:   "Stock",
			Accessor: func(p models.Product) any { return p.Stock },
			Display:  func(p models.Product) any { return StockCell{Stock: p.Stock, Badge: views.StockStatus(p.Stock)} },
			Render:   table.RenderBadge,
			Sortable: true,
			Hideable: true,
		},
		{
			Key:      "active",
			Header:   "Status",
			Accessor: func(p models.Product) any { return p.Active },
			Display:  func(p models.Product) any { return views.ActiveBadge(p.Active) },
			Render:   table.RenderBadge,
			Sortable: true,
			Hideable: true,
		},
		{
			Key:      "createdAt",
			Header:   "Created",
			Accessor: func(p models.Product) any { return p.CreatedAt },
			Render:   table.RenderDate,
			Sortable: true,
			Hideable: true,
		},
	}
}
