package charts

type Kind string

const (
	KindLine Kind = "line"
	KindPie  Kind = "pie"
	KindBar  Kind = "bar"
)

// Chart es un gráfico listo para el cliente
type Chart struct {
	Name  string `json:"name"`
	Title string `json:"title"`
	Kind  Kind   `json:"kind"`
	Data  any    `json:"data"`
}

// Names lista los gráficos disponibles en el orden del panel principal
var Names = []string{"sales", "categories", "order-status", "product-performance"}

// ByName arma el gráfico pedido; false si el nombre no existe
func ByName(f *Fixture, name string) (Chart, bool) {
	switch name {
	case "sales":
		return Chart{Name: name, Title: "Sales Overview", Kind: KindLine, Data: SalesOverview(f)}, true
	case "categories":
		return Chart{Name: name, Title: "Category Distribution", Kind: KindPie, Data: CategoryDistribution(f)}, true
	case "order-status":
		return Chart{Name: name, Title: "Order Status Distribution", Kind: KindPie, Data: OrderStatusDistribution(f)}, true
	case "product-performance":
		return Chart{Name: name, Title: "Product Performance", Kind: KindBar, Data: ProductPerformance(f)}, true
	}
	return Chart{}, false
}
