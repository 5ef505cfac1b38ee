// Package charts expone las series de los gráficos del panel: las estáticas del
// fixture embebido y las calculadas en vivo sobre productos y órdenes.
package charts

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"

	"admin-dashboard/internal/models"
)

//go:embed data.json
var fixtureJSON []byte

type SalesPoint struct {
	Name  string  `json:"name"`
	Sales float64 `json:"sales"`
}

// Slice es una porción de un gráfico de torta
type Slice struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

type PerformancePoint struct {
	Name      string  `json:"name"`
	Retention float64 `json:"Retention"`
	Revenue   float64 `json:"Revenue"`
	Profit    float64 `json:"Profit"`
}

type Client struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Country     string `json:"country"`
	Image       string `json:"image"`
}

// Fixture es el documento estático de analítica
type Fixture struct {
	Sales              []SalesPoint       `json:"sales"`
	Categories         []Slice            `json:"categories"`
	OrderStatus        []Slice            `json:"orderStatus"`
	ProductPerformance []PerformancePoint `json:"productPerformance"`
	Clients            []Client           `json:"clients"`
}

func Load(r io.Reader) (*Fixture, error) {
	var f Fixture
	if err := json.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("decode chart fixture: %w", err)
	}
	return &f, nil
}

// Default carga el fixture embebido en el binario
func Default() (*Fixture, error) {
	return Load(bytes.NewReader(fixtureJSON))
}

// Las series nunca son nil: un fixture ausente produce un gráfico vacío

func SalesOverview(f *Fixture) []SalesPoint {
	if f == nil || f.Sales == nil {
		return []SalesPoint{}
	}
	return f.Sales
}

func CategoryDistribution(f *Fixture) []Slice {
	if f == nil || f.Categories == nil {
		return []Slice{}
	}
	return f.Categories
}

func OrderStatusDistribution(f *Fixture) []Slice {
	if f == nil || f.OrderStatus == nil {
		return []Slice{}
	}
	return f.OrderStatus
}

func ProductPerformance(f *Fixture) []PerformancePoint {
	if f == nil || f.ProductPerformance == nil {
		return []PerformancePoint{}
	}
	return f.ProductPerformance
}

func Clients(f *Fixture) []Client {
	if f == nil || f.Clients == nil {
		return []Client{}
	}
	return f.Clients
}

// CategoryCounts cuenta productos por categoría; las categorías conocidas van
// primero en su orden canónico y las desconocidas después, por aparición
func CategoryCounts(products []models.Product) []Slice {
	counts := make(map[string]int)
	var extra []string
	for _, p := range products {
		if counts[p.Category] == 0 && !models.IsKnownCategory(p.Category) {
			extra = append(extra, p.Category)
		}
		counts[p.Category]++
	}

	out := []Slice{}
	for _, c := range slices.Concat(models.ProductCategories, extra) {
		if n := counts[c]; n > 0 {
			out = append(out, Slice{Name: c, Value: float64(n)})
		}
	}
	return out
}

// DeliveryCounts cuenta órdenes por estado de entrega, incluyendo los estados sin órdenes
func DeliveryCounts(orders []models.Order) []Slice {
	return statusCounts(orders, models.DeliveryStatuses, func(o models.Order) models.DeliveryStatus { return o.DeliveryStatus })
}

// PaymentCounts cuenta órdenes por estado de pago, incluyendo los estados sin órdenes
func PaymentCounts(orders []models.Order) []Slice {
	return statusCounts(orders, models.PaymentStatuses, func(o models.Order) models.PaymentStatus { return o.PaymentStatus })
}

func statusCounts[S ~string](orders []models.Order, statuses []S, statusOf func(models.Order) S) []Slice {
	counts := make(map[S]int)
	for _, o := range orders {
		counts[statusOf(o)]++
	}

	out := make([]Slice, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, Slice{Name: title(string(s)), Value: float64(counts[s])})
	}
	return out
}

func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
