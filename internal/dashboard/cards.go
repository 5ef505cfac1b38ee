// Package dashboard arma las páginas del panel: tarjetas de estadísticas,
// gráficos y los esquemas de columnas de las tablas.
package dashboard

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

type Trend string

const (
	TrendUp      Trend = "up"
	TrendDown    Trend = "down"
	TrendNeutral Trend = "neutral"
)

// StatCard es una tarjeta de resumen
type StatCard struct {
	Name        string `json:"name"`
	Value       string `json:"value"`
	Description string `json:"description,omitempty"`
	Trend       Trend  `json:"trend,omitempty"`
	TrendValue  string `json:"trendValue,omitempty"`
}

var printer = message.NewPrinter(language.English)

// monthly construye una tarjeta con tendencia al alza respecto del mes anterior
func monthly(name, value, change string) StatCard {
	return StatCard{
		Name:        name,
		Value:       value,
		Description: fmt.Sprintf("+%s from last month", change),
		Trend:       TrendUp,
		TrendValue:  change,
	}
}

// formatNumber agrupa miles y deja hasta dos decimales: 12345.5 → "12,345.5"
func formatNumber(v float64) string {
	return printer.Sprint(number.Decimal(v, number.MaxFractionDigits(2)))
}

func formatInt(v int) string {
	return printer.Sprintf("%d", v)
}
