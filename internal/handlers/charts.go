package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"admin-dashboard/internal/apperr"
	"admin-dashboard/internal/charts"
)

var errUnknownChart = errors.New("unknown chart")

type ChartHandler struct {
	fixture *charts.Fixture
	log     *zap.Logger
}

// NewChartHandler acepta un fixture nil: los gráficos salen vacíos
func NewChartHandler(fixture *charts.Fixture, log *zap.Logger) *ChartHandler {
	return &ChartHandler{fixture: fixture, log: log}
}

// GET /api/charts
func (h *ChartHandler) ListCharts(c *gin.Context) {
	ok(c, charts.Names, "")
}

// GET /api/charts/:name
func (h *ChartHandler) GetChart(c *gin.Context) {
	chart, found := charts.ByName(h.fixture, c.Param("name"))
	if !found {
		respondError(c, h.log, apperr.NotFound(errUnknownChart, "Chart not found"))
		return
	}
	ok(c, chart, "")
}
