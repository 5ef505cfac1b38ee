package handlers

import (
	"context"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"admin-dashboard/internal/apperr"
	"admin-dashboard/internal/cache"
	"admin-dashboard/internal/charts"
	"admin-dashboard/internal/dashboard"
)

// DashboardHandler sirve las páginas armadas del panel
type DashboardHandler struct {
	products *ProductHandler
	orders   *OrderHandler
	fixture  *charts.Fixture
	cache    cache.Cache
	log      *zap.Logger
}

func NewDashboardHandler(products *ProductHandler, orders *OrderHandler, fixture *charts.Fixture, c cache.Cache, log *zap.Logger) *DashboardHandler {
	return &DashboardHandler{products: products, orders: orders, fixture: fixture, cache: c, log: log}
}

// GET /api/dashboard/overview
func (h *DashboardHandler) Overview(c *gin.Context) {
	ok(c, dashboard.Overview(h.fixture), "")
}

// GET /api/dashboard/sales
func (h *DashboardHandler) Sales(c *gin.Context) {
	ok(c, dashboard.Sales(h.fixture), "")
}

// GET /api/dashboard/users
func (h *DashboardHandler) Users(c *gin.Context) {
	ok(c, dashboard.Users(h.fixture), "")
}

// GET /api/dashboard/orders
func (h *DashboardHandler) Orders(c *gin.Context) {
	page, err := h.ordersPage(c.Request.Context())
	if err != nil {
		respondError(c, h.log, apperr.Internal(err, "Failed to fetch orders"))
		return
	}
	ok(c, page, "")
}

func (h *DashboardHandler) ordersPage(ctx context.Context) (dashboard.OrdersPage, error) {
	if err := h.orders.svc.Latency(ctx); err != nil {
		return dashboard.OrdersPage{}, err
	}
	return cached(ctx, h.cache, h.log, ordersPrefix+"page",
		func(ctx context.Context) (dashboard.OrdersPage, error) {
			orders, err := h.orders.fetch(ctx)
			if err != nil {
				return dashboard.OrdersPage{}, err
			}
			return dashboard.BuildOrdersPage(orders), nil
		})
}

// GET /api/dashboard/products
func (h *DashboardHandler) Products(c *gin.Context) {
	page, err := h.productsPage(c.Request.Context())
	if err != nil {
		respondError(c, h.log, apperr.Internal(err, "Failed to fetch products"))
		return
	}
	ok(c, page, "")
}

func (h *DashboardHandler) productsPage(ctx context.Context) (dashboard.ProductsPage, error) {
	if err := h.products.svc.Latency(ctx); err != nil {
		return dashboard.ProductsPage{}, err
	}
	return cached(ctx, h.cache, h.log, productsPrefix+"page",
		func(ctx context.Context) (dashboard.ProductsPage, error) {
			products, err := h.products.fetch(ctx)
			if err != nil {
				return dashboard.ProductsPage{}, err
			}
			return dashboard.BuildProductsPage(products), nil
		})
}
