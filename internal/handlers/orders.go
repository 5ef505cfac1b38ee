package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"admin-dashboard/internal/apperr"
	"admin-dashboard/internal/cache"
	"admin-dashboard/internal/dashboard"
	"admin-dashboard/internal/models"
	"admin-dashboard/internal/service"
	"admin-dashboard/internal/validation"
	"admin-dashboard/internal/views"
)

const (
	ordersPrefix  = "orders:"
	ordersListKey = ordersPrefix + "list"
)

type OrderService interface {
	Latency(ctx context.Context) error
	Fetch(ctx context.Context) ([]models.Order, error)
	Get(ctx context.Context, id string) (models.Order, error)
	CreateFromBody(ctx context.Context, body service.Body) (service.Body, error)
	CreateFromForm(ctx context.Context, form validation.OrderForm) (models.Order, error)
}

type OrderHandler struct {
	svc      OrderService
	cache    cache.Cache
	log      *zap.Logger
	pageSize int
}

func NewOrderHandler(svc OrderService, c cache.Cache, log *zap.Logger, pageSize int) *OrderHandler {
	return &OrderHandler{svc: svc, cache: c, log: log, pageSize: pageSize}
}

// list aplica la latencia simulada en cada petición, haya o no acierto de caché
func (h *OrderHandler) list(ctx context.Context) ([]models.Order, error) {
	if err := h.svc.Latency(ctx); err != nil {
		return nil, err
	}
	return h.fetch(ctx)
}

func (h *OrderHandler) fetch(ctx context.Context) ([]models.Order, error) {
	return cached(ctx, h.cache, h.log, ordersListKey, h.svc.Fetch)
}

// GET /api/orders
func (h *OrderHandler) ListOrders(c *gin.Context) {
	orders, err := h.list(c.Request.Context())
	if err != nil {
		respondError(c, h.log, apperr.Internal(err, "Failed to fetch orders"))
		return
	}

	c.JSON(http.StatusOK, ListResponse[models.Order]{Success: true, Data: orders, Total: len(orders)})
}

// POST /api/orders
// El cuerpo se devuelve tal como llegó, con id, orderId y fechas agregados.
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var body service.Body
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, h.log, apperr.Internal(err, "Failed to create order"))
		return
	}

	created, err := h.svc.CreateFromBody(c.Request.Context(), body)
	if err != nil {
		respondError(c, h.log, apperr.Internal(err, "Failed to create order"))
		return
	}

	invalidate(c.Request.Context(), h.cache, h.log, ordersPrefix)
	ok(c, created, "Order created successfully")
}

// POST /api/forms/orders
func (h *OrderHandler) SubmitOrderForm(c *gin.Context) {
	var form validation.OrderForm
	if err := c.ShouldBindJSON(&form); err != nil {
		respondError(c, h.log, apperr.New(err, http.StatusBadRequest, "Invalid request body"))
		return
	}

	created, err := h.svc.CreateFromForm(c.Request.Context(), form)
	if err != nil {
		respondError(c, h.log, asCreateError(err, "Failed to create order"))
		return
	}

	invalidate(c.Request.Context(), h.cache, h.log, ordersPrefix)
	ok(c, created, "Order created successfully")
}

// GET /api/orders/:id
func (h *OrderHandler) GetOrder(c *gin.Context) {
	order, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.log, lookupError(err, "Order not found", "Failed to fetch order"))
		return
	}
	ok(c, order, "")
}

// GET /api/orders/:id/detail
func (h *OrderHandler) GetOrderDetail(c *gin.Context) {
	order, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.log, lookupError(err, "Order not found", "Failed to fetch order"))
		return
	}
	ok(c, views.OrderDetail(order), "")
}

// GET /api/orders/table
func (h *OrderHandler) OrderTable(c *gin.Context) {
	orders, err := h.list(c.Request.Context())
	if err != nil {
		respondError(c, h.log, apperr.Internal(err, "Failed to fetch orders"))
		return
	}

	view := renderTable(dashboard.OrderOptions(h.pageSize), orders, tableState(c, h.pageSize))
	ok(c, view, "")
}

// asCreateError conserva los errores de validación y envuelve el resto como 500
func asCreateError(err error, message string) error {
	var fields validation.Errors
	if errors.As(err, &fields) {
		return err
	}
	return apperr.Internal(err, message)
}
