package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"admin-dashboard/internal/apperr"
	"admin-dashboard/internal/cache"
	"admin-dashboard/internal/dashboard"
	"admin-dashboard/internal/models"
	"admin-dashboard/internal/service"
	"admin-dashboard/internal/validation"
)

const (
	productsPrefix  = "products:"
	productsListKey = productsPrefix + "list"
)

type ProductService interface {
	Latency(ctx context.Context) error
	Fetch(ctx context.Context) ([]models.Product, error)
	Get(ctx context.Context, id string) (models.Product, error)
	CreateFromBody(ctx context.Context, body service.Body) (service.Body, error)
	CreateFromForm(ctx context.Context, form validation.ProductForm) (models.Product, error)
}

type ProductHandler struct {
	svc      ProductService
	cache    cache.Cache
	log      *zap.Logger
	pageSize int
}

func NewProductHandler(svc ProductService, c cache.Cache, log *zap.Logger, pageSize int) *ProductHandler {
	return &ProductHandler{svc: svc, cache: c, log: log, pageSize: pageSize}
}

// list aplica la latencia simulada en cada petición, haya o no acierto de caché
func (h *ProductHandler) list(ctx context.Context) ([]models.Product, error) {
	if err := h.svc.Latency(ctx); err != nil {
		return nil, err
	}
	return h.fetch(ctx)
}

func (h *ProductHandler) fetch(ctx context.Context) ([]models.Product, error) {
	return cached(ctx, h.cache, h.log, productsListKey, h.svc.Fetch)
}

// GET /api/products
func (h *ProductHandler) ListProducts(c *gin.Context) {
	products, err := h.list(c.Request.Context())
	if err != nil {
		respondError(c, h.log, apperr.Internal(err, "Failed to fetch products"))
		return
	}

	c.JSON(http.StatusOK, ListResponse[models.Product]{Success: true, Data: products, Total: len(products)})
}

// POST /api/products
// El cuerpo se devuelve tal como llegó, con id y fechas agregados; con el store de prueba no se guarda.
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var body service.Body
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, h.log, apperr.Internal(err, "Failed to create product"))
		return
	}

	created, err := h.svc.CreateFromBody(c.Request.Context(), body)
	if err != nil {
		respondError(c, h.log, apperr.Internal(err, "Failed to create product"))
		return
	}

	invalidate(c.Request.Context(), h.cache, h.log, productsPrefix)
	ok(c, created, "Product created successfully")
}

// POST /api/forms/products
func (h *ProductHandler) SubmitProductForm(c *gin.Context) {
	var form validation.ProductForm
	if err := c.ShouldBindJSON(&form); err != nil {
		respondError(c, h.log, apperr.New(err, http.StatusBadRequest, "Invalid request body"))
		return
	}

	created, err := h.svc.CreateFromForm(c.Request.Context(), form)
	if err != nil {
		respondError(c, h.log, asCreateError(err, "Failed to create product"))
		return
	}

	invalidate(c.Request.Context(), h.cache, h.log, productsPrefix)
	ok(c, created, "Product created successfully")
}

// GET /api/products/:id
func (h *ProductHandler) GetProduct(c *gin.Context) {
	product, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.log, lookupError(err, "Product not found", "Failed to fetch product"))
		return
	}
	ok(c, product, "")
}

// GET /api/products/table
func (h *ProductHandler) ProductTable(c *gin.Context) {
	products, err := h.list(c.Request.Context())
	if err != nil {
		respondError(c, h.log, apperr.Internal(err, "Failed to fetch products"))
		return
	}

	view := renderTable(dashboard.ProductOptions(h.pageSize), products, tableState(c, h.pageSize))
	ok(c, view, "")
}
