package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"admin-dashboard/internal/cache"
	"admin-dashboard/internal/charts"
	"admin-dashboard/internal/mockdata"
	"admin-dashboard/internal/models"
	"admin-dashboard/internal/repository"
	"admin-dashboard/internal/service"
)

var errStoreDown = errors.New("store down")

// brokenStore falla en todas las operaciones
type brokenStore[T any] struct{}

func (brokenStore[T]) List(context.Context) ([]T, error) { return nil, errStoreDown }

func (brokenStore[T]) Get(context.Context, string) (T, error) {
	var zero T
	return zero, errStoreDown
}

func (brokenStore[T]) Create(context.Context, T) (T, error) {
	var zero T
	return zero, errStoreDown
}

type testEnv struct {
	router *gin.Engine
	cache  *cache.Memory
}

type envOptions struct {
	products repository.ProductStore
	orders   repository.OrderStore
	fixture  *charts.Fixture
	delay    time.Duration
}

func newEnv(t *testing.T, o envOptions) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	if o.products == nil {
		o.products = repository.NewMemoryProductStore(mockdata.Products(), false)
	}
	if o.orders == nil {
		o.orders = repository.NewMemoryOrderStore(mockdata.Orders(), false)
	}

	log := zap.NewNop()
	c := cache.NewMemory(time.Minute)
	t.Cleanup(func() { c.Close() })

	opts := service.Options{
		ListDelay: o.delay,
		Now:       func() time.Time { return time.UnixMilli(1700000123456) },
	}
	products := NewProductHandler(service.NewProductService(o.products, opts), c, log, 10)
	orders := NewOrderHandler(service.NewOrderService(o.orders, o.products, opts), c, log, 10)
	dash := NewDashboardHandler(products, orders, o.fixture, c, log)
	chartHandler := NewChartHandler(o.fixture, log)
	health := NewHealthHandler("admin-dashboard", "mock", "memory", c)

	r := gin.New()
	r.GET("/health", health.Health)
	api := r.Group("/api")
	api.GET("/products", products.ListProducts)
	api.POST("/products", products.CreateProduct)
	api.GET("/products/table", products.ProductTable)
	api.GET("/products/:id", products.GetProduct)
	api.GET("/orders", orders.ListOrders)
	api.POST("/orders", orders.CreateOrder)
	api.GET("/orders/table", orders.OrderTable)
	api.GET("/orders/:id", orders.GetOrder)
	api.GET("/orders/:id/detail", orders.GetOrderDetail)
	api.POST("/forms/products", products.SubmitProductForm)
	api.POST("/forms/orders", orders.SubmitOrderForm)
	api.GET("/dashboard/overview", dash.Overview)
	api.GET("/dashboard/orders", dash.Orders)
	api.GET("/dashboard/products", dash.Products)
	api.GET("/dashboard/sales", dash.Sales)
	api.GET("/dashboard/users", dash.Users)
	api.GET("/charts", chartHandler.ListCharts)
	api.GET("/charts/:name", chartHandler.GetChart)

	return &testEnv{router: r, cache: c}
}

func (e *testEnv) do(method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func TestListOrders(t *testing.T) {
	env := newEnv(t, envOptions{})

	w := env.do(http.MethodGet, "/api/orders", "")
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[ListResponse[models.Order]](t, w)
	assert.True(t, resp.Success)
	assert.Equal(t, 12, resp.Total)
	assert.Len(t, resp.Data, 12)
	assert.Equal(t, "ORD-001", resp.Data[0].OrderID)
}

func TestList_DelaysCachedResponses(t *testing.T) {
	const delay = 30 * time.Millisecond
	env := newEnv(t, envOptions{delay: delay})

	for _, path := range []string{"/api/orders", "/api/products", "/api/dashboard/orders"} {
		t.Run(path, func(t *testing.T) {
			require.Equal(t, http.StatusOK, env.do(http.MethodGet, path, "").Code)
			require.Positive(t, env.cache.Size())

			start := time.Now()
			w := env.do(http.MethodGet, path, "")
			require.Equal(t, http.StatusOK, w.Code)
			assert.GreaterOrEqual(t, time.Since(start), delay)
		})
	}
}

func TestCreateOrder_NotPersisted(t *testing.T) {
	env := newEnv(t, envOptions{})

	w := env.do(http.MethodPost, "/api/orders", `{"clientName":"Test Client","totalAmount":42.5,"createdAt":"2000-01-01T00:00:00Z"}`)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[DataResponse[models.Order]](t, w)
	assert.True(t, resp.Success)
	assert.Equal(t, "Order created successfully", resp.Message)
	assert.Regexp(t, `^ORD-\d{6}$`, resp.Data.OrderID)
	assert.Equal(t, "1700000123456", resp.Data.ID)
	assert.Equal(t, "Test Client", resp.Data.ClientName)
	assert.Equal(t, 42.5, resp.Data.TotalAmount)
	assert.Equal(t, 2023, resp.Data.CreatedAt.Year())

	list := decode[ListResponse[models.Order]](t, env.do(http.MethodGet, "/api/orders", ""))
	assert.Equal(t, 12, list.Total)
	for _, o := range list.Data {
		assert.NotEqual(t, resp.Data.ID, o.ID)
	}
}

func TestCreateOrder_KeepsSuppliedIDs(t *testing.T) {
	env := newEnv(t, envOptions{})

	w := env.do(http.MethodPost, "/api/orders", `{"id":"abc","orderId":"ORD-CUSTOM"}`)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[DataResponse[models.Order]](t, w)
	assert.Equal(t, "abc", resp.Data.ID)
	assert.Equal(t, "ORD-CUSTOM", resp.Data.OrderID)
}

func TestCreateOrder_InvalidJSON(t *testing.T) {
	env := newEnv(t, envOptions{})

	w := env.do(http.MethodPost, "/api/orders", `{"clientName":`)
	require.Equal(t, http.StatusInternalServerError, w.Code)

	resp := decode[ErrorResponse](t, w)
	assert.False(t, resp.Success)
	assert.Equal(t, "Failed to create order", resp.Error)
}

func TestCreateOrder_EchoesBodyAsSent(t *testing.T) {
	env := newEnv(t, envOptions{})

	w := env.do(http.MethodPost, "/api/orders",
		`{"clientName":"Jane","products":[{"productId":"p1","quantity":2}],"notes":"leave at door"}`)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[DataResponse[map[string]any]](t, w)
	assert.Equal(t, "leave at door", resp.Data["notes"])
	assert.Equal(t, "ORD-123456", resp.Data["orderId"])
	assert.NotContains(t, resp.Data, "paymentStatus")
	assert.NotContains(t, resp.Data, "totalAmount")
	assert.Equal(t, []any{map[string]any{"productId": "p1", "quantity": 2.0}}, resp.Data["products"])
}

func TestCreateProduct_KeepsMismatchedTypes(t *testing.T) {
	env := newEnv(t, envOptions{})

	w := env.do(http.MethodPost, "/api/products", `{"name":"Lamp","price":"19.99"}`)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[DataResponse[map[string]any]](t, w)
	assert.Equal(t, "19.99", resp.Data["price"])
	assert.Equal(t, "1700000123456", resp.Data["id"])
	assert.NotContains(t, resp.Data, "stock")
	assert.Contains(t, resp.Data, "createdAt")
}

func TestStoreFailures(t *testing.T) {
	env := newEnv(t, envOptions{
		products: brokenStore[models.Product]{},
		orders:   brokenStore[models.Order]{},
	})

	tests := []struct {
		method, path, body string
		status             int
		msg                string
	}{
		{http.MethodGet, "/api/orders", "", http.StatusInternalServerError, "Failed to fetch orders"},
		{http.MethodPost, "/api/orders", `{}`, http.StatusInternalServerError, "Failed to create order"},
		{http.MethodGet, "/api/products", "", http.StatusInternalServerError, "Failed to fetch products"},
		{http.MethodPost, "/api/products", `{}`, http.StatusInternalServerError, "Failed to create product"},
		{http.MethodGet, "/api/orders/1", "", http.StatusInternalServerError, "Failed to fetch order"},
		{http.MethodGet, "/api/dashboard/orders", "", http.StatusInternalServerError, "Failed to fetch orders"},
		{http.MethodGet, "/api/products/table", "", http.StatusInternalServerError, "Failed to fetch products"},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			w := env.do(tt.method, tt.path, tt.body)
			require.Equal(t, tt.status, w.Code)

			resp := decode[ErrorResponse](t, w)
			assert.False(t, resp.Success)
			assert.Equal(t, tt.msg, resp.Error)
		})
	}
}

func TestProducts(t *testing.T) {
	env := newEnv(t, envOptions{})

	list := decode[ListResponse[models.Product]](t, env.do(http.MethodGet, "/api/products", ""))
	assert.True(t, list.Success)
	assert.Equal(t, 10, list.Total)

	w := env.do(http.MethodPost, "/api/products", `{"name":"Desk Lamp","sku":"DL-011","price":29.99}`)
	require.Equal(t, http.StatusOK, w.Code)
	created := decode[DataResponse[models.Product]](t, w)
	assert.Equal(t, "Product created successfully", created.Message)
	assert.Equal(t, "1700000123456", created.Data.ID)
	assert.Equal(t, "Desk Lamp", created.Data.Name)

	list = decode[ListResponse[models.Product]](t, env.do(http.MethodGet, "/api/products", ""))
	assert.Equal(t, 10, list.Total)

	w = env.do(http.MethodGet, "/api/products/1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "WH-001", decode[DataResponse[models.Product]](t, w).Data.SKU)

	w = env.do(http.MethodGet, "/api/products/999", "")
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Product not found", decode[ErrorResponse](t, w).Error)
}

func TestGetOrderAndDetail(t *testing.T) {
	env := newEnv(t, envOptions{})

	w := env.do(http.MethodGet, "/api/orders/1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ORD-001", decode[DataResponse[models.Order]](t, w).Data.OrderID)

	w = env.do(http.MethodGet, "/api/orders/1/detail", "")
	require.Equal(t, http.StatusOK, w.Code)
	detail := decode[DataResponse[struct {
		Progress       int    `json:"progress"`
		Satisfaction   string `json:"satisfaction"`
		ClientInitials string `json:"clientInitials"`
		Timeline       []any  `json:"timeline"`
	}]](t, w)
	assert.Equal(t, 100, detail.Data.Progress)
	assert.Equal(t, "Happy", detail.Data.Satisfaction)
	assert.Equal(t, "JD", detail.Data.ClientInitials)
	assert.Len(t, detail.Data.Timeline, 4)

	w = env.do(http.MethodGet, "/api/orders/nope/detail", "")
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Order not found", decode[ErrorResponse](t, w).Error)
}

type tableResponse struct {
	Success bool `json:"success"`
	Data    struct {
		Status  string `json:"status"`
		Columns []struct {
			Key  string `json:"key"`
			Sort string `json:"sort"`
		} `json:"columns"`
		Rows []struct {
			ID       string          `json:"id"`
			Selected bool            `json:"selected"`
			Expanded bool            `json:"expanded"`
			Detail   json.RawMessage `json:"detail"`
		} `json:"rows"`
		PageIndex     int  `json:"pageIndex"`
		PageSize      int  `json:"pageSize"`
		PageCount     int  `json:"pageCount"`
		FilteredCount int  `json:"filteredCount"`
		TotalCount    int  `json:"totalCount"`
		SelectedCount int  `json:"selectedCount"`
		CanNextPage   bool `json:"canNextPage"`
	} `json:"data"`
}

func TestOrderTable(t *testing.T) {
	env := newEnv(t, envOptions{})

	w := env.do(http.MethodGet, "/api/orders/table?search=ORD-01&sort=orderId:desc&page_size=2&hidden=feedback,orderId&selected=10,3&expanded=12", "")
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[tableResponse](t, w)
	view := resp.Data
	assert.Equal(t, "populated", view.Status)
	assert.Equal(t, 12, view.TotalCount)
	assert.Equal(t, 3, view.FilteredCount)
	assert.Equal(t, 2, view.PageCount)
	assert.True(t, view.CanNextPage)
	assert.Equal(t, 2, view.SelectedCount)

	// orderId no se puede ocultar; feedback sí
	assert.Len(t, view.Columns, 7)
	assert.Equal(t, "orderId", view.Columns[0].Key)
	assert.Equal(t, "desc", view.Columns[0].Sort)

	require.Len(t, view.Rows, 2)
	assert.Equal(t, "12", view.Rows[0].ID)
	assert.True(t, view.Rows[0].Expanded)
	assert.NotEmpty(t, view.Rows[0].Detail)
	assert.Equal(t, "11", view.Rows[1].ID)
	assert.False(t, view.Rows[1].Expanded)

	w = env.do(http.MethodGet, "/api/orders/table?search=ORD-01&sort=orderId:desc&page_size=2&page=2&selected=10", "")
	page2 := decode[tableResponse](t, w).Data
	assert.Equal(t, 1, page2.PageIndex)
	require.Len(t, page2.Rows, 1)
	assert.Equal(t, "10", page2.Rows[0].ID)
	assert.True(t, page2.Rows[0].Selected)
}

func TestProductTable_Defaults(t *testing.T) {
	env := newEnv(t, envOptions{})

	w := env.do(http.MethodGet, "/api/products/table?page=99&page_size=0", "")
	require.Equal(t, http.StatusOK, w.Code)

	view := decode[tableResponse](t, w).Data
	assert.Equal(t, 10, view.PageSize)
	assert.Equal(t, 0, view.PageIndex)
	assert.Len(t, view.Rows, 10)

	w = env.do(http.MethodGet, "/api/products/table?search=zzz", "")
	view = decode[tableResponse](t, w).Data
	assert.Equal(t, "empty", view.Status)
	assert.Empty(t, view.Rows)
	assert.Equal(t, 0, view.PageCount)
}

func TestOrderForm(t *testing.T) {
	env := newEnv(t, envOptions{orders: repository.NewMemoryOrderStore(mockdata.Orders(), true)})

	// cachea el listado antes de crear
	before := decode[ListResponse[models.Order]](t, env.do(http.MethodGet, "/api/orders", ""))
	require.Equal(t, 12, before.Total)

	body := `{
		"products": [{"productId": "1", "quantity": 2}, {"productId": "5", "quantity": 3}],
		"clientName": "Test Client",
		"deliveryAddress": "1 Test St",
		"paymentStatus": "paid",
		"deliveryStatus": "pending",
		"expectedDeliveryDate": "2024-03-01"
	}`
	w := env.do(http.MethodPost, "/api/forms/orders", body)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	created := decode[DataResponse[models.Order]](t, w)
	assert.Equal(t, 259.95, created.Data.TotalAmount)
	assert.Equal(t, "Wireless Headphones", created.Data.Products[0].ProductName)

	after := decode[ListResponse[models.Order]](t, env.do(http.MethodGet, "/api/orders", ""))
	assert.Equal(t, 13, after.Total)
}

func TestOrderForm_Invalid(t *testing.T) {
	env := newEnv(t, envOptions{})

	w := env.do(http.MethodPost, "/api/forms/orders", `{"products":[{"productId":"","quantity":0}],"paymentStatus":"paid","deliveryStatus":"pending"}`)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	resp := decode[ErrorResponse](t, w)
	assert.False(t, resp.Success)
	assert.Equal(t, "Product is required", resp.Fields["products[0].productId"])
	assert.Equal(t, "Quantity must be at least 1", resp.Fields["products[0].quantity"])
	assert.Equal(t, "Client name is required", resp.Fields["clientName"])

	w = env.do(http.MethodPost, "/api/forms/orders", `not json`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid request body", decode[ErrorResponse](t, w).Error)
}

func TestProductForm(t *testing.T) {
	env := newEnv(t, envOptions{})

	w := env.do(http.MethodPost, "/api/forms/products", `{"name":"Desk Lamp","sku":"DL-011","category":"Home & Garden","price":29.99,"stock":4}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	created := decode[DataResponse[models.Product]](t, w)
	assert.True(t, created.Data.Active)
	assert.Equal(t, "Product created successfully", created.Message)

	w = env.do(http.MethodPost, "/api/forms/products", `{"name":"ab","sku":"DL-011","category":"Home & Garden","price":0}`)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	resp := decode[ErrorResponse](t, w)
	assert.Equal(t, "Product name must be at least 3 characters", resp.Fields["name"])
	assert.Equal(t, "Price must be greater than 0", resp.Fields["price"])
}

func TestDashboardPages(t *testing.T) {
	fixture, err := charts.Default()
	require.NoError(t, err)
	env := newEnv(t, envOptions{fixture: fixture})

	type cardsPage struct {
		Data struct {
			Cards []struct {
				Name  string `json:"name"`
				Value string `json:"value"`
			} `json:"cards"`
			Charts []struct {
				Name string `json:"name"`
			} `json:"charts"`
		} `json:"data"`
	}

	for _, path := range []string{"overview", "orders", "products", "sales", "users"} {
		t.Run(path, func(t *testing.T) {
			w := env.do(http.MethodGet, "/api/dashboard/"+path, "")
			require.Equal(t, http.StatusOK, w.Code)
			assert.Len(t, decode[cardsPage](t, w).Data.Cards, 4)
		})
	}

	orders := decode[cardsPage](t, env.do(http.MethodGet, "/api/dashboard/orders", ""))
	assert.Equal(t, "12", orders.Data.Cards[0].Value)

	overview := decode[cardsPage](t, env.do(http.MethodGet, "/api/dashboard/overview", ""))
	assert.Len(t, overview.Data.Charts, 4)
}

func TestCharts(t *testing.T) {
	fixture, err := charts.Default()
	require.NoError(t, err)
	env := newEnv(t, envOptions{fixture: fixture})

	w := env.do(http.MethodGet, "/api/charts/sales", "")
	require.Equal(t, http.StatusOK, w.Code)
	chart := decode[DataResponse[struct {
		Kind string              `json:"kind"`
		Data []charts.SalesPoint `json:"data"`
	}]](t, w)
	assert.Equal(t, "line", chart.Data.Kind)
	assert.Len(t, chart.Data.Data, 12)

	w = env.do(http.MethodGet, "/api/charts/revenue", "")
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Chart not found", decode[ErrorResponse](t, w).Error)

	names := decode[DataResponse[[]string]](t, env.do(http.MethodGet, "/api/charts", ""))
	assert.Equal(t, charts.Names, names.Data)
}

func TestCharts_MissingFixture(t *testing.T) {
	env := newEnv(t, envOptions{})

	w := env.do(http.MethodGet, "/api/charts/categories", "")
	require.Equal(t, http.StatusOK, w.Code)
	chart := decode[DataResponse[struct {
		Data []charts.Slice `json:"data"`
	}]](t, w)
	assert.NotNil(t, chart.Data.Data)
	assert.Empty(t, chart.Data.Data)
}

func TestHealth(t *testing.T) {
	env := newEnv(t, envOptions{})

	w := env.do(http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[map[string]string](t, w)
	assert.Equal(t, "healthy", resp["status"])
	assert.Equal(t, "mock", resp["store"])
	assert.Equal(t, "memory", resp["cache"])
}
