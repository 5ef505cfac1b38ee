package routes

import (
	"github.com/gin-gonic/gin"

	"admin-dashboard/internal/handlers"
)

type Handlers struct {
	Products  *handlers.ProductHandler
	Orders    *handlers.OrderHandler
	Dashboard *handlers.DashboardHandler
	Charts    *handlers.ChartHandler
	Health    *handlers.HealthHandler
}

func RegisterRoutes(router *gin.Engine, h Handlers) {
	router.GET("/health", h.Health.Health)

	api := router.Group("/api")
	{
		api.GET("/products", h.Products.ListProducts)
		api.POST("/products", h.Products.CreateProduct)
		api.GET("/products/table", h.Products.ProductTable)
		api.GET("/products/:id", h.Products.GetProduct)

		api.GET("/orders", h.Orders.ListOrders)
		api.POST("/orders", h.Orders.CreateOrder)
		api.GET("/orders/table", h.Orders.OrderTable)
		api.GET("/orders/:id", h.Orders.GetOrder)
		api.GET("/orders/:id/detail", h.Orders.GetOrderDetail)

		api.POST("/forms/products", h.Products.SubmitProductForm)
		api.POST("/forms/orders", h.Orders.SubmitOrderForm)

		api.GET("/dashboard/overview", h.Dashboard.Overview)
		api.GET("/dashboard/orders", h.Dashboard.Orders)
		api.GET("/dashboard/products", h.Dashboard.Products)
		api.GET("/dashboard/sales", h.Dashboard.Sales)
		api.GET("/dashboard/users", h.Dashboard.Users)

		api.GET("/charts", h.Charts.ListCharts)
		api.GET("/charts/:name", h.Charts.GetChart)
	}
}
