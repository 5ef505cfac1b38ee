package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"admin-dashboard/internal/cache"
)

type HealthHandler struct {
	service      string
	storeBackend string
	cacheBackend string
	cache        cache.Cache
}

func NewHealthHandler(service, storeBackend, cacheBackend string, c cache.Cache) *HealthHandler {
	return &HealthHandler{service: service, storeBackend: storeBackend, cacheBackend: cacheBackend, cache: c}
}

// GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	status := gin.H{
		"status":  "healthy",
		"service": h.service,
		"store":   h.storeBackend,
		"cache":   h.cacheBackend,
	}
	if err := h.cache.Ping(c.Request.Context()); err != nil {
		status["status"] = "degraded"
		status["cache_error"] = err.Error()
		c.JSON(http.StatusServiceUnavailable, status)
		return
	}
	c.JSON(http.StatusOK, status)
}
