package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"admin-dashboard/internal/apperr"
	"admin-dashboard/internal/cache"
	"admin-dashboard/internal/middleware"
	"admin-dashboard/internal/repository"
	"admin-dashboard/internal/validation"
)

// Estructuras para respuestas
type ListResponse[T any] struct {
	Success bool `json:"success"`
	Data    []T  `json:"data"`
	Total   int  `json:"total"`
}

type DataResponse[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data"`
	Message string `json:"message,omitempty"`
}

type ErrorResponse struct {
	Success bool              `json:"success"`
	Error   string            `json:"error"`
	Fields  validation.Errors `json:"fields,omitempty"`
}

func ok[T any](c *gin.Context, data T, message string) {
	c.JSON(http.StatusOK, DataResponse[T]{Success: true, Data: data, Message: message})
}

// lookupError traduce un error de lectura: no encontrado → 404, el resto → 500
func lookupError(err error, notFound, failed string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return apperr.NotFound(err, notFound)
	}
	return apperr.Internal(err, failed)
}

// respondError escribe el sobre de error; los errores de validación van con 422 y sus campos
func respondError(c *gin.Context, log *zap.Logger, err error) {
	var fields validation.Errors
	if errors.As(err, &fields) {
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "Validation failed", Fields: fields})
		return
	}

	var appErr *apperr.AppError
	if !errors.As(err, &appErr) {
		appErr = apperr.Internal(err, "Internal server error")
	}

	logFields := []zap.Field{
		zap.String(middleware.RequestIDKey, middleware.GetRequestID(c)),
		zap.Int("status", appErr.Status),
		zap.Error(err),
	}
	if appErr.Status >= http.StatusInternalServerError {
		log.Error(appErr.Message, logFields...)
	} else {
		log.Warn(appErr.Message, logFields...)
	}

	c.JSON(appErr.Status, ErrorResponse{Error: appErr.Message})
}

// cached devuelve el valor guardado bajo key o lo carga y lo guarda.
// Una falla del caché solo se registra: la petición sigue contra el store.
func cached[T any](ctx context.Context, store cache.Cache, log *zap.Logger, key string, load func(context.Context) (T, error)) (T, error) {
	var value T
	found, err := store.Get(ctx, key, &value)
	if err != nil {
		log.Warn("cache get failed", zap.String("key", key), zap.Error(err))
	} else if found {
		return value, nil
	}

	value, err = load(ctx)
	if err != nil {
		return value, err
	}

	if err := store.Set(ctx, key, value); err != nil {
		log.Warn("cache set failed", zap.String("key", key), zap.Error(err))
	}
	return value, nil
}

func invalidate(ctx context.Context, store cache.Cache, log *zap.Logger, prefix string) {
	if err := store.DeleteByPrefix(ctx, prefix); err != nil {
		log.Warn("cache invalidation failed", zap.String("prefix", prefix), zap.Error(err))
	}
}
