package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"admin-dashboard/internal/models"
	"admin-dashboard/internal/repository"
	"admin-dashboard/internal/validation"
)

type OrderService struct {
	orders   repository.OrderStore
	products repository.ProductStore
	opts     Options
}

func NewOrderService(orders repository.OrderStore, products repository.ProductStore, opts Options) *OrderService {
	return &OrderService{orders: orders, products: products, opts: opts.withDefaults()}
}

// Latency espera ListDelay. Se aplica en cada lectura, también cuando la respuesta sale del caché.
func (s *OrderService) Latency(ctx context.Context) error {
	return wait(ctx, s.opts.ListDelay)
}

// Fetch lee la colección sin latencia simulada
func (s *OrderService) Fetch(ctx context.Context) ([]models.Order, error) {
	return s.orders.List(ctx)
}

func (s *OrderService) Get(ctx context.Context, id string) (models.Order, error) {
	return s.orders.Get(ctx, id)
}

// Create completa id y orderId solo si vienen vacíos; createdAt y updatedAt
// siempre se sobrescriben. El total no se recalcula.
func (s *OrderService) Create(ctx context.Context, order models.Order) (models.Order, error) {
	if err := wait(ctx, s.opts.CreateDelay); err != nil {
		return models.Order{}, err
	}

	now := s.opts.Now().UTC()
	id, code := newIDs(now)
	if order.ID == "" {
		order.ID = id
	}
	if order.OrderID == "" {
		order.OrderID = code
	}
	order.CreatedAt = now
	order.UpdatedAt = now

	return s.save(ctx, order)
}

// CreateFromBody devuelve el cuerpo recibido con id, orderId y fechas agregados.
// Al store va el registro tipado armado desde ese mismo cuerpo.
func (s *OrderService) CreateFromBody(ctx context.Context, body Body) (Body, error) {
	if err := wait(ctx, s.opts.CreateDelay); err != nil {
		return nil, err
	}

	now := s.opts.Now().UTC()
	id, code := newIDs(now)
	body = stamp(body, now, map[string]string{"id": id, "orderId": code})

	order, dropped := decodeBody[models.Order](body)
	if len(dropped) > 0 {
		s.opts.Logger.Debug("Order fields not stored", zap.Strings("fields", dropped))
	}
	if _, err := s.save(ctx, order); err != nil {
		return nil, err
	}
	return body, nil
}

func (s *OrderService) save(ctx context.Context, order models.Order) (models.Order, error) {
	created, err := s.orders.Create(ctx, order)
	if err != nil {
		s.opts.Logger.Error("Failed to save order",
			zap.String("order_id", order.OrderID),
			zap.Error(err))
		return models.Order{}, err
	}

	s.opts.Logger.Info("Order created",
		zap.String("id", created.ID),
		zap.String("order_id", created.OrderID),
		zap.Float64("total_amount", created.TotalAmount))
	return created, nil
}

// CreateFromForm valida el formulario, toma nombre y precio de cada línea del
// catálogo y calcula el total antes de crear el pedido
func (s *OrderService) CreateFromForm(ctx context.Context, form validation.OrderForm) (models.Order, error) {
	if err := validation.Struct(form); err != nil {
		return models.Order{}, err
	}

	lines := make([]models.OrderProduct, 0, len(form.Products))
	unknown := validation.Errors{}
	total := decimal.Zero

	for i, item := range form.Products {
		product, err := s.products.Get(ctx, item.ProductID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				unknown[fmt.Sprintf("products[%d].productId", i)] = "Product not found"
				continue
			}
			return models.Order{}, err
		}

		line := models.OrderProduct{
			ProductID:   product.ID,
			ProductName: product.Name,
			Quantity:    item.Quantity,
			Price:       product.Price,
		}
		total = total.Add(line.Subtotal())
		lines = append(lines, line)
	}
	if len(unknown) > 0 {
		return models.Order{}, unknown
	}

	return s.Create(ctx, models.Order{
		Products:             lines,
		ClientName:           form.ClientName,
		DeliveryAddress:      form.DeliveryAddress,
		PaymentStatus:        form.PaymentStatus,
		DeliveryStatus:       form.DeliveryStatus,
		ExpectedDeliveryDate: form.ExpectedDeliveryDate,
		TotalAmount:          total.Round(2).InexactFloat64(),
	})
}
