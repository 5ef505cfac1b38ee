package service

import (
	"context"

	"go.uber.org/zap"

	"admin-dashboard/internal/models"
	"admin-dashboard/internal/repository"
	"admin-dashboard/internal/validation"
)

type ProductService struct {
	products repository.ProductStore
	opts     Options
}

func NewProductService(products repository.ProductStore, opts Options) *ProductService {
	return &ProductService{products: products, opts: opts.withDefaults()}
}

// Latency espera ListDelay. Se aplica en cada lectura, también cuando la respuesta sale del caché.
func (s *ProductService) Latency(ctx context.Context) error {
	return wait(ctx, s.opts.ListDelay)
}

// Fetch lee la colección sin latencia simulada
func (s *ProductService) Fetch(ctx context.Context) ([]models.Product, error) {
	return s.products.List(ctx)
}

func (s *ProductService) Get(ctx context.Context, id string) (models.Product, error) {
	return s.products.Get(ctx, id)
}

// Create asigna id si falta y sobrescribe las fechas
func (s *ProductService) Create(ctx context.Context, product models.Product) (models.Product, error) {
	if err := wait(ctx, s.opts.CreateDelay); err != nil {
		return models.Product{}, err
	}

	now := s.opts.Now().UTC()
	if product.ID == "" {
		product.ID, _ = newIDs(now)
	}
	product.CreatedAt = now
	product.UpdatedAt = now

	return s.save(ctx, product)
}

// CreateFromBody devuelve el cuerpo recibido con id y fechas agregados
func (s *ProductService) CreateFromBody(ctx context.Context, body Body) (Body, error) {
	if err := wait(ctx, s.opts.CreateDelay); err != nil {
		return nil, err
	}

	now := s.opts.Now().UTC()
	id, _ := newIDs(now)
	body = stamp(body, now, map[string]string{"id": id})

	product, dropped := decodeBody[models.Product](body)
	if len(dropped) > 0 {
		s.opts.Logger.Debug("Product fields not stored", zap.Strings("fields", dropped))
	}
	if _, err := s.save(ctx, product); err != nil {
		return nil, err
	}
	return body, nil
}

func (s *ProductService) save(ctx context.Context, product models.Product) (models.Product, error) {
	created, err := s.products.Create(ctx, product)
	if err != nil {
		s.opts.Logger.Error("Failed to save product",
			zap.String("sku", product.SKU),
			zap.Error(err))
		return models.Product{}, err
	}

	s.opts.Logger.Info("Product created",
		zap.String("id", created.ID),
		zap.String("sku", created.SKU))
	return created, nil
}

func (s *ProductService) CreateFromForm(ctx context.Context, form validation.ProductForm) (models.Product, error) {
	if err := validation.Struct(form); err != nil {
		return models.Product{}, err
	}

	return s.Create(ctx, models.Product{
		Name:        form.Name,
		SKU:         form.SKU,
		Category:    form.Category,
		Price:       form.Price,
		Stock:       form.Stock,
		Description: form.Description,
		Image:       form.Image,
		Active:      form.IsActive(),
	})
}
