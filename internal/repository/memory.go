package repository

import (
	"context"
	"sync"

	"admin-dashboard/internal/models"
)

// MemoryStore guarda la colección en memoria. Con persist en false, Create
// devuelve el registro sin agregarlo: la colección nunca cambia.
type MemoryStore[T any] struct {
	mu      sync.RWMutex
	items   []T
	idOf    func(T) string
	clone   func(T) T
	persist bool
}

var (
	_ ProductStore = (*MemoryStore[models.Product])(nil)
	_ OrderStore   = (*MemoryStore[models.Order])(nil)
)

func NewMemoryProductStore(seed []models.Product, persist bool) *MemoryStore[models.Product] {
	return newMemoryStore(seed, productID, cloneProduct, persist)
}

func NewMemoryOrderStore(seed []models.Order, persist bool) *MemoryStore[models.Order] {
	return newMemoryStore(seed, orderID, cloneOrder, persist)
}

func newMemoryStore[T any](seed []T, idOf func(T) string, clone func(T) T, persist bool) *MemoryStore[T] {
	s := &MemoryStore[T]{idOf: idOf, clone: clone, persist: persist}
	s.items = s.cloneAll(seed)
	return s
}

// cloneAll copia también los slices anidados de cada registro
func (s *MemoryStore[T]) cloneAll(items []T) []T {
	out := make([]T, len(items))
	for i, item := range items {
		out[i] = s.clone(item)
	}
	return out
}

// List devuelve una copia profunda; el llamador puede modificarla libremente
func (s *MemoryStore[T]) List(ctx context.Context) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cloneAll(s.items), nil
}

func (s *MemoryStore[T]) Get(ctx context.Context, id string) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, item := range s.items {
		if s.idOf(item) == id {
			return s.clone(item), nil
		}
	}
	return zero, ErrNotFound
}

func (s *MemoryStore[T]) Create(ctx context.Context, item T) (T, error) {
	if err := ctx.Err(); err != nil {
		var zero T
		return zero, err
	}
	if !s.persist {
		return item, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, s.clone(item))
	return item, nil
}

func (s *MemoryStore[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}
