// Package cache guarda respuestas serializadas en JSON con expiración.
package cache

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"time"
)

// Cache es la interfaz común a los backends en memoria y Redis
type Cache interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl ...time.Duration) error
	Delete(ctx context.Context, key string) error
	DeleteByPrefix(ctx context.Context, prefix string) error
	Ping(ctx context.Context) error
	Close() error
}

type CacheItem struct {
	Value      []byte
	Expiration int64
}

// Memory es el caché en proceso
type Memory struct {
	items map[string]CacheItem
	mu    sync.RWMutex
	ttl   time.Duration
	stop  chan struct{}
	once  sync.Once
}

var _ Cache = (*Memory)(nil)

const cleanupInterval = 5 * time.Minute

// NewMemory crea el caché y arranca la limpieza periódica de items expirados
func NewMemory(defaultTTL time.Duration) *Memory {
	c := &Memory{
		items: make(map[string]CacheItem),
		ttl:   defaultTTL,
		stop:  make(chan struct{}),
	}
	go c.cleanupExpired(cleanupInterval)
	return c
}

// Set serializa y guarda un valor
func (c *Memory) Set(_ context.Context, key string, value any, ttl ...time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	duration := c.ttl
	if len(ttl) > 0 {
		duration = ttl[0]
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = CacheItem{
		Value:      data,
		Expiration: time.Now().Add(duration).UnixNano(),
	}
	return nil
}

// Get obtiene y deserializa un valor; false si no existe o expiró
func (c *Memory) Get(_ context.Context, key string, dest any) (bool, error) {
	c.mu.RLock()
	item, found := c.items[key]
	c.mu.RUnlock()

	if !found || time.Now().UnixNano() > item.Expiration {
		return false, nil
	}

	if err := json.Unmarshal(item.Value, dest); err != nil {
		return false, err
	}
	return true, nil
}

func (c *Memory) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, key)
	return nil
}

// DeleteByPrefix elimina todas las claves que empiecen con un prefijo
func (c *Memory) DeleteByPrefix(_ context.Context, prefix string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for key := range c.items {
		if strings.HasPrefix(key, prefix) {
			delete(c.items, key)
		}
	}
	return nil
}

// Clear limpia todo el caché
func (c *Memory) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make(map[string]CacheItem)
}

// Size retorna el número de items en caché
func (c *Memory) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

func (c *Memory) Ping(context.Context) error {
	return nil
}

// Close detiene la limpieza periódica y vacía el caché
func (c *Memory) Close() error {
	c.once.Do(func() {
		close(c.stop)
		c.Clear()
	})
	return nil
}

func (c *Memory) cleanupExpired(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-c.stop:
			return
		case <-ticker.C:
			c.removeExpired()
		}
	}
}

func (c *Memory) removeExpired() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now().UnixNano()
	for key, item := range c.items {
		if now > item.Expiration {
			delete(c.items, key)
		}
	}
}
