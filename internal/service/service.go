// Package service contiene los casos de uso de productos y pedidos: latencia
// simulada, generación de ids y creación desde formularios.
package service

import (
	"context"
	"strconv"
	"time"

	"go.uber.org/zap"
)

type Options struct {
	// ListDelay y CreateDelay simulan la latencia de un backend real
	ListDelay   time.Duration
	CreateDelay time.Duration
	Now         func() time.Time
	Logger      *zap.Logger
}

func (o Options) withDefaults() Options {
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	return o
}

// wait espera d o hasta que se cancele el contexto
func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// newIDs genera el id (milisegundos unix) y el código visible ORD-xxxxxx
// con los últimos seis dígitos
func newIDs(now time.Time) (id, code string) {
	id = strconv.FormatInt(now.UnixMilli(), 10)
	suffix := id
	if len(suffix) > 6 {
		suffix = suffix[len(suffix)-6:]
	}
	return id, "ORD-" + suffix
}
