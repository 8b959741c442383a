package ctx

import (
	"context"
	"time"

	log "github.com/x-xyz/nftwizard/base/log"
)

type Ctx struct {
	context.Context
	log.Logger
}

type valueKey string

func Background() Ctx {
	return Ctx{
		Context: context.Background(),
		Logger:  log.Log(),
	}
}

func Todo() Ctx {
	return Ctx{
		Context: context.TODO(),
		Logger:  log.Log(),
	}
}

// From wraps a plain context, e.g. the one cobra hands to a command
func From(c context.Context) Ctx {
	if c == nil {
		return Background()
	}
	if bc, ok := c.(Ctx); ok {
		return bc
	}
	return Ctx{
		Context: c,
		Logger:  log.Log(),
	}
}

// Detach keeps the logger but drops cancellation, for work that outlives its caller
func Detach(parent Ctx) Ctx {
	return Ctx{
		Context: context.Background(),
		Logger:  parent.Logger,
	}
}

func WithValue(parent Ctx, key string, val interface{}) Ctx {
	return Ctx{
		Context: context.WithValue(parent.Context, valueKey(key), val),
		Logger:  parent.Logger.WithField(key, val),
	}
}

func WithValues(parent Ctx, kvs map[string]interface{}) Ctx {
	c := parent
	for k, v := range kvs {
		c = WithValue(c, k, v)
	}
	return c
}

// Value reads back a value stored with WithValue
func Value(c Ctx, key string) interface{} {
	return c.Context.Value(valueKey(key))
}

func WithCancel(parent Ctx) (Ctx, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent.Context)
	return Ctx{
		Context: ctx,
		Logger:  parent.Logger,
	}, cancel
}

func WithTimeout(parent Ctx, timeout time.Duration) (Ctx, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(parent.Context, timeout)
	return Ctx{
		Context: ctx,
		Logger:  parent.Logger,
	}, cancel
}
