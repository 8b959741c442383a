package cache

import (
	"errors"
	"time"

	"github.com/x-xyz/nftwizard/base/ctx"
	"github.com/x-xyz/nftwizard/base/metrics"
	"github.com/x-xyz/nftwizard/service/cache/provider"
)

var (
	ErrNotFound     = errors.New("cache not found")
	ErrTypeMismatch = errors.New("cached value does not fit container")
)

// OneTimeGetter fetches the value on a miss, it must return a pointer
type OneTimeGetter func() (interface{}, error)

type Serializer func(interface{}) ([]byte, error)

type Deserializer func([]byte, interface{}) error

// Service is a read-through cache over a raw provider. Entries are only ever dropped with
// Del, never patched in place.
type Service interface {
	// GetByFunc reads key into container, filling it from getter on miss. getter must
	// return a pointer of the same type as container.
	GetByFunc(c ctx.Ctx, key string, container interface{}, getter OneTimeGetter) error
	Get(c ctx.Ctx, key string, container interface{}) error
	Set(c ctx.Ctx, key string, value interface{}) error
	Del(c ctx.Ctx, keys ...string) error
}

type ServiceConfig struct {
	Ttl   time.Duration
	Pfx   string
	Cache provider.Provider
	// Metrics receives hit and miss counts tagged with Pfx, optional
	Metrics     metrics.Service
	Serialize   Serializer
	Deserialize Deserializer
}
