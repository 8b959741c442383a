package cache

import (
	"encoding/json"
	"reflect"
	"time"

	"golang.org/x/xerrors"

	"github.com/x-xyz/nftwizard/base/ctx"
	"github.com/x-xyz/nftwizard/base/log"
	"github.com/x-xyz/nftwizard/base/metrics"
	"github.com/x-xyz/nftwizard/domain/keys"
	"github.com/x-xyz/nftwizard/service/cache/provider"
)

type impl struct {
	ttl         time.Duration
	pfx         string
	cache       provider.Provider
	metrics     metrics.Service
	serialize   Serializer
	deserialize Deserializer
}

func New(config ServiceConfig) Service {
	if config.Serialize == nil {
		config.Serialize = json.Marshal
	}
	if config.Deserialize == nil {
		config.Deserialize = json.Unmarshal
	}
	if config.Metrics == nil {
		config.Metrics = metrics.New("cache")
	}

	return &impl{
		ttl:         config.Ttl,
		pfx:         config.Pfx,
		cache:       config.Cache,
		metrics:     config.Metrics,
		serialize:   config.Serialize,
		deserialize: config.Deserialize,
	}
}

func (im *impl) bump(key string) {
	im.metrics.BumpSum(key, 1, "pfx", im.pfx)
}

func (im *impl) GetByFunc(c ctx.Ctx, key string, container interface{}, getter OneTimeGetter) error {
	err := im.Get(c, key, container)
	if err == nil {
		im.bump("hit")
		return nil
	} else if err != ErrNotFound {
		c.WithFields(log.Fields{"err": err, "pfx": im.pfx, "key": key}).Warn("cache unreadable, refetching")
	}
	im.bump("miss")

	val, err := getter()
	if err != nil {
		return err
	}

	dst, src := reflect.ValueOf(container), reflect.ValueOf(val)
	if dst.Kind() != reflect.Ptr || src.Kind() != reflect.Ptr || dst.Type() != src.Type() {
		return xerrors.Errorf("%s/%s: %T into %T: %w", im.pfx, key, val, container, ErrTypeMismatch)
	}

	if err := im.Set(c, key, val); err != nil {
		im.bump("set.err")
	}
	dst.Elem().Set(src.Elem())
	return nil
}

func (im *impl) Get(c ctx.Ctx, key string, container interface{}) error {
	key = keys.Key(im.pfx, key)

	val, _, err := im.cache.Get(c, key)
	if err == provider.ErrNotFound {
		return ErrNotFound
	} else if err != nil {
		c.WithFields(log.Fields{"err": err, "key": key}).Error("cache.Get failed")
		return err
	}
	if err := im.deserialize(val, container); err != nil {
		c.WithFields(log.Fields{"err": err, "key": key}).Error("deserialize failed")
		return err
	}
	return nil
}

func (im *impl) Set(c ctx.Ctx, key string, value interface{}) error {
	key = keys.Key(im.pfx, key)

	val, err := im.serialize(value)
	if err != nil {
		c.WithFields(log.Fields{"err": err, "key": key}).Error("serialize failed")
		return err
	}
	if err := im.cache.Set(c, key, val, im.ttl); err != nil {
		c.WithFields(log.Fields{"err": err, "key": key}).Error("cache.Set failed")
		return err
	}
	return nil
}

// Del drops every key, stopping at the first provider failure
func (im *impl) Del(c ctx.Ctx, ks ...string) error {
	for _, key := range ks {
		key = keys.Key(im.pfx, key)
		if err := im.cache.Del(c, key); err != nil {
			c.WithFields(log.Fields{"err": err, "key": key}).Error("cache.Del failed")
			return err
		}
	}
	im.metrics.BumpSum("del", float64(len(ks)), "pfx", im.pfx)
	return nil
}
