package ens

import (
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	goens "github.com/wealdtech/go-ens/v3"
	"github.com/x-xyz/nftwizard/base/ctx"
	"github.com/x-xyz/nftwizard/base/log"
	"github.com/x-xyz/nftwizard/domain"
	"github.com/x-xyz/nftwizard/domain/keys"
	"github.com/x-xyz/nftwizard/service/cache"
	"github.com/x-xyz/nftwizard/service/cache/provider"
)

type Cfg struct {
	Backend bind.ContractBackend
	Cache   provider.Provider
	Ttl     time.Duration
}

type impl struct {
	resolve func(name string) (common.Address, error)
	cache   cache.Service
}

func New(cfg *Cfg) ENS {
	return &impl{
		resolve: func(name string) (common.Address, error) {
			return goens.Resolve(cfg.Backend, name)
		},
		cache: cache.New(cache.ServiceConfig{
			Ttl:   cfg.Ttl,
			Pfx:   keys.PfxEns,
			Cache: cfg.Cache,
		}),
	}
}

func (im *impl) Resolve(ctx ctx.Ctx, name string) (domain.Address, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	res := domain.Address("")
	key := keys.Key("resolve", name)
	err := im.cache.GetByFunc(ctx, key, &res, func() (interface{}, error) {
		addr, err := im.resolve(name)
		if err != nil && err.Error() == "unregistered name" {
			val := domain.Address("")
			return &val, nil
		}
		if err != nil {
			ctx.WithFields(log.Fields{
				"err":  err,
				"name": name,
			}).Error("failed to goens.Resolve")
			return nil, err
		}
		val := domain.ToAddress(addr)
		return &val, nil
	})

	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
		}).Error("failed to cache.GetByFunc")
		return "", err
	}

	if res.IsEmpty() || res.Equals(domain.EmptyAddress) {
		return "", domain.ErrNameUnresolvable
	}

	return res, nil
}
