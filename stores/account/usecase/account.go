package usecase

import (
	"time"

	"github.com/x-xyz/nftwizard/base/ctx"
	"github.com/x-xyz/nftwizard/base/log"
	"github.com/x-xyz/nftwizard/domain"
	"github.com/x-xyz/nftwizard/domain/account"
	"github.com/x-xyz/nftwizard/domain/keys"
	"github.com/x-xyz/nftwizard/service/cache"
	"github.com/x-xyz/nftwizard/service/cache/provider"
)

const (
	keyOwned    = "owned"
	keyClaimed  = "claimed"
	keyApproved = "approved"
)

type AccountUseCaseCfg struct {
	Address     domain.Address
	Marketplace domain.Address
	NFT         account.NFTReader
	Cache       provider.Provider
	Ttl         time.Duration
}

type impl struct {
	address     domain.Address
	marketplace domain.Address
	nft         account.NFTReader
	cache       cache.Service
}

func New(cfg *AccountUseCaseCfg) account.UseCase {
	return &impl{
		address:     cfg.Address,
		marketplace: cfg.Marketplace,
		nft:         cfg.NFT,
		cache: cache.New(cache.ServiceConfig{
			Ttl:   cfg.Ttl,
			Pfx:   keys.Key(keys.PfxAccount, cfg.Address.ToLowerStr()),
			Cache: cfg.Cache,
		}),
	}
}

func (im *impl) Address() domain.Address {
	return im.address
}

func (im *impl) OwnedTokens(c ctx.Ctx) ([]domain.TokenId, error) {
	if im.address.IsEmpty() {
		return []domain.TokenId{}, nil
	}
	res := []domain.TokenId{}
	err := im.cache.GetByFunc(c, keyOwned, &res, func() (interface{}, error) {
		ids, err := im.nft.GetTokensOwnedBy(c, im.address)
		if err != nil {
			return nil, err
		}
		return &ids, nil
	})
	if err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"address": im.address,
		}).Error("nft.GetTokensOwnedBy failed")
		return nil, err
	}
	return res, nil
}

func (im *impl) HasClaimed(c ctx.Ctx) (bool, error) {
	if im.address.IsEmpty() {
		return false, nil
	}
	res := false
	err := im.cache.GetByFunc(c, keyClaimed, &res, func() (interface{}, error) {
		claimed, err := im.nft.HasClaimedFreeNFT(c, im.address)
		if err != nil {
			return nil, err
		}
		return &claimed, nil
	})
	if err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"address": im.address,
		}).Error("nft.HasClaimedFreeNFT failed")
		return false, err
	}
	return res, nil
}

func (im *impl) IsApproved(c ctx.Ctx) (bool, error) {
	if im.address.IsEmpty() {
		return false, nil
	}
	res := false
	err := im.cache.GetByFunc(c, keyApproved, &res, func() (interface{}, error) {
		approved, err := im.nft.IsApprovedForAll(c, im.address, im.marketplace)
		if err != nil {
			return nil, err
		}
		return &approved, nil
	})
	if err != nil {
		c.WithFields(log.Fields{
			"err":         err,
			"address":     im.address,
			"marketplace": im.marketplace,
		}).Error("nft.IsApprovedForAll failed")
		return false, err
	}
	return res, nil
}

func (im *impl) Snapshot(c ctx.Ctx) (*account.Snapshot, error) {
	owned, err := im.OwnedTokens(c)
	if err != nil {
		return nil, err
	}
	claimed, err := im.HasClaimed(c)
	if err != nil {
		return nil, err
	}
	approved, err := im.IsApproved(c)
	if err != nil {
		return nil, err
	}
	return &account.Snapshot{
		Address:     im.address,
		OwnedTokens: owned,
		HasClaimed:  claimed,
		Approved:    approved,
	}, nil
}

// Invalidate drops every cached read, the next read goes to the chain
func (im *impl) Invalidate(c ctx.Ctx) {
	if err := im.cache.Del(c, keyOwned, keyClaimed, keyApproved); err != nil {
		c.WithField("err", err).Warn("cache.Del failed")
	}
}
