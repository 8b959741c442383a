package usecase

import (
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	baseabi "github.com/x-xyz/nftwizard/base/abi"
	"github.com/x-xyz/nftwizard/base/ctx"
	"github.com/x-xyz/nftwizard/base/log"
	"github.com/x-xyz/nftwizard/base/metrics"
	"github.com/x-xyz/nftwizard/base/price"
	"github.com/x-xyz/nftwizard/domain"
	"github.com/x-xyz/nftwizard/domain/listing"
	"golang.org/x/xerrors"
)

type ReconcilerCfg struct {
	Repo    listing.EventRepo
	Metrics metrics.Service
}

type impl struct {
	repo    listing.EventRepo
	metrics metrics.Service

	// active is the last reconciled set, nil until fetched or after Invalidate
	mu     sync.Mutex
	active []*listing.Listing
}

func New(cfg *ReconcilerCfg) listing.Reconciler {
	m := cfg.Metrics
	if m == nil {
		m = metrics.New("listing")
	}
	return &impl{
		repo:    cfg.Repo,
		metrics: m,
	}
}

// Reconcile keeps the listed events whose listing id was neither sold nor delisted. Output
// follows the listed stream order. When an id is listed twice the later event wins and takes
// the later position.
func (im *impl) Reconcile(c ctx.Ctx, listed, sold, delisted []types.Log) []*listing.Listing {
	closed := make(map[common.Hash]struct{}, len(sold)+len(delisted))
	im.collectIds(c, "sold", sold, closed)
	im.collectIds(c, "delisted", delisted, closed)

	res := make([]*listing.Listing, 0, len(listed))
	pos := make(map[common.Hash]int, len(listed))
	for i := range listed {
		l := &listed[i]
		ev, err := baseabi.ToNFTListedLog(l)
		if err != nil {
			im.skip(c, "listed", l, err)
			continue
		}
		if _, ok := closed[ev.ListingId]; ok {
			continue
		}
		if prev, ok := pos[ev.ListingId]; ok {
			c.WithFields(log.Fields{
				"listingId": ev.ListingId.Hex(),
				"block":     l.BlockNumber,
			}).Warn("listing id listed twice, keeping the later event")
			res[prev] = nil
		}
		pos[ev.ListingId] = len(res)
		res = append(res, toListing(ev, l))
	}

	active := make([]*listing.Listing, 0, len(pos))
	for _, l := range res {
		if l != nil {
			active = append(active, l)
		}
	}
	return active
}

func (im *impl) collectIds(c ctx.Ctx, event string, logs []types.Log, set map[common.Hash]struct{}) {
	for i := range logs {
		id, err := baseabi.ListingIdOf(&logs[i])
		if err != nil {
			im.skip(c, event, &logs[i], err)
			continue
		}
		set[id] = struct{}{}
	}
}

func (im *impl) skip(c ctx.Ctx, event string, l *types.Log, err error) {
	c.WithFields(log.Fields{
		"err":      err,
		"event":    event,
		"block":    l.BlockNumber,
		"txHash":   l.TxHash.Hex(),
		"logIndex": l.Index,
	}).Warn("skipping undecodable log")
	im.metrics.BumpSum("reconcile.skipped", 1, "event", event)
}

func toListing(ev *baseabi.NFTListedLog, l *types.Log) *listing.Listing {
	return &listing.Listing{
		Id:          ev.ListingId.Hex(),
		Seller:      domain.ToAddress(ev.Seller),
		NftContract: domain.ToAddress(ev.NftContract),
		TokenId:     domain.ToTokenId(ev.TokenId),
		PriceWei:    ev.Price,
		Price:       price.ToEther(ev.Price),
		OriginBlock: l.BlockNumber,
		TxHash:      domain.ToTxHash(l.TxHash),
		LogIndex:    l.Index,
	}
}

// ActiveListings returns the last reconciled set, replaying the three streams when it was
// invalidated. A failed fetch yields an empty set together with the error and caches nothing.
func (im *impl) ActiveListings(c ctx.Ctx) ([]*listing.Listing, error) {
	defer im.metrics.BumpTime("active_listings.time").End()

	im.mu.Lock()
	defer im.mu.Unlock()
	if im.active != nil {
		im.metrics.BumpSum("active_listings.hit", 1)
		return append([]*listing.Listing{}, im.active...), nil
	}

	logs, err := im.repo.FetchAll(c)
	if err != nil {
		c.WithField("err", err).Error("repo.FetchAll failed")
		im.metrics.BumpSum("active_listings.err", 1)
		return []*listing.Listing{}, xerrors.Errorf("failed to load active listings: %w", err)
	}
	im.active = im.Reconcile(c, logs.Listed, logs.Sold, logs.Delisted)
	im.metrics.BumpAvg("active_listings.count", float64(len(im.active)))
	return append([]*listing.Listing{}, im.active...), nil
}

// Invalidate drops the reconciled set, the next ActiveListings replays the event streams
func (im *impl) Invalidate(c ctx.Ctx) {
	im.mu.Lock()
	defer im.mu.Unlock()
	im.active = nil
}
