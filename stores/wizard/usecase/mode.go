package usecase

import (
	"sync"

	"github.com/x-xyz/nftwizard/base/ctx"
	"github.com/x-xyz/nftwizard/domain"
	"github.com/x-xyz/nftwizard/domain/listing"
	"github.com/x-xyz/nftwizard/domain/wizard"
)

type ModeCfg struct {
	Source listing.Reconciler
}

type modeImpl struct {
	mu       sync.Mutex
	mode     wizard.Mode
	source   listing.Reconciler
	listings []*listing.Listing
	err      error
}

func NewMode(cfg *ModeCfg) wizard.ModeUseCase {
	return &modeImpl{
		mode:     wizard.ModeSelect,
		source:   cfg.Source,
		listings: []*listing.Listing{},
	}
}

func (im *modeImpl) Mode() wizard.Mode {
	im.mu.Lock()
	defer im.mu.Unlock()
	return im.mode
}

// Enter switches mode. Entering BrowseAndBuy replays the listing events, a failure there is
// kept in Err rather than returned.
func (im *modeImpl) Enter(c ctx.Ctx, m wizard.Mode) error {
	if m != wizard.ModeListAsset && m != wizard.ModeBrowseAndBuy {
		return domain.ErrInvalidMode
	}

	im.mu.Lock()
	defer im.mu.Unlock()
	im.mode = m
	if m == wizard.ModeBrowseAndBuy {
		im.refreshLocked(c)
	}
	return nil
}

func (im *modeImpl) Back() {
	im.mu.Lock()
	defer im.mu.Unlock()
	im.mode = wizard.ModeSelect
	im.listings = []*listing.Listing{}
	im.err = nil
}

func (im *modeImpl) SetSource(c ctx.Ctx, src listing.Reconciler) {
	im.mu.Lock()
	defer im.mu.Unlock()
	im.source = src
	if im.mode == wizard.ModeBrowseAndBuy {
		im.refreshLocked(c)
	}
}

func (im *modeImpl) Listings() []*listing.Listing {
	im.mu.Lock()
	defer im.mu.Unlock()
	return append([]*listing.Listing{}, im.listings...)
}

func (im *modeImpl) Err() error {
	im.mu.Lock()
	defer im.mu.Unlock()
	return im.err
}

// Refresh replays the listing events again
func (im *modeImpl) Refresh(c ctx.Ctx) error {
	im.mu.Lock()
	defer im.mu.Unlock()
	if im.mode != wizard.ModeBrowseAndBuy {
		return domain.ErrInvalidMode
	}
	im.refreshLocked(c)
	return im.err
}

// refreshLocked always goes back to the event streams, other accounts' sales and delists
// are only visible there
func (im *modeImpl) refreshLocked(c ctx.Ctx) {
	if im.source == nil {
		im.listings = []*listing.Listing{}
		im.err = nil
		return
	}
	im.source.Invalidate(c)
	ls, err := im.source.ActiveListings(c)
	if err != nil {
		c.WithField("err", err).Error("reconciler.ActiveListings failed")
	}
	if ls == nil {
		ls = []*listing.Listing{}
	}
	im.listings = ls
	im.err = err
}
