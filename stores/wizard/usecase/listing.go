package usecase

import (
	"strings"
	"sync"

	"github.com/shopspring/decimal"
	baseabi "github.com/x-xyz/nftwizard/base/abi"
	"github.com/x-xyz/nftwizard/base/ctx"
	"github.com/x-xyz/nftwizard/base/log"
	"github.com/x-xyz/nftwizard/base/price"
	"github.com/x-xyz/nftwizard/domain"
	"github.com/x-xyz/nftwizard/domain/account"
	"github.com/x-xyz/nftwizard/domain/listing"
	"github.com/x-xyz/nftwizard/domain/wizard"
)

const defaultFeeBps = 250

type ListingCfg struct {
	NFT         domain.Address
	Marketplace domain.Address
	// Fees is optional, DefaultFeeBps is used when it is missing or the read fails
	Fees          wizard.MarketplaceReader
	DefaultFeeBps int64
	Account       account.UseCase
	Listings      listing.Reconciler
	Submitter     domain.TxSubmitter
}

type listingImpl struct {
	mu       sync.Mutex
	step     wizard.ListingStep
	tokenId  domain.TokenId
	price    decimal.Decimal
	priceSet bool
	preview  *price.FeePreview

	nft           domain.Address
	marketplace   domain.Address
	fees          wizard.MarketplaceReader
	defaultFeeBps int64
	sub           domain.TxSubmitter
}

func NewListing(cfg *ListingCfg) wizard.ListingUseCase {
	im := &listingImpl{
		step:          wizard.ListingSelectToken,
		nft:           cfg.NFT,
		marketplace:   cfg.Marketplace,
		fees:          cfg.Fees,
		defaultFeeBps: cfg.DefaultFeeBps,
		sub:           cfg.Submitter,
	}
	if im.defaultFeeBps <= 0 {
		im.defaultFeeBps = defaultFeeBps
	}
	invalidateOnConfirmed(im.sub, cfg.Account, cfg.Listings)
	return im
}

func (im *listingImpl) Step() wizard.ListingStep {
	im.mu.Lock()
	defer im.mu.Unlock()
	return im.step
}

func (im *listingImpl) TokenId() domain.TokenId {
	im.mu.Lock()
	defer im.mu.Unlock()
	return im.tokenId
}

func (im *listingImpl) SelectToken(id domain.TokenId) {
	im.mu.Lock()
	defer im.mu.Unlock()
	im.tokenId = domain.TokenId(strings.TrimSpace(string(id)))
}

// SetPrice takes an ether amount, it must be strictly positive
func (im *listingImpl) SetPrice(s string) error {
	im.mu.Lock()
	defer im.mu.Unlock()

	if im.step != wizard.ListingSetPrice {
		return domain.ErrInvalidStep
	}
	s = strings.TrimSpace(s)
	if len(s) == 0 {
		return domain.ErrEmptyPrice
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return domain.ErrInvalidPrice
	}
	if !d.IsPositive() {
		return domain.ErrNonPositivePrice
	}
	if _, err := price.ToWei(d); err != nil {
		return domain.ErrInvalidPrice
	}
	im.price = d
	im.priceSet = true
	return nil
}

func (im *listingImpl) Next(c ctx.Ctx) error {
	im.mu.Lock()
	defer im.mu.Unlock()

	switch im.step {
	case wizard.ListingSelectToken:
		if im.tokenId.IsEmpty() {
			return domain.ErrEmptyTokenId
		}
		if _, err := im.tokenId.ToBigInt(); err != nil {
			return err
		}
		im.step = wizard.ListingSetPrice
	case wizard.ListingSetPrice:
		if !im.priceSet {
			return domain.ErrEmptyPrice
		}
		preview := price.NewFeePreview(im.price, im.feeBps(c))
		im.preview = &preview
		im.step = wizard.ListingConfirm
	default:
		return domain.ErrInvalidStep
	}
	return nil
}

func (im *listingImpl) feeBps(c ctx.Ctx) int64 {
	if im.fees == nil {
		return im.defaultFeeBps
	}
	bps, err := im.fees.FeeBasisPoints(c)
	if err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"default": im.defaultFeeBps,
		}).Warn("marketplace.FeeBasisPoints failed, using default")
		return im.defaultFeeBps
	}
	return bps
}

// Preview is set once the price has been confirmed
func (im *listingImpl) Preview() *price.FeePreview {
	im.mu.Lock()
	defer im.mu.Unlock()
	if im.preview == nil {
		return nil
	}
	p := *im.preview
	return &p
}

func (im *listingImpl) List(c ctx.Ctx) (*domain.PendingTransaction, error) {
	im.mu.Lock()
	defer im.mu.Unlock()

	if im.step != wizard.ListingConfirm {
		return nil, domain.ErrInvalidStep
	}
	tokenId, err := im.tokenId.ToBigInt()
	if err != nil {
		return nil, err
	}
	priceWei, err := price.ToWei(im.price)
	if err != nil {
		return nil, domain.ErrInvalidPrice
	}

	p, err := submit(c, im.sub, &domain.WriteRequest{
		Contract: im.marketplace,
		ABI:      baseabi.MarketplaceABI,
		Method:   "listNFT",
		Args:     []interface{}{im.nft.ToCommon(), tokenId, priceWei},
		Tag:      "list",
	})
	if err != nil {
		return p, err
	}
	im.step = wizard.ListingDone
	return p, nil
}

func (im *listingImpl) Back() {
	im.mu.Lock()
	defer im.mu.Unlock()
	if im.step > wizard.ListingSelectToken {
		im.step--
	}
}

func (im *listingImpl) Reset() {
	im.mu.Lock()
	defer im.mu.Unlock()
	im.step = wizard.ListingSelectToken
	im.tokenId = ""
	im.price = decimal.Zero
	im.priceSet = false
	im.preview = nil
}

func (im *listingImpl) Submitter() domain.TxSubmitter {
	return im.sub
}
