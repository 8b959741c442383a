package usecase

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
	baseabi "github.com/x-xyz/nftwizard/base/abi"
	"github.com/x-xyz/nftwizard/base/ctx"
	"github.com/x-xyz/nftwizard/base/price"
	"github.com/x-xyz/nftwizard/base/validator"
	"github.com/x-xyz/nftwizard/domain"
	"github.com/x-xyz/nftwizard/domain/account"
	"github.com/x-xyz/nftwizard/domain/listing"
	"github.com/x-xyz/nftwizard/domain/wizard"
)

type TradeCfg struct {
	Marketplace domain.Address
	Account     account.UseCase
	Listings    listing.Reconciler
	Submitter   domain.TxSubmitter
}

type tradeImpl struct {
	marketplace domain.Address
	validator   *validator.CustomValidator
	sub         domain.TxSubmitter
}

func NewTrade(cfg *TradeCfg) wizard.TradeUseCase {
	im := &tradeImpl{
		marketplace: cfg.Marketplace,
		validator:   validator.New(),
		sub:         cfg.Submitter,
	}
	invalidateOnConfirmed(im.sub, cfg.Account, cfg.Listings)
	return im
}

// Buy pays price ether for the listing
func (im *tradeImpl) Buy(c ctx.Ctx, listingId string, priceStr string) (*domain.PendingTransaction, error) {
	id, err := im.parseListingId(listingId)
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(priceStr)) == 0 {
		return nil, domain.ErrEmptyPrice
	}
	value, err := price.ParseEther(priceStr)
	if err != nil {
		return nil, domain.ErrInvalidPrice
	}
	if value.Sign() <= 0 {
		return nil, domain.ErrNonPositivePrice
	}

	return submit(c, im.sub, &domain.WriteRequest{
		Contract: im.marketplace,
		ABI:      baseabi.MarketplaceABI,
		Method:   "buyNFT",
		Args:     []interface{}{[32]byte(id)},
		Value:    value,
		Tag:      "buy",
	})
}

func (im *tradeImpl) Delist(c ctx.Ctx, listingId string) (*domain.PendingTransaction, error) {
	id, err := im.parseListingId(listingId)
	if err != nil {
		return nil, err
	}
	return submit(c, im.sub, &domain.WriteRequest{
		Contract: im.marketplace,
		ABI:      baseabi.MarketplaceABI,
		Method:   "delistNFT",
		Args:     []interface{}{[32]byte(id)},
		Tag:      "delist",
	})
}

// parseListingId accepts a 0x prefixed 32 byte hex string
func (im *tradeImpl) parseListingId(s string) (common.Hash, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		return common.Hash{}, domain.ErrInvalidListingId
	}
	if err := im.validator.Var(s, "required,hexadecimal,len=66"); err != nil {
		return common.Hash{}, domain.ErrInvalidListingId
	}
	return common.HexToHash(s), nil
}

func (im *tradeImpl) Submitter() domain.TxSubmitter {
	return im.sub
}
