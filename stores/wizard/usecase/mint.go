package usecase

import (
	"math/big"
	"sync"

	baseabi "github.com/x-xyz/nftwizard/base/abi"
	"github.com/x-xyz/nftwizard/base/ctx"
	"github.com/x-xyz/nftwizard/base/log"
	"github.com/x-xyz/nftwizard/domain"
	"github.com/x-xyz/nftwizard/domain/account"
	"github.com/x-xyz/nftwizard/domain/wizard"
	"golang.org/x/xerrors"
)

type MintCfg struct {
	NFT       domain.Address
	MintPrice *big.Int
	Account   account.UseCase
	Submitter domain.TxSubmitter
}

type mintImpl struct {
	mu        sync.Mutex
	step      wizard.MintStep
	nft       domain.Address
	mintPrice *big.Int
	account   account.UseCase
	sub       domain.TxSubmitter
}

func NewMint(cfg *MintCfg) wizard.MintUseCase {
	im := &mintImpl{
		step:      wizard.MintChooseMethod,
		nft:       cfg.NFT,
		mintPrice: cfg.MintPrice,
		account:   cfg.Account,
		sub:       cfg.Submitter,
	}
	invalidateOnConfirmed(im.sub, cfg.Account)
	return im
}

func (im *mintImpl) Step() wizard.MintStep {
	im.mu.Lock()
	defer im.mu.Unlock()
	return im.step
}

// ClaimFree is refused once the account has claimed its free token
func (im *mintImpl) ClaimFree(c ctx.Ctx) (*domain.PendingTransaction, error) {
	im.mu.Lock()
	defer im.mu.Unlock()

	if im.step != wizard.MintChooseMethod {
		return nil, domain.ErrInvalidStep
	}
	if im.sub.IsPending() {
		return nil, domain.ErrTxPending
	}

	claimed, err := im.account.HasClaimed(c)
	if err != nil {
		c.WithField("err", err).Error("account.HasClaimed failed")
		return nil, xerrors.Errorf("reading claimed flag: %w", err)
	}
	if claimed {
		return nil, domain.ErrAlreadyClaimed
	}

	p, err := submit(c, im.sub, &domain.WriteRequest{
		Contract: im.nft,
		ABI:      baseabi.NFTABI,
		Method:   "claimFreeNFT",
		Tag:      "mint.claim",
	})
	if err != nil {
		return p, err
	}
	im.step = wizard.MintDone
	return p, nil
}

func (im *mintImpl) MintPaid(c ctx.Ctx) (*domain.PendingTransaction, error) {
	im.mu.Lock()
	defer im.mu.Unlock()

	if im.step != wizard.MintChooseMethod {
		return nil, domain.ErrInvalidStep
	}

	value := new(big.Int)
	if im.mintPrice != nil {
		value.Set(im.mintPrice)
	}
	p, err := submit(c, im.sub, &domain.WriteRequest{
		Contract: im.nft,
		ABI:      baseabi.NFTABI,
		Method:   "mint",
		Value:    value,
		Tag:      "mint.paid",
	})
	if err != nil {
		return p, err
	}
	c.WithFields(log.Fields{
		"hash":  p.Hash,
		"value": value,
	}).Info("paid mint submitted")
	im.step = wizard.MintDone
	return p, nil
}

func (im *mintImpl) Reset() {
	im.mu.Lock()
	defer im.mu.Unlock()
	im.step = wizard.MintChooseMethod
}

func (im *mintImpl) Submitter() domain.TxSubmitter {
	return im.sub
}
