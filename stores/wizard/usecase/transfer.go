package usecase

import (
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	baseabi "github.com/x-xyz/nftwizard/base/abi"
	"github.com/x-xyz/nftwizard/base/ctx"
	"github.com/x-xyz/nftwizard/base/log"
	"github.com/x-xyz/nftwizard/base/validator"
	"github.com/x-xyz/nftwizard/domain"
	"github.com/x-xyz/nftwizard/domain/account"
	"github.com/x-xyz/nftwizard/domain/wizard"
	"golang.org/x/xerrors"
)

type TransferCfg struct {
	NFT   domain.Address
	Owner domain.Address
	// Resolver is optional, without it only hex recipients are accepted
	Resolver  wizard.NameResolver
	Account   account.UseCase
	Submitter domain.TxSubmitter
}

type transferImpl struct {
	mu        sync.Mutex
	step      wizard.TransferStep
	tokenId   domain.TokenId
	recipient string

	nft       domain.Address
	owner     domain.Address
	resolver  wizard.NameResolver
	validator *validator.CustomValidator
	sub       domain.TxSubmitter
}

func NewTransfer(cfg *TransferCfg) wizard.TransferUseCase {
	im := &transferImpl{
		step:      wizard.TransferSelectToken,
		nft:       cfg.NFT,
		owner:     cfg.Owner,
		resolver:  cfg.Resolver,
		validator: validator.New(),
		sub:       cfg.Submitter,
	}
	invalidateOnConfirmed(im.sub, cfg.Account)
	return im
}

func (im *transferImpl) Step() wizard.TransferStep {
	im.mu.Lock()
	defer im.mu.Unlock()
	return im.step
}

func (im *transferImpl) TokenId() domain.TokenId {
	im.mu.Lock()
	defer im.mu.Unlock()
	return im.tokenId
}

func (im *transferImpl) Recipient() string {
	im.mu.Lock()
	defer im.mu.Unlock()
	return im.recipient
}

func (im *transferImpl) SelectToken(id domain.TokenId) {
	im.mu.Lock()
	defer im.mu.Unlock()
	im.tokenId = domain.TokenId(strings.TrimSpace(string(id)))
}

func (im *transferImpl) SetRecipient(recipient string) {
	im.mu.Lock()
	defer im.mu.Unlock()
	im.recipient = strings.TrimSpace(recipient)
}

func (im *transferImpl) Next() error {
	im.mu.Lock()
	defer im.mu.Unlock()

	if im.step != wizard.TransferSelectToken {
		return domain.ErrInvalidStep
	}
	if im.tokenId.IsEmpty() {
		return domain.ErrEmptyTokenId
	}
	if err := im.validator.Var(string(im.tokenId), "tokenid"); err != nil {
		return domain.ErrInvalidTokenId
	}
	im.step = wizard.TransferEnterRecipient
	return nil
}

func (im *transferImpl) Transfer(c ctx.Ctx) (*domain.PendingTransaction, error) {
	im.mu.Lock()
	defer im.mu.Unlock()

	if im.step != wizard.TransferEnterRecipient {
		return nil, domain.ErrInvalidStep
	}
	if im.sub.IsPending() {
		return nil, domain.ErrTxPending
	}
	if len(im.recipient) == 0 {
		return nil, domain.ErrEmptyRecipient
	}
	to, err := im.resolveRecipient(c, im.recipient)
	if err != nil {
		return nil, err
	}
	tokenId, err := im.tokenId.ToBigInt()
	if err != nil {
		return nil, err
	}

	p, err := submit(c, im.sub, &domain.WriteRequest{
		Contract: im.nft,
		ABI:      baseabi.NFTABI,
		Method:   "transferFrom",
		Args:     []interface{}{im.owner.ToCommon(), to.ToCommon(), tokenId},
		Tag:      "transfer",
	})
	if err != nil {
		return p, err
	}
	im.step = wizard.TransferDone
	return p, nil
}

func (im *transferImpl) resolveRecipient(c ctx.Ctx, recipient string) (domain.Address, error) {
	if validator.IsEnsName(recipient) && im.resolver != nil {
		addr, err := im.resolver.Resolve(c, recipient)
		if err != nil {
			c.WithFields(log.Fields{
				"err":  err,
				"name": recipient,
			}).Warn("resolver.Resolve failed")
			return "", xerrors.Errorf("%s: %w", recipient, domain.ErrInvalidRecipient)
		}
		return addr, nil
	}
	if err := im.validator.Var(recipient, "eth_addr"); err != nil {
		return "", domain.ErrInvalidRecipient
	}
	return domain.ToAddress(common.HexToAddress(recipient)), nil
}

func (im *transferImpl) Back() {
	im.mu.Lock()
	defer im.mu.Unlock()
	if im.step > wizard.TransferSelectToken {
		im.step--
	}
}

func (im *transferImpl) Reset() {
	im.mu.Lock()
	defer im.mu.Unlock()
	im.step = wizard.TransferSelectToken
	im.tokenId = ""
	im.recipient = ""
}

func (im *transferImpl) Submitter() domain.TxSubmitter {
	return im.sub
}
