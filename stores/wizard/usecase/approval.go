package usecase

import (
	"sync"
	"time"

	baseabi "github.com/x-xyz/nftwizard/base/abi"
	"github.com/x-xyz/nftwizard/base/ctx"
	"github.com/x-xyz/nftwizard/base/log"
	"github.com/x-xyz/nftwizard/domain"
	"github.com/x-xyz/nftwizard/domain/account"
	"github.com/x-xyz/nftwizard/domain/wizard"
)

const defaultGracePeriod = time.Second

type ApprovalCfg struct {
	NFT         domain.Address
	Marketplace domain.Address
	Account     account.UseCase
	Submitter   domain.TxSubmitter
	// GracePeriod separates the approval confirmation from the Approved state
	GracePeriod time.Duration
}

type approvalImpl struct {
	mu    sync.Mutex
	state wizard.ApprovalState
	opId  uint64
	done  chan struct{}
	once  sync.Once

	nft         domain.Address
	marketplace domain.Address
	account     account.UseCase
	sub         domain.TxSubmitter
	grace       time.Duration
}

func NewApproval(cfg *ApprovalCfg) wizard.ApprovalUseCase {
	im := &approvalImpl{
		state:       wizard.NotApproved,
		done:        make(chan struct{}),
		nft:         cfg.NFT,
		marketplace: cfg.Marketplace,
		account:     cfg.Account,
		sub:         cfg.Submitter,
		grace:       cfg.GracePeriod,
	}
	if im.grace <= 0 {
		im.grace = defaultGracePeriod
	}
	invalidateOnConfirmed(im.sub, cfg.Account)
	im.sub.OnConfirmed(im.onConfirmed)
	im.sub.OnFailed(im.onFailed)
	return im
}

func (im *approvalImpl) State() wizard.ApprovalState {
	im.mu.Lock()
	defer im.mu.Unlock()
	return im.state
}

func (im *approvalImpl) Done() <-chan struct{} {
	return im.done
}

// Sync reads the on-chain approval flag. An approval in flight is left alone.
func (im *approvalImpl) Sync(c ctx.Ctx) (wizard.ApprovalState, error) {
	approved, err := im.account.IsApproved(c)
	if err != nil {
		c.WithField("err", err).Error("account.IsApproved failed")
		return im.State(), err
	}

	im.mu.Lock()
	defer im.mu.Unlock()
	switch {
	case im.state == wizard.Approving:
	case approved:
		im.markApprovedLocked()
	default:
		im.state = wizard.NotApproved
	}
	return im.state, nil
}

func (im *approvalImpl) Approve(c ctx.Ctx) (*domain.PendingTransaction, error) {
	im.mu.Lock()
	defer im.mu.Unlock()

	switch im.state {
	case wizard.Approved:
		return nil, domain.ErrInvalidStep
	case wizard.Approving:
		return nil, domain.ErrTxPending
	}

	p, err := submit(c, im.sub, &domain.WriteRequest{
		Contract: im.nft,
		ABI:      baseabi.NFTABI,
		Method:   "setApprovalForAll",
		Args:     []interface{}{im.marketplace.ToCommon(), true},
		Tag:      "approve",
	})
	if err != nil {
		return p, err
	}
	im.state = wizard.Approving
	im.opId = p.OpId
	return p, nil
}

func (im *approvalImpl) onConfirmed(c ctx.Ctx, p domain.PendingTransaction) {
	im.mu.Lock()
	defer im.mu.Unlock()
	if im.state != wizard.Approving || p.OpId != im.opId {
		return
	}
	opId := im.opId
	time.AfterFunc(im.grace, func() {
		im.mu.Lock()
		defer im.mu.Unlock()
		if im.state != wizard.Approving || im.opId != opId {
			return
		}
		c.WithField("hash", p.Hash).Info("marketplace approved")
		im.markApprovedLocked()
	})
}

func (im *approvalImpl) onFailed(c ctx.Ctx, p domain.PendingTransaction) {
	im.mu.Lock()
	defer im.mu.Unlock()
	if im.state != wizard.Approving || p.OpId != im.opId {
		return
	}
	c.WithFields(log.Fields{
		"hash": p.Hash,
		"err":  p.Err,
	}).Warn("approval failed")
	im.state = wizard.NotApproved
}

func (im *approvalImpl) markApprovedLocked() {
	im.state = wizard.Approved
	im.once.Do(func() { close(im.done) })
}

func (im *approvalImpl) Submitter() domain.TxSubmitter {
	return im.sub
}
