package usecase

import (
	"github.com/x-xyz/nftwizard/base/ctx"
	"github.com/x-xyz/nftwizard/base/log"
	"github.com/x-xyz/nftwizard/domain"
)

type invalidator interface {
	Invalidate(ctx.Ctx)
}

// invalidateOnConfirmed drops the read caches of targets after each confirmation of sub
func invalidateOnConfirmed(sub domain.TxSubmitter, targets ...invalidator) {
	live := make([]invalidator, 0, len(targets))
	for _, t := range targets {
		if t != nil {
			live = append(live, t)
		}
	}
	if len(live) == 0 {
		return
	}
	sub.OnConfirmed(func(c ctx.Ctx, _ domain.PendingTransaction) {
		for _, t := range live {
			t.Invalidate(c)
		}
	})
}

func submit(c ctx.Ctx, sub domain.TxSubmitter, req *domain.WriteRequest) (*domain.PendingTransaction, error) {
	if sub.IsPending() {
		return nil, domain.ErrTxPending
	}
	p, err := sub.Submit(c, req)
	if err != nil {
		c.WithFields(log.Fields{
			"err":    err,
			"method": req.Method,
			"tag":    req.Tag,
		}).Error("submitter.Submit failed")
		return p, err
	}
	return p, nil
}
