package txsubmitter

import (
	"errors"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/x-xyz/nftwizard/base/backoff"
	bCtx "github.com/x-xyz/nftwizard/base/ctx"
	"github.com/x-xyz/nftwizard/base/goroutine"
	"github.com/x-xyz/nftwizard/base/log"
	"github.com/x-xyz/nftwizard/base/metrics"
	"github.com/x-xyz/nftwizard/domain"
	"golang.org/x/xerrors"
)

const (
	defaultPollInterval   = 2 * time.Second
	defaultPollLimit      = 10 * time.Second
	defaultConfirmTimeout = 5 * time.Minute
)

type Cfg struct {
	Name   string
	Sender domain.TxSender
	// PollInterval grows linearly between receipt polls up to PollLimit
	PollInterval   time.Duration
	PollLimit      time.Duration
	ConfirmTimeout time.Duration
	Metrics        metrics.Service
}

// submitter tracks one write at a time. A new Submit or a Reset supersedes the tracked
// operation, whose watcher then drops its result.
type submitter struct {
	name           string
	sender         domain.TxSender
	pollInterval   time.Duration
	pollLimit      time.Duration
	confirmTimeout time.Duration
	metrics        metrics.Service

	mu        sync.Mutex
	opSeq     uint64
	current   domain.PendingTransaction
	changed   chan struct{}
	confirmed []domain.ConfirmedHook
	failed    []domain.ConfirmedHook
}

func New(cfg *Cfg) domain.TxSubmitter {
	s := &submitter{
		name:           cfg.Name,
		sender:         cfg.Sender,
		pollInterval:   cfg.PollInterval,
		pollLimit:      cfg.PollLimit,
		confirmTimeout: cfg.ConfirmTimeout,
		metrics:        cfg.Metrics,
		current:        domain.PendingTransaction{Phase: domain.TxPhaseIdle},
		changed:        make(chan struct{}),
	}
	if s.pollInterval <= 0 {
		s.pollInterval = defaultPollInterval
	}
	if s.pollLimit <= 0 {
		s.pollLimit = defaultPollLimit
	}
	if s.confirmTimeout <= 0 {
		s.confirmTimeout = defaultConfirmTimeout
	}
	if s.metrics == nil {
		s.metrics = metrics.New("txsubmitter")
	}
	return s
}

// OnConfirmed registers a hook run once for every tracked operation that confirms
func (s *submitter) OnConfirmed(h domain.ConfirmedHook) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.confirmed = append(s.confirmed, h)
}

// OnFailed registers a hook run when a broadcast operation reverts or times out
func (s *submitter) OnFailed(h domain.ConfirmedHook) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failed = append(s.failed, h)
}

func (s *submitter) Submit(c bCtx.Ctx, req *domain.WriteRequest) (*domain.PendingTransaction, error) {
	s.mu.Lock()
	s.opSeq++
	opId := s.opSeq
	s.setLocked(domain.PendingTransaction{
		OpId:  opId,
		Tag:   req.Tag,
		Phase: domain.TxPhaseSubmitted,
	})
	s.mu.Unlock()

	c = bCtx.WithValues(c, map[string]interface{}{
		"submitter": s.name,
		"opId":      opId,
	})
	s.metrics.BumpSum("submit", 1, "tag", req.Tag)

	hash, err := s.sender.Send(c, req)
	if err != nil {
		c.WithField("err", err).Error("sender.Send failed")
		s.metrics.BumpSum("submit.err", 1, "tag", req.Tag)
		snapshot, _ := s.update(opId, func(p *domain.PendingTransaction) {
			p.Phase = domain.TxPhaseFailed
			p.Err = err.Error()
		})
		return &snapshot, err
	}

	snapshot, ok := s.update(opId, func(p *domain.PendingTransaction) {
		p.Hash = hash
		p.Phase = domain.TxPhaseConfirming
	})
	if !ok {
		// superseded while broadcasting, nothing left to watch
		return &snapshot, nil
	}

	watchCtx := bCtx.Detach(c)
	goroutine.RecoverableGo(func() {
		s.watch(watchCtx, opId, hash)
	}, goroutine.WithLogger(c.Logger), goroutine.WithAfterRecovered(func(p interface{}, _ []byte) {
		s.finish(watchCtx, opId, domain.TxPhaseFailed, xerrors.Errorf("receipt watcher panicked: %v", p))
	}))

	return &snapshot, nil
}

func (s *submitter) watch(c bCtx.Ctx, opId uint64, hash domain.TxHash) {
	c, cancel := bCtx.WithTimeout(c, s.confirmTimeout)
	defer cancel()
	defer s.metrics.BumpTime("confirm.time").End()

	var receipt *types.Receipt
	err := backoff.NewLinear(s.pollInterval, s.pollLimit).Until(c, func() (bool, error) {
		if !s.isCurrent(opId) {
			return true, nil
		}
		r, err := s.sender.Receipt(c, hash)
		if errors.Is(err, ethereum.NotFound) {
			return false, nil
		} else if err != nil {
			c.WithField("err", err).Warn("sender.Receipt failed, retrying")
			return false, nil
		}
		receipt = r
		return true, nil
	})

	switch {
	case err != nil:
		c.WithField("err", err).Error("waiting for receipt failed")
		s.finish(c, opId, domain.TxPhaseFailed, xerrors.Errorf("%s: %w", hash, domain.ErrConfirmTimeout))
	case receipt == nil:
		c.Debug("operation superseded, receipt watcher stopped")
	case receipt.Status == types.ReceiptStatusSuccessful:
		s.finish(c, opId, domain.TxPhaseConfirmed, nil)
	default:
		s.finish(c, opId, domain.TxPhaseFailed, domain.ErrExecutionFailed)
	}
}

// finish records the final phase of opId and runs the matching hooks, unless opId has been
// superseded
func (s *submitter) finish(c bCtx.Ctx, opId uint64, phase domain.TxPhase, err error) {
	snapshot, ok := s.update(opId, func(p *domain.PendingTransaction) {
		p.Phase = phase
		if err != nil {
			p.Err = err.Error()
		}
	})
	if !ok {
		c.WithField("phase", phase).Debug("operation superseded, result discarded")
		return
	}

	s.mu.Lock()
	hooks := s.confirmed
	if phase == domain.TxPhaseFailed {
		hooks = s.failed
	}
	hooks = append([]domain.ConfirmedHook(nil), hooks...)
	s.mu.Unlock()

	c.WithFields(log.Fields{
		"hash":  snapshot.Hash,
		"phase": phase,
		"tag":   snapshot.Tag,
	}).Info("transaction finished")
	s.metrics.BumpSum(string(phase), 1, "tag", snapshot.Tag)

	for _, h := range hooks {
		h(c, snapshot)
	}
}

func (s *submitter) IsPending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current.Phase.IsPending()
}

func (s *submitter) Current() domain.PendingTransaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Reset stops tracking the current operation, the chain transaction itself is not affected
func (s *submitter) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setLocked(domain.PendingTransaction{Phase: domain.TxPhaseIdle})
}

// Wait blocks until the tracked operation is no longer pending
func (s *submitter) Wait(c bCtx.Ctx) (domain.PendingTransaction, error) {
	for {
		s.mu.Lock()
		cur, changed := s.current, s.changed
		s.mu.Unlock()
		if !cur.Phase.IsPending() {
			return cur, nil
		}
		select {
		case <-c.Done():
			return cur, c.Err()
		case <-changed:
		}
	}
}

func (s *submitter) isCurrent(opId uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current.OpId == opId
}

func (s *submitter) update(opId uint64, fn func(*domain.PendingTransaction)) (domain.PendingTransaction, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current.OpId != opId {
		return s.current, false
	}
	next := s.current
	fn(&next)
	s.setLocked(next)
	return next, true
}

func (s *submitter) setLocked(p domain.PendingTransaction) {
	s.current = p
	close(s.changed)
	s.changed = make(chan struct{})
}
