package repository

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/viney-shih/goroutines"
	baseabi "github.com/x-xyz/nftwizard/base/abi"
	"github.com/x-xyz/nftwizard/base/ctx"
	"github.com/x-xyz/nftwizard/base/log"
	"github.com/x-xyz/nftwizard/domain/listing"
	"golang.org/x/xerrors"
)

// EventSource reads every log of one event emitted by the marketplace
type EventSource interface {
	EventLogs(ctx.Ctx, common.Hash) ([]types.Log, error)
}

type eventRepo struct {
	source EventSource
}

func NewEventRepo(source EventSource) listing.EventRepo {
	return &eventRepo{source: source}
}

type streamResult struct {
	idx  int
	logs []types.Log
}

// FetchAll queries the listed, sold and delisted streams concurrently. Any failing stream
// fails the whole fetch.
func (r *eventRepo) FetchAll(c ctx.Ctx) (*listing.EventLogs, error) {
	events := []common.Hash{
		baseabi.NFTListedEventId,
		baseabi.NFTSoldEventId,
		baseabi.NFTDelistedEventId,
	}

	b := goroutines.NewBatch(len(events), goroutines.WithBatchSize(len(events)))
	defer b.Close()
	for i := range events {
		idx := i
		b.Queue(func() (interface{}, error) {
			logs, err := r.source.EventLogs(c, events[idx])
			if err != nil {
				return nil, err
			}
			return &streamResult{idx: idx, logs: logs}, nil
		})
	}
	b.QueueComplete()

	streams := make([][]types.Log, len(events))
	var firstErr error
	for ret := range b.Results() {
		if err := ret.Error(); err != nil {
			c.WithField("err", err).Error("source.EventLogs failed")
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		res := ret.Value().(*streamResult)
		streams[res.idx] = res.logs
	}
	if firstErr != nil {
		return nil, xerrors.Errorf("failed to fetch marketplace events: %w", firstErr)
	}

	c.WithFields(log.Fields{
		"listed":   len(streams[0]),
		"sold":     len(streams[1]),
		"delisted": len(streams[2]),
	}).Debug("marketplace events fetched")

	return &listing.EventLogs{
		Listed:   streams[0],
		Sold:     streams[1],
		Delisted: streams[2],
	}, nil
}
