package chain

import (
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	bCtx "github.com/x-xyz/nftwizard/base/ctx"
	bEthereum "github.com/x-xyz/nftwizard/base/ethereum"
	"github.com/x-xyz/nftwizard/base/log"
	"github.com/x-xyz/nftwizard/domain"
	"golang.org/x/xerrors"
)

const (
	defaultMaxConcurrency = 4
	// maxSplitDepth bounds how many times a failing log query is halved
	maxSplitDepth = 20
)

type ClientCfg struct {
	RpcUrl         string
	MaxConcurrency int
}

type Client interface {
	Call(bCtx.Ctx, common.Address, *big.Int, abi.ABI, string, ...interface{}) ([]interface{}, error)
	// FilterLogs queries [FromBlock, ToBlock], nil meaning earliest and latest, halving the
	// block range whenever the provider rejects a query
	FilterLogs(bCtx.Ctx, ethereum.FilterQuery) ([]types.Log, error)
	EthClient() domain.EthClientRepo
}

type clientImpl struct {
	client domain.EthClientRepo
}

// Dial connects to the rpc and bounds concurrent requests
func Dial(ctx bCtx.Ctx, cfg *ClientCfg) (domain.EthClientRepo, error) {
	client, err := ethclient.DialContext(ctx, cfg.RpcUrl)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"url": cfg.RpcUrl,
		}).Error("failed to dial rpc")
		return nil, xerrors.Errorf("failed to dial rpc: %w", err)
	}
	n := cfg.MaxConcurrency
	if n <= 0 {
		n = defaultMaxConcurrency
	}
	return bEthereum.NewThrottledClient(client, n), nil
}

func NewClient(client domain.EthClientRepo) Client {
	return &clientImpl{client: client}
}

func (c *clientImpl) EthClient() domain.EthClientRepo {
	return c.client
}

func (c *clientImpl) Call(ctx bCtx.Ctx, addr common.Address, blk *big.Int, _abi abi.ABI, method string, params ...interface{}) ([]interface{}, error) {
	data, err := _abi.Pack(method, params...)
	if err != nil {
		ctx.WithFields(log.Fields{
			"method": method,
			"params": params,
			"err":    err,
		}).Error("abi.Pack failed")
		return nil, err
	}
	msg := ethereum.CallMsg{
		To:   &addr,
		Data: data,
	}
	res, err := c.client.CallContract(ctx, msg, blk)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":    err,
			"method": method,
		}).Error("client.CallContract failed")
		return nil, err
	}
	unpacked, err := _abi.Unpack(method, res)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":    err,
			"method": method,
		}).Error("abi.Unpack failed")
		return nil, err
	}
	return unpacked, nil
}

func (c *clientImpl) FilterLogs(ctx bCtx.Ctx, q ethereum.FilterQuery) ([]types.Log, error) {
	var begin, end uint64
	if q.FromBlock != nil {
		begin = q.FromBlock.Uint64()
	}
	if q.ToBlock != nil {
		end = q.ToBlock.Uint64()
	} else {
		latest, err := c.client.BlockNumber(ctx)
		if err != nil {
			ctx.WithField("err", err).Error("client.BlockNumber failed")
			return nil, xerrors.Errorf("failed to get latest block: %w", err)
		}
		end = latest
	}
	if begin > end {
		return []types.Log{}, nil
	}
	return c.filterLogs(ctx, q, newBlockRange(begin, end), 0)
}

func (c *clientImpl) filterLogs(ctx bCtx.Ctx, q ethereum.FilterQuery, r *blockRange, depth int) ([]types.Log, error) {
	q.FromBlock = r.begin
	q.ToBlock = r.end
	logs, err := c.client.FilterLogs(ctx, q)
	if err == nil {
		return logs, nil
	}
	if r.isSingle() || depth >= maxSplitDepth || ctx.Err() != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"range": r.String(),
			"depth": depth,
		}).Error("client.FilterLogs failed")
		return nil, xerrors.Errorf("failed to filter logs in %s: %w", r, err)
	}
	ctx.WithFields(log.Fields{
		"err":   err,
		"range": r.String(),
	}).Warn("client.FilterLogs failed, splitting range")

	first, second := r.split()
	firstLogs, err := c.filterLogs(ctx, q, first, depth+1)
	if err != nil {
		return nil, err
	}
	secondLogs, err := c.filterLogs(ctx, q, second, depth+1)
	if err != nil {
		return nil, err
	}
	return append(firstLogs, secondLogs...), nil
}
