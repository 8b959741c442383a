package chain

import (
	"crypto/ecdsa"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	bCtx "github.com/x-xyz/nftwizard/base/ctx"
	bEthereum "github.com/x-xyz/nftwizard/base/ethereum"
	"github.com/x-xyz/nftwizard/base/log"
	"github.com/x-xyz/nftwizard/domain"
	"golang.org/x/xerrors"
)

type SenderCfg struct {
	Client domain.EthClientRepo
	// PrivateKey nil makes the sender read-only, every Send fails with ErrNoSigner
	PrivateKey *ecdsa.PrivateKey
	// ChainId is fetched from the rpc when nil
	ChainId *big.Int
}

type sender struct {
	client domain.EthClientRepo
	key    *ecdsa.PrivateKey
	from   common.Address

	chainIdMu sync.Mutex
	chainId   *big.Int
}

func NewSender(cfg *SenderCfg) domain.TxSender {
	s := &sender{
		client:  cfg.Client,
		key:     cfg.PrivateKey,
		chainId: cfg.ChainId,
	}
	if cfg.PrivateKey != nil {
		s.from = bEthereum.AddressOf(cfg.PrivateKey)
	}
	return s
}

func (s *sender) From() domain.Address {
	if s.key == nil {
		return ""
	}
	return domain.ToAddress(s.from)
}

func (s *sender) Send(ctx bCtx.Ctx, req *domain.WriteRequest) (domain.TxHash, error) {
	if s.key == nil {
		return "", domain.ErrNoSigner
	}
	ctx = bCtx.WithValues(ctx, map[string]interface{}{
		"contract": req.Contract,
		"method":   req.Method,
		"tag":      req.Tag,
	})

	data, err := req.ABI.Pack(req.Method, req.Args...)
	if err != nil {
		ctx.WithFields(log.Fields{"err": err, "args": req.Args}).Error("abi.Pack failed")
		return "", xerrors.Errorf("failed to pack %s: %w", req.Method, err)
	}

	chainId, err := s.getChainId(ctx)
	if err != nil {
		return "", err
	}

	nonce, err := s.client.PendingNonceAt(ctx, s.from)
	if err != nil {
		ctx.WithField("err", err).Error("client.PendingNonceAt failed")
		return "", xerrors.Errorf("failed to get pending nonce: %w", err)
	}

	gasPrice, err := s.client.SuggestGasPrice(ctx)
	if err != nil {
		ctx.WithField("err", err).Error("client.SuggestGasPrice failed")
		return "", xerrors.Errorf("failed to get gas price: %w", err)
	}

	value := req.Value
	if value == nil {
		value = new(big.Int)
	}
	to := req.Contract.ToCommon()

	// estimating gas simulates the call, reverts surface here before anything is broadcast
	gas, err := s.client.EstimateGas(ctx, ethereum.CallMsg{
		From:     s.from,
		To:       &to,
		GasPrice: gasPrice,
		Value:    value,
		Data:     data,
	})
	if err != nil {
		ctx.WithField("err", err).Error("client.EstimateGas failed")
		return "", xerrors.Errorf("pre-flight simulation failed: %w", err)
	}

	tx := types.NewTransaction(nonce, to, value, gas, gasPrice, data)
	signed, err := types.SignTx(tx, types.LatestSignerForChainID(chainId), s.key)
	if err != nil {
		ctx.WithField("err", err).Error("types.SignTx failed")
		return "", xerrors.Errorf("failed to sign transaction: %w", err)
	}

	if err := s.client.SendTransaction(ctx, signed); err != nil {
		ctx.WithField("err", err).Error("client.SendTransaction failed")
		return "", xerrors.Errorf("failed to send transaction: %w", err)
	}

	hash := domain.ToTxHash(signed.Hash())
	ctx.WithFields(log.Fields{"hash": hash, "nonce": nonce}).Info("transaction sent")
	return hash, nil
}

func (s *sender) Receipt(ctx bCtx.Ctx, hash domain.TxHash) (*types.Receipt, error) {
	return s.client.TransactionReceipt(ctx, common.HexToHash(string(hash)))
}

func (s *sender) getChainId(ctx bCtx.Ctx) (*big.Int, error) {
	s.chainIdMu.Lock()
	defer s.chainIdMu.Unlock()
	if s.chainId != nil {
		return s.chainId, nil
	}
	chainId, err := s.client.ChainID(ctx)
	if err != nil {
		ctx.WithField("err", err).Error("client.ChainID failed")
		return nil, xerrors.Errorf("failed to get chain id: %w", err)
	}
	s.chainId = chainId
	return chainId, nil
}
