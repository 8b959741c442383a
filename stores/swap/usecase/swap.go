package usecase

import (
	"math/big"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	baseabi "github.com/x-xyz/nftwizard/base/abi"
	"github.com/x-xyz/nftwizard/base/ctx"
	"github.com/x-xyz/nftwizard/base/log"
	"github.com/x-xyz/nftwizard/base/price"
	"github.com/x-xyz/nftwizard/domain"
	"github.com/x-xyz/nftwizard/domain/keys"
	"github.com/x-xyz/nftwizard/domain/swap"
	"github.com/x-xyz/nftwizard/service/cache"
	"github.com/x-xyz/nftwizard/service/cache/provider"
	"golang.org/x/xerrors"
)

const (
	keyTokens  = "tokens"
	keyFeeInfo = "fee"
)

type SwapUseCaseCfg struct {
	Contract  domain.Address
	Reader    swap.Reader
	Submitter domain.TxSubmitter
	// Cache holds the token pair and fee constants of the pool
	Cache provider.Provider
	Ttl   time.Duration
}

type impl struct {
	contract domain.Address
	reader   swap.Reader
	sub      domain.TxSubmitter
	cache    cache.Service
}

func New(cfg *SwapUseCaseCfg) swap.UseCase {
	return &impl{
		contract: cfg.Contract,
		reader:   cfg.Reader,
		sub:      cfg.Submitter,
		cache: cache.New(cache.ServiceConfig{
			Ttl:   cfg.Ttl,
			Pfx:   keys.Key(keys.PfxSwap, cfg.Contract.ToLowerStr()),
			Cache: cfg.Cache,
		}),
	}
}

func (im *impl) Reserves(c ctx.Ctx) (*swap.Reserves, error) {
	res, err := im.reader.GetReserves(c)
	if err != nil {
		c.WithFields(log.Fields{
			"err":      err,
			"contract": im.contract,
		}).Error("reader.GetReserves failed")
		return nil, err
	}
	return res, nil
}

func (im *impl) Tokens(c ctx.Ctx) (*swap.Tokens, error) {
	res := swap.Tokens{}
	err := im.cache.GetByFunc(c, keyTokens, &res, func() (interface{}, error) {
		a, err := im.reader.TokenA(c)
		if err != nil {
			return nil, err
		}
		b, err := im.reader.TokenB(c)
		if err != nil {
			return nil, err
		}
		return &swap.Tokens{TokenA: a, TokenB: b}, nil
	})
	if err != nil {
		c.WithFields(log.Fields{
			"err":      err,
			"contract": im.contract,
		}).Error("reader.Tokens failed")
		return nil, err
	}
	return &res, nil
}

// AmountOut quotes amountIn ether against the given reserves. The quote is disabled until an
// amount is entered and both reserves are positive.
func (im *impl) AmountOut(c ctx.Ctx, amountIn string, reserveIn, reserveOut *big.Int) (*big.Int, error) {
	if len(strings.TrimSpace(amountIn)) == 0 || reserveIn == nil || reserveOut == nil ||
		reserveIn.Sign() <= 0 || reserveOut.Sign() <= 0 {
		return nil, domain.ErrQuoteDisabled
	}
	in, err := price.ParseEther(amountIn)
	if err != nil {
		return nil, err
	}
	out, err := im.reader.GetAmountOut(c, in, reserveIn, reserveOut)
	if err != nil {
		c.WithFields(log.Fields{
			"err":      err,
			"amountIn": in,
		}).Error("reader.GetAmountOut failed")
		return nil, err
	}
	return out, nil
}

func (im *impl) FeeInfo(c ctx.Ctx) (*swap.FeeInfo, error) {
	res := swap.FeeInfo{}
	err := im.cache.GetByFunc(c, keyFeeInfo, &res, func() (interface{}, error) {
		rate, err := im.reader.FeeRate(c)
		if err != nil {
			return nil, err
		}
		denominator, err := im.reader.FeeDenominator(c)
		if err != nil {
			return nil, err
		}
		return &swap.FeeInfo{
			FeeRate:        rate,
			FeeDenominator: denominator,
			FeePercentage:  feePercentage(rate, denominator),
		}, nil
	})
	if err != nil {
		c.WithFields(log.Fields{
			"err":      err,
			"contract": im.contract,
		}).Error("reader.FeeInfo failed")
		return nil, err
	}
	return &res, nil
}

func feePercentage(rate, denominator *big.Int) float64 {
	if rate == nil || denominator == nil || denominator.Sign() == 0 {
		return 0
	}
	pct, _ := decimal.NewFromBigInt(rate, 0).
		Div(decimal.NewFromBigInt(denominator, 0)).
		Mul(decimal.NewFromInt(100)).
		Float64()
	return pct
}

func (im *impl) SwapAForB(c ctx.Ctx, amountIn, minAmountOut string) (*domain.PendingTransaction, error) {
	return im.swap(c, "swapAForB", amountIn, minAmountOut)
}

func (im *impl) SwapBForA(c ctx.Ctx, amountIn, minAmountOut string) (*domain.PendingTransaction, error) {
	return im.swap(c, "swapBForA", amountIn, minAmountOut)
}

func (im *impl) swap(c ctx.Ctx, method, amountIn, minAmountOut string) (*domain.PendingTransaction, error) {
	in, err := positiveAmount(amountIn)
	if err != nil {
		return nil, xerrors.Errorf("amount in: %w", err)
	}
	minOut := big.NewInt(0)
	if len(strings.TrimSpace(minAmountOut)) > 0 {
		if minOut, err = price.ParseEther(minAmountOut); err != nil {
			return nil, xerrors.Errorf("min amount out: %w", err)
		}
	}
	return im.submit(c, &domain.WriteRequest{
		Contract: im.contract,
		ABI:      baseabi.SimpleSwapABI,
		Method:   method,
		Args:     []interface{}{in, minOut},
		Tag:      "swap." + method,
	})
}

func (im *impl) AddLiquidity(c ctx.Ctx, amountA, amountB string) (*domain.PendingTransaction, error) {
	a, err := positiveAmount(amountA)
	if err != nil {
		return nil, xerrors.Errorf("amount a: %w", err)
	}
	b, err := positiveAmount(amountB)
	if err != nil {
		return nil, xerrors.Errorf("amount b: %w", err)
	}
	return im.submit(c, &domain.WriteRequest{
		Contract: im.contract,
		ABI:      baseabi.SimpleSwapABI,
		Method:   "addLiquidity",
		Args:     []interface{}{a, b},
		Tag:      "swap.addLiquidity",
	})
}

func (im *impl) submit(c ctx.Ctx, req *domain.WriteRequest) (*domain.PendingTransaction, error) {
	if im.sub.IsPending() {
		return nil, domain.ErrTxPending
	}
	p, err := im.sub.Submit(c, req)
	if err != nil {
		c.WithFields(log.Fields{
			"err":    err,
			"method": req.Method,
		}).Error("submitter.Submit failed")
		return p, err
	}
	return p, nil
}

func (im *impl) Submitter() domain.TxSubmitter {
	return im.sub
}

func positiveAmount(s string) (*big.Int, error) {
	v, err := price.ParseEther(s)
	if err != nil {
		return nil, err
	}
	if v.Sign() <= 0 {
		return nil, domain.ErrInvalidAmount
	}
	return v, nil
}
