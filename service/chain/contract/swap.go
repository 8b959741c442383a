package contract

import (
	"math/big"

	ethabi "github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	baseabi "github.com/x-xyz/nftwizard/base/abi"
	bCtx "github.com/x-xyz/nftwizard/base/ctx"
	"github.com/x-xyz/nftwizard/domain"
	"github.com/x-xyz/nftwizard/domain/swap"
	"github.com/x-xyz/nftwizard/service/chain"
)

type SimpleSwap struct {
	chainService chain.Client
	abi          ethabi.ABI
	address      common.Address
}

var _ swap.Reader = (*SimpleSwap)(nil)

func NewSimpleSwap(chainService chain.Client, address domain.Address) *SimpleSwap {
	return &SimpleSwap{
		chainService: chainService,
		abi:          baseabi.SimpleSwapABI,
		address:      address.ToCommon(),
	}
}

func (s *SimpleSwap) Address() domain.Address {
	return domain.ToAddress(s.address)
}

func (s *SimpleSwap) ABI() ethabi.ABI {
	return s.abi
}

func (s *SimpleSwap) GetReserves(ctx bCtx.Ctx) (*swap.Reserves, error) {
	unpacked, err := s.chainService.Call(ctx, s.address, nil, s.abi, "getReserves")
	if err != nil {
		return nil, err
	}
	return &swap.Reserves{
		ReserveA: unpacked[0].(*big.Int),
		ReserveB: unpacked[1].(*big.Int),
	}, nil
}

func (s *SimpleSwap) TokenA(ctx bCtx.Ctx) (domain.Address, error) {
	return s.callAddress(ctx, "tokenA")
}

func (s *SimpleSwap) TokenB(ctx bCtx.Ctx) (domain.Address, error) {
	return s.callAddress(ctx, "tokenB")
}

func (s *SimpleSwap) GetAmountOut(ctx bCtx.Ctx, amountIn, reserveIn, reserveOut *big.Int) (*big.Int, error) {
	return s.callBigInt(ctx, "getAmountOut", amountIn, reserveIn, reserveOut)
}

func (s *SimpleSwap) FeeRate(ctx bCtx.Ctx) (*big.Int, error) {
	return s.callBigInt(ctx, "FEE_RATE")
}

func (s *SimpleSwap) FeeDenominator(ctx bCtx.Ctx) (*big.Int, error) {
	return s.callBigInt(ctx, "FEE_DENOMINATOR")
}

func (s *SimpleSwap) callAddress(ctx bCtx.Ctx, method string) (domain.Address, error) {
	unpacked, err := s.chainService.Call(ctx, s.address, nil, s.abi, method)
	if err != nil {
		return "", err
	}
	return domain.ToAddress(unpacked[0].(common.Address)), nil
}

func (s *SimpleSwap) callBigInt(ctx bCtx.Ctx, method string, params ...interface{}) (*big.Int, error) {
	unpacked, err := s.chainService.Call(ctx, s.address, nil, s.abi, method, params...)
	if err != nil {
		return nil, err
	}
	return unpacked[0].(*big.Int), nil
}
