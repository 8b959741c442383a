package swap

import (
	"math/big"

	"github.com/x-xyz/nftwizard/base/ctx"
	"github.com/x-xyz/nftwizard/domain"
)

type Reserves struct {
	ReserveA *big.Int
	ReserveB *big.Int
}

type Tokens struct {
	TokenA domain.Address
	TokenB domain.Address
}

type FeeInfo struct {
	FeeRate        *big.Int
	FeeDenominator *big.Int
	// FeePercentage is FeeRate / FeeDenominator * 100
	FeePercentage float64
}

type Reader interface {
	GetReserves(ctx.Ctx) (*Reserves, error)
	TokenA(ctx.Ctx) (domain.Address, error)
	TokenB(ctx.Ctx) (domain.Address, error)
	GetAmountOut(c ctx.Ctx, amountIn, reserveIn, reserveOut *big.Int) (*big.Int, error)
	FeeRate(ctx.Ctx) (*big.Int, error)
	FeeDenominator(ctx.Ctx) (*big.Int, error)
}

type UseCase interface {
	Reserves(ctx.Ctx) (*Reserves, error)
	Tokens(ctx.Ctx) (*Tokens, error)
	AmountOut(c ctx.Ctx, amountIn string, reserveIn, reserveOut *big.Int) (*big.Int, error)
	FeeInfo(ctx.Ctx) (*FeeInfo, error)

	SwapAForB(c ctx.Ctx, amountIn, minAmountOut string) (*domain.PendingTransaction, error)
	SwapBForA(c ctx.Ctx, amountIn, minAmountOut string) (*domain.PendingTransaction, error)
	AddLiquidity(c ctx.Ctx, amountA, amountB string) (*domain.PendingTransaction, error)
	Submitter() domain.TxSubmitter
}
