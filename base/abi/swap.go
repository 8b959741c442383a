package abi

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

var SimpleSwapABI abi.ABI

var simpleSwapABI = `[{"type":"function","name":"getReserves","stateMutability":"view","inputs":[],"outputs":[{"type":"uint256","name":"reserveA"},{"type":"uint256","name":"reserveB"}]},{"type":"function","name":"tokenA","stateMutability":"view","inputs":[],"outputs":[{"type":"address"}]},{"type":"function","name":"tokenB","stateMutability":"view","inputs":[],"outputs":[{"type":"address"}]},{"type":"function","name":"getAmountOut","stateMutability":"pure","inputs":[{"type":"uint256","name":"amountIn"},{"type":"uint256","name":"reserveIn"},{"type":"uint256","name":"reserveOut"}],"outputs":[{"type":"uint256"}]},{"type":"function","name":"FEE_RATE","stateMutability":"view","inputs":[],"outputs":[{"type":"uint256"}]},{"type":"function","name":"FEE_DENOMINATOR","stateMutability":"view","inputs":[],"outputs":[{"type":"uint256"}]},{"type":"function","name":"swapAForB","stateMutability":"nonpayable","inputs":[{"type":"uint256","name":"amountIn"},{"type":"uint256","name":"minAmountOut"}],"outputs":[{"type":"uint256"}]},{"type":"function","name":"swapBForA","stateMutability":"nonpayable","inputs":[{"type":"uint256","name":"amountIn"},{"type":"uint256","name":"minAmountOut"}],"outputs":[{"type":"uint256"}]},{"type":"function","name":"addLiquidity","stateMutability":"nonpayable","inputs":[{"type":"uint256","name":"amountA"},{"type":"uint256","name":"amountB"}],"outputs":[]}]`

func init() {
	_abi, err := abi.JSON(strings.NewReader(simpleSwapABI))
	if err != nil {
		panic("Failed to parse simple swap abi")
	}
	SimpleSwapABI = _abi
}
