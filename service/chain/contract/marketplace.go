package contract

import (
	"math/big"

	"github.com/ethereum/go-ethereum"
	ethabi "github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	baseabi "github.com/x-xyz/nftwizard/base/abi"
	bCtx "github.com/x-xyz/nftwizard/base/ctx"
	"github.com/x-xyz/nftwizard/domain"
	"github.com/x-xyz/nftwizard/domain/wizard"
	"github.com/x-xyz/nftwizard/service/chain"
)

type Marketplace struct {
	chainService chain.Client
	abi          ethabi.ABI
	address      common.Address
	fromBlock    uint64
}

var _ wizard.MarketplaceReader = (*Marketplace)(nil)

// NewMarketplace creates the marketplace reader, event queries start at fromBlock
func NewMarketplace(chainService chain.Client, address domain.Address, fromBlock uint64) *Marketplace {
	return &Marketplace{
		chainService: chainService,
		abi:          baseabi.MarketplaceABI,
		address:      address.ToCommon(),
		fromBlock:    fromBlock,
	}
}

func (m *Marketplace) Address() domain.Address {
	return domain.ToAddress(m.address)
}

func (m *Marketplace) ABI() ethabi.ABI {
	return m.abi
}

func (m *Marketplace) FeeBasisPoints(ctx bCtx.Ctx) (int64, error) {
	unpacked, err := m.chainService.Call(ctx, m.address, nil, m.abi, "feeBasisPoints")
	if err != nil {
		return 0, err
	}
	return unpacked[0].(*big.Int).Int64(), nil
}

// EventLogs returns every log of the given event emitted by the marketplace, in chain order
func (m *Marketplace) EventLogs(ctx bCtx.Ctx, eventId common.Hash) ([]types.Log, error) {
	return m.chainService.FilterLogs(ctx, ethereum.FilterQuery{
		FromBlock: new(big.Int).SetUint64(m.fromBlock),
		Addresses: []common.Address{m.address},
		Topics:    [][]common.Hash{{eventId}},
	})
}
