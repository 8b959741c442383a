package contract

import (
	"math/big"

	ethabi "github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	baseabi "github.com/x-xyz/nftwizard/base/abi"
	bCtx "github.com/x-xyz/nftwizard/base/ctx"
	"github.com/x-xyz/nftwizard/domain"
	"github.com/x-xyz/nftwizard/domain/account"
	"github.com/x-xyz/nftwizard/service/chain"
)

// NFT reads the MyFirstNFT collection
type NFT struct {
	chainService chain.Client
	abi          ethabi.ABI
	address      common.Address
}

var _ account.NFTReader = (*NFT)(nil)

func NewNFT(chainService chain.Client, address domain.Address) *NFT {
	return &NFT{
		chainService: chainService,
		abi:          baseabi.NFTABI,
		address:      address.ToCommon(),
	}
}

func (n *NFT) Address() domain.Address {
	return domain.ToAddress(n.address)
}

func (n *NFT) ABI() ethabi.ABI {
	return n.abi
}

func (n *NFT) GetTokensOwnedBy(ctx bCtx.Ctx, owner domain.Address) ([]domain.TokenId, error) {
	unpacked, err := n.chainService.Call(ctx, n.address, nil, n.abi, "getTokensOwnedBy", owner.ToCommon())
	if err != nil {
		return nil, err
	}
	ids := unpacked[0].([]*big.Int)
	res := make([]domain.TokenId, 0, len(ids))
	for _, id := range ids {
		res = append(res, domain.ToTokenId(id))
	}
	return res, nil
}

func (n *NFT) HasClaimedFreeNFT(ctx bCtx.Ctx, owner domain.Address) (bool, error) {
	unpacked, err := n.chainService.Call(ctx, n.address, nil, n.abi, "hasClaimedFreeNFT", owner.ToCommon())
	if err != nil {
		return false, err
	}
	return unpacked[0].(bool), nil
}

func (n *NFT) IsApprovedForAll(ctx bCtx.Ctx, owner, operator domain.Address) (bool, error) {
	unpacked, err := n.chainService.Call(ctx, n.address, nil, n.abi, "isApprovedForAll", owner.ToCommon(), operator.ToCommon())
	if err != nil {
		return false, err
	}
	return unpacked[0].(bool), nil
}

func (n *NFT) OwnerOf(ctx bCtx.Ctx, tokenId *big.Int) (domain.Address, error) {
	unpacked, err := n.chainService.Call(ctx, n.address, nil, n.abi, "ownerOf", tokenId)
	if err != nil {
		return "", err
	}
	return domain.ToAddress(unpacked[0].(common.Address)), nil
}
