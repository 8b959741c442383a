package account

import (
	"github.com/x-xyz/nftwizard/base/ctx"
	"github.com/x-xyz/nftwizard/domain"
)

// Snapshot is the connected account's view of the nft contract
type Snapshot struct {
	Address     domain.Address   `json:"address"`
	OwnedTokens []domain.TokenId `json:"ownedTokens"`
	HasClaimed  bool             `json:"hasClaimed"`
	Approved    bool             `json:"approved"`
}

type NFTReader interface {
	GetTokensOwnedBy(c ctx.Ctx, owner domain.Address) ([]domain.TokenId, error)
	HasClaimedFreeNFT(c ctx.Ctx, owner domain.Address) (bool, error)
	IsApprovedForAll(c ctx.Ctx, owner, operator domain.Address) (bool, error)
}

type UseCase interface {
	Address() domain.Address
	OwnedTokens(ctx.Ctx) ([]domain.TokenId, error)
	HasClaimed(ctx.Ctx) (bool, error)
	IsApproved(ctx.Ctx) (bool, error)
	Snapshot(ctx.Ctx) (*Snapshot, error)
	Invalidate(ctx.Ctx)
}
