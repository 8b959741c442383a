package listing

import (
	"math/big"

	"github.com/ethereum/go-ethereum/core/types"
	"github.com/shopspring/decimal"
	"github.com/x-xyz/nftwizard/base/ctx"
	"github.com/x-xyz/nftwizard/domain"
)

// Listing is an NFTListed event not yet closed by NFTSold or NFTDelisted
type Listing struct {
	Id          string          `json:"listingId"`
	Seller      domain.Address  `json:"seller"`
	NftContract domain.Address  `json:"nftContract"`
	TokenId     domain.TokenId  `json:"tokenId"`
	PriceWei    *big.Int        `json:"priceWei"`
	Price       decimal.Decimal `json:"price"`
	OriginBlock uint64          `json:"blockNumber"`
	TxHash      domain.TxHash   `json:"txHash"`
	LogIndex    uint            `json:"logIndex"`
}

// EventLogs holds the three marketplace event streams in chain order
type EventLogs struct {
	Listed   []types.Log
	Sold     []types.Log
	Delisted []types.Log
}

type EventRepo interface {
	FetchAll(ctx.Ctx) (*EventLogs, error)
}

type Reconciler interface {
	Reconcile(c ctx.Ctx, listed, sold, delisted []types.Log) []*Listing
	ActiveListings(ctx.Ctx) ([]*Listing, error)
	Invalidate(ctx.Ctx)
}
