package abi

import (
	"errors"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

var ErrMalformedLog = errors.New("malformed log")

var MarketplaceABI abi.ABI

var marketplaceABI = `[{"type":"event","anonymous":false,"name":"NFTListed","inputs":[{"type":"bytes32","name":"listingId","indexed":true},{"type":"address","name":"seller","indexed":true},{"type":"address","name":"nftContract","indexed":true},{"type":"uint256","name":"tokenId","indexed":false},{"type":"uint256","name":"price","indexed":false}]},{"type":"event","anonymous":false,"name":"NFTSold","inputs":[{"type":"bytes32","name":"listingId","indexed":true},{"type":"address","name":"buyer","indexed":true},{"type":"address","name":"seller","indexed":true},{"type":"uint256","name":"tokenId","indexed":false},{"type":"uint256","name":"price","indexed":false}]},{"type":"event","anonymous":false,"name":"NFTDelisted","inputs":[{"type":"bytes32","name":"listingId","indexed":true},{"type":"address","name":"seller","indexed":true},{"type":"uint256","name":"tokenId","indexed":false}]},{"type":"function","name":"feeBasisPoints","stateMutability":"view","inputs":[],"outputs":[{"type":"uint256"}]},{"type":"function","name":"listNFT","stateMutability":"nonpayable","inputs":[{"type":"address","name":"nftContract"},{"type":"uint256","name":"tokenId"},{"type":"uint256","name":"price"}],"outputs":[{"type":"bytes32"}]},{"type":"function","name":"buyNFT","stateMutability":"payable","inputs":[{"type":"bytes32","name":"listingId"}],"outputs":[]},{"type":"function","name":"delistNFT","stateMutability":"nonpayable","inputs":[{"type":"bytes32","name":"listingId"}],"outputs":[]}]`

var (
	NFTListedEventId   common.Hash
	NFTSoldEventId     common.Hash
	NFTDelistedEventId common.Hash
)

func init() {
	_abi, err := abi.JSON(strings.NewReader(marketplaceABI))
	if err != nil {
		panic("Failed to parse marketplace abi")
	}
	MarketplaceABI = _abi
	NFTListedEventId = _abi.Events["NFTListed"].ID
	NFTSoldEventId = _abi.Events["NFTSold"].ID
	NFTDelistedEventId = _abi.Events["NFTDelisted"].ID
}

type NFTListedLog struct {
	ListingId   common.Hash    // indexed
	Seller      common.Address // indexed
	NftContract common.Address // indexed
	TokenId     *big.Int
	Price       *big.Int
}

type NFTSoldLog struct {
	ListingId common.Hash    // indexed
	Buyer     common.Address // indexed
	Seller    common.Address // indexed
	TokenId   *big.Int
	Price     *big.Int
}

type NFTDelistedLog struct {
	ListingId common.Hash    // indexed
	Seller    common.Address // indexed
	TokenId   *big.Int
}

// ListingIdOf returns topics[1], the listing id shared by all three marketplace events
func ListingIdOf(log *types.Log) (common.Hash, error) {
	if len(log.Topics) < 2 {
		return common.Hash{}, ErrMalformedLog
	}
	return log.Topics[1], nil
}

func ToNFTListedLog(log *types.Log) (*NFTListedLog, error) {
	if len(log.Topics) < 4 || len(log.Data) < 64 {
		return nil, ErrMalformedLog
	}
	return &NFTListedLog{
		ListingId:   log.Topics[1],
		Seller:      common.BytesToAddress(log.Topics[2].Bytes()),
		NftContract: common.BytesToAddress(log.Topics[3].Bytes()),
		TokenId:     new(big.Int).SetBytes(log.Data[0:32]),
		Price:       new(big.Int).SetBytes(log.Data[32:64]),
	}, nil
}

func ToNFTSoldLog(log *types.Log) (*NFTSoldLog, error) {
	if len(log.Topics) < 4 || len(log.Data) < 64 {
		return nil, ErrMalformedLog
	}
	return &NFTSoldLog{
		ListingId: log.Topics[1],
		Buyer:     common.BytesToAddress(log.Topics[2].Bytes()),
		Seller:    common.BytesToAddress(log.Topics[3].Bytes()),
		TokenId:   new(big.Int).SetBytes(log.Data[0:32]),
		Price:     new(big.Int).SetBytes(log.Data[32:64]),
	}, nil
}

func ToNFTDelistedLog(log *types.Log) (*NFTDelistedLog, error) {
	if len(log.Topics) < 3 || len(log.Data) < 32 {
		return nil, ErrMalformedLog
	}
	return &NFTDelistedLog{
		ListingId: log.Topics[1],
		Seller:    common.BytesToAddress(log.Topics[2].Bytes()),
		TokenId:   new(big.Int).SetBytes(log.Data[0:32]),
	}, nil
}
