package domain

import (
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

type ChainId int64

type Address string

const EmptyAddress = Address("0x0000000000000000000000000000000000000000")

func ToAddress(a common.Address) Address {
	return Address(strings.ToLower(a.Hex()))
}

func (a Address) ToLower() Address {
	return Address(strings.ToLower(string(a)))
}

func (a Address) ToLowerStr() string {
	return strings.ToLower(string(a))
}

func (a Address) IsEmpty() bool {
	return len(a) == 0
}

func (a Address) Equals(b Address) bool {
	return a.ToLowerStr() == b.ToLowerStr()
}

func (a Address) ToCommon() common.Address {
	return common.HexToAddress(string(a))
}

// TokenId is the decimal representation of an erc721 token id
type TokenId string

func (i TokenId) String() string {
	return string(i)
}

func (i TokenId) IsEmpty() bool {
	return len(strings.TrimSpace(string(i))) == 0
}

func (i TokenId) ToBigInt() (*big.Int, error) {
	id, ok := new(big.Int).SetString(strings.TrimSpace(string(i)), 10)
	if !ok || id.Sign() < 0 {
		return nil, ErrInvalidTokenId
	}
	return id, nil
}

func ToTokenId(id *big.Int) TokenId {
	if id == nil {
		return ""
	}
	return TokenId(id.String())
}

type BlockNumber uint64

type TxHash string

func ToTxHash(h common.Hash) TxHash {
	return TxHash(strings.ToLower(h.Hex()))
}

func (h TxHash) IsEmpty() bool {
	return len(h) == 0
}
