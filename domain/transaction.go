package domain

import (
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/x-xyz/nftwizard/base/ctx"
)

type TxPhase string

const (
	TxPhaseIdle       TxPhase = "idle"
	TxPhaseSubmitted  TxPhase = "submitted"
	TxPhaseConfirming TxPhase = "confirming"
	TxPhaseConfirmed  TxPhase = "confirmed"
	TxPhaseFailed     TxPhase = "failed"
)

func (p TxPhase) IsPending() bool {
	return p == TxPhaseSubmitted || p == TxPhaseConfirming
}

func (p TxPhase) IsFinal() bool {
	return p == TxPhaseConfirmed || p == TxPhaseFailed
}

// PendingTransaction is the single write tracked by a submitter
type PendingTransaction struct {
	OpId  uint64  `json:"opId"`
	Tag   string  `json:"tag"`
	Hash  TxHash  `json:"hash,omitempty"`
	Phase TxPhase `json:"phase"`
	Err   string  `json:"error,omitempty"`
}

type WriteRequest struct {
	Contract Address
	ABI      abi.ABI
	Method   string
	Args     []interface{}
	Value    *big.Int
	Tag      string
}

type TxSender interface {
	// From is the signing account, empty when the client is read-only
	From() Address
	Send(ctx.Ctx, *WriteRequest) (TxHash, error)
	// Receipt returns ethereum.NotFound while the transaction is still pending
	Receipt(ctx.Ctx, TxHash) (*types.Receipt, error)
}

type ConfirmedHook func(ctx.Ctx, PendingTransaction)

type TxSubmitter interface {
	Submit(ctx.Ctx, *WriteRequest) (*PendingTransaction, error)
	IsPending() bool
	Current() PendingTransaction
	Reset()
	Wait(ctx.Ctx) (PendingTransaction, error)
	OnConfirmed(ConfirmedHook)
	OnFailed(ConfirmedHook)
}
