package wizard

import (
	"github.com/x-xyz/nftwizard/base/ctx"
	"github.com/x-xyz/nftwizard/base/price"
	"github.com/x-xyz/nftwizard/domain"
	"github.com/x-xyz/nftwizard/domain/listing"
)

type MintStep int

const (
	MintChooseMethod MintStep = iota + 1
	MintDone
)

func (s MintStep) String() string {
	switch s {
	case MintChooseMethod:
		return "choose method"
	case MintDone:
		return "done"
	}
	return "unknown"
}

type TransferStep int

const (
	TransferSelectToken TransferStep = iota + 1
	TransferEnterRecipient
	TransferDone
)

func (s TransferStep) String() string {
	switch s {
	case TransferSelectToken:
		return "select token"
	case TransferEnterRecipient:
		return "enter recipient"
	case TransferDone:
		return "done"
	}
	return "unknown"
}

type ApprovalState int

const (
	NotApproved ApprovalState = iota
	Approving
	Approved
)

func (s ApprovalState) String() string {
	switch s {
	case NotApproved:
		return "not approved"
	case Approving:
		return "approving"
	case Approved:
		return "approved"
	}
	return "unknown"
}

type ListingStep int

const (
	ListingSelectToken ListingStep = iota + 1
	ListingSetPrice
	ListingConfirm
	ListingDone
)

func (s ListingStep) String() string {
	switch s {
	case ListingSelectToken:
		return "select token"
	case ListingSetPrice:
		return "set price"
	case ListingConfirm:
		return "confirm"
	case ListingDone:
		return "done"
	}
	return "unknown"
}

type Mode int

const (
	ModeSelect Mode = iota
	ModeListAsset
	ModeBrowseAndBuy
)

func (m Mode) String() string {
	switch m {
	case ModeSelect:
		return "select mode"
	case ModeListAsset:
		return "list asset"
	case ModeBrowseAndBuy:
		return "browse and buy"
	}
	return "unknown"
}

type MarketplaceReader interface {
	FeeBasisPoints(ctx.Ctx) (int64, error)
}

// NameResolver turns an ens name into an address
type NameResolver interface {
	Resolve(c ctx.Ctx, name string) (domain.Address, error)
}

type MintUseCase interface {
	Step() MintStep
	ClaimFree(ctx.Ctx) (*domain.PendingTransaction, error)
	MintPaid(ctx.Ctx) (*domain.PendingTransaction, error)
	Reset()
	Submitter() domain.TxSubmitter
}

type TransferUseCase interface {
	Step() TransferStep
	TokenId() domain.TokenId
	Recipient() string
	SelectToken(domain.TokenId)
	Next() error
	SetRecipient(string)
	Transfer(ctx.Ctx) (*domain.PendingTransaction, error)
	Back()
	Reset()
	Submitter() domain.TxSubmitter
}

type ApprovalUseCase interface {
	State() ApprovalState
	Sync(ctx.Ctx) (ApprovalState, error)
	Approve(ctx.Ctx) (*domain.PendingTransaction, error)
	// Done is closed once Approved is reached
	Done() <-chan struct{}
	Submitter() domain.TxSubmitter
}

type ListingUseCase interface {
	Step() ListingStep
	TokenId() domain.TokenId
	SelectToken(domain.TokenId)
	Next(ctx.Ctx) error
	SetPrice(string) error
	Preview() *price.FeePreview
	List(ctx.Ctx) (*domain.PendingTransaction, error)
	Back()
	Reset()
	Submitter() domain.TxSubmitter
}

type ModeUseCase interface {
	Mode() Mode
	Enter(ctx.Ctx, Mode) error
	Back()
	// SetSource swaps the reconciler, re-running it when browsing
	SetSource(ctx.Ctx, listing.Reconciler)
	Listings() []*listing.Listing
	Err() error
	Refresh(ctx.Ctx) error
}

type TradeUseCase interface {
	Buy(c ctx.Ctx, listingId string, price string) (*domain.PendingTransaction, error)
	Delist(c ctx.Ctx, listingId string) (*domain.PendingTransaction, error)
	Submitter() domain.TxSubmitter
}
