package domain

import "errors"

var (
	ErrNotFound       = errors.New("not found")
	ErrBadParamInput  = errors.New("given param is not valid")
	ErrNotImplemented = errors.New("not implemented")

	// user input, blocked locally before anything is submitted
	ErrEmptyTokenId     = errors.New("token id is required")
	ErrInvalidTokenId   = errors.New("invalid token id")
	ErrEmptyRecipient   = errors.New("recipient is required")
	ErrInvalidRecipient = errors.New("invalid recipient address")
	ErrEmptyPrice       = errors.New("price is required")
	ErrInvalidPrice     = errors.New("invalid price")
	ErrNonPositivePrice = errors.New("price must be greater than zero")
	ErrInvalidListingId = errors.New("invalid listing id")
	ErrInvalidAmount    = errors.New("invalid amount")

	// wizard guards
	ErrInvalidStep    = errors.New("action not allowed at current step")
	ErrTxPending      = errors.New("a transaction is already pending")
	ErrAlreadyClaimed = errors.New("free nft already claimed")
	ErrInvalidMode    = errors.New("invalid marketplace mode")

	// chain
	ErrNoSigner         = errors.New("no signing key configured")
	ErrExecutionFailed  = errors.New("execution reverted")
	ErrConfirmTimeout   = errors.New("timed out waiting for confirmation")
	ErrMalformedLog     = errors.New("malformed log")
	ErrQuoteDisabled    = errors.New("quote disabled: amount and reserves required")
	ErrNameUnresolvable = errors.New("name could not be resolved")
)
