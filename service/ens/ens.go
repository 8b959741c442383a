package ens

import (
	"github.com/x-xyz/nftwizard/base/ctx"
	"github.com/x-xyz/nftwizard/domain"
)

// ENS resolves names to addresses for the transfer wizard
type ENS interface {
	Resolve(ctx ctx.Ctx, name string) (domain.Address, error)
}
