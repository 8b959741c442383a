package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/x-xyz/nftwizard/base/ctx"
	"github.com/x-xyz/nftwizard/domain"
	"github.com/x-xyz/nftwizard/domain/mocks"
	"github.com/x-xyz/nftwizard/service/cache/provider/primitive"
)

var (
	mockCtx     = ctx.Background()
	owner       = domain.Address("0x00000000000000000000000000000000000000dd")
	marketplace = domain.Address("0x00000000000000000000000000000000000000bb")
)

type testsuite struct {
	suite.Suite
	nft     *mocks.NFTReader
	subject *impl
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (t *testsuite) SetupTest() {
	t.nft = &mocks.NFTReader{}
	t.subject = New(&AccountUseCaseCfg{
		Address:     owner,
		Marketplace: marketplace,
		NFT:         t.nft,
		Cache:       primitive.NewPrimitive("account", 1),
		Ttl:         time.Minute,
	}).(*impl)
}

func (t *testsuite) TestOwnedTokensCached() {
	t.nft.On("GetTokensOwnedBy", mock.Anything, owner).Return([]domain.TokenId{"1", "42"}, nil).Once()

	ids, err := t.subject.OwnedTokens(mockCtx)
	t.NoError(err)
	t.Equal([]domain.TokenId{"1", "42"}, ids)

	ids, err = t.subject.OwnedTokens(mockCtx)
	t.NoError(err)
	t.Equal([]domain.TokenId{"1", "42"}, ids)
	t.nft.AssertNumberOfCalls(t.T(), "GetTokensOwnedBy", 1)
}

func (t *testsuite) TestInvalidateRefetches() {
	t.nft.On("HasClaimedFreeNFT", mock.Anything, owner).Return(false, nil).Once()
	t.nft.On("IsApprovedForAll", mock.Anything, owner, marketplace).Return(false, nil).Once()

	claimed, err := t.subject.HasClaimed(mockCtx)
	t.NoError(err)
	t.False(claimed)
	approved, err := t.subject.IsApproved(mockCtx)
	t.NoError(err)
	t.False(approved)

	t.subject.Invalidate(mockCtx)

	t.nft.On("HasClaimedFreeNFT", mock.Anything, owner).Return(true, nil).Once()
	t.nft.On("IsApprovedForAll", mock.Anything, owner, marketplace).Return(true, nil).Once()

	claimed, err = t.subject.HasClaimed(mockCtx)
	t.NoError(err)
	t.True(claimed)
	approved, err = t.subject.IsApproved(mockCtx)
	t.NoError(err)
	t.True(approved)
	t.nft.AssertExpectations(t.T())
}

func (t *testsuite) TestReadFailedNotCached() {
	errRpc := errors.New("rpc down")
	t.nft.On("GetTokensOwnedBy", mock.Anything, owner).Return(nil, errRpc).Once()
	t.nft.On("GetTokensOwnedBy", mock.Anything, owner).Return([]domain.TokenId{"7"}, nil).Once()

	_, err := t.subject.OwnedTokens(mockCtx)
	t.ErrorIs(err, errRpc)

	ids, err := t.subject.OwnedTokens(mockCtx)
	t.NoError(err)
	t.Equal([]domain.TokenId{"7"}, ids)
}

func (t *testsuite) TestSnapshot() {
	t.nft.On("GetTokensOwnedBy", mock.Anything, owner).Return([]domain.TokenId{}, nil).Once()
	t.nft.On("HasClaimedFreeNFT", mock.Anything, owner).Return(true, nil).Once()
	t.nft.On("IsApprovedForAll", mock.Anything, owner, marketplace).Return(false, nil).Once()

	snap, err := t.subject.Snapshot(mockCtx)
	t.NoError(err)
	t.Equal(owner, snap.Address)
	t.Empty(snap.OwnedTokens)
	t.True(snap.HasClaimed)
	t.False(snap.Approved)
}

func (t *testsuite) TestReadOnlyAccount() {
	subject := New(&AccountUseCaseCfg{
		NFT:   t.nft,
		Cache: primitive.NewPrimitive("account", 1),
	})
	ids, err := subject.OwnedTokens(mockCtx)
	t.NoError(err)
	t.Empty(ids)
	t.nft.AssertNotCalled(t.T(), "GetTokensOwnedBy", mock.Anything, mock.Anything)
}
