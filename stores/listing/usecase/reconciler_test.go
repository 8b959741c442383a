package usecase

import (
	"errors"
	"math/big"
	"math/rand"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	baseabi "github.com/x-xyz/nftwizard/base/abi"
	"github.com/x-xyz/nftwizard/base/ctx"
	"github.com/x-xyz/nftwizard/domain"
	"github.com/x-xyz/nftwizard/domain/listing"
	"github.com/x-xyz/nftwizard/domain/mocks"
)

var (
	mockCtx = ctx.Background()
	seller  = common.HexToAddress("0x00000000000000000000000000000000000000aa")
	buyer   = common.HexToAddress("0x00000000000000000000000000000000000000cc")
	nft     = common.HexToAddress("0x00000000000000000000000000000000000000bb")
	oneEth  = new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil)
)

func listingId(n int64) common.Hash {
	return common.BigToHash(big.NewInt(n))
}

func listedLog(id int64, tokenId int64, priceWei *big.Int, block uint64) types.Log {
	data, err := baseabi.MarketplaceABI.Events["NFTListed"].Inputs.NonIndexed().Pack(big.NewInt(tokenId), priceWei)
	if err != nil {
		panic(err)
	}
	return types.Log{
		Topics: []common.Hash{
			baseabi.NFTListedEventId,
			listingId(id),
			common.BytesToHash(seller.Bytes()),
			common.BytesToHash(nft.Bytes()),
		},
		Data:        data,
		BlockNumber: block,
	}
}

func soldLog(id int64, block uint64) types.Log {
	data, err := baseabi.MarketplaceABI.Events["NFTSold"].Inputs.NonIndexed().Pack(big.NewInt(0), oneEth)
	if err != nil {
		panic(err)
	}
	return types.Log{
		Topics: []common.Hash{
			baseabi.NFTSoldEventId,
			listingId(id),
			common.BytesToHash(buyer.Bytes()),
			common.BytesToHash(seller.Bytes()),
		},
		Data:        data,
		BlockNumber: block,
	}
}

func delistedLog(id int64, block uint64) types.Log {
	data, err := baseabi.MarketplaceABI.Events["NFTDelisted"].Inputs.NonIndexed().Pack(big.NewInt(0))
	if err != nil {
		panic(err)
	}
	return types.Log{
		Topics: []common.Hash{
			baseabi.NFTDelistedEventId,
			listingId(id),
			common.BytesToHash(seller.Bytes()),
		},
		Data:        data,
		BlockNumber: block,
	}
}

func ids(ls []*listing.Listing) []string {
	res := make([]string, 0, len(ls))
	for _, l := range ls {
		res = append(res, l.Id)
	}
	return res
}

type testsuite struct {
	suite.Suite
	repo    *mocks.EventRepo
	subject *impl
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (t *testsuite) SetupTest() {
	t.repo = &mocks.EventRepo{}
	t.subject = New(&ReconcilerCfg{
		Repo: t.repo,
	}).(*impl)
}

func (t *testsuite) TestSingleListing() {
	res := t.subject.Reconcile(mockCtx, []types.Log{listedLog(0xA, 1, oneEth, 10)}, nil, nil)

	t.Require().Len(res, 1)
	l := res[0]
	t.Equal(listingId(0xA).Hex(), l.Id)
	t.Equal(domain.TokenId("1"), l.TokenId)
	t.True(decimal.RequireFromString("1.0").Equal(l.Price))
	t.Equal(0, oneEth.Cmp(l.PriceWei))
	t.Equal(domain.ToAddress(seller), l.Seller)
	t.Equal(domain.ToAddress(nft), l.NftContract)
	t.Equal(uint64(10), l.OriginBlock)
}

func (t *testsuite) TestSoldExcluded() {
	res := t.subject.Reconcile(mockCtx,
		[]types.Log{listedLog(0xA, 1, oneEth, 10)},
		[]types.Log{soldLog(0xA, 11)},
		nil,
	)
	t.NotNil(res)
	t.Empty(res)
}

func (t *testsuite) TestDelistedExcluded() {
	res := t.subject.Reconcile(mockCtx,
		[]types.Log{listedLog(0xA, 1, oneEth, 10), listedLog(0xB, 2, oneEth, 10)},
		nil,
		[]types.Log{delistedLog(0xA, 12)},
	)
	t.Equal([]string{listingId(0xB).Hex()}, ids(res))
}

func (t *testsuite) TestRelistedTokenKeyedByListingId() {
	res := t.subject.Reconcile(mockCtx,
		[]types.Log{listedLog(0xA, 7, oneEth, 10), listedLog(0xB, 7, big.NewInt(5e17), 20)},
		[]types.Log{soldLog(0xA, 15)},
		nil,
	)
	t.Require().Len(res, 1)
	t.Equal(listingId(0xB).Hex(), res[0].Id)
	t.Equal(domain.TokenId("7"), res[0].TokenId)
	t.Equal("0.5", res[0].Price.String())
}

func (t *testsuite) TestDuplicateListedLastWins() {
	res := t.subject.Reconcile(mockCtx, []types.Log{
		listedLog(0xA, 1, oneEth, 10),
		listedLog(0xB, 2, oneEth, 11),
		listedLog(0xA, 1, big.NewInt(2e18), 12),
	}, nil, nil)

	t.Equal([]string{listingId(0xB).Hex(), listingId(0xA).Hex()}, ids(res))
	t.Equal("2", res[1].Price.String())
	t.Equal(uint64(12), res[1].OriginBlock)
}

func (t *testsuite) TestSourceOrderKept() {
	res := t.subject.Reconcile(mockCtx, []types.Log{
		listedLog(3, 1, oneEth, 10),
		listedLog(1, 2, oneEth, 11),
		listedLog(2, 3, oneEth, 12),
	}, nil, nil)
	t.Equal([]string{listingId(3).Hex(), listingId(1).Hex(), listingId(2).Hex()}, ids(res))
}

func (t *testsuite) TestMalformedSkipped() {
	short := listedLog(0xC, 3, oneEth, 10)
	short.Data = short.Data[:40]
	noTopics := listedLog(0xD, 4, oneEth, 10)
	noTopics.Topics = noTopics.Topics[:2]
	badSold := types.Log{Topics: []common.Hash{baseabi.NFTSoldEventId}}

	var res []*listing.Listing
	t.NotPanics(func() {
		res = t.subject.Reconcile(mockCtx,
			[]types.Log{short, listedLog(0xA, 1, oneEth, 10), noTopics},
			[]types.Log{badSold},
			[]types.Log{{}},
		)
	})
	t.Equal([]string{listingId(0xA).Hex()}, ids(res))
}

func (t *testsuite) TestIdempotent() {
	listed := []types.Log{listedLog(1, 1, oneEth, 1), listedLog(2, 2, oneEth, 2), listedLog(3, 3, oneEth, 3)}
	sold := []types.Log{soldLog(2, 4)}
	first := t.subject.Reconcile(mockCtx, listed, sold, nil)
	second := t.subject.Reconcile(mockCtx, listed, sold, nil)
	t.Equal(first, second)
}

func (t *testsuite) TestActiveSetProperty() {
	r := rand.New(rand.NewSource(42))
	for round := 0; round < 50; round++ {
		var listed, sold, delisted []types.Log
		closed := map[string]bool{}
		for i := int64(1); i <= 20; i++ {
			listed = append(listed, listedLog(i, i, oneEth, uint64(i)))
			switch r.Intn(3) {
			case 0:
				sold = append(sold, soldLog(i, uint64(100+i)))
				closed[listingId(i).Hex()] = true
			case 1:
				delisted = append(delisted, delistedLog(i, uint64(100+i)))
				closed[listingId(i).Hex()] = true
			}
		}

		res := t.subject.Reconcile(mockCtx, listed, sold, delisted)
		seen := map[string]int{}
		for _, l := range res {
			seen[l.Id]++
			t.False(closed[l.Id], l.Id)
		}
		for i := int64(1); i <= 20; i++ {
			id := listingId(i).Hex()
			if closed[id] {
				t.Zero(seen[id], id)
			} else {
				t.Equal(1, seen[id], id)
			}
		}
	}
}

func (t *testsuite) TestActiveListingsCached() {
	t.repo.On("FetchAll", mock.Anything).Return(&listing.EventLogs{
		Listed: []types.Log{listedLog(0xA, 1, oneEth, 10)},
	}, nil).Once()

	res, err := t.subject.ActiveListings(mockCtx)
	t.NoError(err)
	t.Equal([]string{listingId(0xA).Hex()}, ids(res))

	res, err = t.subject.ActiveListings(mockCtx)
	t.NoError(err)
	t.Require().Len(res, 1)
	t.True(decimal.NewFromInt(1).Equal(res[0].Price))
	t.Equal(0, oneEth.Cmp(res[0].PriceWei))
	t.repo.AssertNumberOfCalls(t.T(), "FetchAll", 1)
}

func (t *testsuite) TestActiveListingsInvalidate() {
	t.repo.On("FetchAll", mock.Anything).Return(&listing.EventLogs{
		Listed: []types.Log{listedLog(0xA, 1, oneEth, 10)},
	}, nil).Once()
	t.repo.On("FetchAll", mock.Anything).Return(&listing.EventLogs{
		Listed: []types.Log{listedLog(0xA, 1, oneEth, 10)},
		Sold:   []types.Log{soldLog(0xA, 11)},
	}, nil).Once()

	res, err := t.subject.ActiveListings(mockCtx)
	t.NoError(err)
	t.Len(res, 1)

	t.subject.Invalidate(mockCtx)

	res, err = t.subject.ActiveListings(mockCtx)
	t.NoError(err)
	t.Empty(res)
	t.repo.AssertExpectations(t.T())
}

func (t *testsuite) TestActiveListingsLargeSetFetchedOnce() {
	listed := make([]types.Log, 0, 400)
	for i := int64(1); i <= 400; i++ {
		listed = append(listed, listedLog(i, i, oneEth, uint64(i)))
	}
	t.repo.On("FetchAll", mock.Anything).Return(&listing.EventLogs{Listed: listed}, nil).Once()

	res, err := t.subject.ActiveListings(mockCtx)
	t.NoError(err)
	t.Len(res, 400)

	res, err = t.subject.ActiveListings(mockCtx)
	t.NoError(err)
	t.Len(res, 400)
	t.repo.AssertNumberOfCalls(t.T(), "FetchAll", 1)
}

func (t *testsuite) TestActiveListingsReturnsCopy() {
	t.repo.On("FetchAll", mock.Anything).Return(&listing.EventLogs{
		Listed: []types.Log{listedLog(0xA, 1, oneEth, 10), listedLog(0xB, 2, oneEth, 11)},
	}, nil).Once()

	res, err := t.subject.ActiveListings(mockCtx)
	t.NoError(err)
	res[0] = nil

	res, err = t.subject.ActiveListings(mockCtx)
	t.NoError(err)
	t.Equal([]string{listingId(0xA).Hex(), listingId(0xB).Hex()}, ids(res))
}

func (t *testsuite) TestActiveListingsFetchFailedNotCached() {
	t.repo.On("FetchAll", mock.Anything).Return(nil, errors.New("timeout")).Once()
	t.repo.On("FetchAll", mock.Anything).Return(&listing.EventLogs{
		Listed: []types.Log{listedLog(0xA, 1, oneEth, 10)},
	}, nil).Once()

	_, err := t.subject.ActiveListings(mockCtx)
	t.Error(err)

	res, err := t.subject.ActiveListings(mockCtx)
	t.NoError(err)
	t.Len(res, 1)
	t.repo.AssertExpectations(t.T())
}

func (t *testsuite) TestActiveListingsFetchFailed() {
	errTimeout := errors.New("timeout")
	t.repo.On("FetchAll", mock.Anything).Return(nil, errTimeout).Once()

	res, err := t.subject.ActiveListings(mockCtx)
	t.ErrorIs(err, errTimeout)
	t.NotNil(res)
	t.Empty(res)
}
