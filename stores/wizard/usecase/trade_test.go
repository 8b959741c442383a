package usecase

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/x-xyz/nftwizard/domain"
	"github.com/x-xyz/nftwizard/domain/mocks"
	"github.com/x-xyz/nftwizard/domain/wizard"
)

var listingHex = common.BigToHash(big.NewInt(0x42)).Hex()

type tradeSuite struct {
	suite.Suite

	sender   *mocks.TxSender
	listings *mocks.Reconciler
	im       wizard.TradeUseCase
}

func TestTradeSuite(t *testing.T) {
	suite.Run(t, new(tradeSuite))
}

func (s *tradeSuite) SetupTest() {
	s.sender = &mocks.TxSender{}
	s.listings = &mocks.Reconciler{}
	s.listings.On("Invalidate", mock.Anything).Return().Maybe()
	s.im = NewTrade(&TradeCfg{
		Marketplace: marketAddr,
		Listings:    s.listings,
		Submitter:   newSubmitter(s.sender),
	})
}

func (s *tradeSuite) TearDownTest() {
	s.sender.AssertExpectations(s.T())
}

func (s *tradeSuite) TestBuy() {
	halfEth := big.NewInt(5e17)
	s.sender.On("Send", mock.Anything, mock.MatchedBy(func(req *domain.WriteRequest) bool {
		return req.Method == "buyNFT" &&
			req.Contract == marketAddr &&
			req.Value.Cmp(halfEth) == 0 &&
			req.Args[0] == [32]byte(common.HexToHash(listingHex))
	})).Return(txHash, nil).Once()
	s.sender.On("Receipt", mock.Anything, txHash).Return(success, nil).Once()

	p, err := s.im.Buy(mockCtx, listingHex, "0.5")
	s.Require().NoError(err)
	s.Equal("buy", p.Tag)

	cur, err := s.im.Submitter().Wait(mockCtx)
	s.NoError(err)
	s.Equal(domain.TxPhaseConfirmed, cur.Phase)
}

func (s *tradeSuite) TestBuyValidation() {
	_, err := s.im.Buy(mockCtx, "42", "1")
	s.ErrorIs(err, domain.ErrInvalidListingId)
	_, err = s.im.Buy(mockCtx, "0x42", "1")
	s.ErrorIs(err, domain.ErrInvalidListingId)
	_, err = s.im.Buy(mockCtx, listingHex, "")
	s.ErrorIs(err, domain.ErrEmptyPrice)
	_, err = s.im.Buy(mockCtx, listingHex, "free")
	s.ErrorIs(err, domain.ErrInvalidPrice)
	_, err = s.im.Buy(mockCtx, listingHex, "0")
	s.ErrorIs(err, domain.ErrNonPositivePrice)
}

func (s *tradeSuite) TestDelist() {
	release := make(chan struct{})
	s.sender.On("Send", mock.Anything, method("delistNFT")).Return(txHash, nil).Once()
	s.sender.On("Receipt", mock.Anything, txHash).Run(block(release)).Return(success, nil).Once()

	p, err := s.im.Delist(mockCtx, listingHex)
	s.Require().NoError(err)
	s.Equal("delist", p.Tag)

	_, err = s.im.Buy(mockCtx, listingHex, "1")
	s.ErrorIs(err, domain.ErrTxPending)

	close(release)
	_, err = s.im.Submitter().Wait(mockCtx)
	s.NoError(err)
}
