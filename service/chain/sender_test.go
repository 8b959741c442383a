package chain

import (
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	baseabi "github.com/x-xyz/nftwizard/base/abi"
	bEthereum "github.com/x-xyz/nftwizard/base/ethereum"
	"github.com/x-xyz/nftwizard/domain"
	"github.com/x-xyz/nftwizard/domain/mocks"
)

type senderSuite struct {
	suite.Suite
	eth     *mocks.EthClientRepo
	subject domain.TxSender
	from    common.Address
	req     *domain.WriteRequest
}

func TestSender(t *testing.T) {
	suite.Run(t, new(senderSuite))
}

func (s *senderSuite) SetupTest() {
	key, _, err := bEthereum.GenerateKey()
	s.Require().NoError(err)
	s.from = bEthereum.AddressOf(key)
	s.eth = &mocks.EthClientRepo{}
	s.subject = NewSender(&SenderCfg{
		Client:     s.eth,
		PrivateKey: key,
		ChainId:    big.NewInt(11155111),
	})
	s.req = &domain.WriteRequest{
		Contract: domain.Address("0x00000000000000000000000000000000000000aa"),
		ABI:      baseabi.NFTABI,
		Method:   "mint",
		Value:    big.NewInt(1e15),
		Tag:      "mint",
	}
}

func (s *senderSuite) TestFrom() {
	s.Equal(domain.ToAddress(s.from), s.subject.From())
	s.Equal(domain.Address(""), NewSender(&SenderCfg{Client: s.eth}).From())
}

func (s *senderSuite) TestSend() {
	var sent *types.Transaction
	s.eth.On("PendingNonceAt", mock.Anything, s.from).Return(uint64(3), nil).Once()
	s.eth.On("SuggestGasPrice", mock.Anything).Return(big.NewInt(1e9), nil).Once()
	s.eth.On("EstimateGas", mock.Anything, mock.MatchedBy(func(msg ethereum.CallMsg) bool {
		return msg.From == s.from && msg.Value.Cmp(big.NewInt(1e15)) == 0
	})).Return(uint64(60000), nil).Once()
	s.eth.On("SendTransaction", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		sent = args.Get(1).(*types.Transaction)
	}).Return(nil).Once()

	hash, err := s.subject.Send(mockCtx, s.req)
	s.NoError(err)
	s.Require().NotNil(sent)
	s.Equal(domain.ToTxHash(sent.Hash()), hash)
	s.Equal(uint64(3), sent.Nonce())
	s.Equal(uint64(60000), sent.Gas())
	s.Equal(s.req.Contract.ToCommon(), *sent.To())
	s.Equal(baseabi.NFTABI.Methods["mint"].ID, sent.Data()[:4])

	signer, err := types.Sender(types.LatestSignerForChainID(big.NewInt(11155111)), sent)
	s.NoError(err)
	s.Equal(s.from, signer)
}

func (s *senderSuite) TestSendPreflightFailed() {
	errRevert := errors.New("execution reverted: already claimed")
	s.eth.On("PendingNonceAt", mock.Anything, s.from).Return(uint64(3), nil).Once()
	s.eth.On("SuggestGasPrice", mock.Anything).Return(big.NewInt(1e9), nil).Once()
	s.eth.On("EstimateGas", mock.Anything, mock.Anything).Return(uint64(0), errRevert).Once()

	hash, err := s.subject.Send(mockCtx, s.req)
	s.ErrorIs(err, errRevert)
	s.Contains(err.Error(), "pre-flight simulation failed")
	s.Empty(hash)
	s.eth.AssertNotCalled(s.T(), "SendTransaction", mock.Anything, mock.Anything)
}

func (s *senderSuite) TestSendReadOnly() {
	hash, err := NewSender(&SenderCfg{Client: s.eth}).Send(mockCtx, s.req)
	s.ErrorIs(err, domain.ErrNoSigner)
	s.Empty(hash)
}

func (s *senderSuite) TestSendFetchesChainIdOnce() {
	key, _, _ := bEthereum.GenerateKey()
	from := bEthereum.AddressOf(key)
	subject := NewSender(&SenderCfg{Client: s.eth, PrivateKey: key})

	s.eth.On("ChainID", mock.Anything).Return(big.NewInt(1), nil).Once()
	s.eth.On("PendingNonceAt", mock.Anything, from).Return(uint64(0), nil)
	s.eth.On("SuggestGasPrice", mock.Anything).Return(big.NewInt(1), nil)
	s.eth.On("EstimateGas", mock.Anything, mock.Anything).Return(uint64(21000), nil)
	s.eth.On("SendTransaction", mock.Anything, mock.Anything).Return(nil)

	_, err := subject.Send(mockCtx, s.req)
	s.NoError(err)
	_, err = subject.Send(mockCtx, s.req)
	s.NoError(err)
	s.eth.AssertNumberOfCalls(s.T(), "ChainID", 1)
}
