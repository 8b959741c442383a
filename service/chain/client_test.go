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
	bCtx "github.com/x-xyz/nftwizard/base/ctx"
	"github.com/x-xyz/nftwizard/domain/mocks"
)

var (
	mockCtx     = bCtx.Background()
	errProvider = errors.New("query returned more than 10000 results")
)

type clientSuite struct {
	suite.Suite
	eth     *mocks.EthClientRepo
	subject Client
}

func TestClient(t *testing.T) {
	suite.Run(t, new(clientSuite))
}

func (s *clientSuite) SetupTest() {
	s.eth = &mocks.EthClientRepo{}
	s.subject = NewClient(s.eth)
}

func rangeIs(begin, end uint64) interface{} {
	return mock.MatchedBy(func(q ethereum.FilterQuery) bool {
		return q.FromBlock.Uint64() == begin && q.ToBlock.Uint64() == end
	})
}

func (s *clientSuite) TestFilterLogsWholeRange() {
	logs := []types.Log{{BlockNumber: 1}, {BlockNumber: 9}}
	s.eth.On("BlockNumber", mock.Anything).Return(uint64(10), nil).Once()
	s.eth.On("FilterLogs", mock.Anything, rangeIs(0, 10)).Return(logs, nil).Once()

	res, err := s.subject.FilterLogs(mockCtx, ethereum.FilterQuery{})
	s.NoError(err)
	s.Equal(logs, res)
	s.eth.AssertExpectations(s.T())
}

func (s *clientSuite) TestFilterLogsSplitsOnError() {
	s.eth.On("FilterLogs", mock.Anything, rangeIs(0, 3)).Return(nil, errProvider).Once()
	s.eth.On("FilterLogs", mock.Anything, rangeIs(0, 1)).Return([]types.Log{{BlockNumber: 1}}, nil).Once()
	s.eth.On("FilterLogs", mock.Anything, rangeIs(2, 3)).Return(nil, errProvider).Once()
	s.eth.On("FilterLogs", mock.Anything, rangeIs(2, 2)).Return([]types.Log{{BlockNumber: 2}}, nil).Once()
	s.eth.On("FilterLogs", mock.Anything, rangeIs(3, 3)).Return([]types.Log{{BlockNumber: 3}}, nil).Once()

	res, err := s.subject.FilterLogs(mockCtx, ethereum.FilterQuery{
		FromBlock: big.NewInt(0),
		ToBlock:   big.NewInt(3),
	})
	s.NoError(err)
	s.Len(res, 3)
	for i, l := range res {
		s.Equal(uint64(i+1), l.BlockNumber)
	}
	s.eth.AssertExpectations(s.T())
}

func (s *clientSuite) TestFilterLogsGivesUp() {
	s.eth.On("FilterLogs", mock.Anything, mock.Anything).Return(nil, errProvider)

	res, err := s.subject.FilterLogs(mockCtx, ethereum.FilterQuery{
		FromBlock: big.NewInt(0),
		ToBlock:   big.NewInt(7),
	})
	s.ErrorIs(err, errProvider)
	s.Nil(res)
	// 0-7, 0-3, 0-1, 0-0: the first failing half stops the pass
	s.eth.AssertNumberOfCalls(s.T(), "FilterLogs", 4)
}

func (s *clientSuite) TestFilterLogsBlockNumberFailed() {
	s.eth.On("BlockNumber", mock.Anything).Return(uint64(0), errProvider).Once()

	_, err := s.subject.FilterLogs(mockCtx, ethereum.FilterQuery{})
	s.ErrorIs(err, errProvider)
	s.eth.AssertNotCalled(s.T(), "FilterLogs", mock.Anything, mock.Anything)
}

func (s *clientSuite) TestCall() {
	out, err := baseabi.NFTABI.Methods["hasClaimedFreeNFT"].Outputs.Pack(true)
	s.Require().NoError(err)
	nft := common.HexToAddress("0x00000000000000000000000000000000000000aa")
	s.eth.On("CallContract", mock.Anything, mock.MatchedBy(func(msg ethereum.CallMsg) bool {
		return *msg.To == nft
	}), (*big.Int)(nil)).Return(out, nil).Once()

	res, err := s.subject.Call(mockCtx, nft, nil, baseabi.NFTABI, "hasClaimedFreeNFT", common.HexToAddress("0x01"))
	s.NoError(err)
	s.Equal(true, res[0])
}

func (s *clientSuite) TestCallPackFailed() {
	_, err := s.subject.Call(mockCtx, common.Address{}, nil, baseabi.NFTABI, "hasClaimedFreeNFT", "not an address")
	s.Error(err)
	s.eth.AssertNotCalled(s.T(), "CallContract", mock.Anything, mock.Anything, mock.Anything)
}
