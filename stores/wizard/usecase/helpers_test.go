package usecase

import (
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/mock"
	"github.com/x-xyz/nftwizard/base/ctx"
	"github.com/x-xyz/nftwizard/base/txsubmitter"
	"github.com/x-xyz/nftwizard/domain"
)

var (
	mockCtx    = ctx.Background()
	nftAddr    = domain.Address("0x00000000000000000000000000000000000000bb")
	marketAddr = domain.Address("0x00000000000000000000000000000000000000dd")
	owner      = domain.Address("0x00000000000000000000000000000000000000aa")
	recipient  = "0x00000000000000000000000000000000000000cc"
	txHash     = domain.TxHash("0xabc")
	success    = &types.Receipt{Status: types.ReceiptStatusSuccessful}
	reverts    = &types.Receipt{Status: types.ReceiptStatusFailed}
)

func newSubmitter(sender domain.TxSender) domain.TxSubmitter {
	return txsubmitter.New(&txsubmitter.Cfg{
		Name:           "test",
		Sender:         sender,
		PollInterval:   time.Millisecond,
		PollLimit:      5 * time.Millisecond,
		ConfirmTimeout: time.Second,
	})
}

func method(name string) interface{} {
	return mock.MatchedBy(func(req *domain.WriteRequest) bool {
		return req.Method == name
	})
}

func signal(ch chan struct{}) func(mock.Arguments) {
	once := sync.Once{}
	return func(mock.Arguments) {
		once.Do(func() { close(ch) })
	}
}

func block(release chan struct{}) func(mock.Arguments) {
	return func(mock.Arguments) {
		<-release
	}
}

func received(ch <-chan struct{}) bool {
	select {
	case <-ch:
		return true
	case <-time.After(2 * time.Second):
		return false
	}
}
