package ens

import (
	"errors"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/suite"
	"github.com/x-xyz/nftwizard/base/ctx"
	"github.com/x-xyz/nftwizard/domain"
	"github.com/x-xyz/nftwizard/service/cache/provider/primitive"
)

var mockCtx = ctx.Background()

type ensSuite struct {
	suite.Suite

	im      *impl
	lookups map[string]int
}

func TestSuite(t *testing.T) {
	suite.Run(t, new(ensSuite))
}

func (s *ensSuite) SetupTest() {
	s.lookups = map[string]int{}
	s.im = New(&Cfg{
		Cache: primitive.NewPrimitive("ens", 1),
		Ttl:   time.Minute,
	}).(*impl)
	s.im.resolve = func(name string) (common.Address, error) {
		s.lookups[name]++
		switch name {
		case "vitalik.eth":
			return common.HexToAddress("0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045"), nil
		case "nobody.eth":
			return common.Address{}, errors.New("unregistered name")
		}
		return common.Address{}, errors.New("rpc down")
	}
}

func (s *ensSuite) TestResolve() {
	addr, err := s.im.Resolve(mockCtx, "Vitalik.eth")
	s.NoError(err)
	s.Equal(domain.Address("0xd8da6bf26964af9d7eed9e03e53415d37aa96045"), addr)

	addr, err = s.im.Resolve(mockCtx, "vitalik.eth")
	s.NoError(err)
	s.Equal(domain.Address("0xd8da6bf26964af9d7eed9e03e53415d37aa96045"), addr)
	s.Equal(1, s.lookups["vitalik.eth"])
}

func (s *ensSuite) TestResolveUnregistered() {
	_, err := s.im.Resolve(mockCtx, "nobody.eth")
	s.ErrorIs(err, domain.ErrNameUnresolvable)
	_, err = s.im.Resolve(mockCtx, "nobody.eth")
	s.ErrorIs(err, domain.ErrNameUnresolvable)
	s.Equal(1, s.lookups["nobody.eth"])
}

func (s *ensSuite) TestResolveFailed() {
	_, err := s.im.Resolve(mockCtx, "broken.eth")
	s.EqualError(err, "rpc down")
}
