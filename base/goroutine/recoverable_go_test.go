package goroutine

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/x-xyz/nftwizard/base/log"
)

func TestRecoverableGo(t *testing.T) {
	req := require.New(t)
	res := []string{}

	ev := <-RecoverableGo(
		func() {
			res = append(res, "watch receipt")
			panic("boom")
		},
		WithLogger(log.Log().WithField("op", 1)),
		WithAfterRecovered(func(p interface{}, stack []byte) {
			res = append(res, "after recovered", p.(string))
		}),
	)

	req.NotNil(ev)
	req.Equal("boom", ev.Panic)
	req.NotEmpty(ev.Stack)
	req.Equal([]string{"watch receipt", "after recovered", "boom"}, res)
}

func TestRecoverableGoNoPanic(t *testing.T) {
	req := require.New(t)
	done := false

	ev, ok := <-RecoverableGo(func() { done = true })

	req.False(ok)
	req.Nil(ev)
	req.True(done)
}
