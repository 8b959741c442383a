package backoff

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLinear(t *testing.T) {
	req := require.New(t)
	b := NewLinear(time.Millisecond, 3*time.Millisecond)
	want := []time.Duration{time.Millisecond, 2 * time.Millisecond, 3 * time.Millisecond, 3 * time.Millisecond}
	for _, d := range want {
		req.Equal(d, b.NextDuration)
		req.NoError(b.Backoff(context.Background()))
	}
	req.Equal(4, b.Count())
	b.Reset()
	req.Equal(0, b.Count())
	req.Equal(time.Millisecond, b.NextDuration)
}

func TestExponential(t *testing.T) {
	req := require.New(t)
	b := NewExponential(time.Millisecond, 0)
	want := []time.Duration{time.Millisecond, 2 * time.Millisecond, 4 * time.Millisecond}
	for _, d := range want {
		req.Equal(d, b.NextDuration)
		req.NoError(b.Backoff(context.Background()))
	}
}

func TestBackoffCancelled(t *testing.T) {
	req := require.New(t)
	b := NewLinear(time.Hour, 0)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	req.ErrorIs(b.Backoff(ctx), context.Canceled)
	req.Equal(0, b.Count())
}

func TestUntil(t *testing.T) {
	req := require.New(t)

	calls := 0
	err := NewLinear(time.Millisecond, 0).Until(context.Background(), func() (bool, error) {
		calls++
		return calls == 3, nil
	})
	req.NoError(err)
	req.Equal(3, calls)

	errPoll := errors.New("poll")
	err = NewLinear(time.Millisecond, 0).Until(context.Background(), func() (bool, error) {
		return false, errPoll
	})
	req.ErrorIs(err, errPoll)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Millisecond)
	defer cancel()
	err = NewLinear(time.Millisecond, 0).Until(ctx, func() (bool, error) {
		return false, nil
	})
	req.ErrorIs(err, context.DeadlineExceeded)
}
