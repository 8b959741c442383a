package chain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_blockRange_split(t *testing.T) {
	tests := []struct {
		r     *blockRange
		want  *blockRange
		want1 *blockRange
	}{
		{
			r:     newBlockRange(0, 100),
			want:  newBlockRange(0, 50),
			want1: newBlockRange(51, 100),
		},
		{
			r:     newBlockRange(1, 101),
			want:  newBlockRange(1, 51),
			want1: newBlockRange(52, 101),
		},
		{
			r:     newBlockRange(2, 3),
			want:  newBlockRange(2, 2),
			want1: newBlockRange(3, 3),
		},
	}
	for _, tt := range tests {
		t.Run(tt.r.String(), func(t *testing.T) {
			req := require.New(t)
			got, got1 := tt.r.split()
			req.Equal(tt.want.String(), got.String())
			req.Equal(tt.want1.String(), got1.String())
			req.False(tt.r.isSingle())
		})
	}
	require.True(t, newBlockRange(7, 7).isSingle())
}
