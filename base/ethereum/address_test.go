package ethereum

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/require"
)

func TestParsePrivateKey(t *testing.T) {
	req := require.New(t)

	key, _, err := GenerateKey()
	req.NoError(err)
	raw := common.Bytes2Hex(crypto.FromECDSA(key))

	for _, in := range []string{raw, "0x" + raw, "  0x" + raw + "\n"} {
		parsed, err := ParsePrivateKey(in)
		req.NoError(err)
		req.Equal(AddressOf(key), AddressOf(parsed))
	}

	_, err = ParsePrivateKey("0xnothex")
	req.Error(err)
	_, err = ParsePrivateKey("")
	req.Error(err)
}
