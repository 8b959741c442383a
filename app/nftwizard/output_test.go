package main

import (
	"bytes"
	"math/big"
	"testing"

	"github.com/fatih/color"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/x-xyz/nftwizard/domain"
	"github.com/x-xyz/nftwizard/domain/listing"
)

func init() {
	color.NoColor = true
}

func TestExplorerLink(t *testing.T) {
	req := require.New(t)
	hash := domain.TxHash("0xabc")

	req.Equal("", explorerLink("", hash))
	req.Equal("", explorerLink("https://sepolia.etherscan.io/tx/%s", ""))
	req.Equal("https://sepolia.etherscan.io/tx/0xabc", explorerLink("https://sepolia.etherscan.io/tx/%s", hash))
	req.Equal("https://sepolia.etherscan.io/tx/0xabc", explorerLink("https://sepolia.etherscan.io/tx/", hash))
	req.Equal("https://sepolia.etherscan.io/tx/0xabc", explorerLink("https://sepolia.etherscan.io/tx", hash))
}

func TestShortHex(t *testing.T) {
	req := require.New(t)
	req.Equal("0x1234", shortHex("0x1234"))
	req.Equal("0x123456…cdef", shortHex("0x1234567890abcdef1234567890abcdef"))
}

func TestPrintTx(t *testing.T) {
	req := require.New(t)
	buf := &bytes.Buffer{}

	printTx(buf, "https://explorer/tx/%s", domain.PendingTransaction{
		Tag:   "mint.paid",
		Hash:  "0xdead",
		Phase: domain.TxPhaseFailed,
		Err:   "0xdead: execution reverted",
	})
	out := buf.String()
	req.Contains(out, "failed")
	req.Contains(out, "mint.paid 0xdead")
	req.Contains(out, "https://explorer/tx/0xdead")
	req.Contains(out, "execution reverted")
}

func TestFormatListing(t *testing.T) {
	req := require.New(t)
	l := &listing.Listing{
		Id:       "0x1111111111111111111111111111111111111111111111111111111111111111",
		Seller:   "0x2222222222222222222222222222222222222222",
		TokenId:  "7",
		PriceWei: big.NewInt(1500000000000000000),
		Price:    decimal.RequireFromString("1.5"),
	}
	req.Equal("0x111111…1111  token #7  1.5 ETH  seller 0x222222…2222", formatListing(l))

	buf := &bytes.Buffer{}
	printListings(buf, nil)
	req.Contains(buf.String(), "no active listings")
}
