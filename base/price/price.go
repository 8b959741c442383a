package price

import (
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/x-xyz/nftwizard/domain"
)

const (
	EtherDecimals = 18
	// DisplayPlaces is the rounding applied to net proceeds shown to the user
	DisplayPlaces  = 4
	BpsDenominator = 10000
)

var bpsDenominator = decimal.NewFromInt(BpsDenominator)

// ToEther converts wei to ether without loss of precision
func ToEther(wei *big.Int) decimal.Decimal {
	if wei == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(wei, -EtherDecimals)
}

func FormatEther(wei *big.Int) string {
	return ToEther(wei).String()
}

// ParseEther converts a decimal ether string into wei. Negative values and values with more
// than 18 fractional digits are rejected.
func ParseEther(s string) (*big.Int, error) {
	s = strings.TrimSpace(s)
	if len(s) == 0 {
		return nil, domain.ErrInvalidAmount
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, domain.ErrInvalidAmount
	}
	return ToWei(d)
}

func ToWei(d decimal.Decimal) (*big.Int, error) {
	if d.IsNegative() {
		return nil, domain.ErrInvalidAmount
	}
	shifted := d.Shift(EtherDecimals)
	if !shifted.Equal(shifted.Truncate(0)) {
		return nil, domain.ErrInvalidAmount
	}
	return shifted.BigInt(), nil
}

type FeePreview struct {
	Price  decimal.Decimal
	FeeBps int64
	Fee    decimal.Decimal
	Net    decimal.Decimal
}

// NewFeePreview computes net = price * (1 - feeBps/10000)
func NewFeePreview(price decimal.Decimal, feeBps int64) FeePreview {
	fee := price.Mul(decimal.NewFromInt(feeBps)).Div(bpsDenominator)
	return FeePreview{
		Price:  price,
		FeeBps: feeBps,
		Fee:    fee,
		Net:    price.Sub(fee),
	}
}

func (p FeePreview) NetDisplay() string {
	return p.Net.StringFixed(DisplayPlaces)
}

// FeePercent renders the fee rate as a percentage, 250 bps is "2.5"
func (p FeePreview) FeePercent() string {
	return decimal.NewFromInt(p.FeeBps).Div(decimal.NewFromInt(100)).String()
}
