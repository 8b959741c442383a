package abi

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// NFTABI covers the parts of the MyFirstNFT collection used by the wizards
var NFTABI abi.ABI

var nftABI = `[{"type":"function","name":"getTokensOwnedBy","stateMutability":"view","inputs":[{"type":"address","name":"owner"}],"outputs":[{"type":"uint256[]"}]},{"type":"function","name":"hasClaimedFreeNFT","stateMutability":"view","inputs":[{"type":"address","name":"account"}],"outputs":[{"type":"bool"}]},{"type":"function","name":"isApprovedForAll","stateMutability":"view","inputs":[{"type":"address","name":"owner"},{"type":"address","name":"operator"}],"outputs":[{"type":"bool"}]},{"type":"function","name":"ownerOf","stateMutability":"view","inputs":[{"type":"uint256","name":"tokenId"}],"outputs":[{"type":"address"}]},{"type":"function","name":"claimFreeNFT","stateMutability":"nonpayable","inputs":[],"outputs":[]},{"type":"function","name":"mint","stateMutability":"payable","inputs":[],"outputs":[]},{"type":"function","name":"transferFrom","stateMutability":"nonpayable","inputs":[{"type":"address","name":"from"},{"type":"address","name":"to"},{"type":"uint256","name":"tokenId"}],"outputs":[]},{"type":"function","name":"setApprovalForAll","stateMutability":"nonpayable","inputs":[{"type":"address","name":"operator"},{"type":"bool","name":"approved"}],"outputs":[]}]`

func init() {
	_abi, err := abi.JSON(strings.NewReader(nftABI))
	if err != nil {
		panic("Failed to parse nft abi")
	}
	NFTABI = _abi
}
