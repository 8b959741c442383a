package keys

import (
	"strings"
)

const (
	// PfxAccount prefixes reads about the connected account
	PfxAccount = "account"
	// PfxEns prefixes resolved ens names
	PfxEns  = "ens"
	PfxSwap = "swap"
)

// CustomKey is used to join the customized key by componets with specified delimiter
func CustomKey(delimiter string, components ...string) string {
	return strings.Join(components, delimiter)
}

// Key is used to join the cache key by componets
func Key(components ...string) string {
	return CustomKey(":", components...)
}
