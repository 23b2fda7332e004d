package wallet

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// IsValidAddress reports whether s is a well-formed 20-byte hex account
// identifier (0x + 40 hex chars).
func IsValidAddress(s string) bool {
	return common.IsHexAddress(s)
}

// Normalize lowercases a hex account identifier. Connection and persona
// records always store the normalized form so pair lookups are exact.
func Normalize(s string) string {
	return strings.ToLower(s)
}

// NormalizeValid validates and normalizes in one step
func NormalizeValid(s string) (string, bool) {
	if !common.IsHexAddress(s) {
		return "", false
	}
	return Normalize(s), true
}

// PairKey returns the canonical unordered pair key for two normalized
// addresses: lexicographic min joined to max with a colon.
func PairKey(a, b string) string {
	if a > b {
		a, b = b, a
	}
	return a + ":" + b
}
